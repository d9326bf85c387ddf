package secondary

import (
	"context"
	"errors"
)

// ErrTemplateNotFound is returned when no template matches a project type.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateCatalog defines the secondary port for the read-only template
// source. Implementations may serve built-in templates, user-edited files,
// or both.
type TemplateCatalog interface {
	// GetByType retrieves the template for a project type. Returns an error
	// wrapping ErrTemplateNotFound when the type is unknown.
	GetByType(ctx context.Context, projectType string) (*TemplateRecord, error)

	// List retrieves all available templates.
	List(ctx context.Context) ([]*TemplateRecord, error)
}

// TemplateRecord is a reusable milestone sequence definition for one project
// type, plus the infrastructure checklist materialized alongside it.
type TemplateRecord struct {
	Type                string
	Name                string
	Description         string
	Milestones          []BlueprintRecord
	InfrastructureTasks []string
}

// BlueprintRecord is one milestone blueprint within a template.
// DaysOffset counts from the previous blueprint's resolved due date.
type BlueprintRecord struct {
	Order       int
	Title       string
	Description string
	Owner       string // agency, client
	Category    string
	DaysOffset  int
	ActionURL   string
	ActionLabel string
}
