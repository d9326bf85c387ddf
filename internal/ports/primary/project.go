package primary

import (
	"context"
	"time"
)

// ProjectService defines the primary port for project operations, including
// instantiation from a template.
type ProjectService interface {
	// CreateProject instantiates a project from a template (or explicit
	// custom blueprints) with concrete milestones and infrastructure tasks.
	CreateProject(ctx context.Context, req CreateProjectRequest) (*CreateProjectResponse, error)

	// GetProject retrieves a project by ID.
	GetProject(ctx context.Context, projectID string) (*Project, error)

	// ListProjects lists projects with optional filters.
	ListProjects(ctx context.Context, filters ProjectFilters) ([]*Project, error)

	// SetCascadePolicy toggles whether late completions reschedule
	// downstream milestones.
	SetCascadePolicy(ctx context.Context, projectID string, enabled bool) error

	// DeleteProject removes a project and everything under it.
	DeleteProject(ctx context.Context, projectID string) error

	// GetInfrastructureTasks retrieves a project's infrastructure checklist.
	GetInfrastructureTasks(ctx context.Context, projectID string) ([]*InfrastructureTask, error)

	// CompleteInfrastructureTask toggles one checklist item.
	CompleteInfrastructureTask(ctx context.Context, taskID string, completed bool) error

	// GetActivity retrieves a project's activity log, newest first.
	GetActivity(ctx context.Context, projectID string, limit int) ([]*ActivityEntry, error)
}

// CreateProjectRequest contains parameters for instantiating a project.
// For type "custom", Blueprints must be supplied; for catalog types they
// must be left empty and the template is looked up by type.
type CreateProjectRequest struct {
	ClientID   string
	Title      string
	Type       string
	StartDate  time.Time
	Blueprints []CustomBlueprint
}

// CustomBlueprint is one caller-supplied milestone blueprint for custom
// projects.
type CustomBlueprint struct {
	Order       int
	Title       string
	Description string
	Owner       string
	Category    string
	DaysOffset  int
	ActionURL   string
	ActionLabel string
}

// CreateProjectResponse contains everything a successful instantiation
// materialized.
type CreateProjectResponse struct {
	Project             *Project
	Milestones          []*Milestone
	InfrastructureTasks []*InfrastructureTask
}

// ProjectFilters contains filter options for querying projects.
type ProjectFilters struct {
	ClientID string
	Type     string
}

// Project represents a project entity at the port boundary.
type Project struct {
	ID                   string
	ClientID             string
	Title                string
	Type                 string
	CascadePolicyEnabled bool
	CreatedAt            string
	UpdatedAt            string
}

// InfrastructureTask represents one administrative checklist item.
type InfrastructureTask struct {
	ID        string
	ProjectID string
	Title     string
	Completed bool
}

// ActivityEntry represents one activity log line at the port boundary.
type ActivityEntry struct {
	ID        int64
	ProjectID string
	Type      string
	Message   string
	Timestamp string
}
