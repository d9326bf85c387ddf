package primary

import "context"

// TemplateService defines the primary port for browsing the template catalog.
type TemplateService interface {
	// ListTemplates lists every available template.
	ListTemplates(ctx context.Context) ([]*Template, error)

	// GetTemplate retrieves the template for a project type.
	GetTemplate(ctx context.Context, projectType string) (*Template, error)
}

// Template represents a project template at the port boundary.
type Template struct {
	Type                string
	Name                string
	Description         string
	Milestones          []TemplateMilestone
	InfrastructureTasks []string
}

// TemplateMilestone is one blueprint within a template.
type TemplateMilestone struct {
	Order       int
	Title       string
	Description string
	Owner       string
	Category    string
	DaysOffset  int
	ActionURL   string
	ActionLabel string
}
