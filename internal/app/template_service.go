package app

import (
	"context"
	"fmt"

	"github.com/example/cadence/internal/ports/primary"
	"github.com/example/cadence/internal/ports/secondary"
)

// TemplateServiceImpl implements the TemplateService interface.
type TemplateServiceImpl struct {
	catalog secondary.TemplateCatalog
}

// NewTemplateService creates a new TemplateService with injected dependencies.
func NewTemplateService(catalog secondary.TemplateCatalog) *TemplateServiceImpl {
	return &TemplateServiceImpl{catalog: catalog}
}

// ListTemplates lists every available template.
func (s *TemplateServiceImpl) ListTemplates(ctx context.Context) ([]*primary.Template, error) {
	records, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	templates := make([]*primary.Template, len(records))
	for i, r := range records {
		templates[i] = recordToTemplate(r)
	}
	return templates, nil
}

// GetTemplate retrieves the template for a project type.
func (s *TemplateServiceImpl) GetTemplate(ctx context.Context, projectType string) (*primary.Template, error) {
	record, err := s.catalog.GetByType(ctx, projectType)
	if err != nil {
		return nil, err
	}
	return recordToTemplate(record), nil
}

func recordToTemplate(r *secondary.TemplateRecord) *primary.Template {
	t := &primary.Template{
		Type:                r.Type,
		Name:                r.Name,
		Description:         r.Description,
		InfrastructureTasks: r.InfrastructureTasks,
	}
	for _, bp := range r.Milestones {
		t.Milestones = append(t.Milestones, primary.TemplateMilestone{
			Order:       bp.Order,
			Title:       bp.Title,
			Description: bp.Description,
			Owner:       bp.Owner,
			Category:    bp.Category,
			DaysOffset:  bp.DaysOffset,
			ActionURL:   bp.ActionURL,
			ActionLabel: bp.ActionLabel,
		})
	}
	return t
}

// Ensure TemplateServiceImpl implements the interface
var _ primary.TemplateService = (*TemplateServiceImpl)(nil)
