package app

import (
	"context"
	"fmt"
	"time"

	coremilestone "github.com/example/cadence/internal/core/milestone"
	"github.com/example/cadence/internal/core/schedule"
	"github.com/example/cadence/internal/ports/primary"
	"github.com/example/cadence/internal/ports/secondary"
)

// ProjectServiceImpl implements the ProjectService interface.
type ProjectServiceImpl struct {
	clientRepo   secondary.ClientRepository
	projectRepo  secondary.ProjectRepository
	infraRepo    secondary.InfraTaskRepository
	activityRepo secondary.ActivityLogRepository
	catalog      secondary.TemplateCatalog
}

// NewProjectService creates a new ProjectService with injected dependencies.
func NewProjectService(
	clientRepo secondary.ClientRepository,
	projectRepo secondary.ProjectRepository,
	infraRepo secondary.InfraTaskRepository,
	activityRepo secondary.ActivityLogRepository,
	catalog secondary.TemplateCatalog,
) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		clientRepo:   clientRepo,
		projectRepo:  projectRepo,
		infraRepo:    infraRepo,
		activityRepo: activityRepo,
		catalog:      catalog,
	}
}

// CreateProject instantiates a project: it resolves the template (or the
// caller's custom blueprints), schedules every milestone from the start
// date, and persists the project with its milestones and infrastructure
// checklist.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req primary.CreateProjectRequest) (*primary.CreateProjectResponse, error) {
	exists, err := s.clientRepo.Exists(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate client: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("client %s: %w", req.ClientID, secondary.ErrNotFound)
	}

	blueprints, infraTitles, err := s.resolveBlueprints(ctx, req)
	if err != nil {
		return nil, err
	}

	planned, err := schedule.BuildSchedule(req.StartDate, blueprints)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule milestones: %w", err)
	}

	projectID, err := s.projectRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate project ID: %w", err)
	}

	project := &secondary.ProjectRecord{
		ID:       projectID,
		ClientID: req.ClientID,
		Title:    req.Title,
		Type:     req.Type,
		// Cascading is on by default; it can be toggled per project.
		CascadePolicyEnabled: true,
	}

	milestones := make([]*secondary.MilestoneRecord, len(planned))
	for i, p := range planned {
		milestones[i] = &secondary.MilestoneRecord{
			ID:              fmt.Sprintf("%s-M%02d", projectID, p.Order),
			ProjectID:       projectID,
			Order:           p.Order,
			Title:           p.Title,
			Description:     p.Description,
			Status:          string(p.Status),
			Owner:           string(p.Owner),
			Category:        p.Category,
			DueDate:         p.DueDate,
			OriginalDueDate: p.OriginalDueDate,
			ActionURL:       p.ActionURL,
			ActionLabel:     p.ActionLabel,
		}
	}

	infraTasks := make([]*secondary.InfraTaskRecord, len(infraTitles))
	for i, title := range infraTitles {
		infraTasks[i] = &secondary.InfraTaskRecord{
			ID:        fmt.Sprintf("%s-I%02d", projectID, i+1),
			ProjectID: projectID,
			Title:     title,
		}
	}

	// The project only exists once its full timeline does.
	if err := s.projectRepo.CreateWithTimeline(ctx, project, milestones, infraTasks); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logActivity(ctx, projectID, "project_created", fmt.Sprintf("Project %q was created.", req.Title))

	created, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created project: %w", err)
	}

	resp := &primary.CreateProjectResponse{Project: recordToProject(created)}
	for _, m := range milestones {
		resp.Milestones = append(resp.Milestones, recordToMilestone(m))
	}
	for _, task := range infraTasks {
		resp.InfrastructureTasks = append(resp.InfrastructureTasks, recordToInfraTask(task))
	}
	return resp, nil
}

// resolveBlueprints picks the milestone source: explicit custom blueprints
// for custom projects, the catalog for everything else.
func (s *ProjectServiceImpl) resolveBlueprints(ctx context.Context, req primary.CreateProjectRequest) ([]schedule.Blueprint, []string, error) {
	if len(req.Blueprints) > 0 {
		blueprints := make([]schedule.Blueprint, len(req.Blueprints))
		for i, bp := range req.Blueprints {
			owner, err := coremilestone.ParseOwner(bp.Owner)
			if err != nil {
				return nil, nil, fmt.Errorf("blueprint %d: %w", i+1, err)
			}
			blueprints[i] = schedule.Blueprint{
				Order:       bp.Order,
				Title:       bp.Title,
				Description: bp.Description,
				Owner:       owner,
				Category:    bp.Category,
				DaysOffset:  bp.DaysOffset,
				ActionURL:   bp.ActionURL,
				ActionLabel: bp.ActionLabel,
			}
		}
		return blueprints, nil, nil
	}

	tmpl, err := s.catalog.GetByType(ctx, req.Type)
	if err != nil {
		return nil, nil, err
	}

	blueprints := make([]schedule.Blueprint, len(tmpl.Milestones))
	for i, bp := range tmpl.Milestones {
		owner, err := coremilestone.ParseOwner(bp.Owner)
		if err != nil {
			return nil, nil, fmt.Errorf("template %s blueprint %d: %w", tmpl.Type, i+1, err)
		}
		blueprints[i] = schedule.Blueprint{
			Order:       bp.Order,
			Title:       bp.Title,
			Description: bp.Description,
			Owner:       owner,
			Category:    bp.Category,
			DaysOffset:  bp.DaysOffset,
			ActionURL:   bp.ActionURL,
			ActionLabel: bp.ActionLabel,
		}
	}
	return blueprints, tmpl.InfrastructureTasks, nil
}

// GetProject retrieves a project by ID.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, projectID string) (*primary.Project, error) {
	record, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return recordToProject(record), nil
}

// ListProjects lists projects with optional filters.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, filters primary.ProjectFilters) ([]*primary.Project, error) {
	records, err := s.projectRepo.List(ctx, secondary.ProjectFilters{
		ClientID: filters.ClientID,
		Type:     filters.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*primary.Project, len(records))
	for i, r := range records {
		projects[i] = recordToProject(r)
	}
	return projects, nil
}

// SetCascadePolicy toggles whether late completions reschedule downstream
// milestones.
func (s *ProjectServiceImpl) SetCascadePolicy(ctx context.Context, projectID string, enabled bool) error {
	if err := s.projectRepo.SetCascadePolicy(ctx, projectID, enabled); err != nil {
		return err
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	s.logActivity(ctx, projectID, "project_updated", fmt.Sprintf("Deadline cascade %s.", state))
	return nil
}

// DeleteProject removes a project and everything under it.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, projectID string) error {
	return s.projectRepo.Delete(ctx, projectID)
}

// GetInfrastructureTasks retrieves a project's infrastructure checklist.
func (s *ProjectServiceImpl) GetInfrastructureTasks(ctx context.Context, projectID string) ([]*primary.InfrastructureTask, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	records, err := s.infraRepo.GetByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list infrastructure tasks: %w", err)
	}

	tasks := make([]*primary.InfrastructureTask, len(records))
	for i, r := range records {
		tasks[i] = recordToInfraTask(r)
	}
	return tasks, nil
}

// CompleteInfrastructureTask toggles one checklist item.
func (s *ProjectServiceImpl) CompleteInfrastructureTask(ctx context.Context, taskID string, completed bool) error {
	return s.infraRepo.SetCompleted(ctx, taskID, completed)
}

// GetActivity retrieves a project's activity log, newest first.
func (s *ProjectServiceImpl) GetActivity(ctx context.Context, projectID string, limit int) ([]*primary.ActivityEntry, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	records, err := s.activityRepo.GetByProject(ctx, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity log: %w", err)
	}

	entries := make([]*primary.ActivityEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.ActivityEntry{
			ID:        r.ID,
			ProjectID: r.ProjectID,
			Type:      r.Type,
			Message:   r.Message,
			Timestamp: r.Timestamp.Format(time.RFC3339),
		}
	}
	return entries, nil
}

// logActivity appends to the audit trail. Failures are deliberately not
// propagated - the log is an observability aid, not a business invariant.
func (s *ProjectServiceImpl) logActivity(ctx context.Context, projectID, activityType, message string) {
	_ = s.activityRepo.Append(ctx, &secondary.ActivityRecord{
		ProjectID: projectID,
		Type:      activityType,
		Message:   message,
	})
}

func recordToProject(r *secondary.ProjectRecord) *primary.Project {
	return &primary.Project{
		ID:                   r.ID,
		ClientID:             r.ClientID,
		Title:                r.Title,
		Type:                 r.Type,
		CascadePolicyEnabled: r.CascadePolicyEnabled,
		CreatedAt:            r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            r.UpdatedAt.Format(time.RFC3339),
	}
}

func recordToInfraTask(r *secondary.InfraTaskRecord) *primary.InfrastructureTask {
	return &primary.InfrastructureTask{
		ID:        r.ID,
		ProjectID: r.ProjectID,
		Title:     r.Title,
		Completed: r.Completed,
	}
}

// Ensure ProjectServiceImpl implements the interface
var _ primary.ProjectService = (*ProjectServiceImpl)(nil)
