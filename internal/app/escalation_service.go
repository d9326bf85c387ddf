package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/cadence/internal/core/escalation"
	coremilestone "github.com/example/cadence/internal/core/milestone"
	"github.com/example/cadence/internal/ports/primary"
	"github.com/example/cadence/internal/ports/secondary"
)

// EscalationServiceImpl implements the EscalationService interface.
// Evaluation joins the milestone snapshot with projects and clients, then
// hands the pure core the result. Nothing is stored or sent here.
type EscalationServiceImpl struct {
	milestoneRepo secondary.MilestoneRepository
	projectRepo   secondary.ProjectRepository
	clientRepo    secondary.ClientRepository
	now           func() time.Time
}

// NewEscalationService creates a new EscalationService with injected
// dependencies.
func NewEscalationService(
	milestoneRepo secondary.MilestoneRepository,
	projectRepo secondary.ProjectRepository,
	clientRepo secondary.ClientRepository,
	now func() time.Time,
) *EscalationServiceImpl {
	return &EscalationServiceImpl{
		milestoneRepo: milestoneRepo,
		projectRepo:   projectRepo,
		clientRepo:    clientRepo,
		now:           now,
	}
}

// Evaluate classifies every overdue client-owned milestone across all
// projects and returns one event per qualifying milestone.
func (s *EscalationServiceImpl) Evaluate(ctx context.Context) ([]*primary.EscalationEvent, error) {
	milestones, err := s.milestoneRepo.List(ctx, secondary.MilestoneFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}

	projects, err := s.projectRepo.List(ctx, secondary.ProjectFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	projectsByID := make(map[string]*secondary.ProjectRecord, len(projects))
	for _, p := range projects {
		projectsByID[p.ID] = p
	}

	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	clientsByID := make(map[string]*secondary.ClientRecord, len(clients))
	for _, c := range clients {
		clientsByID[c.ID] = c
	}

	var inputs []escalation.Input
	for _, m := range milestones {
		project, ok := projectsByID[m.ProjectID]
		if !ok {
			continue
		}
		client, ok := clientsByID[project.ClientID]
		if !ok {
			continue
		}
		inputs = append(inputs, escalation.Input{
			MilestoneID:    m.ID,
			ProjectID:      m.ProjectID,
			ClientID:       client.ID,
			MilestoneTitle: m.Title,
			ClientName:     client.Name,
			Owner:          coremilestone.Owner(m.Owner),
			Status:         coremilestone.Status(m.Status),
			DueDate:        m.DueDate,
		})
	}

	coreEvents := escalation.Evaluate(inputs, s.now())
	events := make([]*primary.EscalationEvent, len(coreEvents))
	for i, e := range coreEvents {
		events[i] = &primary.EscalationEvent{
			MilestoneID:   e.MilestoneID,
			ProjectID:     e.ProjectID,
			ClientID:      e.ClientID,
			Level:         int(e.Level),
			Label:         e.Level.Label(),
			DaysOverdue:   e.DaysOverdue,
			Subject:       e.Message.Subject,
			Body:          e.Message.Body,
			InternalAlert: e.Message.InternalAlert,
			Timestamp:     e.Timestamp.Format(time.RFC3339),
		}
	}
	return events, nil
}

// Status computes the current escalation tier of a single milestone.
func (s *EscalationServiceImpl) Status(ctx context.Context, milestoneID string) (*primary.EscalationStatus, error) {
	record, err := s.milestoneRepo.GetByID(ctx, milestoneID)
	if err != nil {
		return nil, err
	}

	status := &primary.EscalationStatus{MilestoneID: record.ID}
	if !escalation.Eligible(coremilestone.Owner(record.Owner), coremilestone.Status(record.Status)) {
		return status, nil
	}

	daysOverdue := coremilestone.DaysBetween(record.DueDate, s.now())
	if daysOverdue <= 0 {
		return status, nil
	}

	level := escalation.Classify(daysOverdue)
	status.Level = int(level)
	status.Label = level.Label()
	status.DaysOverdue = daysOverdue
	return status, nil
}

// Ensure EscalationServiceImpl implements the interface
var _ primary.EscalationService = (*EscalationServiceImpl)(nil)
