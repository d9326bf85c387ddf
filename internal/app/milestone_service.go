package app

import (
	"context"
	"fmt"
	"time"

	coremilestone "github.com/example/cadence/internal/core/milestone"
	"github.com/example/cadence/internal/ports/primary"
	"github.com/example/cadence/internal/ports/secondary"
)

// MilestoneServiceImpl implements the MilestoneService interface.
type MilestoneServiceImpl struct {
	milestoneRepo secondary.MilestoneRepository
	projectRepo   secondary.ProjectRepository
	activityRepo  secondary.ActivityLogRepository
	now           func() time.Time
}

// NewMilestoneService creates a new MilestoneService with injected
// dependencies. now is the clock used to stamp transitions; production
// wiring passes time.Now.
func NewMilestoneService(
	milestoneRepo secondary.MilestoneRepository,
	projectRepo secondary.ProjectRepository,
	activityRepo secondary.ActivityLogRepository,
	now func() time.Time,
) *MilestoneServiceImpl {
	return &MilestoneServiceImpl{
		milestoneRepo: milestoneRepo,
		projectRepo:   projectRepo,
		activityRepo:  activityRepo,
		now:           now,
	}
}

// GetMilestone retrieves a milestone by ID.
func (s *MilestoneServiceImpl) GetMilestone(ctx context.Context, milestoneID string) (*primary.Milestone, error) {
	record, err := s.milestoneRepo.GetByID(ctx, milestoneID)
	if err != nil {
		return nil, err
	}
	return recordToMilestone(record), nil
}

// ListMilestones lists milestones with optional filters.
func (s *MilestoneServiceImpl) ListMilestones(ctx context.Context, filters primary.MilestoneFilters) ([]*primary.Milestone, error) {
	records, err := s.milestoneRepo.List(ctx, secondary.MilestoneFilters{
		ProjectID: filters.ProjectID,
		Status:    filters.Status,
		Owner:     filters.Owner,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}

	milestones := make([]*primary.Milestone, len(records))
	for i, r := range records {
		milestones[i] = recordToMilestone(r)
	}
	return milestones, nil
}

// SetStatus applies an agency-driven status change. Entering done stamps
// completedAt, cascades downstream due dates when the project's policy
// allows and the completion is late, and unlocks the successor. All effects
// are persisted in one transaction.
func (s *MilestoneServiceImpl) SetStatus(ctx context.Context, req primary.SetStatusRequest) (*primary.SetStatusResponse, error) {
	status, err := coremilestone.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	record, err := s.milestoneRepo.GetByID(ctx, req.MilestoneID)
	if err != nil {
		return nil, err
	}

	if status != coremilestone.StatusDone {
		if err := s.milestoneRepo.UpdateStatus(ctx, record.ID, string(status)); err != nil {
			return nil, err
		}
		s.logActivity(ctx, record.ProjectID, "milestone_status_changed",
			fmt.Sprintf("Milestone %q changed to %s.", record.Title, status))

		updated, err := s.milestoneRepo.GetByID(ctx, record.ID)
		if err != nil {
			return nil, err
		}
		return &primary.SetStatusResponse{Milestone: recordToMilestone(updated)}, nil
	}

	return s.complete(ctx, record)
}

// complete handles the done transition with all of its side effects.
func (s *MilestoneServiceImpl) complete(ctx context.Context, record *secondary.MilestoneRecord) (*primary.SetStatusResponse, error) {
	now := s.now()

	project, err := s.projectRepo.GetByID(ctx, record.ProjectID)
	if err != nil {
		return nil, err
	}

	siblings, err := s.milestoneRepo.GetByProject(ctx, record.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project milestones: %w", err)
	}
	snapshots := recordsToSnapshots(siblings)

	update := secondary.CompletionUpdate{
		MilestoneID: record.ID,
		CompletedAt: now,
	}

	// The delay is measured against the immutable baseline, so sequences
	// that were already shifted do not compound their delays.
	delayDays := coremilestone.DelayDays(record.OriginalDueDate, now)
	var cascade *primary.CascadeResult
	if coremilestone.ShouldCascade(project.CascadePolicyEnabled, delayDays) {
		shifts := coremilestone.ShiftDueDates(snapshots, record.Order, delayDays)
		for _, shift := range shifts {
			update.Shifts = append(update.Shifts, secondary.DueDateShiftRecord{
				MilestoneID: shift.MilestoneID,
				NewDueDate:  shift.NewDueDate,
			})
		}
		if len(shifts) > 0 {
			cascade = &primary.CascadeResult{
				ProjectID:    record.ProjectID,
				FromOrder:    record.Order,
				DelayDays:    delayDays,
				ShiftedCount: len(shifts),
			}
		}
	}

	successor, hasSuccessor := coremilestone.NextToUnlock(snapshots, record.Order)
	if hasSuccessor {
		update.UnlockID = successor.ID
	}

	if err := s.milestoneRepo.ApplyCompletion(ctx, update); err != nil {
		return nil, err
	}

	s.logActivity(ctx, record.ProjectID, "milestone_status_changed",
		fmt.Sprintf("Milestone %q completed.", record.Title))
	if cascade != nil {
		s.logActivity(ctx, record.ProjectID, "deadline_cascade",
			fmt.Sprintf("Completion was %d day(s) late; %d downstream milestone(s) rescheduled.",
				cascade.DelayDays, cascade.ShiftedCount))
	}

	updated, err := s.milestoneRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, err
	}

	resp := &primary.SetStatusResponse{
		Milestone: recordToMilestone(updated),
		Cascade:   cascade,
	}
	if hasSuccessor {
		unlocked, err := s.milestoneRepo.GetByID(ctx, successor.ID)
		if err != nil {
			return nil, err
		}
		resp.Unlocked = recordToMilestone(unlocked)
	}
	return resp, nil
}

// Submit applies the client's "I'm done" action.
func (s *MilestoneServiceImpl) Submit(ctx context.Context, milestoneID string) (*primary.Milestone, error) {
	record, err := s.milestoneRepo.GetByID(ctx, milestoneID)
	if err != nil {
		return nil, err
	}

	submission := coremilestone.ApplySubmission(s.now())
	if err := s.milestoneRepo.MarkSubmitted(ctx, record.ID, submission.SubmittedAt); err != nil {
		return nil, err
	}

	s.logActivity(ctx, record.ProjectID, "milestone_submitted",
		fmt.Sprintf("Milestone %q was submitted by the client.", record.Title))

	updated, err := s.milestoneRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	return recordToMilestone(updated), nil
}

// CascadeDeadlines shifts every milestone after fromOrder forward by
// delayDays calendar days, regardless of the project's cascade policy.
func (s *MilestoneServiceImpl) CascadeDeadlines(ctx context.Context, projectID string, fromOrder, delayDays int) ([]*primary.Milestone, error) {
	if delayDays <= 0 {
		return nil, fmt.Errorf("delay days must be positive, got %d", delayDays)
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	records, err := s.milestoneRepo.GetByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project milestones: %w", err)
	}

	shifts := coremilestone.ShiftDueDates(recordsToSnapshots(records), fromOrder, delayDays)
	if len(shifts) > 0 {
		shiftRecords := make([]secondary.DueDateShiftRecord, len(shifts))
		for i, shift := range shifts {
			shiftRecords[i] = secondary.DueDateShiftRecord{
				MilestoneID: shift.MilestoneID,
				NewDueDate:  shift.NewDueDate,
			}
		}
		if err := s.milestoneRepo.ShiftDueDates(ctx, shiftRecords); err != nil {
			return nil, err
		}

		s.logActivity(ctx, projectID, "deadline_cascade",
			fmt.Sprintf("%d milestone(s) after step %d rescheduled by %d day(s).",
				len(shifts), fromOrder, delayDays))
	}

	updated, err := s.milestoneRepo.GetByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	milestones := make([]*primary.Milestone, len(updated))
	for i, r := range updated {
		milestones[i] = recordToMilestone(r)
	}
	return milestones, nil
}

// CurrentMilestone returns the project's single current step.
func (s *MilestoneServiceImpl) CurrentMilestone(ctx context.Context, projectID string) (*primary.Milestone, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	records, err := s.milestoneRepo.GetByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project milestones: %w", err)
	}

	current, ok := coremilestone.CurrentMilestone(recordsToSnapshots(records))
	if !ok {
		return nil, fmt.Errorf("project %s has no current milestone: %w", projectID, secondary.ErrNotFound)
	}
	return s.GetMilestone(ctx, current.ID)
}

func (s *MilestoneServiceImpl) logActivity(ctx context.Context, projectID, activityType, message string) {
	_ = s.activityRepo.Append(ctx, &secondary.ActivityRecord{
		ProjectID: projectID,
		Type:      activityType,
		Message:   message,
	})
}

func recordsToSnapshots(records []*secondary.MilestoneRecord) []coremilestone.Snapshot {
	snapshots := make([]coremilestone.Snapshot, len(records))
	for i, r := range records {
		snapshots[i] = coremilestone.Snapshot{
			ID:      r.ID,
			Order:   r.Order,
			Status:  coremilestone.Status(r.Status),
			DueDate: r.DueDate,
		}
	}
	return snapshots
}

func recordToMilestone(r *secondary.MilestoneRecord) *primary.Milestone {
	m := &primary.Milestone{
		ID:              r.ID,
		ProjectID:       r.ProjectID,
		Order:           r.Order,
		Title:           r.Title,
		Description:     r.Description,
		Status:          r.Status,
		Owner:           r.Owner,
		Category:        r.Category,
		DueDate:         r.DueDate.Format(time.RFC3339),
		OriginalDueDate: r.OriginalDueDate.Format(time.RFC3339),
		ActionURL:       r.ActionURL,
		ActionLabel:     r.ActionLabel,
	}
	if r.SubmittedAt != nil {
		m.SubmittedAt = r.SubmittedAt.Format(time.RFC3339)
	}
	if r.CompletedAt != nil {
		m.CompletedAt = r.CompletedAt.Format(time.RFC3339)
	}
	return m
}

// Ensure MilestoneServiceImpl implements the interface
var _ primary.MilestoneService = (*MilestoneServiceImpl)(nil)
