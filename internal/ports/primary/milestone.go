package primary

import "context"

// MilestoneService defines the primary port for milestone operations: the
// state machine, the client submission action, and the deadline cascade.
type MilestoneService interface {
	// GetMilestone retrieves a milestone by ID.
	GetMilestone(ctx context.Context, milestoneID string) (*Milestone, error)

	// ListMilestones lists milestones with optional filters.
	ListMilestones(ctx context.Context, filters MilestoneFilters) ([]*Milestone, error)

	// SetStatus applies an agency-driven status change. Entering done stamps
	// completedAt, triggers the deadline cascade when the project's policy
	// allows and the completion is late, and unlocks the next milestone.
	// All effects of one call are applied atomically.
	SetStatus(ctx context.Context, req SetStatusRequest) (*SetStatusResponse, error)

	// Submit applies the client's "I'm done" action: stamps submittedAt and
	// sets status to submitted. Never unlocks or cascades.
	Submit(ctx context.Context, milestoneID string) (*Milestone, error)

	// CascadeDeadlines shifts every milestone after fromOrder forward by
	// delayDays calendar days. delayDays must be positive. Returns the
	// project's milestones after the shift.
	CascadeDeadlines(ctx context.Context, projectID string, fromOrder, delayDays int) ([]*Milestone, error)

	// CurrentMilestone returns the project's single current step: the
	// lowest-order milestone that is neither done nor locked.
	CurrentMilestone(ctx context.Context, projectID string) (*Milestone, error)
}

// SetStatusRequest contains parameters for a status change.
type SetStatusRequest struct {
	MilestoneID string
	Status      string
}

// SetStatusResponse reports the status change and its side effects.
type SetStatusResponse struct {
	Milestone *Milestone
	// Cascade describes the deadline cascade this completion triggered,
	// nil when none was.
	Cascade *CascadeResult
	// Unlocked is the successor milestone opened by this completion,
	// nil when none was.
	Unlocked *Milestone
}

// CascadeResult describes one triggered deadline cascade.
type CascadeResult struct {
	ProjectID    string
	FromOrder    int
	DelayDays    int
	ShiftedCount int
}

// MilestoneFilters contains filter options for querying milestones.
type MilestoneFilters struct {
	ProjectID string
	Status    string
	Owner     string
}

// Milestone represents a milestone entity at the port boundary.
type Milestone struct {
	ID              string
	ProjectID       string
	Order           int
	Title           string
	Description     string
	Status          string
	Owner           string
	Category        string
	DueDate         string
	OriginalDueDate string
	ActionURL       string
	ActionLabel     string
	SubmittedAt     string
	CompletedAt     string
}
