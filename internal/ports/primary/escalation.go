package primary

import "context"

// EscalationService defines the primary port for escalation evaluation.
// Evaluation is a pure read over the current milestone snapshot: it computes
// events but never sends anything.
type EscalationService interface {
	// Evaluate classifies every overdue client-owned milestone and returns
	// one event per qualifying milestone.
	Evaluate(ctx context.Context) ([]*EscalationEvent, error)

	// Status computes the current escalation tier of a single milestone,
	// for dashboard-style views. Level 0 means not escalated.
	Status(ctx context.Context, milestoneID string) (*EscalationStatus, error)
}

// EscalationEvent is one escalation at the port boundary.
type EscalationEvent struct {
	MilestoneID   string
	ProjectID     string
	ClientID      string
	Level         int
	Label         string // reminder, urgent, critical
	DaysOverdue   int
	Subject       string
	Body          string
	InternalAlert string // Only set at level 3
	Timestamp     string
}

// EscalationStatus is the per-milestone dashboard view.
type EscalationStatus struct {
	MilestoneID string
	Level       int // 0 when not escalated
	Label       string
	DaysOverdue int
}
