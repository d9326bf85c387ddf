package secondary

import (
	"context"
	"time"
)

// Notifier defines the secondary port for escalation delivery. The core only
// classifies; whatever sends mail, SMS or chat messages - and whatever
// deduplicates repeat sends across evaluation cycles - lives behind this port.
type Notifier interface {
	// Deliver hands one escalation notice to the dispatcher.
	Deliver(ctx context.Context, notice *EscalationNotice) error
}

// EscalationNotice is one escalation event at the delivery boundary.
type EscalationNotice struct {
	MilestoneID   string
	ProjectID     string
	ClientID      string
	Level         int // 1 reminder, 2 urgent, 3 critical
	DaysOverdue   int
	Subject       string
	Body          string
	InternalAlert string // Only set at level 3
	Timestamp     time.Time
}
