// Package notify contains the delivery-side adapter for escalation events.
// The LogNotifier stands in for a real mail/SMS gateway: it writes each
// notice as a structured log line. Deduplicating repeat sends across
// evaluation cycles would live in a sibling adapter at this boundary, not in
// the core.
package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/example/cadence/internal/ports/secondary"
)

// LogNotifier implements secondary.Notifier on top of a logrus logger.
type LogNotifier struct {
	log *logrus.Logger
}

// NewLogNotifier creates a notifier writing to the given logger.
func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Deliver logs one escalation notice. Reminder notices log at info, urgent
// at warn, critical at error plus a separate internal-alert line.
func (n *LogNotifier) Deliver(ctx context.Context, notice *secondary.EscalationNotice) error {
	entry := n.log.WithFields(logrus.Fields{
		"milestone_id": notice.MilestoneID,
		"project_id":   notice.ProjectID,
		"client_id":    notice.ClientID,
		"level":        notice.Level,
		"days_overdue": notice.DaysOverdue,
		"subject":      notice.Subject,
	})

	switch notice.Level {
	case 1:
		entry.Info(notice.Body)
	case 2:
		entry.Warn(notice.Body)
	default:
		entry.Error(notice.Body)
		if notice.InternalAlert != "" {
			n.log.WithFields(logrus.Fields{
				"milestone_id": notice.MilestoneID,
				"client_id":    notice.ClientID,
			}).Error(notice.InternalAlert)
		}
	}
	return nil
}

// Ensure LogNotifier implements the interface
var _ secondary.Notifier = (*LogNotifier)(nil)
