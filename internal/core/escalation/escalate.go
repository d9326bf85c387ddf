// Package escalation contains the pure classification logic for overdue
// client-owned milestones. It only computes events - delivering them (and
// deduplicating repeat sends) is the notification dispatcher's job.
package escalation

import (
	"fmt"
	"time"

	"github.com/example/cadence/internal/core/milestone"
)

// Level is the severity tier of an overdue milestone.
type Level int

const (
	LevelNone     Level = 0
	LevelReminder Level = 1
	LevelUrgent   Level = 2
	LevelCritical Level = 3
)

// Tier thresholds in days overdue, evaluated highest first.
const (
	criticalAfterDays = 7
	urgentAfterDays   = 3
	reminderAfterDays = 1
)

// Label returns the human-readable tier name.
func (l Level) Label() string {
	switch l {
	case LevelReminder:
		return "reminder"
	case LevelUrgent:
		return "urgent"
	case LevelCritical:
		return "critical"
	}
	return "none"
}

// Classify maps days overdue to a severity tier.
func Classify(daysOverdue int) Level {
	switch {
	case daysOverdue >= criticalAfterDays:
		return LevelCritical
	case daysOverdue >= urgentAfterDays:
		return LevelUrgent
	case daysOverdue >= reminderAfterDays:
		return LevelReminder
	}
	return LevelNone
}

// Eligible reports whether a milestone can escalate at all: only client-owned
// milestones that are open or submitted. Agency work and done/locked/in_review
// milestones never escalate.
func Eligible(owner milestone.Owner, status milestone.Status) bool {
	if owner != milestone.OwnerClient {
		return false
	}
	return status == milestone.StatusOpen || status == milestone.StatusSubmitted
}

// Message is the templated notification content for one escalation event.
// InternalAlert is only set at the critical tier and is addressed to the
// agency, not the client.
type Message struct {
	Subject       string
	Body          string
	InternalAlert string
}

// ComposeMessage renders the tier-specific notification text.
func ComposeMessage(level Level, milestoneTitle, clientName string, daysOverdue int) Message {
	switch level {
	case LevelReminder:
		return Message{
			Subject: "Friendly reminder",
			Body:    fmt.Sprintf("Hi %s, a friendly reminder: %q has been due since yesterday. Please log in to the portal and complete this step.", clientName, milestoneTitle),
		}
	case LevelUrgent:
		return Message{
			Subject: "URGENT: action required",
			Body:    fmt.Sprintf("URGENT: Hi %s, we have been waiting %d days for %q to continue. Please submit it today to avoid further delays.", clientName, daysOverdue, milestoneTitle),
		}
	case LevelCritical:
		return Message{
			Subject:       "CRITICAL: project progress blocked",
			Body:          fmt.Sprintf("CRITICAL: project progress is blocked. %q has been overdue for %d days. Please contact us immediately.", milestoneTitle, daysOverdue),
			InternalAlert: fmt.Sprintf("ATTENTION: client %q is %d days overdue on %q. The project is critically blocked.", clientName, daysOverdue, milestoneTitle),
		}
	}
	return Message{}
}

// Input is one milestone's evaluation snapshot, pre-joined with its project
// and client by the caller.
type Input struct {
	MilestoneID    string
	ProjectID      string
	ClientID       string
	MilestoneTitle string
	ClientName     string
	Owner          milestone.Owner
	Status         milestone.Status
	DueDate        time.Time
}

// Event is one escalation produced for an overdue milestone. Events are
// ephemeral: recomputed on every evaluation, never stored by the core.
type Event struct {
	MilestoneID string
	ProjectID   string
	ClientID    string
	Level       Level
	DaysOverdue int
	Message     Message
	Timestamp   time.Time
}

// Evaluate classifies every eligible overdue milestone in the snapshot.
// Pure given (inputs, now): repeated calls without state changes yield
// identical results, so periodic re-evaluation is safe without a dedup
// ledger at this layer.
func Evaluate(inputs []Input, now time.Time) []Event {
	var events []Event
	for _, in := range inputs {
		if !Eligible(in.Owner, in.Status) {
			continue
		}
		daysOverdue := milestone.DaysBetween(in.DueDate, now)
		if daysOverdue <= 0 {
			continue
		}
		level := Classify(daysOverdue)
		if level == LevelNone {
			continue
		}
		events = append(events, Event{
			MilestoneID: in.MilestoneID,
			ProjectID:   in.ProjectID,
			ClientID:    in.ClientID,
			Level:       level,
			DaysOverdue: daysOverdue,
			Message:     ComposeMessage(level, in.MilestoneTitle, in.ClientName, daysOverdue),
			Timestamp:   now,
		})
	}
	return events
}
