// Package milestone contains the pure business logic for milestone operations.
// This file holds the deadline cascade: the uniform forward shift applied to
// downstream due dates after a late completion.
package milestone

import "time"

// Snapshot is the minimal read model the pure functions operate on.
// Callers pre-fetch a project's milestones and convert them - no I/O here.
type Snapshot struct {
	ID      string
	Order   int
	Status  Status
	DueDate time.Time
}

// DueDateShift describes one milestone's rescheduled due date.
type DueDateShift struct {
	MilestoneID string
	NewDueDate  time.Time
}

// DaysBetween returns the number of whole 24h days from one instant to the
// next, truncated toward zero. Negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// DelayDays measures how late a completion is against the immutable original
// due date. Measuring against originalDueDate rather than the possibly
// already-shifted dueDate is what keeps repeated cascades accumulating
// correctly: every completion re-measures against its own fixed baseline.
func DelayDays(originalDueDate, completedAt time.Time) int {
	return DaysBetween(originalDueDate, completedAt)
}

// ShouldCascade reports whether a completion triggers a deadline cascade.
// On-time or early completions (delay <= 0) never cascade; the per-project
// policy flag gates the whole mechanism.
func ShouldCascade(cascadePolicyEnabled bool, delayDays int) bool {
	return cascadePolicyEnabled && delayDays > 0
}

// ShiftDueDates computes the cascade for every milestone after fromOrder:
// each due date moves forward by exactly delayDays calendar days, preserving
// relative spacing. Original due dates are never part of the shift.
func ShiftDueDates(milestones []Snapshot, fromOrder, delayDays int) []DueDateShift {
	var shifts []DueDateShift
	for _, m := range milestones {
		if m.Order > fromOrder {
			shifts = append(shifts, DueDateShift{
				MilestoneID: m.ID,
				NewDueDate:  m.DueDate.AddDate(0, 0, delayDays),
			})
		}
	}
	return shifts
}

// NextToUnlock returns the milestone at order+1 if it exists and is locked.
// Completing a milestone is the only mechanism that advances the pipeline.
func NextToUnlock(milestones []Snapshot, completedOrder int) (Snapshot, bool) {
	for _, m := range milestones {
		if m.Order == completedOrder+1 && m.Status == StatusLocked {
			return m, true
		}
	}
	return Snapshot{}, false
}

// CurrentMilestone returns the lowest-order milestone that is neither done
// nor locked - the single step the project is waiting on right now.
func CurrentMilestone(milestones []Snapshot) (Snapshot, bool) {
	var current Snapshot
	found := false
	for _, m := range milestones {
		if m.Status == StatusDone || m.Status == StatusLocked {
			continue
		}
		if !found || m.Order < current.Order {
			current = m
			found = true
		}
	}
	return current, found
}
