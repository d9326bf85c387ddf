// Package schedule contains the pure planning logic for project
// instantiation: turning an ordered list of milestone blueprints plus a start
// date into concrete milestones with absolute due dates.
// This is part of the Functional Core - no I/O, only pure functions.
package schedule

import (
	"fmt"
	"time"

	"github.com/example/cadence/internal/core/milestone"
)

// Blueprint is one step of a project template: everything needed to
// materialize a milestone except the absolute dates.
// DaysOffset is relative to the previous blueprint's resolved due date; the
// first blueprint's offset is applied to the start date (typically 0).
type Blueprint struct {
	Order       int
	Title       string
	Description string
	Owner       milestone.Owner
	Category    string
	DaysOffset  int
	ActionURL   string
	ActionLabel string
}

// PlannedMilestone is a fully scheduled milestone ready for persistence.
// DueDate and OriginalDueDate start out identical; only cascades ever move
// DueDate afterwards.
type PlannedMilestone struct {
	Order           int
	Title           string
	Description     string
	Owner           milestone.Owner
	Category        string
	Status          milestone.Status
	DueDate         time.Time
	OriginalDueDate time.Time
	ActionURL       string
	ActionLabel     string
}

// ValidateBlueprints checks that the sequence is usable: non-empty, order
// values exactly 1..N in slice order, and no negative offsets.
func ValidateBlueprints(blueprints []Blueprint) error {
	if len(blueprints) == 0 {
		return fmt.Errorf("template has no milestone blueprints")
	}
	for i, bp := range blueprints {
		if bp.Order != i+1 {
			return fmt.Errorf("invalid blueprint sequence: position %d has order %d (orders must be contiguous 1..%d)", i+1, bp.Order, len(blueprints))
		}
		if bp.DaysOffset < 0 {
			return fmt.Errorf("invalid blueprint sequence: order %d has negative daysOffset %d", bp.Order, bp.DaysOffset)
		}
		if bp.Title == "" {
			return fmt.Errorf("invalid blueprint sequence: order %d has empty title", bp.Order)
		}
	}
	return nil
}

// BuildSchedule resolves absolute due dates by walking the blueprints with a
// running date: each step advances the date by its offset from the previous
// step. The first milestone starts open, all later ones locked.
func BuildSchedule(startDate time.Time, blueprints []Blueprint) ([]PlannedMilestone, error) {
	if err := ValidateBlueprints(blueprints); err != nil {
		return nil, err
	}

	planned := make([]PlannedMilestone, 0, len(blueprints))
	currentDate := startDate
	for _, bp := range blueprints {
		currentDate = currentDate.AddDate(0, 0, bp.DaysOffset)
		planned = append(planned, PlannedMilestone{
			Order:           bp.Order,
			Title:           bp.Title,
			Description:     bp.Description,
			Owner:           bp.Owner,
			Category:        bp.Category,
			Status:          milestone.InitialStatus(bp.Order),
			DueDate:         currentDate,
			OriginalDueDate: currentDate,
			ActionURL:       bp.ActionURL,
			ActionLabel:     bp.ActionLabel,
		})
	}
	return planned, nil
}
