// Package milestone contains the pure business logic for milestone operations.
// This is part of the Functional Core - no I/O, only pure functions.
package milestone

import (
	"fmt"
	"time"
)

// Status represents the possible states of a milestone.
type Status string

const (
	StatusLocked    Status = "locked"
	StatusOpen      Status = "open"
	StatusSubmitted Status = "submitted"
	StatusInReview  Status = "in_review"
	StatusDone      Status = "done"
)

// Owner identifies which side is responsible for completing a milestone.
type Owner string

const (
	OwnerAgency Owner = "agency"
	OwnerClient Owner = "client"
)

// ParseStatus validates a raw status string.
// Any known status is accepted as a transition target - the pipeline is
// deliberately permissive about jumps, only unknown values are rejected.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusLocked, StatusOpen, StatusSubmitted, StatusInReview, StatusDone:
		return Status(raw), nil
	}
	return "", fmt.Errorf("unknown milestone status %q (valid: locked, open, submitted, in_review, done)", raw)
}

// ParseOwner validates a raw owner string.
func ParseOwner(raw string) (Owner, error) {
	switch Owner(raw) {
	case OwnerAgency, OwnerClient:
		return Owner(raw), nil
	}
	return "", fmt.Errorf("unknown milestone owner %q (valid: agency, client)", raw)
}

// InitialStatus returns the status a milestone carries at instantiation time.
// Only the first milestone of a project starts actionable.
func InitialStatus(order int) Status {
	if order == 1 {
		return StatusOpen
	}
	return StatusLocked
}

// StatusChangeResult captures the stamps a status change carries with it.
// Only entering done stamps CompletedAt; submission stamping is a separate
// client-facing action (see ApplySubmission).
type StatusChangeResult struct {
	NewStatus   Status
	CompletedAt *time.Time
}

// ApplyStatusChange applies a status change and returns the resulting stamps.
// The caller passes the current time to keep this testable.
func ApplyStatusChange(newStatus Status, now time.Time) StatusChangeResult {
	result := StatusChangeResult{NewStatus: newStatus}
	if newStatus == StatusDone {
		result.CompletedAt = &now
	}
	return result
}

// SubmissionResult captures the client "I'm done" self-service action.
type SubmissionResult struct {
	NewStatus   Status
	SubmittedAt time.Time
}

// ApplySubmission marks a milestone as handed in by the client. It never
// unlocks the next milestone - only an agency confirmation to done does that.
func ApplySubmission(now time.Time) SubmissionResult {
	return SubmissionResult{NewStatus: StatusSubmitted, SubmittedAt: now}
}
