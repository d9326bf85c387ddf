package app

import (
	"context"
	"testing"
	"time"

	"github.com/example/cadence/internal/ports/secondary"
)

func newEscalationTestHarness() (*EscalationServiceImpl, *mockMilestoneRepository, func() time.Time) {
	clientRepo := newMockClientRepository()
	clientRepo.clients["CLIENT-001"] = &secondary.ClientRecord{
		ID:    "CLIENT-001",
		Name:  "Acme GmbH",
		Email: "hello@acme.example",
	}

	projectRepo := newMockProjectRepository()
	projectRepo.projects["PROJ-001"] = &secondary.ProjectRecord{
		ID:       "PROJ-001",
		ClientID: "CLIENT-001",
		Title:    "Acme Website",
		Type:     "website",
	}

	milestoneRepo := newMockMilestoneRepository()
	now := fixedClock(date(2024, 1, 9))
	service := NewEscalationService(milestoneRepo, projectRepo, clientRepo, now)
	return service, milestoneRepo, now
}

func addMilestone(repo *mockMilestoneRepository, id, owner, status string, due time.Time) {
	repo.milestones[id] = &secondary.MilestoneRecord{
		ID:              id,
		ProjectID:       "PROJ-001",
		Order:           len(repo.milestones) + 1,
		Title:           "Step " + id,
		Status:          status,
		Owner:           owner,
		DueDate:         due,
		OriginalDueDate: due,
	}
}

func TestEvaluateClassifiesByDaysOverdue(t *testing.T) {
	service, milestoneRepo, _ := newEscalationTestHarness()

	// Against Jan 9: 8 days overdue (critical), 4 (urgent), 1 (reminder),
	// and one not yet due.
	addMilestone(milestoneRepo, "PROJ-001-M01", "client", "open", date(2024, 1, 1))
	addMilestone(milestoneRepo, "PROJ-001-M02", "client", "open", date(2024, 1, 5))
	addMilestone(milestoneRepo, "PROJ-001-M03", "client", "submitted", date(2024, 1, 8))
	addMilestone(milestoneRepo, "PROJ-001-M04", "client", "open", date(2024, 1, 20))

	events, err := service.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	byID := make(map[string]int)
	for _, e := range events {
		byID[e.MilestoneID] = e.Level
	}
	if byID["PROJ-001-M01"] != 3 {
		t.Errorf("expected level 3 at 8 days overdue, got %d", byID["PROJ-001-M01"])
	}
	if byID["PROJ-001-M02"] != 2 {
		t.Errorf("expected level 2 at 4 days overdue, got %d", byID["PROJ-001-M02"])
	}
	if byID["PROJ-001-M03"] != 1 {
		t.Errorf("expected level 1 at 1 day overdue, got %d", byID["PROJ-001-M03"])
	}

	for _, e := range events {
		if e.ClientID != "CLIENT-001" {
			t.Errorf("expected events joined to CLIENT-001, got %s", e.ClientID)
		}
		if e.Subject == "" || e.Body == "" {
			t.Errorf("event %s is missing its message", e.MilestoneID)
		}
		if e.Level == 3 && e.InternalAlert == "" {
			t.Error("critical events carry an internal alert")
		}
		if e.Level < 3 && e.InternalAlert != "" {
			t.Errorf("level %d events carry no internal alert", e.Level)
		}
	}
}

func TestEvaluateScopeExclusions(t *testing.T) {
	service, milestoneRepo, _ := newEscalationTestHarness()

	// All long overdue, none eligible: agency-owned, done, locked, in review.
	addMilestone(milestoneRepo, "PROJ-001-M01", "agency", "open", date(2024, 1, 1))
	addMilestone(milestoneRepo, "PROJ-001-M02", "client", "done", date(2024, 1, 1))
	addMilestone(milestoneRepo, "PROJ-001-M03", "client", "locked", date(2024, 1, 1))
	addMilestone(milestoneRepo, "PROJ-001-M04", "client", "in_review", date(2024, 1, 1))

	events, err := service.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}

func TestEvaluateSkipsOrphanedMilestones(t *testing.T) {
	service, milestoneRepo, _ := newEscalationTestHarness()

	addMilestone(milestoneRepo, "PROJ-001-M01", "client", "open", date(2024, 1, 1))
	// A milestone whose project no longer resolves is skipped, not an error.
	milestoneRepo.milestones["PROJ-999-M01"] = &secondary.MilestoneRecord{
		ID:        "PROJ-999-M01",
		ProjectID: "PROJ-999",
		Order:     1,
		Title:     "Orphan",
		Status:    "open",
		Owner:     "client",
		DueDate:   date(2024, 1, 1),
	}

	events, err := service.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(events) != 1 || events[0].MilestoneID != "PROJ-001-M01" {
		t.Fatalf("expected only the joined milestone, got %+v", events)
	}
}

func TestEvaluateIsRepeatable(t *testing.T) {
	service, milestoneRepo, _ := newEscalationTestHarness()
	addMilestone(milestoneRepo, "PROJ-001-M01", "client", "open", date(2024, 1, 1))

	first, err := service.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	second, err := service.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected one event per run, got %d and %d", len(first), len(second))
	}
	if first[0].Level != second[0].Level || first[0].DaysOverdue != second[0].DaysOverdue {
		t.Error("re-evaluation without state changes must yield the same result")
	}
}

func TestStatusSingleMilestone(t *testing.T) {
	service, milestoneRepo, _ := newEscalationTestHarness()
	addMilestone(milestoneRepo, "PROJ-001-M01", "client", "open", date(2024, 1, 1))
	addMilestone(milestoneRepo, "PROJ-001-M02", "agency", "open", date(2024, 1, 1))

	status, err := service.Status(context.Background(), "PROJ-001-M01")
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.Level != 3 || status.Label != "critical" {
		t.Errorf("expected critical level 3, got %d %q", status.Level, status.Label)
	}
	if status.DaysOverdue != 8 {
		t.Errorf("expected 8 days overdue, got %d", status.DaysOverdue)
	}

	// Ineligible milestones report level 0 instead of an error.
	status, err = service.Status(context.Background(), "PROJ-001-M02")
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.Level != 0 {
		t.Errorf("expected level 0 for an agency-owned milestone, got %d", status.Level)
	}
}
