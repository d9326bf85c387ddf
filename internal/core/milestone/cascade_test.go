package milestone

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{name: "same instant", from: date(2024, 1, 1), to: date(2024, 1, 1), want: 0},
		{name: "four days late", from: date(2024, 1, 1), to: date(2024, 1, 5), want: 4},
		{name: "eight days late", from: date(2024, 1, 1), to: date(2024, 1, 9), want: 8},
		{name: "early completion is negative", from: date(2024, 1, 5), to: date(2024, 1, 3), want: -2},
		{name: "partial day truncates", from: date(2024, 1, 1), to: time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShouldCascade(t *testing.T) {
	tests := []struct {
		name          string
		policyEnabled bool
		delayDays     int
		want          bool
	}{
		{name: "late with policy on", policyEnabled: true, delayDays: 4, want: true},
		{name: "late with policy off", policyEnabled: false, delayDays: 4, want: false},
		{name: "on time never cascades", policyEnabled: true, delayDays: 0, want: false},
		{name: "early never cascades", policyEnabled: true, delayDays: -2, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldCascade(tt.policyEnabled, tt.delayDays); got != tt.want {
				t.Errorf("ShouldCascade(%v, %d) = %v, want %v", tt.policyEnabled, tt.delayDays, got, tt.want)
			}
		})
	}
}

func TestShiftDueDates(t *testing.T) {
	milestones := []Snapshot{
		{ID: "MS-1", Order: 1, Status: StatusDone, DueDate: date(2024, 1, 1)},
		{ID: "MS-2", Order: 2, Status: StatusLocked, DueDate: date(2024, 1, 8)},
		{ID: "MS-3", Order: 3, Status: StatusLocked, DueDate: date(2024, 1, 11)},
	}

	shifts := ShiftDueDates(milestones, 1, 4)

	if len(shifts) != 2 {
		t.Fatalf("got %d shifts, want 2", len(shifts))
	}
	if shifts[0].MilestoneID != "MS-2" || !shifts[0].NewDueDate.Equal(date(2024, 1, 12)) {
		t.Errorf("shift[0] = %+v, want MS-2 at 2024-01-12", shifts[0])
	}
	if shifts[1].MilestoneID != "MS-3" || !shifts[1].NewDueDate.Equal(date(2024, 1, 15)) {
		t.Errorf("shift[1] = %+v, want MS-3 at 2024-01-15", shifts[1])
	}
}

func TestShiftDueDatesPreservesSpacing(t *testing.T) {
	milestones := []Snapshot{
		{ID: "MS-2", Order: 2, DueDate: date(2024, 1, 8)},
		{ID: "MS-3", Order: 3, DueDate: date(2024, 1, 11)},
		{ID: "MS-4", Order: 4, DueDate: date(2024, 1, 16)},
	}

	shifts := ShiftDueDates(milestones, 1, 3)

	// Spacing between consecutive milestones must survive the uniform shift.
	gap1 := shifts[1].NewDueDate.Sub(shifts[0].NewDueDate)
	gap2 := shifts[2].NewDueDate.Sub(shifts[1].NewDueDate)
	if gap1 != 72*time.Hour {
		t.Errorf("gap MS-2..MS-3 = %v, want 72h", gap1)
	}
	if gap2 != 120*time.Hour {
		t.Errorf("gap MS-3..MS-4 = %v, want 120h", gap2)
	}
}

func TestShiftDueDatesOnlyDownstream(t *testing.T) {
	milestones := []Snapshot{
		{ID: "MS-1", Order: 1, DueDate: date(2024, 1, 1)},
		{ID: "MS-2", Order: 2, DueDate: date(2024, 1, 8)},
	}

	shifts := ShiftDueDates(milestones, 2, 5)

	if len(shifts) != 0 {
		t.Errorf("got %d shifts for trailing milestone, want 0", len(shifts))
	}
}

func TestNextToUnlock(t *testing.T) {
	tests := []struct {
		name           string
		milestones     []Snapshot
		completedOrder int
		wantID         string
		wantFound      bool
	}{
		{
			name: "unlocks locked successor",
			milestones: []Snapshot{
				{ID: "MS-1", Order: 1, Status: StatusDone},
				{ID: "MS-2", Order: 2, Status: StatusLocked},
			},
			completedOrder: 1,
			wantID:         "MS-2",
			wantFound:      true,
		},
		{
			name: "already open successor is left alone",
			milestones: []Snapshot{
				{ID: "MS-1", Order: 1, Status: StatusDone},
				{ID: "MS-2", Order: 2, Status: StatusOpen},
			},
			completedOrder: 1,
			wantFound:      false,
		},
		{
			name: "last milestone has no successor",
			milestones: []Snapshot{
				{ID: "MS-1", Order: 1, Status: StatusDone},
			},
			completedOrder: 1,
			wantFound:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := NextToUnlock(tt.milestones, tt.completedOrder)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if found && got.ID != tt.wantID {
				t.Errorf("unlocked ID = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}

func TestCurrentMilestone(t *testing.T) {
	tests := []struct {
		name       string
		milestones []Snapshot
		wantID     string
		wantFound  bool
	}{
		{
			name: "first open milestone is current",
			milestones: []Snapshot{
				{ID: "MS-1", Order: 1, Status: StatusOpen},
				{ID: "MS-2", Order: 2, Status: StatusLocked},
			},
			wantID:    "MS-1",
			wantFound: true,
		},
		{
			name: "submitted milestone is still current",
			milestones: []Snapshot{
				{ID: "MS-1", Order: 1, Status: StatusDone},
				{ID: "MS-2", Order: 2, Status: StatusSubmitted},
				{ID: "MS-3", Order: 3, Status: StatusLocked},
			},
			wantID:    "MS-2",
			wantFound: true,
		},
		{
			name: "all done or locked yields none",
			milestones: []Snapshot{
				{ID: "MS-1", Order: 1, Status: StatusDone},
				{ID: "MS-2", Order: 2, Status: StatusLocked},
			},
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := CurrentMilestone(tt.milestones)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if found && got.ID != tt.wantID {
				t.Errorf("current ID = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}
