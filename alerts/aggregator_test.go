package alerts

import (
	"testing"
	"time"

	"github.com/rentfolio/rentfolio_backend/models"
	"github.com/rentfolio/rentfolio_backend/utils"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func ids(notifications []Notification) []string {
	out := make([]string, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, n.Id)
	}
	return out
}

func TestAggregateEmissionOrderAndIds(t *testing.T) {
	properties := []*models.Property{
		{ID: 1, Address: "1 Arrears Ave", Status: models.PropertyStatusArrears},
		{ID: 2, Address: "2 Vacant Vale", Status: models.PropertyStatusVacant},
		{ID: 3, Address: "3 Soon St", Status: models.PropertyStatusLeased,
			NextInspectionDate: datePtr(testNow.AddDate(0, 0, 5))},
	}
	tasks := []*models.MaintenanceTask{
		{ID: 10, Issue: "burst pipe", Priority: models.MaintenancePriorityUrgent, Status: models.MaintenanceStatusInProgress},
		{ID: 11, Issue: "squeaky door", Priority: models.MaintenancePriorityLow, Status: models.MaintenanceStatusNew},
	}
	events := []*models.CalendarEvent{
		{ID: 20, Date: testNow, CheckedOut: utils.NewFalse()},
	}

	got := Aggregate(properties, tasks, events, nil, testNow)

	want := []string{
		"arr-1",
		"maint-urg-10",
		"maint-new-11",
		"vac-2",
		"insp-3",
		"logbook-reminder-2026-03-10",
	}
	gotIds := ids(got)
	if len(gotIds) != len(want) {
		t.Fatalf("got %d notifications %v, want %d", len(gotIds), gotIds, len(want))
	}
	for i := range want {
		if gotIds[i] != want[i] {
			t.Fatalf("position %d: got id %q, want %q (full order %v)", i, gotIds[i], want[i], gotIds)
		}
	}
}

func TestAggregateDeterministicAcrossCalls(t *testing.T) {
	properties := []*models.Property{
		{ID: 7, Address: "7 Repeat Rd", Status: models.PropertyStatusArrears},
	}
	first := Aggregate(properties, nil, nil, nil, testNow)
	second := Aggregate(properties, nil, nil, nil, testNow)
	if len(first) != 1 || len(second) != 1 || first[0].Id != second[0].Id {
		t.Fatalf("ids not stable: %v vs %v", ids(first), ids(second))
	}
}

func TestAggregateDismissedSetDifference(t *testing.T) {
	properties := []*models.Property{
		{ID: 1, Address: "a", Status: models.PropertyStatusArrears},
		{ID: 2, Address: "b", Status: models.PropertyStatusVacant},
	}
	dismissed := map[string]bool{"arr-1": true}

	got := Aggregate(properties, nil, nil, dismissed, testNow)
	if len(got) != 1 || got[0].Id != "vac-2" {
		t.Fatalf("expected only vac-2 to survive, got %v", ids(got))
	}

	// Dismissing an id that no rule produced changes nothing.
	dismissed["ghost-99"] = true
	got = Aggregate(properties, nil, nil, dismissed, testNow)
	if len(got) != 1 || got[0].Id != "vac-2" {
		t.Fatalf("unknown dismissed id altered output: %v", ids(got))
	}
}

func TestAggregateInspectionWindow(t *testing.T) {
	cases := []struct {
		name   string
		offset time.Duration
		wantId string
	}{
		{"overdue", -48 * time.Hour, "insp-over-1"},
		{"due today", 12 * time.Hour, "insp-1"},
		{"inside window", 13 * 24 * time.Hour, "insp-1"},
		{"edge of window", 14 * 24 * time.Hour, "insp-1"},
		{"outside window", 20 * 24 * time.Hour, ""},
	}
	for _, tc := range cases {
		next := testNow.Add(tc.offset)
		properties := []*models.Property{
			{ID: 1, Address: "1 Window Way", Status: models.PropertyStatusLeased, NextInspectionDate: datePtr(next)},
		}
		got := Aggregate(properties, nil, nil, nil, testNow)
		if tc.wantId == "" {
			if len(got) != 0 {
				t.Fatalf("%s: expected no notification, got %v", tc.name, ids(got))
			}
			continue
		}
		if len(got) != 1 {
			t.Fatalf("%s: expected exactly one notification, got %v", tc.name, ids(got))
		}
		if got[0].Id != tc.wantId {
			t.Fatalf("%s: got id %q, want %q", tc.name, got[0].Id, tc.wantId)
		}
	}
}

func TestAggregateInspectionMutualExclusion(t *testing.T) {
	// One property can never emit both the due-soon and overdue ids.
	for days := -30; days <= 30; days++ {
		next := testNow.AddDate(0, 0, days)
		properties := []*models.Property{
			{ID: 1, Address: "x", Status: models.PropertyStatusLeased, NextInspectionDate: datePtr(next)},
		}
		got := Aggregate(properties, nil, nil, nil, testNow)
		if len(got) > 1 {
			t.Fatalf("offset %d days: emitted %v", days, ids(got))
		}
	}
}

func TestAggregateLogbookReminderSingleWithCount(t *testing.T) {
	events := []*models.CalendarEvent{
		{ID: 1, Date: testNow, Address: "a", CheckedOut: utils.NewFalse()},
		{ID: 2, Date: testNow, Address: "b", CheckedOut: utils.NewFalse()},
		{ID: 3, Date: testNow, Address: "c", CheckedOut: utils.NewTrue()},
		{ID: 4, Date: testNow.AddDate(0, 0, 1), Address: "d", CheckedOut: utils.NewFalse()},
	}
	got := Aggregate(nil, nil, events, nil, testNow)
	if len(got) != 1 {
		t.Fatalf("expected a single reminder, got %v", ids(got))
	}
	if got[0].Id != "logbook-reminder-2026-03-10" {
		t.Fatalf("unexpected reminder id %q", got[0].Id)
	}
	if got[0].Message != "2 appointments today are not checked out yet" {
		t.Fatalf("unexpected reminder message %q", got[0].Message)
	}
}

func TestAggregateCompletedUrgentTaskSilent(t *testing.T) {
	tasks := []*models.MaintenanceTask{
		{ID: 1, Issue: "done", Priority: models.MaintenancePriorityUrgent, Status: models.MaintenanceStatusCompleted},
	}
	got := Aggregate(nil, tasks, nil, nil, testNow)
	if len(got) != 0 {
		t.Fatalf("completed urgent task should not alert, got %v", ids(got))
	}
}
