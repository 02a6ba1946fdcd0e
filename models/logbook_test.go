package models

import (
	"errors"
	"testing"
	"time"
)

func TestProposeTripEmptyLedger(t *testing.T) {
	start, end := ProposeTrip(nil)
	if start != 0 || end != 10 {
		t.Fatalf("got start=%d end=%d, want 0 and 10", start, end)
	}
}

func TestProposeTripContinuesLedger(t *testing.T) {
	ledger := []*LogbookEntry{
		{Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), StartOdo: 45228, EndOdo: 45240},
		{Date: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), StartOdo: 45210, EndOdo: 45228},
	}
	start, end := ProposeTrip(ledger)
	if start != 45240 || end != 45250 {
		t.Fatalf("got start=%d end=%d, want 45240 and 45250", start, end)
	}
}

func TestCreateLogbookEntryRejectsNonForwardOdometer(t *testing.T) {
	cases := []struct{ start, end int }{
		{100, 100},
		{100, 90},
	}
	for _, tc := range cases {
		input := NewLogbookEntry{
			Date: "2026-03-10", Vehicle: "ute",
			StartOdo: tc.start, EndOdo: tc.end,
		}
		_, err := input.toEntry("biz-1")
		if !errors.Is(err, ErrOdometerNotForward) {
			t.Fatalf("start=%d end=%d: got err %v, want ErrOdometerNotForward", tc.start, tc.end, err)
		}
	}
}

func TestCreateLogbookEntryDistance(t *testing.T) {
	input := NewLogbookEntry{
		Date: "2026-03-10", Vehicle: "ute",
		StartOdo: 45240, EndOdo: 45263,
	}
	entry, err := input.toEntry("biz-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Distance != 23 {
		t.Fatalf("got distance %d, want 23", entry.Distance)
	}
	if entry.Category != TripCategoryBusiness {
		t.Fatalf("default category should be Business, got %s", entry.Category)
	}
}

func TestCreateLogbookEntryRejectsBadDate(t *testing.T) {
	input := NewLogbookEntry{
		Date: "10/03/2026", Vehicle: "ute",
		StartOdo: 0, EndOdo: 5,
	}
	if _, err := input.toEntry("biz-1"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}
