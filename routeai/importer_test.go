package routeai

import (
	"testing"
	"time"

	"github.com/rentfolio/rentfolio_backend/models"
	"github.com/rentfolio/rentfolio_backend/utils"
)

func TestTodayStopsFiltersAndSorts(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	events := []*models.CalendarEvent{
		{Date: day, Time: "13:00", Address: "b", CheckedOut: utils.NewTrue()},
		{Date: day, Time: "09:30", Address: "a", CheckedOut: utils.NewTrue()},
		{Date: day, Time: "11:00", Address: "skipped", CheckedOut: utils.NewFalse()},
		{Date: day.AddDate(0, 0, 1), Time: "08:00", Address: "tomorrow", CheckedOut: utils.NewTrue()},
	}

	stops := TodayStops(events, "2026-03-10")
	if len(stops) != 2 {
		t.Fatalf("got %d stops, want 2: %+v", len(stops), stops)
	}
	if stops[0].Address != "a" || stops[1].Address != "b" {
		t.Fatalf("stops not ordered by time: %+v", stops)
	}
}

func TestBuildEntriesChainsAndRoundsUp(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	segments := []RouteSegment{
		{Purpose: "Inspection - a", DistanceKm: 4.2},
		{Purpose: "Open home - b", DistanceKm: 3.1},
	}

	entries := BuildEntries(segments, 1000, "ute", day)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].StartOdo != 1000 || entries[0].EndOdo != 1005 || entries[0].Distance != 5 {
		t.Fatalf("first entry wrong: %+v", entries[0])
	}
	if entries[1].StartOdo != 1005 || entries[1].EndOdo != 1009 || entries[1].Distance != 4 {
		t.Fatalf("second entry wrong: %+v", entries[1])
	}
	for _, entry := range entries {
		if entry.Driver != models.AutoLogDriver {
			t.Fatalf("driver should be %q, got %q", models.AutoLogDriver, entry.Driver)
		}
		if entry.Category != models.TripCategoryBusiness {
			t.Fatalf("category should be Business, got %s", entry.Category)
		}
	}
}

func TestBuildEntriesSkipsUnusableSegments(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	segments := []RouteSegment{
		{Purpose: "noop", DistanceKm: 0},
		{Purpose: "negative", DistanceKm: -2},
		{Purpose: "real", DistanceKm: 0.4},
	}

	entries := BuildEntries(segments, 500, "ute", day)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	// 0.4 km still rounds up to a whole km.
	if entries[0].StartOdo != 500 || entries[0].EndOdo != 501 {
		t.Fatalf("entry wrong: %+v", entries[0])
	}
}

func TestBuildEntriesAllUnusable(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	segments := []RouteSegment{{Purpose: "noop", DistanceKm: 0}}
	if entries := BuildEntries(segments, 500, "ute", day); len(entries) != 0 {
		t.Fatalf("expected no entries, got %+v", entries)
	}
}
