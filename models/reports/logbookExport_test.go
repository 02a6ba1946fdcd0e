package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/rentfolio/rentfolio_backend/models"
)

func sampleEntries() []*models.LogbookEntry {
	return []*models.LogbookEntry{
		{
			Date:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			Vehicle:  "Toyota Corolla (ABC-123)",
			Driver:   models.AutoLogDriver,
			Purpose:  "Inspection - 12 Smith St",
			Category: models.TripCategoryBusiness,
			StartOdo: 45240, EndOdo: 45245, Distance: 5,
		},
		{
			Date:     time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			Vehicle:  "Toyota Corolla (ABC-123)",
			Driver:   "Dana Whitfield",
			Purpose:  "Bank run",
			Category: models.TripCategoryPrivate,
			StartOdo: 45210, EndOdo: 45240, Distance: 30,
		},
	}
}

func TestBuildLogbookCSVHeader(t *testing.T) {
	csv := BuildLogbookCSV(nil)
	want := "Date,Vehicle,Driver,Purpose,Category,Start Odo,End Odo,Distance (km)\n"
	if csv != want {
		t.Fatalf("got %q, want %q", csv, want)
	}
}

func TestBuildLogbookCSVRows(t *testing.T) {
	csv := BuildLogbookCSV(sampleEntries())
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows: %q", len(lines), csv)
	}
	wantRow := `2026-03-10,Toyota Corolla (ABC-123),AI Auto-Log,"Inspection - 12 Smith St",Business,45240,45245,5`
	if lines[1] != wantRow {
		t.Fatalf("row mismatch:\n got %q\nwant %q", lines[1], wantRow)
	}
	// Purpose is always quoted, even without commas.
	if !strings.Contains(lines[2], `"Bank run"`) {
		t.Fatalf("purpose should be quoted: %q", lines[2])
	}
}

func TestBuildLogbookCSVEscapesQuotesInPurpose(t *testing.T) {
	entries := []*models.LogbookEntry{{
		Date:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Vehicle: "ute", Purpose: `pickup "urgent" keys`,
		Category: models.TripCategoryBusiness,
	}}
	csv := BuildLogbookCSV(entries)
	if !strings.Contains(csv, `"pickup ""urgent"" keys"`) {
		t.Fatalf("quotes not doubled: %q", csv)
	}
}

func TestLogbookExportFilename(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	if got := LogbookExportFilename(today); got != "Logbook_Export_2026-03-10.csv" {
		t.Fatalf("got %q", got)
	}
}

func TestBuildLogbookXLSX(t *testing.T) {
	f, err := BuildLogbookXLSX(sampleEntries())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	heading, err := f.GetCellValue("Sheet1", "H1")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if heading != "Distance (km)" {
		t.Fatalf("got heading %q", heading)
	}
	vehicle, err := f.GetCellValue("Sheet1", "B2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if vehicle != "Toyota Corolla (ABC-123)" {
		t.Fatalf("got vehicle %q", vehicle)
	}
}
