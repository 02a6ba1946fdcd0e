package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rentfolio/rentfolio_backend/models"
	"github.com/rentfolio/rentfolio_backend/utils"
	"github.com/xuri/excelize/v2"
)

// Column layout shared by the CSV and XLSX exports. The CSV header line is a
// fixed wire format consumed by tax-agent tooling, so it is built by hand
// rather than through encoding/csv (which would also quote fields we need
// bare).
var logbookColumns = []string{
	"Date", "Vehicle", "Driver", "Purpose", "Category",
	"Start Odo", "End Odo", "Distance (km)",
}

func LogbookExportFilename(today time.Time) string {
	return fmt.Sprintf("Logbook_Export_%s.csv", utils.ISODate(today))
}

// BuildLogbookCSV renders the ledger as CSV. Purpose is always quoted; the
// remaining fields are written bare.
func BuildLogbookCSV(entries []*models.LogbookEntry) string {

	var b strings.Builder
	b.WriteString(strings.Join(logbookColumns, ","))
	b.WriteString("\n")

	for _, entry := range entries {
		purpose := strings.ReplaceAll(entry.Purpose, `"`, `""`)
		b.WriteString(fmt.Sprintf("%s,%s,%s,\"%s\",%s,%d,%d,%d\n",
			utils.ISODate(entry.Date),
			entry.Vehicle,
			entry.Driver,
			purpose,
			entry.Category,
			entry.StartOdo,
			entry.EndOdo,
			entry.Distance,
		))
	}
	return b.String()
}

func BuildLogbookXLSX(entries []*models.LogbookEntry) (*excelize.File, error) {

	f := excelize.NewFile()
	sheetName := "Sheet1"
	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, err
	}

	// Add headers
	col := 'A'
	for _, heading := range logbookColumns {
		f.SetCellValue(sheetName, string(col)+"1", heading)
		col++
	}

	// Add data
	for i, entry := range entries {
		rowNo := fmt.Sprint(i + 2)
		f.SetCellValue(sheetName, "A"+rowNo, utils.ISODate(entry.Date))
		f.SetCellValue(sheetName, "B"+rowNo, entry.Vehicle)
		f.SetCellValue(sheetName, "C"+rowNo, entry.Driver)
		f.SetCellValue(sheetName, "D"+rowNo, entry.Purpose)
		f.SetCellValue(sheetName, "E"+rowNo, string(entry.Category))
		f.SetCellValue(sheetName, "F"+rowNo, entry.StartOdo)
		f.SetCellValue(sheetName, "G"+rowNo, entry.EndOdo)
		f.SetCellValue(sheetName, "H"+rowNo, entry.Distance)
	}
	return f, nil
}

func ExportLogbookCSV(ctx context.Context) (string, string, error) {
	entries, err := models.GetLogbookLedger(ctx)
	if err != nil {
		return "", "", err
	}
	return BuildLogbookCSV(entries), LogbookExportFilename(time.Now()), nil
}

func ExportLogbookXLSX(ctx context.Context) (*excelize.File, error) {
	entries, err := models.GetLogbookLedger(ctx)
	if err != nil {
		return nil, err
	}
	return BuildLogbookXLSX(entries)
}
