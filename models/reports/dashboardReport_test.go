package reports

import (
	"testing"

	"github.com/rentfolio/rentfolio_backend/models"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func TestMonthlyRentNormalization(t *testing.T) {
	weekly := MonthlyRent(decimal.NewFromInt(600), models.RentFrequencyWeekly)
	if want := decimal.NewFromInt(600).Mul(decimal.NewFromInt(52)).Div(decimal.NewFromInt(12)); !weekly.Equal(want) {
		t.Fatalf("weekly: got %s, want %s", weekly, want)
	}

	monthly := MonthlyRent(decimal.NewFromInt(2600), models.RentFrequencyMonthly)
	if !monthly.Equal(decimal.NewFromInt(2600)) {
		t.Fatalf("monthly: got %s", monthly)
	}

	annually := MonthlyRent(decimal.NewFromInt(54000), models.RentFrequencyAnnually)
	if !annually.Equal(decimal.NewFromInt(4500)) {
		t.Fatalf("annually: got %s", annually)
	}
}

func TestBuildPortfolioStats(t *testing.T) {
	properties := []*models.Property{
		{
			Status: models.PropertyStatusLeased, TenantName: strPtr("Ella"),
			RentAmount: decimal.NewFromInt(600), RentFrequency: models.RentFrequencyWeekly,
			BondAmount: decimal.NewFromInt(2400),
		},
		{
			Status:     models.PropertyStatusVacant,
			RentAmount: decimal.NewFromInt(580), RentFrequency: models.RentFrequencyWeekly,
		},
		{
			// Arrears with a tenant still counts as occupied and still earns.
			Status: models.PropertyStatusArrears, TenantName: strPtr("Cove Espresso"),
			RentAmount: decimal.NewFromInt(54000), RentFrequency: models.RentFrequencyAnnually,
			BondAmount: decimal.NewFromInt(13500),
		},
	}

	stats := BuildPortfolioStats(properties, 2)
	if stats.TotalProperties != 3 || stats.LeasedCount != 1 || stats.VacantCount != 1 || stats.ArrearsCount != 1 {
		t.Fatalf("counts wrong: %+v", stats)
	}
	if stats.OpenMaintenance != 2 {
		t.Fatalf("open maintenance: got %d", stats.OpenMaintenance)
	}

	// 2 of 3 tenanted.
	if want := decimal.NewFromFloat(66.7); !stats.OccupancyRate.Equal(want) {
		t.Fatalf("occupancy: got %s, want %s", stats.OccupancyRate, want)
	}

	wantRoll := decimal.NewFromInt(600).Mul(decimal.NewFromInt(52)).Div(decimal.NewFromInt(12)).
		Add(decimal.NewFromInt(4500))
	if !stats.MonthlyRentRoll.Equal(wantRoll) {
		t.Fatalf("rent roll: got %s, want %s", stats.MonthlyRentRoll, wantRoll)
	}
	if !stats.BondTotal.Equal(decimal.NewFromInt(15900)) {
		t.Fatalf("bond total: got %s", stats.BondTotal)
	}
}

func TestBuildPortfolioStatsEmpty(t *testing.T) {
	stats := BuildPortfolioStats(nil, 0)
	if stats.TotalProperties != 0 {
		t.Fatalf("got %+v", stats)
	}
	if !stats.OccupancyRate.Equal(decimal.Zero) {
		t.Fatalf("occupancy on empty portfolio should be zero, got %s", stats.OccupancyRate)
	}
}

func TestBuildLogbookStats(t *testing.T) {
	entries := []*models.LogbookEntry{
		{Distance: 5, Category: models.TripCategoryBusiness, Driver: models.AutoLogDriver},
		{Distance: 30, Category: models.TripCategoryPrivate, Driver: "Dana"},
		{Distance: 12, Category: models.TripCategoryBusiness, Driver: "Dana"},
	}
	stats := BuildLogbookStats(entries)
	if stats.TotalKm != 47 || stats.BusinessKm != 17 || stats.PrivateKm != 30 {
		t.Fatalf("km wrong: %+v", stats)
	}
	if stats.AutoLogged != 1 || stats.ManualLogged != 2 {
		t.Fatalf("entry counts wrong: %+v", stats)
	}
}
