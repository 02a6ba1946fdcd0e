package reports

import (
	"context"
	"errors"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rentfolio/rentfolio_backend/config"
	"github.com/rentfolio/rentfolio_backend/models"
	"github.com/rentfolio/rentfolio_backend/utils"
	"github.com/shopspring/decimal"
)

type PortfolioStatsResponse struct {
	TotalProperties int             `json:"total_properties"`
	LeasedCount     int             `json:"leased_count"`
	VacantCount     int             `json:"vacant_count"`
	ArrearsCount    int             `json:"arrears_count"`
	OccupancyRate   decimal.Decimal `json:"occupancy_rate"`
	MonthlyRentRoll decimal.Decimal `json:"monthly_rent_roll"`
	BondTotal       decimal.Decimal `json:"bond_total"`
	OpenMaintenance int             `json:"open_maintenance"`
}

type LogbookStatsResponse struct {
	TotalKm      int `json:"total_km"`
	BusinessKm   int `json:"business_km"`
	PrivateKm    int `json:"private_km"`
	AutoLogged   int `json:"auto_logged_entries"`
	ManualLogged int `json:"manual_entries"`
}

var weeksPerYear = decimal.NewFromInt(52)
var monthsPerYear = decimal.NewFromInt(12)

// MonthlyRent normalizes a rent amount to a per-month figure.
func MonthlyRent(amount decimal.Decimal, frequency models.RentFrequency) decimal.Decimal {
	switch frequency {
	case models.RentFrequencyWeekly:
		return amount.Mul(weeksPerYear).Div(monthsPerYear)
	case models.RentFrequencyAnnually:
		return amount.Div(monthsPerYear)
	default:
		return amount
	}
}

// BuildPortfolioStats aggregates the portfolio in memory. A property counts
// as occupied whenever a tenant name is present, whatever the status enum
// says (a tenant in arrears still occupies the place).
func BuildPortfolioStats(properties []*models.Property, openMaintenance int) *PortfolioStatsResponse {

	response := PortfolioStatsResponse{
		OccupancyRate:   decimal.Zero,
		MonthlyRentRoll: decimal.Zero,
		BondTotal:       decimal.Zero,
		OpenMaintenance: openMaintenance,
	}

	occupied := 0
	for _, property := range properties {
		response.TotalProperties++
		switch property.Status {
		case models.PropertyStatusLeased:
			response.LeasedCount++
		case models.PropertyStatusVacant:
			response.VacantCount++
		case models.PropertyStatusArrears:
			response.ArrearsCount++
		}
		if property.TenantName != nil && *property.TenantName != "" {
			occupied++
			response.MonthlyRentRoll = response.MonthlyRentRoll.
				Add(MonthlyRent(property.RentAmount, property.RentFrequency))
		}
		response.BondTotal = response.BondTotal.Add(property.BondAmount)
	}

	if response.TotalProperties > 0 {
		response.OccupancyRate = decimal.NewFromInt(int64(occupied)).
			Div(decimal.NewFromInt(int64(response.TotalProperties))).
			Mul(decimal.NewFromInt(100)).Round(1)
	}
	return &response
}

func BuildLogbookStats(entries []*models.LogbookEntry) *LogbookStatsResponse {

	var response LogbookStatsResponse
	for _, entry := range entries {
		response.TotalKm += entry.Distance
		if entry.Category == models.TripCategoryPrivate {
			response.PrivateKm += entry.Distance
		} else {
			response.BusinessKm += entry.Distance
		}
		if entry.Driver == models.AutoLogDriver {
			response.AutoLogged++
		} else {
			response.ManualLogged++
		}
	}
	return &response
}

func GetPortfolioStats(ctx context.Context) (*PortfolioStatsResponse, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	properties, err := models.GetAllProperties(ctx)
	if err != nil {
		return nil, err
	}

	query := `
SELECT
    COUNT(*)
FROM
    maintenance_tasks
WHERE
    business_id = ?
    AND status != 'Completed';`

	var openMaintenance int
	if err := db.WithContext(ctx).Raw(query, businessId).Scan(&openMaintenance).Error; err != nil {
		return nil, err
	}

	return BuildPortfolioStats(properties, openMaintenance), nil
}

func GetLogbookStats(ctx context.Context) (*LogbookStatsResponse, error) {
	entries, err := models.GetLogbookLedger(ctx)
	if err != nil {
		return nil, err
	}
	return BuildLogbookStats(entries), nil
}
