package models

import (
	"context"
	"errors"
	"time"

	"github.com/rentfolio/rentfolio_backend/config"
	"github.com/rentfolio/rentfolio_backend/utils"
)

// LogbookEntry is one trip in the vehicle ledger. Entries are immutable once
// created; corrections are new entries.
type LogbookEntry struct {
	ID         int          `gorm:"primary_key" json:"id"`
	BusinessId string       `gorm:"index" json:"business_id"`
	Date       time.Time    `gorm:"type:date;index" json:"date"`
	Vehicle    string       `gorm:"size:100;not null" json:"vehicle" binding:"required"`
	Driver     string       `gorm:"size:100" json:"driver"`
	Purpose    string       `gorm:"size:255" json:"purpose"`
	Category   TripCategory `gorm:"type:enum('Business', 'Private');default:Business" json:"category"`
	StartOdo   int          `json:"start_odo"`
	EndOdo     int          `json:"end_odo"`
	Distance   int          `json:"distance"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

type NewLogbookEntry struct {
	Date     string `json:"date" binding:"required"`
	Vehicle  string `json:"vehicle" binding:"required"`
	Driver   string `json:"driver"`
	Purpose  string `json:"purpose"`
	Category string `json:"category"`
	StartOdo int    `json:"start_odo"`
	EndOdo   int    `json:"end_odo"`
}

var ErrOdometerNotForward = errors.New("end odometer must be greater than start odometer")

// LatestEndOdometer returns the continuation point of the ledger: the end
// odometer of the most recent entry, or 0 when the ledger is empty. The
// ledger is expected newest-first (ties on a date resolve to the row created
// last).
func LatestEndOdometer(ledger []*LogbookEntry) int {
	if len(ledger) == 0 {
		return 0
	}
	return ledger[0].EndOdo
}

// ProposeTrip prefills a manual entry form: start continues the ledger and
// the end suggests a short trip.
func ProposeTrip(ledger []*LogbookEntry) (startOdo int, endOdo int) {
	startOdo = LatestEndOdometer(ledger)
	return startOdo, startOdo + 10
}

func (input *NewLogbookEntry) toEntry(businessId string) (*LogbookEntry, error) {
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, errors.New("invalid date, expected yyyy-mm-dd")
	}
	if input.EndOdo-input.StartOdo <= 0 {
		return nil, ErrOdometerNotForward
	}

	category := TripCategoryBusiness
	if input.Category != "" {
		category = TripCategory(input.Category)
		if !category.Valid() {
			return nil, errors.New("invalid trip category")
		}
	}

	return &LogbookEntry{
		BusinessId: businessId,
		Date:       date,
		Vehicle:    input.Vehicle,
		Driver:     input.Driver,
		Purpose:    input.Purpose,
		Category:   category,
		StartOdo:   input.StartOdo,
		EndOdo:     input.EndOdo,
		Distance:   input.EndOdo - input.StartOdo,
	}, nil
}

func CreateLogbookEntry(ctx context.Context, input *NewLogbookEntry) (*LogbookEntry, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	entry, err := input.toEntry(businessId)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// GetLogbookLedger returns entries newest-first. Same-date rows come back in
// reverse creation order so the continuation point is always the row created
// last.
func GetLogbookLedger(ctx context.Context) ([]*LogbookEntry, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	var entries []*LogbookEntry
	err := db.WithContext(ctx).
		Where("business_id = ?", businessId).
		Order("date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
