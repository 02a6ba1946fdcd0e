package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rentfolio/rentfolio_backend/config"
	"github.com/rentfolio/rentfolio_backend/utils"
)

type DueSeverity string

const (
	DueSeverityNone     DueSeverity = "none"
	DueSeverityInfo     DueSeverity = "info"
	DueSeverityWarning  DueSeverity = "warning"
	DueSeverityCritical DueSeverity = "critical"
)

type DueState struct {
	Label    string      `json:"label"`
	Severity DueSeverity `json:"severity"`
}

// InspectionDueState classifies a property's routine-inspection position.
// Pending follow-up items win over any date consideration.
func InspectionDueState(next *time.Time, pendingFollowUps int, now time.Time) DueState {
	if pendingFollowUps > 0 {
		return DueState{
			Label:    fmt.Sprintf("Action required (%d items)", pendingFollowUps),
			Severity: DueSeverityCritical,
		}
	}
	if next == nil {
		return DueState{Label: "Not scheduled", Severity: DueSeverityNone}
	}

	diffDays := utils.DaysUntil(now, *next)
	switch {
	case diffDays < 0:
		return DueState{Label: "Overdue", Severity: DueSeverityCritical}
	case diffDays < 14:
		return DueState{
			Label:    fmt.Sprintf("Due in %d days", diffDays),
			Severity: DueSeverityWarning,
		}
	default:
		return DueState{
			Label:    fmt.Sprintf("Scheduled %s", next.Format("02 Jan 2006")),
			Severity: DueSeverityInfo,
		}
	}
}

// NextInspectionDate computes the follow-on routine date. Commercial leases
// run a yearly cycle, residential twice a year.
func NextInspectionDate(propertyType PropertyType, now time.Time) time.Time {
	months := 6
	if propertyType == PropertyTypeCommercial {
		months = 12
	}
	return now.AddDate(0, months, 0)
}

// CompleteInspection records that the routine inspection happened now and
// books the next one. Follow-up items are not touched; completing twice just
// moves the date again.
func CompleteInspection(ctx context.Context, propertyId int, now time.Time) (*Property, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	property, err := utils.FetchModel[Property](ctx, businessId, propertyId)
	if err != nil {
		return nil, err
	}

	next := NextInspectionDate(property.Type, now)
	if err := db.WithContext(ctx).Model(property).
		UpdateColumn("next_inspection_date", next).Error; err != nil {
		return nil, err
	}
	property.NextInspectionDate = &next
	return property, nil
}
