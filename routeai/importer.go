package routeai

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/bsm/redislock"
	"github.com/rentfolio/rentfolio_backend/config"
	"github.com/rentfolio/rentfolio_backend/models"
	"github.com/rentfolio/rentfolio_backend/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("routeai")

// TodayStops picks the importable appointments: today's date, checked out,
// ordered by time of day.
func TodayStops(events []*models.CalendarEvent, today string) []TripStop {
	var stops []TripStop
	for _, event := range events {
		if utils.ISODate(event.Date) == today && utils.DereferencePtr(event.CheckedOut) {
			stops = append(stops, TripStop{Address: event.Address, Time: event.Time})
		}
	}
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Time < stops[j].Time
	})
	return stops
}

// BuildEntries turns estimated segments into ledger rows chained off the
// current odometer. Distances round up to whole km; each row starts where the
// previous one ended.
func BuildEntries(segments []RouteSegment, startOdo int, vehicle string, date time.Time) []*models.LogbookEntry {

	var entries []*models.LogbookEntry
	running := startOdo
	for _, segment := range segments {
		km := int(math.Ceil(segment.DistanceKm))
		if km <= 0 {
			continue
		}
		entries = append(entries, &models.LogbookEntry{
			Date:     date,
			Vehicle:  vehicle,
			Driver:   models.AutoLogDriver,
			Purpose:  segment.Purpose,
			Category: models.TripCategoryBusiness,
			StartOdo: running,
			EndOdo:   running + km,
			Distance: km,
		})
		running += km
	}
	return entries
}

// ImportFromSchedule builds today's logbook rows from the checked-out
// appointments. One import per agency runs at a time; the lock guards the
// odometer chain.
func ImportFromSchedule(ctx context.Context, estimator Estimator, vehicle string) ([]*models.LogbookEntry, error) {

	ctx, span := tracer.Start(ctx, "ImportFromSchedule",
		trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	logger := config.GetLogger()

	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	locker := config.GetRedisLock()
	if locker != nil {
		lock, err := locker.Obtain(ctx, "LogbookImport:"+businessId, 60*time.Second, nil)
		if err == redislock.ErrNotObtained {
			return nil, ErrImportInProgress
		} else if err != nil {
			config.LogError(logger, "importer.go", "ImportFromSchedule", "obtain lock", businessId, err)
			return nil, err
		}
		defer lock.Release(context.Background())
	}

	timezone := models.BusinessTimezone(ctx, businessId)
	now := time.Now()
	if location, err := time.LoadLocation(timezone); err == nil {
		now = now.In(location)
	}
	today := utils.ISODate(now)

	events, err := models.GetAllCalendarEvents(ctx)
	if err != nil {
		return nil, err
	}
	stops := TodayStops(events, today)
	if len(stops) == 0 {
		return nil, ErrNothingToImport
	}

	ledger, err := models.GetLogbookLedger(ctx)
	if err != nil {
		return nil, err
	}
	startOdo := models.LatestEndOdometer(ledger)

	startAddress := "the office"
	if business, err := models.GetBusinessById(ctx, businessId); err == nil && business.Address != "" {
		startAddress = business.Address
	}

	segments, err := estimator.EstimateRoute(ctx, startAddress, stops)
	if err != nil {
		config.LogError(logger, "importer.go", "ImportFromSchedule", "estimate route", businessId, err)
		return nil, err
	}

	date, err := utils.ConvertToDate(now, timezone)
	if err != nil {
		return nil, err
	}
	entries := BuildEntries(segments, startOdo, vehicle, date)
	if len(entries) == 0 {
		return nil, ErrNoRoute
	}

	db := config.GetDB()
	tx := db.WithContext(ctx).Begin()
	for _, entry := range entries {
		entry.BusinessId = businessId
		if err := tx.Create(entry).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logger.WithField("business_id", businessId).
		WithField("entries", len(entries)).
		Info(fmt.Sprintf("imported %d logbook entries from schedule", len(entries)))

	return entries, nil
}
