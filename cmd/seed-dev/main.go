// seed-dev populates a local database with a demo agency, users, properties,
// maintenance tasks, calendar events and logbook entries.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-dev
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rentfolio/rentfolio_backend/config"
	"github.com/rentfolio/rentfolio_backend/models"
	"github.com/rentfolio/rentfolio_backend/utils"
)

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func strPtr(s string) *string { return &s }

func main() {
	agencyName := flag.String("agency", "Harbour City Realty", "Name of the demo agency")
	flag.Parse()

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	if config.GetDB() == nil {
		fail("database not initialized (config.GetDB returned nil). Set DB_* env vars.")
	}
	if err := models.MigrateTable(); err != nil {
		fail("migrate: %v", err)
	}

	ctx = utils.SetUserIdInContext(ctx, 1)
	ctx = utils.SetUserNameInContext(ctx, "Seed")
	ctx = utils.SetSkipTenantScopeInContext(ctx, true)

	agency, err := models.CreateBusiness(ctx, &models.NewBusiness{
		Name:        *agencyName,
		ContactName: "Dana Whitfield",
		Email:       "office@harbourcityrealty.example",
		Phone:       "+61 2 9374 4000",
		Address:     "Level 3, 48 Pitt Street, Sydney NSW",
		Timezone:    utils.DefaultTimezone,
	})
	if err != nil {
		fail("create agency: %v", err)
	}
	businessId := agency.ID.String()
	ctx = utils.SetBusinessIdInContext(ctx, businessId)

	if _, err := models.CreateUser(ctx, &models.NewUser{
		BusinessId: businessId,
		Username:   "dana",
		Name:       "Dana Whitfield",
		Email:      "dana@harbourcityrealty.example",
		Password:   "demo-password",
		IsActive:   utils.NewTrue(),
		Role:       models.UserRoleManager,
	}); err != nil {
		fail("create user: %v", err)
	}

	now := time.Now()
	soon := now.AddDate(0, 0, 10)
	past := now.AddDate(0, -1, 0)

	properties := []models.NewProperty{
		{
			Address:            "12 Smith Street, Newtown",
			OwnerName:          "G. Papadopoulos",
			TenantName:         strPtr("Ella Tran"),
			Status:             string(models.PropertyStatusLeased),
			Type:               string(models.PropertyTypeResidential),
			RentAmount:         "650",
			RentFrequency:      string(models.RentFrequencyWeekly),
			BondAmount:         "2600",
			NextInspectionDate: &soon,
		},
		{
			Address:       "7/22 Crown Lane, Surry Hills",
			OwnerName:     "M. Okafor",
			Status:        string(models.PropertyStatusVacant),
			Type:          string(models.PropertyTypeResidential),
			RentAmount:    "580",
			RentFrequency: string(models.RentFrequencyWeekly),
		},
		{
			Address:            "Unit 4, 90 Wharf Road, Pyrmont",
			OwnerName:          "Bellmont Holdings",
			TenantName:         strPtr("Cove Espresso Pty Ltd"),
			Status:             string(models.PropertyStatusArrears),
			Type:               string(models.PropertyTypeCommercial),
			RentAmount:         "54000",
			RentFrequency:      string(models.RentFrequencyAnnually),
			BondAmount:         "13500",
			NextInspectionDate: &past,
		},
	}
	for i := range properties {
		if _, err := models.CreateProperty(ctx, &properties[i]); err != nil {
			fail("create property: %v", err)
		}
	}

	tasks := []models.NewMaintenanceTask{
		{Issue: "Hot water system leaking", PropertyAddress: "12 Smith Street, Newtown", Priority: string(models.MaintenancePriorityUrgent)},
		{Issue: "Broken letterbox lock", PropertyAddress: "7/22 Crown Lane, Surry Hills", Priority: string(models.MaintenancePriorityLow)},
	}
	for i := range tasks {
		if _, err := models.CreateMaintenanceTask(ctx, &tasks[i]); err != nil {
			fail("create maintenance task: %v", err)
		}
	}

	today := utils.ISODate(now)
	events := []models.NewCalendarEvent{
		{Date: today, Time: "09:30", Title: "Routine inspection", Address: "12 Smith Street, Newtown"},
		{Date: today, Time: "13:00", Title: "Open home", Address: "7/22 Crown Lane, Surry Hills"},
	}
	for i := range events {
		if _, err := models.CreateCalendarEvent(ctx, &events[i]); err != nil {
			fail("create calendar event: %v", err)
		}
	}

	if _, err := models.CreateLogbookEntry(ctx, &models.NewLogbookEntry{
		Date:     utils.ISODate(now.AddDate(0, 0, -1)),
		Vehicle:  "Toyota Corolla (ABC-123)",
		Driver:   "Dana Whitfield",
		Purpose:  "Bank deposit run",
		Category: string(models.TripCategoryBusiness),
		StartOdo: 45210,
		EndOdo:   45228,
	}); err != nil {
		fail("create logbook entry: %v", err)
	}

	fmt.Printf("Seeded agency %q (business_id=%s): 1 user, %d properties, %d tasks, %d events, 1 logbook entry\n",
		agency.Name, businessId, len(properties), len(tasks), len(events))
}
