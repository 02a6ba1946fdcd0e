package models

import (
	"github.com/rentfolio/rentfolio_backend/config"
)

func MigrateTable() error {
	db := config.GetDB()
	return db.AutoMigrate(
		&Business{},
		&User{},
		&Property{},
		&InspectionFollowUp{},
		&MaintenanceTask{},
		&CalendarEvent{},
		&LogbookEntry{},
		&IntegrationConnection{},
	)
}
