package models

import (
	"context"
	"errors"
	"time"

	"github.com/rentfolio/rentfolio_backend/config"
	"github.com/rentfolio/rentfolio_backend/utils"
)

type CalendarEvent struct {
	ID         int       `gorm:"primary_key" json:"id"`
	BusinessId string    `gorm:"index" json:"business_id"`
	Date       time.Time `gorm:"type:date;index" json:"date"`
	Time       string    `gorm:"size:5" json:"time"`
	Title      string    `gorm:"size:255;not null" json:"title" binding:"required"`
	Address    string    `gorm:"size:255" json:"address"`
	CheckedOut *bool     `gorm:"not null;default:false" json:"checked_out"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCalendarEvent struct {
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time"`
	Title   string `json:"title" binding:"required"`
	Address string `json:"address"`
}

func CreateCalendarEvent(ctx context.Context, input *NewCalendarEvent) (*CalendarEvent, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, errors.New("invalid date, expected yyyy-mm-dd")
	}
	if input.Time != "" {
		if _, err := time.Parse("15:04", input.Time); err != nil {
			return nil, errors.New("invalid time, expected hh:mm")
		}
	}

	event := CalendarEvent{
		BusinessId: businessId,
		Date:       date,
		Time:       input.Time,
		Title:      input.Title,
		Address:    input.Address,
		CheckedOut: utils.NewFalse(),
	}
	if err := db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func GetAllCalendarEvents(ctx context.Context) ([]*CalendarEvent, error) {
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}
	return utils.FetchAllModels[CalendarEvent](ctx, businessId)
}

// CheckOutEvent marks an appointment as attended. Checked-out events on
// today's date are what the schedule import picks up.
func CheckOutEvent(ctx context.Context, id int) (*CalendarEvent, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	event, err := utils.FetchModel[CalendarEvent](ctx, businessId, id)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(event).UpdateColumn("checked_out", true).Error; err != nil {
		return nil, err
	}
	event.CheckedOut = utils.NewTrue()
	return event, nil
}
