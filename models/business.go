package models

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rentfolio/rentfolio_backend/config"
	"github.com/rentfolio/rentfolio_backend/utils"
)

// Business is the managing agency. Every other record is scoped to one.
type Business struct {
	ID          uuid.UUID `gorm:"primary_key" json:"id"`
	Name        string    `gorm:"index;size:100;not null" json:"name" binding:"required"`
	ContactName string    `gorm:"size:100" json:"contact_name"`
	Email       string    `gorm:"size:255" json:"email"`
	Phone       string    `gorm:"size:20" json:"phone"`
	Address     string    `gorm:"type:text" json:"address"`
	Timezone    string    `gorm:"size:50" json:"timezone"`
	IsActive    *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewBusiness struct {
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Timezone    string `json:"timezone"`
}

func CreateBusiness(ctx context.Context, input *NewBusiness) (*Business, error) {
	db := config.GetDB()

	if !utils.IsValidEmail(input.Email) {
		return nil, errors.New("invalid email address")
	}
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return nil, errors.New("invalid phone number")
		}
	}

	timezone := input.Timezone
	if timezone == "" {
		timezone = utils.DefaultTimezone
	}

	business := Business{
		ID:          uuid.New(),
		Name:        input.Name,
		ContactName: input.ContactName,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		Timezone:    timezone,
		IsActive:    utils.NewTrue(),
	}
	if err := db.WithContext(ctx).Create(&business).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

// cache: Business:$businessId
func GetBusinessById(ctx context.Context, businessId string) (*Business, error) {
	var business Business
	exists, err := config.GetRedisObject("Business:"+businessId, &business)
	if err != nil {
		return nil, err
	}
	if exists {
		return &business, nil
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&Business{}).Where("id = ?", businessId).First(&business).Error; err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	if err := config.SetRedisObject("Business:"+businessId, &business, 0); err != nil {
		return nil, err
	}
	return &business, nil
}

// BusinessTimezone returns the agency timezone, falling back to the default
// when the business cannot be loaded (never fatal).
func BusinessTimezone(ctx context.Context, businessId string) string {
	business, err := GetBusinessById(ctx, businessId)
	if err != nil || business.Timezone == "" {
		return utils.DefaultTimezone
	}
	return business.Timezone
}
