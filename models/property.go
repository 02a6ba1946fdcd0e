package models

import (
	"context"
	"errors"
	"time"

	"github.com/rentfolio/rentfolio_backend/config"
	"github.com/rentfolio/rentfolio_backend/utils"
	"github.com/shopspring/decimal"
)

type Property struct {
	ID                 int                  `gorm:"primary_key" json:"id"`
	BusinessId         string               `gorm:"index" json:"business_id"`
	Address            string               `gorm:"size:255;not null" json:"address" binding:"required"`
	OwnerName          string               `gorm:"size:100" json:"owner_name"`
	TenantName         *string              `gorm:"size:100" json:"tenant_name"`
	Status             PropertyStatus       `gorm:"type:enum('Leased', 'Vacant', 'Arrears');default:Vacant" json:"status"`
	Type               PropertyType         `gorm:"type:enum('Residential', 'Commercial');default:Residential" json:"type"`
	RentAmount         decimal.Decimal      `gorm:"type:decimal(12,2);default:0" json:"rent_amount"`
	RentFrequency      RentFrequency        `gorm:"type:enum('Weekly', 'Monthly', 'Annually');default:Weekly" json:"rent_frequency"`
	BondAmount         decimal.Decimal      `gorm:"type:decimal(12,2);default:0" json:"bond_amount"`
	NextInspectionDate *time.Time           `json:"next_inspection_date"`
	FollowUps          []InspectionFollowUp `gorm:"foreignKey:PropertyId" json:"follow_ups"`
	CreatedAt          time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}

type InspectionFollowUp struct {
	ID          int              `gorm:"primary_key" json:"id"`
	BusinessId  string           `gorm:"index" json:"business_id"`
	PropertyId  int              `gorm:"index;not null" json:"property_id"`
	Description string           `gorm:"size:255;not null" json:"description" binding:"required"`
	Status      FollowUpStatus   `gorm:"type:enum('Pending', 'Completed');default:Pending" json:"status"`
	Category    FollowUpCategory `gorm:"type:enum('Cleaning', 'Damage', 'Garden', 'Other');default:Other" json:"category"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProperty struct {
	Address            string     `json:"address" binding:"required"`
	OwnerName          string     `json:"owner_name"`
	TenantName         *string    `json:"tenant_name"`
	Status             string     `json:"status"`
	Type               string     `json:"type"`
	RentAmount         string     `json:"rent_amount"`
	RentFrequency      string     `json:"rent_frequency"`
	BondAmount         string     `json:"bond_amount"`
	NextInspectionDate *time.Time `json:"next_inspection_date"`
}

type NewFollowUp struct {
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
}

func (input *NewProperty) toProperty(businessId string) (*Property, error) {
	property := Property{
		BusinessId:         businessId,
		Address:            input.Address,
		OwnerName:          input.OwnerName,
		TenantName:         input.TenantName,
		Status:             PropertyStatusVacant,
		Type:               PropertyTypeResidential,
		RentFrequency:      RentFrequencyWeekly,
		NextInspectionDate: input.NextInspectionDate,
	}

	if input.Status != "" {
		status := PropertyStatus(input.Status)
		if !status.Valid() {
			return nil, errors.New("invalid property status")
		}
		property.Status = status
	}
	if input.Type != "" {
		propertyType := PropertyType(input.Type)
		if !propertyType.Valid() {
			return nil, errors.New("invalid property type")
		}
		property.Type = propertyType
	}
	if input.RentFrequency != "" {
		frequency := RentFrequency(input.RentFrequency)
		if !frequency.Valid() {
			return nil, errors.New("invalid rent frequency")
		}
		property.RentFrequency = frequency
	}
	if input.RentAmount != "" {
		rent, err := utils.ParseDecimal(input.RentAmount)
		if err != nil {
			return nil, errors.New("invalid rent amount")
		}
		property.RentAmount = rent
	}
	if input.BondAmount != "" {
		bond, err := utils.ParseDecimal(input.BondAmount)
		if err != nil {
			return nil, errors.New("invalid bond amount")
		}
		property.BondAmount = bond
	}
	return &property, nil
}

func CreateProperty(ctx context.Context, input *NewProperty) (*Property, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	if err := utils.ValidateUnique[Property](ctx, businessId, "address", input.Address, 0); err != nil {
		return nil, err
	}

	property, err := input.toProperty(businessId)
	if err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).Create(property).Error; err != nil {
		return nil, err
	}
	return property, nil
}

func UpdateProperty(ctx context.Context, id int, input *NewProperty) (*Property, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	existing, err := utils.FetchModel[Property](ctx, businessId, id)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateUnique[Property](ctx, businessId, "address", input.Address, id); err != nil {
		return nil, err
	}

	updated, err := input.toProperty(businessId)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := db.WithContext(ctx).Model(existing).Select(
		"address", "owner_name", "tenant_name", "status", "type",
		"rent_amount", "rent_frequency", "bond_amount", "next_inspection_date",
	).Updates(updated).Error; err != nil {
		return nil, err
	}
	return utils.FetchModel[Property](ctx, businessId, id, "FollowUps")
}

func GetProperty(ctx context.Context, id int) (*Property, error) {
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}
	return utils.FetchModel[Property](ctx, businessId, id, "FollowUps")
}

func GetAllProperties(ctx context.Context) ([]*Property, error) {
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}
	return utils.FetchAllModels[Property](ctx, businessId, "FollowUps")
}

func AddFollowUp(ctx context.Context, propertyId int, input *NewFollowUp) (*InspectionFollowUp, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	if _, err := utils.FetchModel[Property](ctx, businessId, propertyId); err != nil {
		return nil, err
	}

	category := FollowUpCategoryOther
	if input.Category != "" {
		category = FollowUpCategory(input.Category)
		if !category.Valid() {
			return nil, errors.New("invalid follow-up category")
		}
	}

	followUp := InspectionFollowUp{
		BusinessId:  businessId,
		PropertyId:  propertyId,
		Description: input.Description,
		Status:      FollowUpStatusPending,
		Category:    category,
	}
	if err := db.WithContext(ctx).Create(&followUp).Error; err != nil {
		return nil, err
	}
	return &followUp, nil
}

// ToggleFollowUp flips one item between Pending and Completed. Every other
// follow-up on the property is left untouched.
func ToggleFollowUp(ctx context.Context, propertyId int, followUpId int) (*InspectionFollowUp, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	var followUp InspectionFollowUp
	err := db.WithContext(ctx).
		Where("business_id = ? AND property_id = ?", businessId, propertyId).
		First(&followUp, followUpId).Error
	if err != nil {
		return nil, utils.ErrorRecordNotFound
	}

	next := FollowUpStatusPending
	if followUp.Status == FollowUpStatusPending {
		next = FollowUpStatusCompleted
	}
	if err := db.WithContext(ctx).Model(&followUp).UpdateColumn("status", next).Error; err != nil {
		return nil, err
	}
	followUp.Status = next
	return &followUp, nil
}

func RemoveFollowUp(ctx context.Context, propertyId int, followUpId int) error {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return errors.New("business id is required")
	}

	result := db.WithContext(ctx).
		Where("business_id = ? AND property_id = ?", businessId, propertyId).
		Delete(&InspectionFollowUp{}, followUpId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrorRecordNotFound
	}
	return nil
}

// PendingFollowUpCount counts the Pending items on an already-loaded property.
func (property *Property) PendingFollowUpCount() int {
	count := 0
	for _, followUp := range property.FollowUps {
		if followUp.Status == FollowUpStatusPending {
			count++
		}
	}
	return count
}
