package models

import (
	"context"
	"errors"
	"time"

	"github.com/rentfolio/rentfolio_backend/config"
	"github.com/rentfolio/rentfolio_backend/utils"
)

type MaintenanceTask struct {
	ID              int                 `gorm:"primary_key" json:"id"`
	BusinessId      string              `gorm:"index" json:"business_id"`
	Issue           string              `gorm:"size:255;not null" json:"issue" binding:"required"`
	PropertyAddress string              `gorm:"size:255" json:"property_address"`
	Priority        MaintenancePriority `gorm:"type:enum('Low', 'Medium', 'High', 'Urgent');default:Medium" json:"priority"`
	Status          MaintenanceStatus   `gorm:"type:enum('New', 'Scheduled', 'InProgress', 'Completed');default:New" json:"status"`
	RequestDate     time.Time           `json:"request_date"`
	CreatedAt       time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewMaintenanceTask struct {
	Issue           string     `json:"issue" binding:"required"`
	PropertyAddress string     `json:"property_address"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	RequestDate     *time.Time `json:"request_date"`
}

func CreateMaintenanceTask(ctx context.Context, input *NewMaintenanceTask) (*MaintenanceTask, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	task := MaintenanceTask{
		BusinessId:      businessId,
		Issue:           input.Issue,
		PropertyAddress: input.PropertyAddress,
		Priority:        MaintenancePriorityMedium,
		Status:          MaintenanceStatusNew,
		RequestDate:     time.Now(),
	}
	if input.Priority != "" {
		priority := MaintenancePriority(input.Priority)
		if !priority.Valid() {
			return nil, errors.New("invalid priority")
		}
		task.Priority = priority
	}
	if input.Status != "" {
		status := MaintenanceStatus(input.Status)
		if !status.Valid() {
			return nil, errors.New("invalid status")
		}
		task.Status = status
	}
	if input.RequestDate != nil {
		task.RequestDate = *input.RequestDate
	}

	if err := db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func GetAllMaintenanceTasks(ctx context.Context) ([]*MaintenanceTask, error) {
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}
	return utils.FetchAllModels[MaintenanceTask](ctx, businessId)
}

func UpdateMaintenanceStatus(ctx context.Context, id int, status MaintenanceStatus) (*MaintenanceTask, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}
	if !status.Valid() {
		return nil, errors.New("invalid status")
	}

	task, err := utils.FetchModel[MaintenanceTask](ctx, businessId, id)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(task).UpdateColumn("status", status).Error; err != nil {
		return nil, err
	}
	task.Status = status
	return task, nil
}
