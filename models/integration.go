package models

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rentfolio/rentfolio_backend/config"
	"github.com/rentfolio/rentfolio_backend/utils"
)

type IntegrationStatus string

const (
	IntegrationStatusConnected    IntegrationStatus = "connected"
	IntegrationStatusDisconnected IntegrationStatus = "disconnected"
	IntegrationStatusError        IntegrationStatus = "error"
)

const BillingProvider = "billing"

// IntegrationConnection stores a partner connection per agency. SettingsJSON
// is partner-defined and may lag our struct; decoding always falls back to
// defaults.
type IntegrationConnection struct {
	ID           int               `gorm:"primary_key" json:"id"`
	BusinessId   string            `gorm:"index" json:"business_id"`
	Provider     string            `gorm:"size:50;not null;index" json:"provider"`
	Status       IntegrationStatus `gorm:"size:20;default:disconnected" json:"status"`
	ApiKeyRef    string            `gorm:"size:255" json:"-"`
	SettingsJSON []byte            `gorm:"type:json" json:"-"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

type BillingSettings struct {
	InvoiceDay     int    `json:"invoice_day"`
	SendReminders  bool   `json:"send_reminders"`
	StatementEmail string `json:"statement_email"`
}

func DefaultBillingSettings() BillingSettings {
	return BillingSettings{InvoiceDay: 1, SendReminders: true}
}

// DecodeBillingSettings parses the stored settings blob. Empty or malformed
// payloads yield the defaults; a parse failure is logged, never surfaced.
func (connection *IntegrationConnection) DecodeBillingSettings() BillingSettings {
	settings := DefaultBillingSettings()
	if len(connection.SettingsJSON) == 0 {
		return settings
	}
	if err := json.Unmarshal(connection.SettingsJSON, &settings); err != nil {
		logger := config.GetLogger()
		config.LogError(logger, "integration.go", "DecodeBillingSettings",
			"unmarshal settings", string(connection.SettingsJSON), err)
		return DefaultBillingSettings()
	}
	return settings
}

type ConnectBillingInput struct {
	ApiKey   string          `json:"api_key" binding:"required"`
	Settings json.RawMessage `json:"settings"`
}

// GetBillingConnection returns the agency's billing connection, or a
// disconnected placeholder when none has been set up yet.
func GetBillingConnection(ctx context.Context) (*IntegrationConnection, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	var connection IntegrationConnection
	err := db.WithContext(ctx).
		Where("business_id = ? AND provider = ?", businessId, BillingProvider).
		First(&connection).Error
	if err != nil {
		return &IntegrationConnection{
			BusinessId: businessId,
			Provider:   BillingProvider,
			Status:     IntegrationStatusDisconnected,
		}, nil
	}
	return &connection, nil
}

func ConnectBilling(ctx context.Context, input *ConnectBillingInput) (*IntegrationConnection, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	connection := IntegrationConnection{
		BusinessId:   businessId,
		Provider:     BillingProvider,
		Status:       IntegrationStatusConnected,
		ApiKeyRef:    input.ApiKey,
		SettingsJSON: input.Settings,
	}

	var existing IntegrationConnection
	err := db.WithContext(ctx).
		Where("business_id = ? AND provider = ?", businessId, BillingProvider).
		First(&existing).Error
	if err == nil {
		connection.ID = existing.ID
		connection.CreatedAt = existing.CreatedAt
		if err := db.WithContext(ctx).Model(&existing).Select(
			"status", "api_key_ref", "settings_json",
		).Updates(&connection).Error; err != nil {
			return nil, err
		}
		return &connection, nil
	}

	if err := db.WithContext(ctx).Create(&connection).Error; err != nil {
		return nil, err
	}
	return &connection, nil
}

func DisconnectBilling(ctx context.Context) (*IntegrationConnection, error) {

	db := config.GetDB()
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}

	var connection IntegrationConnection
	err := db.WithContext(ctx).
		Where("business_id = ? AND provider = ?", businessId, BillingProvider).
		First(&connection).Error
	if err != nil {
		return nil, utils.ErrorRecordNotFound
	}

	if err := db.WithContext(ctx).Model(&connection).Select("status", "api_key_ref").
		Updates(map[string]interface{}{
			"status":      IntegrationStatusDisconnected,
			"api_key_ref": "",
		}).Error; err != nil {
		return nil, err
	}
	connection.Status = IntegrationStatusDisconnected
	connection.ApiKeyRef = ""
	return &connection, nil
}
