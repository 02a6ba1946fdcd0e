package models

import "testing"

func TestDecodeBillingSettingsEmpty(t *testing.T) {
	connection := IntegrationConnection{}
	settings := connection.DecodeBillingSettings()
	if settings != DefaultBillingSettings() {
		t.Fatalf("empty blob should decode to defaults, got %+v", settings)
	}
}

func TestDecodeBillingSettingsMalformed(t *testing.T) {
	connection := IntegrationConnection{SettingsJSON: []byte("{not json")}
	settings := connection.DecodeBillingSettings()
	if settings != DefaultBillingSettings() {
		t.Fatalf("malformed blob should fall back to defaults, got %+v", settings)
	}
}

func TestDecodeBillingSettingsValid(t *testing.T) {
	connection := IntegrationConnection{
		SettingsJSON: []byte(`{"invoice_day":15,"send_reminders":false,"statement_email":"a@b.example"}`),
	}
	settings := connection.DecodeBillingSettings()
	if settings.InvoiceDay != 15 || settings.SendReminders || settings.StatementEmail != "a@b.example" {
		t.Fatalf("unexpected settings %+v", settings)
	}
}
