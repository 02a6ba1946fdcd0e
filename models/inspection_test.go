package models

import (
	"strings"
	"testing"
	"time"
)

var inspNow = time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)

func TestInspectionDueStatePendingFollowUpsWin(t *testing.T) {
	// Even a comfortably scheduled date is overridden by open follow-ups.
	next := inspNow.AddDate(0, 3, 0)
	state := InspectionDueState(&next, 2, inspNow)
	if state.Severity != DueSeverityCritical {
		t.Fatalf("expected critical, got %s", state.Severity)
	}
	if !strings.Contains(state.Label, "2") {
		t.Fatalf("label should carry the item count, got %q", state.Label)
	}
}

func TestInspectionDueStateUnset(t *testing.T) {
	state := InspectionDueState(nil, 0, inspNow)
	if state.Severity != DueSeverityNone {
		t.Fatalf("expected none, got %s", state.Severity)
	}
}

func TestInspectionDueStateOverdue(t *testing.T) {
	next := inspNow.AddDate(0, 0, -3)
	state := InspectionDueState(&next, 0, inspNow)
	if state.Severity != DueSeverityCritical || state.Label != "Overdue" {
		t.Fatalf("got %+v", state)
	}
}

func TestInspectionDueStateDueSoon(t *testing.T) {
	next := inspNow.AddDate(0, 0, 5)
	state := InspectionDueState(&next, 0, inspNow)
	if state.Severity != DueSeverityWarning {
		t.Fatalf("expected warning, got %s", state.Severity)
	}
	if state.Label != "Due in 5 days" {
		t.Fatalf("unexpected label %q", state.Label)
	}
}

func TestInspectionDueStateScheduled(t *testing.T) {
	next := inspNow.AddDate(0, 2, 0)
	state := InspectionDueState(&next, 0, inspNow)
	if state.Severity != DueSeverityInfo {
		t.Fatalf("expected info, got %s", state.Severity)
	}
	if !strings.Contains(state.Label, "Scheduled") {
		t.Fatalf("unexpected label %q", state.Label)
	}
}

func TestNextInspectionDateOffsets(t *testing.T) {
	residential := NextInspectionDate(PropertyTypeResidential, inspNow)
	if want := inspNow.AddDate(0, 6, 0); !residential.Equal(want) {
		t.Fatalf("residential: got %v, want %v", residential, want)
	}
	commercial := NextInspectionDate(PropertyTypeCommercial, inspNow)
	if want := inspNow.AddDate(0, 12, 0); !commercial.Equal(want) {
		t.Fatalf("commercial: got %v, want %v", commercial, want)
	}
}
