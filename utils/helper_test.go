package utils

import (
	"testing"
	"time"
)

func TestDaysUntilRoundsUp(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		target time.Time
		want   int
	}{
		{now, 0},
		{now.Add(1 * time.Hour), 1},
		{now.Add(24 * time.Hour), 1},
		{now.Add(25 * time.Hour), 2},
		{now.Add(-1 * time.Hour), 0},
		{now.Add(-25 * time.Hour), -1},
		{now.AddDate(0, 0, 14), 14},
	}
	for _, tc := range cases {
		if got := DaysUntil(now, tc.target); got != tc.want {
			t.Fatalf("DaysUntil(now, %v): got %d, want %d", tc.target, got, tc.want)
		}
	}
}

func TestISODate(t *testing.T) {
	d := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	if got := ISODate(d); got != "2026-03-10" {
		t.Fatalf("got %q", got)
	}
}

func TestNilIfEmpty(t *testing.T) {
	if NilIfEmpty("") != nil {
		t.Fatalf("empty string should map to nil")
	}
	if v := NilIfEmpty("x"); v == nil || *v != "x" {
		t.Fatalf("non-empty string should round-trip")
	}
}

func TestParseDecimal(t *testing.T) {
	if _, err := ParseDecimal("  "); err == nil {
		t.Fatalf("blank string should error")
	}
	dec, err := ParseDecimal(" 650.50 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.String() != "650.5" {
		t.Fatalf("got %s", dec)
	}
}
