package parser

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	today := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{"today", today, false},
		{"", today, false},
		{"yesterday", today.AddDate(0, 0, -1), false},
		{"15/08/2026", today, false},
		{"01/01/2026", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"3 days ago", today.AddDate(0, 0, -3), false},
		{"1 day ago", today.AddDate(0, 0, -1), false},
		{"16/08/2026", time.Time{}, true}, // future
		{"32/01/2026", time.Time{}, true}, // bad day
		{"15/13/2026", time.Time{}, true}, // bad month
		{"29/02/2026", time.Time{}, true}, // not a leap year
		{"tomorrow", time.Time{}, true},
		{"0 days ago", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input, testNow)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateNormalizesToMidnight(t *testing.T) {
	got, err := ParseDate("today", testNow)
	if err != nil {
		t.Fatal(err)
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
}

func TestFormatSessionDate(t *testing.T) {
	today := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		date time.Time
		want string
	}{
		{today, "today (15/08/2026)"},
		{today.AddDate(0, 0, -1), "yesterday (14/08/2026)"},
		{today.AddDate(0, 0, -3), "12/08/2026 (3 days ago)"},
		{today.AddDate(0, 0, -30), "16/07/2026"},
	}

	for _, tt := range tests {
		if got := FormatSessionDate(tt.date, testNow); got != tt.want {
			t.Errorf("FormatSessionDate(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}
