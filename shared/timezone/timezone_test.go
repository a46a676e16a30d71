package timezone_test

import (
	"hotelops/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	if timezone.Format(testTime, "2006-01-02 15:04:05 MST") == "" {
		t.Error("Format() returned empty string")
	}

	if timezone.Format(time.Time{}, time.RFC3339) != "" {
		t.Error("expected empty string for zero instant")
	}
}

func TestDateOf(t *testing.T) {
	instant := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	got := timezone.DateOf(instant)

	if got.Location() != time.UTC || got.Hour() != 0 {
		t.Errorf("expected midnight UTC, got %s", got)
	}

	if diff := timezone.DaysBetween(instant, got); diff < -1 || diff > 1 {
		t.Errorf("expected the property date within a day of %s, got %s", instant, got)
	}
}

func TestDateHelpers(t *testing.T) {
	checkIn, err := timezone.ParseDate("2026-10-15")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}

	checkOut := checkIn.AddDate(0, 0, 3)

	if got := timezone.DaysBetween(checkIn, checkOut); got != 3 {
		t.Errorf("expected 3 nights, got %d", got)
	}

	if got := timezone.DaysBetween(checkOut, checkIn); got != -3 {
		t.Errorf("expected -3, got %d", got)
	}

	if got := timezone.FormatDate(checkOut); got != "2026-10-18" {
		t.Errorf("unexpected formatted date %s", got)
	}

	if _, err := timezone.ParseDate("15/10/2026"); err == nil {
		t.Error("expected error for invalid layout")
	}

	withClock := time.Date(2026, 10, 15, 23, 59, 0, 0, time.FixedZone("X", 7*3600))
	if got := timezone.Date(withClock); !got.Equal(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected normalized date %s", got)
	}

	if timezone.FormatDate(time.Time{}) != "" {
		t.Error("expected empty string for zero date")
	}
}
