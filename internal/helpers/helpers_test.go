package helpers

import (
	"testing"
	"time"
)

func TestParseFlexibleDateSpellings(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	iso := ParseFlexibleDate("2025-03-07", now)
	slash := ParseFlexibleDate("07/03/2025", now)
	if !iso.Equal(slash) {
		t.Errorf("Both spellings should parse to the same day: %v vs %v", iso, slash)
	}
	if iso.Year() != 2025 || iso.Month() != time.March || iso.Day() != 7 {
		t.Errorf("Unexpected parse result: %v", iso)
	}
}

func TestParseFlexibleDateFallsBackToNow(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for _, bad := range []string{"", "soon", "2025-03", "32/13/2025"} {
		if got := ParseFlexibleDate(bad, now); !got.Equal(now) {
			t.Errorf("%q should fall back to now, got %v", bad, got)
		}
	}
}

func TestParseDateStrictRejectsMalformed(t *testing.T) {
	loc := time.UTC
	if _, ok := ParseDateStrict("not-a-date", loc); ok {
		t.Error("Expected malformed date to be rejected")
	}
	if _, ok := ParseDateStrict("2025-13-01", loc); ok {
		t.Error("Expected out-of-range month to be rejected")
	}
	if got, ok := ParseDateStrict("2025-03-07", loc); !ok || got.Day() != 7 {
		t.Errorf("Expected valid date to parse, got %v ok=%v", got, ok)
	}
}

func TestParseClockTimeAnchorsToToday(t *testing.T) {
	now := time.Date(2025, 6, 1, 18, 45, 0, 0, time.UTC)

	got := ParseClockTime("14:30", now)
	if got.Year() != now.Year() || got.Month() != now.Month() || got.Day() != now.Day() {
		t.Errorf("Clock time should be anchored to now's day, got %v", got)
	}
	if got.Hour() != 14 || got.Minute() != 30 {
		t.Errorf("Expected 14:30, got %02d:%02d", got.Hour(), got.Minute())
	}
}

func TestParseClockTimeFallback(t *testing.T) {
	now := time.Date(2025, 6, 1, 18, 45, 0, 0, time.UTC)
	for _, bad := range []string{"", "25:00", "10:75", "noonish"} {
		got := ParseClockTime(bad, now)
		if got.Hour() != 9 || got.Minute() != 0 {
			t.Errorf("%q should fall back to 09:00, got %02d:%02d", bad, got.Hour(), got.Minute())
		}
		if got.Day() != now.Day() {
			t.Errorf("Fallback should stay on now's day, got %v", got)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(ParseFlexibleDate("07/03/2025", now)); got != "2025-03-07" {
		t.Errorf("Expected canonical date 2025-03-07, got %s", got)
	}
	if got := FormatClock(ParseClockTime("7:05", now)); got != "07:05" {
		t.Errorf("Expected canonical clock 07:05, got %s", got)
	}
}
