package helpers

import (
	"strconv"
	"strings"
	"time"
)

// ParseFlexibleDate accepts the two calendar-date spellings found in stored
// rows, YYYY-MM-DD and DD/MM/YYYY, and falls back to now when the value is
// unparseable. The result carries now's location.
func ParseFlexibleDate(s string, now time.Time) time.Time {
	if t, ok := ParseDateStrict(s, now.Location()); ok {
		return t
	}
	return now
}

// ParseDateStrict parses YYYY-MM-DD or DD/MM/YYYY without a fallback, so
// callers can tell a malformed date apart from a real one.
func ParseDateStrict(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, "-"):
		return parseDateParts(s, "-", 0, 1, 2, loc)
	case strings.Contains(s, "/"):
		return parseDateParts(s, "/", 2, 1, 0, loc)
	}
	return time.Time{}, false
}

func parseDateParts(s, sep string, yi, mi, di int, loc *time.Location) (time.Time, bool) {
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return time.Time{}, false
	}
	year, err1 := strconv.Atoi(strings.TrimSpace(parts[yi]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[mi]))
	day, err3 := strconv.Atoi(strings.TrimSpace(parts[di]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), true
}

// ParseClockTime parses an HH:MM string anchored to now's calendar day.
// Anchoring to the current day rather than the epoch sidesteps time-picker
// display bugs on some platforms. Unparseable values fall back to 09:00.
func ParseClockTime(s string, now time.Time) time.Time {
	fallback := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	parts := strings.Split(s, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return fallback
	}
	minute := 0
	if len(parts) > 1 {
		m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || m < 0 || m > 59 {
			return fallback
		}
		minute = m
	}
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
}

// FormatDate renders the canonical calendar-date spelling.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatClock renders the canonical HH:MM spelling.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// Truncate drops the time-of-day component.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
