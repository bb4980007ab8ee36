// Package calendar implements the pure date helpers shared by the event
// service and the export/rendering layers: wire timestamp parsing and
// formatting, month lengths, and day-overlap tests.
//
// The wire timestamp format is YYYY-MM-DDTHH:MM:SS with a ZERO-BASED month
// field: January is "00" and December is "11". This matches the format of
// every record already in the store, so it must be preserved even though it
// is not ISO 8601. All date arithmetic is naive local time.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// wireTimeLen is the fixed length of a wire timestamp.
const wireTimeLen = len("2006-01-02T15:04:05")

// FormatWireTime renders t as a wire timestamp. The month is written
// zero-based.
func FormatWireTime(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		t.Year(), int(t.Month())-1, t.Day(), t.Hour(), t.Minute(), t.Second())
}

// ParseWireTime parses a wire timestamp into a local time.Time. The month
// field is read zero-based, so FormatWireTime(ParseWireTime(s)) == s for
// every valid wire timestamp s.
func ParseWireTime(s string) (time.Time, error) {
	if len(s) != wireTimeLen || s[4] != '-' || s[7] != '-' || s[10] != 'T' || s[13] != ':' || s[16] != ':' {
		return time.Time{}, fmt.Errorf("malformed wire timestamp %q", s)
	}

	var year, month, day, hour, min, sec int
	if _, err := fmt.Sscanf(s, "%4d-%2d-%2dT%2d:%2d:%2d", &year, &month, &day, &hour, &min, &sec); err != nil {
		return time.Time{}, fmt.Errorf("malformed wire timestamp %q: %w", s, err)
	}

	if month < 0 || month > 11 || day < 1 || day > 31 || hour > 23 || min > 59 || sec > 59 {
		return time.Time{}, fmt.Errorf("wire timestamp %q out of range", s)
	}

	return time.Date(year, time.Month(month+1), day, hour, min, sec, 0, time.Local), nil
}

// CompareWire orders two wire timestamps. Valid wire timestamps are
// fixed-width with fields in most-significant-first order, so plain string
// comparison is chronological and never mis-reads the zero-based month the
// way an ISO parser would.
func CompareWire(a, b string) int {
	return strings.Compare(a, b)
}

// DaysInMonth returns the length of the given zero-based month (0 = January).
// February uses the simplified divisible-by-4 leap rule with no century
// exception, so 2100 counts as a leap year here. That matches the stored
// data and the rest of the system; do not "fix" it in isolation.
func DaysInMonth(month, year int) (int, error) {
	switch month {
	case 0, 2, 4, 6, 7, 9, 11:
		return 31, nil
	case 3, 5, 8, 10:
		return 30, nil
	case 1:
		if year%4 == 0 {
			return 29, nil
		}
		return 28, nil
	default:
		return 0, fmt.Errorf("invalid month %d", month)
	}
}

// EventOverlapsDay reports whether the interval [start, end) intersects the
// 24-hour window [day, day+24h). An event ending exactly at the start of the
// day, or starting exactly at the start of the next day, does not overlap.
func EventOverlapsDay(start, end, day time.Time) bool {
	next := day.Add(24 * time.Hour)
	return end.After(day) && start.Before(next)
}
