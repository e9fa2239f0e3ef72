package engine

import (
	"regexp"
	"strconv"
	"time"
)

var strictDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

var fallbackDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// DateRange is a half-open interval [Start, End) on local timestamps.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the half-open range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Windows holds the rolling dashboard windows relative to a reference
// instant. All three share the same end bound, one day past the reference
// midnight, so "today" always covers the full current day.
type Windows struct {
	Today time.Time
	Oggi  DateRange
	Week  DateRange
	Month DateRange
}

// BuildWindows computes the today / trailing-week / trailing-month ranges
// for a reference instant in that instant's location.
func BuildWindows(now time.Time) Windows {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := midnight.AddDate(0, 0, 1)

	return Windows{
		Today: midnight,
		Oggi:  DateRange{Start: midnight, End: end},
		Week:  DateRange{Start: midnight.AddDate(0, 0, -6), End: end},
		Month: DateRange{Start: midnight.AddDate(0, -1, 0), End: end},
	}
}

// ParseBookingDate parses a raw booking date in loc. Strict YYYY-MM-DD
// values are built from calendar components directly, which keeps a plain
// calendar date from shifting across a timezone boundary; anything else
// goes through a small set of generic layouts. Unparseable values report
// false and the record is left out of date-scoped aggregates.
func ParseBookingDate(raw string, loc *time.Location) (time.Time, bool) {
	if match := strictDatePattern.FindStringSubmatch(raw); match != nil {
		year, _ := strconv.Atoi(match[1])
		month, _ := strconv.Atoi(match[2])
		day, _ := strconv.Atoi(match[3])

		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}

		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), true
	}

	for _, layout := range fallbackDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
