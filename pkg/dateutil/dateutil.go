// Package dateutil computes the display and status fields derived from
// stored record dates. All functions are pure: "now" is always an argument
// and inputs are never mutated.
package dateutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	displayDateLayout        = "January 2, 2006"
	displayDateWeekdayLayout = "Monday, January 2, 2006"
)

// Duration types for medicine reminders.
const (
	DurationEveryday = "everyday"
	DurationWeek     = "week"
	DurationCustom   = "custom"
)

// upcomingWindowDays is how far ahead a due date still counts as upcoming.
const upcomingWindowDays = 30

// EndDate derives a reminder's end date from its duration type. Everyday
// reminders have no end date. Week reminders end 7 calendar days after the
// start date (calendar arithmetic, so DST transitions do not shift the day).
// Custom reminders keep the explicit end date as given.
func EndDate(durationType, startDate, explicitEndDate string) (string, error) {
	switch durationType {
	case DurationEveryday:
		return "", nil
	case DurationWeek:
		start, err := time.Parse(DateLayout, startDate)
		if err != nil {
			return "", fmt.Errorf("invalid start date %q: %w", startDate, err)
		}
		return start.AddDate(0, 0, 7).Format(DateLayout), nil
	default:
		return explicitEndDate, nil
	}
}

// Overdue reports whether the target date lies strictly before today.
// The comparison is date-only; the same calendar day is never overdue.
// Empty or malformed dates are never overdue.
func Overdue(date string, now time.Time) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return d.Before(midnight(now))
}

// Upcoming reports whether the target date is between tomorrow and 30
// calendar days ahead, inclusive.
func Upcoming(date string, now time.Time) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	days := int(d.Sub(midnight(now)).Hours() / 24)
	return days > 0 && days <= upcomingWindowDays
}

// DisplayDate formats a stored date for rendering, e.g. "June 1, 2024".
// Unparseable input is returned unchanged so a bad value degrades to raw
// text instead of an error at render time.
func DisplayDate(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format(displayDateLayout)
}

// DisplayDateWeekday is DisplayDate with the weekday prefixed, used on
// appointment cards, e.g. "Saturday, June 1, 2024".
func DisplayDateWeekday(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format(displayDateWeekdayLayout)
}

// DisplayTime converts a 24-hour HH:MM value to 12-hour display form.
// Hour 0 renders as 12 AM, hours past 12 drop by twelve and take PM.
func DisplayTime(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return hhmm
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, parts[1], suffix)
}

// RelativeDayLabel renders a creation or upload timestamp as "Today",
// "Yesterday", "N days ago" for under a week, or the formatted date beyond
// that. Elapsed time rounds up to whole days.
func RelativeDayLabel(iso string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		t, err = time.Parse(DateLayout, iso)
		if err != nil {
			return iso
		}
	}
	days := int(math.Ceil(now.Sub(t).Hours() / 24))
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format(displayDateLayout)
	}
}

// DurationText summarizes a reminder's schedule for display.
func DurationText(durationType, startDate, endDate string) string {
	switch durationType {
	case DurationEveryday:
		return "Everyday (Ongoing)"
	case DurationWeek:
		return fmt.Sprintf("For One Week (until %s)", DisplayDate(endDate))
	default:
		return fmt.Sprintf("%s - %s", DisplayDate(startDate), DisplayDate(endDate))
	}
}

// midnight pins t to the start of its calendar day in UTC, matching the
// zone time.Parse gives stored dates, so comparisons stay date-only.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
