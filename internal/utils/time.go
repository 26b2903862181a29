package utils

import (
	"fmt"
	"time"

	"github.com/gentleday/gentleday/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in local time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateStr, err)
	}
	return t, nil
}

// ParseTime parses a time-of-day string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// AddDays shifts a date string by n calendar days.
func AddDays(dateStr string, n int) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat), nil
}

// PrevDate returns the calendar day immediately before the given date.
func PrevDate(dateStr string) (string, error) {
	return AddDays(dateStr, -1)
}

// WeekWindow returns the inclusive [asOf-6d, asOf] window bounds used by
// the weekly balance score.
func WeekWindow(asOf string) (start, end string, err error) {
	start, err = AddDays(asOf, -(constants.WeeklyWindowDays - 1))
	if err != nil {
		return "", "", err
	}
	return start, asOf, nil
}

// MonthRange returns the first and last date strings of a calendar month.
func MonthRange(year int, month time.Month) (first, last string, err error) {
	if month < time.January || month > time.December {
		return "", "", fmt.Errorf("invalid month: %d", month)
	}
	if year < 1 {
		return "", "", fmt.Errorf("invalid year: %d", year)
	}
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)
	return firstDay.Format(constants.DateFormat), lastDay.Format(constants.DateFormat), nil
}
