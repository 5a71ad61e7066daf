// Package valueobject defines immutable domain values shared across use cases.
package valueobject

import (
	"strings"
	"time"

	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

// dateLayout is the accepted wire format for period boundaries. Timestamps
// with a time component are truncated to their date part before parsing.
const dateLayout = "2006-01-02"

// Period is an inclusive timestamp range used to scope aggregation.
// Invariant: Start <= End.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the period, boundaries included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthPeriod returns the inclusive range covering the given calendar month:
// the first instant of the month through the last instant of its final day.
// The final day is derived by stepping to the first day of the following
// month and subtracting one day, which handles the December rollover.
func MonthPeriod(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	end := endOfDay(lastDay)

	return Period{Start: start, End: end}
}

// PreviousMonth returns the calendar month immediately before the given one,
// decrementing the year across January.
func PreviousMonth(year int, month time.Month) YearMonth {
	if month == time.January {
		return YearMonth{Year: year - 1, Month: time.December}
	}
	return YearMonth{Year: year, Month: month - 1}
}

// TrailingMonths returns the n calendar months ending at now's month,
// inclusive, ordered oldest first.
func TrailingMonths(n int, now time.Time) []YearMonth {
	if n <= 0 {
		return nil
	}

	months := make([]YearMonth, n)
	year, month := now.Year(), now.Month()
	for i := n - 1; i >= 0; i-- {
		months[i] = YearMonth{Year: year, Month: month}
		prev := PreviousMonth(year, month)
		year, month = prev.Year, prev.Month
	}

	return months
}

// ParsePeriod builds a period from optional date strings. A missing start
// defaults to January 1 of now's year; a missing end defaults to now. A
// provided end date is widened to the last instant of that day so the range
// stays inclusive. Unparseable input yields ErrInvalidDateFormat.
func ParsePeriod(startStr, endStr string, now time.Time) (Period, error) {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := now

	if startStr != "" {
		parsed, err := parseDate(startStr)
		if err != nil {
			return Period{}, err
		}
		start = parsed
	}

	if endStr != "" {
		parsed, err := parseDate(endStr)
		if err != nil {
			return Period{}, err
		}
		end = endOfDay(parsed)
	}

	if end.Before(start) {
		return Period{}, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidPeriod,
			"end date must not be before start date",
			domainerror.ErrInvalidPeriod,
		)
	}

	return Period{Start: start, End: end}, nil
}

func parseDate(s string) (time.Time, error) {
	if idx := strings.IndexByte(s, 'T'); idx >= 0 {
		s = s[:idx]
	}

	parsed, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidDateFormat,
			"invalid date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}
	return parsed, nil
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
