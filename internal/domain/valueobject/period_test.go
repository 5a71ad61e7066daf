// Package valueobject defines immutable domain values shared across use cases.
package valueobject

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

func TestMonthPeriod(t *testing.T) {
	tests := []struct {
		name          string
		year          int
		month         time.Month
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "regular month",
			year:          2024,
			month:         time.March,
			expectedStart: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.March, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		},
		{
			name:          "february in a leap year",
			year:          2024,
			month:         time.February,
			expectedStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.February, 29, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		},
		{
			name:          "february in a non-leap year",
			year:          2023,
			month:         time.February,
			expectedStart: time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2023, time.February, 28, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		},
		{
			name:          "december rolls into the next year",
			year:          2024,
			month:         time.December,
			expectedStart: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.December, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := MonthPeriod(tt.year, tt.month)

			if !period.Start.Equal(tt.expectedStart) {
				t.Errorf("expected start %v, got %v", tt.expectedStart, period.Start)
			}
			if !period.End.Equal(tt.expectedEnd) {
				t.Errorf("expected end %v, got %v", tt.expectedEnd, period.End)
			}
		})
	}
}

func TestPeriodContains(t *testing.T) {
	period := MonthPeriod(2024, time.March)

	tests := []struct {
		name     string
		instant  time.Time
		expected bool
	}{
		{
			name:     "first instant of the month",
			instant:  time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "last instant of the month",
			instant:  time.Date(2024, time.March, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
			expected: true,
		},
		{
			name:     "just before the month",
			instant:  time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC),
			expected: false,
		},
		{
			name:     "first instant of the next month",
			instant:  time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := period.Contains(tt.instant); got != tt.expected {
				t.Errorf("expected Contains(%v) = %v, got %v", tt.instant, tt.expected, got)
			}
		})
	}
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		expected YearMonth
	}{
		{
			name:     "mid-year month",
			year:     2024,
			month:    time.July,
			expected: YearMonth{Year: 2024, Month: time.June},
		},
		{
			name:     "january crosses the year boundary",
			year:     2024,
			month:    time.January,
			expected: YearMonth{Year: 2023, Month: time.December},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreviousMonth(tt.year, tt.month); got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestTrailingMonths(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("six months oldest first across a year boundary", func(t *testing.T) {
		months := TrailingMonths(6, now)

		expected := []YearMonth{
			{Year: 2023, Month: time.October},
			{Year: 2023, Month: time.November},
			{Year: 2023, Month: time.December},
			{Year: 2024, Month: time.January},
			{Year: 2024, Month: time.February},
			{Year: 2024, Month: time.March},
		}

		if len(months) != len(expected) {
			t.Fatalf("expected %d months, got %d", len(expected), len(months))
		}
		for i, ym := range expected {
			if months[i] != ym {
				t.Errorf("position %d: expected %+v, got %+v", i, ym, months[i])
			}
		}
	})

	t.Run("single month is the current month", func(t *testing.T) {
		months := TrailingMonths(1, now)

		if len(months) != 1 {
			t.Fatalf("expected 1 month, got %d", len(months))
		}
		if months[0] != (YearMonth{Year: 2024, Month: time.March}) {
			t.Errorf("expected current month, got %+v", months[0])
		}
	})

	t.Run("non-positive count yields nothing", func(t *testing.T) {
		if months := TrailingMonths(0, now); months != nil {
			t.Errorf("expected nil, got %v", months)
		}
		if months := TrailingMonths(-3, now); months != nil {
			t.Errorf("expected nil, got %v", months)
		}
	})
}

func TestParsePeriod(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

	t.Run("defaults to year start through now", func(t *testing.T) {
		period, err := ParsePeriod("", "", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expectedStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		if !period.Start.Equal(expectedStart) {
			t.Errorf("expected start %v, got %v", expectedStart, period.Start)
		}
		if !period.End.Equal(now) {
			t.Errorf("expected end %v, got %v", now, period.End)
		}
	})

	t.Run("end date widens to the last instant of its day", func(t *testing.T) {
		period, err := ParsePeriod("2024-03-01", "2024-03-10", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expectedEnd := time.Date(2024, time.March, 10, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
		if !period.End.Equal(expectedEnd) {
			t.Errorf("expected end %v, got %v", expectedEnd, period.End)
		}

		// A record late on the end day still falls inside the period.
		lateRecord := time.Date(2024, time.March, 10, 22, 15, 0, 0, time.UTC)
		if !period.Contains(lateRecord) {
			t.Errorf("expected period to contain %v", lateRecord)
		}
	})

	t.Run("timestamp input is truncated to its date part", func(t *testing.T) {
		period, err := ParsePeriod("2024-03-01T08:30:00Z", "", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expectedStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		if !period.Start.Equal(expectedStart) {
			t.Errorf("expected start %v, got %v", expectedStart, period.Start)
		}
	})

	t.Run("same start and end day is a valid one-day period", func(t *testing.T) {
		period, err := ParsePeriod("2024-03-10", "2024-03-10", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if period.End.Before(period.Start) {
			t.Errorf("expected start <= end, got start %v end %v", period.Start, period.End)
		}
	})

	t.Run("unparseable input yields invalid date format", func(t *testing.T) {
		_, err := ParsePeriod("03/01/2024", "", now)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, domainerror.ErrInvalidDateFormat) {
			t.Errorf("expected ErrInvalidDateFormat, got %v", err)
		}

		var financeErr *domainerror.FinanceError
		if !errors.As(err, &financeErr) {
			t.Fatal("expected a FinanceError")
		}
		if financeErr.Code != domainerror.ErrCodeInvalidDateFormat {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidDateFormat, financeErr.Code)
		}
	})

	t.Run("end before start yields invalid period", func(t *testing.T) {
		_, err := ParsePeriod("2024-03-10", "2024-03-01", now)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, domainerror.ErrInvalidPeriod) {
			t.Errorf("expected ErrInvalidPeriod, got %v", err)
		}
	})
}
