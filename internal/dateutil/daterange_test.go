package dateutil

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange(t *testing.T) {
	table := []struct {
		name           string
		start          time.Time
		end            time.Time
		expectedResult DateRange
		expectedErr    error
	}{
		{
			name:           "Success",
			start:          date(2017, time.April, 10),
			end:            date(2017, time.April, 13),
			expectedResult: DateRange{Start: date(2017, time.April, 10), End: date(2017, time.April, 13)},
		},
		{
			name:           "Success (consecutive days)",
			start:          date(2016, time.December, 31),
			end:            date(2017, time.January, 1),
			expectedResult: DateRange{Start: date(2016, time.December, 31), End: date(2017, time.January, 1)},
		},
		{
			name:        "Same Dates",
			start:       date(2017, time.April, 10),
			end:         date(2017, time.April, 10),
			expectedErr: ErrSameDates,
		},
		{
			name:        "Start After End",
			start:       date(2017, time.April, 13),
			end:         date(2017, time.April, 10),
			expectedErr: ErrStartAfterEnd,
		},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			dateRange, err := NewDateRange(v.start, v.end)
			if v.expectedErr != nil {
				if !errors.Is(err, v.expectedErr) {
					t.Fatalf("expected error %v, got %v", v.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}

			if diff := cmp.Diff(v.expectedResult, dateRange); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestYearRange(t *testing.T) {
	expected := DateRange{Start: date(2017, time.January, 1), End: date(2017, time.December, 31)}
	if diff := cmp.Diff(expected, YearRange(2017)); diff != "" {
		t.Error(diff)
	}
}

func TestMonthRange(t *testing.T) {
	table := []struct {
		name     string
		year     int
		month    time.Month
		expected DateRange
	}{
		{
			name:     "31 days",
			year:     2017,
			month:    time.January,
			expected: DateRange{Start: date(2017, time.January, 1), End: date(2017, time.January, 31)},
		},
		{
			name:     "30 days",
			year:     2017,
			month:    time.April,
			expected: DateRange{Start: date(2017, time.April, 1), End: date(2017, time.April, 30)},
		},
		{
			name:     "28 days",
			year:     2017,
			month:    time.February,
			expected: DateRange{Start: date(2017, time.February, 1), End: date(2017, time.February, 28)},
		},
		{
			name:     "29 days",
			year:     2016,
			month:    time.February,
			expected: DateRange{Start: date(2016, time.February, 1), End: date(2016, time.February, 29)},
		},
		{
			name:     "December",
			year:     2017,
			month:    time.December,
			expected: DateRange{Start: date(2017, time.December, 1), End: date(2017, time.December, 31)},
		},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			if diff := cmp.Diff(v.expected, MonthRange(v.year, v.month)); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestDateRangeContains(t *testing.T) {
	dateRange := DateRange{Start: date(2017, time.April, 10), End: date(2017, time.April, 12)}

	table := []struct {
		date     time.Time
		expected bool
	}{
		{date: date(2017, time.April, 9), expected: false},
		{date: date(2017, time.April, 10), expected: true},
		{date: date(2017, time.April, 11), expected: true},
		{date: date(2017, time.April, 12), expected: true},
		{date: date(2017, time.April, 13), expected: false},
	}

	for _, v := range table {
		if got := dateRange.Contains(v.date); got != v.expected {
			t.Errorf("Contains(%s): expected %t, got %t", Format(v.date), v.expected, got)
		}
	}
}
