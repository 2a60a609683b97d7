package dateutil

import "time"

// DateRange is a closed interval of calendar dates: both Start and End are
// matched by queries built from it.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange accepts a user supplied range. Degenerate and reversed ranges
// are rejected with ErrSameDates and ErrStartAfterEnd.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.Equal(end) {
		return DateRange{}, ErrSameDates
	}

	if start.After(end) {
		return DateRange{}, ErrStartAfterEnd
	}

	return DateRange{Start: start, End: end}, nil
}

// YearRange spans Jan 1 to Dec 31 of year.
func YearRange(year int) DateRange {
	return DateRange{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// MonthRange spans the first to the last day of month in year. The caller
// must pass a month in 1..12.
func MonthRange(year int, month time.Month) DateRange {
	return DateRange{
		Start: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, month, DaysIn(year, month), 0, 0, 0, 0, time.UTC),
	}
}

func (r DateRange) Contains(date time.Time) bool {
	return !date.Before(r.Start) && !date.After(r.End)
}
