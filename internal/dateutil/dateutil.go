package dateutil

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

const Layout = "2006-01-02"

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrSameDates     = errors.New("start and end dates are the same")
	ErrStartAfterEnd = errors.New("start date is greater than end date")
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month, or 0 when month is
// outside 1..12.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// ParseDate converts a YYYY-MM-DD string into a date at UTC midnight. Strings
// of any other shape, and strings naming a day that does not exist, return
// ErrInvalidDate.
func ParseDate(raw string) (time.Time, error) {
	if !datePattern.MatchString(raw) {
		return time.Time{}, ErrInvalidDate
	}

	// The pattern guarantees the digits, so Atoi cannot fail here.
	year, _ := strconv.Atoi(raw[0:4])
	month, _ := strconv.Atoi(raw[5:7])
	day, _ := strconv.Atoi(raw[8:10])

	// PostgreSQL dates have no year zero.
	if year < 1 {
		return time.Time{}, ErrInvalidDate
	}

	if month < 1 || month > 12 {
		return time.Time{}, ErrInvalidDate
	}

	if day < 1 || day > DaysIn(year, time.Month(month)) {
		return time.Time{}, ErrInvalidDate
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

func Format(date time.Time) string {
	return date.Format(Layout)
}
