package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidDate is returned for masked dates that are incomplete or do not
// name a real calendar day.
var ErrInvalidDate = errors.New("invalid date")

const (
	// LayoutBR is the DD/MM/YYYY layout produced by the date mask.
	LayoutBR = "02/01/2006"
	// LayoutISO is the yyyy-MM-dd layout used by HTML date inputs.
	LayoutISO = "2006-01-02"
)

// ParseBR parses a complete DD/MM/YYYY value, checking the day against the
// month's length.
func ParseBR(s string) (time.Time, error) {
	if len(s) != len(LayoutBR) || s[2] != '/' || s[5] != '/' {
		return time.Time{}, fmt.Errorf("%w: %q is not DD/MM/YYYY", ErrInvalidDate, s)
	}
	for i := 0; i < len(s); i++ {
		if i != 2 && i != 5 && (s[i] < '0' || s[i] > '9') {
			return time.Time{}, fmt.Errorf("%w: %q has non-numeric fields", ErrInvalidDate, s)
		}
	}
	day, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[3:5])
	year, _ := strconv.Atoi(s[6:10])
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, time.Month(month)) {
		return time.Time{}, fmt.Errorf("%w: day %d out of range for %02d/%04d", ErrInvalidDate, day, month, year)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// FormatBR formats a date as DD/MM/YYYY
func FormatBR(t time.Time) string {
	return t.Format(LayoutBR)
}

// ToISO converts a DD/MM/YYYY value to yyyy-MM-dd
func ToISO(s string) (string, error) {
	t, err := ParseBR(s)
	if err != nil {
		return "", err
	}
	return t.Format(LayoutISO), nil
}

// FromISO converts a yyyy-MM-dd value to DD/MM/YYYY
func FromISO(s string) (string, error) {
	t, err := time.Parse(LayoutISO, s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return FormatBR(t), nil
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}
