// Package dates implements the fixed booking date format "Dth Mon YYYY",
// e.g. "1th Jan 2024". The "th" suffix is literal for every day value;
// there is no locale-aware ordinal handling.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidFormat = errors.New("invalid date format, expected \"Dth Mon YYYY\"")

// Parse parses a date string of the form "1th Jan 2024".
func Parse(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), " ")
	if len(parts) != 3 {
		return time.Time{}, ErrInvalidFormat
	}

	dayPart, ok := strings.CutSuffix(parts[0], "th")
	if !ok {
		return time.Time{}, ErrInvalidFormat
	}
	day, err := strconv.Atoi(dayPart)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, ErrInvalidFormat
	}

	month, err := time.Parse("Jan", parts[1])
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil || len(parts[2]) != 4 {
		return time.Time{}, ErrInvalidFormat
	}

	t := time.Date(year, month.Month(), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (Feb 31 becomes Mar 2);
	// reject those so Format always reproduces the parsed string.
	if t.Day() != day || t.Month() != month.Month() {
		return time.Time{}, ErrInvalidFormat
	}

	return t, nil
}

// Format renders a date back into the fixed pattern. Formatting the
// result of Parse reproduces the submitted string.
func Format(t time.Time) string {
	return fmt.Sprintf("%dth %s %d", t.Day(), t.Format("Jan"), t.Year())
}
