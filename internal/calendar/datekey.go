// Package calendar holds the exercise domain model: calendar dates,
// exercise entities, status resolution, validation, and daily summary
// aggregation. Everything here is pure computation; persistence and
// transport live elsewhere.
package calendar

import (
	"fmt"
	"time"

	ferrors "git.home.luguber.info/inful/sportcal/internal/foundation/errors"
)

// DateLayout is the only accepted wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. The zero value is
// invalid; construct via ParseDate or DateOf. Comparable, usable as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses strict YYYY-MM-DD (zero-padded, Gregorian-valid).
// time.Parse alone accepts unpadded components, so the shape is checked first.
func ParseDate(s string) (Date, error) {
	if len(s) != len(DateLayout) || s[4] != '-' || s[7] != '-' {
		return Date{}, invalidDateError(s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, invalidDateError(s)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

func invalidDateError(value string) error {
	return ferrors.ValidationError("date must use format YYYY-MM-DD").
		WithCode(CodeInvalidFormat).
		WithContext("value", value).
		Build()
}

// DateOf truncates a timestamp to its calendar date in the timestamp's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String formats the date as YYYY-MM-DD. String(ParseDate(x)) == x for every
// valid x.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0, or +1 ordering d against o chronologically.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
