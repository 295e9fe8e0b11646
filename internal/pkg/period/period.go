package period

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ErrInvalidDate marks malformed date input from a request.
var ErrInvalidDate = errors.New("invalid date format")

// DateRange is an inclusive [Start, End] calendar interval.
// No Start <= End check is enforced; an inverted range simply yields
// zero-count results downstream.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) StartString() string {
	return r.Start.Format(dateLayout)
}

func (r DateRange) EndString() string {
	return r.End.Format(dateLayout)
}

// Contains reports whether date falls inside the range (inclusive).
func (r DateRange) Contains(date time.Time) bool {
	d := Truncate(date)
	return !d.Before(Truncate(r.Start)) && !d.After(Truncate(r.End))
}

// ParseRange parses explicit start/end query values in YYYY-MM-DD format.
// Both must be present; a malformed value is an input error.
func ParseRange(startStr, endStr string) (DateRange, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start_date %q", ErrInvalidDate, startStr)
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end_date %q", ErrInvalidDate, endStr)
	}
	return DateRange{Start: start, End: end}, nil
}

// MonthToDate returns [first day of today's month, today].
func MonthToDate(today time.Time) DateRange {
	t := Truncate(today)
	return DateRange{
		Start: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC),
		End:   t,
	}
}

// YearToDate returns [Jan 1 of today's year, today].
func YearToDate(today time.Time) DateRange {
	t := Truncate(today)
	return DateRange{
		Start: time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC),
		End:   t,
	}
}

// MonthBounds returns the full range of a calendar month. The end of the
// month is the first day of the next month minus one day; December wraps
// to January of year+1.
func MonthBounds(year, month int) DateRange {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return DateRange{Start: start, End: end}
}

// YearBounds returns [Jan 1, Dec 31] of a year.
func YearBounds(year int) DateRange {
	return DateRange{
		Start: time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Truncate drops the time-of-day component, keeping the calendar date in UTC.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsBusinessDay reports whether the date is a weekday (Monday-Friday).
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// EachDay walks the range day by day in ascending order. The loop is
// bounded by the range length; callers own keeping ranges sane.
func EachDay(r DateRange, fn func(day time.Time)) {
	for day := Truncate(r.Start); !day.After(Truncate(r.End)); day = day.AddDate(0, 0, 1) {
		fn(day)
	}
}
