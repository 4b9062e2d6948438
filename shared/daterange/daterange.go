// Package daterange models calendar dates and half-open stay intervals.
//
// Dates carry no time-of-day: every value produced here is midnight UTC, so
// weekday and day arithmetic never depends on a wall-clock timezone.
package daterange

import (
	"errors"
	"math"
	"time"

	"stayops/shared/constant"
)

const day = 24 * time.Hour

var (
	ErrInvalidRange = errors.New("check_out must be after check_in")
	ErrInvalidDate  = errors.New("date must be in YYYY-MM-DD format")
)

// Range is the half-open interval [CheckIn, CheckOut).
type Range struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(constant.CalendarLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return t, nil
}

// Truncate drops the time-of-day of t, keeping its calendar date as seen in t's own location.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Format(t time.Time) string {
	return t.Format(constant.CalendarLayout)
}

func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// Days returns the number of days between from and to, rounded up.
func Days(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

// IsWeekendNight reports whether the night starting on d is a Friday or Saturday night.
func IsWeekendNight(d time.Time) bool {
	wd := d.Weekday()

	return wd == time.Friday || wd == time.Saturday
}

func New(checkIn, checkOut time.Time) (Range, error) {
	r := Range{CheckIn: Truncate(checkIn), CheckOut: Truncate(checkOut)}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}

	return r, nil
}

// Parse builds a Range from two YYYY-MM-DD strings.
func Parse(checkIn, checkOut string) (Range, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return Range{}, err
	}

	out, err := ParseDate(checkOut)
	if err != nil {
		return Range{}, err
	}

	return New(in, out)
}

// Month covers the whole calendar month, from its first day up to the first day of the next.
func Month(year int, month time.Month) Range {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	return Range{CheckIn: start, CheckOut: start.AddDate(0, 1, 0)}
}

func (r Range) Validate() error {
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return ErrInvalidRange
	}

	if !r.CheckOut.After(r.CheckIn) {
		return ErrInvalidRange
	}

	return nil
}

func (r Range) Equal(other Range) bool {
	return r.CheckIn.Equal(other.CheckIn) && r.CheckOut.Equal(other.CheckOut)
}

func (r Range) Nights() int {
	return Days(r.CheckIn, r.CheckOut)
}

// Overlaps applies the three-way test: other starts inside r, other ends inside r,
// or other contains r. A check-out on day X never overlaps a check-in on day X.
func (r Range) Overlaps(other Range) bool {
	startsInside := !other.CheckIn.Before(r.CheckIn) && other.CheckIn.Before(r.CheckOut)
	endsInside := other.CheckOut.After(r.CheckIn) && !other.CheckOut.After(r.CheckOut)
	contains := !other.CheckIn.After(r.CheckIn) && !other.CheckOut.Before(r.CheckOut)

	return startsInside || endsInside || contains
}

func (r Range) ContainsDate(t time.Time) bool {
	return !t.Before(r.CheckIn) && t.Before(r.CheckOut)
}

// Dates lists the occupied nights of r in ascending order.
func (r Range) Dates() []time.Time {
	nights := r.Nights()
	if nights <= 0 {
		return nil
	}

	dates := make([]time.Time, 0, nights)
	for d := r.CheckIn; d.Before(r.CheckOut); d = d.Add(day) {
		dates = append(dates, d)
	}

	return dates
}
