package daterange_test

import (
	"testing"
	"time"

	"stayops/shared/daterange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()

	d, err := daterange.ParseDate(value)
	require.NoError(t, err)

	return d
}

func rng(t *testing.T, in, out string) daterange.Range {
	t.Helper()

	r, err := daterange.Parse(in, out)
	require.NoError(t, err)

	return r
}

func TestParse(t *testing.T) {
	r := rng(t, "2025-06-01", "2025-06-03")

	assert.Equal(t, 2, r.Nights())
	assert.Equal(t, time.UTC, r.CheckIn.Location())

	_, err := daterange.Parse("2025-06-03", "2025-06-03")
	assert.ErrorIs(t, err, daterange.ErrInvalidRange)

	_, err = daterange.Parse("2025-06-04", "2025-06-03")
	assert.ErrorIs(t, err, daterange.ErrInvalidRange)

	_, err = daterange.Parse("06/01/2025", "2025-06-03")
	assert.ErrorIs(t, err, daterange.ErrInvalidDate)
}

func TestOverlaps(t *testing.T) {
	candidate := rng(t, "2025-06-10", "2025-06-15")

	tests := []struct {
		name     string
		existing daterange.Range
		expected bool
	}{
		{"disjoint before", rng(t, "2025-06-01", "2025-06-05"), false},
		{"disjoint after", rng(t, "2025-06-20", "2025-06-22"), false},
		{"checkout touches checkin", rng(t, "2025-06-05", "2025-06-10"), false},
		{"checkin touches checkout", rng(t, "2025-06-15", "2025-06-18"), false},
		{"starts inside", rng(t, "2025-06-12", "2025-06-20"), true},
		{"ends inside", rng(t, "2025-06-08", "2025-06-11"), true},
		{"contains candidate", rng(t, "2025-06-01", "2025-06-30"), true},
		{"inside candidate", rng(t, "2025-06-11", "2025-06-13"), true},
		{"identical", rng(t, "2025-06-10", "2025-06-15"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, candidate.Overlaps(tt.existing))
			assert.Equal(t, tt.expected, tt.existing.Overlaps(candidate))
		})
	}
}

func TestDates(t *testing.T) {
	r := rng(t, "2025-02-27", "2025-03-02")

	assert.Equal(t, []time.Time{
		date(t, "2025-02-27"),
		date(t, "2025-02-28"),
		date(t, "2025-03-01"),
	}, r.Dates())

	assert.True(t, r.ContainsDate(date(t, "2025-03-01")))
	assert.False(t, r.ContainsDate(date(t, "2025-03-02")))
	assert.Nil(t, daterange.Range{}.Dates())
}

func TestDays(t *testing.T) {
	in := date(t, "2025-06-01")

	assert.Equal(t, 2, daterange.Days(in, date(t, "2025-06-03")))
	assert.Equal(t, 3, daterange.Days(in, date(t, "2025-06-03").Add(5*time.Hour)))
	assert.Equal(t, 0, daterange.Days(in, in))
}

func TestIsWeekendNight(t *testing.T) {
	// 2025-06-02 is a Monday.
	monday := date(t, "2025-06-02")

	var weekend []time.Weekday
	for i := range 7 {
		d := daterange.AddDays(monday, i)
		if daterange.IsWeekendNight(d) {
			weekend = append(weekend, d.Weekday())
		}
	}

	assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, weekend)
}

func TestMonth(t *testing.T) {
	feb := daterange.Month(2024, time.February)

	assert.Equal(t, date(t, "2024-02-01"), feb.CheckIn)
	assert.Equal(t, date(t, "2024-03-01"), feb.CheckOut)
	assert.Equal(t, 29, feb.Nights())

	dec := daterange.Month(2025, time.December)
	assert.Equal(t, date(t, "2026-01-01"), dec.CheckOut)
}

func TestTruncate(t *testing.T) {
	lisbon := time.FixedZone("WEST", 3600)
	late := time.Date(2025, 6, 1, 23, 30, 0, 0, lisbon)

	assert.Equal(t, date(t, "2025-06-01"), daterange.Truncate(late))
	assert.Equal(t, "2025-06-01", daterange.Format(daterange.Truncate(late)))
}

func TestRange_Equal(t *testing.T) {
	a, err := daterange.Parse("2025-06-01", "2025-06-03")
	require.NoError(t, err)

	b, err := daterange.New(time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC), time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	c, err := daterange.Parse("2025-06-01", "2025-06-04")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
