package dto_test

import (
	"testing"
	"time"

	"stayops/internal/domains/availability/model"
	"stayops/internal/domains/availability/model/dto"
	bookingModel "stayops/internal/domains/booking/model"
	"stayops/shared/daterange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableDatesQuery_Start(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	start, err := dto.AvailableDatesQuery{}.Start(today)
	require.NoError(t, err)
	assert.Equal(t, today, start)

	start, err = dto.AvailableDatesQuery{StartDate: "2025-07-04"}.Start(today)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), start)

	_, err = dto.AvailableDatesQuery{StartDate: "07/04/2025"}.Start(today)
	assert.ErrorIs(t, err, daterange.ErrInvalidDate)
}

func TestStayQuery_Range(t *testing.T) {
	r, err := dto.StayQuery{CheckIn: "2025-06-01", CheckOut: "2025-06-03"}.Range()
	require.NoError(t, err)
	assert.Equal(t, 2, r.Nights())

	_, err = dto.StayQuery{CheckIn: "2025-06-03", CheckOut: "2025-06-01"}.Range()
	assert.ErrorIs(t, err, daterange.ErrInvalidRange)
}

func TestResponses(t *testing.T) {
	stay, err := daterange.Parse("2025-06-01", "2025-06-03")
	require.NoError(t, err)

	quote := dto.NewQuoteResponse("p1", stay, 2, model.Quote{Nights: 2, BaseAmount: 130000, CleaningFee: 5000, ServiceFee: 6500, TotalAmount: 141500})
	assert.Equal(t, "2025-06-01", quote.CheckIn)
	assert.Equal(t, "2025-06-03", quote.CheckOut)
	assert.Equal(t, 141500.0, quote.TotalAmount)

	dates := dto.NewAvailableDatesResponse("p1", stay.CheckIn, 1, stay.Dates())
	assert.Equal(t, []string{"2025-06-01", "2025-06-02"}, dates.Dates)

	empty := dto.NewAvailableDatesResponse("p1", stay.CheckIn, 0, []time.Time{})
	assert.NotNil(t, empty.Dates)

	calendar := dto.NewCalendarResponse("p1", 2025, 6, []bookingModel.Booking{{ID: "b1", CheckIn: stay.CheckIn, CheckOut: stay.CheckOut}})
	require.Len(t, calendar.Bookings, 1)
	assert.Equal(t, "2025-06-03", calendar.Bookings[0].CheckOut)
}
