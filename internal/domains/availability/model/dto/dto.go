package dto

import (
	"time"

	"stayops/internal/domains/availability/model"
	bookingModel "stayops/internal/domains/booking/model"
	bookingDto "stayops/internal/domains/booking/model/dto"
	"stayops/shared/daterange"
)

// StayQuery is the check_in/check_out pair read from the query string.
type StayQuery struct {
	CheckIn  string `json:"check_in"  validate:"required,date"`
	CheckOut string `json:"check_out" validate:"required,date"`
}

func (q StayQuery) Range() (daterange.Range, error) {
	return daterange.Parse(q.CheckIn, q.CheckOut)
}

type AvailabilityQuery struct {
	StayQuery
	ExcludeBookingID string `json:"exclude_booking_id" validate:"omitempty"`
}

type AvailableDatesQuery struct {
	StartDate string `json:"start"      validate:"omitempty,date"`
	Days      int    `json:"days"       validate:"gte=0"`
}

// Start falls back to today when no start date was sent.
func (q AvailableDatesQuery) Start(today time.Time) (time.Time, error) {
	if q.StartDate == "" {
		return today, nil
	}

	return daterange.ParseDate(q.StartDate)
}

type QuoteQuery struct {
	StayQuery
	Guests int `json:"guests" validate:"gte=1"`
}

type CalendarQuery struct {
	Year  int `json:"year"  validate:"gte=1,lte=9999"`
	Month int `json:"month" validate:"gte=1,lte=12"`
}

type AvailabilityResponse struct {
	PropertyID string `json:"property_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Available  bool   `json:"available"`
}

func NewAvailabilityResponse(propertyID string, stay daterange.Range, available bool) AvailabilityResponse {
	return AvailabilityResponse{
		PropertyID: propertyID,
		CheckIn:    daterange.Format(stay.CheckIn),
		CheckOut:   daterange.Format(stay.CheckOut),
		Available:  available,
	}
}

type AvailableDatesResponse struct {
	PropertyID string   `json:"property_id"`
	StartDate  string   `json:"start_date"`
	Days       int      `json:"days"`
	Dates      []string `json:"dates"`
}

func NewAvailableDatesResponse(propertyID string, start time.Time, days int, dates []time.Time) AvailableDatesResponse {
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = daterange.Format(d)
	}

	return AvailableDatesResponse{
		PropertyID: propertyID,
		StartDate:  daterange.Format(start),
		Days:       days,
		Dates:      formatted,
	}
}

type QuoteResponse struct {
	PropertyID  string  `json:"property_id"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Guests      int     `json:"guests"`
	Nights      int     `json:"nights"`
	BaseAmount  float64 `json:"base_amount"`
	CleaningFee float64 `json:"cleaning_fee"`
	ServiceFee  float64 `json:"service_fee"`
	TotalAmount float64 `json:"total_amount"`
}

func NewQuoteResponse(propertyID string, stay daterange.Range, guests int, quote model.Quote) QuoteResponse {
	return QuoteResponse{
		PropertyID:  propertyID,
		CheckIn:     daterange.Format(stay.CheckIn),
		CheckOut:    daterange.Format(stay.CheckOut),
		Guests:      guests,
		Nights:      quote.Nights,
		BaseAmount:  quote.BaseAmount,
		CleaningFee: quote.CleaningFee,
		ServiceFee:  quote.ServiceFee,
		TotalAmount: quote.TotalAmount,
	}
}

type CalendarResponse struct {
	PropertyID string                       `json:"property_id"`
	Year       int                          `json:"year"`
	Month      int                          `json:"month"`
	Bookings   []bookingDto.BookingResponse `json:"bookings"`
}

func NewCalendarResponse(propertyID string, year, month int, bookings []bookingModel.Booking) CalendarResponse {
	return CalendarResponse{
		PropertyID: propertyID,
		Year:       year,
		Month:      month,
		Bookings:   bookingDto.FromModels(bookings),
	}
}
