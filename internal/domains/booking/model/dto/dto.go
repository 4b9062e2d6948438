package dto

import (
	availabilityModel "stayops/internal/domains/availability/model"
	"stayops/internal/domains/booking/model"
	"stayops/shared"
	"stayops/shared/daterange"
	gDto "stayops/shared/dto"
	gModel "stayops/shared/model"
	"stayops/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID     string              `json:"property_id"      validate:"required"`
	GuestID        string              `json:"guest_id"         validate:"required"`
	CheckIn        string              `json:"check_in"         validate:"required,date"`
	CheckOut       string              `json:"check_out"        validate:"required,date"`
	NumberOfGuests int                 `json:"number_of_guests" validate:"gte=1"`
	PaymentStatus  model.PaymentStatus `json:"payment_status"   validate:"omitempty,enum"`
	Source         model.Source        `json:"source"           validate:"omitempty,enum"`
	Notes          string              `json:"notes"            validate:"omitempty,max=2000"`
}

func (c *CreateBookingRequest) ToModel(user string, stay daterange.Range, quote availabilityModel.Quote) model.Booking {
	payment := model.PaymentUnpaid
	if c.PaymentStatus != "" {
		payment = c.PaymentStatus
	}

	source := model.SourceDirect
	if c.Source != "" {
		source = c.Source
	}

	return model.Booking{
		ID:             uuid.NewString(),
		PropertyID:     c.PropertyID,
		GuestID:        c.GuestID,
		CheckIn:        stay.CheckIn,
		CheckOut:       stay.CheckOut,
		NumberOfGuests: c.NumberOfGuests,
		NumberOfNights: quote.Nights,
		Status:         model.StatusPending,
		PaymentStatus:  payment,
		BaseAmount:     quote.BaseAmount,
		CleaningFee:    quote.CleaningFee,
		ServiceFee:     quote.ServiceFee,
		TotalAmount:    quote.TotalAmount,
		Notes:          c.Notes,
		Source:         source,
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateBookingRequest edits a pending or confirmed booking. Absent fields keep their value.
type UpdateBookingRequest struct {
	CheckIn        string       `json:"check_in"         validate:"omitempty,date"`
	CheckOut       string       `json:"check_out"        validate:"omitempty,date"`
	NumberOfGuests *int         `json:"number_of_guests" validate:"omitempty,gte=1"`
	Source         model.Source `json:"source"           validate:"omitempty,enum"`
	Notes          *string      `json:"notes"            validate:"omitempty,max=2000"`
}

func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.CheckIn == "" && u.CheckOut == "" && u.NumberOfGuests == nil && u.Source == "" && u.Notes == nil
}

type UpdatePaymentRequest struct {
	PaymentStatus model.PaymentStatus `json:"payment_status" validate:"required,enum"`
}

type BookingResponse struct {
	ID             string              `json:"id"`
	PropertyID     string              `json:"property_id"`
	GuestID        string              `json:"guest_id"`
	CheckIn        string              `json:"check_in"`
	CheckOut       string              `json:"check_out"`
	NumberOfGuests int                 `json:"number_of_guests"`
	NumberOfNights int                 `json:"number_of_nights"`
	Status         model.Status        `json:"status"`
	PaymentStatus  model.PaymentStatus `json:"payment_status"`
	BaseAmount     float64             `json:"base_amount"`
	CleaningFee    float64             `json:"cleaning_fee"`
	ServiceFee     float64             `json:"service_fee"`
	TotalAmount    float64             `json:"total_amount"`
	Notes          string              `json:"notes"`
	Source         model.Source        `json:"source"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.GuestID = model.GuestID
	r.CheckIn = daterange.Format(model.CheckIn)
	r.CheckOut = daterange.Format(model.CheckOut)
	r.NumberOfGuests = model.NumberOfGuests
	r.NumberOfNights = model.NumberOfNights
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.BaseAmount = model.BaseAmount
	r.CleaningFee = model.CleaningFee
	r.ServiceFee = model.ServiceFee
	r.TotalAmount = model.TotalAmount
	r.Notes = model.Notes
	r.Source = model.Source
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Bookings = FromModels(models)
}
