package model

import (
	"time"

	"stayops/shared/constant"
	"stayops/shared/daterange"
	"stayops/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldPropertyID     = "property_id"
	FieldGuestID        = "guest_id"
	FieldCheckIn        = "check_in"
	FieldCheckOut       = "check_out"
	FieldNumberOfGuests = "number_of_guests"
	FieldNumberOfNights = "number_of_nights"
	FieldStatus         = "status"
	FieldPaymentStatus  = "payment_status"
	FieldBaseAmount     = "base_amount"
	FieldCleaningFee    = "cleaning_fee"
	FieldServiceFee     = "service_fee"
	FieldTotalAmount    = "total_amount"
	FieldNotes          = "notes"
	FieldSource         = "source"
)

// SortableFields are the columns a list request may order by.
var SortableFields = []string{FieldCheckIn, FieldCheckOut, FieldStatus, FieldTotalAmount, constant.FieldCreatedAt}

type Booking struct {
	ID             string        `db:"id"`
	PropertyID     string        `db:"property_id"`
	GuestID        string        `db:"guest_id"`
	CheckIn        time.Time     `db:"check_in"`
	CheckOut       time.Time     `db:"check_out"`
	NumberOfGuests int           `db:"number_of_guests"`
	NumberOfNights int           `db:"number_of_nights"`
	Status         Status        `db:"status"`
	PaymentStatus  PaymentStatus `db:"payment_status"`
	BaseAmount     float64       `db:"base_amount"`
	CleaningFee    float64       `db:"cleaning_fee"`
	ServiceFee     float64       `db:"service_fee"`
	TotalAmount    float64       `db:"total_amount"`
	Notes          string        `db:"notes"`
	Source         Source        `db:"source"`
	model.Metadata
}

// Stay returns the booked interval as calendar dates.
func (b Booking) Stay() daterange.Range {
	return daterange.Range{
		CheckIn:  daterange.Truncate(b.CheckIn),
		CheckOut: daterange.Truncate(b.CheckOut),
	}
}
