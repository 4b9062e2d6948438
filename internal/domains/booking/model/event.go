package model

import (
	"time"

	"stayops/shared/daterange"
)

const (
	EventCreated       = "booking.created"
	EventUpdated       = "booking.updated"
	EventStatusChanged = "booking.status_changed"
)

// Event is published to the booking topic after every successful write.
type Event struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	PropertyID string    `json:"property_id"`
	GuestID    string    `json:"guest_id"`
	Status     Status    `json:"status"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(eventType string, booking Booking, occurredAt time.Time) Event {
	return Event{
		Type:       eventType,
		BookingID:  booking.ID,
		PropertyID: booking.PropertyID,
		GuestID:    booking.GuestID,
		Status:     booking.Status,
		CheckIn:    daterange.Format(booking.CheckIn),
		CheckOut:   daterange.Format(booking.CheckOut),
		OccurredAt: occurredAt,
	}
}
