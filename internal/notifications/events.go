package notifications

import (
	"encoding/json"
	"time"

	"smartbus/internal/bookings"
)

// BookingEvent is the message published to external collaborators on every
// lifecycle transition. It carries the full booking snapshot so consumers
// (analytics, the RFID boarding gateway, UI push) never need to query the
// primary database.
type BookingEvent struct {
	Kind      string                   `json:"kind"`
	Booking   bookings.BookingResponse `json:"booking"`
	EmittedAt time.Time                `json:"emitted_at"`
}

// NewBookingEvent builds an event for the given kind and booking snapshot.
func NewBookingEvent(kind string, booking *bookings.Booking) *BookingEvent {
	return &BookingEvent{
		Kind:      kind,
		Booking:   booking.ToResponse(),
		EmittedAt: time.Now().UTC(),
	}
}

// ToJSON serializes the event for the wire.
func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events for one booking to the same partition so
// consumers see its transitions in order.
func (e *BookingEvent) PartitionKey() string {
	return e.Booking.ID
}
