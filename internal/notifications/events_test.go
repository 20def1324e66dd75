package notifications

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartbus/internal/bookings"
)

func TestNewBookingEvent(t *testing.T) {
	booking := &bookings.Booking{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		ScheduleID:       7,
		SeatNumber:       "3B",
		TravelDate:       "2024-05-01",
		BookingReference: "SB-20240501-KQXWPA",
		TicketID:         "RFID-1714521600-1A2B3C4D",
		QRCode:           "QR-SB-20240501-KQXWPA",
		TotalAmount:      45.50,
		BookingStatus:    bookings.StatusConfirmed,
		BoardingStatus:   bookings.BoardingNotBoarded,
	}

	event := NewBookingEvent(bookings.EventBookingCreated, booking)

	assert.Equal(t, bookings.EventBookingCreated, event.Kind)
	assert.Equal(t, booking.ID.String(), event.PartitionKey())
	assert.False(t, event.EmittedAt.IsZero())

	payload, err := event.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "BookingCreated", decoded["kind"])

	snapshot, ok := decoded["booking"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "SB-20240501-KQXWPA", snapshot["booking_reference"])
	assert.Equal(t, "CONFIRMED", snapshot["booking_status"])
}
