package bookings

import "time"

// BookingResponse is the booking snapshot returned to callers and carried in
// lifecycle events.
type BookingResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	ScheduleID       int64      `json:"schedule_id"`
	SeatNumber       string     `json:"seat_number"`
	TravelDate       string     `json:"travel_date"`
	BookingReference string     `json:"booking_reference"`
	TicketID         string     `json:"ticket_id"`
	QRCode           string     `json:"qr_code"`
	TotalAmount      float64    `json:"total_amount"`
	BookingStatus    string     `json:"booking_status"`
	BoardingStatus   string     `json:"boarding_status"`
	BoardingTime     *time.Time `json:"boarding_time,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
}

// ToResponse converts a Booking to its response shape
func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		ID:               b.ID.String(),
		UserID:           b.UserID.String(),
		ScheduleID:       b.ScheduleID,
		SeatNumber:       b.SeatNumber,
		TravelDate:       b.TravelDate,
		BookingReference: b.BookingReference,
		TicketID:         b.TicketID,
		QRCode:           b.QRCode,
		TotalAmount:      b.TotalAmount,
		BookingStatus:    b.BookingStatus.String(),
		BoardingStatus:   b.BoardingStatus.String(),
		BoardingTime:     b.BoardingTime,
		CreatedAt:        b.CreatedAt,
		CancelledAt:      b.CancelledAt,
	}
}

// SeatAvailabilityResponse reports the advisory availability of one seat
type SeatAvailabilityResponse struct {
	ScheduleID int64  `json:"schedule_id"`
	SeatNumber string `json:"seat_number"`
	TravelDate string `json:"travel_date"`
	Available  bool   `json:"available"`
}
