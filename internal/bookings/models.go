package bookings

import (
	"time"

	"github.com/google/uuid"

	"smartbus/internal/seats"
)

// Booking defines the main booking structure. Bookings are never physically
// deleted; cancellation is a status transition.
type Booking struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	ScheduleID       int64          `gorm:"index;not null" json:"schedule_id"`
	SeatNumber       string         `gorm:"type:varchar(10);not null" json:"seat_number"`
	TravelDate       string         `gorm:"type:date;not null" json:"travel_date"`
	BookingReference string         `gorm:"unique;not null" json:"booking_reference"`
	TicketID         string         `gorm:"unique;not null" json:"ticket_id"`
	QRCode           string         `json:"qr_code"`
	TotalAmount      float64        `gorm:"not null" json:"total_amount"`
	BookingStatus    Status         `gorm:"type:varchar(20);check:booking_status IN ('PENDING', 'CONFIRMED', 'CANCELLED', 'COMPLETED');default:'CONFIRMED'" json:"booking_status"`
	BoardingStatus   BoardingStatus `gorm:"type:varchar(20);check:boarding_status IN ('NOT_BOARDED', 'BOARDED', 'MISSED');default:'NOT_BOARDED'" json:"boarding_status"`
	BoardingTime     *time.Time     `json:"boarding_time,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	CancelledAt      *time.Time     `json:"cancelled_at,omitempty"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// SeatKey returns the seat identity this booking occupies.
func (b *Booking) SeatKey() seats.SeatKey {
	return seats.NewSeatKey(b.ScheduleID, b.SeatNumber, b.TravelDate)
}

// Helper methods for booking management
func (b *Booking) IsConfirmed() bool {
	return b.BookingStatus == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.BookingStatus == StatusCancelled
}

func (b *Booking) HasBoarded() bool {
	return b.BoardingStatus == BoardingBoarded
}
