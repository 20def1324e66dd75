package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"smartbus/internal/seats"
)

// Repository is the durable storage for booking records, keyed by surrogate
// id with unique secondary lookups by reference code and ticket id.
type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByReference(ctx context.Context, bookingReference string) (*Booking, error)
	GetByTicketID(ctx context.Context, ticketID string) (*Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error
	UpdateBoarding(ctx context.Context, id uuid.UUID, status BoardingStatus, boardingTime *time.Time) error

	GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Booking, error)
	GetScheduleBookings(ctx context.Context, scheduleID int64, travelDate string) ([]Booking, error)

	// HasConfirmedForSeat reports whether a CONFIRMED booking already
	// occupies the given seat. Used for the advisory availability check.
	HasConfirmedForSeat(ctx context.Context, key seats.SeatKey) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, booking *Booking) error {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		// A sold seat's hold expires by TTL, so a later create for the same
		// seat passes the hold check and lands on the partial unique index.
		// That conflict is a taken seat, not an infrastructure failure.
		if isConfirmedSeatConflict(err) {
			return fmt.Errorf("%w: %s", ErrSeatUnavailable, booking.SeatKey())
		}
		return err
	}
	return nil
}

// isConfirmedSeatConflict reports whether err is a unique violation on the
// one-CONFIRMED-booking-per-seat index. Violations on other unique columns
// (reference, ticket id) are left untouched.
func isConfirmedSeatConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" && pgErr.ConstraintName == "unique_confirmed_seat"
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrBookingNotFound, id)
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByReference(ctx context.Context, bookingReference string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("booking_reference = ?", bookingReference).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: reference %s", ErrBookingNotFound, bookingReference)
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByTicketID(ctx context.Context, ticketID string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: ticket %s", ErrBookingNotFound, ticketID)
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error {
	updates := map[string]interface{}{
		"booking_status": status,
		"updated_at":     time.Now(),
	}

	if cancelledAt != nil {
		updates["cancelled_at"] = *cancelledAt
	}

	return r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) UpdateBoarding(ctx context.Context, id uuid.UUID, status BoardingStatus, boardingTime *time.Time) error {
	updates := map[string]interface{}{
		"boarding_status": status,
		"updated_at":      time.Now(),
	}

	if boardingTime != nil {
		updates["boarding_time"] = *boardingTime
	}

	return r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Booking, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error

	return bookings, err
}

func (r *repository) GetScheduleBookings(ctx context.Context, scheduleID int64, travelDate string) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("schedule_id = ? AND travel_date = ?", scheduleID, travelDate).
		Order("created_at DESC").
		Find(&bookings).Error

	return bookings, err
}

func (r *repository) HasConfirmedForSeat(ctx context.Context, key seats.SeatKey) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("schedule_id = ? AND seat_number = ? AND travel_date = ?",
			key.ScheduleID, key.SeatNumber, key.TravelDate).
		Where("booking_status = ?", StatusConfirmed).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
