package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smartbus/internal/seats"
	"smartbus/pkg/logger"
)

// Lifecycle event kinds published to external collaborators (analytics, RFID
// boarding system, UI push channel).
const (
	EventBookingCreated   = "BookingCreated"
	EventBookingConfirmed = "BookingConfirmed"
	EventBookingCancelled = "BookingCancelled"
	EventBookingBoarded   = "BookingBoarded"
)

// SeatStore is the shared hold store contract. Its TryHold must be a single
// atomic check-and-set against the external store; it is the only
// cross-request exclusion point in the system.
type SeatStore interface {
	TryHold(ctx context.Context, key seats.SeatKey, ttl time.Duration) (token string, ok bool, err error)
	Release(ctx context.Context, key seats.SeatKey, token string) error
	ForceRelease(ctx context.Context, key seats.SeatKey) error
	IsHeld(ctx context.Context, key seats.SeatKey) (bool, error)
}

// ReferenceIssuer generates globally-unique booking references and ticket ids.
type ReferenceIssuer interface {
	NewBookingReference() (string, error)
	NewTicketID() string
	QRCodeFor(bookingReference string) string
}

// Notifier publishes lifecycle events. Delivery is best-effort: failures are
// logged by the implementation and never surfaced to booking operations.
type Notifier interface {
	PublishBookingEvent(ctx context.Context, kind string, booking *Booking)
}

// Service interface defines the contract for booking lifecycle management
type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	MarkBoarded(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	MarkMissed(ctx context.Context, bookingID uuid.UUID) (*Booking, error)

	GetBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	GetByReference(ctx context.Context, bookingReference string) (*Booking, error)
	GetByTicketID(ctx context.Context, ticketID string) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Booking, error)
	GetScheduleBookings(ctx context.Context, scheduleID int64, travelDate string) ([]Booking, error)

	IsSeatAvailable(ctx context.Context, key seats.SeatKey) (bool, error)
}

// service implements the Service interface
type service struct {
	repo     Repository
	store    SeatStore
	issuer   ReferenceIssuer
	notifier Notifier
	holdTTL  time.Duration
	log      *logger.Logger
}

// NewService creates a new booking lifecycle service.
func NewService(repo Repository, store SeatStore, issuer ReferenceIssuer, notifier Notifier, holdTTL time.Duration) Service {
	return &service{
		repo:     repo,
		store:    store,
		issuer:   issuer,
		notifier: notifier,
		holdTTL:  holdTTL,
		log:      logger.GetDefault(),
	}
}

// CreateBooking reserves the seat and commits the booking in one step.
// There is no pending-payment window: a booking record existing means the
// hold is spent. The hold itself is the only guard against double selling,
// so at most one concurrent call per seat key can get past TryHold.
func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	if _, err := time.Parse("2006-01-02", req.TravelDate); err != nil {
		return nil, fmt.Errorf("invalid travel date %q: %w", req.TravelDate, err)
	}

	key := seats.NewSeatKey(req.ScheduleID, req.SeatNumber, req.TravelDate)

	// Step 1: atomic seat hold. Exactly one caller per key wins.
	token, ok, err := s.store.TryHold(ctx, key, s.holdTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSeatUnavailable, key)
	}

	// Step 2: issue identifiers.
	bookingRef, err := s.issuer.NewBookingReference()
	if err != nil {
		s.releaseHold(ctx, key, token)
		return nil, fmt.Errorf("failed to generate booking reference: %w", err)
	}

	booking := &Booking{
		ID:               uuid.New(),
		UserID:           userID,
		ScheduleID:       req.ScheduleID,
		SeatNumber:       req.SeatNumber,
		TravelDate:       req.TravelDate,
		BookingReference: bookingRef,
		TicketID:         s.issuer.NewTicketID(),
		QRCode:           s.issuer.QRCodeFor(bookingRef),
		TotalAmount:      req.TotalAmount,
		BookingStatus:    StatusConfirmed,
		BoardingStatus:   BoardingNotBoarded,
	}

	// Step 3: persist. On failure the hold must be released, otherwise the
	// seat stays falsely held for the rest of the TTL.
	if err := s.repo.Create(ctx, booking); err != nil {
		s.releaseHold(ctx, key, token)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.log.LogBookingCreated(ctx, booking.ID.String(), booking.BookingReference, booking.UserID.String())
	s.publish(ctx, EventBookingCreated, booking)

	return booking, nil
}

// ConfirmBooking moves a PENDING booking to CONFIRMED. Bookings created here
// are already CONFIRMED; this transition serves external callers that create
// bookings in PENDING through other paths. Idempotent when already CONFIRMED.
func (s *service) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.IsConfirmed() {
		return booking, nil
	}

	if !booking.BookingStatus.CanBeConfirmed() {
		return nil, fmt.Errorf("%w: cannot confirm booking %s from %s",
			ErrInvalidTransition, bookingID, booking.BookingStatus)
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, StatusConfirmed, nil); err != nil {
		return nil, fmt.Errorf("failed to confirm booking %s: %w", bookingID, err)
	}

	booking.BookingStatus = StatusConfirmed
	s.publish(ctx, EventBookingConfirmed, booking)

	return booking, nil
}

// CancelBooking cancels a PENDING or CONFIRMED booking and frees the seat.
// The hold token is not tracked past commit, so the release is keyed only by
// seat: a cancelled seat must become available whatever its hold lineage.
func (s *service) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.BookingStatus.CanBeCancelled() {
		return nil, fmt.Errorf("%w: cannot cancel booking %s from %s",
			ErrInvalidTransition, bookingID, booking.BookingStatus)
	}

	now := time.Now()
	if err := s.repo.UpdateStatus(ctx, bookingID, StatusCancelled, &now); err != nil {
		return nil, fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}

	// Cancellation is committed at this point. A failed release is logged,
	// not surfaced: the hold expires by TTL on its own.
	if err := s.store.ForceRelease(ctx, booking.SeatKey()); err != nil {
		s.log.ErrorWithContext(ctx, "failed to release seat after cancellation", err, map[string]interface{}{
			"booking_id": bookingID.String(),
			"seat":       booking.SeatKey().String(),
		})
	}

	booking.BookingStatus = StatusCancelled
	booking.CancelledAt = &now
	s.log.LogBookingCancelled(ctx, booking.ID.String(), booking.BookingReference, booking.UserID.String())
	s.publish(ctx, EventBookingCancelled, booking)

	return booking, nil
}

// MarkBoarded stamps the passenger as boarded. Allowed only once, from
// NOT_BOARDED.
func (s *service) MarkBoarded(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	return s.updateBoarding(ctx, bookingID, BoardingBoarded)
}

// MarkMissed records that the passenger did not board. Allowed only from
// NOT_BOARDED.
func (s *service) MarkMissed(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	return s.updateBoarding(ctx, bookingID, BoardingMissed)
}

func (s *service) updateBoarding(ctx context.Context, bookingID uuid.UUID, target BoardingStatus) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.BoardingStatus.CanTransition() {
		return nil, fmt.Errorf("%w: cannot move booking %s boarding status from %s to %s",
			ErrInvalidTransition, bookingID, booking.BoardingStatus, target)
	}

	var boardingTime *time.Time
	if target == BoardingBoarded {
		now := time.Now()
		boardingTime = &now
	}

	if err := s.repo.UpdateBoarding(ctx, bookingID, target, boardingTime); err != nil {
		return nil, fmt.Errorf("failed to update boarding for booking %s: %w", bookingID, err)
	}

	booking.BoardingStatus = target
	booking.BoardingTime = boardingTime

	if target == BoardingBoarded {
		s.publish(ctx, EventBookingBoarded, booking)
	}

	return booking, nil
}

// GetBooking retrieves a booking by ID
func (s *service) GetBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	return s.repo.GetByID(ctx, bookingID)
}

// GetByReference retrieves a booking by its reference code
func (s *service) GetByReference(ctx context.Context, bookingReference string) (*Booking, error) {
	return s.repo.GetByReference(ctx, bookingReference)
}

// GetByTicketID retrieves a booking by its RFID ticket id
func (s *service) GetByTicketID(ctx context.Context, ticketID string) (*Booking, error) {
	return s.repo.GetByTicketID(ctx, ticketID)
}

// GetUserBookings retrieves bookings for a specific user, newest first
func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Booking, error) {
	return s.repo.GetUserBookings(ctx, userID, limit, offset)
}

// GetScheduleBookings retrieves the bookings for one schedule on one date
func (s *service) GetScheduleBookings(ctx context.Context, scheduleID int64, travelDate string) ([]Booking, error) {
	return s.repo.GetScheduleBookings(ctx, scheduleID, travelDate)
}

// IsSeatAvailable is the advisory pre-booking check: no live hold and no
// CONFIRMED booking for the seat. A subsequent CreateBooking may still lose
// a race; that failure, not this check, is authoritative.
func (s *service) IsSeatAvailable(ctx context.Context, key seats.SeatKey) (bool, error) {
	held, err := s.store.IsHeld(ctx, key)
	if err != nil {
		return false, err
	}
	if held {
		return false, nil
	}

	confirmed, err := s.repo.HasConfirmedForSeat(ctx, key)
	if err != nil {
		return false, err
	}
	return !confirmed, nil
}

func (s *service) releaseHold(ctx context.Context, key seats.SeatKey, token string) {
	if err := s.store.Release(ctx, key, token); err != nil {
		s.log.ErrorWithContext(ctx, "failed to release seat hold", err, map[string]interface{}{
			"seat": key.String(),
		})
	}
}

// publish hands the event to the notifier without blocking the caller.
// Booking correctness never depends on notification delivery.
func (s *service) publish(ctx context.Context, kind string, booking *Booking) {
	if s.notifier == nil {
		return
	}
	snapshot := *booking
	go s.notifier.PublishBookingEvent(context.WithoutCancel(ctx), kind, &snapshot)
}
