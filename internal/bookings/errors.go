package bookings

import "errors"

// Booking failure taxonomy. Callers branch on these with errors.Is; the
// wrapped message always carries the seat key or booking id for diagnosis.
var (
	// ErrSeatUnavailable means an unexpired hold already exists for the seat.
	// Recoverable: pick another seat or retry after the hold window.
	ErrSeatUnavailable = errors.New("seat unavailable")

	// ErrBookingNotFound means no booking matches the given id, reference or
	// ticket id. Terminal for that call.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidTransition means the requested lifecycle change is not
	// allowed from the booking's current state. Must never be retried.
	ErrInvalidTransition = errors.New("invalid booking transition")
)
