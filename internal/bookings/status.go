package bookings

// Status is the booking lifecycle state.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// IsValid checks if the booking status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanBeConfirmed checks if a booking with this status can move to CONFIRMED
func (s Status) CanBeConfirmed() bool {
	return s == StatusPending
}

// CanBeCancelled checks if a booking with this status can be cancelled
func (s Status) CanBeCancelled() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal checks if no further lifecycle transition is allowed
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// BoardingStatus tracks the passenger's boarding outcome, independently of
// the booking lifecycle.
type BoardingStatus string

const (
	BoardingNotBoarded BoardingStatus = "NOT_BOARDED"
	BoardingBoarded    BoardingStatus = "BOARDED"
	BoardingMissed     BoardingStatus = "MISSED"
)

// IsValid checks if the boarding status is valid
func (b BoardingStatus) IsValid() bool {
	switch b {
	case BoardingNotBoarded, BoardingBoarded, BoardingMissed:
		return true
	}
	return false
}

// String returns the string representation of BoardingStatus
func (b BoardingStatus) String() string {
	return string(b)
}

// CanTransition checks whether this boarding status may change at all.
// Boarding only ever moves forward: NOT_BOARDED to BOARDED or MISSED.
func (b BoardingStatus) CanTransition() bool {
	return b == BoardingNotBoarded
}
