package seats

import "fmt"

// SeatKey identifies one bookable seat instance: a physical seat on a
// scheduled trip on a given travel date. It is used as the lookup key for
// holds and for confirmed-booking checks and is never mutated.
type SeatKey struct {
	ScheduleID int64  `json:"schedule_id"`
	SeatNumber string `json:"seat_number"`
	TravelDate string `json:"travel_date"` // YYYY-MM-DD
}

// NewSeatKey builds a SeatKey for the given schedule, seat and travel date.
func NewSeatKey(scheduleID int64, seatNumber, travelDate string) SeatKey {
	return SeatKey{
		ScheduleID: scheduleID,
		SeatNumber: seatNumber,
		TravelDate: travelDate,
	}
}

// RedisKey returns the canonical Redis key for this seat's hold marker.
func (k SeatKey) RedisKey() string {
	return fmt.Sprintf("seat_hold:%d:%s:%s", k.ScheduleID, k.SeatNumber, k.TravelDate)
}

func (k SeatKey) String() string {
	return fmt.Sprintf("schedule=%d seat=%s date=%s", k.ScheduleID, k.SeatNumber, k.TravelDate)
}
