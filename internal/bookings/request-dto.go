package bookings

// CreateBookingRequest represents a booking creation request. The caller is
// expected to arrive with an already-validated schedule id and price; the
// catalog and payment services live outside this core.
type CreateBookingRequest struct {
	UserID      string  `json:"user_id" binding:"required,uuid"`
	ScheduleID  int64   `json:"schedule_id" binding:"required"`
	SeatNumber  string  `json:"seat_number" binding:"required"`
	TravelDate  string  `json:"travel_date" binding:"required,datetime=2006-01-02"`
	TotalAmount float64 `json:"total_amount" binding:"required,gt=0"`
}

// SeatAvailabilityQuery represents the advisory availability check input
type SeatAvailabilityQuery struct {
	ScheduleID int64  `form:"schedule_id" binding:"required"`
	SeatNumber string `form:"seat_number" binding:"required"`
	TravelDate string `form:"travel_date" binding:"required,datetime=2006-01-02"`
}
