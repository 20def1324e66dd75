package bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smartbus/internal/seats"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateBooking handles POST /api/v1/bookings
func (c *Controller) CreateBooking(ctx *gin.Context) {
	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	booking, err := c.service.CreateBooking(ctx.Request.Context(), req)
	if err != nil {
		respondBookingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"data":    booking.ToResponse(),
	})
}

// GetBooking handles GET /api/v1/bookings/:id
func (c *Controller) GetBooking(ctx *gin.Context) {
	bookingID, ok := parseBookingID(ctx)
	if !ok {
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), bookingID)
	if err != nil {
		respondBookingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Booking retrieved successfully",
		"data":    booking.ToResponse(),
	})
}

// ConfirmBooking handles PUT /api/v1/bookings/:id/confirm
func (c *Controller) ConfirmBooking(ctx *gin.Context) {
	bookingID, ok := parseBookingID(ctx)
	if !ok {
		return
	}

	booking, err := c.service.ConfirmBooking(ctx.Request.Context(), bookingID)
	if err != nil {
		respondBookingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Booking confirmed successfully",
		"data":    booking.ToResponse(),
	})
}

// CancelBooking handles PUT /api/v1/bookings/:id/cancel
func (c *Controller) CancelBooking(ctx *gin.Context) {
	bookingID, ok := parseBookingID(ctx)
	if !ok {
		return
	}

	booking, err := c.service.CancelBooking(ctx.Request.Context(), bookingID)
	if err != nil {
		respondBookingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled successfully",
		"data":    booking.ToResponse(),
	})
}

// MarkBoarded handles PUT /api/v1/bookings/:id/board
func (c *Controller) MarkBoarded(ctx *gin.Context) {
	bookingID, ok := parseBookingID(ctx)
	if !ok {
		return
	}

	booking, err := c.service.MarkBoarded(ctx.Request.Context(), bookingID)
	if err != nil {
		respondBookingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Passenger marked as boarded",
		"data":    booking.ToResponse(),
	})
}

// MarkMissed handles PUT /api/v1/bookings/:id/miss
func (c *Controller) MarkMissed(ctx *gin.Context) {
	bookingID, ok := parseBookingID(ctx)
	if !ok {
		return
	}

	booking, err := c.service.MarkMissed(ctx.Request.Context(), bookingID)
	if err != nil {
		respondBookingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Passenger marked as missed",
		"data":    booking.ToResponse(),
	})
}

// GetByReference handles GET /api/v1/bookings/reference/:reference
func (c *Controller) GetByReference(ctx *gin.Context) {
	booking, err := c.service.GetByReference(ctx.Request.Context(), ctx.Param("reference"))
	if err != nil {
		respondBookingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Booking retrieved successfully",
		"data":    booking.ToResponse(),
	})
}

// GetByTicketID handles GET /api/v1/bookings/ticket/:ticketId
func (c *Controller) GetByTicketID(ctx *gin.Context) {
	booking, err := c.service.GetByTicketID(ctx.Request.Context(), ctx.Param("ticketId"))
	if err != nil {
		respondBookingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Booking retrieved successfully",
		"data":    booking.ToResponse(),
	})
}

// GetUserBookings handles GET /api/v1/bookings/user/:userId
func (c *Controller) GetUserBookings(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	list, err := c.service.GetUserBookings(ctx.Request.Context(), userID, limit, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get user bookings",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Bookings retrieved successfully",
		"data": gin.H{
			"bookings": toResponses(list),
			"count":    len(list),
			"limit":    limit,
			"offset":   offset,
		},
	})
}

// GetScheduleBookings handles GET /api/v1/bookings/schedule/:scheduleId
func (c *Controller) GetScheduleBookings(ctx *gin.Context) {
	scheduleID, err := strconv.ParseInt(ctx.Param("scheduleId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	travelDate := ctx.DefaultQuery("travel_date", "")
	if travelDate == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "travel_date query parameter is required"})
		return
	}

	list, err := c.service.GetScheduleBookings(ctx.Request.Context(), scheduleID, travelDate)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get schedule bookings",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Bookings retrieved successfully",
		"data": gin.H{
			"bookings": toResponses(list),
			"count":    len(list),
		},
	})
}

// CheckSeatAvailability handles GET /api/v1/seats/availability
func (c *Controller) CheckSeatAvailability(ctx *gin.Context) {
	var q SeatAvailabilityQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	key := seats.NewSeatKey(q.ScheduleID, q.SeatNumber, q.TravelDate)
	available, err := c.service.IsSeatAvailable(ctx.Request.Context(), key)
	if err != nil {
		respondBookingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Seat availability checked",
		"data": SeatAvailabilityResponse{
			ScheduleID: q.ScheduleID,
			SeatNumber: q.SeatNumber,
			TravelDate: q.TravelDate,
			Available:  available,
		},
	})
}

func parseBookingID(ctx *gin.Context) (uuid.UUID, bool) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return uuid.Nil, false
	}
	return bookingID, true
}

func toResponses(list []Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(list))
	for i := range list {
		responses = append(responses, list[i].ToResponse())
	}
	return responses
}

// respondBookingError maps the failure taxonomy onto HTTP statuses. A store
// outage is 503 so clients retry with backoff instead of treating the seat
// as taken.
func respondBookingError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSeatUnavailable):
		ctx.JSON(http.StatusConflict, gin.H{
			"error":   "Seat is not available",
			"details": err.Error(),
		})
	case errors.Is(err, ErrBookingNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":   "Booking not found",
			"details": err.Error(),
		})
	case errors.Is(err, ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, gin.H{
			"error":   "Invalid booking transition",
			"details": err.Error(),
		})
	case errors.Is(err, seats.ErrStoreUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Seat store temporarily unavailable, retry later",
			"details": err.Error(),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Booking operation failed",
			"details": err.Error(),
		})
	}
}
