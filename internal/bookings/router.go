package bookings

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures all booking-related routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", controller.CreateBooking)
		bookings.GET("/:id", controller.GetBooking)
		bookings.PUT("/:id/confirm", controller.ConfirmBooking)
		bookings.PUT("/:id/cancel", controller.CancelBooking)
		bookings.PUT("/:id/board", controller.MarkBoarded)
		bookings.PUT("/:id/miss", controller.MarkMissed)
		bookings.GET("/reference/:reference", controller.GetByReference)
		bookings.GET("/ticket/:ticketId", controller.GetByTicketID)
		bookings.GET("/user/:userId", controller.GetUserBookings)
		bookings.GET("/schedule/:scheduleId", controller.GetScheduleBookings)
	}

	seatRoutes := rg.Group("/seats")
	{
		seatRoutes.GET("/availability", controller.CheckSeatAvailability)
	}
}
