package routes

import (
	"dahabiyat/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the public quote endpoints. No auth:
// browsing availability never requires an account.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.POST("/check", hb.Availability.CheckAvailability)
		api.POST("/alternatives", hb.Availability.FindAlternatives)
	}
}

// RegisterBookingRoutes sets up the endpoints for the reservation engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("", hb.Booking.CreateBooking)
		bookingGroup.GET("", hb.Booking.ListMyBookings)
		bookingGroup.GET("/:bookingID", hb.Booking.GetBooking)
		bookingGroup.POST("/:bookingID/cancel", hb.Booking.CancelBooking)
	}
}
