package routes

import (
	"net/http"
	"time"

	"dahabiyat/handlers"
	"dahabiyat/middleware"
	"dahabiyat/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the route groups need.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Admin        *handlers.AdminHandler
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware())
		adminGroup.Use(middleware.AdminOnlyMiddleware())
		adminGroup.GET("/bookings", hb.Admin.ListAllBookings)
		adminGroup.PATCH("/bookings/:bookingID/status", hb.Admin.UpdateBookingStatus)
		adminGroup.POST("/blocks", hb.Admin.CreateAvailabilityBlock)
		adminGroup.GET("/blocks", hb.Admin.ListAvailabilityBlocks)
		adminGroup.DELETE("/blocks/:blockID", hb.Admin.DeleteAvailabilityBlock)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
