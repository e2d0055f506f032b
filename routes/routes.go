package routes

import (
	"net/http"
	"time"

	"mentorly/handlers"
	"mentorly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the public, learner-facing read
// endpoints of the availability engine.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/:expertID/slots", hb.GetSlotsHandler)
		api.GET("/:expertID/dates", hb.GetAvailableDatesHandler)
	}
}

// RegisterBookingRoutes sets up the booking write path for learners.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(middleware.RoleLearner))
		bookingGroup.POST("/reserve", hb.ReserveHandler)
	}
}

// RegisterExpertRoutes registers the expert's availability and booking
// management endpoints.
func RegisterExpertRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/experts")
	{
		api.Use(middleware.JWTAuthMiddleware(middleware.RoleExpert))
		api.PUT("/availability", hb.SetupAvailabilityHandler)
		api.GET("/availability", hb.GetAvailabilityHandler)
		api.PATCH("/availability/:windowID", hb.ToggleWindowHandler)
		api.DELETE("/availability/:windowID", hb.DeleteWindowHandler)
		api.GET("/bookings", hb.ListExpertBookingsHandler)
		api.DELETE("/bookings/:bookingID", hb.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Mentorly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterExpertRoutes(r, hb)
}
