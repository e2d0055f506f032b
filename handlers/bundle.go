// File: mentorly/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Public availability reads
	GetSlotsHandler          gin.HandlerFunc
	GetAvailableDatesHandler gin.HandlerFunc

	// Booking endpoints (learner)
	ReserveHandler gin.HandlerFunc

	// Expert endpoints
	SetupAvailabilityHandler  gin.HandlerFunc
	GetAvailabilityHandler    gin.HandlerFunc
	ToggleWindowHandler       gin.HandlerFunc
	DeleteWindowHandler       gin.HandlerFunc
	ListExpertBookingsHandler gin.HandlerFunc
	CancelBookingHandler      gin.HandlerFunc
}
