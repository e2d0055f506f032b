package handlers

import (
	"errors"
	"net/http"

	"mentorly/models"
	"mentorly/services/availability"
	"mentorly/services/booking"
	"mentorly/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BookingHandler serves the booking write path.
type BookingHandler struct {
	Service booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ReserveHandler handles POST /api/booking/reserve. The learner identity
// comes from the auth middleware, never the payload.
func (h *BookingHandler) ReserveHandler(c *gin.Context) {
	logger := utils.GetLogger()

	learnerID := accountIDFromContext(c)
	if learnerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Learner not authenticated"})
		return
	}

	var req models.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid reserve request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	bk, err := h.Service.Reserve(c.Request.Context(), learnerID, req)
	if err != nil {
		var malformedTime *availability.MalformedTimeError
		switch {
		case errors.Is(err, booking.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Slot no longer available", "message": err.Error()})
		case errors.Is(err, booking.ErrDurationNotOffered):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid duration", "message": err.Error()})
		case errors.As(err, &malformedTime):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start time", "message": err.Error()})
		default:
			logger.Error("Failed to reserve slot", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reserve slot", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking confirmed", "booking": bk})
}

// CancelBookingHandler handles DELETE /api/experts/bookings/:bookingID for
// the authenticated expert.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	expertID := accountIDFromContext(c)
	if expertID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Expert not authenticated"})
		return
	}
	bookingID := c.Param("bookingID")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing booking ID in path"})
		return
	}

	bk, err := h.Service.Cancel(c.Request.Context(), expertID, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No confirmed booking with that ID"})
			return
		}
		utils.GetLogger().Error("Failed to cancel booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "booking": bk})
}

// ListExpertBookingsHandler handles GET /api/experts/bookings?date=YYYY-MM-DD
// for the authenticated expert.
func (h *BookingHandler) ListExpertBookingsHandler(c *gin.Context) {
	expertID := accountIDFromContext(c)
	if expertID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Expert not authenticated"})
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}

	bookings, err := h.Service.ListForExpert(c.Request.Context(), expertID, date)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings", "message": err.Error()})
		return
	}
	if bookings == nil {
		bookings = make([]models.Booking, 0)
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "bookings": bookings})
}

// accountIDFromContext reads the subject placed by JWTAuthMiddleware.
func accountIDFromContext(c *gin.Context) string {
	v, exists := c.Get("accountID")
	if !exists {
		return ""
	}
	id, _ := v.(string)
	return id
}
