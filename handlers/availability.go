package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"mentorly/config"
	"mentorly/models"
	"mentorly/services/availability"
	"mentorly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the learner-facing read side of the engine:
// slots for one date, and the dates in the horizon with any slot.
type AvailabilityHandler struct {
	Service availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetSlotsHandler handles GET /api/availability/:expertID/slots?date=YYYY-MM-DD&duration=30.
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	expertID := c.Param("expertID")
	date := c.Query("date")
	if expertID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing expertID or date", "")
		return
	}
	duration, ok := parseDuration(c)
	if !ok {
		return
	}

	slots, err := h.Service.SlotsForDate(c.Request.Context(), expertID, date, duration)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}

	// Empty means "no availability", a normal outcome; serve [] not null.
	if slots == nil {
		slots = make([]models.CandidateSlot, 0)
	}
	c.JSON(http.StatusOK, gin.H{"expertId": expertID, "date": date, "duration": duration, "slots": slots})
}

// GetAvailableDatesHandler handles GET /api/availability/:expertID/dates?duration=30.
func (h *AvailabilityHandler) GetAvailableDatesHandler(c *gin.Context) {
	expertID := c.Param("expertID")
	if expertID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing expertID", "")
		return
	}
	duration, ok := parseDuration(c)
	if !ok {
		return
	}

	dates, err := h.Service.AvailableDates(c.Request.Context(), expertID, duration)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}

	if dates == nil {
		dates = make([]string, 0)
	}
	c.JSON(http.StatusOK, gin.H{"expertId": expertID, "duration": duration, "dates": dates})
}

// parseDuration reads and validates the duration query parameter against the
// configured session durations. On failure it writes the error response and
// returns ok=false.
func parseDuration(c *gin.Context) (int, bool) {
	raw := c.Query("duration")
	duration, err := strconv.Atoi(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid duration", "duration must be an integer number of minutes")
		return 0, false
	}
	if !config.DurationOffered(duration) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid duration", "duration is not one of the offered session lengths")
		return 0, false
	}
	return duration, true
}

func respondAvailabilityError(c *gin.Context, err error) {
	var malformed *availability.MalformedTimeError
	if errors.As(err, &malformed) {
		// Stored window or booking data is unusable; surface it as a data
		// defect rather than a server fault.
		utils.GetLogger().Error("malformed time in stored availability data", zap.Error(err))
		utils.JSONError(c, http.StatusUnprocessableEntity, "Stored availability data is malformed", err.Error())
		return
	}
	utils.GetLogger().Error("availability computation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", err.Error())
}
