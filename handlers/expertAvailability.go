package handlers

import (
	"errors"
	"net/http"

	"mentorly/models"
	"mentorly/services/availability"
	"mentorly/services/expert"
	"mentorly/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ExpertHandler serves experts' weekly availability management.
type ExpertHandler struct {
	Service expert.Service
}

func NewExpertHandler(svc expert.Service) *ExpertHandler {
	return &ExpertHandler{Service: svc}
}

// SetupAvailabilityHandler handles PUT /api/experts/availability, replacing
// the authenticated expert's entire weekly setup.
func (h *ExpertHandler) SetupAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	expertID := accountIDFromContext(c)
	if expertID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Expert not authenticated"})
		return
	}

	var req models.SetupAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability setup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	dto, err := h.Service.SetupAvailability(c.Request.Context(), expertID, req)
	if err != nil {
		var invalid *availability.WindowValidationError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability window", "message": err.Error()})
			return
		}
		logger.Error("Failed to set up availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set up availability", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Availability setup successful",
		"availability": dto,
	})
}

// GetAvailabilityHandler handles GET /api/experts/availability for the
// authenticated expert, inactive windows included.
func (h *ExpertHandler) GetAvailabilityHandler(c *gin.Context) {
	expertID := accountIDFromContext(c)
	if expertID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Expert not authenticated"})
		return
	}

	dto, err := h.Service.GetAvailability(c.Request.Context(), expertID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": dto})
}

// ToggleWindowHandler handles PATCH /api/experts/availability/:windowID with
// an {"active": bool} body.
func (h *ExpertHandler) ToggleWindowHandler(c *gin.Context) {
	expertID := accountIDFromContext(c)
	if expertID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Expert not authenticated"})
		return
	}
	windowID := c.Param("windowID")
	if windowID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing window ID in path"})
		return
	}

	var body struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Active == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid active flag in request body"})
		return
	}

	if err := h.Service.SetWindowActive(c.Request.Context(), expertID, windowID, *body.Active); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No window with that ID"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update window", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Window updated"})
}

// DeleteWindowHandler handles DELETE /api/experts/availability/:windowID.
func (h *ExpertHandler) DeleteWindowHandler(c *gin.Context) {
	expertID := accountIDFromContext(c)
	if expertID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Expert not authenticated"})
		return
	}
	windowID := c.Param("windowID")
	if windowID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing window ID in path"})
		return
	}

	if err := h.Service.RemoveWindow(c.Request.Context(), expertID, windowID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No window with that ID"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete window", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Window deleted"})
}
