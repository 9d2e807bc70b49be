package handlers

import (
	"net/http"

	"tripoptimizer/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type buildOptionPayload struct {
	Flight models.FlightOffer `json:"flight"`
	Hotel  models.HotelOffer  `json:"hotel"`
}

// POST /api/trip-requests/:id/options
func (h *Handler) CreateTripOption(c *gin.Context) {
	tripRequestID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload buildOptionPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	opt, activities, err := h.optionService(c).BuildOption(tripRequestID, payload.Flight, payload.Hotel)
	if err != nil {
		RespondDomainError(c, "options", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"tripOption": opt,
		"activities": activities,
	})
}

// GET /api/trip-requests/:id/options
func (h *Handler) ListTripOptions(c *gin.Context) {
	tripRequestID, ok := paramID(c, "id")
	if !ok {
		return
	}

	opts, err := h.optionService(c).ListOptions(tripRequestID)
	if err != nil {
		RespondDomainError(c, "options", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tripOptions": opts})
}

// GET /api/trip-options/:id
func (h *Handler) GetTripOption(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	opt, err := h.optionService(c).GetOption(id)
	if err != nil {
		RespondDomainError(c, "options", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tripOption": opt})
}

// GET /api/trip-options/:id/activities
func (h *Handler) ListTripOptionActivities(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	activities, err := h.optionService(c).GetActivitiesForTripOption(id)
	if err != nil {
		RespondDomainError(c, "options", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "activities": activities})
}

type lockPayload struct {
	Locked bool `json:"locked"`
}

// PUT /api/activities/:id/lock
func (h *Handler) SetActivityLock(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload lockPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	if err := h.optionService(c).SetActivityLock(id, payload.Locked); err != nil {
		RespondDomainError(c, "options", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "activityId": id, "locked": payload.Locked})
}
