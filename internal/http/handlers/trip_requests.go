package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"tripoptimizer/internal/domain"
	"tripoptimizer/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type createTripRequestPayload struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	StartDate    string `json:"startDate"`
	NumberOfDays int    `json:"numberOfDays"`
	TotalBudget  int64  `json:"totalBudget"`
	TravelStyle  string `json:"travelStyle"`
}

// POST /api/trip-requests
func (h *Handler) CreateTripRequest(c *gin.Context) {
	var req createTripRequestPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		RespondDomainError(c, "trip_requests", domain.ValidationError{Field: "destination", Msg: "required"})
		return
	}
	if req.TotalBudget < 0 {
		RespondDomainError(c, "trip_requests", domain.ValidationError{Field: "totalBudget", Msg: "must not be negative"})
		return
	}
	style := models.TravelStyle(strings.ToUpper(strings.TrimSpace(req.TravelStyle)))
	if style == "" {
		style = models.StyleBalanced
	}
	if !style.Valid() {
		RespondDomainError(c, "trip_requests", domain.ValidationError{Field: "travelStyle", Msg: "must be BUDGET or BALANCED"})
		return
	}

	record := models.TripRequest{
		Origin:       strings.TrimSpace(req.Origin),
		Destination:  req.Destination,
		StartDate:    strings.TrimSpace(req.StartDate),
		NumberOfDays: req.NumberOfDays,
		TotalBudget:  req.TotalBudget,
		TravelStyle:  style,
	}

	id, err := h.requests().Create(record)
	if err != nil {
		RespondDomainError(c, "trip_requests", domain.InternalError{Err: err})
		return
	}
	record.ID = id

	c.JSON(http.StatusCreated, gin.H{"success": true, "tripRequest": record})
}

// GET /api/trip-requests/:id
func (h *Handler) GetTripRequest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	record, err := h.requests().GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondDomainError(c, "trip_requests", domain.NotFoundError{Resource: "trip request", Err: err})
			return
		}
		RespondDomainError(c, "trip_requests", domain.InternalError{Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tripRequest": record})
}
