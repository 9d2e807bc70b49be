package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"tripoptimizer/internal/domain"
	"tripoptimizer/internal/http/middleware"
	"tripoptimizer/internal/repositories"
	"tripoptimizer/internal/services"
	"tripoptimizer/internal/utils"

	"github.com/gin-gonic/gin"
)

// Handler carries the datastore handle injected at construction time. Services
// are built per request so log lines carry the request id.
type Handler struct {
	DB *sql.DB
}

func NewHandler(db *sql.DB) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) requests() repositories.TripRequestRepository {
	return repositories.TripRequestRepository{DB: h.DB}
}

func (h *Handler) optionService(c *gin.Context) services.OptionService {
	return services.OptionService{
		Requests:   repositories.TripRequestRepository{DB: h.DB},
		Options:    repositories.TripOptionRepository{DB: h.DB},
		Activities: repositories.ActivityRepository{DB: h.DB},
		RequestID:  middleware.GetRequestID(c),
	}
}

func (h *Handler) paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		Options:   repositories.TripOptionRepository{DB: h.DB},
		Payments:  repositories.PaymentRepository{DB: h.DB},
		Bookings:  repositories.BookingRepository{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) itineraryService(c *gin.Context) services.ItineraryService {
	return services.ItineraryService{
		Options:    repositories.TripOptionRepository{DB: h.DB},
		Requests:   repositories.TripRequestRepository{DB: h.DB},
		Activities: repositories.ActivityRepository{DB: h.DB},
		Bookings:   repositories.BookingRepository{DB: h.DB},
		Payments:   repositories.PaymentRepository{DB: h.DB},
		RequestID:  middleware.GetRequestID(c),
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// RespondDomainError maps domain errors to HTTP responses and logs them with
// the request id before surfacing. Nothing is re-thrown past the boundary.
func RespondDomainError(c *gin.Context, component string, err error) {
	utils.LogEvent(middleware.GetRequestID(c), component, "error", err.Error())
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "request body required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
