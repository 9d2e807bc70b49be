package handlers

import (
	"net/http"

	"tripoptimizer/internal/domain"
	"tripoptimizer/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type checkoutPayload struct {
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	IntentID     string `json:"intentId"`
	BillingName  string `json:"billingName"`
	BillingEmail string `json:"billingEmail"`
}

// POST /api/trip-options/:id/checkout
func (h *Handler) Checkout(c *gin.Context) {
	tripOptionID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload checkoutPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	payment, err := h.paymentService(c).Checkout(tripOptionID, models.Payment{
		Amount:       payload.Amount,
		Currency:     payload.Currency,
		IntentID:     payload.IntentID,
		BillingName:  payload.BillingName,
		BillingEmail: payload.BillingEmail,
	})
	if err != nil {
		RespondDomainError(c, "payments", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "payment": payment})
}

type confirmationPayload struct {
	Type     string                       `json:"type"`
	Flight   *models.FlightConfirmation   `json:"flight,omitempty"`
	Hotel    *models.HotelConfirmation    `json:"hotel,omitempty"`
	Activity *models.ActivityConfirmation `json:"activity,omitempty"`
}

type confirmBookingsPayload struct {
	Confirmations []confirmationPayload `json:"confirmations"`
}

// POST /api/trip-options/:id/confirm
func (h *Handler) ConfirmBookings(c *gin.Context) {
	tripOptionID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload confirmBookingsPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	details := make([]models.BookingDetails, 0, len(payload.Confirmations))
	for _, conf := range payload.Confirmations {
		switch {
		case models.BookingType(conf.Type) == models.BookingFlight && conf.Flight != nil:
			details = append(details, *conf.Flight)
		case models.BookingType(conf.Type) == models.BookingHotel && conf.Hotel != nil:
			details = append(details, *conf.Hotel)
		case models.BookingType(conf.Type) == models.BookingActivity && conf.Activity != nil:
			details = append(details, *conf.Activity)
		default:
			RespondDomainError(c, "payments", domain.ValidationError{Field: "confirmations", Msg: "type and matching payload required"})
			return
		}
	}

	bookings, err := h.paymentService(c).ConfirmBookings(tripOptionID, details)
	if err != nil {
		RespondDomainError(c, "payments", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "bookings": bookings})
}
