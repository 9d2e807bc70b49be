package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tripoptimizer/internal/domain"
	"tripoptimizer/internal/domain/models"
	"tripoptimizer/internal/repositories"
	"tripoptimizer/internal/utils"
)

// PaymentService records checkout payments and the booking confirmations that
// may only follow a successful payment.
type PaymentService struct {
	Options   repositories.TripOptionRepository
	Payments  repositories.PaymentRepository
	Bookings  repositories.BookingRepository
	RequestID string
}

// Checkout records the payment for a trip option. At most one payment may
// exist per option; the record is read-only afterward.
func (s PaymentService) Checkout(tripOptionID int64, p models.Payment) (models.Payment, error) {
	if tripOptionID <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "trip_option_id", Msg: "invalid id"}
	}
	if p.Amount <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "amount", Msg: "must be positive"}
	}
	if strings.TrimSpace(p.IntentID) == "" {
		return models.Payment{}, domain.ValidationError{Field: "intent_id", Msg: "required"}
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}

	if _, err := s.Options.GetByID(tripOptionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Payment{}, domain.NotFoundError{Resource: "Trip option", Err: err}
		}
		return models.Payment{}, domain.InternalError{Err: err}
	}

	if _, err := s.Payments.GetByTripOptionID(tripOptionID); err == nil {
		return models.Payment{}, domain.ConflictError{Resource: "payment", Msg: "trip option already paid"}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, domain.InternalError{Err: err}
	}

	p.TripOptionID = tripOptionID
	id, err := s.Payments.Create(p)
	if err != nil {
		return models.Payment{}, domain.InternalError{Err: err}
	}
	p.ID = id

	utils.LogEvent(s.RequestID, "payments", "checkout",
		fmt.Sprintf("trip_option_id=%d amount=%d currency=%s", tripOptionID, p.Amount, p.Currency))
	return p, nil
}

// ConfirmBookings appends provider confirmations for a paid trip option.
// Confirmations are append-only and require an existing payment.
func (s PaymentService) ConfirmBookings(tripOptionID int64, details []models.BookingDetails) ([]models.Booking, error) {
	if tripOptionID <= 0 {
		return nil, domain.ValidationError{Field: "trip_option_id", Msg: "invalid id"}
	}
	if len(details) == 0 {
		return nil, domain.ValidationError{Field: "confirmations", Msg: "at least one required"}
	}

	if _, err := s.Options.GetByID(tripOptionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "Trip option", Err: err}
		}
		return nil, domain.InternalError{Err: err}
	}

	if _, err := s.Payments.GetByTripOptionID(tripOptionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ConflictError{Resource: "booking", Msg: "trip option has no recorded payment"}
		}
		return nil, domain.InternalError{Err: err}
	}

	out := make([]models.Booking, 0, len(details))
	for _, d := range details {
		b := models.Booking{TripOptionID: tripOptionID, Details: d}
		if d == nil {
			return nil, domain.ValidationError{Field: "confirmations", Msg: "empty confirmation payload"}
		}
		b.Type = d.BookingType()
		id, err := s.Bookings.Create(b)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		b.ID = id
		out = append(out, b)
	}

	utils.LogEvent(s.RequestID, "payments", "confirm_bookings",
		fmt.Sprintf("trip_option_id=%d confirmations=%d", tripOptionID, len(out)))
	return out, nil
}
