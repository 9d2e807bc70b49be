package services

import (
	"database/sql"
	"errors"
	"fmt"

	"tripoptimizer/internal/domain"
	"tripoptimizer/internal/domain/models"
	"tripoptimizer/internal/repositories"
	"tripoptimizer/internal/utils"
)

const (
	defaultTripDays      = 7
	defaultTravelerName  = "Guest Traveler"
	defaultTravelerEmail = "guest@tripoptimizer.app"

	bookingStatusConfirmed = "CONFIRMED"
)

// ItineraryService joins a trip option with its trip request, bookings, and
// payment into one denormalized document for preview or PDF download.
// Loader lets tests inject a prebuilt document instead of hitting the store.
type ItineraryService struct {
	Options    repositories.TripOptionRepository
	Requests   repositories.TripRequestRepository
	Activities repositories.ActivityRepository
	Bookings   repositories.BookingRepository
	Payments   repositories.PaymentRepository
	RequestID  string
	Loader     func(int64) (models.ItineraryDocument, error)
}

// Assemble builds the itinerary document for a trip option. A missing option
// or missing owning request surfaces as not-found; bookings and payment are
// optional.
func (s ItineraryService) Assemble(tripOptionID int64) (models.ItineraryDocument, error) {
	if s.Loader != nil {
		return s.Loader(tripOptionID)
	}
	if tripOptionID <= 0 {
		return models.ItineraryDocument{}, domain.ValidationError{Field: "trip_option_id", Msg: "invalid id"}
	}

	opt, err := s.Options.GetByID(tripOptionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ItineraryDocument{}, domain.NotFoundError{Resource: "Trip option", Err: err}
		}
		return models.ItineraryDocument{}, domain.InternalError{Err: err}
	}

	req, err := s.Requests.GetByID(opt.TripRequestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Orphaned option: the owning request is gone.
			return models.ItineraryDocument{}, domain.NotFoundError{Resource: "Trip request", Err: err}
		}
		return models.ItineraryDocument{}, domain.InternalError{Err: err}
	}

	activities, err := s.Activities.ListByTripOptionID(tripOptionID)
	if err != nil {
		return models.ItineraryDocument{}, domain.InternalError{Err: err}
	}

	bookings, err := s.Bookings.ListByTripOptionID(tripOptionID)
	if err != nil {
		return models.ItineraryDocument{}, domain.InternalError{Err: err}
	}

	var payment *models.Payment
	if p, err := s.Payments.GetByTripOptionID(tripOptionID); err == nil {
		payment = &p
	} else if !errors.Is(err, sql.ErrNoRows) {
		return models.ItineraryDocument{}, domain.InternalError{Err: err}
	}

	doc := models.ItineraryDocument{
		TripID:          req.ID,
		TripOptionID:    opt.ID,
		Destination:     opt.Destination,
		Origin:          req.Origin,
		Flight:          opt.Flight,
		Hotel:           opt.Hotel,
		Activities:      activities,
		Confirmations:   groupConfirmations(bookings),
		TotalCost:       opt.TotalCost,
		RemainingBudget: opt.RemainingBudget,
		Score:           opt.Score,
		BookingStatus:   bookingStatusConfirmed,
	}
	if payment != nil {
		doc.Payment = &models.PaymentSummary{
			Amount:   payment.Amount,
			Currency: payment.Currency,
			IntentID: payment.IntentID,
		}
	}

	resolveItineraryDefaults(&doc, req, payment)

	utils.LogEvent(s.RequestID, "itinerary", "assemble",
		fmt.Sprintf("trip_option_id=%d bookings=%d has_payment=%t", tripOptionID, len(bookings), payment != nil))

	return doc, nil
}

// resolveItineraryDefaults is the single place missing trip data is filled in,
// so the preview and download paths can never diverge.
func resolveItineraryDefaults(doc *models.ItineraryDocument, req models.TripRequest, payment *models.Payment) {
	doc.NumberOfDays = req.NumberOfDays
	if doc.NumberOfDays < 1 {
		doc.NumberOfDays = defaultTripDays
	}

	doc.StartDate = req.StartDate
	doc.EndDate = ""
	if doc.StartDate != "" {
		doc.EndDate = utils.AddDays(doc.StartDate, doc.NumberOfDays)
	}

	doc.TravelerName = defaultTravelerName
	doc.TravelerEmail = defaultTravelerEmail
	if payment != nil {
		if payment.BillingName != "" {
			doc.TravelerName = payment.BillingName
		}
		if payment.BillingEmail != "" {
			doc.TravelerEmail = payment.BillingEmail
		}
	}
}

func groupConfirmations(bookings []models.Booking) models.ItineraryConfirmations {
	var out models.ItineraryConfirmations
	for _, b := range bookings {
		switch d := b.Details.(type) {
		case models.FlightConfirmation:
			out.Flight = append(out.Flight, d)
		case models.HotelConfirmation:
			out.Hotel = append(out.Hotel, d)
		case models.ActivityConfirmation:
			out.Activity = append(out.Activity, d)
		}
	}
	return out
}
