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

// OptionService assembles flight + hotel + activity offers into persisted
// trip options.
type OptionService struct {
	Requests   repositories.TripRequestRepository
	Options    repositories.TripOptionRepository
	Activities repositories.ActivityRepository
	Selector   ActivitySelector
	RequestID  string
}

// BuildOption composes a trip option for a request: derives the activity
// budget left after flight and hotel, runs the selector, persists the option
// and its activities, and returns the stored records.
func (s OptionService) BuildOption(tripRequestID int64, flight models.FlightOffer, hotel models.HotelOffer) (models.TripOption, []models.Activity, error) {
	if flight.Price < 0 || hotel.Price < 0 {
		return models.TripOption{}, nil, domain.ValidationError{Field: "offer", Msg: "price must not be negative"}
	}

	req, err := s.Requests.GetByID(tripRequestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TripOption{}, nil, domain.NotFoundError{Resource: "trip request", Err: err}
		}
		return models.TripOption{}, nil, domain.InternalError{Err: err}
	}

	days := req.NumberOfDays
	if days < 1 {
		days = defaultTripDays
	}

	activityBudget := req.TotalBudget - flight.Price - hotel.Price
	if activityBudget < 0 {
		activityBudget = 0
	}

	selection, err := s.Selector.Select(req.Destination, days, activityBudget, req.TravelStyle)
	if err != nil {
		return models.TripOption{}, nil, err
	}

	totalCost := flight.Price + hotel.Price + selection.TotalCost
	remaining := req.TotalBudget - totalCost
	if remaining < 0 {
		remaining = 0
	}

	opt := models.TripOption{
		TripRequestID:   req.ID,
		Destination:     req.Destination,
		Flight:          flight,
		Hotel:           hotel,
		TotalCost:       totalCost,
		RemainingBudget: remaining,
		Score:           scoreOption(req, totalCost, selection),
		Explanation:     explainOption(req, flight, hotel, selection),
	}

	optID, err := s.Options.Create(opt)
	if err != nil {
		return models.TripOption{}, nil, domain.InternalError{Err: err}
	}
	opt.ID = optID

	if err := s.CreateActivityOptions(optID, selection.Activities); err != nil {
		return models.TripOption{}, nil, err
	}

	activities, err := s.GetActivitiesForTripOption(optID)
	if err != nil {
		return models.TripOption{}, nil, err
	}

	utils.LogEvent(s.RequestID, "options", "build",
		fmt.Sprintf("trip_request_id=%d trip_option_id=%d total_cost=%d activities=%d", req.ID, optID, totalCost, len(activities)))

	return opt, activities, nil
}

// CreateActivityOptions persists the selected activities attached to a trip
// option, each initialized unlocked. A referential-integrity failure from the
// datastore propagates unmodified.
func (s OptionService) CreateActivityOptions(tripOptionID int64, activities []models.Activity) error {
	if tripOptionID <= 0 {
		return domain.ValidationError{Field: "trip_option_id", Msg: "invalid id"}
	}
	return s.Activities.CreateForTripOption(tripOptionID, activities)
}

// GetActivitiesForTripOption retrieves activities in original insertion order.
func (s OptionService) GetActivitiesForTripOption(tripOptionID int64) ([]models.Activity, error) {
	if tripOptionID <= 0 {
		return nil, domain.ValidationError{Field: "trip_option_id", Msg: "invalid id"}
	}
	activities, err := s.Activities.ListByTripOptionID(tripOptionID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return activities, nil
}

// SetActivityLock pins or unpins a single activity.
func (s OptionService) SetActivityLock(activityID int64, locked bool) error {
	if activityID <= 0 {
		return domain.ValidationError{Field: "activity_id", Msg: "invalid id"}
	}
	if err := s.Activities.SetLock(activityID, locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "activity", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "options", "set_lock", fmt.Sprintf("activity_id=%d locked=%t", activityID, locked))
	return nil
}

// GetOption fetches one trip option by id.
func (s OptionService) GetOption(tripOptionID int64) (models.TripOption, error) {
	opt, err := s.Options.GetByID(tripOptionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TripOption{}, domain.NotFoundError{Resource: "Trip option", Err: err}
		}
		return models.TripOption{}, domain.InternalError{Err: err}
	}
	return opt, nil
}

// ListOptions returns all candidate options for a trip request.
func (s OptionService) ListOptions(tripRequestID int64) ([]models.TripOption, error) {
	if _, err := s.Requests.GetByID(tripRequestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "trip request", Err: err}
		}
		return nil, domain.InternalError{Err: err}
	}
	opts, err := s.Options.ListByTripRequestID(tripRequestID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return opts, nil
}

// scoreOption grades how well an option fits the request: budget fit plus the
// average rating of the picked activities, clamped to [0,100].
func scoreOption(req models.TripRequest, totalCost int64, sel Selection) float64 {
	budgetScore := 50.0
	if req.TotalBudget > 0 {
		over := float64(totalCost-req.TotalBudget) / float64(req.TotalBudget)
		if over > 0 {
			budgetScore -= over * 100
		} else {
			budgetScore += (-over) * 25
		}
	}

	ratingScore := 0.0
	if len(sel.Activities) > 0 {
		var sum float64
		for _, a := range sel.Activities {
			sum += a.Rating
		}
		ratingScore = sum / float64(len(sel.Activities)) * 10
	}

	score := budgetScore + ratingScore
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func explainOption(req models.TripRequest, flight models.FlightOffer, hotel models.HotelOffer, sel Selection) string {
	return fmt.Sprintf("%s on %s, staying at %s, with %d activities for %s (activity budget left %s)",
		req.Destination,
		flight.Airline,
		hotel.Name,
		len(sel.Activities),
		utils.FormatUSD(sel.TotalCost),
		utils.FormatUSD(sel.Remaining),
	)
}
