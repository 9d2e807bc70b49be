package repositories

import (
	"database/sql"
	"fmt"

	"tripoptimizer/internal/domain/models"
)

type TripRequestRepository struct {
	DB *sql.DB
}

func (r TripRequestRepository) Create(req models.TripRequest) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO trip_requests (origin, destination, start_date, number_of_days, total_budget, travel_style)
		VALUES (?,?,?,?,?,?)`,
		req.Origin,
		req.Destination,
		req.StartDate,
		req.NumberOfDays,
		req.TotalBudget,
		string(req.TravelStyle),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID fetches a trip request by primary key. sql.ErrNoRows passes through
// so the service layer can map it to a not-found error.
func (r TripRequestRepository) GetByID(id int64) (models.TripRequest, error) {
	if id <= 0 {
		return models.TripRequest{}, fmt.Errorf("invalid trip request id %d", id)
	}

	query := `
		SELECT id,
		       COALESCE(origin,''),
		       COALESCE(destination,''),
		       COALESCE(start_date,''),
		       COALESCE(number_of_days,0),
		       COALESCE(total_budget,0),
		       COALESCE(travel_style,'BALANCED')
		FROM trip_requests
		WHERE id=? LIMIT 1`

	var req models.TripRequest
	var style string
	if err := r.DB.QueryRow(query, id).Scan(
		&req.ID,
		&req.Origin,
		&req.Destination,
		&req.StartDate,
		&req.NumberOfDays,
		&req.TotalBudget,
		&style,
	); err != nil {
		return models.TripRequest{}, err
	}
	req.TravelStyle = models.TravelStyle(style)
	return req, nil
}
