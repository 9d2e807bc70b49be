package repositories

import (
	"database/sql"
	"fmt"

	"tripoptimizer/internal/domain/models"
)

type TripOptionRepository struct {
	DB *sql.DB
}

const tripOptionColumns = `id,
	       COALESCE(trip_request_id,0),
	       COALESCE(destination,''),
	       COALESCE(flight_airline,''),
	       COALESCE(flight_number,''),
	       COALESCE(flight_price,0),
	       COALESCE(hotel_name,''),
	       COALESCE(hotel_price,0),
	       COALESCE(total_cost,0),
	       COALESCE(remaining_budget,0),
	       COALESCE(score,0),
	       COALESCE(explanation,'')`

func (r TripOptionRepository) Create(opt models.TripOption) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO trip_options
			(trip_request_id, destination, flight_airline, flight_number, flight_price,
			 hotel_name, hotel_price, total_cost, remaining_budget, score, explanation)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		opt.TripRequestID,
		opt.Destination,
		opt.Flight.Airline,
		opt.Flight.FlightNumber,
		opt.Flight.Price,
		opt.Hotel.Name,
		opt.Hotel.Price,
		opt.TotalCost,
		opt.RemainingBudget,
		opt.Score,
		opt.Explanation,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripOptionRepository) GetByID(id int64) (models.TripOption, error) {
	if id <= 0 {
		return models.TripOption{}, fmt.Errorf("invalid trip option id %d", id)
	}

	row := r.DB.QueryRow(`SELECT `+tripOptionColumns+` FROM trip_options WHERE id=? LIMIT 1`, id)
	return scanTripOption(row)
}

func (r TripOptionRepository) ListByTripRequestID(tripRequestID int64) ([]models.TripOption, error) {
	rows, err := r.DB.Query(`SELECT `+tripOptionColumns+` FROM trip_options WHERE trip_request_id=? ORDER BY id ASC`, tripRequestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TripOption{}
	for rows.Next() {
		opt, err := scanTripOption(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, opt)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTripOption(row rowScanner) (models.TripOption, error) {
	var opt models.TripOption
	if err := row.Scan(
		&opt.ID,
		&opt.TripRequestID,
		&opt.Destination,
		&opt.Flight.Airline,
		&opt.Flight.FlightNumber,
		&opt.Flight.Price,
		&opt.Hotel.Name,
		&opt.Hotel.Price,
		&opt.TotalCost,
		&opt.RemainingBudget,
		&opt.Score,
		&opt.Explanation,
	); err != nil {
		return models.TripOption{}, err
	}
	return opt, nil
}
