package repositories

import (
	"database/sql"
	"fmt"

	"tripoptimizer/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

// Create appends one confirmation record. Bookings are never updated or
// deleted afterward.
func (r BookingRepository) Create(b models.Booking) (int64, error) {
	if b.TripOptionID <= 0 {
		return 0, fmt.Errorf("invalid trip option id %d", b.TripOptionID)
	}
	typ, raw, err := models.EncodeBookingDetails(b.Details)
	if err != nil {
		return 0, err
	}

	res, err := r.DB.Exec(`
		INSERT INTO bookings (trip_option_id, booking_type, details)
		VALUES (?,?,?)`,
		b.TripOptionID,
		string(typ),
		raw,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListByTripOptionID returns confirmations in insertion order with details
// decoded into their tagged variants. A row whose payload does not decode is
// a data-integrity failure and aborts the listing.
func (r BookingRepository) ListByTripOptionID(tripOptionID int64) ([]models.Booking, error) {
	rows, err := r.DB.Query(`
		SELECT id,
		       COALESCE(trip_option_id,0),
		       COALESCE(booking_type,''),
		       COALESCE(details,'{}')
		FROM bookings
		WHERE trip_option_id=?
		ORDER BY id ASC`, tripOptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		var typ string
		var raw []byte
		if err := rows.Scan(&b.ID, &b.TripOptionID, &typ, &raw); err != nil {
			return nil, err
		}
		b.Type = models.BookingType(typ)
		details, err := models.DecodeBookingDetails(b.Type, raw)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", b.ID, err)
		}
		b.Details = details
		out = append(out, b)
	}
	return out, rows.Err()
}
