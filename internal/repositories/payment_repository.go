package repositories

import (
	"database/sql"
	"fmt"

	"tripoptimizer/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) Create(p models.Payment) (int64, error) {
	if p.TripOptionID <= 0 {
		return 0, fmt.Errorf("invalid trip option id %d", p.TripOptionID)
	}

	res, err := r.DB.Exec(`
		INSERT INTO payments (trip_option_id, amount, currency, intent_id, billing_name, billing_email)
		VALUES (?,?,?,?,?,?)`,
		p.TripOptionID,
		p.Amount,
		p.Currency,
		p.IntentID,
		p.BillingName,
		p.BillingEmail,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByTripOptionID returns the payment for an option if one exists.
// sql.ErrNoRows passes through when no checkout happened yet.
func (r PaymentRepository) GetByTripOptionID(tripOptionID int64) (models.Payment, error) {
	if tripOptionID <= 0 {
		return models.Payment{}, fmt.Errorf("invalid trip option id %d", tripOptionID)
	}

	query := `
		SELECT id,
		       COALESCE(trip_option_id,0),
		       COALESCE(amount,0),
		       COALESCE(currency,'USD'),
		       COALESCE(intent_id,''),
		       COALESCE(billing_name,''),
		       COALESCE(billing_email,'')
		FROM payments
		WHERE trip_option_id=? LIMIT 1`

	var p models.Payment
	if err := r.DB.QueryRow(query, tripOptionID).Scan(
		&p.ID,
		&p.TripOptionID,
		&p.Amount,
		&p.Currency,
		&p.IntentID,
		&p.BillingName,
		&p.BillingEmail,
	); err != nil {
		return models.Payment{}, err
	}
	return p, nil
}
