package repositories

import (
	"database/sql"
	"fmt"

	"tripoptimizer/internal/domain/models"
)

type ActivityRepository struct {
	DB *sql.DB
}

// CreateForTripOption inserts the activities in the given order, each starting
// unlocked. A dangling trip option id fails the first insert with the driver's
// foreign key error, returned to the caller unmodified.
func (r ActivityRepository) CreateForTripOption(tripOptionID int64, activities []models.Activity) error {
	if tripOptionID <= 0 {
		return fmt.Errorf("invalid trip option id %d", tripOptionID)
	}

	for _, a := range activities {
		if _, err := r.DB.Exec(`
			INSERT INTO activities (trip_option_id, name, category, price, duration_minutes, rating, locked)
			VALUES (?,?,?,?,?,?,0)`,
			tripOptionID,
			a.Name,
			string(a.Category),
			a.Price,
			a.DurationMinutes,
			a.Rating,
		); err != nil {
			return err
		}
	}
	return nil
}

// ListByTripOptionID returns activities in original insertion order.
func (r ActivityRepository) ListByTripOptionID(tripOptionID int64) ([]models.Activity, error) {
	rows, err := r.DB.Query(`
		SELECT id,
		       COALESCE(trip_option_id,0),
		       COALESCE(name,''),
		       COALESCE(category,''),
		       COALESCE(price,0),
		       COALESCE(duration_minutes,0),
		       COALESCE(rating,0),
		       COALESCE(locked,0)
		FROM activities
		WHERE trip_option_id=?
		ORDER BY id ASC`, tripOptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		var category string
		if err := rows.Scan(
			&a.ID,
			&a.TripOptionID,
			&a.Name,
			&category,
			&a.Price,
			&a.DurationMinutes,
			&a.Rating,
			&a.Locked,
		); err != nil {
			return nil, err
		}
		a.Category = models.ActivityCategory(category)
		out = append(out, a)
	}
	return out, rows.Err()
}

// SetLock pins or unpins an activity. Returns sql.ErrNoRows when the id does
// not exist so callers can surface not-found.
func (r ActivityRepository) SetLock(activityID int64, locked bool) error {
	if activityID <= 0 {
		return fmt.Errorf("invalid activity id %d", activityID)
	}
	res, err := r.DB.Exec(`UPDATE activities SET locked=? WHERE id=?`, locked, activityID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// MySQL reports 0 rows when the value is unchanged; distinguish
		// that from a missing row.
		var one int
		if err := r.DB.QueryRow(`SELECT 1 FROM activities WHERE id=? LIMIT 1`, activityID).Scan(&one); err != nil {
			return err
		}
	}
	return nil
}
