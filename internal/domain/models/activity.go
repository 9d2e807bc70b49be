package models

type ActivityCategory string

const (
	CategorySightseeing ActivityCategory = "sightseeing"
	CategoryFood        ActivityCategory = "food"
	CategoryOutdoor     ActivityCategory = "outdoor"
	CategoryCulture     ActivityCategory = "culture"
)

// Activity belongs to one trip option. Locked marks a pick the user has pinned
// against automatic replacement.
type Activity struct {
	ID              int64            `json:"id"`
	TripOptionID    int64            `json:"tripOptionId"`
	Name            string           `json:"name"`
	Category        ActivityCategory `json:"category"`
	Price           int64            `json:"price"`
	DurationMinutes int              `json:"durationMinutes"`
	Rating          float64          `json:"rating,omitempty"`
	Locked          bool             `json:"locked"`
}
