package models

// TravelStyle biases activity selection toward cheaper picks or higher-rated ones.
type TravelStyle string

const (
	StyleBudget   TravelStyle = "BUDGET"
	StyleBalanced TravelStyle = "BALANCED"
)

func (s TravelStyle) Valid() bool {
	return s == StyleBudget || s == StyleBalanced
}

// TripRequest is one user search. Immutable after creation; a re-search
// creates a new row.
type TripRequest struct {
	ID           int64       `json:"id"`
	Origin       string      `json:"origin"`
	Destination  string      `json:"destination"`
	StartDate    string      `json:"startDate"`
	NumberOfDays int         `json:"numberOfDays"`
	TotalBudget  int64       `json:"totalBudget"`
	TravelStyle  TravelStyle `json:"travelStyle"`
}
