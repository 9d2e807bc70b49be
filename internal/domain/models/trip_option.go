package models

// FlightOffer is the chosen flight leg for an option. Prices are minor units.
type FlightOffer struct {
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Price        int64  `json:"price"`
}

// HotelOffer is the chosen stay for an option, priced for the whole trip.
type HotelOffer struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// TripOption is one priced candidate itinerary (flight + hotel + activities)
// assembled for a trip request.
type TripOption struct {
	ID              int64       `json:"id"`
	TripRequestID   int64       `json:"tripRequestId"`
	Destination     string      `json:"destination"`
	Flight          FlightOffer `json:"flight"`
	Hotel           HotelOffer  `json:"hotel"`
	TotalCost       int64       `json:"totalCost"`
	RemainingBudget int64       `json:"remainingBudget"`
	Score           float64     `json:"score"`
	Explanation     string      `json:"explanation"`
}
