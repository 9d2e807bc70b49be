package models

// ItineraryConfirmations groups booking confirmations by type for display.
type ItineraryConfirmations struct {
	Flight   []FlightConfirmation   `json:"flight,omitempty"`
	Hotel    []HotelConfirmation    `json:"hotel,omitempty"`
	Activity []ActivityConfirmation `json:"activity,omitempty"`
}

// PaymentSummary is the payment slice of an itinerary, without billing
// internals the document does not need.
type PaymentSummary struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	IntentID string `json:"intentId"`
}

// ItineraryDocument is the denormalized bundle of trip, booking, and payment
// data produced for the JSON preview and the PDF download. Both paths consume
// the same document, so defaults are resolved once when it is assembled.
type ItineraryDocument struct {
	TripID          int64                  `json:"tripId"`
	TripOptionID    int64                  `json:"tripOptionId"`
	Destination     string                 `json:"destination"`
	Origin          string                 `json:"origin,omitempty"`
	StartDate       string                 `json:"startDate"`
	EndDate         string                 `json:"endDate"`
	NumberOfDays    int                    `json:"numberOfDays"`
	TravelerName    string                 `json:"travelerName"`
	TravelerEmail   string                 `json:"travelerEmail"`
	Flight          FlightOffer            `json:"flight"`
	Hotel           HotelOffer             `json:"hotel"`
	Activities      []Activity             `json:"activities"`
	Confirmations   ItineraryConfirmations `json:"confirmations"`
	Payment         *PaymentSummary        `json:"payment,omitempty"`
	TotalCost       int64                  `json:"totalCost"`
	RemainingBudget int64                  `json:"remainingBudget"`
	Score           float64                `json:"score"`
	BookingStatus   string                 `json:"bookingStatus"`
}
