package models

// Payment records a completed checkout. At most one per trip option and
// read-only once written.
type Payment struct {
	ID           int64  `json:"id"`
	TripOptionID int64  `json:"tripOptionId"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	IntentID     string `json:"intentId"`
	BillingName  string `json:"billingName"`
	BillingEmail string `json:"billingEmail"`
}
