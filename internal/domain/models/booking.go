package models

import (
	"encoding/json"
	"fmt"
)

type BookingType string

const (
	BookingFlight   BookingType = "FLIGHT"
	BookingHotel    BookingType = "HOTEL"
	BookingActivity BookingType = "ACTIVITY"
)

// BookingDetails is the tagged confirmation payload attached to a booking.
// Exactly one concrete variant exists per booking type; unknown or mismatched
// payloads are rejected when decoding at the repository boundary.
type BookingDetails interface {
	BookingType() BookingType
}

type FlightConfirmation struct {
	Airline          string `json:"airline"`
	FlightNumber     string `json:"flightNumber"`
	ConfirmationCode string `json:"confirmationCode"`
	DepartureTime    string `json:"departureTime,omitempty"`
}

func (FlightConfirmation) BookingType() BookingType { return BookingFlight }

type HotelConfirmation struct {
	HotelName        string `json:"hotelName"`
	ConfirmationCode string `json:"confirmationCode"`
	CheckIn          string `json:"checkIn,omitempty"`
	CheckOut         string `json:"checkOut,omitempty"`
}

func (HotelConfirmation) BookingType() BookingType { return BookingHotel }

type ActivityConfirmation struct {
	ActivityName     string `json:"activityName"`
	ConfirmationCode string `json:"confirmationCode"`
	ScheduledFor     string `json:"scheduledFor,omitempty"`
}

func (ActivityConfirmation) BookingType() BookingType { return BookingActivity }

// Booking is an append-only provider confirmation record. Created only after
// payment succeeds, never mutated afterward.
type Booking struct {
	ID           int64          `json:"id"`
	TripOptionID int64          `json:"tripOptionId"`
	Type         BookingType    `json:"type"`
	Details      BookingDetails `json:"details"`
}

// DecodeBookingDetails turns a stored JSON payload back into its tagged variant.
func DecodeBookingDetails(t BookingType, raw []byte) (BookingDetails, error) {
	switch t {
	case BookingFlight:
		var d FlightConfirmation
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode flight confirmation: %w", err)
		}
		return d, nil
	case BookingHotel:
		var d HotelConfirmation
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode hotel confirmation: %w", err)
		}
		return d, nil
	case BookingActivity:
		var d ActivityConfirmation
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode activity confirmation: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown booking type %q", t)
	}
}

// EncodeBookingDetails serializes a variant together with its type tag.
func EncodeBookingDetails(d BookingDetails) (BookingType, []byte, error) {
	if d == nil {
		return "", nil, fmt.Errorf("booking details missing")
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return "", nil, fmt.Errorf("encode booking details: %w", err)
	}
	return d.BookingType(), raw, nil
}
