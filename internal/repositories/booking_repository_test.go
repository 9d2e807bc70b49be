package repositories

import (
	"strings"
	"testing"

	"tripoptimizer/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBookingListDecodesTaggedVariants(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_option_id", "booking_type", "details"}).
			AddRow(int64(1), int64(4), "FLIGHT", []byte(`{"airline":"AF","flightNumber":"AF1034","confirmationCode":"X1"}`)).
			AddRow(int64(2), int64(4), "ACTIVITY", []byte(`{"activityName":"Louvre Museum","confirmationCode":"A7"}`)))

	repo := BookingRepository{DB: db}
	got, err := repo.ListByTripOptionID(4)
	if err != nil {
		t.Fatalf("ListByTripOptionID error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(got))
	}

	flight, ok := got[0].Details.(models.FlightConfirmation)
	if !ok {
		t.Fatalf("expected FlightConfirmation, got %T", got[0].Details)
	}
	if flight.ConfirmationCode != "X1" {
		t.Fatalf("flight confirmation mismatch: %+v", flight)
	}

	if _, ok := got[1].Details.(models.ActivityConfirmation); !ok {
		t.Fatalf("expected ActivityConfirmation, got %T", got[1].Details)
	}
}

func TestBookingListRejectsUnknownType(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_option_id", "booking_type", "details"}).
			AddRow(int64(1), int64(4), "CRUISE", []byte(`{}`)))

	repo := BookingRepository{DB: db}
	_, err = repo.ListByTripOptionID(4)
	if err == nil || !strings.Contains(err.Error(), "unknown booking type") {
		t.Fatalf("expected unknown booking type error, got %v", err)
	}
}

func TestBookingCreateEncodesDetails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(4), "HOTEL", []byte(`{"hotelName":"Hotel Roma","confirmationCode":"HR-99"}`)).
		WillReturnResult(sqlmock.NewResult(9, 1))

	repo := BookingRepository{DB: db}
	id, err := repo.Create(models.Booking{
		TripOptionID: 4,
		Details:      models.HotelConfirmation{HotelName: "Hotel Roma", ConfirmationCode: "HR-99"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 9 {
		t.Fatalf("expected id 9, got %d", id)
	}
}
