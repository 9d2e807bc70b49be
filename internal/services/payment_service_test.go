package services

import (
	"testing"

	"tripoptimizer/internal/domain"
	"tripoptimizer/internal/domain/models"
	"tripoptimizer/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentTestService(t *testing.T) (sqlmock.Sqlmock, PaymentService) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return mock, PaymentService{
		Options:  repositories.TripOptionRepository{DB: db},
		Payments: repositories.PaymentRepository{DB: db},
		Bookings: repositories.BookingRepository{DB: db},
	}
}

func expectOptionRow(mock sqlmock.Sqlmock, id int64) {
	mock.ExpectQuery("FROM trip_options").WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "trip_request_id", "destination",
			"flight_airline", "flight_number", "flight_price",
			"hotel_name", "hotel_price",
			"total_cost", "remaining_budget", "score", "explanation",
		}).AddRow(id, int64(1), "Paris", "AF", "AF1", int64(1), "H", int64(1), int64(2), int64(0), 50.0, ""))
}

func emptyPaymentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "trip_option_id", "amount", "currency", "intent_id", "billing_name", "billing_email"})
}

func TestCheckoutRecordsPayment(t *testing.T) {
	mock, svc := paymentTestService(t)

	expectOptionRow(mock, 8)
	mock.ExpectQuery("FROM payments").WithArgs(int64(8)).WillReturnRows(emptyPaymentRows())
	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(3, 1))

	p, err := svc.Checkout(8, models.Payment{Amount: 92200, IntentID: "pi_abc", BillingName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, "USD", p.Currency, "currency defaults to USD")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckoutRejectsSecondPayment(t *testing.T) {
	mock, svc := paymentTestService(t)

	expectOptionRow(mock, 8)
	mock.ExpectQuery("FROM payments").WithArgs(int64(8)).
		WillReturnRows(emptyPaymentRows().AddRow(int64(1), int64(8), int64(100), "USD", "pi_old", "", ""))

	_, err := svc.Checkout(8, models.Payment{Amount: 500, IntentID: "pi_new"})
	assert.True(t, domain.IsConflict(err))
}

func TestCheckoutValidation(t *testing.T) {
	_, svc := paymentTestService(t)

	_, err := svc.Checkout(8, models.Payment{Amount: 0, IntentID: "pi"})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Checkout(8, models.Payment{Amount: 100, IntentID: "  "})
	assert.True(t, domain.IsValidation(err))
}

func TestConfirmBookingsRequiresPayment(t *testing.T) {
	mock, svc := paymentTestService(t)

	expectOptionRow(mock, 8)
	mock.ExpectQuery("FROM payments").WithArgs(int64(8)).WillReturnRows(emptyPaymentRows())

	_, err := svc.ConfirmBookings(8, []models.BookingDetails{
		models.FlightConfirmation{Airline: "AF", ConfirmationCode: "X1"},
	})
	assert.True(t, domain.IsConflict(err), "confirmations before payment must conflict")
}

func TestConfirmBookingsAppends(t *testing.T) {
	mock, svc := paymentTestService(t)

	expectOptionRow(mock, 8)
	mock.ExpectQuery("FROM payments").WithArgs(int64(8)).
		WillReturnRows(emptyPaymentRows().AddRow(int64(1), int64(8), int64(92200), "USD", "pi_abc", "Ada", "ada@example.com"))
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(2, 1))

	got, err := svc.ConfirmBookings(8, []models.BookingDetails{
		models.FlightConfirmation{Airline: "AF", FlightNumber: "AF1034", ConfirmationCode: "X1"},
		models.HotelConfirmation{HotelName: "Hotel du Nord", ConfirmationCode: "H9"},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.BookingFlight, got[0].Type)
	assert.Equal(t, models.BookingHotel, got[1].Type)
	require.NoError(t, mock.ExpectationsWereMet())
}
