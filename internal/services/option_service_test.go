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

func TestBuildOptionPersistsOptionAndActivities(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	requestRows := sqlmock.NewRows([]string{"id", "origin", "destination", "start_date", "number_of_days", "total_budget", "travel_style"}).
		AddRow(int64(3), "Berlin", "Paris", "2026-09-01", 7, int64(250000), "BALANCED")
	mock.ExpectQuery("FROM trip_requests").WithArgs(int64(3)).WillReturnRows(requestRows)

	mock.ExpectExec("INSERT INTO trip_options").WillReturnResult(sqlmock.NewResult(11, 1))

	// One insert per selected activity; the selector picks several for a
	// 220000-cent activity budget in Paris.
	for i := 0; i < 9; i++ {
		mock.ExpectExec("INSERT INTO activities").WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}

	listRows := sqlmock.NewRows([]string{"id", "trip_option_id", "name", "category", "price", "duration_minutes", "rating", "locked"}).
		AddRow(int64(1), int64(11), "Montmartre Food Walk", "food", int64(9500), 210, 4.9, false)
	mock.ExpectQuery("FROM activities").WithArgs(int64(11)).WillReturnRows(listRows)

	svc := OptionService{
		Requests:   repositories.TripRequestRepository{DB: db},
		Options:    repositories.TripOptionRepository{DB: db},
		Activities: repositories.ActivityRepository{DB: db},
	}

	opt, activities, err := svc.BuildOption(3,
		models.FlightOffer{Airline: "Air France", FlightNumber: "AF1034", Price: 20000},
		models.HotelOffer{Name: "Hotel du Nord", Price: 10000},
	)
	require.NoError(t, err)

	assert.Equal(t, int64(11), opt.ID)
	assert.Equal(t, "Paris", opt.Destination)
	assert.LessOrEqual(t, opt.TotalCost, int64(250000))
	assert.Equal(t, int64(250000)-opt.TotalCost, opt.RemainingBudget)
	assert.NotEmpty(t, opt.Explanation)
	assert.NotEmpty(t, activities)
}

func TestBuildOptionUnknownRequest(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM trip_requests").WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "origin", "destination", "start_date", "number_of_days", "total_budget", "travel_style"}))

	svc := OptionService{Requests: repositories.TripRequestRepository{DB: db}}

	_, _, err = svc.BuildOption(404, models.FlightOffer{Price: 1}, models.HotelOffer{Price: 1})
	assert.True(t, domain.IsNotFound(err))
}

func TestScoreOptionStaysInRange(t *testing.T) {
	req := models.TripRequest{TotalBudget: 100000}

	within := scoreOption(req, 80000, Selection{Activities: []models.Activity{{Rating: 5}}})
	assert.GreaterOrEqual(t, within, 0.0)
	assert.LessOrEqual(t, within, 100.0)

	blown := scoreOption(req, 1000000, Selection{})
	assert.Equal(t, 0.0, blown)

	perfectFit := scoreOption(models.TripRequest{TotalBudget: 0}, 0, Selection{Activities: []models.Activity{{Rating: 5}, {Rating: 5}}})
	assert.LessOrEqual(t, perfectFit, 100.0)
}

func TestCreateActivityOptionsRejectsBadID(t *testing.T) {
	svc := OptionService{}
	err := svc.CreateActivityOptions(0, nil)
	assert.True(t, domain.IsValidation(err))
}
