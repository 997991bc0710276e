package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/richardm/flight-search-api/internal/models"
)

func newFlightMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

var flightColumns = []string{"flight_id", "origin", "destination", "price", "airline", "duration", "departure_time", "created_at"}

func TestFlightReadRepository_List(t *testing.T) {
	departure := time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC)

	t.Run("filters and paging forwarded", func(t *testing.T) {
		sqlxDB, mock := newFlightMockDB(t)
		repo := NewFlightReadRepository(sqlxDB)

		from := "lhr"
		to := "jfk"
		flightID := uuid.New()

		mock.ExpectQuery("SELECT COUNT").
			WithArgs("lhr", "jfk").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))
		mock.ExpectQuery("SELECT flight_id, origin, destination").
			WithArgs("lhr", "jfk", 5, 10).
			WillReturnRows(sqlmock.NewRows(flightColumns).
				AddRow(flightID, "LHR", "JFK", 420.50, "BA", "7h 55m", departure, time.Now()))

		flights, total, err := repo.List(context.Background(), &from, &to, 5, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), total)
		assert.Len(t, flights, 1)
		assert.Equal(t, flightID, flights[0].FlightID)
		assert.Equal(t, "LHR", flights[0].From)
		assert.Equal(t, "JFK", flights[0].To)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no filters", func(t *testing.T) {
		sqlxDB, mock := newFlightMockDB(t)
		repo := NewFlightReadRepository(sqlxDB)

		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
		mock.ExpectQuery("SELECT flight_id, origin, destination").
			WillReturnRows(sqlmock.NewRows(flightColumns))

		flights, total, err := repo.List(context.Background(), nil, nil, 5, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, flights)
		assert.NotNil(t, flights)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error", func(t *testing.T) {
		sqlxDB, mock := newFlightMockDB(t)
		repo := NewFlightReadRepository(sqlxDB)

		mock.ExpectQuery("SELECT COUNT").
			WillReturnError(errors.New("db error"))

		flights, total, err := repo.List(context.Background(), nil, nil, 5, 0)
		assert.Error(t, err)
		assert.Nil(t, flights)
		assert.Equal(t, int64(0), total)
	})

	t.Run("select error", func(t *testing.T) {
		sqlxDB, mock := newFlightMockDB(t)
		repo := NewFlightReadRepository(sqlxDB)

		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
		mock.ExpectQuery("SELECT flight_id, origin, destination").
			WillReturnError(errors.New("db error"))

		flights, _, err := repo.List(context.Background(), nil, nil, 5, 0)
		assert.Error(t, err)
		assert.Nil(t, flights)
	})
}

func TestFlightReadRepository_GetByID(t *testing.T) {
	departure := time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC)
	flightID := uuid.New()

	t.Run("found", func(t *testing.T) {
		sqlxDB, mock := newFlightMockDB(t)
		repo := NewFlightReadRepository(sqlxDB)

		mock.ExpectQuery("SELECT flight_id, origin, destination").
			WithArgs(flightID).
			WillReturnRows(sqlmock.NewRows(flightColumns).
				AddRow(flightID, "LHR", "JFK", 420.50, "BA", "7h 55m", departure, time.Now()))

		flight, err := repo.GetByID(context.Background(), flightID)
		assert.NoError(t, err)
		assert.NotNil(t, flight)
		assert.Equal(t, flightID, flight.FlightID)
	})

	t.Run("absent returns nil without error", func(t *testing.T) {
		sqlxDB, mock := newFlightMockDB(t)
		repo := NewFlightReadRepository(sqlxDB)

		mock.ExpectQuery("SELECT flight_id, origin, destination").
			WithArgs(flightID).
			WillReturnRows(sqlmock.NewRows(flightColumns))

		flight, err := repo.GetByID(context.Background(), flightID)
		assert.NoError(t, err)
		assert.Nil(t, flight)
	})

	t.Run("db error", func(t *testing.T) {
		sqlxDB, mock := newFlightMockDB(t)
		repo := NewFlightReadRepository(sqlxDB)

		mock.ExpectQuery("SELECT flight_id, origin, destination").
			WithArgs(flightID).
			WillReturnError(errors.New("db error"))

		flight, err := repo.GetByID(context.Background(), flightID)
		assert.Error(t, err)
		assert.Nil(t, flight)
	})
}

func TestFlightWriteRepository_Save(t *testing.T) {
	departure := time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC)

	t.Run("returns stored record", func(t *testing.T) {
		sqlxDB, mock := newFlightMockDB(t)
		repo := NewFlightWriteRepository(sqlxDB)

		storedID := uuid.New()
		mock.ExpectQuery("INSERT INTO flights").
			WithArgs(sqlmock.AnyArg(), "LHR", "JFK", 420.50, "BA", "7h 55m", departure).
			WillReturnRows(sqlmock.NewRows(flightColumns).
				AddRow(storedID, "LHR", "JFK", 420.50, "BA", "7h 55m", departure, time.Now()))

		saved, err := repo.Save(context.Background(), models.FlightDB{
			From:          "LHR",
			To:            "JFK",
			Price:         420.50,
			Airline:       "BA",
			Duration:      "7h 55m",
			DepartureTime: departure,
		})
		assert.NoError(t, err)
		assert.NotNil(t, saved)
		assert.Equal(t, storedID, saved.FlightID)
		assert.Equal(t, "LHR", saved.From)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		sqlxDB, mock := newFlightMockDB(t)
		repo := NewFlightWriteRepository(sqlxDB)

		mock.ExpectQuery("INSERT INTO flights").
			WillReturnError(errors.New("db error"))

		saved, err := repo.Save(context.Background(), models.FlightDB{})
		assert.Error(t, err)
		assert.Nil(t, saved)
	})
}

func TestFlightWriteRepository_Delete(t *testing.T) {
	flightID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		sqlxDB, mock := newFlightMockDB(t)
		repo := NewFlightWriteRepository(sqlxDB)

		mock.ExpectExec("DELETE FROM flights").
			WithArgs(flightID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		found, err := repo.Delete(context.Background(), flightID)
		assert.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("absent", func(t *testing.T) {
		sqlxDB, mock := newFlightMockDB(t)
		repo := NewFlightWriteRepository(sqlxDB)

		mock.ExpectExec("DELETE FROM flights").
			WithArgs(flightID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		found, err := repo.Delete(context.Background(), flightID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("db error", func(t *testing.T) {
		sqlxDB, mock := newFlightMockDB(t)
		repo := NewFlightWriteRepository(sqlxDB)

		mock.ExpectExec("DELETE FROM flights").
			WithArgs(flightID).
			WillReturnError(errors.New("db error"))

		found, err := repo.Delete(context.Background(), flightID)
		assert.Error(t, err)
		assert.False(t, found)
	})
}
