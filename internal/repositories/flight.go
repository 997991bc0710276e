package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/richardm/flight-search-api/internal/logger"
	"github.com/richardm/flight-search-api/internal/models"
)

// FlightReadRepository reads flight listings from Postgres.
type FlightReadRepository struct {
	db *sqlx.DB
}

func NewFlightReadRepository(db *sqlx.DB) *FlightReadRepository {
	return &FlightReadRepository{db: db}
}

// List returns one page of flights matching the filter plus the total
// match count. Origin/destination matching is case-insensitive exact.
func (r *FlightReadRepository) List(ctx context.Context, from, to *string, limit, offset int) ([]models.FlightDB, int64, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM flights
		WHERE ($1::VARCHAR IS NULL OR LOWER(origin) = LOWER($1))
		  AND ($2::VARCHAR IS NULL OR LOWER(destination) = LOWER($2))
	`
	const listQuery = `
		SELECT flight_id, origin, destination, price, airline, duration, departure_time, created_at
		FROM flights
		WHERE ($1::VARCHAR IS NULL OR LOWER(origin) = LOWER($1))
		  AND ($2::VARCHAR IS NULL OR LOWER(destination) = LOWER($2))
		ORDER BY departure_time
		LIMIT $3 OFFSET $4
	`

	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, from, to); err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(countQuery), " "),
			"args", []any{from, to},
			"error", err,
		)
		return nil, 0, err
	}

	flights := []models.FlightDB{}
	err := r.db.SelectContext(ctx, &flights, listQuery, from, to, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(listQuery), " "),
		"args", []any{from, to, limit, offset},
		"total", total,
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	return flights, total, nil
}

// GetByID returns the flight with the given id, or (nil, nil) when absent.
func (r *FlightReadRepository) GetByID(ctx context.Context, flightID uuid.UUID) (*models.FlightDB, error) {
	const query = `
		SELECT flight_id, origin, destination, price, airline, duration, departure_time, created_at
		FROM flights
		WHERE flight_id = $1
	`

	var flight models.FlightDB
	err := r.db.GetContext(ctx, &flight, query, flightID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{flightID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &flight, nil
}

// FlightWriteRepository persists flight listings to Postgres.
type FlightWriteRepository struct {
	db *sqlx.DB
}

func NewFlightWriteRepository(db *sqlx.DB) *FlightWriteRepository {
	return &FlightWriteRepository{db: db}
}

// Save inserts a new flight and returns the stored record.
func (r *FlightWriteRepository) Save(ctx context.Context, flight models.FlightDB) (*models.FlightDB, error) {
	const query = `
		INSERT INTO flights (flight_id, origin, destination, price, airline, duration, departure_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING flight_id, origin, destination, price, airline, duration, departure_time, created_at
	`
	flightID := uuid.New()

	var saved models.FlightDB
	err := r.db.GetContext(ctx, &saved, query,
		flightID, flight.From, flight.To, flight.Price, flight.Airline, flight.Duration, flight.DepartureTime)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{flightID, flight.From, flight.To, flight.Price, flight.Airline},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// Delete removes the flight with the given id. Returns false when no
// such flight existed.
func (r *FlightWriteRepository) Delete(ctx context.Context, flightID uuid.UUID) (bool, error) {
	const query = `DELETE FROM flights WHERE flight_id = $1`

	res, err := r.db.ExecContext(ctx, query, flightID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{flightID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
