package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// EnsureSchema creates the users and flights tables if they do not exist.
// The unique indexes on username and email are what makes a duplicate
// signup fail at the store level regardless of pre-check races.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			user_id UUID PRIMARY KEY,
			username VARCHAR(50) NOT NULL UNIQUE,
			email VARCHAR(100) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS flights (
			flight_id UUID PRIMARY KEY,
			origin VARCHAR(100) NOT NULL,
			destination VARCHAR(100) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			airline VARCHAR(100) NOT NULL,
			duration VARCHAR(50) NOT NULL,
			departure_time TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS flights_origin_destination_idx ON flights (LOWER(origin), LOWER(destination))`,
	}

	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
