package models

import (
	"time"

	"github.com/google/uuid"
)

// FlightDB represents a flight listing record in the database
type FlightDB struct {
	FlightID      uuid.UUID `json:"id" db:"flight_id"`                 // Primary key
	From          string    `json:"from" db:"origin"`                  // Departure airport/city
	To            string    `json:"to" db:"destination"`               // Arrival airport/city
	Price         float64   `json:"price" db:"price"`                  // Ticket price
	Airline       string    `json:"airline" db:"airline"`              // Operating airline
	Duration      string    `json:"duration" db:"duration"`            // Human-readable duration, e.g. "2h 15m"
	DepartureTime time.Time `json:"departureTime" db:"departure_time"` // Scheduled departure
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`         // Creation timestamp
}

// FlightFilter narrows a flight search. Nil fields match everything.
type FlightFilter struct {
	From  *string // Case-insensitive exact match on origin
	To    *string // Case-insensitive exact match on destination
	Page  int     // 1-based page number
	Limit int     // Page size
}

// FlightPage is one page of flight search results.
type FlightPage struct {
	Total   int64      // Total records matching the filter
	Page    int        // Page that was fetched
	Limit   int        // Page size used
	Flights []FlightDB // Records on this page
}
