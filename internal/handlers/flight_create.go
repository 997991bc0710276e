package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/richardm/flight-search-api/internal/logger"
	"github.com/richardm/flight-search-api/internal/models"
)

// FlightCreator defines the interface that the service must implement.
type FlightCreator interface {
	Create(ctx context.Context, flight models.FlightDB) (*models.FlightDB, error)
}

// FlightCreateRequest represents the JSON body for creating a flight
// swagger:model FlightCreateRequest
type FlightCreateRequest struct {
	// Origin
	// required: true
	// default: LHR
	From string `json:"from"`

	// Destination
	// required: true
	// default: JFK
	To string `json:"to"`

	// Ticket price
	// required: true
	// default: 420.50
	Price float64 `json:"price"`

	// Operating airline
	// required: true
	// default: British Airways
	Airline string `json:"airline"`

	// Flight duration
	// required: true
	// default: 7h 55m
	Duration string `json:"duration"`

	// Scheduled departure, RFC3339
	// required: true
	// default: 2026-09-15T08:30:00Z
	DepartureTime string `json:"departureTime"`
}

// FieldError describes one invalid request field
// swagger:model FieldError
type FieldError struct {
	// Field name
	// default: from
	Field string `json:"field"`

	// What is wrong with it
	// default: must not be empty
	Message string `json:"message"`
}

// FlightValidationErrorResponse carries per-field validation failures
// swagger:model FlightValidationErrorResponse
type FlightValidationErrorResponse struct {
	// Invalid fields
	Errors []FieldError `json:"errors"`
}

func validateFlightCreate(req FlightCreateRequest) ([]FieldError, time.Time) {
	var errs []FieldError

	if req.From == "" {
		errs = append(errs, FieldError{Field: "from", Message: "must not be empty"})
	}
	if req.To == "" {
		errs = append(errs, FieldError{Field: "to", Message: "must not be empty"})
	}
	if req.Price <= 0 {
		errs = append(errs, FieldError{Field: "price", Message: "must be a positive number"})
	}
	if req.Airline == "" {
		errs = append(errs, FieldError{Field: "airline", Message: "must not be empty"})
	}
	if req.Duration == "" {
		errs = append(errs, FieldError{Field: "duration", Message: "must not be empty"})
	}

	departureTime, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		errs = append(errs, FieldError{Field: "departureTime", Message: "must be a valid RFC3339 timestamp"})
	}

	return errs, departureTime
}

// NewFlightCreateHandler returns an HTTP handler for creating a flight listing.
// @Summary Create flight
// @Description Creates a new flight listing after field validation
// @Tags flights
// @Accept json
// @Produce json
// @Param flightCreateRequest body handlers.FlightCreateRequest true "New flight"
// @Success 201 {object} models.FlightDB "Created flight"
// @Failure 400 {object} handlers.FlightValidationErrorResponse "Invalid fields"
// @Failure 500 {object} handlers.FlightErrorResponse "Internal server error"
// @Router /flights [post]
func NewFlightCreateHandler(svc FlightCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FlightCreateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FlightErrorResponse{
				Error: "Invalid input",
			})
			return
		}

		fieldErrs, departureTime := validateFlightCreate(req)
		if len(fieldErrs) > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FlightValidationErrorResponse{
				Errors: fieldErrs,
			})
			return
		}

		saved, err := svc.Create(r.Context(), models.FlightDB{
			From:          req.From,
			To:            req.To,
			Price:         req.Price,
			Airline:       req.Airline,
			Duration:      req.Duration,
			DepartureTime: departureTime,
		})
		if err != nil {
			logger.Log.Errorw("failed to create flight", "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FlightErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(saved)
	}
}
