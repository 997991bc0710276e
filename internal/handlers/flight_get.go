package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/richardm/flight-search-api/internal/logger"
	"github.com/richardm/flight-search-api/internal/models"
	"github.com/richardm/flight-search-api/internal/services"
)

// FlightGetter defines the interface that the service must implement.
type FlightGetter interface {
	Get(ctx context.Context, flightID uuid.UUID) (*models.FlightDB, error)
}

// NewFlightGetHandler returns an HTTP handler for fetching one flight by id.
// @Summary Get flight by id
// @Description Returns a single flight. Requires a valid session cookie.
// @Tags flights
// @Produce json
// @Param id path string true "Flight id"
// @Success 200 {object} models.FlightDB "Flight"
// @Failure 401 {object} handlers.FlightErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FlightErrorResponse "Flight not found"
// @Failure 500 {object} handlers.FlightErrorResponse "Internal server error"
// @Router /flights/{id} [get]
func NewFlightGetHandler(svc FlightGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(FlightErrorResponse{
				Error: "Flight not found",
			})
			return
		}

		flight, err := svc.Get(r.Context(), flightID)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrFlightNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FlightErrorResponse{
					Error: "Flight not found",
				})
			default:
				logger.Log.Errorw("failed to get flight", "flightID", flightID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FlightErrorResponse{
					Error: "Server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(flight)
	}
}
