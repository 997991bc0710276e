package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/richardm/flight-search-api/internal/logger"
	"github.com/richardm/flight-search-api/internal/services"
)

// FlightDeleter defines the interface that the service must implement.
type FlightDeleter interface {
	Delete(ctx context.Context, flightID uuid.UUID) error
}

// FlightDeleteResponse represents a successful deletion
// swagger:model FlightDeleteResponse
type FlightDeleteResponse struct {
	// Success message
	// default: Flight deleted
	Message string `json:"message"`
}

// NewFlightDeleteHandler returns an HTTP handler for deleting a flight.
// @Summary Delete flight
// @Tags flights
// @Produce json
// @Param id path string true "Flight id"
// @Success 200 {object} handlers.FlightDeleteResponse "Flight deleted"
// @Failure 400 {object} handlers.FlightErrorResponse "Invalid id"
// @Failure 404 {object} handlers.FlightErrorResponse "Flight not found"
// @Router /flights/{id} [delete]
func NewFlightDeleteHandler(svc FlightDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FlightErrorResponse{
				Error: "Invalid ID",
			})
			return
		}

		if err := svc.Delete(r.Context(), flightID); err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrFlightNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FlightErrorResponse{
					Error: "Flight not found",
				})
			default:
				logger.Log.Errorw("failed to delete flight", "flightID", flightID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FlightErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FlightDeleteResponse{
			Message: "Flight deleted",
		})
	}
}
