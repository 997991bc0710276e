package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/richardm/flight-search-api/internal/logger"
	"github.com/richardm/flight-search-api/internal/models"
)

// FlightLister defines the interface that the service must implement.
type FlightLister interface {
	List(ctx context.Context, filter models.FlightFilter) (*models.FlightPage, error)
}

// FlightListResponse is one page of flight search results
// swagger:model FlightListResponse
type FlightListResponse struct {
	// Total records matching the filter
	// default: 42
	Total int64 `json:"total"`

	// Page number
	// default: 1
	Page int `json:"page"`

	// Page size
	// default: 5
	Limit int `json:"limit"`

	// Flights on this page
	Data []models.FlightDB `json:"data"`
}

// FlightErrorResponse represents an error response for flight endpoints
// swagger:model FlightErrorResponse
type FlightErrorResponse struct {
	// Error message
	// default: Failed to fetch flights
	Error string `json:"error"`
}

// NewFlightListHandler returns an HTTP handler for paginated flight search.
// @Summary Search flights
// @Description Paginated flight search with optional case-insensitive from/to filters
// @Tags flights
// @Produce json
// @Param from query string false "Origin filter"
// @Param to query string false "Destination filter"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 5)"
// @Success 200 {object} handlers.FlightListResponse "One page of flights"
// @Failure 500 {object} handlers.FlightErrorResponse "Internal server error"
// @Router /flights [get]
func NewFlightListHandler(svc FlightLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := models.FlightFilter{}
		if page, err := strconv.Atoi(q.Get("page")); err == nil {
			filter.Page = page
		}
		if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
			filter.Limit = limit
		}
		if from := q.Get("from"); from != "" {
			filter.From = &from
		}
		if to := q.Get("to"); to != "" {
			filter.To = &to
		}

		page, err := svc.List(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("failed to fetch flights", "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FlightErrorResponse{
				Error: "Failed to fetch flights",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FlightListResponse{
			Total: page.Total,
			Page:  page.Page,
			Limit: page.Limit,
			Data:  page.Flights,
		})
	}
}
