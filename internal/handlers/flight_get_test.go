package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/richardm/flight-search-api/internal/models"
	"github.com/richardm/flight-search-api/internal/services"
)

func TestFlightGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flightID := uuid.New()
	stored := &models.FlightDB{
		FlightID:      flightID,
		From:          "LHR",
		To:            "JFK",
		Price:         420.50,
		Airline:       "BA",
		Duration:      "7h 55m",
		DepartureTime: time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name          string
		id            string
		mockSetup     func(m *MockFlightGetter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "found",
			id:   flightID.String(),
			mockSetup: func(m *MockFlightGetter) {
				m.EXPECT().Get(gomock.Any(), flightID).Return(stored, nil)
			},
			expectedCode: 200,
		},
		{
			name: "not found",
			id:   flightID.String(),
			mockSetup: func(m *MockFlightGetter) {
				m.EXPECT().Get(gomock.Any(), flightID).Return(nil, services.ErrFlightNotFound)
			},
			expectedCode:  404,
			expectedError: "Flight not found",
		},
		{
			name:          "malformed id",
			id:            "not-a-uuid",
			expectedCode:  404,
			expectedError: "Flight not found",
		},
		{
			name: "internal server error",
			id:   flightID.String(),
			mockSetup: func(m *MockFlightGetter) {
				m.EXPECT().Get(gomock.Any(), flightID).Return(nil, errors.New("db error"))
			},
			expectedCode:  500,
			expectedError: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFlightGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Get("/flights/{id}", NewFlightGetHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/flights/"+tt.id, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp FlightErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp models.FlightDB
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, flightID, resp.FlightID)
			assert.Equal(t, "LHR", resp.From)
			assert.Equal(t, "JFK", resp.To)
		})
	}
}
