package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/richardm/flight-search-api/internal/models"
)

func validFlightCreateRequest() FlightCreateRequest {
	return FlightCreateRequest{
		From:          "LHR",
		To:            "JFK",
		Price:         420.50,
		Airline:       "British Airways",
		Duration:      "7h 55m",
		DepartureTime: "2026-09-15T08:30:00Z",
	}
}

func TestFlightCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	departure := time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockFlightCreator(ctrl)
		saved := models.FlightDB{
			FlightID:      uuid.New(),
			From:          "LHR",
			To:            "JFK",
			Price:         420.50,
			Airline:       "British Airways",
			Duration:      "7h 55m",
			DepartureTime: departure,
		}
		mockSvc.EXPECT().
			Create(gomock.Any(), models.FlightDB{
				From:          "LHR",
				To:            "JFK",
				Price:         420.50,
				Airline:       "British Airways",
				Duration:      "7h 55m",
				DepartureTime: departure,
			}).
			Return(&saved, nil)

		handler := NewFlightCreateHandler(mockSvc)

		bodyBytes, _ := json.Marshal(validFlightCreateRequest())
		req := httptest.NewRequest(http.MethodPost, "/flights", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 201, rr.Code)

		var resp models.FlightDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, saved.FlightID, resp.FlightID)
		assert.Equal(t, "LHR", resp.From)
	})

	t.Run("invalid json", func(t *testing.T) {
		mockSvc := NewMockFlightCreator(ctrl)
		handler := NewFlightCreateHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/flights", bytes.NewBufferString("{invalid json}"))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 400, rr.Code)

		var resp FlightErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid input", resp.Error)
	})

	t.Run("store error", func(t *testing.T) {
		mockSvc := NewMockFlightCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		handler := NewFlightCreateHandler(mockSvc)

		bodyBytes, _ := json.Marshal(validFlightCreateRequest())
		req := httptest.NewRequest(http.MethodPost, "/flights", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 500, rr.Code)
	})
}

func TestFlightCreateHandler_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		mutate        func(req *FlightCreateRequest)
		expectedField string
	}{
		{
			name:          "missing from",
			mutate:        func(req *FlightCreateRequest) { req.From = "" },
			expectedField: "from",
		},
		{
			name:          "missing to",
			mutate:        func(req *FlightCreateRequest) { req.To = "" },
			expectedField: "to",
		},
		{
			name:          "zero price",
			mutate:        func(req *FlightCreateRequest) { req.Price = 0 },
			expectedField: "price",
		},
		{
			name:          "negative price",
			mutate:        func(req *FlightCreateRequest) { req.Price = -10 },
			expectedField: "price",
		},
		{
			name:          "missing airline",
			mutate:        func(req *FlightCreateRequest) { req.Airline = "" },
			expectedField: "airline",
		},
		{
			name:          "missing duration",
			mutate:        func(req *FlightCreateRequest) { req.Duration = "" },
			expectedField: "duration",
		},
		{
			name:          "bad departure time",
			mutate:        func(req *FlightCreateRequest) { req.DepartureTime = "tomorrow morning" },
			expectedField: "departureTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Service must never be called for invalid input
			mockSvc := NewMockFlightCreator(ctrl)
			handler := NewFlightCreateHandler(mockSvc)

			reqBody := validFlightCreateRequest()
			tt.mutate(&reqBody)

			bodyBytes, _ := json.Marshal(reqBody)
			req := httptest.NewRequest(http.MethodPost, "/flights", bytes.NewBuffer(bodyBytes))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, 400, rr.Code)

			var resp FlightValidationErrorResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Len(t, resp.Errors, 1)
			assert.Equal(t, tt.expectedField, resp.Errors[0].Field)
			assert.NotEmpty(t, resp.Errors[0].Message)
		})
	}

	t.Run("all fields invalid reported together", func(t *testing.T) {
		mockSvc := NewMockFlightCreator(ctrl)
		handler := NewFlightCreateHandler(mockSvc)

		bodyBytes, _ := json.Marshal(FlightCreateRequest{})
		req := httptest.NewRequest(http.MethodPost, "/flights", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 400, rr.Code)

		var resp FlightValidationErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Errors, 6)
	})
}
