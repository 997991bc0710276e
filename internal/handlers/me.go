package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/richardm/flight-search-api/internal/logger"
	"github.com/richardm/flight-search-api/internal/middlewares"
	"github.com/richardm/flight-search-api/internal/models"
	"github.com/richardm/flight-search-api/internal/services"
)

// CurrentUserGetter defines the interface that the service must implement.
type CurrentUserGetter interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// MeResponse is the current-user projection
// swagger:model MeResponse
type MeResponse struct {
	// Username
	// default: john_doe
	Username string `json:"username"`

	// Email
	// default: john@example.com
	Email string `json:"email"`

	// Account creation time
	CreatedAt time.Time `json:"createdAt"`
}

// MeErrorResponse represents an error response for the session check
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler for the session-check endpoint.
// The auth middleware has already validated the session token; the user
// id is taken from the request context.
// @Summary Get current user
// @Description Returns the profile of the user bound to the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Current user"
// @Failure 401 {object} handlers.MeErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MeErrorResponse "User not found"
// @Router /api/auth/me [get]
func NewMeHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		user, err := svc.GetCurrentUser(ctx, userID)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MeErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to get current user", "userID", userID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MeErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		})
	}
}
