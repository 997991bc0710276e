package handlers

import (
	"encoding/json"
	"net/http"
)

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out successfully
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler for logout. Logout is
// stateless: it only instructs the client to drop the session cookie.
// There is no server-side session to invalidate.
// @Summary Logout
// @Description Clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Session cookie cleared"
// @Router /api/auth/logout [post]
func NewLogoutHandler(cookieCfg CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearSessionCookie(w, cookieCfg)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out successfully",
		})
	}
}
