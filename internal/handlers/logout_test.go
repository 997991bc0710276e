package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	cookieCfg := testCookieConfig()
	handler := NewLogoutHandler(cookieCfg)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)

	var resp LogoutResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Logged out successfully", resp.Message)

	cookies := rr.Result().Cookies()
	assert.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, cookieCfg.Name, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

// The clearing cookie must carry the same Path/Domain/Secure/SameSite as
// the one set at login, otherwise browsers keep the original.
func TestLogoutHandler_ClearMatchesSetFlags(t *testing.T) {
	cookieCfg := testCookieConfig()

	setRR := httptest.NewRecorder()
	setSessionCookie(setRR, cookieCfg, "signed-token")
	setCookie := setRR.Result().Cookies()[0]

	clearRR := httptest.NewRecorder()
	NewLogoutHandler(cookieCfg)(clearRR, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	clearCookie := clearRR.Result().Cookies()[0]

	assert.Equal(t, setCookie.Name, clearCookie.Name)
	assert.Equal(t, setCookie.Path, clearCookie.Path)
	assert.Equal(t, setCookie.Domain, clearCookie.Domain)
	assert.Equal(t, setCookie.Secure, clearCookie.Secure)
	assert.Equal(t, setCookie.SameSite, clearCookie.SameSite)
	assert.Equal(t, setCookie.HttpOnly, clearCookie.HttpOnly)
}
