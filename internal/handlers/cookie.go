package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/richardm/flight-search-api/internal/jwt"
)

// CookieConfig describes the session cookie. Logout must clear the cookie
// with the exact same Path/Domain/Secure/SameSite set it was written with,
// or browsers will keep the stale cookie.
type CookieConfig struct {
	Name     string
	Path     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
	MaxAge   int // seconds
}

// NewCookieConfig returns the session cookie settings. MaxAge should match
// the token expiry so the cookie and the token die together.
func NewCookieConfig(domain string, secure bool, sameSite http.SameSite, maxAge int) CookieConfig {
	return CookieConfig{
		Name:     jwt.CookieName,
		Path:     "/",
		Domain:   domain,
		Secure:   secure,
		SameSite: sameSite,
		MaxAge:   maxAge,
	}
}

// ParseSameSite parses a samesite config value. Empty defaults to None,
// which the original frontend (cross-site) requires.
func ParseSameSite(value string) (http.SameSite, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "none":
		return http.SameSiteNoneMode, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	default:
		return 0, errors.New("invalid samesite value")
	}
}

func setSessionCookie(w http.ResponseWriter, cfg CookieConfig, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    token,
		Path:     cfg.Path,
		Domain:   cfg.Domain,
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: cfg.SameSite,
	})
}

func clearSessionCookie(w http.ResponseWriter, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     cfg.Path,
		Domain:   cfg.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: cfg.SameSite,
	})
}
