package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	allowed := []string{"http://localhost:5173", "https://app.example.com"}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORSMiddleware(allowed)(next)

	tests := []struct {
		name           string
		origin         string
		method         string
		expectedCode   int
		expectedOrigin string
	}{
		{
			name:           "allowed origin",
			origin:         "http://localhost:5173",
			method:         http.MethodGet,
			expectedCode:   200,
			expectedOrigin: "http://localhost:5173",
		},
		{
			name:           "second allowed origin",
			origin:         "https://app.example.com",
			method:         http.MethodGet,
			expectedCode:   200,
			expectedOrigin: "https://app.example.com",
		},
		{
			name:         "unknown origin gets no cors headers",
			origin:       "https://evil.example.com",
			method:       http.MethodGet,
			expectedCode: 200,
		},
		{
			name:         "no origin header",
			method:       http.MethodGet,
			expectedCode: 200,
		},
		{
			name:           "preflight",
			origin:         "http://localhost:5173",
			method:         http.MethodOptions,
			expectedCode:   204,
			expectedOrigin: "http://localhost:5173",
		},
		{
			name:         "preflight from unknown origin",
			origin:       "https://evil.example.com",
			method:       http.MethodOptions,
			expectedCode: 204,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/flights", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedOrigin, rr.Header().Get("Access-Control-Allow-Origin"))

			if tt.expectedOrigin != "" {
				assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}

func TestCORSMiddleware_IgnoresBlankEntries(t *testing.T) {
	handler := CORSMiddleware([]string{" ", ""})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/flights", nil)
	req.Header.Set("Origin", "")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
