package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vmilosevic/liftinsights/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCors(t *testing.T) {
	testCases := []struct {
		name               string
		origin             string
		userAgent          string
		expectedStatusCode int
	}{
		{
			name:               "AllowedOrigin",
			origin:             "https://liftinsights.app",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "TestOrigin",
			origin:             "test",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "MobileAppUserAgent",
			userAgent:          "LiftInsights/1.4.2 (iOS)",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "CurlUserAgent",
			userAgent:          "curl/8.5.0",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "UnknownOriginAndUserAgent",
			origin:             "https://evil.example.com",
			userAgent:          "Mozilla/5.0",
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:               "NoOriginNoUserAgent",
			expectedStatusCode: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", "/records", nil)
			require.NoError(t, err)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.userAgent != "" {
				req.Header.Set("User-Agent", tc.userAgent)
			}

			rec := httptest.NewRecorder()
			handler := middleware.Cors()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedStatusCode == http.StatusOK {
				assert.Equal(t, tc.origin, rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-LIFT-TOKEN")
			}
		})
	}
}
