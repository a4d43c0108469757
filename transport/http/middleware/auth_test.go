package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"staytrack/infras/credential"
	otelMocks "staytrack/infras/otel/mocks"
	"staytrack/shared/failure"
	"staytrack/transport/http/middleware"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u1",
		"role": "admin",
		"exp":  expiresAt.Unix(),
	}).SignedString([]byte("not-the-server-secret"))
	require.NoError(t, err)

	return token
}

func TestAuth(t *testing.T) {
	valid := signedToken(t, time.Now().Add(time.Hour))
	expired := signedToken(t, time.Now().Add(-time.Hour))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantToken  string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "expired jwt", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "valid jwt", header: "Bearer " + valid, wantStatus: http.StatusNoContent, wantToken: valid},
		{name: "opaque token passes through", header: "Bearer opaque-session", wantStatus: http.StatusNoContent, wantToken: "opaque-session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = credential.FromContext().Token(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			handler := middleware.NewAuthMiddleware(otelMocks.NewOtel()).Auth(next)

			req := httptest.NewRequest(http.MethodGet, "/v1/guests", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantToken, seen)
		})
	}
}

func TestAuth_ExpiredMessage(t *testing.T) {
	handler := middleware.NewAuthMiddleware(otelMocks.NewOtel()).Auth(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, time.Now().Add(-time.Minute)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), failure.SessionExpiredError.Message)
}
