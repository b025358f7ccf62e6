package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func runRoleCheck(t *testing.T, role string, allowed []string) int {
	t.Helper()

	handler := RequireRole(allowed...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if role != "" {
		req = req.WithContext(context.WithValue(req.Context(), RoleKey, role))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec.Code
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name         string
		authHeader   func() string
		expectedCode int
	}{
		{
			name: "Valid bearer token",
			authHeader: func() string {
				token, _ := jwtService.GenerateJWT(7, RoleRider, time.Now().Add(time.Hour))
				return "Bearer " + token
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			authHeader:   func() string { return "" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Malformed header",
			authHeader:   func() string { return "Token abc" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid token",
			authHeader:   func() string { return "Bearer not.a.token" },
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotActor int
			var gotRole string
			handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotActor, _ = r.Context().Value(ActorIDKey).(int)
				gotRole, _ = r.Context().Value(RoleKey).(string)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if h := tt.authHeader(); h != "" {
				req.Header.Set("Authorization", h)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, 7, gotActor)
				assert.Equal(t, RoleRider, gotRole)
			}
		})
	}
}
