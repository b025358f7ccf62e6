package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name           string
		actorID        int
		role           string
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			actorID:        123,
			role:           RoleRider,
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Expired Token",
			actorID:        123,
			role:           RoleAdmin,
			expirationTime: time.Now().Add(-time.Hour),
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.actorID, tt.role, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name         string
		tokenString  string
		setup        func() string
		expectError  bool
		expectedRole string
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, RoleRider, time.Now().Add(time.Hour))
				return token
			},
			expectError:  false,
			expectedRole: RoleRider,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, RoleRider, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Invalid Claims Type",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    "veloz",
				})
				signedToken, _ := token.SignedString(secretKey)
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
				assert.Equal(t, tt.expectedRole, claims.Role)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		allowed      []string
		expectedCode int
	}{
		{"Admin allowed on admin route", RoleAdmin, []string{RoleAdmin}, 200},
		{"Rider rejected on admin route", RoleRider, []string{RoleAdmin}, 403},
		{"Agent allowed on shared route", RoleAgent, []string{RoleAdmin, RoleAgent}, 200},
		{"Missing role rejected", "", []string{RoleAdmin}, 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := runRoleCheck(t, tt.role, tt.allowed)
			assert.Equal(t, tt.expectedCode, code)
		})
	}
}
