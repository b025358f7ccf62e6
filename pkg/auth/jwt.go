package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	RoleAdmin      = "admin"
	RoleAgent      = "agent"
	RoleRestaurant = "restaurant"
	RoleRider      = "rider"
)

type JWTServiceInterface interface {
	GenerateJWT(actorID int, role string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("veloz-dev-secret")

// SetSecret replaces the signing secret; called once from app start.
func SetSecret(secret string) {
	secretKey = []byte(secret)
}

type Claims struct {
	ActorID int    `json:"actor_id"`
	Role    string `json:"role"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(actorID int, role string, expirationTime time.Time) (string, error) {
	claims := Claims{
		ActorID: actorID,
		Role:    role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "veloz",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ActorID == 0 || claims.Issuer != "veloz" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
