package jwt

import (
	"errors"
	"fmt"
	"hotelops/config"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

// TokenType represents the type of JWT token
type TokenType string

const (
	AccessToken TokenType = "access"
)

// Claims carries the staff member and the hotels they may operate.
type Claims struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Role     string    `json:"role,omitempty"`
	HotelIDs []string  `json:"hotel_ids"`
	TokenID  string    `json:"token_id"`
	Type     TokenType `json:"type"`
	jwt.RegisteredClaims
}

// CanAccessHotel reports whether the token grants access to hotelID. An admin token carrying
// the wildcard hotel can operate every property.
func (c *Claims) CanAccessHotel(hotelID string) bool {
	return slices.Contains(c.HotelIDs, hotelID) || slices.Contains(c.HotelIDs, "*")
}

// JWT validates access tokens issued by the property's identity provider.
type JWT interface {
	ValidateToken(tokenString string, tokenType TokenType) (*Claims, error)
}

// Service handles JWT operations
type Service struct {
	config *config.Config
}

// New creates a new JWT service
func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// ValidateToken validates and parses a JWT token
func (s *Service) ValidateToken(tokenString string, tokenType TokenType) (*Claims, error) {
	if tokenType != AccessToken {
		return nil, fmt.Errorf("unknown token type: %s", tokenType)
	}

	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.config.JWT.Issuer != "" {
		options = append(options, jwt.WithIssuer(s.config.JWT.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWT.AccessSecret), nil
	}, options...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Type != tokenType || claims.UserID == "" || len(claims.HotelIDs) == 0 {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts JWT token from Authorization header
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return token, nil
}
