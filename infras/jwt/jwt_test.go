package jwt_test

import (
	"hotelops/config"
	"hotelops/infras/jwt"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "front-desk-secret"

func sign(t *testing.T, claims jwt.Claims, secret string) string {
	t.Helper()

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)

	return token
}

func validClaims() jwt.Claims {
	now := time.Now()

	return jwt.Claims{
		UserID:   "staff-1",
		Email:    "desk@hotel.test",
		Role:     "front_desk",
		HotelIDs: []string{"hotel-1"},
		TokenID:  "token-1",
		Type:     jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestValidateToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = testSecret

	service := jwt.New(cfg)

	expired := validClaims()
	expired.ExpiresAt = gojwt.NewNumericDate(time.Now().Add(-time.Minute))

	noHotels := validClaims()
	noHotels.HotelIDs = nil

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:  "valid access token",
			token: sign(t, validClaims(), testSecret),
		},
		{
			name:    "expired token",
			token:   sign(t, expired, testSecret),
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name:    "wrong secret",
			token:   sign(t, validClaims(), "other"),
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "token without hotels",
			token:   sign(t, noHotels, testSecret),
			wantErr: jwt.ErrInvalidClaim,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token, jwt.AccessToken)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "staff-1", claims.UserID)
			assert.True(t, claims.CanAccessHotel("hotel-1"))
			assert.False(t, claims.CanAccessHotel("hotel-2"))
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)
}
