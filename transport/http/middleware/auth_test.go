package middleware_test

import (
	"context"
	"hotelops/config"
	otelMocks "hotelops/infras/otel/mocks"
	"hotelops/shared/constant"
	"hotelops/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestHotelScope(t *testing.T) {
	tests := []struct {
		name       string
		hotelIDs   []string
		skip       bool
		wantStatus int
	}{
		{
			name:       "token grants the hotel",
			hotelIDs:   []string{"hotel-1", "hotel-2"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wildcard token",
			hotelIDs:   []string{"*"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "other hotel",
			hotelIDs:   []string{"hotel-2"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no hotels",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "internal call",
			skip:       true,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authRole := middleware.NewAuthRoleMiddleware(nil, otelMocks.NewOtel(), nil, nil)

			router := chi.NewRouter()
			router.Route("/v1/hotels/{hotelID}", func(r chi.Router) {
				r.Use(authRole.HotelScope)
				r.Get("/rooms", func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusOK)
				})
			})

			ctx := context.WithValue(context.Background(), constant.ContextKeyHotelIDs, tt.hotelIDs)
			ctx = context.WithValue(ctx, middleware.SkipAuthKey("skip"), tt.skip)

			req := httptest.NewRequest(http.MethodGet, "/v1/hotels/hotel-1/rooms", nil).WithContext(ctx)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name         string
		configured   string
		header       string
		wantStatus   int
		wantInternal bool
	}{
		{
			name:       "staff request without key",
			configured: "secret",
			wantStatus: http.StatusOK,
		},
		{
			name:         "matching key",
			configured:   "secret",
			header:       "secret",
			wantStatus:   http.StatusOK,
			wantInternal: true,
		},
		{
			name:       "wrong key",
			configured: "secret",
			header:     "guess",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "key sent but none configured",
			header:     "secret",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.APIKey = tt.configured

			authRole := middleware.NewAuthRoleMiddleware(nil, otelMocks.NewOtel(), nil, cfg)

			var internal bool

			handler := authRole.APIKey(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				internal, _ = r.Context().Value(middleware.SkipAuthKey("skip")).(bool)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/hotels/hotel-1/rooms", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.header)
			}

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantInternal, internal)
		})
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	authRole := middleware.NewAuthRoleMiddleware(nil, otelMocks.NewOtel(), nil, &config.Config{})

	router := chi.NewRouter()
	router.Use(authRole.Auth)
	router.Get("/v1/hotels/{hotelID}/rooms", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/hotels/hotel-1/rooms", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
