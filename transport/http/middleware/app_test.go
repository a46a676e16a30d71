package middleware_test

import (
	"hotelops/config"
	otelMocks "hotelops/infras/otel/mocks"
	"hotelops/shared/constant"
	"hotelops/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestTracing(t *testing.T) {
	tests := []struct {
		name       string
		userAgent  string
		status     int
		wantStatus int
	}{
		{
			name:       "successful request",
			userAgent:  "front-desk/1.0",
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
		},
		{
			name:       "failed request without user agent",
			status:     http.StatusInternalServerError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

			router := chi.NewRouter()
			router.Use(chiMiddleware.RequestID, middleware.RequestID, app.Tracing)
			router.Get("/v1/hotels/{hotelID}/rooms", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/hotels/hotel-1/rooms", nil)
			req.RemoteAddr = "10.0.0.7:51234"
			if tt.userAgent != "" {
				req.Header.Set("User-Agent", tt.userAgent)
			}

			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
		})
	}
}
