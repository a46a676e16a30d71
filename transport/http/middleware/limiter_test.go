package middleware_test

import (
	"context"
	"errors"
	"hotelops/config"
	otelMocks "hotelops/infras/otel/mocks"
	cacheMocks "hotelops/shared/cache/mocks"
	"hotelops/shared/constant"
	"hotelops/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		setupMock     func(c *cacheMocks.MockRedisCache)
		wantStatus    int
		wantRemaining string
	}{
		{
			name:       "disabled",
			setupMock:  func(_ *cacheMocks.MockRedisCache) {},
			wantStatus: http.StatusOK,
		},
		{
			name:   "within window",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(2), nil)
			},
			wantStatus:    http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:   "limit exceeded",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(4), nil)
			},
			wantStatus:    http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:   "cache unavailable",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("redis down"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(redisCache)

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enable
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redisCache)
			handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/hotels/hotel-1/rooms", nil)
			req.RemoteAddr = "10.0.0.7:51234"
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimit_KeyedByClientHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).
		DoAndReturn(func(_ context.Context, key string, _ int) (int64, error) {
			assert.True(t, strings.HasPrefix(key, "limiter:10.0.0.7:"))
			assert.NotContains(t, key, "51234")

			return 1, nil
		})

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 3
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redisCache)
	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/hotels/hotel-1/rooms", nil)
	req.RemoteAddr = "10.0.0.7:51234"
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
