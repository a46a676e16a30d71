package middleware

import (
	"hotelops/shared"
	"hotelops/shared/constant"
	"hotelops/transport/http/response"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit counts requests per client in fixed windows. The client address comes from
// chi's RealIP, which runs earlier in the chain. Cache failures let the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := a.config.App.RateLimiter
			if !limiter.Enable || limiter.WindowSeconds <= 0 {
				next.ServeHTTP(w, r)

				return
			}

			window := time.Now().Unix() / int64(limiter.WindowSeconds)
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientAddress(r), strconv.FormatInt(window, 10))

			count, err := a.cache.Incr(r.Context(), cacheKey, limiter.WindowSeconds)
			if err != nil {
				log.Warn().Err(err).Str("key", cacheKey).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			remaining := max(0, int64(limiter.MaxRequests)-count)

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(remaining, 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			if count > int64(limiter.MaxRequests) {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientAddress is the caller's host without the port. RealIP has already applied any proxy headers.
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func userAgent(r *http.Request) string {
	if ua := r.UserAgent(); ua != "" {
		return ua
	}

	return "unknown"
}
