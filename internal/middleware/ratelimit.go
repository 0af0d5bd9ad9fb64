package middleware

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/azwatch/campfin-backend/pkg/logger"
)

type rateLimitMiddleware struct {
	limiter *rate.Limiter
}

// NewRateLimitMiddleware allows one request per interval with the given burst.
// The limit is global, not per-client: the goal is to protect the facade's
// connection pool, not to meter individual users.
func NewRateLimitMiddleware(interval time.Duration, burst int) *rateLimitMiddleware {
	return &rateLimitMiddleware{
		limiter: rate.NewLimiter(rate.Every(interval), burst),
	}
}

func (m *rateLimitMiddleware) RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow() {
			log := logger.FromContext(r.Context())
			log.Warn("rate limit exceeded", "remote_addr", r.RemoteAddr)
			http.Error(w, "Too many requests. Please wait a moment before trying again.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
