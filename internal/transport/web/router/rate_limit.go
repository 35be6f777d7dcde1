package router

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/beliefted/beliefted-server/internal/domain"
	"github.com/beliefted/beliefted-server/internal/ratelimit"
)

// RateChecker is satisfied by *ratelimit.Limiter.
type RateChecker interface {
	Check(ctx context.Context, key string, limit int, window time.Duration) (ratelimit.Result, error)
}

type RateLimit struct {
	Limit  int
	Window time.Duration
}

const (
	FeatureToggle        = "toggle"
	FeatureComment       = "comment"
	FeatureContentCreate = "content_create"
	FeatureFollow        = "follow"
)

var DefaultRateLimits = map[string]RateLimit{
	FeatureToggle:        {Limit: 30, Window: time.Minute},
	FeatureComment:       {Limit: 10, Window: time.Minute},
	FeatureContentCreate: {Limit: 10, Window: time.Minute},
	FeatureFollow:        {Limit: 20, Window: time.Minute},
}

// rateLimitMiddleware counts requests per feature and caller. The store
// failing lets the request through.
func rateLimitMiddleware(checker RateChecker, feature string, limit RateLimit) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := feature + ":" + callerIdentity(r)

			result, err := checker.Check(ctx, key, limit.Limit, limit.Window)
			if err != nil {
				logger := domain.LoggerFromContext(ctx)
				logger.ErrorContext(ctx, "rate limiter unavailable, allowing request", "error", err, "key", key)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			if !result.Allowed {
				retryAfter := int(time.Until(result.ResetAt).Seconds() + 0.999)
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": domain.ErrRateLimited.Error()})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func callerIdentity(r *http.Request) string {
	if userID := domain.UserIDFromContext(r.Context()); userID != "" {
		return userID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
