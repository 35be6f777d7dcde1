package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/beliefted/beliefted-server/internal/domain"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware puts a request-scoped logger in the context and logs
// each request when it completes.
func loggingMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			logger := base.With(
				"request_id", uuid.NewString(),
				"method", r.Method,
				"path", r.URL.Path,
			)
			ctx := domain.ContextWithLogger(r.Context(), logger)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctx))

			logger.InfoContext(ctx, "request served",
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds())
		})
	}
}
