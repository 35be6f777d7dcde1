package router

import (
	"net/http"

	"github.com/beliefted/beliefted-server/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := domain.UserIDFromContext(r.Context())
		if userID == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.InfoContext(r.Context(), "attempt to use endpoint requiring auth without user ID")
			writeUnauthorized(w, domain.ErrUnauthorized.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
