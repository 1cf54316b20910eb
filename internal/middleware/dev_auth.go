package middleware

import (
	"net/http"
	"strings"

	"lingo_progress/internal/model"
	"lingo_progress/internal/webutil"
)

// DevUserContextMiddleware trusts the X-User-ID header. Only mounted when auth is disabled.
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userID := strings.TrimSpace(r.Header.Get("X-User-ID"))
		if userID == "" {
			logger.Warn("[DEV AUTH] X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID header is required.", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] user id set to context (no validation)", "user_id", userID)
		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
	})
}
