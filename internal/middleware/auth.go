package middleware

import (
	"context"
	"net/http"
	"strings"

	"lingo_progress/internal/config"
	"lingo_progress/internal/model"
	"lingo_progress/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthMiddleware verifies the identity provider's bearer token and stores its
// subject as the user id. The engine trusts the subject without further lookups.
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrUnauthorized))
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header must be 'Bearer {token}'.", "", model.ErrUnauthorized))
				return
			}

			claims := &model.JWTCustomClaims{}
			token, err := parser.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "The token is invalid or expired.", "", model.ErrUnauthorized))
				return
			}

			userID, err := claims.GetSubject()
			if err != nil || userID == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "The token carries no user.", "", model.ErrUnauthorized))
				return
			}

			next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
		})
	}
}

// withUserID stores the user id and tags the request logger with it.
func withUserID(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, model.UserIDKey, userID)
	return context.WithValue(ctx, logCtxKey{}, GetLogger(ctx).With("user_id", userID))
}

// GetUserIDFromContext returns the authenticated user id or an Unauthorized AppError.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	value, ok := ctx.Value(model.UserIDKey).(string)
	if !ok || value == "" {
		return "", model.NewAppError("UNAUTHORIZED", "No authenticated user.", "", model.ErrUnauthorized)
	}
	return value, nil
}
