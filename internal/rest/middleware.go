package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sociogram/social-service/internal/config"
	"github.com/sociogram/social-service/internal/model"
)

type tokenVerifier interface {
	Verify(tokenString string) (*model.AccessClaims, error)
}

// LoggerMiddleware injects a request-scoped logger and logs completion.
func LoggerMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			reqLog := log.With(
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
			)

			ctx := context.WithValue(r.Context(), config.KeyLogger, reqLog)
			ctx = context.WithValue(ctx, config.KeyRequestID, requestID)

			start := time.Now()
			next.ServeHTTP(w, r.WithContext(ctx))
			reqLog.Debug("request handled", "duration", time.Since(start))
		})
	}
}

// AuthMiddleware resolves the bearer credential (session cookie first, then
// Authorization header, mirroring the browser client) and binds the user id
// to the request context.
func AuthMiddleware(verifier tokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if cookie, err := r.Cookie("token"); err == nil {
				token = cookie.Value
			}
			if token == "" {
				token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			}
			if token == "" {
				writeError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				writeError(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), config.KeyUserID, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func loggerFromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(config.KeyLogger).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

func userIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(config.KeyUserID).(int64)
	return id, ok
}
