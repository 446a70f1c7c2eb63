package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/threadcount/retailops/internal/config"
	"github.com/threadcount/retailops/internal/database"
	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/session"
	"github.com/threadcount/retailops/internal/utils"
)

type contextKey string

const sessionContextKey contextKey = "session"

// Auth verifies the Bearer token, loads the matching profile and resolves it
// into a portal session. A valid token whose profile is missing, inactive or
// outside the portal roles yields 403 "access denied" - distinct from the
// 401 of a bad token - and the client must sign out.
func Auth(db *database.DB, cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := utils.ValidateToken(parts[1], cfg.JWTSecret)
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			profileID, ok := claims["id"].(string)
			if !ok {
				http.Error(w, "Invalid token: missing profile id", http.StatusUnauthorized)
				return
			}

			var profile models.Profile
			if err := db.Where("id = ?", profileID).First(&profile).Error; err != nil {
				http.Error(w, "Access denied", http.StatusForbidden)
				return
			}

			sess, err := session.Resolve(&profile)
			if err != nil {
				http.Error(w, "Access denied", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession retrieves the resolved session from request context
func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*session.Session)
	return sess, ok
}
