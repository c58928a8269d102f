package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mindcare-app/backend/pkg/utils"
)

type contextKey string

// UserIDKey carries the authenticated user's ID through the request context.
const UserIDKey contextKey = "user_id"

// TokenParser validates a bearer token and returns the user ID it names.
type TokenParser interface {
	ParseToken(tokenString string) (string, error)
}

// RequireAuth rejects requests without a valid Authorization bearer token.
func RequireAuth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			parts := strings.Split(auth, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			userID, err := parser.ParseToken(parts[1])
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated user's ID from the request context.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}
