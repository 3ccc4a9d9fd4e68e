package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/xpsc-club/xpsc-server/response"
	"github.com/xpsc-club/xpsc-server/services"
)

const (
	unauthorizedMessage = "unauthorized access"
	forbiddenMessage    = "forbidden access"
)

// AdminChecker resolves whether an email belongs to an administrator.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// Authenticate requires an "authorization" header of the form "Bearer <token>"
// and stores the verified identity in the request context.
func Authenticate(tokens services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.Message(w, r, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			// Only the second space separated part is read; the scheme word is ignored.
			parts := strings.Split(header, " ")
			if len(parts) < 2 || parts[1] == "" {
				response.Message(w, r, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				response.Message(w, r, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), identity)))
		})
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin(checker AdminChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentityFromContext(r.Context())
			if !ok {
				response.Message(w, r, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			isAdmin, err := checker.IsAdmin(r.Context(), identity.Email)
			if err != nil {
				logger.ErrorContext(r.Context(), "admin check failed",
					slog.String("email", identity.Email),
					slog.Any("error", err),
				)
				response.ServerError(w, r)
				return
			}
			if !isAdmin {
				response.Message(w, r, http.StatusForbidden, forbiddenMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
