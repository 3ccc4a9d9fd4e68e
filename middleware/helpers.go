package middleware

import (
	"context"

	"github.com/xpsc-club/xpsc-server/models"
)

type contextKey string

const identityContextKey contextKey = "identity"

func withIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// GetIdentityFromContext returns the caller identity stored by Authenticate.
func GetIdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(*models.Identity)
	return identity, ok && identity != nil
}
