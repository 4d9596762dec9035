package auth

import (
	"context"

	"chappy/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity stores the resolved caller identity in ctx.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the caller identity, Anonymous when none was resolved.
func IdentityFromContext(ctx context.Context) domain.Identity {
	if identity, ok := ctx.Value(identityKey).(domain.Identity); ok {
		return identity
	}
	return domain.AnonymousIdentity()
}
