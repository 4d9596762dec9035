package server

import (
	"context"
	"log/slog"
	"strings"

	"chappy/api"
	"chappy/auth"
	"chappy/domain"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// IdentityInterceptor resolves the caller identity from the request metadata
// and stores it in the context. It never rejects a call: a valid bearer token
// gives an authenticated identity, the guest header or a token that does not
// validate gives a guest, no credential at all gives an anonymous caller.
// Authorization is left to the access policy.
func IdentityInterceptor(log *slog.Logger, tokenManager *auth.TokenManager) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		identity := resolveIdentity(ctx, log, tokenManager)
		return handler(auth.WithIdentity(ctx, identity), req)
	}
}

func resolveIdentity(ctx context.Context, log *slog.Logger, tokenManager *auth.TokenManager) domain.Identity {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return domain.AnonymousIdentity()
	}

	if values := md.Get(api.AuthorizationHeader); len(values) > 0 {
		token, found := strings.CutPrefix(values[0], api.BearerPrefix)
		if !found {
			return domain.GuestIdentity()
		}
		claims, err := tokenManager.ValidateToken(token)
		if err != nil {
			log.DebugContext(ctx, "token rejected, continuing as guest", "error", err)
			return domain.GuestIdentity()
		}
		return domain.AuthenticatedAs(claims.Username)
	}

	if values := md.Get(api.GuestHeader); len(values) > 0 && strings.EqualFold(values[0], "true") {
		return domain.GuestIdentity()
	}
	return domain.AnonymousIdentity()
}
