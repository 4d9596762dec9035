package server

import (
	"log/slog"

	"chappy/api"
	"chappy/auth"
	"chappy/services"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
)

// NewGRPCServer exposes the chat and auth services. Every call is logged,
// then gets its caller identity resolved before reaching a handler.
func NewGRPCServer(log *slog.Logger, chatService services.IChatService, authService services.IAuthService,
	tokenManager *auth.TokenManager, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(
		grpc3.UnaryLoggingInterceptor(log),
		IdentityInterceptor(log, tokenManager),
	))
	s := grpc.NewServer(opts...)
	api.RegisterChatServiceServer(s, NewChatServer(log, chatService))
	api.RegisterAuthServiceServer(s, NewAuthServer(log, authService))
	return s
}
