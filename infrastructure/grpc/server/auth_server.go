package server

import (
	"context"
	"log/slog"

	"chappy/api"
	"chappy/errors"
	"chappy/services"
)

type AuthServer struct {
	log         *slog.Logger
	authService services.IAuthService
}

func NewAuthServer(log *slog.Logger, authService services.IAuthService) *AuthServer {
	return &AuthServer{log: log, authService: authService}
}

func (s *AuthServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.TokenResponse, error) {
	token, err := s.authService.Register(req.Username, req.Password)
	if err != nil {
		s.log.DebugContext(ctx, "registration refused", "username", req.Username, "error", err)
		return nil, errors.MapToGRPCError(err)
	}
	return &api.TokenResponse{Token: token.String()}, nil
}

func (s *AuthServer) Login(ctx context.Context, req *api.LoginRequest) (*api.TokenResponse, error) {
	token, err := s.authService.Login(req.Username, req.Password)
	if err != nil {
		s.log.DebugContext(ctx, "login refused", "username", req.Username, "error", err)
		return nil, errors.MapToGRPCError(err)
	}
	return &api.TokenResponse{Token: token.String()}, nil
}
