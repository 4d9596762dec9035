package services

import (
	"fmt"
	"log/slog"

	"chappy/auth"
	"chappy/errors"
	"chappy/repositories"
)

type IAuthService interface {
	Login(username, password string) (Token, error)
	Register(username, password string) (Token, error)
}

type AuthService struct {
	log            *slog.Logger
	userRepository repositories.IUserRepository
	tokenManager   *auth.TokenManager
}

type Token string

func (t Token) String() string {
	return string(t)
}

func NewAuthService(log *slog.Logger, repo repositories.IUserRepository, tokenManager *auth.TokenManager) *AuthService {
	return &AuthService{log: log, userRepository: repo, tokenManager: tokenManager}
}

// Register validates before hashing, hashing is the expensive step.
func (s *AuthService) Register(username, password string) (Token, error) {
	if err := auth.ValidateRegister(auth.RegisterRequest{Username: username, Password: password}); err != nil {
		return "", err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	user, err := s.userRepository.CreateUser(username, hashedPassword)
	if err != nil {
		return "", err
	}
	s.log.Info("user registered", "username", user.Username)

	return s.issue(user)
}

// Login answers InvalidCredentials for both an unknown user and a wrong
// password so that usernames cannot be probed through it.
func (s *AuthService) Login(username, password string) (Token, error) {
	user, err := s.userRepository.GetUser(username)
	if errors.KindOf(err) == errors.KindStorageUnavailable {
		return "", err
	}
	if err != nil {
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *AuthService) issue(user repositories.User) (Token, error) {
	token, err := s.tokenManager.GenerateToken(user.Username, user.Roles)
	if err != nil {
		s.log.Error("token generation failed", "username", user.Username, "error", err)
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}
