package services

import (
	"log/slog"
	"testing"
	"time"

	"chappy/auth"
	"chappy/errors"
	"chappy/mocks"
	"chappy/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	tokenManager := auth.NewTokenManager("test-secret", 24*time.Hour)
	svc := NewAuthService(slog.Default(), mockRepo, tokenManager)

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)
		password := "ComplexPass123!"

		mockRepo.EXPECT().
			CreateUser("alice", gomock.Not(password)).
			Return(repositories.User{Username: "alice", Roles: []string{"user"}}, nil).
			Times(1)

		token, err := svc.Register("alice", password)

		req.NoError(err)
		claims, err := tokenManager.ValidateToken(token.String())
		req.NoError(err)
		req.Equal("alice", claims.Username)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

		token, err := svc.Register("alice", "simple")

		req.ErrorIs(err, errors.ErrInvalidPassword)
		req.Empty(token)
	})

	t.Run("should fail when user already exists in repository", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			CreateUser("alice", gomock.Any()).
			Return(repositories.User{}, errors.ErrUserAlreadyExists).
			Times(1)

		_, err := svc.Register("alice", "ComplexPass123!")

		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	tokenManager := auth.NewTokenManager("test-secret", 24*time.Hour)
	svc := NewAuthService(slog.Default(), mockRepo, tokenManager)

	password := "Secret123456!"
	hashedPassword, err := auth.HashPassword(password)
	require.NoError(t, err)
	storedUser := repositories.User{Username: "Bob", PasswordHash: hashedPassword, Roles: []string{"user"}}

	t.Run("should login successfully with correct credentials", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUser("bob").Return(storedUser, nil).Times(1)

		token, err := svc.Login("bob", password)

		req.NoError(err)
		claims, err := tokenManager.ValidateToken(string(token))
		req.NoError(err)
		req.Equal("Bob", claims.Username)
	})

	t.Run("should return invalid credentials on a wrong password", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUser("Bob").Return(storedUser, nil).Times(1)

		_, err := svc.Login("Bob", "WrongPassword123!")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should return invalid credentials when user is not found", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUser("unknown").Return(repositories.User{}, errors.NotFound("user")).Times(1)

		_, err := svc.Login("unknown", "anyPassword")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should surface storage failures", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUser("Bob").Return(repositories.User{}, errors.StorageUnavailable(badger.ErrDBClosed)).Times(1)

		_, err := svc.Login("Bob", password)

		req.ErrorIs(err, errors.ErrStorageUnavailable)
	})
}
