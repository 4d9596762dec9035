package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppError_IsMatchesKind(t *testing.T) {
	req := require.New(t)

	err := fmt.Errorf("posting: %w", Forbidden("private_channel_forbidden"))
	req.ErrorIs(err, ErrForbidden)
	req.NotErrorIs(err, ErrValidationFailed)

	var appErr *AppError
	req.True(errors.As(err, &appErr))
	req.Equal("private_channel_forbidden", appErr.Reason)

	req.ErrorIs(ValidationFailed("content"), ErrValidationFailed)
	req.ErrorIs(ErrSelfConversation, ErrInvariantViolation)
	req.ErrorIs(ErrInvalidPassword, ErrValidationFailed)
}

func TestStorageUnavailable_KeepsCause(t *testing.T) {
	req := require.New(t)
	cause := errors.New("disk on fire")

	err := StorageUnavailable(cause)
	req.ErrorIs(err, ErrStorageUnavailable)
	req.ErrorIs(err, cause)
	req.Equal(KindStorageUnavailable, KindOf(err))
	req.Equal(KindInternal, KindOf(cause))
}

func TestMapToGRPCError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"forbidden", Forbidden("guest_forbidden"), codes.PermissionDenied},
		{"validation", ValidationFailed("content"), codes.InvalidArgument},
		{"storage", StorageUnavailable(errors.New("boom")), codes.Unavailable},
		{"invariant", ErrSelfConversation, codes.FailedPrecondition},
		{"not found", NotFound("channel"), codes.NotFound},
		{"already exists", ErrUserAlreadyExists, codes.AlreadyExists},
		{"credentials", ErrInvalidCredentials, codes.Unauthenticated},
		{"plain error", errors.New("???"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(MapToGRPCError(tt.err))
			require.True(t, ok)
			require.Equal(t, tt.code, st.Code())
		})
	}
	require.NoError(t, MapToGRPCError(nil))
}

func TestMapToGRPCError_HidesStorageCause(t *testing.T) {
	st, _ := status.FromError(MapToGRPCError(StorageUnavailable(errors.New("/var/lib/secret path"))))
	require.NotContains(t, st.Message(), "secret")
}

func TestFromGRPCError_RestoresKindAndDetail(t *testing.T) {
	req := require.New(t)

	err := FromGRPCError(MapToGRPCError(Forbidden("guest_forbidden")))
	req.ErrorIs(err, ErrForbidden)
	var appErr *AppError
	req.ErrorAs(err, &appErr)
	req.Equal("guest_forbidden", appErr.Reason)

	err = FromGRPCError(MapToGRPCError(ValidationFailed("content")))
	req.ErrorIs(err, ErrValidationFailed)
	req.ErrorAs(err, &appErr)
	req.Equal("content", appErr.Field)

	plain := status.Error(codes.Canceled, "gone")
	req.Equal(plain, FromGRPCError(plain))
	req.NoError(FromGRPCError(nil))
}
