// Package errors holds the error taxonomy shared by every layer.
//
// Permission denials, bad input, storage failures and programming errors are
// distinct kinds so callers can tell a retryable failure from a refusal.
package errors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindForbidden          Kind = "FORBIDDEN"
	KindValidationFailed   Kind = "VALIDATION_FAILED"
	KindStorageUnavailable Kind = "STORAGE_UNAVAILABLE"
	KindInvariantViolation Kind = "INVARIANT_VIOLATION"
	KindNotFound           Kind = "NOT_FOUND"
	KindAlreadyExists      Kind = "ALREADY_EXISTS"
	KindUnauthenticated    Kind = "UNAUTHENTICATED"
	KindInternal           Kind = "INTERNAL"
)

// AppError carries a Kind plus the detail a client needs to react:
// Reason for denials, Field for validation failures.
type AppError struct {
	Kind    Kind
	Message string
	Reason  string
	Field   string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// Is matches any AppError of the same kind, so errors.Is(err, ErrForbidden)
// holds whatever the reason.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Reason == "" && t.Field == "" && t.Cause == nil
}

var (
	ErrForbidden          = &AppError{Kind: KindForbidden, Message: "forbidden"}
	ErrValidationFailed   = &AppError{Kind: KindValidationFailed, Message: "validation failed"}
	ErrStorageUnavailable = &AppError{Kind: KindStorageUnavailable, Message: "storage unavailable"}
	ErrInvariantViolation = &AppError{Kind: KindInvariantViolation, Message: "invariant violation"}
	ErrNotFound           = &AppError{Kind: KindNotFound, Message: "not found"}

	ErrUserAlreadyExists  = &AppError{Kind: KindAlreadyExists, Message: "user already exists"}
	ErrInvalidCredentials = &AppError{Kind: KindUnauthenticated, Message: "invalid credentials"}
	ErrInvalidPassword    = &AppError{Kind: KindValidationFailed, Message: "password does not meet complexity rules", Field: "password"}
	ErrTokenGeneration    = &AppError{Kind: KindInternal, Message: "token generation failed"}
	ErrSelfConversation   = &AppError{Kind: KindInvariantViolation, Message: "a user cannot hold a conversation with themselves"}
)

func Forbidden(reason string) error {
	return &AppError{Kind: KindForbidden, Message: "forbidden: " + reason, Reason: reason}
}

func ValidationFailed(field string) error {
	return &AppError{Kind: KindValidationFailed, Message: fmt.Sprintf("invalid field %q", field), Field: field}
}

func StorageUnavailable(cause error) error {
	return &AppError{Kind: KindStorageUnavailable, Message: "storage unavailable", Cause: cause}
}

func NotFound(what string) error {
	return &AppError{Kind: KindNotFound, Message: what + " not found"}
}

// KindOf returns the kind of the first AppError in the chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
