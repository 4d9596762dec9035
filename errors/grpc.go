package errors

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const errorDomain = "chappy"

var grpcCodes = map[Kind]codes.Code{
	KindForbidden:          codes.PermissionDenied,
	KindValidationFailed:   codes.InvalidArgument,
	KindStorageUnavailable: codes.Unavailable,
	KindInvariantViolation: codes.FailedPrecondition,
	KindNotFound:           codes.NotFound,
	KindAlreadyExists:      codes.AlreadyExists,
	KindUnauthenticated:    codes.Unauthenticated,
	KindInternal:           codes.Internal,
}

// MapToGRPCError converts an application error into a gRPC status.
// The kind, reason and field travel as an ErrorInfo detail.
// Storage causes are not leaked to the client.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return status.Error(codes.Internal, "internal error")
	}

	message := appErr.Error()
	if appErr.Kind == KindStorageUnavailable || appErr.Kind == KindInternal {
		message = appErr.Message
	}
	st := status.New(grpcCodes[appErr.Kind], message)
	info := &errdetails.ErrorInfo{Reason: string(appErr.Kind), Domain: errorDomain, Metadata: map[string]string{}}
	if appErr.Reason != "" {
		info.Metadata["reason"] = appErr.Reason
	}
	if appErr.Field != "" {
		info.Metadata["field"] = appErr.Field
	}
	if detailed, detailErr := st.WithDetails(info); detailErr == nil {
		st = detailed
	}
	return st.Err()
}

// FromGRPCError rebuilds the AppError carried by a status returned from
// MapToGRPCError. Other errors are returned unchanged.
func FromGRPCError(err error) error {
	st, ok := status.FromError(err)
	if !ok || st.Code() == codes.OK {
		return err
	}
	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != errorDomain {
			continue
		}
		return &AppError{
			Kind:    Kind(info.GetReason()),
			Message: st.Message(),
			Reason:  info.GetMetadata()["reason"],
			Field:   info.GetMetadata()["field"],
		}
	}
	return err
}
