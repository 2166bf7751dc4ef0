package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError translates a domain error into a wire status without
// leaking internal representations. Unknown errors become Internal.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrConflict), errors.Is(err, ErrAlreadyConnected):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrStorage):
		// Persistence failures read as service-unavailable to clients.
		return status.Error(codes.Unavailable, "storage unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// Is re-exports errors.Is so callers of this package do not need to import
// both error packages.
func Is(err, target error) bool { return errors.Is(err, target) }
