package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mhlabs/mobilecore/binding"
	"github.com/mhlabs/mobilecore/calculator"
	"github.com/mhlabs/mobilecore/jwtdecode"
)

// ErrorHandler converts core errors to gRPC status errors.
type ErrorHandler func(error) error

// DefaultErrorHandler maps calculator, decoder and binding errors to gRPC
// status codes. The status message is the error text.
func DefaultErrorHandler(err error) error {
	if err == nil {
		return nil
	}

	// Already a status error, e.g. from a nested call.
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, calculator.ErrOverflow):
		return status.Error(codes.OutOfRange, err.Error())
	case errors.Is(err, calculator.ErrDivisionByZero):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, jwtdecode.ErrInvalidFormat),
		errors.Is(err, jwtdecode.ErrBase64),
		errors.Is(err, jwtdecode.ErrJSON):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, binding.ErrInvalidHandle):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// FromStatus converts a binding.Status to a gRPC status error. CodeOK maps
// to nil.
func FromStatus(s binding.Status) error {
	switch s.Code {
	case binding.CodeOK:
		return nil
	case binding.CodeOverflow:
		return status.Error(codes.OutOfRange, s.Message)
	case binding.CodeDivisionByZero,
		binding.CodeInvalidFormat,
		binding.CodeBase64Error,
		binding.CodeJSONError:
		return status.Error(codes.InvalidArgument, s.Message)
	case binding.CodeInvalidHandle:
		return status.Error(codes.NotFound, s.Message)
	default:
		return status.Error(codes.Internal, s.Message)
	}
}
