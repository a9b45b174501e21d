package binding

import (
	"errors"

	"github.com/mhlabs/mobilecore/calculator"
	"github.com/mhlabs/mobilecore/jwtdecode"
)

// ErrInvalidHandle is returned for a handle that was never issued or has
// already been released.
var ErrInvalidHandle = errors.New("invalid calculator handle")

// Code is the closed set of outcomes reported across the boundary. Values
// are stable and must not be renumbered.
type Code int32

const (
	CodeOK             Code = 0
	CodeOverflow       Code = 1
	CodeDivisionByZero Code = 2
	CodeInvalidFormat  Code = 3
	CodeBase64Error    Code = 4
	CodeJSONError      Code = 5
	CodeInvalidHandle  Code = 6
	CodeInternal       Code = 7
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeOverflow:
		return "overflow"
	case CodeDivisionByZero:
		return "division_by_zero"
	case CodeInvalidFormat:
		return "invalid_format"
	case CodeBase64Error:
		return "base64_error"
	case CodeJSONError:
		return "json_error"
	case CodeInvalidHandle:
		return "invalid_handle"
	default:
		return "internal"
	}
}

// Status is the result of a boundary call: a Code and, for failures, a
// human-readable message.
type Status struct {
	Code    Code   `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
}

// OK reports whether the call succeeded.
func (s Status) OK() bool {
	return s.Code == CodeOK
}

var statusOK = Status{Code: CodeOK, Kind: CodeOK.String()}

// StatusFromError maps an error from the core packages onto a Status.
// A nil error maps to CodeOK; unrecognized errors map to CodeInternal.
func StatusFromError(err error) Status {
	if err == nil {
		return statusOK
	}

	code := CodeInternal
	switch {
	case errors.Is(err, calculator.ErrOverflow):
		code = CodeOverflow
	case errors.Is(err, calculator.ErrDivisionByZero):
		code = CodeDivisionByZero
	case errors.Is(err, jwtdecode.ErrInvalidFormat):
		code = CodeInvalidFormat
	case errors.Is(err, jwtdecode.ErrBase64):
		code = CodeBase64Error
	case errors.Is(err, jwtdecode.ErrJSON):
		code = CodeJSONError
	case errors.Is(err, ErrInvalidHandle):
		code = CodeInvalidHandle
	}

	return Status{Code: code, Kind: code.String(), Message: err.Error()}
}
