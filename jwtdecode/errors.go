package jwtdecode

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per Kind. Use errors.Is to classify a DecodeError.
var (
	// ErrInvalidFormat is returned when the token is not three dot-separated segments.
	ErrInvalidFormat = errors.New("invalid JWT format")

	// ErrBase64 is returned when the header or payload is not valid base64url.
	ErrBase64 = errors.New("invalid base64url segment")

	// ErrJSON is returned when the decoded header or payload is not a JSON object or array.
	ErrJSON = errors.New("invalid JSON segment")
)

// Kind classifies a DecodeError.
type Kind int

const (
	InvalidFormat Kind = iota + 1
	Base64Error
	JSONError
)

func (k Kind) String() string {
	switch k {
	case InvalidFormat:
		return "invalid_format"
	case Base64Error:
		return "base64_error"
	case JSONError:
		return "json_error"
	default:
		return "unknown"
	}
}

// Segment names the part of a token an error refers to.
type Segment string

const (
	SegmentHeader  Segment = "header"
	SegmentPayload Segment = "payload"
)

// DecodeError is returned by Decode for every failure.
type DecodeError struct {
	// Kind is the error class.
	Kind Kind

	// Segment is the failing segment. Empty for InvalidFormat.
	Segment Segment

	// Message is the human-readable diagnostic, taken verbatim from the
	// base64 decoder or JSON parser when one was involved.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch e.Kind {
	case Base64Error:
		return fmt.Sprintf("failed to decode JWT %s: %s", e.Segment, e.Message)
	case JSONError:
		return fmt.Sprintf("failed to parse JWT %s as JSON: %s", e.Segment, e.Message)
	default:
		return fmt.Sprintf("%s: %s", ErrInvalidFormat, e.Message)
	}
}

// Unwrap returns the underlying error for error unwrapping.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is allows the error to be compared with the sentinel of its Kind.
func (e *DecodeError) Is(target error) bool {
	switch e.Kind {
	case InvalidFormat:
		return target == ErrInvalidFormat
	case Base64Error:
		return target == ErrBase64
	case JSONError:
		return target == ErrJSON
	default:
		return false
	}
}

func formatError(message string) *DecodeError {
	return &DecodeError{Kind: InvalidFormat, Message: message}
}

func base64Error(segment Segment, err error) *DecodeError {
	return &DecodeError{Kind: Base64Error, Segment: segment, Message: err.Error(), Err: err}
}

func jsonError(segment Segment, err error) *DecodeError {
	return &DecodeError{Kind: JSONError, Segment: segment, Message: err.Error(), Err: err}
}
