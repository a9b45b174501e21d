package calculator

import (
	"errors"
	"fmt"
)

// Sentinel errors for arithmetic failures.
var (
	// ErrOverflow is returned when a result does not fit in a signed 32-bit integer.
	ErrOverflow = errors.New("integer overflow")

	// ErrDivisionByZero is returned by Divide when the operand is zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// ErrorKind identifies the class of an ArithmeticError.
type ErrorKind int

const (
	Overflow ErrorKind = iota + 1
	DivisionByZero
)

func (k ErrorKind) String() string {
	switch k {
	case Overflow:
		return "overflow"
	case DivisionByZero:
		return "division_by_zero"
	default:
		return "unknown"
	}
}

// ArithmeticError describes a rejected operation. The register still holds
// Value when this error is returned.
type ArithmeticError struct {
	Kind    ErrorKind
	Op      Op
	Value   int32
	Operand int32
}

// Error implements the error interface.
func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s: %d %s %d", e.sentinel(), e.Value, e.Op.symbol(), e.Operand)
}

// Is allows the error to be compared with ErrOverflow or ErrDivisionByZero.
func (e *ArithmeticError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *ArithmeticError) sentinel() error {
	if e.Kind == DivisionByZero {
		return ErrDivisionByZero
	}
	return ErrOverflow
}
