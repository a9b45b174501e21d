// Package calculator provides a goroutine-safe integer register with checked
// arithmetic.
package calculator

import (
	"math"
	"sync"

	"github.com/mhlabs/mobilecore"
)

// Op names a register operation.
type Op string

const (
	OpReset    Op = "reset"
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
)

func (o Op) symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return string(o)
	}
}

const operationsMetric = "calculator_operations_total"

// Calculator holds a single signed 32-bit register. All methods are safe
// for concurrent use; every read-modify-write happens under one lock, so
// concurrent callers observe a total order of operations.
//
// A failed operation leaves the register unchanged.
type Calculator struct {
	mu    sync.Mutex
	value int32

	logger  mobilecore.Logger
	metrics mobilecore.Metrics
}

// New creates a Calculator whose register starts at initial.
//
// Example:
//
//	calc, err := calculator.New(0,
//	    calculator.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(initial int32, opts ...Option) (*Calculator, error) {
	c := &Calculator{
		value:   initial,
		logger:  mobilecore.NopLogger{},
		metrics: &mobilecore.NoopMetrics{},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Reset overwrites the register.
func (c *Calculator) Reset(v int32) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()

	c.metrics.IncCounter(operationsMetric, map[string]string{"op": string(OpReset), "result": "ok"})
}

// Value returns the current register value.
func (c *Calculator) Value() int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Add adds x to the register. It fails with ErrOverflow when the sum does
// not fit in an int32.
func (c *Calculator) Add(x int32) error {
	return c.apply(OpAdd, x, func(v, x int32) (int64, bool) {
		return int64(v) + int64(x), true
	})
}

// Subtract subtracts x from the register. It fails with ErrOverflow when the
// difference does not fit in an int32.
func (c *Calculator) Subtract(x int32) error {
	return c.apply(OpSubtract, x, func(v, x int32) (int64, bool) {
		return int64(v) - int64(x), true
	})
}

// Multiply multiplies the register by x. It fails with ErrOverflow when the
// product does not fit in an int32.
func (c *Calculator) Multiply(x int32) error {
	return c.apply(OpMultiply, x, func(v, x int32) (int64, bool) {
		return int64(v) * int64(x), true
	})
}

// Divide divides the register by x, truncating toward zero. It fails with
// ErrDivisionByZero when x is zero and with ErrOverflow for math.MinInt32 / -1.
func (c *Calculator) Divide(x int32) error {
	return c.apply(OpDivide, x, func(v, x int32) (int64, bool) {
		if x == 0 {
			return 0, false
		}
		return int64(v) / int64(x), true
	})
}

// apply runs f against the register under the lock and commits the result
// only when it is defined and fits in an int32. The int64 intermediate holds
// every sum, difference, product and quotient of two int32 values exactly.
func (c *Calculator) apply(op Op, x int32, f func(v, x int32) (int64, bool)) error {
	c.mu.Lock()
	v := c.value
	r, defined := f(v, x)

	var aerr *ArithmeticError
	switch {
	case !defined:
		aerr = &ArithmeticError{Kind: DivisionByZero, Op: op, Value: v, Operand: x}
	case r > math.MaxInt32 || r < math.MinInt32:
		aerr = &ArithmeticError{Kind: Overflow, Op: op, Value: v, Operand: x}
	default:
		c.value = int32(r)
	}
	c.mu.Unlock()

	if aerr != nil {
		c.logger.Debug("Calculator operation rejected", "op", string(op), "value", v, "operand", x, "error", aerr)
		c.metrics.IncCounter(operationsMetric, map[string]string{"op": string(op), "result": aerr.Kind.String()})
		return aerr
	}

	c.metrics.IncCounter(operationsMetric, map[string]string{"op": string(op), "result": "ok"})
	return nil
}
