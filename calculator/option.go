package calculator

import (
	"errors"

	"github.com/mhlabs/mobilecore"
)

// Option is a function that configures a Calculator.
// Options return errors to enable validation during construction.
type Option func(*Calculator) error

// WithLogger sets the logger used to report rejected operations.
func WithLogger(logger mobilecore.Logger) Option {
	return func(c *Calculator) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithMetrics sets the sink for the calculator_operations_total counter.
func WithMetrics(metrics mobilecore.Metrics) Option {
	return func(c *Calculator) error {
		if metrics == nil {
			return errors.New("metrics cannot be nil")
		}
		c.metrics = metrics
		return nil
	}
}
