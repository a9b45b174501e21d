package binding

import (
	"errors"

	"github.com/mhlabs/mobilecore"
	"github.com/mhlabs/mobilecore/calculator"
	"github.com/mhlabs/mobilecore/jwtdecode"
)

// Option is a function that configures a Registry.
type Option func(*Registry) error

// WithCalculatorOptions sets the options applied to every calculator the
// registry creates.
func WithCalculatorOptions(opts ...calculator.Option) Option {
	return func(r *Registry) error {
		r.calculatorOpts = append(r.calculatorOpts, opts...)
		return nil
	}
}

// WithDecoder sets the decoder used by DecodeJWT.
//
// Default: a decoder with no options.
func WithDecoder(d *jwtdecode.Decoder) Option {
	return func(r *Registry) error {
		if d == nil {
			return errors.New("decoder cannot be nil")
		}
		r.decoder = d
		return nil
	}
}

// WithMetrics sets the sink for the binding_live_calculators gauge.
func WithMetrics(metrics mobilecore.Metrics) Option {
	return func(r *Registry) error {
		if metrics == nil {
			return errors.New("metrics cannot be nil")
		}
		r.metrics = metrics
		return nil
	}
}

// WithLogger sets the logger used for handle lifecycle events.
func WithLogger(logger mobilecore.Logger) Option {
	return func(r *Registry) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		r.logger = logger
		return nil
	}
}
