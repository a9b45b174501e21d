package jwtdecode

import (
	"errors"

	"github.com/mhlabs/mobilecore"
)

// Option is a function that configures a Decoder.
// Options return errors to enable validation during construction.
type Option func(*Decoder) error

// WithLogger sets the logger used for decode outcomes.
func WithLogger(logger mobilecore.Logger) Option {
	return func(d *Decoder) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		d.logger = logger
		return nil
	}
}

// WithMetrics sets the sink for jwt_decode_total and jwt_decode_duration_seconds.
func WithMetrics(metrics mobilecore.Metrics) Option {
	return func(d *Decoder) error {
		if metrics == nil {
			return errors.New("metrics cannot be nil")
		}
		d.metrics = metrics
		return nil
	}
}

// WithTracer sets the tracer. Each Decode call produces one span.
func WithTracer(tracer mobilecore.Tracer) Option {
	return func(d *Decoder) error {
		if tracer == nil {
			return errors.New("tracer cannot be nil")
		}
		d.tracer = tracer
		return nil
	}
}

// WithMaxTokenLength rejects tokens longer than n bytes with InvalidFormat.
//
// Default: 0 (no limit)
func WithMaxTokenLength(n int) Option {
	return func(d *Decoder) error {
		if n < 0 {
			return errors.New("max token length cannot be negative")
		}
		d.maxTokenLength = n
		return nil
	}
}
