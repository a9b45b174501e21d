/*
Package mobilecore is a small in-process library meant to be exposed to host
applications across a foreign-function boundary.

It has two independent components:

  - calculator: a goroutine-safe signed 32-bit register with checked
    arithmetic (package github.com/mhlabs/mobilecore/calculator).
  - jwtdecode: a structural decoder for compact-serialized JSON Web Tokens
    that never verifies signatures (package github.com/mhlabs/mobilecore/jwtdecode).

The binding package turns both into a language-agnostic contract built from
opaque handles, scalars, strings and a closed set of status codes, and
cmd/mobilecore exports that contract as C symbols.

# Quick Start

	calc, _ := calculator.New(10)
	if err := calc.Add(5); err != nil {
	    // errors.Is(err, calculator.ErrOverflow)
	}
	fmt.Println(calc.Value()) // 15

	parts, err := jwtdecode.Decode(token)
	if err != nil {
	    var decodeErr *jwtdecode.DecodeError
	    if errors.As(err, &decodeErr) {
	        fmt.Println(decodeErr.Kind, decodeErr.Segment, decodeErr.Message)
	    }
	}
	fmt.Println(parts.Header, parts.Payload, parts.Signature)

# Logging, Metrics and Tracing

This package holds the ambient interfaces shared by the components:

  - Logger: slog-shaped structured logger. Adapters exist for logrus, zap
    and zerolog; *slog.Logger satisfies it directly.
  - Metrics: counter/histogram/gauge sink with a Prometheus implementation.
  - Tracer: span factory with an OpenTelemetry implementation.

All three default to no-op implementations.

	logger := mobilecore.NewLogrusLogger(logrus.StandardLogger())
	calc, err := calculator.New(0, calculator.WithLogger(logger))
*/
package mobilecore
