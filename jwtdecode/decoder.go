package jwtdecode

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jws"

	"github.com/mhlabs/mobilecore"
)

const (
	decodeCounter   = "jwt_decode_total"
	decodeHistogram = "jwt_decode_duration_seconds"
)

// Decoder splits and decodes compact-serialized JWTs. It holds no mutable
// state and is safe for concurrent use.
type Decoder struct {
	logger         mobilecore.Logger
	metrics        mobilecore.Metrics
	tracer         mobilecore.Tracer
	maxTokenLength int
}

var defaultDecoder = &Decoder{
	logger:  mobilecore.NopLogger{},
	metrics: &mobilecore.NoopMetrics{},
	tracer:  &mobilecore.NoopTracer{},
}

// NewDecoder creates a Decoder with the provided options.
//
// Example:
//
//	d, err := jwtdecode.NewDecoder(
//	    jwtdecode.WithLogger(slog.Default()),
//	    jwtdecode.WithMaxTokenLength(8192),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewDecoder(opts ...Option) (*Decoder, error) {
	d := &Decoder{
		logger:  mobilecore.NopLogger{},
		metrics: &mobilecore.NoopMetrics{},
		tracer:  &mobilecore.NoopTracer{},
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Decode decodes token with a Decoder that has no options set.
func Decode(token string) (DecodedJWT, error) {
	return defaultDecoder.Decode(context.Background(), token)
}

// Decode splits token into its header, payload and signature segments.
//
// The header and payload are base64url-decoded and must be UTF-8 JSON with
// an object or array at the top level; they are returned as decoded, without
// re-serialization. The signature is returned exactly as it appears in the
// token and is never verified.
//
// Every failure is a *DecodeError.
func (d *Decoder) Decode(ctx context.Context, token string) (DecodedJWT, error) {
	_, span := d.tracer.StartSpan(ctx, "jwtdecode.Decode")
	defer span.End()

	start := time.Now()
	decoded, err := d.decode(token)
	duration := time.Since(start)

	result := "ok"
	if err != nil {
		result = err.Kind.String()

		span.SetAttribute("jwt.error_kind", result)
		span.RecordError(err)
		d.logger.Debug("JWT decode failed",
			"kind", result,
			"segment", string(err.Segment),
			"error", err,
			"duration", duration,
		)
	} else {
		d.logger.Debug("JWT decoded", "duration", duration)
	}

	tags := map[string]string{"result": result}
	d.metrics.IncCounter(decodeCounter, tags)
	d.metrics.ObserveHistogram(decodeHistogram, duration.Seconds(), tags)

	if err != nil {
		return DecodedJWT{}, err
	}
	return decoded, nil
}

func (d *Decoder) decode(token string) (DecodedJWT, *DecodeError) {
	if token == "" {
		return DecodedJWT{}, formatError("token is empty")
	}
	if d.maxTokenLength > 0 && len(token) > d.maxTokenLength {
		return DecodedJWT{}, formatError(fmt.Sprintf("token length %d exceeds limit of %d", len(token), d.maxTokenLength))
	}
	if dots := strings.Count(token, "."); dots != 2 {
		return DecodedJWT{}, formatError(fmt.Sprintf("expected 3 parts separated by dots, got %d", dots+1))
	}

	rawHeader, rawPayload, signature, err := jws.SplitCompactString(token)
	if err != nil {
		return DecodedJWT{}, formatError(err.Error())
	}

	header, err := decodeSegment(string(rawHeader))
	if err != nil {
		return DecodedJWT{}, base64Error(SegmentHeader, err)
	}
	payload, err := decodeSegment(string(rawPayload))
	if err != nil {
		return DecodedJWT{}, base64Error(SegmentPayload, err)
	}

	if err := validateJSON(header); err != nil {
		return DecodedJWT{}, jsonError(SegmentHeader, err)
	}
	if err := validateJSON(payload); err != nil {
		return DecodedJWT{}, jsonError(SegmentPayload, err)
	}

	return DecodedJWT{
		Header:    string(header),
		Payload:   string(payload),
		Signature: string(signature),
	}, nil
}
