// Package host assembles the default binding registry for the shared
// library from configuration.
package host

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"github.com/mhlabs/mobilecore"
	"github.com/mhlabs/mobilecore/binding"
	"github.com/mhlabs/mobilecore/calculator"
	"github.com/mhlabs/mobilecore/internal/config"
	"github.com/mhlabs/mobilecore/jwtdecode"
)

// NewLogger builds a logrus logger writing to out.
func NewLogger(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}
	return logger, nil
}

// TracerName names the OpenTelemetry tracer used for decoder spans.
const TracerName = "github.com/mhlabs/mobilecore"

// NewRegistry builds a registry whose calculators and decoder share one
// logger and, when enabled, one Prometheus registerer. With tracing enabled
// the decoder records spans through the global OpenTelemetry provider.
func NewRegistry(cfg *config.Config, out io.Writer, registerer prometheus.Registerer) (*binding.Registry, error) {
	logrusLogger, err := NewLogger(cfg.Log, out)
	if err != nil {
		return nil, err
	}
	logger := mobilecore.NewLogrusLogger(logrusLogger)

	var metrics mobilecore.Metrics = &mobilecore.NoopMetrics{}
	if cfg.Metrics.Enabled {
		metrics = mobilecore.NewPrometheusMetrics(registerer)
	}

	var tracer mobilecore.Tracer = &mobilecore.NoopTracer{}
	if cfg.Tracing.Enabled {
		tracer = mobilecore.NewOpenTelemetryTracer(otel.Tracer(TracerName))
	}

	decoder, err := jwtdecode.NewDecoder(
		jwtdecode.WithLogger(logger),
		jwtdecode.WithMetrics(metrics),
		jwtdecode.WithTracer(tracer),
		jwtdecode.WithMaxTokenLength(cfg.JWT.MaxTokenLength),
	)
	if err != nil {
		return nil, err
	}

	return binding.NewRegistry(
		binding.WithLogger(logger),
		binding.WithMetrics(metrics),
		binding.WithDecoder(decoder),
		binding.WithCalculatorOptions(
			calculator.WithLogger(logger),
			calculator.WithMetrics(metrics),
		),
	)
}

// InstallDefault loads configuration from the environment and installs the
// resulting registry as the binding default. On failure the existing default
// stays in place and the error is logged to out.
func InstallDefault(out io.Writer) error {
	log := logrus.New()
	log.SetOutput(out)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Warn("mobilecore: loading config failed, using defaults")
		return err
	}

	r, err := NewRegistry(cfg, out, nil)
	if err != nil {
		log.WithError(err).Warn("mobilecore: building registry failed, using defaults")
		return err
	}
	binding.SetDefault(r)
	return nil
}
