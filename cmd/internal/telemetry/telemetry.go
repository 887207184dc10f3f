package telemetry

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const TracerName = "github.com/OctopusSolutionsEngineering/LandingZoneTerraform"

// Settings are read from the environment rather than flags, as they configure the tool itself and not
// the landing zone.
type Settings struct {
	Endpoint    string `env:"LZTERRA_OTEL_ENDPOINT"`
	Enabled     bool   `env:"LZTERRA_OTEL_ENABLED" envDefault:"true"`
	ServiceName string `env:"LZTERRA_OTEL_SERVICE_NAME" envDefault:"lzterra"`
}

// ParseSettings loads the telemetry settings from environment variables.
func ParseSettings() (Settings, error) {
	settings := Settings{}
	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return settings, nil
}

// Setup initialises OpenTelemetry tracing.
//
// Tracing is opt-in: when the endpoint is empty or tracing is disabled, Setup returns a no-op shutdown
// function and no global provider is registered.
//
// The returned shutdown function flushes pending spans and should be deferred by the caller.
func Setup(ctx context.Context, settings Settings) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if !settings.Enabled || settings.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(settings.Endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(settings.ServiceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	zap.L().Debug("Exporting traces to " + settings.Endpoint)

	return tp.Shutdown, nil
}

// Start starts a span with the global tracer. It is a no-op until Setup registers a provider.
func Start(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, name)
}
