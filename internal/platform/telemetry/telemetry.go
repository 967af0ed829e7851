// Package telemetry provides OpenTelemetry tracer and meter initialization
// with support for stdout (development) and OTLP/HTTP (production) exporters,
// and the command metrics recorded by the application layer.
//
// Tracer initialization:
//
//	tp, err := telemetry.InitTracer(ctx, "ticketcore", telemetry.ExporterStdout, "")
//	defer tp.Shutdown(ctx)
//
// Meter initialization:
//
//	mp, err := telemetry.InitMeter(ctx, "ticketcore", telemetry.ExporterStdout, "")
//	defer mp.Shutdown(ctx)
//
// Pre-registered metrics:
//
//	metrics, err := telemetry.NewMetrics(mp)
//	metrics.RecordCommand(ctx, "MoveTicket", telemetry.ResultOK, elapsed)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporters.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ScopeName is the instrumentation scope of the module's tracers and meters.
const ScopeName = "github.com/jsamuelsen11/ticketcore"

// Attribute keys for metric labels and span attributes.
var (
	AttrCommand   = attribute.Key("ticketcore.command")
	AttrResult    = attribute.Key("result")
	AttrEventType = attribute.Key("ticketcore.event.type")
	AttrProjectID = attribute.Key("ticketcore.project.id")
	AttrTicketID  = attribute.Key("ticketcore.ticket.id")
)

// Values of AttrResult.
const (
	ResultOK    = "ok"
	ResultNoop  = "noop"
	ResultError = "error"
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	CommandTotal          metric.Int64Counter
	CommandDuration       metric.Float64Histogram
	ConflictRetries       metric.Int64Counter
	ActivityWriteFailures metric.Int64Counter
}

// Option configures InitTracer and InitMeter.
type Option func(*options)

type options struct {
	writer io.Writer
}

// WithWriter sets where the stdout exporters write. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

func buildOptions(opts []Option) *options {
	o := &options{writer: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// InitTracer creates and registers a global TracerProvider.
//
// The exporter parameter selects the span exporter: ExporterOTLP uses
// OTLP/HTTP with the given endpoint; ExporterStdout uses a pretty-printed
// writer exporter for development. Any other value is an error.
//
// The returned TracerProvider must be shut down when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string, opts ...Option) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint, buildOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider.
//
// Exporter selection follows InitTracer.
//
// The returned MeterProvider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string, opts ...Option) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint, buildOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics creates the command metric instruments using the given
// MeterProvider. The meter is scoped to the module path.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(ScopeName)

	total, err := meter.Int64Counter(
		"ticketcore.command.total",
		metric.WithDescription("Number of executed commands"),
		metric.WithUnit("{command}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticketcore.command.total: %w", err)
	}

	duration, err := meter.Float64Histogram(
		"ticketcore.command.duration",
		metric.WithDescription("Duration of commands including persistence"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticketcore.command.duration: %w", err)
	}

	retries, err := meter.Int64Counter(
		"ticketcore.command.conflict_retries",
		metric.WithDescription("Number of commands re-run after a write conflict"),
		metric.WithUnit("{retry}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticketcore.command.conflict_retries: %w", err)
	}

	failures, err := meter.Int64Counter(
		"ticketcore.activity.write_failures",
		metric.WithDescription("Number of activity events that could not be persisted"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticketcore.activity.write_failures: %w", err)
	}

	return &Metrics{
		CommandTotal:          total,
		CommandDuration:       duration,
		ConflictRetries:       retries,
		ActivityWriteFailures: failures,
	}, nil
}

// RecordCommand records one command execution.
func (m *Metrics) RecordCommand(ctx context.Context, command, result string, elapsed time.Duration) {
	attrs := metric.WithAttributes(AttrCommand.String(command), AttrResult.String(result))
	m.CommandTotal.Add(ctx, 1, attrs)
	m.CommandDuration.Record(ctx, elapsed.Seconds(), attrs)
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string, o *options) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint(), stdouttrace.WithWriter(o.writer))
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string, o *options) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		return stdoutmetric.New(stdoutmetric.WithWriter(o.writer))
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

// hostPort extracts the host:port from a URL string
// (e.g., "http://otel-collector:4318" -> "otel-collector:4318").
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

// isHTTPS returns true if the endpoint URL uses the https scheme.
func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == "https"
}
