// Package tracing provides OpenTelemetry tracing for the Notion CMS MCP server.
// It configures trace exporters and provides utilities for creating spans.
package tracing

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	TracerName = "notion-cms-mcp-server"
)

// Config holds tracing configuration
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Enabled        bool
	OTLPEndpoint   string // If set, uses OTLP exporter; otherwise stdout
	SampleRate     float64
}

// DefaultConfig returns sensible defaults for tracing
func DefaultConfig() Config {
	return Config{
		ServiceName:    "notion-cms-mcp-server",
		ServiceVersion: "1.0.0",
		Environment:    getEnvOrDefault("OTEL_ENVIRONMENT", "development"),
		Enabled:        os.Getenv("OTEL_ENABLED") == "true" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "",
		OTLPEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		SampleRate:     1.0,
	}
}

// Setup initializes OpenTelemetry tracing and returns a shutdown function
func Setup(ctx context.Context, config Config) (func(context.Context) error, error) {
	if !config.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	// Stdout is stdio's MCP channel, so the fallback exporter writes to stderr
	var exporter sdktrace.SpanExporter
	if config.OTLPEndpoint != "" {
		exporter, err = otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(config.OTLPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	} else {
		exporter, err = stdouttrace.New(
			stdouttrace.WithWriter(os.Stderr),
			stdouttrace.WithPrettyPrint(),
		)
	}
	if err != nil {
		return nil, err
	}

	var sampler sdktrace.Sampler
	if config.SampleRate >= 1.0 {
		sampler = sdktrace.AlwaysSample()
	} else if config.SampleRate <= 0 {
		sampler = sdktrace.NeverSample()
	} else {
		sampler = sdktrace.TraceIDRatioBased(config.SampleRate)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// Tracer returns the named tracer for the server
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// StartSpan starts a new span with the given name and returns the context and span
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, opts...)
}

// StartToolSpan starts the server span for one MCP tool call.
func StartToolSpan(ctx context.Context, toolName, category string, readOnly bool) (context.Context, trace.Span) {
	return StartSpan(ctx, "mcp.tool."+toolName,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("mcp.tool.name", toolName),
			attribute.String("mcp.tool.category", category),
			attribute.Bool("mcp.tool.readonly", readOnly),
		))
}

// StartContentSpan starts the client span for one content API request.
func StartContentSpan(ctx context.Context, namespace, apiPath, operation string) (context.Context, trace.Span) {
	return StartSpan(ctx, "cms."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(contentAttributes(namespace, apiPath, operation)...))
}

// StartBatchSpan starts the parent span of a batch fetch. Each per-slug
// request started from the returned context becomes its child.
func StartBatchSpan(ctx context.Context, namespace, apiPath string, size int) (context.Context, trace.Span) {
	attrs := append(contentAttributes(namespace, apiPath, "batch"), attribute.Int("cms.batch.size", size))
	return StartSpan(ctx, "cms.batch", trace.WithAttributes(attrs...))
}

// AddResponseAttributes records the HTTP status and body size of a response.
func AddResponseAttributes(span trace.Span, statusCode, bodyBytes int) {
	span.SetAttributes(
		attribute.Int("http.response.status_code", statusCode),
		attribute.Int("http.response.body.size", bodyBytes),
	)
}

// AddBatchFailure marks which element of a batch failed first.
func AddBatchFailure(span trace.Span, index int, slug string) {
	span.SetAttributes(
		attribute.Int("cms.batch.failed_index", index),
		attribute.String("cms.batch.failed_slug", slug),
	)
}

// Finish sets the span status from err. It does not end the span.
func Finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

func contentAttributes(namespace, apiPath, operation string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("cms.namespace", namespace),
		attribute.String("cms.api_path", apiPath),
		attribute.String("cms.operation", operation),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
