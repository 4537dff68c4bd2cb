// Package telemetry records slide visits as OpenTelemetry spans.
//
// Each time the presenter lands on a slide a "slide.view" span starts; it
// ends when the presenter moves on, so span durations read as time spent
// per slide. Export is enabled only when an OTLP endpoint is configured.
package telemetry

import (
	"context"
	"strings"
	"sync"

	"pipelinedeck/internal/deck"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope of deck spans.
const TracerName = "pipelinedeck/deck"

// Config selects the OTLP export target.
type Config struct {
	Endpoint    string // host:port or full URL; empty disables export
	ServiceName string
	Insecure    bool
}

// Recorder turns slide navigation into spans. Safe for concurrent use.
type Recorder struct {
	tracer    oteltrace.Tracer
	shutdown  func(context.Context) error
	sessionID string

	mu   sync.Mutex
	span oteltrace.Span
}

// New creates a Recorder exporting over OTLP/HTTP, or a no-op Recorder when
// cfg.Endpoint is empty.
func New(ctx context.Context, cfg Config) (*Recorder, error) {
	if cfg.Endpoint == "" {
		return NewWithProvider(noop.NewTracerProvider(), nil), nil
	}

	opts := []otlptracehttp.Option{}
	if strings.Contains(cfg.Endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "pipelinedeck"
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return NewWithProvider(provider, provider.Shutdown), nil
}

// NewWithProvider creates a Recorder on an existing provider. shutdown, if
// non-nil, is called by Close.
func NewWithProvider(tp oteltrace.TracerProvider, shutdown func(context.Context) error) *Recorder {
	return &Recorder{
		tracer:    tp.Tracer(TracerName),
		shutdown:  shutdown,
		sessionID: uuid.NewString(),
	}
}

// SessionID identifies this presentation run on every span.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Visit ends the span of the previous slide and starts one for s.
func (r *Recorder) Visit(s deck.Slide) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.span != nil {
		r.span.End()
	}
	_, r.span = r.tracer.Start(context.Background(), "slide.view",
		oteltrace.WithAttributes(
			attribute.Int("slide.index", int(s.ID)),
			attribute.String("slide.name", s.ID.String()),
			attribute.String("slide.title", s.Title),
			attribute.String("session.id", r.sessionID),
		),
	)
}

// Fullscreen records a confirmed fullscreen change on the open span.
func (r *Recorder) Fullscreen(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.span == nil {
		return
	}
	r.span.AddEvent("fullscreen.changed", oteltrace.WithAttributes(attribute.Bool("fullscreen", active)))
}

// Close ends the open span and flushes the exporter.
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if r.span != nil {
		r.span.End()
		r.span = nil
	}
	r.mu.Unlock()
	if r.shutdown == nil {
		return nil
	}
	return r.shutdown(ctx)
}
