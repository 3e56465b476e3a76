package telemetry

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/stylecache/internal/core/ports"
)

// NewLoggingTracer creates an SDK provider that reports spans through logger and
// returns a tracer owning it.
func NewLoggingTracer(logger ports.Logger) *OTelTracer {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogBridge(logger)),
	)
	t := NewOTelTracer(tp)
	t.shutdown = tp.Shutdown
	return t
}
