package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/stylecache/internal/adapters/telemetry"
	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_Span(t *testing.T) {
	t.Parallel()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer(tp)

	_, span := tracer.Start(context.Background(), "ensure_compiled")
	span.SetAttribute(domain.AttrHandle, domain.Handle("main"))
	span.SetAttribute(domain.AttrRebuild, true)
	span.SetAttribute("count", 3)
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("paths", []string{"a", "b"})
	span.SetAttribute("other", struct{ X int }{1})
	span.RecordError(errors.New("boom"))
	span.RecordError(nil)
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	s := ended[0]
	assert.Equal(t, "ensure_compiled", s.Name())
	assert.Equal(t, codes.Error, s.Status().Code)
	assert.Equal(t, "boom", s.Status().Description)
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String(domain.AttrHandle, "main"),
		attribute.Bool(domain.AttrRebuild, true),
		attribute.Int("count", 3),
		attribute.Float64("ratio", 0.5),
		attribute.StringSlice("paths", []string{"a", "b"}),
		attribute.String("other", "{1}"),
	}, s.Attributes())
}

func TestLoggingTracer_LogsFinishedSpans(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("span ensure_compiled", "duration", gomock.Any(), domain.AttrReason, "stale").Times(1)

	tracer := telemetry.NewLoggingTracer(log)
	_, span := tracer.Start(context.Background(), "ensure_compiled")
	span.SetAttribute(domain.AttrReason, "stale")
	span.End()

	require.NoError(t, tracer.Shutdown(context.Background()))
}

func TestLoggingTracer_LogsErrorStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("span compile", "duration", gomock.Any(), "error", "failed").Times(1)

	tracer := telemetry.NewLoggingTracer(log)
	_, span := tracer.Start(context.Background(), "compile")
	span.RecordError(errors.New("failed"))
	span.End()

	require.NoError(t, tracer.Shutdown(context.Background()))
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "noop")
	assert.Equal(t, ctx, got)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestOTelTracer_ShutdownWithoutOwnership(t *testing.T) {
	t.Parallel()

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	assert.NoError(t, telemetry.NewOTelTracer(tp).Shutdown(context.Background()))
}
