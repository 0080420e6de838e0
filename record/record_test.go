package record

import (
	"context"
	"testing"
	"time"

	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPromRecorder(t *testing.T) {
	factory := NewPromRecorderFactory("lock_acquire_wait")
	reg := prometheus.NewRegistry()
	factory.MustRegister(reg)

	rec, _ := factory.ActionRecorder(context.Background(), "shared-state")
	rec.Commit(nil, DurationField("wait", time.Millisecond))

	rec, _ = factory.ActionRecorder(context.Background(), "shared-state")
	rec.Commit(errors.New("guard: acquire timed out"))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "lock_acquire_wait", families[0].GetName())
	assert.Len(t, families[0].GetMetric(), 2) // err=false and err=true series
}

func TestLoggerRecorder(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	factory := NewLoggerRecorderFactory(zap.New(core), false, "lock acquire")

	rec, _ := factory.ActionRecorder(context.Background(), "shared-state")
	rec.Commit(nil)
	assert.Equal(t, 0, logs.Len(), "successful attempts suppressed unless recordNoErr")

	rec, _ = factory.ActionRecorder(context.Background(), "shared-state", StringField("owner", "worker-1"))
	rec.Commit(errors.New("guard: acquire timed out"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zap.ErrorLevel, entry.Level)
	assert.Equal(t, "lock acquire", entry.Message)
	assert.Equal(t, "shared-state", entry.ContextMap()["name"])
	assert.Equal(t, "worker-1", entry.ContextMap()["owner"])
}

func TestTracerRecorder(t *testing.T) {
	tracer := mocktracer.New()
	factory := NewTracerFactory(tracer)

	rec, _ := factory.ActionRecorder(context.Background(), "shared-state")
	rec.Commit(errors.New("guard: acquire timed out"), BoolField("held", false))

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "shared-state", spans[0].OperationName)
	assert.Equal(t, true, spans[0].Tag("err"))
	assert.Equal(t, "false", spans[0].Tag("held"))
}

func TestChainFactory(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tracer := mocktracer.New()
	factory := ChainFactory(
		NewLoggerRecorderFactory(zap.New(core), true, "lock acquire"),
		NewTracerFactory(tracer),
	)

	rec, _ := factory.ActionRecorder(context.Background(), "shared-state")
	rec.Commit(nil)

	assert.Equal(t, 1, logs.Len())
	assert.Len(t, tracer.FinishedSpans(), 1)
}

func TestSkipRecorder(t *testing.T) {
	Skip().Commit(errors.New("ignored"))
}
