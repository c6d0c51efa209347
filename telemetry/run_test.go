package telemetry

import (
	"context"
	"testing"

	"github.com/automoto/cryptcrawl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTestTracer(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exporter, tp
}

func attrs(s tracetest.SpanStub) map[string]any {
	m := make(map[string]any)
	for _, kv := range s.Attributes {
		m[string(kv.Key)] = kv.Value.AsInterface()
	}
	return m
}

func TestRunRecordsEncounters(t *testing.T) {
	exporter, tp := setupTestTracer(t)
	run := StartRun(context.Background(), tp.Tracer("test"), "crypt")

	run.BeginEncounter(config.FoeWraith, 10, 5)
	assert.True(t, run.InEncounter())
	run.EndEncounter("won", 7)
	assert.False(t, run.InEncounter())

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "battle.encounter", spans[0].Name)
	a := attrs(spans[0])
	assert.Equal(t, "wraith", a["foe"])
	assert.Equal(t, int64(10), a["cell.x"])
	assert.Equal(t, "won", a["result"])
	assert.Equal(t, int64(7), a["player.health"])

	run.End(42, 1)
	spans = exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "crawl.run", spans[1].Name)
	assert.Equal(t, int64(42), attrs(spans[1])["steps"])
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())
}

func TestLostEncounterIsAnError(t *testing.T) {
	exporter, tp := setupTestTracer(t)
	run := StartRun(context.Background(), tp.Tracer("test"), "crypt")

	run.BeginEncounter(config.FoeGolem, 1, 7)
	run.EndEncounter("lost", 0)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestEndClosesOpenEncounterOnce(t *testing.T) {
	exporter, tp := setupTestTracer(t)
	run := StartRun(context.Background(), tp.Tracer("test"), "crypt")

	run.BeginEncounter(config.FoeSkeleton, 5, 3)
	run.End(3, 0)
	run.End(9, 9)
	run.BeginEncounter(config.FoeSkeleton, 5, 3)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "abandoned", attrs(spans[0])["result"])
	assert.False(t, run.InEncounter())
}

func TestNoopTracer(t *testing.T) {
	run := StartRun(context.Background(), NoopTracer(), "crypt")
	run.BeginEncounter(config.FoeSkeleton, 1, 1)
	run.EndEncounter("fled", 3)
	run.End(1, 0)
}
