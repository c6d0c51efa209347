package telemetry

import (
	"context"

	"github.com/automoto/cryptcrawl/config"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Run traces one descent: a "crawl.run" span with a child
// "battle.encounter" span per fight.
type Run struct {
	tracer    trace.Tracer
	ctx       context.Context
	run       trace.Span
	encounter trace.Span
	ended     bool
}

// StartRun opens the run span for a level.
func StartRun(ctx context.Context, tracer trace.Tracer, level string) *Run {
	ctx, span := tracer.Start(ctx, "crawl.run")
	span.SetAttributes(attribute.String("level", level))
	return &Run{tracer: tracer, ctx: ctx, run: span}
}

// BeginEncounter opens an encounter span. An encounter still open is
// ended first.
func (r *Run) BeginEncounter(kind config.FoeKind, x, y int) {
	if r.ended {
		return
	}
	r.EndEncounter("abandoned", 0)

	_, span := r.tracer.Start(r.ctx, "battle.encounter")
	span.SetAttributes(
		attribute.String("foe", kind.String()),
		attribute.Int("cell.x", x),
		attribute.Int("cell.y", y),
	)
	r.encounter = span
}

// EndEncounter closes the open encounter span, if any.
func (r *Run) EndEncounter(result string, health int) {
	if r.encounter == nil {
		return
	}
	r.encounter.SetAttributes(
		attribute.String("result", result),
		attribute.Int("player.health", health),
	)
	if result == "lost" {
		r.encounter.SetStatus(codes.Error, "party defeated")
	}
	r.encounter.End()
	r.encounter = nil
}

// InEncounter reports whether an encounter span is open.
func (r *Run) InEncounter() bool { return r.encounter != nil }

// End closes the run with its totals. Later calls do nothing.
func (r *Run) End(steps, victories int) {
	if r.ended {
		return
	}
	r.EndEncounter("abandoned", 0)
	r.run.SetAttributes(
		attribute.Int("steps", steps),
		attribute.Int("victories", victories),
	)
	r.run.End()
	r.ended = true
}
