package factory

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/automoto/cryptcrawl/archetypes"
	"github.com/automoto/cryptcrawl/components"
	cfg "github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/crawl"
	"github.com/automoto/cryptcrawl/dungeon"
	"github.com/automoto/cryptcrawl/services"
	"github.com/automoto/cryptcrawl/telemetry"
	"github.com/automoto/cryptcrawl/tick"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.opentelemetry.io/otel/trace"
)

// CreateSession loads the named level and spawns the crawl session entity.
func CreateSession(ecs *ecs.ECS, levelName string, audio services.Audio, tracer trace.Tracer) (*donburi.Entry, error) {
	level, err := dungeon.LoadLevel(levelName)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{
		Session: crawl.New(level, audio, newRNG()),
		Stepper: tick.NewStepper(cfg.Step.MaxStep, cfg.Step.MaxFrame),
		Trace:   telemetry.StartRun(context.Background(), tracer, level.Name),
	})
	return entry, nil
}

// newRNG seeds from the debug seed, or the clock when none was given.
func newRNG() *rand.Rand {
	seed := uint64(cfg.Debug.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1))
}
