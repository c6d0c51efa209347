package systems

import (
	"log"
	"time"

	"github.com/automoto/cryptcrawl/battle"
	"github.com/automoto/cryptcrawl/components"
	cfg "github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/crawl"
	"github.com/automoto/cryptcrawl/services"
	"github.com/automoto/cryptcrawl/tick"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GameOverSceneCreator builds the scene shown after the party falls
type GameOverSceneCreator func(steps, victories int) interface{}

// NewUpdateSession creates the system that drives the crawl session on a
// semi-fixed timestep and leaves for the game over scene when it ends.
func NewUpdateSession(sceneChanger SceneChanger, createGameOver GameOverSceneCreator) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Session.First(e.World)
		if !ok {
			return
		}
		data := components.Session.Get(entry)
		if data.Over {
			return
		}

		input := getOrCreateInput(e)
		var in services.Input = input
		fallback := 1 / float64(ebiten.TPS())

		data.Stepper.AdvanceTo(time.Now(), fallback, func(t tick.Time) {
			if data.Over {
				return
			}
			trackOutcome(data, data.Session.Update(t, in))
			// Catch-up ticks see the keys as held, not freshly pressed
			in = heldOnly{input}
		})

		if data.Over {
			steps := data.Session.Explorer.Steps
			record := RecordRun(data.Victories, steps)
			log.Printf("Run over after %d steps, %d victories (best %d steps over %d runs)",
				steps, data.Victories, record.MostSteps, record.Runs)
			sceneChanger.ChangeScene(createGameOver(steps, data.Victories))
		}
	}
}

// trackOutcome feeds one tick's session events to the run trace.
func trackOutcome(data *components.SessionData, out crawl.Outcome) {
	s := data.Session
	if out.BattleStarted != cfg.FoeNone {
		c := s.Explorer.Cell
		data.Trace.BeginEncounter(out.BattleStarted, c.X, c.Y)
	}
	if out.BattleEnded {
		data.Trace.EndEncounter(out.Result.String(), s.Player.Health)
		if out.Result == battle.Won {
			data.Victories++
		}
	}
	if out.GameOver {
		data.Trace.End(s.Explorer.Steps, data.Victories)
		data.Over = true
	}
}

// heldOnly reports held actions but no edges.
type heldOnly struct {
	services.Input
}

func (heldOnly) JustPressed(cfg.ActionID) bool  { return false }
func (heldOnly) JustReleased(cfg.ActionID) bool { return false }

// resyncSession drops the wall-clock time spent outside the session system.
func resyncSession(e *ecs.ECS) {
	if entry, ok := components.Session.First(e.World); ok {
		components.Session.Get(entry).Stepper.Resync()
	}
}

// EndSession closes the run trace of a scene being left early.
func EndSession(e *ecs.ECS) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	data := components.Session.Get(entry)
	data.Trace.End(data.Session.Explorer.Steps, data.Victories)
}
