package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/cryptcrawl/archetypes"
	"github.com/automoto/cryptcrawl/components"
	cfg "github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.opentelemetry.io/otel/trace"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	tracer       trace.Tracer
	steps        int
	victories    int
	once         sync.Once
}

// NewGameOverScene creates a new game over scene for a finished run
func NewGameOverScene(sc SceneChanger, tracer trace.Tracer, steps, victories int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, tracer: tracer, steps: steps, victories: victories}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createCryptScene := func() interface{} {
		return NewCryptScene(gs.sceneChanger, gs.tracer)
	}
	createTitleScene := func() interface{} {
		return NewTitleScene(gs.sceneChanger, gs.tracer)
	}

	entry := archetypes.GameOver.Spawn(gs.ecs)
	components.GameOver.SetValue(entry, components.GameOverData{
		SelectedOption: components.GameOverRetry,
		Steps:          gs.steps,
		Victories:      gs.victories,
	})

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createCryptScene, createTitleScene))

	gs.ecs.AddRenderer(components.LayerWorld, systems.DrawGameOver)

	systems.PlayMusic(gs.ecs, cfg.TrackGameOver)
}
