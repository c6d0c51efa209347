package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/cryptcrawl/components"
	cfg "github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/systems"
	"github.com/automoto/cryptcrawl/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.opentelemetry.io/otel/trace"
)

// CryptScene runs one crawl through the dungeon
type CryptScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	tracer       trace.Tracer
	once         sync.Once
}

// NewCryptScene creates a new crawl scene
func NewCryptScene(sc SceneChanger, tracer trace.Tracer) *CryptScene {
	return &CryptScene{sceneChanger: sc, tracer: tracer}
}

func (cs *CryptScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()
}

func (cs *CryptScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CryptScene) configure() {
	systems.PreloadAllSFX()

	cs.ecs = ecs.NewECS(donburi.NewWorld())

	createGameOver := func(steps, victories int) interface{} {
		return NewGameOverScene(cs.sceneChanger, cs.tracer, steps, victories)
	}

	cs.ecs.AddSystem(systems.UpdateAudio)
	cs.ecs.AddSystem(systems.UpdateInput)
	cs.ecs.AddSystem(systems.UpdatePause)
	cs.ecs.AddSystem(systems.WithPauseCheck(systems.NewUpdateSession(cs.sceneChanger, createGameOver)))

	if _, err := factory.CreateSession(cs.ecs, cfg.Explore.Level, systems.NewAudio(cs.ecs), cs.tracer); err != nil {
		log.Printf("Failed to start crawl in level %q: %v", cfg.Explore.Level, err)
		cs.sceneChanger.ChangeScene(NewTitleScene(cs.sceneChanger, cs.tracer))
		return
	}

	cs.ecs.AddRenderer(components.LayerWorld, systems.DrawExplore)
	cs.ecs.AddRenderer(components.LayerWorld, systems.DrawBattle)
	cs.ecs.AddRenderer(components.LayerHUD, systems.DrawHUD)
	cs.ecs.AddRenderer(components.LayerOverlay, systems.DrawFader)
	cs.ecs.AddRenderer(components.LayerOverlay, systems.DrawPause)
}
