package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/cryptcrawl/archetypes"
	"github.com/automoto/cryptcrawl/components"
	cfg "github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/systems"
	"github.com/automoto/cryptcrawl/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.opentelemetry.io/otel/trace"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TitleScene displays the title menu
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	tracer       trace.Tracer
	titleUI      *ui.TitleUI
	record       systems.SavedRecord
	once         sync.Once
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger, tracer trace.Tracer) *TitleScene {
	return &TitleScene{sceneChanger: sc, tracer: tracer}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())
	ts.record = systems.LoadRecord()
	archetypes.Menu.Spawn(ts.ecs)

	actions := systems.MenuActions{
		components.TitleDescend: func() {
			systems.PlaySFX(ts.ecs, cfg.SoundMenuSelect)
			ts.sceneChanger.ChangeScene(NewCryptScene(ts.sceneChanger, ts.tracer))
		},
		components.TitleSound: func() {
			systems.CycleVolume(ts.ecs)
		},
		components.TitleExit: func() {
			systems.SaveCurrentSettings()
			systems.RequestQuit()
		},
	}
	ts.titleUI = ui.NewTitleUI(actions)

	// Audio system (runs first to initialize audio context)
	ts.ecs.AddSystem(systems.UpdateAudio)

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.NewUpdateMenu(actions))
	ts.ecs.AddSystem(ts.updateUI)

	ts.ecs.AddRenderer(components.LayerWorld, ts.drawUI)

	systems.PlayMusic(ts.ecs, cfg.TrackTitle)
}

func (ts *TitleScene) updateUI(e *ecs.ECS) {
	menu := systems.GetOrCreateMenu(e)
	ts.titleUI.UpdateUI(menu.SelectedIndex, systems.GetInputMethod(e), ts.record)
	ts.titleUI.UI.Update()
}

func (ts *TitleScene) drawUI(_ *ecs.ECS, screen *ebiten.Image) {
	ts.titleUI.UI.Draw(screen)
}
