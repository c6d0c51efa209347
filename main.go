package main

import (
	"context"
	"flag"
	"image"
	"log"

	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/fonts"
	"github.com/automoto/cryptcrawl/scenes"
	"github.com/automoto/cryptcrawl/systems"
	"github.com/automoto/cryptcrawl/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(tracer trace.Tracer) *Game {
	loadFonts()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewCryptScene(g, tracer)
	} else {
		g.scene = scenes.NewTitleScene(g, tracer)
	}

	return g
}

func loadFonts() {
	must := func(err error) {
		if err != nil {
			log.Fatalf("Failed to load fonts: %v", err)
		}
	}
	must(fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, 12))
	must(fonts.LoadFontWithSize(fonts.Bold, gobold.TTF, 14))
	must(fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 24))
	must(fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 9))
}

func (g *Game) Update() error {
	g.scene.Update()
	if systems.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "start in the dungeon")
	flag.Int64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "random seed for encounters (0 = clock)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	tracer := telemetry.NoopTracer()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(context.Background())
		if err != nil {
			log.Printf("Warning: Could not set up telemetry: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Telemetry shutdown: %v", err)
				}
			}()
			tracer = telemetry.Tracer("crawl")
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved := systems.LoadSettings(); saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(tracer)); err != nil {
		log.Print(err)
	}
}
