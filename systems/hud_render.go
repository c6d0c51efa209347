package systems

import (
	"image/color"

	"github.com/automoto/cryptcrawl/components"
	cfg "github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/fonts"
	"github.com/automoto/cryptcrawl/hud"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	healthBack = color.RGBA{R: 60, G: 10, B: 10, A: 255}
	hurtTint   = color.RGBA{R: 255, G: 90, B: 90, A: 255}
)

// DrawHUD renders the mugshot, health, pop-up text and dialog box.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(entry).Session
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	if s.InBattle() {
		drawMugshot(screen, s.Mugshot, float64(s.Player.Health)/float64(s.Player.MaxHealth), height)
	}
	drawPopup(screen, s.Popup, width, height)
	drawDialog(screen, s.Dialog, width, height)
}

func drawMugshot(screen *ebiten.Image, m *hud.Mugshot, health, height float64) {
	size := cfg.Mugshot.Size
	x := 8 + m.Offset
	y := height - size - 8

	skin := cfg.Bone
	if m.Hurt {
		skin = hurtTint
	}
	vector.FillRect(screen, float32(x), float32(y), float32(size), float32(size), skin, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 2, cfg.Stone, false)

	eye := float32(size / 8)
	vector.FillRect(screen, float32(x+size*0.25), float32(y+size*0.35), eye, eye, cfg.Black, false)
	vector.FillRect(screen, float32(x+size*0.65), float32(y+size*0.35), eye, eye, cfg.Black, false)
	mouthH := float32(2)
	if m.Hurt {
		mouthH = eye
	}
	vector.FillRect(screen, float32(x+size*0.3), float32(y+size*0.7), float32(size*0.4), mouthH, cfg.Black, false)

	// Health bar beside the portrait
	bx, by := float32(x+size+8), float32(y+size-10)
	vector.FillRect(screen, bx, by, 100, 8, healthBack, false)
	vector.FillRect(screen, bx, by, float32(100*health), 8, cfg.LightRed, false)
}

func drawPopup(screen *ebiten.Image, p *hud.Popup, width, height float64) {
	if !p.Visible() || p.Scale <= 0 {
		return
	}
	c := cfg.Popup.TextColor
	if p.Critical {
		c = cfg.Popup.CritColor
	}
	drawScaledText(screen, p.Text, fonts.Title.Get(), width/2, height*0.3, p.Scale, c)
}

func drawDialog(screen *ebiten.Image, d *hud.Dialog, width, height float64) {
	if !d.IsOpen() {
		return
	}
	pad := cfg.Dialog.BoxPadding
	boxH := cfg.Dialog.BoxHeight
	top := height - boxH - pad

	vector.FillRect(screen, float32(pad), float32(top), float32(width-2*pad), float32(boxH), cfg.Dialog.BoxColor, false)
	vector.StrokeRect(screen, float32(pad), float32(top), float32(width-2*pad), float32(boxH), 1, cfg.Bone, false)

	face := fonts.Regular.Get()
	lineH := face.Metrics().Height.Ceil()
	for i, line := range wrapText(d.Visible(), face, int(width-4*pad)) {
		y := int(top+pad) + (i+1)*lineH
		text.Draw(screen, line, face, int(2*pad), y, cfg.Dialog.TextColor)
	}

	if d.Waiting() {
		arrow := ">"
		text.Draw(screen, arrow, face, int(width-3*pad), int(top+boxH-pad), cfg.BrightOrange)
	}
}

// DrawFader covers the screen during scene transitions.
func DrawFader(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	f := components.Session.Get(entry).Session.Fader
	if f.Alpha() <= 0 {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), withAlpha(cfg.Fader.Color, f.Alpha()), false)
}
