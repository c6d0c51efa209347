package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/cryptcrawl/battle"
	"github.com/automoto/cryptcrawl/components"
	cfg "github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/fonts"
	"github.com/automoto/cryptcrawl/foe"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	foeAnchorY  = 140 // screen y of the foe's feet
	foeWidth    = 72
	foeHeight   = 110
	barWidth    = 280
	barHeight   = 10
	barBottom   = 24
	bulletStart = 4
	bulletGrow  = 12
)

var (
	arenaColor = color.RGBA{R: 24, G: 14, B: 20, A: 255}
	laneColor  = color.RGBA{R: 70, G: 50, B: 60, A: 255}
	barColor   = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	eyeColor   = color.RGBA{R: 255, G: 60, B: 30, A: 255}
)

// DrawBattle renders the encounter: the foe, its bullets, the lanes and the
// crosshair bar.
func DrawBattle(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(entry).Session
	if !s.InBattle() {
		return
	}
	b := s.Battle

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), arenaColor, false)

	// Dodging to a side lane slides the world the other way
	cx := width/2 - b.Dodge.Offset

	for lane := -1; lane <= 1; lane++ {
		x := cx + float64(lane)*cfg.Dodge.LaneWidth
		vector.FillRect(screen, float32(x-20), float32(height-barBottom-40), 40, 6, laneColor, false)
	}

	if b.Foe != nil {
		drawFoe(screen, b.Foe, cx)
		drawBullets(screen, b.Foe, cx)
	}

	drawCrosshair(screen, b.Crosshair, width, height)
	drawBattlePrompt(e, screen, b, width, height)
}

func drawFoe(screen *ebiten.Image, f *foe.Foe, cx float64) {
	x := cx + f.Offset.X + f.ShakeOffset - foeWidth/2
	y := foeAnchorY + f.Offset.Y - foeHeight

	body := f.Config.TintColor
	switch {
	case f.Flash:
		body = cfg.White
	case f.Frame == foe.FrameDead:
		body = shade(body, 0.4)
	case f.Frame == foe.FrameHurt:
		body = shade(body, 0.75)
	}

	vector.FillRect(screen, float32(x), float32(y), foeWidth, foeHeight, body, false)

	// Arms rise while winding up and thrust out while attacking
	armY := y + foeHeight*0.35
	armLen := 16.0
	switch f.Frame {
	case foe.FrameWindUp:
		armY = y + 4
	case foe.FrameAttack:
		armLen = 30
	}
	vector.FillRect(screen, float32(x-armLen), float32(armY), float32(armLen), 10, body, false)
	vector.FillRect(screen, float32(x+foeWidth), float32(armY), float32(armLen), 10, body, false)

	if f.Frame != foe.FrameDead {
		vector.FillRect(screen, float32(x+18), float32(y+22), 10, 8, eyeColor, false)
		vector.FillRect(screen, float32(x+foeWidth-28), float32(y+22), 10, 8, eyeColor, false)
	}

	// Health pips
	face := fonts.Small.Get()
	label := fmt.Sprintf("%s  %d/%d", f.Config.Name, max(f.Health, 0), f.Config.Health)
	text.Draw(screen, label, face, int(x), int(y-10), cfg.Bone)
}

func drawBullets(screen *ebiten.Image, f *foe.Foe, cx float64) {
	for _, b := range f.Bullets {
		r := bulletStart + bulletGrow*b.Closeness
		x := cx + b.Pos.X
		y := foeAnchorY + b.Pos.Y
		vector.FillCircle(screen, float32(x), float32(y), float32(r), cfg.Orange, true)
	}
}

func drawCrosshair(screen *ebiten.Image, c *battle.Crosshair, width, height float64) {
	switch c.State() {
	case battle.Aiming, battle.Targeting, battle.Missing, battle.CountingDown:
	default:
		return
	}

	left := (width - barWidth) / 2
	top := height - barBottom
	toX := func(v float64) float32 { return float32(left + (v+1)/2*barWidth) }

	vector.FillRect(screen, float32(left), float32(top), barWidth, barHeight, barColor, false)
	hit, crit := c.HitRange(), c.CritRange()
	vector.FillRect(screen, toX(hit.Min), float32(top), toX(hit.Max)-toX(hit.Min), barHeight, cfg.DarkBlue, false)
	vector.FillRect(screen, toX(crit.Min), float32(top), toX(crit.Max)-toX(crit.Min), barHeight, cfg.BrightOrange, false)

	if c.State() == battle.CountingDown {
		// Fill the bar as the countdown runs out
		vector.FillRect(screen, float32(left), float32(top+barHeight+2), float32(barWidth*c.Progress()), 3, cfg.Bone, false)
		return
	}

	marker := cfg.White
	switch c.State() {
	case battle.Targeting:
		marker = cfg.BrightGreen
	case battle.Missing:
		marker = cfg.Red
	}
	x := toX(c.Aim)
	vector.FillRect(screen, x-2, float32(top-6), 4, barHeight+12, marker, false)
}

func drawBattlePrompt(e *ecs.ECS, screen *ebiten.Image, b *battle.Battle, width, height float64) {
	face := fonts.Bold.Get()
	input := getOrCreateInput(e)

	var prompt string
	switch b.Mode() {
	case battle.Choosing:
		prompt = getBattleHint(input.LastInputMethod)
	case battle.Defeat:
		prompt = "You fall..."
		if b.Ready() {
			prompt = "You fall...  (confirm)"
		}
	case battle.Victory:
		if b.Ready() {
			prompt = "Press confirm"
		}
	}
	if prompt == "" {
		return
	}
	text.Draw(screen, prompt, face, centeredX(prompt, face, width), int(height/2)+40, cfg.Bone)
}

// getBattleHint returns the fight-or-flee prompt for the input method
func getBattleHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Cross: Fight   Circle: Run"
	case components.InputXbox:
		return "A: Fight   B: Run"
	}
	return "F: Fight   R: Run"
}
