package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/cryptcrawl/components"
	cfg "github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/dungeon"
	"github.com/automoto/cryptcrawl/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	viewWidth  = 448
	viewDepth  = 4
	panelX     = viewWidth + 8
	mapCell    = 12
	wallShadow = 0.55 // brightness lost per cell of depth
)

var (
	ceilingColor = color.RGBA{R: 18, G: 16, B: 24, A: 255}
	floorColor   = color.RGBA{R: 34, G: 28, B: 26, A: 255}
	edgeColor    = color.RGBA{R: 20, G: 18, B: 22, A: 255}
	floorMap     = color.RGBA{R: 50, G: 44, B: 40, A: 255}
)

// corridorView is reused across frames
var corridorView *ebiten.Image

// frame is the screen rectangle of the plane d cells ahead of the viewer
type frame struct {
	left, top, right, bottom float32
}

// viewFrame projects the plane at depth d. advance is how far the party has
// moved along its facing since leaving its cell, so planes grow while
// walking.
func viewFrame(d, advance float64, height float64) frame {
	dist := d + 1 - advance
	if dist < 0.25 {
		dist = 0.25
	}
	s := 1 / dist
	cx, cy := viewWidth/2.0, height/2
	hw, hh := viewWidth/2.0*s, height/2*s
	return frame{
		left:   float32(cx - hw),
		top:    float32(cy - hh),
		right:  float32(cx + hw),
		bottom: float32(cy + hh),
	}
}

// DrawExplore renders the first-person corridor view and the minimap.
func DrawExplore(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	data := components.Session.Get(entry)
	s := data.Session
	if s.InBattle() {
		return
	}

	height := float64(screen.Bounds().Dy())
	if corridorView == nil || corridorView.Bounds().Dy() != int(height) {
		corridorView = ebiten.NewImage(viewWidth, int(height))
	}
	view := corridorView
	view.Clear()
	drawCorridor(view, s.Level, s.Explorer, height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, s.Explorer.Bump)
	screen.DrawImage(view, op)

	drawMinimap(screen, s.Level, s.Explorer)
	drawPartyStats(screen, data)
}

func drawCorridor(view *ebiten.Image, level *dungeon.Map, ex *dungeon.Explorer, height float64) {
	vector.FillRect(view, 0, 0, viewWidth, float32(height/2), ceilingColor, false)
	vector.FillRect(view, 0, float32(height/2), viewWidth, float32(height/2), floorColor, false)

	// How far the tween has carried the party along its facing
	dx, dy := ex.Facing.Delta()
	advance := (ex.X-float64(ex.Cell.X))*float64(dx) + (ex.Y-float64(ex.Cell.Y))*float64(dy)

	// Turning slides the view sideways
	slide := float32(angleDiff(ex.Angle, ex.Facing.Angle()) / (math.Pi / 2) * -viewWidth)

	for _, face := range level.View(ex.Cell, ex.Facing, viewDepth) {
		near := viewFrame(float64(face.Depth), advance, height)
		far := viewFrame(float64(face.Depth+1), advance, height)
		wall := shade(cfg.Bone, math.Pow(wallShadow, float64(face.Depth)+1-advance))

		var pts []point
		switch face.Side {
		case dungeon.Front:
			pts = rectPoints(far.left, far.top, far.right, far.bottom)
		case dungeon.Left:
			pts = []point{{near.left, near.top}, {far.left, far.top}, {far.left, far.bottom}, {near.left, near.bottom}}
		case dungeon.Right:
			pts = []point{{near.right, near.top}, {far.right, far.top}, {far.right, far.bottom}, {near.right, near.bottom}}
		case dungeon.LeftFront:
			pts = rectPoints(near.left, far.top, far.left, far.bottom)
		case dungeon.RightFront:
			pts = rectPoints(far.right, far.top, near.right, far.bottom)
		}
		for i := range pts {
			pts[i].X += slide
		}
		fillPolygon(view, pts, wall)
		strokePolygon(view, pts, edgeColor)
	}
}

func rectPoints(l, t, r, b float32) []point {
	return []point{{l, t}, {r, t}, {r, b}, {l, b}}
}

// angleDiff returns a-b wrapped into [-π, π).
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d - math.Pi
}

func drawMinimap(screen *ebiten.Image, level *dungeon.Map, ex *dungeon.Explorer) {
	ox, oy := float32(panelX), float32(8)

	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width; x++ {
			c := floorMap
			if level.Wall(dungeon.Cell{X: x, Y: y}) {
				c = cfg.Stone
			}
			vector.FillRect(screen, ox+float32(x*mapCell), oy+float32(y*mapCell), mapCell-1, mapCell-1, c, false)
		}
	}

	// Party marker: a triangle pointing along the smoothed angle
	cx := ox + float32(ex.X*mapCell) + mapCell/2
	cy := oy + float32(ex.Y*mapCell) + mapCell/2
	r := float64(mapCell) * 0.45
	tip := func(a float64, l float64) point {
		// Angle 0 faces north; screen y grows down
		return point{cx + float32(math.Sin(a)*l), cy - float32(math.Cos(a)*l)}
	}
	fillPolygon(screen, []point{
		tip(ex.Angle, r),
		tip(ex.Angle+2.5, r),
		tip(ex.Angle-2.5, r),
	}, cfg.BrightOrange)
}

func drawPartyStats(screen *ebiten.Image, data *components.SessionData) {
	s := data.Session
	face := fonts.Regular.Get()
	y := 8 + s.Level.Height*mapCell + 20

	lines := []string{
		fmt.Sprintf("HP %d/%d", s.Player.Health, s.Player.MaxHealth),
		fmt.Sprintf("Steps %d", s.Explorer.Steps),
		fmt.Sprintf("Foes slain %d", data.Victories),
		fmt.Sprintf("Facing %s", s.Explorer.Facing),
	}
	for i, l := range lines {
		text.Draw(screen, l, face, panelX, y+i*14, cfg.Bone)
	}
}
