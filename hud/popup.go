// Package hud holds the transient screen widgets: the battle pop-up text,
// the player mugshot, the dialog box and the screen fader. Each widget owns
// an automaton of nodes bound to itself.
package hud

import (
	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/fsm"
	"github.com/automoto/cryptcrawl/tick"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Popup grows a short text in, holds it and shrinks it away.
type Popup struct {
	Text     string
	Critical bool
	Scale    float64

	cfg   config.PopupConfig
	hold  float64
	timer *tick.Timer
	tween *gween.Tween
	dt    float64

	a       *fsm.Automaton
	opening *fsm.Node
	shown   *fsm.Node
	closing *fsm.Node
}

func NewPopup(cfg config.PopupConfig) *Popup {
	p := &Popup{
		cfg:   cfg,
		timer: tick.NewTimer(cfg.HoldDuration),
		a:     fsm.NewAutomaton(),
	}

	p.opening = &fsm.Node{
		Name: "opening",
		Enter: func() {
			p.tween = gween.New(0, 1, float32(p.cfg.OpenDuration), ease.OutBack)
		},
		Update: func() fsm.Flow[*fsm.Node] {
			if p.scaleStep() {
				return p.shown.Goto()
			}
			return fsm.Continue[*fsm.Node]()
		},
	}
	p.shown = &fsm.Node{
		Name: "shown",
		Enter: func() {
			p.Scale = 1
			p.timer.Start(p.hold)
		},
		Update: func() fsm.Flow[*fsm.Node] {
			if p.timer.TimedOut() {
				return p.closing.Goto()
			}
			return fsm.Continue[*fsm.Node]()
		},
	}
	p.closing = &fsm.Node{
		Name: "closing",
		Enter: func() {
			p.tween = gween.New(1, 0, float32(p.cfg.CloseDuration), ease.InQuad)
		},
		Update: func() fsm.Flow[*fsm.Node] {
			if p.scaleStep() {
				return fsm.Stop[*fsm.Node]()
			}
			return fsm.Continue[*fsm.Node]()
		},
		Exit: func() {
			p.Scale = 0
		},
	}
	return p
}

// Show displays text for hold seconds, or the configured hold when hold is
// not positive. Showing while visible starts over.
func (p *Popup) Show(text string, hold float64) {
	if hold <= 0 {
		hold = p.cfg.HoldDuration
	}
	p.Text = text
	p.hold = hold
	p.Scale = 0
	p.a.ChangeState(p.opening)
}

func (p *Popup) Update(t tick.Time) {
	p.dt = t.Delta
	p.timer.Update(t.Delta)
	p.a.Update()
}

func (p *Popup) Visible() bool { return p.a.IsRunning() }

// Phase returns the name of the current node, or "<none>".
func (p *Popup) Phase() string { return p.a.Current().String() }

func (p *Popup) scaleStep() bool {
	v, done := p.tween.Update(float32(p.dt))
	p.Scale = float64(v)
	return done
}
