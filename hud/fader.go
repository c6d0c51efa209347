package hud

import (
	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/fsm"
	"github.com/automoto/cryptcrawl/tick"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fader darkens the screen, holds it black and clears it again. The owner
// swaps what is behind it while it is covered.
type Fader struct {
	cfg     config.FaderConfig
	alpha   float64
	covered bool
	timer   *tick.Timer
	tween   *gween.Tween
	dt      float64

	a       *fsm.Automaton
	fadeOut *fsm.Node
	hold    *fsm.Node
	fadeIn  *fsm.Node
}

func NewFader(cfg config.FaderConfig) *Fader {
	f := &Fader{
		cfg:   cfg,
		timer: tick.NewTimer(cfg.HoldDuration),
		a:     fsm.NewAutomaton(),
	}

	f.fadeOut = &fsm.Node{
		Name: "fading-out",
		Enter: func() {
			f.tween = gween.New(float32(f.alpha), 1, float32(f.cfg.FadeOutDuration), ease.Linear)
		},
		Update: func() fsm.Flow[*fsm.Node] {
			if f.fade() {
				f.covered = true
				return f.hold.Goto()
			}
			return fsm.Continue[*fsm.Node]()
		},
	}
	f.hold = &fsm.Node{
		Name: "holding",
		Enter: func() {
			f.alpha = 1
			f.timer.Start(f.cfg.HoldDuration)
		},
		Update: func() fsm.Flow[*fsm.Node] {
			if f.timer.TimedOut() {
				return f.fadeIn.Goto()
			}
			return fsm.Continue[*fsm.Node]()
		},
	}
	f.fadeIn = &fsm.Node{
		Name: "fading-in",
		Enter: func() {
			f.tween = gween.New(1, 0, float32(f.cfg.FadeInDuration), ease.Linear)
		},
		Update: func() fsm.Flow[*fsm.Node] {
			if f.fade() {
				return fsm.Stop[*fsm.Node]()
			}
			return fsm.Continue[*fsm.Node]()
		},
		Exit: func() {
			f.alpha = 0
		},
	}
	return f
}

// Start begins a transition from the current alpha.
func (f *Fader) Start() { f.a.ChangeState(f.fadeOut) }

func (f *Fader) Update(t tick.Time) {
	f.dt = t.Delta
	f.covered = false
	f.timer.Update(t.Delta)
	f.a.Update()
}

// Covered is true from the tick the screen turned fully black until the
// next Update.
func (f *Fader) Covered() bool { return f.covered }

func (f *Fader) Alpha() float64 { return f.alpha }
func (f *Fader) Active() bool   { return f.a.IsRunning() }

func (f *Fader) fade() bool {
	v, done := f.tween.Update(float32(f.dt))
	f.alpha = float64(v)
	return done
}
