package hud

import (
	"math"

	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/fsm"
	"github.com/automoto/cryptcrawl/tick"
)

// Mugshot is the player portrait. It shakes and shows the hurt frame when
// the player is hit.
type Mugshot struct {
	Offset float64
	Hurt   bool

	cfg   config.MugshotConfig
	timer *tick.Timer
	now   tick.Time

	a       *fsm.Automaton
	calm    *fsm.Node
	shaking *fsm.Node
}

func NewMugshot(cfg config.MugshotConfig) *Mugshot {
	m := &Mugshot{
		cfg:   cfg,
		timer: tick.NewTimer(cfg.Duration),
		a:     fsm.NewAutomaton(),
	}

	m.calm = &fsm.Node{
		Name: "calm",
		Enter: func() {
			m.Offset = 0
			m.Hurt = false
		},
	}
	m.shaking = &fsm.Node{
		Name: "shaking",
		Enter: func() {
			m.Hurt = true
			m.timer.Start(m.cfg.Duration)
		},
		Update: func() fsm.Flow[*fsm.Node] {
			if m.timer.TimedOut() {
				return m.calm.Goto()
			}
			fade := 1 - m.timer.Progress()
			m.Offset = math.Sin(m.now.Now*m.cfg.Frequency) * m.cfg.Amplitude * fade
			return fsm.Continue[*fsm.Node]()
		},
	}

	m.a.ChangeState(m.calm)
	return m
}

// Shake starts, or restarts, the hurt shake.
func (m *Mugshot) Shake() { m.a.ChangeState(m.shaking) }

func (m *Mugshot) Update(t tick.Time) {
	m.now = t
	m.timer.Update(t.Delta)
	m.a.Update()
}

func (m *Mugshot) Shaking() bool { return m.a.IsProcessingState(m.shaking) }
