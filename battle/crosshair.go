package battle

import (
	"math"

	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/fsm"
	"github.com/automoto/cryptcrawl/services"
	"github.com/automoto/cryptcrawl/tick"
)

// Range is a closed interval of aim values.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies in the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Strike is the result of one attack input.
type Strike int

const (
	StrikeNone Strike = iota
	StrikeMiss
	StrikeHit
	StrikeCritical
)

func (s Strike) String() string {
	switch s {
	case StrikeMiss:
		return "MISS"
	case StrikeHit:
		return "HIT"
	case StrikeCritical:
		return "CRITICAL!"
	}
	return ""
}

// Score grades an aim value against the hit band and the critical band
// nested inside it.
func Score(aim float64, hit, crit Range) Strike {
	switch {
	case crit.Contains(aim):
		return StrikeCritical
	case hit.Contains(aim):
		return StrikeHit
	default:
		return StrikeMiss
	}
}

// AimState is a state of the crosshair graph
type AimState int

const (
	Waiting AimState = iota
	CountingDown
	Aiming
	Missing
	Targeting
)

// Crosshair lets the player time an attack against an oscillating aim.
type Crosshair struct {
	// Aim oscillates in [-1, 1] while aiming.
	Aim        float64
	LastStrike Strike

	cfg     config.CrosshairConfig
	hit     Range
	crit    Range
	machine *fsm.Machine[AimState, *Crosshair]
	timer   *tick.Timer
	audio   services.Audio

	now    tick.Time
	input  services.Input
	strike Strike
}

func NewCrosshair(cfg config.CrosshairConfig, audio services.Audio) *Crosshair {
	c := &Crosshair{
		cfg:     cfg,
		hit:     Range{Min: cfg.HitMin, Max: cfg.HitMax},
		crit:    Range{Min: cfg.CritMin, Max: cfg.CritMax},
		machine: fsm.New[AimState, *Crosshair](crosshairStates),
		timer:   tick.NewTimer(cfg.CountdownDuration),
		audio:   audio,
	}
	c.machine.ChangeState(Waiting)
	return c
}

// Update ticks the crosshair and returns the strike made this tick, if any.
func (c *Crosshair) Update(t tick.Time, in services.Input) Strike {
	c.now = t
	c.input = in
	c.strike = StrikeNone

	c.timer.Update(t.Delta)
	c.machine.Update(c)

	if c.strike != StrikeNone {
		c.LastStrike = c.strike
	}
	return c.strike
}

// CountDown starts an aiming round.
func (c *Crosshair) CountDown() { c.machine.ChangeState(CountingDown) }

// Stand parks the crosshair until the next round.
func (c *Crosshair) Stand() { c.machine.ChangeState(Waiting) }

func (c *Crosshair) State() AimState                   { return c.machine.Current() }
func (c *Crosshair) IsProcessingState(s AimState) bool { return c.machine.IsProcessingState(s) }

// Progress of the current phase timer.
func (c *Crosshair) Progress() float64 {
	if c.timer.Duration() <= 0 {
		return 1
	}
	return c.timer.Progress()
}

func (c *Crosshair) HitRange() Range  { return c.hit }
func (c *Crosshair) CritRange() Range { return c.crit }

func holdThenCountDown(c *Crosshair, _ AimState) fsm.Flow[AimState] {
	if c.timer.TimedOut() {
		return fsm.Goto(CountingDown)
	}
	return fsm.Continue[AimState]()
}

var crosshairStates = fsm.Table[AimState, *Crosshair]{
	Waiting: {
		Enter: func(c *Crosshair, _ AimState) {
			c.timer.Stop()
			c.Aim = 0
		},
	},
	CountingDown: {
		Enter: func(c *Crosshair, _ AimState) {
			c.Aim = 0
			c.timer.Start(c.cfg.CountdownDuration)
		},
		Update: func(c *Crosshair, _ AimState) fsm.Flow[AimState] {
			if c.timer.TimedOut() {
				return fsm.Goto(Aiming)
			}
			return fsm.Continue[AimState]()
		},
	},
	Aiming: {
		Enter: func(c *Crosshair, _ AimState) {
			c.timer.Start(c.cfg.AimDuration)
		},
		Update: func(c *Crosshair, _ AimState) fsm.Flow[AimState] {
			c.Aim = math.Sin(c.now.Now * c.cfg.AimFrequency)

			if c.input.JustPressed(config.ActionAttack) {
				c.strike = Score(c.Aim, c.hit, c.crit)
				if c.strike == StrikeMiss {
					return fsm.Goto(Missing)
				}
				return fsm.Goto(Targeting)
			}
			if c.timer.TimedOut() {
				return fsm.Goto(Missing)
			}
			return fsm.Continue[AimState]()
		},
	},
	Missing: {
		Enter: func(c *Crosshair, _ AimState) {
			c.audio.PlaySFX(config.SoundMiss)
			c.timer.Start(c.cfg.MissingDuration)
		},
		Update: holdThenCountDown,
	},
	Targeting: {
		Enter: func(c *Crosshair, _ AimState) {
			if c.LastStrike == StrikeCritical {
				c.audio.PlaySFX(config.SoundCritical)
			} else {
				c.audio.PlaySFX(config.SoundStrike)
			}
			c.timer.Start(c.cfg.TargetingDuration)
		},
		Update: holdThenCountDown,
	},
}
