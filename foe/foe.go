// Package foe implements the battle opponent: a behaviour automaton that
// winds up, fires waves of bullets down three lanes, reacts to hits and
// dies, plus an independent shake automaton for the hit effect.
package foe

import (
	"math/rand/v2"

	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/fsm"
	"github.com/automoto/cryptcrawl/services"
	"github.com/automoto/cryptcrawl/tick"
	"github.com/tanema/gween"
)

// Sub-frames of the foe sprite
const (
	FrameIdle = iota
	FrameWindUp
	FrameAttack
	FrameHurt
	FrameDead
)

// Vec is a world-space offset relative to the foe's anchor.
type Vec struct {
	X, Y float64
}

// Outcome reports what happened to a foe during one Update.
type Outcome struct {
	// Landed holds the lanes of bullets that reached the player this tick.
	// The slice is reused by the next Update.
	Landed []int
	// Defeated is true on the tick the foe finished flying off screen.
	Defeated bool
}

type Foe struct {
	Kind   config.FoeKind
	Config config.FoeConfig
	Health int

	Bullets []Bullet

	// Render-facing state
	Frame       int
	Offset      Vec
	ShakeOffset float64
	Flash       bool

	machine    *fsm.Machine[State, *Foe]
	shake      *fsm.Machine[Shake, *Foe]
	timer      *tick.Timer
	shakeTimer *tick.Timer
	shotClock  float64
	flyOff     *gween.Tween

	audio services.Audio
	rng   *rand.Rand
	now   tick.Time

	landed   []int
	defeated bool
}

// New creates a foe of the given kind resting in Idle.
func New(kind config.FoeKind, cfg config.FoeConfig, audio services.Audio, rng *rand.Rand) *Foe {
	if audio == nil {
		audio = services.Silent{}
	}
	f := &Foe{
		Kind:       kind,
		Config:     cfg,
		Health:     cfg.Health,
		Bullets:    make([]Bullet, 0, 16),
		machine:    fsm.New[State, *Foe](behaviour),
		shake:      fsm.New[Shake, *Foe](shaking),
		timer:      tick.NewTimer(cfg.WindUp),
		shakeTimer: tick.NewTimer(cfg.ShakeDuration),
		audio:      audio,
		rng:        rng,
		landed:     make([]int, 0, 4),
	}
	f.machine.ChangeState(Idle)
	f.shake.ChangeState(ShakeOff)
	return f
}

// Update ticks the foe: timers, bullets, the behaviour graph and then the
// shake graph.
func (f *Foe) Update(t tick.Time) Outcome {
	f.now = t
	f.landed = f.landed[:0]
	f.defeated = false

	f.timer.Update(t.Delta)
	f.shakeTimer.Update(t.Delta)

	f.updateBullets(t.Delta)
	f.machine.Update(f)
	f.shake.Update(f)

	return Outcome{Landed: f.landed, Defeated: f.defeated}
}

// Damage applies a hit. The hurt reaction runs right away; the behaviour
// graph is sent to Hurt and then, when the hit was lethal, to Dying. The
// later request wins, so a lethal hit never enters Hurt.
func (f *Foe) Damage(amount int) {
	if f.Health <= 0 {
		return
	}

	f.Health -= amount
	if f.Health < 0 {
		f.Health = 0
	}

	f.Bullets = f.Bullets[:0]
	f.shake.ChangeState(ShakeOn)
	f.audio.PlaySFX(config.SoundHurt)

	f.machine.ChangeState(Hurt)
	if f.Health <= 0 {
		f.machine.ChangeState(Dying)
	}
}

// BeginAttacking starts a new bullet wave.
func (f *Foe) BeginAttacking() {
	if f.Health <= 0 {
		return
	}
	f.machine.ChangeState(BeginAttacking)
}

// Stand puts a living foe back to Idle and drops its bullets.
func (f *Foe) Stand() {
	if f.Health <= 0 {
		return
	}
	f.Bullets = f.Bullets[:0]
	f.machine.ChangeState(Idle)
}

func (f *Foe) State() State                   { return f.machine.Current() }
func (f *Foe) IsRunning() bool                { return f.machine.IsRunning() }
func (f *Foe) IsProcessingState(s State) bool { return f.machine.IsProcessingState(s) }
func (f *Foe) ShakeState() Shake              { return f.shake.Current() }

// Defeated reports whether the foe has died and left the screen.
func (f *Foe) Defeated() bool {
	return f.Health <= 0 && !f.machine.IsRunning()
}
