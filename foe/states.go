package foe

import (
	"math"

	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/fsm"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// State of the foe behaviour graph
type State int

const (
	Idle State = iota
	BeginAttacking
	Attacking
	Hurt
	Dying
	FlyingOffscreen
)

var stateNames = map[State]string{
	Idle:            "idle",
	BeginAttacking:  "begin-attacking",
	Attacking:       "attacking",
	Hurt:            "hurt",
	Dying:           "dying",
	FlyingOffscreen: "flying-offscreen",
}

func (s State) String() string { return stateNames[s] }

// Shake is the state of the hit effect graph
type Shake int

const (
	ShakeOff Shake = iota
	ShakeOn
)

var behaviour = fsm.Table[State, *Foe]{
	Idle: {
		Enter: func(f *Foe, _ State) {
			f.Frame = FrameIdle
		},
	},
	BeginAttacking: {
		Enter: func(f *Foe, _ State) {
			f.Frame = FrameWindUp
			f.timer.Start(f.Config.WindUp)
		},
		Update: func(f *Foe, _ State) fsm.Flow[State] {
			if f.timer.TimedOut() {
				return fsm.Goto(Attacking)
			}
			return fsm.Continue[State]()
		},
	},
	Attacking: {
		Enter: func(f *Foe, _ State) {
			f.Frame = FrameAttack
			f.shotClock = 0
			f.timer.Start(f.Config.AttackDuration)
		},
		Update: func(f *Foe, _ State) fsm.Flow[State] {
			f.shotClock += f.now.Delta
			for f.Config.ShootInterval > 0 && f.shotClock >= f.Config.ShootInterval {
				f.shotClock -= f.Config.ShootInterval
				f.shoot(f.rng.IntN(3) - 1)
			}
			if f.timer.TimedOut() {
				return fsm.Goto(Idle)
			}
			return fsm.Continue[State]()
		},
	},
	Hurt: {
		Enter: func(f *Foe, _ State) {
			f.Frame = FrameHurt
			f.timer.Start(f.Config.HurtDuration)
		},
		Update: func(f *Foe, _ State) fsm.Flow[State] {
			if f.timer.TimedOut() {
				return fsm.Goto(Attacking)
			}
			return fsm.Continue[State]()
		},
	},
	Dying: {
		Enter: func(f *Foe, _ State) {
			f.Frame = FrameDead
			f.Bullets = f.Bullets[:0]
			f.audio.PlaySFX(config.SoundDeath)
			f.timer.Start(f.Config.DyingDuration)
		},
		Update: func(f *Foe, _ State) fsm.Flow[State] {
			if f.timer.TimedOut() {
				return fsm.Goto(FlyingOffscreen)
			}
			return fsm.Continue[State]()
		},
	},
	FlyingOffscreen: {
		Enter: func(f *Foe, _ State) {
			f.flyOff = gween.New(0, float32(-f.Config.FlyOffHeight), float32(f.Config.FlyOffDuration), ease.InBack)
		},
		Update: func(f *Foe, _ State) fsm.Flow[State] {
			y, done := f.flyOff.Update(float32(f.now.Delta))
			f.Offset.Y = float64(y)
			if done {
				return fsm.Stop[State]()
			}
			return fsm.Continue[State]()
		},
		Exit: func(f *Foe, _ State) {
			f.defeated = true
		},
	},
}

var shaking = fsm.Table[Shake, *Foe]{
	ShakeOff: {
		Enter: func(f *Foe, _ Shake) {
			f.ShakeOffset = 0
			f.Flash = false
		},
	},
	ShakeOn: {
		Enter: func(f *Foe, _ Shake) {
			f.Flash = true
			f.shakeTimer.Start(f.Config.ShakeDuration)
		},
		Update: func(f *Foe, _ Shake) fsm.Flow[Shake] {
			if f.shakeTimer.TimedOut() {
				return fsm.Goto(ShakeOff)
			}
			fade := 1 - f.shakeTimer.Progress()
			f.ShakeOffset = math.Sin(f.now.Now*f.Config.ShakeFrequency) * f.Config.ShakeAmplitude * fade
			f.Flash = int(f.now.Now*20)%2 == 0
			return fsm.Continue[Shake]()
		},
	},
}
