package battle

import (
	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/fsm"
	"github.com/automoto/cryptcrawl/services"
	"github.com/automoto/cryptcrawl/tick"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DodgeState is a state of the player dodge graph
type DodgeState int

const (
	Ready DodgeState = iota
	Dodging
	Returning
)

// Dodge moves the player between the three bullet lanes.
type Dodge struct {
	// Lane the player occupies for hit checks: -1, 0 or 1.
	Lane int
	// Offset is the horizontal view offset in world units.
	Offset float64

	cfg     config.DodgeConfig
	machine *fsm.Machine[DodgeState, *Dodge]
	timer   *tick.Timer
	tween   *gween.Tween
	audio   services.Audio

	now   tick.Time
	input services.Input
}

func NewDodge(cfg config.DodgeConfig, audio services.Audio) *Dodge {
	return &Dodge{
		cfg:     cfg,
		machine: fsm.New[DodgeState, *Dodge](dodgeStates),
		timer:   tick.NewTimer(cfg.HoldDuration),
		audio:   audio,
	}
}

func (d *Dodge) Update(t tick.Time, in services.Input) {
	d.now = t
	d.input = in
	d.timer.Update(t.Delta)
	d.machine.Update(d)
}

// Ready lets the player start dodging.
func (d *Dodge) Ready() { d.machine.ChangeState(Ready) }

// Stand stops dodging and centres the player.
func (d *Dodge) Stand() {
	d.machine.Reset()
	d.Lane = 0
	d.Offset = 0
}

func (d *Dodge) State() DodgeState                   { return d.machine.Current() }
func (d *Dodge) IsRunning() bool                     { return d.machine.IsRunning() }
func (d *Dodge) IsProcessingState(s DodgeState) bool { return d.machine.IsProcessingState(s) }

func (d *Dodge) tweenOffset() bool {
	v, done := d.tween.Update(float32(d.now.Delta))
	d.Offset = float64(v)
	return done
}

var dodgeStates = fsm.Table[DodgeState, *Dodge]{
	Ready: {
		Enter: func(d *Dodge, _ DodgeState) {
			d.Lane = 0
			d.Offset = 0
		},
		Update: func(d *Dodge, _ DodgeState) fsm.Flow[DodgeState] {
			switch {
			case d.input.JustPressed(config.ActionLeft):
				d.Lane = -1
			case d.input.JustPressed(config.ActionRight):
				d.Lane = 1
			default:
				return fsm.Continue[DodgeState]()
			}
			return fsm.Goto(Dodging)
		},
	},
	Dodging: {
		Enter: func(d *Dodge, _ DodgeState) {
			d.audio.PlaySFX(config.SoundDodge)
			d.tween = gween.New(0, float32(float64(d.Lane)*d.cfg.LaneWidth), float32(d.cfg.DodgeDuration), ease.OutQuad)
			d.timer.Start(d.cfg.DodgeDuration + d.cfg.HoldDuration)
		},
		Update: func(d *Dodge, _ DodgeState) fsm.Flow[DodgeState] {
			d.tweenOffset()
			if d.timer.TimedOut() {
				return fsm.Goto(Returning)
			}
			return fsm.Continue[DodgeState]()
		},
	},
	Returning: {
		Enter: func(d *Dodge, _ DodgeState) {
			d.Lane = 0
			d.tween = gween.New(float32(d.Offset), 0, float32(d.cfg.ReturnDuration), ease.InOutQuad)
		},
		Update: func(d *Dodge, _ DodgeState) fsm.Flow[DodgeState] {
			if d.tweenOffset() {
				return fsm.Goto(Ready)
			}
			return fsm.Continue[DodgeState]()
		},
	},
}
