// Package battle runs one encounter: the mode graph choosing between
// fighting and fleeing, the player's dodge and crosshair graphs, and the
// foe they face.
package battle

import (
	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/foe"
	"github.com/automoto/cryptcrawl/fsm"
	"github.com/automoto/cryptcrawl/services"
	"github.com/automoto/cryptcrawl/tick"
)

// Mode is a state of the battle graph
type Mode int

const (
	Choosing Mode = iota
	Playing
	Victory
	Defeat
)

var modeNames = map[Mode]string{
	Choosing: "choosing",
	Playing:  "playing",
	Victory:  "victory",
	Defeat:   "defeat",
}

func (m Mode) String() string { return modeNames[m] }

// Result of a finished encounter
type Result int

const (
	ResultNone Result = iota
	Won
	Fled
	Lost
)

func (r Result) String() string {
	switch r {
	case Won:
		return "won"
	case Fled:
		return "fled"
	case Lost:
		return "lost"
	}
	return "none"
}

// Outcome reports what one Update did, for the owner to route.
type Outcome struct {
	// Finished is true on the tick the encounter ended.
	Finished bool
	Result   Result
	// PlayerHit is true when a bullet landed in the player's lane.
	PlayerHit bool
	// Strike is the player's attack made this tick, if any.
	Strike Strike
	// Damage dealt to the foe by Strike.
	Damage int
	// FoeDefeated is true on the tick the foe left the screen.
	FoeDefeated bool
}

type Battle struct {
	Foe       *foe.Foe
	Player    *Player
	Crosshair *Crosshair
	Dodge     *Dodge
	Result    Result

	cfg     config.BattleConfig
	machine *fsm.Machine[Mode, *Battle]
	timer   *tick.Timer
	audio   services.Audio

	now   tick.Time
	input services.Input
	out   Outcome
}

// New creates an idle battle for player. Start begins an encounter.
func New(player *Player, audio services.Audio) *Battle {
	if audio == nil {
		audio = services.Silent{}
	}
	return &Battle{
		Player:    player,
		Crosshair: NewCrosshair(config.Crosshair, audio),
		Dodge:     NewDodge(config.Dodge, audio),
		cfg:       config.Battle,
		machine:   fsm.New[Mode, *Battle](modes),
		timer:     tick.NewTimer(config.Battle.VictoryDuration),
		audio:     audio,
	}
}

// Start begins an encounter against f in Choosing.
func (b *Battle) Start(f *foe.Foe) {
	b.Foe = f
	b.Result = ResultNone
	b.machine.ChangeState(Choosing)
	b.audio.PlayMusic(config.TrackBattle)
}

// Update ticks the battle graph, then the foe, the dodge and the
// crosshair, and finally resolves landed bullets and strikes.
func (b *Battle) Update(t tick.Time, in services.Input) Outcome {
	b.out = Outcome{}
	if !b.machine.IsRunning() {
		return b.out
	}
	b.now = t
	b.input = in

	b.timer.Update(t.Delta)
	b.machine.Update(b)

	var landed []int
	if b.Foe != nil {
		fo := b.Foe.Update(t)
		landed = fo.Landed
		b.out.FoeDefeated = fo.Defeated
	}
	b.Dodge.Update(t, in)
	strike := b.Crosshair.Update(t, in)

	for _, lane := range landed {
		if lane != b.Dodge.Lane {
			continue
		}
		b.Player.Hurt(b.cfg.BulletDamage)
		b.out.PlayerHit = true
		b.audio.PlaySFX(config.SoundPlayerHit)
	}

	if strike != StrikeNone && b.Foe != nil {
		b.out.Strike = strike
		b.out.Damage = b.damageFor(strike)
		if b.out.Damage > 0 {
			b.Foe.Damage(b.out.Damage)
		}
		if b.Foe.Health <= 0 {
			b.Crosshair.Stand()
		}
	}

	return b.out
}

func (b *Battle) damageFor(s Strike) int {
	switch s {
	case StrikeCritical:
		return b.cfg.CritDamage
	case StrikeHit:
		return b.cfg.HitDamage
	}
	return 0
}

func (b *Battle) finish(r Result) fsm.Flow[Mode] {
	b.Result = r
	b.out.Finished = true
	b.out.Result = r
	return fsm.Stop[Mode]()
}

func (b *Battle) Mode() Mode                    { return b.machine.Current() }
func (b *Battle) IsRunning() bool               { return b.machine.IsRunning() }
func (b *Battle) IsProcessingState(m Mode) bool { return b.machine.IsProcessingState(m) }
func (b *Battle) JustEntered() bool             { return b.machine.JustEntered() }

// Ready reports whether a Victory or Defeat screen accepts confirm.
func (b *Battle) Ready() bool { return !b.timer.Running() }

var modes = fsm.Table[Mode, *Battle]{
	Choosing: {
		Enter: func(b *Battle, _ Mode) {
			b.Crosshair.Stand()
			b.Dodge.Stand()
			if b.Foe != nil {
				b.Foe.Stand()
			}
		},
		Update: func(b *Battle, _ Mode) fsm.Flow[Mode] {
			switch {
			case b.input.JustPressed(config.ActionBattleFight):
				return fsm.Goto(Playing)
			case b.input.JustPressed(config.ActionBattleRun):
				return b.finish(Fled)
			}
			return fsm.Continue[Mode]()
		},
	},
	Playing: {
		Enter: func(b *Battle, _ Mode) {
			if b.Foe != nil {
				b.Foe.BeginAttacking()
			}
			b.Dodge.Ready()
			b.Crosshair.CountDown()
		},
		Update: func(b *Battle, _ Mode) fsm.Flow[Mode] {
			switch {
			case b.Foe == nil:
				return fsm.Goto(Choosing)
			case !b.Foe.IsRunning():
				return fsm.Goto(Victory)
			case !b.Player.Alive():
				return fsm.Goto(Defeat)
			case b.Foe.IsProcessingState(foe.Idle):
				return fsm.Goto(Choosing)
			}
			return fsm.Continue[Mode]()
		},
	},
	Victory: {
		Enter: func(b *Battle, _ Mode) {
			b.Crosshair.Stand()
			b.Dodge.Stand()
			b.audio.PlaySFX(config.SoundFanfare)
			b.timer.Start(b.cfg.VictoryDuration)
		},
		Update: func(b *Battle, _ Mode) fsm.Flow[Mode] {
			if b.Ready() && b.input.JustPressed(config.ActionConfirm) {
				return b.finish(Won)
			}
			return fsm.Continue[Mode]()
		},
	},
	Defeat: {
		Enter: func(b *Battle, _ Mode) {
			b.Crosshair.Stand()
			b.Dodge.Stand()
			if b.Foe != nil {
				b.Foe.Stand()
			}
			b.timer.Start(b.cfg.DefeatDuration)
		},
		Update: func(b *Battle, _ Mode) fsm.Flow[Mode] {
			if b.Ready() && b.input.JustPressed(config.ActionConfirm) {
				return b.finish(Lost)
			}
			return fsm.Continue[Mode]()
		},
	},
}
