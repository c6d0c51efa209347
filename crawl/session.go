// Package crawl ties exploration and battles together into one play
// session and routes what they report to the HUD.
package crawl

import (
	"math/rand/v2"

	"github.com/automoto/cryptcrawl/battle"
	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/dungeon"
	"github.com/automoto/cryptcrawl/foe"
	"github.com/automoto/cryptcrawl/fsm"
	"github.com/automoto/cryptcrawl/hud"
	"github.com/automoto/cryptcrawl/services"
	"github.com/automoto/cryptcrawl/tick"
)

// Mode is a state of the session graph
type Mode int

const (
	Exploring Mode = iota
	Entering
	Battling
	Leaving
	GameOver
)

var modeNames = map[Mode]string{
	Exploring: "exploring",
	Entering:  "entering",
	Battling:  "battling",
	Leaving:   "leaving",
	GameOver:  "game-over",
}

func (m Mode) String() string { return modeNames[m] }

// Outcome reports session events for the scene and telemetry.
type Outcome struct {
	// BattleStarted is the foe met on the tick a battle begins.
	BattleStarted config.FoeKind
	// BattleEnded is true on the tick an encounter finishes.
	BattleEnded bool
	Result      battle.Result
	GameOver    bool
}

type Session struct {
	Level    *dungeon.Map
	Explorer *dungeon.Explorer
	Player   *battle.Player
	Battle   *battle.Battle

	Popup   *hud.Popup
	Mugshot *hud.Mugshot
	Dialog  *hud.Dialog
	Fader   *hud.Fader

	machine  *fsm.Machine[Mode, *Session]
	audio    services.Audio
	rng      *rand.Rand
	pending  config.FoeKind
	result   battle.Result
	inBattle bool

	out Outcome
}

// New starts a session at the level's start cell.
func New(level *dungeon.Map, audio services.Audio, rng *rand.Rand) *Session {
	if audio == nil {
		audio = services.Silent{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(config.Debug.Seed), 0))
	}
	player := battle.NewPlayer(config.Battle.PlayerHealth)
	s := &Session{
		Level:    level,
		Explorer: dungeon.NewExplorer(level, config.Explore, audio, rng),
		Player:   player,
		Battle:   battle.New(player, audio),
		Popup:    hud.NewPopup(config.Popup),
		Mugshot:  hud.NewMugshot(config.Mugshot),
		Dialog:   hud.NewDialog(config.Dialog, audio),
		Fader:    hud.NewFader(config.Fader),
		machine:  fsm.New[Mode, *Session](modes),
		audio:    audio,
		rng:      rng,
	}
	s.machine.ChangeState(Exploring)
	return s
}

// Update runs the mode graph, then the explorer or the battle, then the
// HUD graphs.
func (s *Session) Update(t tick.Time, in services.Input) Outcome {
	s.out = Outcome{}
	s.machine.Update(s)

	switch s.machine.Current() {
	case Exploring:
		s.routeExplore(s.Explorer.Update(t, in))
	case Battling:
		s.routeBattle(s.Battle.Update(t, in))
	}

	s.Popup.Update(t)
	s.Mugshot.Update(t)
	s.Dialog.Update(t, in)
	s.Fader.Update(t)
	return s.out
}

func (s *Session) routeExplore(o dungeon.Outcome) {
	if o.Encounter != config.FoeNone {
		s.pending = o.Encounter
		s.Explorer.Freeze()
		return
	}
	if len(o.Message) > 0 {
		s.Dialog.Open(o.Message...)
		s.Explorer.Freeze()
	}
}

func (s *Session) routeBattle(o battle.Outcome) {
	if o.PlayerHit {
		s.Mugshot.Shake()
	}
	if o.Strike != battle.StrikeNone {
		s.Popup.Show(o.Strike.String(), 0)
		s.Popup.Critical = o.Strike == battle.StrikeCritical
	}
	if o.Finished {
		s.result = o.Result
		s.out.BattleEnded = true
		s.out.Result = o.Result
		if o.Result == battle.Won {
			s.Player.Heal(config.Battle.VictoryHeal)
			s.Popup.Show("VICTORY", 0)
			s.Popup.Critical = false
		}
	}
}

func (s *Session) startBattle() {
	kind := s.pending
	s.Battle.Start(foe.New(kind, config.Foes.Get(kind), s.audio, s.rng))
	s.out.BattleStarted = kind
	s.pending = config.FoeNone
	s.result = battle.ResultNone
	s.inBattle = true
}

func (s *Session) Mode() Mode { return s.machine.Current() }

// InBattle reports whether the battle view is behind the fader.
func (s *Session) InBattle() bool { return s.inBattle }

var modes = fsm.Table[Mode, *Session]{
	Exploring: {
		Enter: func(s *Session, _ Mode) {
			s.Explorer.Resume()
			s.audio.PlayMusic(config.TrackCrypt)
		},
		Update: func(s *Session, _ Mode) fsm.Flow[Mode] {
			if s.pending != config.FoeNone {
				return fsm.Goto(Entering)
			}
			if s.Dialog.IsOpen() {
				s.Explorer.Freeze()
			} else {
				s.Explorer.Resume()
			}
			return fsm.Continue[Mode]()
		},
	},
	Entering: {
		Enter: func(s *Session, _ Mode) {
			s.Explorer.Freeze()
			s.audio.PlaySFX(config.SoundEncounter)
			s.Fader.Start()
		},
		Update: func(s *Session, _ Mode) fsm.Flow[Mode] {
			if s.Fader.Covered() {
				s.startBattle()
				return fsm.Goto(Battling)
			}
			return fsm.Continue[Mode]()
		},
	},
	Battling: {
		Update: func(s *Session, _ Mode) fsm.Flow[Mode] {
			switch s.result {
			case battle.Lost:
				return fsm.Goto(GameOver)
			case battle.Won, battle.Fled:
				return fsm.Goto(Leaving)
			}
			return fsm.Continue[Mode]()
		},
	},
	Leaving: {
		Enter: func(s *Session, _ Mode) {
			s.Fader.Start()
		},
		Update: func(s *Session, _ Mode) fsm.Flow[Mode] {
			if s.Fader.Covered() {
				s.inBattle = false
				return fsm.Goto(Exploring)
			}
			return fsm.Continue[Mode]()
		},
	},
	GameOver: {
		Enter: func(s *Session, _ Mode) {
			s.out.GameOver = true
			s.audio.PlayMusic(config.TrackGameOver)
		},
	},
}
