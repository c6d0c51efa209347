package dungeon

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/fsm"
	"github.com/automoto/cryptcrawl/services"
	"github.com/automoto/cryptcrawl/tick"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// State of the exploration graph
type State int

const (
	Idle State = iota
	Walking
	Turning
	Bumping
)

var stateNames = map[State]string{
	Idle:    "idle",
	Walking: "walking",
	Turning: "turning",
	Bumping: "bumping",
}

func (s State) String() string { return stateNames[s] }

// Outcome reports what happened during one Update.
type Outcome struct {
	// Stepped is true on the tick the party arrives on a new cell.
	Stepped   bool
	Encounter config.FoeKind
	Message   []string
}

// Explorer moves the party cell by cell. X, Y and Angle are the smoothed
// render position in cells and radians; Bump is the wall bump offset.
type Explorer struct {
	Cell   Cell
	Facing Facing
	X, Y   float64
	Angle  float64
	Bump   float64
	Steps  int

	level  *Map
	cfg    config.ExploreConfig
	audio  services.Audio
	rng    *rand.Rand
	space  *resolv.Space
	body   *resolv.Object
	timer  *tick.Timer
	tweenX *gween.Tween
	tweenY *gween.Tween
	tweenA *gween.Tween

	machine *fsm.Machine[State, *Explorer]
	target  Cell
	turnTo  Facing
	frozen  bool
	cleared map[Cell]bool
	calm    int

	now   tick.Time
	input services.Input
	out   Outcome
}

func NewExplorer(level *Map, cfg config.ExploreConfig, audio services.Audio, rng *rand.Rand) *Explorer {
	if audio == nil {
		audio = services.Silent{}
	}
	e := &Explorer{
		level:   level,
		cfg:     cfg,
		audio:   audio,
		rng:     rng,
		space:   level.Space(),
		timer:   tick.NewTimer(cfg.BumpDuration),
		machine: fsm.New[State, *Explorer](exploring),
		cleared: map[Cell]bool{},
	}

	size := float64(level.TileSize)
	e.body = resolv.NewObject(2, 2, size-4, size-4, TagExplorer)
	e.body.SetShape(resolv.NewRectangle(0, 0, size-4, size-4))
	e.space.Add(e.body)

	e.Place(level.Start, level.StartFacing)
	e.machine.ChangeState(Idle)
	return e
}

// Place puts the party on c facing f without animating.
func (e *Explorer) Place(c Cell, f Facing) {
	e.Cell = c
	e.Facing = f
	e.X, e.Y = float64(c.X), float64(c.Y)
	e.Angle = f.Angle()
	e.Bump = 0
	e.syncProbe()
}

func (e *Explorer) Update(t tick.Time, in services.Input) Outcome {
	e.now = t
	e.input = in
	e.out = Outcome{}
	e.timer.Update(t.Delta)
	e.machine.Update(e)
	return e.out
}

// Freeze ignores movement input until Resume. A move already under way
// still finishes.
func (e *Explorer) Freeze() { e.frozen = true }
func (e *Explorer) Resume() { e.frozen = false }

func (e *Explorer) Frozen() bool { return e.frozen }
func (e *Explorer) State() State { return e.machine.Current() }

func (e *Explorer) IsProcessingState(s State) bool { return e.machine.IsProcessingState(s) }

// Blocked reports whether the cell in direction f is solid.
func (e *Explorer) Blocked(f Facing) bool {
	next := e.Cell.Step(f)
	if !e.level.InBounds(next) {
		return true
	}
	dx, dy := f.Delta()
	size := float64(e.level.TileSize)
	return e.body.Check(float64(dx)*size, float64(dy)*size, TagSolid) != nil
}

// Cleared reports whether the fixed encounter on c has been fought.
func (e *Explorer) Cleared(c Cell) bool { return e.cleared[c] }

func (e *Explorer) syncProbe() {
	size := float64(e.level.TileSize)
	e.body.X = float64(e.Cell.X)*size + 2
	e.body.Y = float64(e.Cell.Y)*size + 2
	e.body.Update()
}

// move starts a walk toward f, or a bump when the way is blocked.
func (e *Explorer) move(f Facing) fsm.Flow[State] {
	if e.Blocked(f) {
		return fsm.Goto(Bumping)
	}
	e.target = e.Cell.Step(f)
	return fsm.Goto(Walking)
}

func (e *Explorer) turn(quarters int) fsm.Flow[State] {
	e.turnTo = e.Facing.Turn(quarters)
	e.tweenA = gween.New(float32(e.Angle), float32(e.Angle+float64(quarters)*math.Pi/2), float32(e.cfg.TurnDuration), ease.InOutQuad)
	return fsm.Goto(Turning)
}

func (e *Explorer) arrive() {
	e.Cell = e.target
	e.X, e.Y = float64(e.Cell.X), float64(e.Cell.Y)
	e.syncProbe()
	e.Steps++
	e.out.Stepped = true

	if kind, ok := e.level.Encounters[e.Cell]; ok && !e.cleared[e.Cell] {
		e.cleared[e.Cell] = true
		e.calm = 0
		e.out.Encounter = kind
		return
	}
	if pages, ok := e.level.Messages[e.Cell]; ok {
		e.out.Message = pages
		return
	}

	e.calm++
	if e.calm <= e.cfg.SafeSteps || len(e.cfg.RandomFoes) == 0 || e.rng == nil {
		return
	}
	if e.rng.Float64() < e.cfg.EncounterChance {
		e.calm = 0
		e.out.Encounter = e.cfg.RandomFoes[e.rng.IntN(len(e.cfg.RandomFoes))]
	}
}

var exploring = fsm.Table[State, *Explorer]{
	Idle: {
		Update: func(e *Explorer, _ State) fsm.Flow[State] {
			if e.frozen || e.input == nil {
				return fsm.Continue[State]()
			}
			switch {
			case e.input.Held(config.ActionForward):
				return e.move(e.Facing)
			case e.input.Held(config.ActionBack):
				return e.move(e.Facing.Turn(2))
			case e.input.Held(config.ActionLeft):
				return e.turn(-1)
			case e.input.Held(config.ActionRight):
				return e.turn(1)
			}
			return fsm.Continue[State]()
		},
	},
	Walking: {
		Enter: func(e *Explorer, _ State) {
			e.audio.PlaySFX(config.SoundStep)
			d := float32(e.cfg.StepDuration)
			e.tweenX = gween.New(float32(e.X), float32(e.target.X), d, ease.InOutQuad)
			e.tweenY = gween.New(float32(e.Y), float32(e.target.Y), d, ease.InOutQuad)
		},
		Update: func(e *Explorer, _ State) fsm.Flow[State] {
			dt := float32(e.now.Delta)
			x, doneX := e.tweenX.Update(dt)
			y, doneY := e.tweenY.Update(dt)
			e.X, e.Y = float64(x), float64(y)
			if doneX && doneY {
				e.arrive()
				return fsm.Goto(Idle)
			}
			return fsm.Continue[State]()
		},
	},
	Turning: {
		Update: func(e *Explorer, _ State) fsm.Flow[State] {
			a, done := e.tweenA.Update(float32(e.now.Delta))
			e.Angle = float64(a)
			if done {
				e.Facing = e.turnTo
				e.Angle = e.Facing.Angle()
				return fsm.Goto(Idle)
			}
			return fsm.Continue[State]()
		},
	},
	Bumping: {
		Enter: func(e *Explorer, _ State) {
			e.audio.PlaySFX(config.SoundBump)
			e.timer.Start(e.cfg.BumpDuration)
		},
		Update: func(e *Explorer, _ State) fsm.Flow[State] {
			if e.timer.TimedOut() {
				return fsm.Goto(Idle)
			}
			e.Bump = math.Sin(e.timer.Progress()*math.Pi) * e.cfg.BumpAmplitude
			return fsm.Continue[State]()
		},
		Exit: func(e *Explorer, _ State) {
			e.Bump = 0
		},
	},
}
