package dungeon

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/services/servicestest"
	"github.com/automoto/cryptcrawl/tick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 0.25

var testExplore = config.ExploreConfig{
	StepDuration:  0.25,
	TurnDuration:  0.25,
	BumpDuration:  0.25,
	BumpAmplitude: 4,
}

type rig struct {
	e     *Explorer
	in    *servicestest.Input
	audio *servicestest.Audio
	now   tick.Time
}

func newRig(t *testing.T, m *Map, cfg config.ExploreConfig, rng *rand.Rand) *rig {
	t.Helper()
	audio := &servicestest.Audio{}
	r := &rig{e: NewExplorer(m, cfg, audio, rng), in: servicestest.NewInput(), audio: audio}
	r.step()
	return r
}

func (r *rig) step() Outcome {
	r.in.Tick()
	r.now.Now += dt
	r.now.Delta = dt
	return r.e.Update(r.now, r.in)
}

// hold presses a for one tick, then lets go and runs one more.
func (r *rig) hold(a config.ActionID) Outcome {
	r.in.Press(a)
	r.step()
	r.in.Release(a)
	return r.step()
}

func corridorMap(t *testing.T) *Map {
	t.Helper()
	m, err := loadTest(t, tmx(5, 3, corridor,
		group("Start", object(1, 1, 1, "facing", "east"))+
			group("Encounters", object(2, 3, 1, "foe", "wraith"))+
			group("Messages", object(3, 2, 1, "text", "hello|world"))))
	require.NoError(t, err)
	return m
}

func TestExplorerStartsOnLevelStart(t *testing.T) {
	r := newRig(t, corridorMap(t), testExplore, nil)
	assert.Equal(t, Cell{1, 1}, r.e.Cell)
	assert.Equal(t, East, r.e.Facing)
	assert.Equal(t, Idle, r.e.State())
	assert.InDelta(t, math.Pi/2, r.e.Angle, 1e-9)
}

func TestExplorerWalksAndShowsMessage(t *testing.T) {
	r := newRig(t, corridorMap(t), testExplore, nil)

	r.in.Press(config.ActionForward)
	out := r.step()
	assert.Equal(t, Walking, r.e.State())
	assert.False(t, out.Stepped)

	r.in.Release(config.ActionForward)
	out = r.step()
	assert.True(t, out.Stepped)
	assert.Equal(t, Cell{2, 1}, r.e.Cell)
	assert.Equal(t, []string{"hello", "world"}, out.Message)
	assert.Equal(t, config.FoeNone, out.Encounter)
	assert.InDelta(t, 2, r.e.X, 1e-6)
	assert.Equal(t, 1, r.e.Steps)
	assert.Equal(t, 1, r.audio.Count(config.SoundStep))
}

func TestExplorerFixedEncounterFiresOnce(t *testing.T) {
	r := newRig(t, corridorMap(t), testExplore, nil)
	r.hold(config.ActionForward)

	out := r.hold(config.ActionForward)
	assert.Equal(t, config.FoeWraith, out.Encounter)
	assert.True(t, r.e.Cleared(Cell{3, 1}))

	r.hold(config.ActionBack)
	assert.Equal(t, Cell{2, 1}, r.e.Cell)
	assert.Equal(t, East, r.e.Facing)

	out = r.hold(config.ActionForward)
	assert.True(t, out.Stepped)
	assert.Equal(t, config.FoeNone, out.Encounter)
}

func TestExplorerBumpsIntoWalls(t *testing.T) {
	r := newRig(t, corridorMap(t), testExplore, nil)
	assert.True(t, r.e.Blocked(North))
	assert.True(t, r.e.Blocked(West))
	assert.False(t, r.e.Blocked(East))

	r.e.Facing = North
	r.in.Press(config.ActionForward)
	r.step()
	assert.Equal(t, Bumping, r.e.State())
	r.in.Release(config.ActionForward)

	r.step()
	assert.Equal(t, 1, r.audio.Count(config.SoundBump))
	assert.Equal(t, Bumping, r.e.State())

	r.step()
	assert.Equal(t, Idle, r.e.State())
	assert.Zero(t, r.e.Bump)
	assert.Equal(t, Cell{1, 1}, r.e.Cell)
}

func TestExplorerTurns(t *testing.T) {
	r := newRig(t, corridorMap(t), testExplore, nil)

	r.hold(config.ActionLeft)
	assert.Equal(t, North, r.e.Facing)
	assert.InDelta(t, 0, r.e.Angle, 1e-6)

	r.hold(config.ActionLeft)
	assert.Equal(t, West, r.e.Facing)
	assert.InDelta(t, West.Angle(), r.e.Angle, 1e-6)

	r.hold(config.ActionRight)
	assert.Equal(t, North, r.e.Facing)
}

func TestExplorerFreezeIgnoresInput(t *testing.T) {
	r := newRig(t, corridorMap(t), testExplore, nil)
	r.e.Freeze()

	r.in.Press(config.ActionForward)
	r.step()
	r.step()
	assert.Equal(t, Idle, r.e.State())
	assert.Equal(t, Cell{1, 1}, r.e.Cell)

	r.e.Resume()
	r.step()
	assert.Equal(t, Walking, r.e.State())
}

func TestExplorerRandomEncounterAfterSafeSteps(t *testing.T) {
	m, err := loadTest(t, tmx(5, 3, corridor, group("Start", object(1, 1, 1, "facing", "east"))))
	require.NoError(t, err)

	cfg := testExplore
	cfg.EncounterChance = 1
	cfg.SafeSteps = 2
	cfg.RandomFoes = []config.FoeKind{config.FoeGolem}
	r := newRig(t, m, cfg, rand.New(rand.NewPCG(1, 2)))

	assert.Equal(t, config.FoeNone, r.hold(config.ActionForward).Encounter)
	assert.Equal(t, config.FoeNone, r.hold(config.ActionForward).Encounter)
	assert.Equal(t, config.FoeGolem, r.hold(config.ActionBack).Encounter)
	assert.Equal(t, config.FoeNone, r.hold(config.ActionBack).Encounter)
}
