package battle

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/foe"
	"github.com/automoto/cryptcrawl/services/servicestest"
	"github.com/automoto/cryptcrawl/tick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 32

type rig struct {
	b     *Battle
	foe   *foe.Foe
	in    *servicestest.Input
	audio *servicestest.Audio
	clock tick.Time
}

func testFoe(health int, audio *servicestest.Audio) *foe.Foe {
	cfg := config.Foes.Get(config.FoeSkeleton)
	cfg.Health = health
	cfg.WindUp = 0.25
	cfg.AttackDuration = 30
	cfg.DyingDuration = 0.25
	cfg.FlyOffDuration = 0.25
	return foe.New(config.FoeSkeleton, cfg, audio, rand.New(rand.NewPCG(7, 11)))
}

func newRig(f func(*servicestest.Audio) *foe.Foe) *rig {
	audio := &servicestest.Audio{}
	r := &rig{
		b:     New(NewPlayer(10), audio),
		in:    servicestest.NewInput(),
		audio: audio,
	}
	r.foe = f(audio)
	r.b.Start(r.foe)
	return r
}

func (r *rig) step() Outcome {
	r.in.Tick()
	r.clock.Now += dt
	r.clock.Delta = dt
	return r.b.Update(r.clock, r.in)
}

func (r *rig) tap(a config.ActionID) Outcome {
	r.in.Press(a)
	out := r.step()
	r.in.Release(a)
	return out
}

// until steps until cond holds, failing after limit ticks.
func (r *rig) until(t *testing.T, limit int, cond func(Outcome) bool) Outcome {
	t.Helper()
	for i := 0; i < limit; i++ {
		if out := r.step(); cond(out) {
			return out
		}
	}
	require.FailNow(t, "condition never held")
	return Outcome{}
}

func (r *rig) fight(t *testing.T) {
	t.Helper()
	r.step()
	r.tap(config.ActionBattleFight)
	r.step()
	require.True(t, r.b.IsProcessingState(Playing))
}

func TestRunFromChoosingStops(t *testing.T) {
	r := newRig(func(a *servicestest.Audio) *foe.Foe { return testFoe(3, a) })

	out := r.tap(config.ActionBattleRun)

	assert.True(t, out.Finished)
	assert.Equal(t, Fled, out.Result)
	assert.False(t, r.b.IsRunning())
	assert.Equal(t, []config.TrackID{config.TrackBattle}, r.audio.Music)

	assert.Equal(t, Outcome{}, r.step())
}

func TestFightCascadesIntoChildren(t *testing.T) {
	r := newRig(func(a *servicestest.Audio) *foe.Foe { return testFoe(3, a) })

	r.fight(t)

	assert.True(t, r.b.JustEntered())
	assert.True(t, r.foe.IsProcessingState(foe.BeginAttacking))
	assert.True(t, r.b.Dodge.IsProcessingState(Ready))
	assert.True(t, r.b.Crosshair.IsProcessingState(CountingDown))
}

func TestWaveEndReturnsToChoosing(t *testing.T) {
	r := newRig(func(a *servicestest.Audio) *foe.Foe {
		f := testFoe(3, a)
		f.Config.AttackDuration = 1
		return f
	})
	r.fight(t)

	r.until(t, 200, func(Outcome) bool { return r.b.IsProcessingState(Choosing) })
	r.step()

	assert.True(t, r.foe.IsProcessingState(foe.Idle))
	assert.Empty(t, r.foe.Bullets)
	assert.True(t, r.b.Crosshair.IsProcessingState(Waiting))
	assert.False(t, r.b.Dodge.IsRunning())
}

func TestLandedBulletsHurtPlayerInLane(t *testing.T) {
	r := newRig(func(a *servicestest.Audio) *foe.Foe { return testFoe(3, a) })
	r.fight(t)

	expected := r.b.Player.Health
	hits := 0
	for i := 0; i < 400 && r.b.Player.Alive(); i++ {
		for _, bullet := range r.foe.Bullets {
			if bullet.Closeness+r.foe.Config.BulletSpeed*dt >= 1 && bullet.Lane == r.b.Dodge.Lane {
				expected -= config.Battle.BulletDamage
			}
		}
		if r.step().PlayerHit {
			hits++
		}
	}

	assert.Positive(t, hits)
	assert.Equal(t, max(expected, 0), r.b.Player.Health)
}

func TestStrikeDamagesFoe(t *testing.T) {
	r := newRig(func(a *servicestest.Audio) *foe.Foe { return testFoe(30, a) })
	r.fight(t)
	r.until(t, 200, func(Outcome) bool { return r.b.Crosshair.IsProcessingState(Aiming) })

	out := r.tap(config.ActionAttack)

	require.NotEqual(t, StrikeNone, out.Strike)
	assert.Equal(t, 30-out.Damage, r.foe.Health)
	assert.Equal(t, out.Strike, r.b.Crosshair.LastStrike)
}

// aimNext predicts the aim value the crosshair will compute on the next tick.
func (r *rig) aimNext() float64 {
	return math.Sin((r.clock.Now + dt) * config.Crosshair.AimFrequency)
}

func TestVictoryAfterFoeDefeated(t *testing.T) {
	r := newRig(func(a *servicestest.Audio) *foe.Foe { return testFoe(1, a) })
	r.fight(t)

	struck := false
	for i := 0; i < 2000 && !struck; i++ {
		if r.b.Crosshair.IsProcessingState(Aiming) && Score(r.aimNext(), r.b.Crosshair.HitRange(), r.b.Crosshair.CritRange()) != StrikeMiss {
			out := r.tap(config.ActionAttack)
			struck = out.Damage > 0
			continue
		}
		r.step()
	}
	require.True(t, struck)
	assert.True(t, r.foe.IsProcessingState(foe.Dying))

	r.until(t, 200, func(o Outcome) bool { return o.FoeDefeated })
	r.until(t, 10, func(Outcome) bool { return r.b.IsProcessingState(Victory) && r.b.JustEntered() })
	assert.Equal(t, 1, r.audio.Count(config.SoundFanfare))

	r.until(t, 200, func(Outcome) bool { return r.b.Ready() })
	out := r.tap(config.ActionConfirm)

	assert.True(t, out.Finished)
	assert.Equal(t, Won, out.Result)
	assert.Equal(t, Won, r.b.Result)
}

func TestDefeatWhenPlayerFalls(t *testing.T) {
	r := newRig(func(a *servicestest.Audio) *foe.Foe { return testFoe(3, a) })
	r.b.Player.Health = 1
	r.fight(t)

	r.until(t, 5000, func(Outcome) bool { return r.b.IsProcessingState(Defeat) })
	r.until(t, 200, func(Outcome) bool { return r.b.Ready() })

	out := r.tap(config.ActionConfirm)
	assert.True(t, out.Finished)
	assert.Equal(t, Lost, out.Result)
	assert.False(t, r.b.Player.Alive())
}

func TestConfirmIgnoredWhileVictoryTimerRuns(t *testing.T) {
	r := newRig(func(a *servicestest.Audio) *foe.Foe { return testFoe(3, a) })
	r.b.machine.ChangeState(Victory)

	out := r.tap(config.ActionConfirm)

	assert.False(t, out.Finished)
	assert.True(t, r.b.IsProcessingState(Victory))
}

func TestMissingFoeIsHarmless(t *testing.T) {
	r := newRig(func(*servicestest.Audio) *foe.Foe { return nil })

	assert.NotPanics(t, func() {
		r.step()
		r.tap(config.ActionBattleFight)
		r.step()
		r.step()
	})
	assert.True(t, r.b.IsProcessingState(Choosing))

	r.b.machine.ChangeState(Defeat)
	assert.NotPanics(t, func() { r.step() })
	assert.True(t, r.b.IsProcessingState(Defeat))
}

func TestResultNames(t *testing.T) {
	assert.Equal(t, "fled", Fled.String())
	assert.Equal(t, "playing", Playing.String())
}
