package services_test

import (
	"testing"

	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/services"
	"github.com/automoto/cryptcrawl/services/servicestest"
	"github.com/stretchr/testify/assert"
)

func TestFramesEdges(t *testing.T) {
	var f services.Frames
	f.Current[config.ActionAttack] = true

	assert.True(t, f.Held(config.ActionAttack))
	assert.True(t, f.JustPressed(config.ActionAttack))
	assert.False(t, f.JustReleased(config.ActionAttack))

	f.Advance()
	assert.False(t, f.Held(config.ActionAttack))
	assert.True(t, f.JustReleased(config.ActionAttack))
}

func TestScriptedInput(t *testing.T) {
	in := servicestest.NewInput()
	in.Press(config.ActionForward)
	assert.False(t, in.Held(config.ActionForward))

	in.Tick()
	assert.True(t, in.JustPressed(config.ActionForward))

	in.Tick()
	assert.True(t, in.Held(config.ActionForward))
	assert.False(t, in.JustPressed(config.ActionForward))

	in.Release(config.ActionForward).Tick()
	assert.True(t, in.JustReleased(config.ActionForward))
}

func TestTap(t *testing.T) {
	in := servicestest.NewInput()
	in.Tap(config.ActionConfirm)
	assert.True(t, in.JustPressed(config.ActionConfirm))

	in.Tick()
	assert.False(t, in.Held(config.ActionConfirm))
}

func TestRecordingAudio(t *testing.T) {
	var a servicestest.Audio
	var _ services.Audio = &a

	a.PlaySFX(config.SoundBlip)
	a.PlaySFX(config.SoundBlip)
	a.PlayMusic(config.TrackBattle)
	assert.Equal(t, 2, a.Count(config.SoundBlip))
	assert.Equal(t, []config.TrackID{config.TrackBattle}, a.Music)

	a.Reset()
	assert.Empty(t, a.SFX)
}
