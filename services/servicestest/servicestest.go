// Package servicestest provides scripted input and recording audio for tests.
package servicestest

import (
	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/services"
)

// Input is a scripted input. Press marks an action held starting with the
// next Tick; Release clears it.
type Input struct {
	services.Frames
	pending [config.ActionCount]bool
}

func NewInput() *Input {
	return &Input{}
}

// Press holds the actions from the next Tick on.
func (in *Input) Press(actions ...config.ActionID) *Input {
	for _, a := range actions {
		in.pending[a] = true
	}
	return in
}

// Release lets go of the actions from the next Tick on.
func (in *Input) Release(actions ...config.ActionID) *Input {
	for _, a := range actions {
		in.pending[a] = false
	}
	return in
}

// Tick starts a new input frame with the pending held set.
func (in *Input) Tick() {
	in.Advance()
	in.Current = in.pending
}

// Tap makes the actions just pressed on the next Tick and released on the
// one after.
func (in *Input) Tap(actions ...config.ActionID) {
	in.Press(actions...)
	in.Tick()
	in.Release(actions...)
}

// Audio records every request.
type Audio struct {
	SFX   []config.SoundID
	Music []config.TrackID
}

func (a *Audio) PlaySFX(id config.SoundID)   { a.SFX = append(a.SFX, id) }
func (a *Audio) PlayMusic(id config.TrackID) { a.Music = append(a.Music, id) }

// Count returns how often id was played.
func (a *Audio) Count(id config.SoundID) int {
	n := 0
	for _, s := range a.SFX {
		if s == id {
			n++
		}
	}
	return n
}

// Reset forgets everything recorded so far.
func (a *Audio) Reset() {
	a.SFX = a.SFX[:0]
	a.Music = a.Music[:0]
}
