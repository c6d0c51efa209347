// Package services declares the collaborators the game logic talks to
// without knowing how they are implemented: polled input and
// fire-and-forget audio.
package services

import "github.com/automoto/cryptcrawl/config"

// Input answers polled queries about logical actions for the current tick.
type Input interface {
	Held(a config.ActionID) bool
	JustPressed(a config.ActionID) bool
	JustReleased(a config.ActionID) bool
}

// Audio plays sounds. Calls never block and return nothing.
type Audio interface {
	PlaySFX(id config.SoundID)
	PlayMusic(id config.TrackID)
}

// Silent is an Audio that drops every request.
type Silent struct{}

func (Silent) PlaySFX(config.SoundID)   {}
func (Silent) PlayMusic(config.TrackID) {}

// NoInput is an Input with nothing pressed.
type NoInput struct{}

func (NoInput) Held(config.ActionID) bool         { return false }
func (NoInput) JustPressed(config.ActionID) bool  { return false }
func (NoInput) JustReleased(config.ActionID) bool { return false }

// Frames is an Input backed by two frames of pressed flags. The ECS input
// component and the test fakes both build on it.
type Frames struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

// Advance moves the current frame to the previous one and clears current.
func (f *Frames) Advance() {
	f.Previous = f.Current
	f.Current = [config.ActionCount]bool{}
}

func (f *Frames) Held(a config.ActionID) bool {
	return f.Current[a]
}

func (f *Frames) JustPressed(a config.ActionID) bool {
	return f.Current[a] && !f.Previous[a]
}

func (f *Frames) JustReleased(a config.ActionID) bool {
	return !f.Current[a] && f.Previous[a]
}
