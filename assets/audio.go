package assets

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader renders and caches the synthesized audio
type AudioLoader struct {
	sfxCache   map[cfg.SoundID][]byte // Rendered PCM per sound
	musicCache map[cfg.TrackID][]byte
	context    *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache:   make(map[cfg.SoundID][]byte),
		musicCache: make(map[cfg.TrackID][]byte),
		context:    ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid lag on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	tone, ok := cfg.Sound.SFX[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	l.sfxCache[id] = synth.Tone(tone, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// LoadMusic returns a looping player for a track.
func (l *AudioLoader) LoadMusic(id cfg.TrackID) (*audio.Player, error) {
	pcm, ok := l.musicCache[id]
	if !ok {
		track, found := cfg.Sound.Music[id]
		if !found {
			return nil, fmt.Errorf("no melody for track %d", id)
		}
		pcm = synth.Track(track, l.context.SampleRate())
		l.musicCache[id] = pcm
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return l.context.NewPlayer(loop)
}
