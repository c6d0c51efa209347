package synth

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/cryptcrawl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(pcm []byte, frame int) (left, right int16) {
	off := frame * BytesPerFrame
	return int16(binary.LittleEndian.Uint16(pcm[off:])), int16(binary.LittleEndian.Uint16(pcm[off+2:]))
}

func TestToneLength(t *testing.T) {
	pcm := Tone(cfg.Tone{Wave: cfg.WaveSquare, StartFreq: 440, EndFreq: 440, Duration: 0.5, Volume: 1}, 1000)
	assert.Len(t, pcm, 500*BytesPerFrame)
}

func TestToneDecaysAndStaysStereo(t *testing.T) {
	pcm := Tone(cfg.Tone{Wave: cfg.WaveSquare, StartFreq: 100, EndFreq: 100, Duration: 1, Volume: 1}, 1000)

	l, r := sample(pcm, 100)
	assert.Equal(t, l, r)
	early := abs(l)
	l, _ = sample(pcm, 900)
	assert.Greater(t, early, abs(l))
}

func TestToneStartsSilent(t *testing.T) {
	pcm := Tone(cfg.Tone{Wave: cfg.WaveSquare, StartFreq: 100, EndFreq: 100, Duration: 1, Volume: 1}, 1000)
	l, _ := sample(pcm, 0)
	assert.Zero(t, l)
}

func TestNoiseIsDeterministic(t *testing.T) {
	tone := cfg.Tone{Wave: cfg.WaveNoise, StartFreq: 200, EndFreq: 80, Duration: 0.1, Volume: 0.5}
	assert.Equal(t, Tone(tone, 8000), Tone(tone, 8000))
}

func TestTrackRests(t *testing.T) {
	tr := cfg.Track{Wave: cfg.WaveTriangle, Notes: []float64{200, 0}, BeatTime: 0.1, Volume: 1}
	pcm := Track(tr, 1000)
	require.Len(t, pcm, 200*BytesPerFrame)

	var loud bool
	for i := 0; i < 100; i++ {
		if l, _ := sample(pcm, i); l != 0 {
			loud = true
		}
	}
	assert.True(t, loud)
	for i := 100; i < 200; i++ {
		l, _ := sample(pcm, i)
		require.Zero(t, l, "frame %d", i)
	}
}

func TestEveryConfiguredSoundRenders(t *testing.T) {
	for id, tone := range cfg.Sound.SFX {
		assert.NotEmpty(t, Tone(tone, cfg.Audio.SampleRate), "sound %d", id)
	}
	for id, tr := range cfg.Sound.Music {
		assert.NotEmpty(t, Track(tr, cfg.Audio.SampleRate), "track %d", id)
	}
}

func abs(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
