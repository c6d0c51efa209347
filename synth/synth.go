// Package synth renders the game's sound effects and music loops to 16-bit
// little-endian stereo PCM, the format ebiten's audio players consume.
package synth

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	cfg "github.com/automoto/cryptcrawl/config"
)

// BytesPerFrame is one stereo frame of two 16-bit samples.
const BytesPerFrame = 4

// attack is the fade-in applied to every note to avoid clicks, in seconds.
const attack = 0.004

// Tone renders a frequency sweep with a linear decay.
func Tone(t cfg.Tone, sampleRate int) []byte {
	frames := int(t.Duration * float64(sampleRate))
	out := make([]byte, frames*BytesPerFrame)
	noise := rand.New(rand.NewPCG(uint64(t.StartFreq), uint64(t.EndFreq)))

	phase := 0.0
	for i := 0; i < frames; i++ {
		p := float64(i) / float64(frames)
		freq := t.StartFreq + (t.EndFreq-t.StartFreq)*p
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		v := oscillate(t.Wave, phase, noise) * t.Volume * (1 - p) * envelope(i, sampleRate)
		putFrame(out, i, v)
	}
	return out
}

// Track renders one pass of a melody. Looping is left to the player.
func Track(tr cfg.Track, sampleRate int) []byte {
	beat := int(tr.BeatTime * float64(sampleRate))
	out := make([]byte, beat*len(tr.Notes)*BytesPerFrame)
	noise := rand.New(rand.NewPCG(1, uint64(len(tr.Notes))))

	for n, freq := range tr.Notes {
		if freq <= 0 {
			continue
		}
		phase := 0.0
		for i := 0; i < beat; i++ {
			phase += freq / float64(sampleRate)
			phase -= math.Floor(phase)

			// Notes fall to 30% by the end of the beat.
			decay := 1 - 0.7*float64(i)/float64(beat)
			v := oscillate(tr.Wave, phase, noise) * tr.Volume * decay * envelope(i, sampleRate)
			putFrame(out, n*beat+i, v)
		}
	}
	return out
}

// oscillate returns the waveform value in [-1, 1] at phase in [0, 1).
func oscillate(w cfg.Waveform, phase float64, noise *rand.Rand) float64 {
	switch w {
	case cfg.WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case cfg.WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case cfg.WaveNoise:
		return noise.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

func envelope(i, sampleRate int) float64 {
	ramp := attack * float64(sampleRate)
	if float64(i) >= ramp {
		return 1
	}
	return float64(i) / ramp
}

func putFrame(out []byte, frame int, v float64) {
	v = math.Max(-1, math.Min(1, v))
	s := uint16(int16(v * math.MaxInt16))
	off := frame * BytesPerFrame
	binary.LittleEndian.PutUint16(out[off:], s)
	binary.LittleEndian.PutUint16(out[off+2:], s)
}
