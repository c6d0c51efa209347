package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Battle sounds
	SoundShoot
	SoundHurt
	SoundDeath
	SoundPlayerHit
	SoundDodge
	SoundStrike
	SoundCritical
	SoundMiss
	SoundFanfare
	// Exploration sounds
	SoundStep
	SoundBump
	SoundEncounter
	// UI sounds
	SoundBlip
	SoundMenuNavigate
	SoundMenuSelect
)

// TrackID represents a music track
type TrackID int

const (
	TrackNone TrackID = iota
	TrackTitle
	TrackCrypt
	TrackBattle
	TrackGameOver
)

// Waveform selects the oscillator used to synthesize a tone
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveTriangle
	WaveSine
	WaveNoise
)

// Tone describes a synthesized sound: a frequency sweep with a linear decay
type Tone struct {
	Wave      Waveform
	StartFreq float64 // Hz
	EndFreq   float64 // Hz
	Duration  float64 // seconds
	Volume    float64 // 0.0 - 1.0
}

// Track is a looping melody; a zero note is a rest
type Track struct {
	Wave     Waveform
	Notes    []float64 // Hz per beat
	BeatTime float64   // seconds per note
	Volume   float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration float64 // seconds
}

// SoundConfig maps sound and track IDs to their synthesis parameters
type SoundConfig struct {
	SFX               map[SoundID]Tone
	Music             map[TrackID]Track
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.5,
		DefaultSFXVol:     0.8,
		MusicFadeDuration: 1.0,
	}

	Sound = SoundConfig{
		SFX: map[SoundID]Tone{
			SoundShoot:        {Wave: WaveSquare, StartFreq: 880, EndFreq: 440, Duration: 0.08, Volume: 0.3},
			SoundHurt:         {Wave: WaveNoise, StartFreq: 400, EndFreq: 200, Duration: 0.15, Volume: 0.5},
			SoundDeath:        {Wave: WaveSquare, StartFreq: 440, EndFreq: 55, Duration: 0.6, Volume: 0.5},
			SoundPlayerHit:    {Wave: WaveNoise, StartFreq: 200, EndFreq: 80, Duration: 0.2, Volume: 0.6},
			SoundDodge:        {Wave: WaveTriangle, StartFreq: 300, EndFreq: 600, Duration: 0.07, Volume: 0.3},
			SoundStrike:       {Wave: WaveSquare, StartFreq: 220, EndFreq: 110, Duration: 0.12, Volume: 0.5},
			SoundCritical:     {Wave: WaveSquare, StartFreq: 660, EndFreq: 1320, Duration: 0.2, Volume: 0.5},
			SoundMiss:         {Wave: WaveTriangle, StartFreq: 200, EndFreq: 150, Duration: 0.1, Volume: 0.3},
			SoundFanfare:      {Wave: WaveSquare, StartFreq: 523, EndFreq: 1046, Duration: 0.5, Volume: 0.4},
			SoundStep:         {Wave: WaveNoise, StartFreq: 120, EndFreq: 90, Duration: 0.05, Volume: 0.2},
			SoundBump:         {Wave: WaveSine, StartFreq: 90, EndFreq: 60, Duration: 0.12, Volume: 0.5},
			SoundEncounter:    {Wave: WaveSquare, StartFreq: 110, EndFreq: 880, Duration: 0.4, Volume: 0.4},
			SoundBlip:         {Wave: WaveSquare, StartFreq: 1200, EndFreq: 1200, Duration: 0.02, Volume: 0.15},
			SoundMenuNavigate: {Wave: WaveTriangle, StartFreq: 660, EndFreq: 660, Duration: 0.04, Volume: 0.3},
			SoundMenuSelect:   {Wave: WaveTriangle, StartFreq: 660, EndFreq: 990, Duration: 0.08, Volume: 0.3},
		},
		Music: map[TrackID]Track{
			TrackTitle:    {Wave: WaveTriangle, Notes: []float64{220, 0, 262, 0, 247, 0, 196, 0}, BeatTime: 0.4, Volume: 0.25},
			TrackCrypt:    {Wave: WaveTriangle, Notes: []float64{110, 0, 0, 131, 0, 0, 117, 0}, BeatTime: 0.5, Volume: 0.25},
			TrackBattle:   {Wave: WaveSquare, Notes: []float64{220, 220, 262, 220, 294, 262, 247, 196}, BeatTime: 0.18, Volume: 0.15},
			TrackGameOver: {Wave: WaveSine, Notes: []float64{196, 185, 175, 165, 0, 0, 0, 0}, BeatTime: 0.6, Volume: 0.25},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundPlayerHit: 1.5,
			SoundCritical:  1.2,
		},
	}
}
