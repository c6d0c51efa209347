package systems

import (
	"log"
	"sync"

	"github.com/automoto/cryptcrawl/assets"
	"github.com/automoto/cryptcrawl/components"
	cfg "github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/services"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicTrack   cfg.TrackID
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalFadeLeft     float64 // seconds
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.SFX {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// UpdateAudio flushes queued sounds and music and runs the music fade out
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalFadeLeft > 0 {
		globalFadeLeft -= 1 / float64(ebiten.TPS())
		if globalFadeLeft <= 0 {
			StopMusic(e)
		} else if globalMusicPlayer != nil {
			globalMusicPlayer.SetVolume(globalFadeStart * globalFadeLeft / cfg.Audio.MusicFadeDuration)
		}
	}

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if audioData.PendingMusic != cfg.TrackNone {
		PlayMusic(e, audioData.PendingMusic)
		audioData.PendingMusic = cfg.TrackNone
	}
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts looping a track, replacing whatever was playing
func PlayMusic(e *ecs.ECS, track cfg.TrackID) {
	initGlobalAudio()

	// Already playing this music
	if globalMusicTrack == track && globalMusicPlayer != nil && globalFadeLeft <= 0 {
		return
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
	}

	player, err := globalAudioLoader.LoadMusic(track)
	if err != nil {
		globalMusicPlayer = nil
		globalMusicTrack = cfg.TrackNone
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicTrack = track
	globalFadeLeft = 0
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeLeft = cfg.Audio.MusicFadeDuration
	globalFadeStart = globalMusicVolume
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicTrack = cfg.TrackNone
	}
	globalFadeLeft = 0
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// QueueMusic asks UpdateAudio to switch tracks on its next run
func QueueMusic(e *ecs.ECS, track cfg.TrackID) {
	GetOrCreateAudio(e).PendingMusic = track
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(e *ecs.ECS, volume float64) {
	globalMusicVolume = volume
	if entry, ok := components.Audio.First(e.World); ok {
		components.Audio.Get(entry).MusicVolume = volume
	}
	if globalMusicPlayer != nil && globalFadeLeft <= 0 {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	if entry, ok := components.Audio.First(e.World); ok {
		components.Audio.Get(entry).SFXVolume = volume
	}
}

// GetMusicVolume returns the current music volume (0.0 - 1.0)
func GetMusicVolume() float64 {
	return globalMusicVolume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:     globalAudioContext,
			MusicVolume: globalMusicVolume,
			SFXVolume:   globalSFXVolume,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// ecsAudio hands the game logic a services.Audio that queues onto the
// scene's Audio component.
type ecsAudio struct {
	e *ecs.ECS
}

// NewAudio returns the audio service for a scene's game logic.
func NewAudio(e *ecs.ECS) services.Audio {
	return ecsAudio{e: e}
}

func (a ecsAudio) PlaySFX(id cfg.SoundID)   { PlaySFX(a.e, id) }
func (a ecsAudio) PlayMusic(id cfg.TrackID) { QueueMusic(a.e, id) }
