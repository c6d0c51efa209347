package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Fullscreen  bool    `json:"fullscreen"`
}

// SavedRecord tallies finished runs across sessions
type SavedRecord struct {
	Runs      int `json:"runs"`
	Victories int `json:"victories"`
	MostSteps int `json:"mostSteps"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "cryptcrawl",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet.
func LoadSettings() *SavedSettings {
	var s SavedSettings
	if !loadItem("settings", &s) {
		return nil
	}
	return &s
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem("settings", s)
}

// SaveCurrentSettings saves the live volumes and window mode
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		MusicVolume: globalMusicVolume,
		SFXVolume:   globalSFXVolume,
		Fullscreen:  ebiten.IsFullscreen(),
	})
}

// ApplySavedSettings applies loaded settings to a running scene
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetMusicVolume(e, saved.MusicVolume)
	SetSFXVolume(e, saved.SFXVolume)
	ebiten.SetFullscreen(saved.Fullscreen)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	globalMusicVolume = saved.MusicVolume
	globalSFXVolume = saved.SFXVolume
	ebiten.SetFullscreen(saved.Fullscreen)
}

// LoadRecord returns the saved run tally, zero when none exists
func LoadRecord() SavedRecord {
	var r SavedRecord
	loadItem("record", &r)
	return r
}

// RecordRun adds a finished run to the saved tally
func RecordRun(victories, steps int) SavedRecord {
	r := LoadRecord()
	r.Runs++
	r.Victories += victories
	if steps > r.MostSteps {
		r.MostSteps = steps
	}
	_ = saveItem("record", &r)
	return r
}
