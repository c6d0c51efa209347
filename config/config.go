package config

import "image/color"

// FoeKind identifies a foe archetype
type FoeKind int

const (
	FoeNone FoeKind = iota
	FoeSkeleton
	FoeWraith
	FoeGolem
)

var foeNames = map[FoeKind]string{
	FoeSkeleton: "skeleton",
	FoeWraith:   "wraith",
	FoeGolem:    "golem",
}

func (k FoeKind) String() string {
	if name, ok := foeNames[k]; ok {
		return name
	}
	return "none"
}

// ParseFoeKind maps a Tiled property value to a foe kind
func ParseFoeKind(s string) (FoeKind, bool) {
	for k, name := range foeNames {
		if name == s {
			return k, true
		}
	}
	return FoeNone, false
}

// FoeConfig contains configuration for a single foe kind
type FoeConfig struct {
	Name   string
	Health int

	// Phase durations (seconds)
	WindUp         float64 // BeginAttacking before the first shot
	AttackDuration float64 // length of one bullet wave
	HurtDuration   float64
	DyingDuration  float64
	FlyOffDuration float64
	FlyOffHeight   float64 // world units the body rises when flying off

	// Bullets
	ShootInterval     float64 // seconds between shots
	BulletSpeed       float64 // closeness per second
	BulletSpawnY      float64
	BulletSpawnSpread float64 // horizontal spawn offset per lane
	BulletTargetY     float64

	// Shake effect
	ShakeDuration  float64
	ShakeAmplitude float64
	ShakeFrequency float64

	// Visual
	TintColor color.RGBA
}

// FoesConfig contains per-kind foe configuration
type FoesConfig struct {
	Types map[FoeKind]FoeConfig
}

// Get returns the configuration for kind, falling back to the skeleton
func (f FoesConfig) Get(kind FoeKind) FoeConfig {
	if c, ok := f.Types[kind]; ok {
		return c
	}
	return f.Types[FoeSkeleton]
}

// BattleConfig contains battle flow configuration
type BattleConfig struct {
	PlayerHealth    int
	BulletDamage    int // damage a landed bullet deals in the player's lane
	HitDamage       int
	CritDamage      int
	VictoryHeal     int // health restored after a won battle
	VictoryDuration float64 // seconds before Victory accepts confirm
	DefeatDuration  float64
}

// CrosshairConfig contains aiming configuration
type CrosshairConfig struct {
	CountdownDuration float64
	AimDuration       float64
	AimFrequency      float64 // radians per second fed to sin
	TargetingDuration float64
	MissingDuration   float64

	// Scoring bands, inclusive
	HitMin, HitMax   float64
	CritMin, CritMax float64
}

// DodgeConfig contains player dodge configuration
type DodgeConfig struct {
	LaneWidth      float64 // world units between lanes
	DodgeDuration  float64 // tween out to the side lane
	HoldDuration   float64 // time spent in the side lane
	ReturnDuration float64
}

// PopupConfig contains the pop-up text configuration
type PopupConfig struct {
	OpenDuration  float64
	CloseDuration float64
	HoldDuration  float64
	TextColor     color.RGBA
	CritColor     color.RGBA
}

// MugshotConfig contains the player portrait shake configuration
type MugshotConfig struct {
	Duration  float64
	Amplitude float64
	Frequency float64
	Size      float64
}

// DialogConfig contains the typewriter dialog configuration
type DialogConfig struct {
	CharsPerSecond float64
	BlipEvery      int // one blip per this many revealed runes
	BoxPadding     float64
	BoxHeight      float64
	BoxColor       color.RGBA
	TextColor      color.RGBA
}

// FaderConfig contains the screen transition configuration
type FaderConfig struct {
	FadeOutDuration float64
	HoldDuration    float64
	FadeInDuration  float64
	Color           color.RGBA
}

// ExploreConfig contains the exploration configuration
type ExploreConfig struct {
	Level           string
	StepDuration    float64
	TurnDuration    float64
	BumpDuration    float64
	BumpAmplitude   float64
	EncounterChance float64 // chance per step once SafeSteps have passed
	SafeSteps       int
	RandomFoes      []FoeKind
	CellSize        float64 // pixels per cell in the minimap and collision space
}

// StepConfig contains the semi-fixed timestep configuration
type StepConfig struct {
	MaxStep  float64
	MaxFrame float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains title menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	ButtonColor       color.RGBA
	ButtonHoverColor  color.RGBA
	ButtonPressColor  color.RGBA
	ButtonPadding     int
	MenuItemGap       int
	Title             string
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool  // Skip menu and go directly to the dungeon
	Seed     int64 // 0 = seed from the clock
}

// Global configuration instances
var C *Config
var Foes FoesConfig
var Battle BattleConfig
var Crosshair CrosshairConfig
var Dodge DodgeConfig
var Popup PopupConfig
var Mugshot MugshotConfig
var Dialog DialogConfig
var Fader FaderConfig
var Explore ExploreConfig
var Step StepConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Bone         = color.RGBA{R: 230, G: 220, B: 190, A: 255}
	Stone        = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Cryptcrawl",
	}

	skeleton := FoeConfig{
		Name:              "Skeleton",
		Health:            4,
		WindUp:            0.8,
		AttackDuration:    3.0,
		HurtDuration:      0.4,
		DyingDuration:     0.8,
		FlyOffDuration:    0.6,
		FlyOffHeight:      400,
		ShootInterval:     0.4,
		BulletSpeed:       1.0,
		BulletSpawnY:      -40,
		BulletSpawnSpread: 12,
		BulletTargetY:     120,
		ShakeDuration:     0.3,
		ShakeAmplitude:    6,
		ShakeFrequency:    60,
		TintColor:         Bone,
	}

	wraith := skeleton
	wraith.Name = "Wraith"
	wraith.Health = 3
	wraith.WindUp = 0.5
	wraith.AttackDuration = 2.4
	wraith.BulletSpawnSpread = 20
	wraith.TintColor = Purple

	golem := skeleton
	golem.Name = "Golem"
	golem.Health = 8
	golem.WindUp = 1.2
	golem.AttackDuration = 4.0
	golem.HurtDuration = 0.6
	golem.ShakeAmplitude = 3
	golem.TintColor = Stone

	Foes = FoesConfig{
		Types: map[FoeKind]FoeConfig{
			FoeSkeleton: skeleton,
			FoeWraith:   wraith,
			FoeGolem:    golem,
		},
	}

	Battle = BattleConfig{
		PlayerHealth:    10,
		BulletDamage:    1,
		HitDamage:       1,
		CritDamage:      2,
		VictoryHeal:     2,
		VictoryDuration: 1.0,
		DefeatDuration:  1.5,
	}

	Crosshair = CrosshairConfig{
		CountdownDuration: 0.6,
		AimDuration:       2.0,
		AimFrequency:      3.5,
		TargetingDuration: 0.5,
		MissingDuration:   0.5,
		HitMin:            -0.3,
		HitMax:            0.3,
		CritMin:           -0.08,
		CritMax:           0.08,
	}

	Dodge = DodgeConfig{
		LaneWidth:      120,
		DodgeDuration:  0.12,
		HoldDuration:   0.35,
		ReturnDuration: 0.15,
	}

	Popup = PopupConfig{
		OpenDuration:  0.2,
		CloseDuration: 0.15,
		HoldDuration:  0.8,
		TextColor:     White,
		CritColor:     BrightOrange,
	}

	Mugshot = MugshotConfig{
		Duration:  0.4,
		Amplitude: 5,
		Frequency: 50,
		Size:      48,
	}

	Dialog = DialogConfig{
		CharsPerSecond: 40,
		BlipEvery:      2,
		BoxPadding:     8,
		BoxHeight:      72,
		BoxColor:       color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:      White,
	}

	Fader = FaderConfig{
		FadeOutDuration: 0.35,
		HoldDuration:    0.15,
		FadeInDuration:  0.35,
		Color:           Black,
	}

	Explore = ExploreConfig{
		Level:           "crypt",
		StepDuration:    0.25,
		TurnDuration:    0.2,
		BumpDuration:    0.2,
		BumpAmplitude:   4,
		EncounterChance: 0.12,
		SafeSteps:       4,
		RandomFoes:      []FoeKind{FoeSkeleton, FoeWraith},
		CellSize:        16,
	}

	Step = StepConfig{
		MaxStep:  1.0 / 30,
		MaxFrame: 0.25,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 12, B: 20, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		ButtonColor:       DarkBlue,
		ButtonHoverColor:  LightBlue,
		ButtonPressColor:  BrightOrange,
		ButtonPadding:     8,
		MenuItemGap:       12,
		Title:             "CRYPTCRAWL",
		MenuOptions:       []string{"Descend", "Sound", "Exit"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            100,
		MenuStartY:        160,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
