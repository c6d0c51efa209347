package systems

import (
	"fmt"

	"github.com/automoto/cryptcrawl/components"
	cfg "github.com/automoto/cryptcrawl/config"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuActions are what the title options do
type MenuActions map[components.TitleOption]func()

// NewUpdateMenu creates the keyboard and gamepad driver of the title menu.
// Mouse clicks on the title buttons call the same actions.
func NewUpdateMenu(actions MenuActions) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(cfg.Menu.MenuOptions)
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			if act, ok := actions[components.TitleOption(menu.SelectedIndex)]; ok {
				act()
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			if act, ok := actions[components.TitleExit]; ok {
				act()
			}
		}
	}
}

// CycleVolume steps both volumes to the next setting and saves it.
func CycleVolume(e *ecs.ECS) {
	next := cfg.NextVolumeStep(GetMusicVolume())
	SetMusicVolume(e, next)
	SetSFXVolume(e, next)
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings()
}

// GetOptionLabel returns the display text for a title option
func GetOptionLabel(option components.TitleOption) string {
	if int(option) >= len(cfg.Menu.MenuOptions) {
		return ""
	}
	label := cfg.Menu.MenuOptions[option]
	if option == components.TitleSound {
		label = fmt.Sprintf("%s: %s", label, formatVolumeBar(GetMusicVolume()))
	}
	return label
}

// formatVolumeBar renders a volume as filled and empty blocks
func formatVolumeBar(volume float64) string {
	steps := len(cfg.SettingsMenu.VolumeSteps) - 1
	filled := int(volume*float64(steps) + 0.5)
	bar := ""
	for i := 0; i < steps; i++ {
		if i < filled {
			bar += "#"
		} else {
			bar += "-"
		}
	}
	return fmt.Sprintf("[%s]", bar)
}

// GetMenuHint returns the appropriate hint for menu navigation
func GetMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// GetInputMethod returns the last input method used in this scene
func GetInputMethod(e *ecs.ECS) components.InputMethod {
	return getOrCreateInput(e).LastInputMethod
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}
