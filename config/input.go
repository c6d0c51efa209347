package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionAttack
	ActionConfirm
	ActionBattleFight
	ActionBattleRun
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionForward:     "forward",
	ActionBack:        "back",
	ActionLeft:        "left",
	ActionRight:       "right",
	ActionAttack:      "attack",
	ActionConfirm:     "confirm",
	ActionBattleFight: "fight",
	ActionBattleRun:   "run",
	ActionPause:       "pause",
	ActionMenuUp:      "menu-up",
	ActionMenuDown:    "menu-down",
	ActionMenuSelect:  "menu-select",
	ActionMenuBack:    "menu-back",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputConfig holds device-independent input tuning
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}
