package components

import "github.com/yohamta/donburi"

// TitleOption represents the title menu selections
type TitleOption int

const (
	TitleDescend TitleOption = iota
	TitleSound
	TitleExit
)

// MenuData stores the current state of the title menu
type MenuData struct {
	SelectedIndex int
}

// Menu is the component type for title menu state
var Menu = donburi.NewComponentType[MenuData]()
