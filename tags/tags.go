package tags

import "github.com/yohamta/donburi"

var (
	Session = donburi.NewTag().SetName("Session")
)
