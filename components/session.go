package components

import (
	"github.com/automoto/cryptcrawl/crawl"
	"github.com/automoto/cryptcrawl/telemetry"
	"github.com/automoto/cryptcrawl/tick"
	"github.com/yohamta/donburi"
)

// SessionData holds the running crawl and the clock that drives it.
type SessionData struct {
	Session *crawl.Session
	Stepper *tick.Stepper
	Trace   *telemetry.Run

	// Victories counts battles won this run.
	Victories int
	Over      bool
}

var Session = donburi.NewComponentType[SessionData]()
