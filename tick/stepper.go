package tick

import "time"

// Stepper turns real frame time into fixed-size simulation ticks. A slow
// frame produces several catch-up ticks instead of one large delta.
type Stepper struct {
	// MaxStep caps the length of a single tick.
	MaxStep float64
	// MaxFrame caps how much real time one Advance call will simulate.
	MaxFrame float64

	at   Time
	last time.Time
}

// NewStepper returns a stepper starting at time zero.
func NewStepper(maxStep, maxFrame float64) *Stepper {
	return &Stepper{MaxStep: maxStep, MaxFrame: maxFrame}
}

// Advance consumes elapsed seconds in sub-steps of at most MaxStep and calls
// step once per sub-step. It returns the number of ticks run.
func (s *Stepper) Advance(elapsed float64, step func(Time)) int {
	if elapsed <= 0 {
		return 0
	}
	if s.MaxFrame > 0 && elapsed > s.MaxFrame {
		elapsed = s.MaxFrame
	}

	ticks := 0
	for elapsed > 1e-9 {
		dt := elapsed
		if s.MaxStep > 0 && dt > s.MaxStep {
			dt = s.MaxStep
		}
		elapsed -= dt

		s.at.Now += dt
		s.at.Delta = dt
		step(s.at)
		ticks++
	}
	return ticks
}

// AdvanceTo simulates the wall-clock time since the previous AdvanceTo. The
// first call, and the first after Resync, simulates fallback seconds.
func (s *Stepper) AdvanceTo(now time.Time, fallback float64, step func(Time)) int {
	elapsed := fallback
	if !s.last.IsZero() {
		elapsed = now.Sub(s.last).Seconds()
	}
	s.last = now
	return s.Advance(elapsed, step)
}

// Resync forgets the previous wall-clock reading, so time spent paused is
// not simulated.
func (s *Stepper) Resync() { s.last = time.Time{} }

// Time returns the time of the last tick.
func (s *Stepper) Time() Time { return s.at }
