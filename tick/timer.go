// Package tick holds the time primitives the automata run on: the shared
// per-tick time record, countdown timers and the semi-fixed timestep.
package tick

// Time is the read-only clock every state consults during a tick.
type Time struct {
	// Now is the cumulative simulated time in seconds.
	Now float64
	// Delta is the length of the current tick in seconds.
	Delta float64
}

// Status of a Timer.
type Status int

const (
	Stopped Status = iota
	Running
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "stopped"
	}
}

// Timer counts down from a duration to zero. States share one Timer
// sequentially; every Start resets it.
type Timer struct {
	duration  float64
	remaining float64
	status    Status

	justStarted  bool
	justTimedOut bool

	// OnTimeout fires once on the tick the timer runs out.
	OnTimeout func()
}

// NewTimer returns a stopped timer with the given default duration.
func NewTimer(duration float64) *Timer {
	return &Timer{duration: duration}
}

// Start (re)starts the timer. A positive duration replaces the stored one;
// zero or negative reuses the last duration.
func (t *Timer) Start(duration float64) {
	if duration > 0 {
		t.duration = duration
	}
	t.remaining = t.duration
	t.status = Running
	t.justStarted = true
	t.justTimedOut = false
}

// Stop halts the timer without firing the timeout.
func (t *Timer) Stop() {
	t.status = Stopped
	t.justStarted = false
}

// Update advances the timer by dt seconds.
func (t *Timer) Update(dt float64) {
	t.justTimedOut = false
	if t.status != Running {
		t.justStarted = false
		return
	}

	t.remaining -= dt
	if t.remaining <= 0 {
		t.remaining = 0
		t.status = Stopped
		t.justTimedOut = true
		if t.OnTimeout != nil {
			t.OnTimeout()
		}
	}
	t.justStarted = false
}

// Progress returns how far the countdown is, from 0 to 1. A zero duration
// divides by zero; callers avoid it.
func (t *Timer) Progress() float64 {
	return (t.duration - t.remaining) / t.duration
}

func (t *Timer) Running() bool      { return t.status == Running }
func (t *Timer) Status() Status     { return t.status }
func (t *Timer) Duration() float64  { return t.duration }
func (t *Timer) Remaining() float64 { return t.remaining }

// JustStarted is true between Start and the end of the next Update.
func (t *Timer) JustStarted() bool { return t.justStarted }

// TimedOut is true only during the tick the timer ran out.
func (t *Timer) TimedOut() bool { return t.justTimedOut }
