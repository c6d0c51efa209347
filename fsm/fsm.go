// Package fsm is the state automaton that drives every piece of game logic:
// exploration, battle phases, foe behaviour, dialog and screen transitions.
//
// A Machine stores only the key of its current state. What a state does lives
// in a Behavior, usually a package-level Table shared by every machine of that
// kind. All per-activity data belongs in the context passed to each callback,
// so the same state may be active in many machines at once.
//
// Update runs at most one enter and one update per call. When update returns
// Goto, the old state's exit runs immediately and the new state's enter runs
// at the start of the next Update.
package fsm

type flowKind uint8

const (
	flowContinue flowKind = iota
	flowStop
	flowGoto
)

// Flow is the outcome of an update callback.
type Flow[K comparable] struct {
	kind flowKind
	next K
}

// Continue keeps the current state.
func Continue[K comparable]() Flow[K] {
	return Flow[K]{kind: flowContinue}
}

// Stop exits the current state and leaves the machine not running.
func Stop[K comparable]() Flow[K] {
	return Flow[K]{kind: flowStop}
}

// Goto exits the current state and makes next current. next is entered on
// the following Update.
func Goto[K comparable](next K) Flow[K] {
	return Flow[K]{kind: flowGoto, next: next}
}

func (f Flow[K]) IsContinue() bool { return f.kind == flowContinue }
func (f Flow[K]) IsStop() bool     { return f.kind == flowStop }

// Next returns the Goto target.
func (f Flow[K]) Next() (K, bool) {
	return f.next, f.kind == flowGoto
}

// Behavior resolves the callbacks of a state key.
type Behavior[K comparable, C any] interface {
	Enter(ctx C, state K)
	Update(ctx C, state K) Flow[K]
	Exit(ctx C, state K)
}

// State is one node of an enum-keyed graph. Every callback is optional; a
// state without Update never leaves on its own.
type State[K comparable, C any] struct {
	Enter  func(ctx C, state K)
	Update func(ctx C, state K) Flow[K]
	Exit   func(ctx C, state K)
}

// Table maps state keys to their callbacks. Keys missing from the table
// behave like a State with no callbacks.
type Table[K comparable, C any] map[K]State[K, C]

func (t Table[K, C]) Enter(ctx C, state K) {
	if s, ok := t[state]; ok && s.Enter != nil {
		s.Enter(ctx, state)
	}
}

func (t Table[K, C]) Update(ctx C, state K) Flow[K] {
	if s, ok := t[state]; ok && s.Update != nil {
		return s.Update(ctx, state)
	}
	return Continue[K]()
}

func (t Table[K, C]) Exit(ctx C, state K) {
	if s, ok := t[state]; ok && s.Exit != nil {
		s.Exit(ctx, state)
	}
}

// Machine is one running automaton, owned by a single entity. A zero
// Machine treats every state as having no callbacks.
type Machine[K comparable, C any] struct {
	behavior Behavior[K, C]

	current     K
	previous    K
	running     bool
	entered     bool
	justEntered bool

	// generation changes on every state change so Update can tell when a
	// callback replaced the state it was called for.
	generation uint64

	// OnChange fires right after a state's enter callback.
	OnChange func(from, to K)
}

// New returns a stopped machine using b to resolve state callbacks.
func New[K comparable, C any](b Behavior[K, C]) *Machine[K, C] {
	return &Machine[K, C]{behavior: b}
}

// ChangeState makes state current. Its enter fires on the next Update. The
// state being left does not get an exit call, and a target that was never
// entered is simply dropped.
func (m *Machine[K, C]) ChangeState(state K) {
	if m.running {
		m.previous = m.current
	}
	m.current = state
	m.running = true
	m.entered = false
	m.generation++
}

// Reset stops the machine without calling exit.
func (m *Machine[K, C]) Reset() {
	var zero K
	if m.running {
		m.previous = m.current
	}
	m.current = zero
	m.running = false
	m.entered = false
	m.justEntered = false
	m.generation++
}

// Update ticks the current state once. It is a no-op when the machine is not
// running.
func (m *Machine[K, C]) Update(ctx C) {
	m.justEntered = false
	if !m.running {
		return
	}

	if m.behavior == nil {
		m.behavior = Table[K, C]{}
	}

	gen := m.generation
	state := m.current

	if !m.entered {
		m.behavior.Enter(ctx, state)
		if m.generation != gen {
			return
		}
		m.entered = true
		m.justEntered = true
		if m.OnChange != nil {
			m.OnChange(m.previous, state)
		}
	}

	flow := m.behavior.Update(ctx, state)
	if m.generation != gen {
		return
	}

	switch flow.kind {
	case flowStop:
		m.behavior.Exit(ctx, state)
		if m.generation != gen {
			return
		}
		m.Reset()
	case flowGoto:
		m.behavior.Exit(ctx, state)
		if m.generation != gen {
			return
		}
		m.ChangeState(flow.next)
	}
}

// Current returns the current state key, or the zero key when not running.
func (m *Machine[K, C]) Current() K { return m.current }

// Previous returns the state that was current before the last change.
func (m *Machine[K, C]) Previous() K { return m.previous }

func (m *Machine[K, C]) IsRunning() bool { return m.running }

func (m *Machine[K, C]) IsProcessingState(state K) bool {
	return m.running && m.current == state
}

// JustEntered reports whether the last Update ran the current state's enter.
func (m *Machine[K, C]) JustEntered() bool { return m.justEntered }
