package fsm

// Node is a self-contained state: its delegates are already bound to the
// object that owns them, so they take no arguments.
type Node struct {
	Name   string
	Enter  func()
	Update func() Flow[*Node]
	Exit   func()
}

func (n *Node) String() string {
	if n == nil {
		return "<none>"
	}
	return n.Name
}

// Goto is shorthand for Goto[*Node](n).
func (n *Node) Goto() Flow[*Node] {
	return Goto(n)
}

type nodes struct{}

func (nodes) Enter(_ struct{}, n *Node) {
	if n.Enter != nil {
		n.Enter()
	}
}

func (nodes) Update(_ struct{}, n *Node) Flow[*Node] {
	if n.Update != nil {
		return n.Update()
	}
	return Continue[*Node]()
}

func (nodes) Exit(_ struct{}, n *Node) {
	if n.Exit != nil {
		n.Exit()
	}
}

// Automaton runs Nodes. States are compared by identity.
type Automaton struct {
	m Machine[*Node, struct{}]
}

// NewAutomaton returns a stopped automaton.
func NewAutomaton() *Automaton {
	a := &Automaton{}
	a.m.behavior = nodes{}
	return a
}

// ChangeState makes n current; nil stops the automaton without exit.
func (a *Automaton) ChangeState(n *Node) {
	if n == nil {
		a.m.Reset()
		return
	}
	a.m.ChangeState(n)
}

func (a *Automaton) Update() { a.m.Update(struct{}{}) }

func (a *Automaton) Current() *Node  { return a.m.Current() }
func (a *Automaton) Previous() *Node { return a.m.Previous() }
func (a *Automaton) IsRunning() bool { return a.m.IsRunning() }
func (a *Automaton) JustEntered() bool {
	return a.m.JustEntered()
}

func (a *Automaton) IsProcessingState(n *Node) bool {
	return a.m.IsProcessingState(n)
}

// OnChange registers the state-changed notification.
func (a *Automaton) OnChange(fn func(from, to *Node)) {
	a.m.OnChange = fn
}
