package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type blinker struct {
	a      *Automaton
	on     *Node
	off    *Node
	ticks  int
	events []string
}

func newBlinker() *blinker {
	b := &blinker{a: NewAutomaton()}
	b.on = &Node{
		Name:  "on",
		Enter: func() { b.events = append(b.events, "enter on") },
		Update: func() Flow[*Node] {
			b.ticks++
			if b.ticks == 2 {
				return b.off.Goto()
			}
			return Continue[*Node]()
		},
		Exit: func() { b.events = append(b.events, "exit on") },
	}
	b.off = &Node{
		Name:  "off",
		Enter: func() { b.events = append(b.events, "enter off") },
		Update: func() Flow[*Node] {
			return Stop[*Node]()
		},
		Exit: func() { b.events = append(b.events, "exit off") },
	}
	return b
}

func TestAutomatonRunsNodes(t *testing.T) {
	b := newBlinker()
	b.a.ChangeState(b.on)

	b.a.Update()
	b.a.Update()
	assert.Equal(t, b.off, b.a.Current())
	assert.Equal(t, []string{"enter on", "exit on"}, b.events)

	b.a.Update()
	assert.False(t, b.a.IsRunning())
	assert.Nil(t, b.a.Current())
	assert.Equal(t, []string{"enter on", "exit on", "enter off", "exit off"}, b.events)

	b.a.Update()
	assert.Len(t, b.events, 4)
}

func TestAutomatonNilStops(t *testing.T) {
	b := newBlinker()
	b.a.ChangeState(b.on)
	b.a.Update()

	b.a.ChangeState(nil)

	assert.False(t, b.a.IsRunning())
	assert.NotContains(t, b.events, "exit on")
}

func TestAutomatonOnChange(t *testing.T) {
	b := newBlinker()
	var names []string
	b.a.OnChange(func(_, to *Node) { names = append(names, to.String()) })

	b.a.ChangeState(b.on)
	for i := 0; i < 3; i++ {
		b.a.Update()
	}

	assert.Equal(t, []string{"on", "off"}, names)
}

func TestEmptyNodeIsInert(t *testing.T) {
	a := NewAutomaton()
	idle := &Node{Name: "idle"}
	a.ChangeState(idle)
	for i := 0; i < 5; i++ {
		a.Update()
	}
	assert.True(t, a.IsProcessingState(idle))
	assert.Equal(t, "<none>", (*Node)(nil).String())
}
