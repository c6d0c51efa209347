package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type light int

const (
	lightOff light = iota
	lightRed
	lightGreen
	lightAmber
)

type recorder struct {
	enters  map[light]int
	updates map[light]int
	exits   map[light]int
	log     []string
	next    map[light]Flow[light]
}

func newRecorder() *recorder {
	return &recorder{
		enters:  map[light]int{},
		updates: map[light]int{},
		exits:   map[light]int{},
		next:    map[light]Flow[light]{},
	}
}

func (p *recorder) flow(s light) Flow[light] {
	if f, ok := p.next[s]; ok {
		return f
	}
	return Continue[light]()
}

func recorderState() State[light, *recorder] {
	return State[light, *recorder]{
		Enter: func(p *recorder, s light) {
			p.enters[s]++
			p.log = append(p.log, "enter")
		},
		Update: func(p *recorder, s light) Flow[light] {
			p.updates[s]++
			p.log = append(p.log, "update")
			return p.flow(s)
		},
		Exit: func(p *recorder, s light) {
			p.exits[s]++
			p.log = append(p.log, "exit")
		},
	}
}

var recorderTable = Table[light, *recorder]{
	lightRed:   recorderState(),
	lightGreen: recorderState(),
	lightAmber: recorderState(),
}

func TestUpdateOnStoppedMachineIsNoop(t *testing.T) {
	m := New[light, *recorder](recorderTable)
	p := newRecorder()

	for i := 0; i < 3; i++ {
		m.Update(p)
	}

	assert.False(t, m.IsRunning())
	assert.Empty(t, p.log)
}

func TestEnterFiresOncePerActivation(t *testing.T) {
	m := New[light, *recorder](recorderTable)
	p := newRecorder()
	m.ChangeState(lightRed)

	const ticks = 7
	for i := 0; i < ticks; i++ {
		m.Update(p)
	}

	assert.Equal(t, 1, p.enters[lightRed])
	assert.Equal(t, ticks, p.updates[lightRed])
	assert.Zero(t, p.exits[lightRed])
	assert.Equal(t, []string{"enter", "update"}, p.log[:2])
}

func TestStateWithoutUpdateNeverLeaves(t *testing.T) {
	table := Table[light, *recorder]{
		lightRed: {Enter: func(p *recorder, _ light) { p.enters[lightRed]++ }},
	}
	m := New[light, *recorder](table)
	p := newRecorder()
	m.ChangeState(lightRed)

	for i := 0; i < 100; i++ {
		m.Update(p)
	}

	assert.True(t, m.IsProcessingState(lightRed))
	assert.Equal(t, 1, p.enters[lightRed])
}

func TestMissingTableEntryIsHarmless(t *testing.T) {
	m := New[light, *recorder](Table[light, *recorder]{})
	m.ChangeState(lightAmber)
	m.Update(newRecorder())
	assert.True(t, m.IsProcessingState(lightAmber))
}

func TestZeroMachineRunsEmptyStates(t *testing.T) {
	var m Machine[light, *recorder]
	m.ChangeState(lightGreen)

	assert.NotPanics(t, func() { m.Update(newRecorder()) })
	assert.True(t, m.IsProcessingState(lightGreen))
	assert.True(t, m.JustEntered())
}

func TestStopExitsOnceAndStops(t *testing.T) {
	m := New[light, *recorder](recorderTable)
	p := newRecorder()
	m.ChangeState(lightRed)

	m.Update(p)
	m.Update(p)
	p.next[lightRed] = Stop[light]()
	m.Update(p)

	assert.Equal(t, 1, p.exits[lightRed])
	assert.False(t, m.IsRunning())
	assert.False(t, m.IsProcessingState(lightRed))
	assert.Equal(t, lightRed, m.Previous())

	m.Update(p)
	m.Update(p)
	assert.Equal(t, 3, p.updates[lightRed])
	assert.Equal(t, 1, p.exits[lightRed])
}

func TestGotoDelaysEnterByOneTick(t *testing.T) {
	m := New[light, *recorder](recorderTable)
	p := newRecorder()
	m.ChangeState(lightRed)
	m.Update(p)

	p.next[lightRed] = Goto(lightGreen)
	m.Update(p)

	require.True(t, m.IsProcessingState(lightGreen))
	assert.Equal(t, 1, p.exits[lightRed])
	assert.Zero(t, p.enters[lightGreen], "enter must wait for the next tick")
	assert.Equal(t, lightRed, m.Previous())

	p.log = nil
	m.Update(p)
	assert.Equal(t, 1, p.enters[lightGreen])
	assert.Equal(t, []string{"enter", "update"}, p.log)
	assert.True(t, m.JustEntered())
	assert.Equal(t, lightRed, m.Previous(), "previous survives the entering tick")

	m.Update(p)
	assert.False(t, m.JustEntered())
}

func TestChangeStateSupersedesPendingTarget(t *testing.T) {
	m := New[light, *recorder](recorderTable)
	p := newRecorder()

	m.ChangeState(lightGreen)
	m.ChangeState(lightAmber)
	m.Update(p)

	assert.Zero(t, p.enters[lightGreen])
	assert.Equal(t, 1, p.enters[lightAmber])
	assert.True(t, m.IsProcessingState(lightAmber))
}

func TestChangeStateDoesNotExit(t *testing.T) {
	m := New[light, *recorder](recorderTable)
	p := newRecorder()
	m.ChangeState(lightRed)
	m.Update(p)

	m.ChangeState(lightGreen)
	m.Update(p)

	assert.Zero(t, p.exits[lightRed])
	assert.Equal(t, 1, p.enters[lightGreen])
}

func TestResetSkipsExit(t *testing.T) {
	m := New[light, *recorder](recorderTable)
	p := newRecorder()
	m.ChangeState(lightRed)
	m.Update(p)

	m.Reset()

	assert.False(t, m.IsRunning())
	assert.Zero(t, p.exits[lightRed])
}

func TestReenterAfterLeaving(t *testing.T) {
	m := New[light, *recorder](recorderTable)
	p := newRecorder()
	m.ChangeState(lightRed)
	p.next[lightRed] = Goto(lightGreen)
	p.next[lightGreen] = Goto(lightRed)

	for i := 0; i < 4; i++ {
		m.Update(p)
	}

	assert.Equal(t, 2, p.enters[lightRed])
	assert.Equal(t, 2, p.enters[lightGreen])
}

func TestOnChangeFiresAfterEnter(t *testing.T) {
	m := New[light, *recorder](recorderTable)
	p := newRecorder()

	var changes [][2]light
	m.OnChange = func(from, to light) {
		assert.Equal(t, 1, p.enters[to])
		changes = append(changes, [2]light{from, to})
	}

	m.ChangeState(lightRed)
	m.Update(p)
	p.next[lightRed] = Goto(lightAmber)
	m.Update(p)
	m.Update(p)

	assert.Equal(t, [][2]light{{lightOff, lightRed}, {lightRed, lightAmber}}, changes)
}

func TestCallbackChangeStateWinsOverFlow(t *testing.T) {
	var m *Machine[light, *recorder]
	table := Table[light, *recorder]{
		lightRed: {
			Update: func(p *recorder, _ light) Flow[light] {
				m.ChangeState(lightAmber)
				return Goto(lightGreen)
			},
			Exit: func(p *recorder, s light) { p.exits[s]++ },
		},
	}
	m = New[light, *recorder](table)
	p := newRecorder()
	m.ChangeState(lightRed)
	m.Update(p)

	assert.True(t, m.IsProcessingState(lightAmber))
	assert.Zero(t, p.exits[lightRed])
}

func TestContextAndStateArePassed(t *testing.T) {
	type ctx struct{ seen []light }
	table := Table[light, *ctx]{
		lightGreen: {
			Update: func(c *ctx, s light) Flow[light] {
				c.seen = append(c.seen, s)
				return Stop[light]()
			},
		},
	}
	m := New[light, *ctx](table)
	c := &ctx{}
	m.ChangeState(lightGreen)
	m.Update(c)

	assert.Equal(t, []light{lightGreen}, c.seen)
}

func TestFlowAccessors(t *testing.T) {
	assert.True(t, Continue[light]().IsContinue())
	assert.True(t, Stop[light]().IsStop())

	next, ok := Goto(lightAmber).Next()
	assert.True(t, ok)
	assert.Equal(t, lightAmber, next)

	_, ok = Continue[light]().Next()
	assert.False(t, ok)
}
