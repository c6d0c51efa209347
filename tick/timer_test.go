package tick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerRoundTrip(t *testing.T) {
	timer := NewTimer(1)
	fired := 0
	timer.OnTimeout = func() { fired++ }

	timer.Start(5)
	assert.True(t, timer.Running())
	assert.True(t, timer.JustStarted())

	var timedOut []bool
	for i := 0; i < 3; i++ {
		timer.Update(2)
		timedOut = append(timedOut, timer.TimedOut())
	}

	assert.Equal(t, Stopped, timer.Status())
	assert.Zero(t, timer.Remaining())
	assert.Equal(t, []bool{false, false, true}, timedOut)
	assert.Equal(t, 1, fired)

	timer.Update(2)
	assert.False(t, timer.TimedOut())
	assert.Equal(t, 1, fired)
}

func TestTimerStartReusesDuration(t *testing.T) {
	timer := NewTimer(3)
	timer.Start(0)
	assert.Equal(t, 3.0, timer.Remaining())

	timer.Start(1.5)
	timer.Update(0.5)
	timer.Start(-1)
	assert.Equal(t, 1.5, timer.Duration())
	assert.Equal(t, 1.5, timer.Remaining())
}

func TestTimerProgress(t *testing.T) {
	timer := NewTimer(4)
	timer.Start(0)
	timer.Update(1)
	assert.InDelta(t, 0.25, timer.Progress(), 1e-9)

	timer.Update(10)
	assert.InDelta(t, 1.0, timer.Progress(), 1e-9)
}

func TestTimerJustStartedLastsUntilFirstUpdate(t *testing.T) {
	timer := NewTimer(1)
	timer.Start(0)
	assert.True(t, timer.JustStarted())

	timer.Update(0.1)
	assert.False(t, timer.JustStarted())
	assert.True(t, timer.Running())
}

func TestTimerStoppedIgnoresUpdates(t *testing.T) {
	timer := NewTimer(1)
	timer.Update(5)
	assert.False(t, timer.TimedOut())
	assert.Equal(t, Stopped, timer.Status())

	timer.Start(0)
	timer.Stop()
	timer.Update(5)
	assert.False(t, timer.TimedOut())
	assert.Equal(t, 1.0, timer.Remaining())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "stopped", Stopped.String())
}
