package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdownReachesZeroOnce(t *testing.T) {
	c := NewCountdown(1)
	assert.Equal(t, 60, c.Remaining())

	finished := 0
	for i := 0; i < 65; i++ {
		if c.Tick() {
			finished++
		}
	}

	assert.Equal(t, 1, finished, "the finish signal fires exactly once")
	assert.Zero(t, c.Remaining())
	assert.True(t, c.Done())
}

func TestCountdownPauseIgnoresTicks(t *testing.T) {
	c := NewCountdown(1)
	c.Tick()
	assert.Equal(t, 59, c.Remaining())

	c.Pause()
	assert.True(t, c.Paused())
	for i := 0; i < 10; i++ {
		assert.False(t, c.Tick())
	}
	assert.Equal(t, 59, c.Remaining())

	c.Resume()
	c.Tick()
	assert.Equal(t, 58, c.Remaining())
}

func TestCountdownStopLatchesDone(t *testing.T) {
	c := NewCountdown(25)
	c.Stop()
	assert.True(t, c.Done())
	assert.False(t, c.Tick(), "a stopped countdown never fires the finish signal")
}

func TestCountdownProgress(t *testing.T) {
	c := NewCountdown(1)
	assert.InDelta(t, 0.0, c.Progress(), 0.0001)

	for i := 0; i < 30; i++ {
		c.Tick()
	}
	assert.InDelta(t, 0.5, c.Progress(), 0.0001)

	zero := NewCountdown(0)
	assert.InDelta(t, 1.0, zero.Progress(), 0.0001)
}

func TestCountdownClock(t *testing.T) {
	c := NewCountdown(25)
	assert.Equal(t, "25:00", c.Clock())
	c.Tick()
	assert.Equal(t, "24:59", c.Clock())
}
