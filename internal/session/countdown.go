// Package session implements the study-session countdown clock. The
// countdown is an owned value updated by a single owner (the clock view);
// it performs no I/O and holds no remote resource.
package session

import "fmt"

// Countdown tracks the remaining seconds of a study session. Ticks are
// driven externally at one-second intervals; a paused countdown ignores
// them. Reaching zero latches the done flag so the finish path runs
// exactly once.
type Countdown struct {
	total     int
	remaining int
	paused    bool
	done      bool
}

// NewCountdown starts a countdown over the given number of minutes.
func NewCountdown(minutes int) *Countdown {
	secs := minutes * 60
	return &Countdown{total: secs, remaining: secs}
}

// Tick consumes one second unless paused. It returns true exactly once,
// on the tick that reaches zero.
func (c *Countdown) Tick() bool {
	if c.done || c.paused {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.done = true
		return true
	}
	return false
}

// Pause suspends the countdown.
func (c *Countdown) Pause() { c.paused = true }

// Resume continues a paused countdown.
func (c *Countdown) Resume() { c.paused = false }

// Paused reports whether ticks are currently ignored.
func (c *Countdown) Paused() bool { return c.paused }

// Stop ends the countdown early. Like reaching zero, it latches done.
func (c *Countdown) Stop() { c.done = true }

// Done reports whether the countdown has finished.
func (c *Countdown) Done() bool { return c.done }

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Progress returns the elapsed fraction: 1 - remaining/total.
func (c *Countdown) Progress() float64 {
	if c.total == 0 {
		return 1
	}
	return 1 - float64(c.remaining)/float64(c.total)
}

// Clock renders the remaining time as mm:ss (hours spill into minutes).
func (c *Countdown) Clock() string {
	return fmt.Sprintf("%02d:%02d", c.remaining/60, c.remaining%60)
}
