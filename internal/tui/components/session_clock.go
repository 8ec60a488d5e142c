package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dcastillo/studia/internal/domain"
	"github.com/dcastillo/studia/internal/session"
	"github.com/dcastillo/studia/internal/tui/styles"
)

// SessionClock is the countdown overlay for a running study session.
// It owns the countdown value; the app schedules the one-second ticks
// while the overlay is visible and stops scheduling the moment it closes,
// so no tick outlives the view.
type SessionClock struct {
	visible   bool
	sess      domain.StudySession
	countdown *session.Countdown
	bar       progress.Model
}

// NewSessionClock creates a hidden clock.
func NewSessionClock() SessionClock {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	bar.ShowPercentage = false

	return SessionClock{bar: bar}
}

// Start opens the overlay and begins counting the session down.
func (c *SessionClock) Start(sess domain.StudySession) {
	c.visible = true
	c.sess = sess
	c.countdown = session.NewCountdown(sess.Duration)
}

// Hide closes the overlay and drops the countdown.
func (c *SessionClock) Hide() {
	c.visible = false
	c.countdown = nil
}

// IsVisible returns whether the overlay is shown.
func (c SessionClock) IsVisible() bool { return c.visible }

// Tick consumes one second. It reports whether the session just finished.
func (c *SessionClock) Tick() bool {
	if !c.visible || c.countdown == nil {
		return false
	}
	return c.countdown.Tick()
}

// Update handles input events, returns whether the overlay closed.
func (c *SessionClock) Update(msg tea.Msg) bool {
	if !c.visible {
		return false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "t", "esc":
			// Terminar: stop early, run the close path once
			c.countdown.Stop()
			c.Hide()
			return true
		case " ", "p":
			if c.countdown.Paused() {
				c.countdown.Resume()
			} else {
				c.countdown.Pause()
			}
		}
	}
	return false
}

// View renders the countdown overlay.
func (c SessionClock) View() string {
	if !c.visible || c.countdown == nil {
		return ""
	}

	typeStyle := styles.InfoStyle
	if c.sess.Type == domain.SessionResting {
		typeStyle = styles.SuccessStyle
	}

	percent := int(c.countdown.Progress() * 100)

	pauseHint := "espacio pausar"
	if c.countdown.Paused() {
		pauseHint = "espacio continuar"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.TitleStyle.Render(c.sess.Name),
		typeStyle.Render(string(c.sess.Type)),
		"",
		styles.TitleStyle.Render(c.countdown.Clock()),
		c.bar.ViewAs(c.countdown.Progress()),
		styles.SubtitleStyle.Render(fmt.Sprintf("%d%% · Temporizador", percent)),
		"",
		styles.DimStyle.Render("t terminar · "+pauseHint),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Indigo).
		Padding(1, 3).
		Render(content)
}
