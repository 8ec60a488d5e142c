package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dcastillo/studia/internal/tui/styles"
)

// ConfirmModal asks before a destructive action.
type ConfirmModal struct {
	visible bool
	title   string
	prompt  string
}

// NewConfirmModal creates a hidden confirmation modal.
func NewConfirmModal() ConfirmModal {
	return ConfirmModal{}
}

// Show displays the modal.
func (m *ConfirmModal) Show(title, prompt string) {
	m.visible = true
	m.title = title
	m.prompt = prompt
}

// Hide dismisses the modal.
func (m *ConfirmModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown.
func (m ConfirmModal) IsVisible() bool { return m.visible }

// Update handles input events, returns (confirmed, dismissed).
func (m *ConfirmModal) Update(msg tea.Msg) (bool, bool) {
	if !m.visible {
		return false, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y", "enter":
			m.Hide()
			return true, true
		case "n", "N", "esc":
			m.Hide()
			return false, true
		}
	}
	return false, false
}

// View renders the confirmation modal.
func (m ConfirmModal) View() string {
	if !m.visible {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(m.title),
		"",
		m.prompt,
		"",
		styles.DimStyle.Render("y confirmar · n cancelar"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Red).
		Padding(1, 2).
		Render(content)
}
