package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dcastillo/studia/internal/search"
	"github.com/dcastillo/studia/internal/tui/styles"
)

const maxSearchResults = 8

// SearchModal ranks everything the store currently holds against a query.
type SearchModal struct {
	visible bool
	input   textinput.Model
	entries []search.Entry
	results []search.Entry
	cursor  int
}

// NewSearchModal creates a hidden search overlay.
func NewSearchModal() SearchModal {
	ti := textinput.New()
	ti.Placeholder = "buscar en lo cargado..."
	ti.CharLimit = 60
	ti.Width = 36
	ti.Prompt = "⌕ "

	return SearchModal{input: ti}
}

// Show opens the overlay over the given searchable entries.
func (m *SearchModal) Show(entries []search.Entry) {
	m.visible = true
	m.entries = entries
	m.results = nil
	m.cursor = 0
	m.input.SetValue("")
	m.input.Focus()
}

// Hide dismisses the overlay.
func (m *SearchModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the overlay is shown.
func (m SearchModal) IsVisible() bool { return m.visible }

// Update handles input events, returns (cmd, chosen entry or nil).
func (m *SearchModal) Update(msg tea.Msg) (tea.Cmd, *search.Entry) {
	if !m.visible {
		return nil, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.Hide()
			return nil, nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return nil, nil
		case "down":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return nil, nil
		case "enter":
			if len(m.results) == 0 || m.cursor >= len(m.results) {
				return nil, nil
			}
			chosen := m.results[m.cursor]
			m.Hide()
			return nil, &chosen
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.results = search.Rank(m.input.Value(), m.entries)
	if len(m.results) > maxSearchResults {
		m.results = m.results[:maxSearchResults]
	}
	m.cursor = 0
	return cmd, nil
}

// View renders the search overlay.
func (m SearchModal) View() string {
	if !m.visible {
		return ""
	}

	const searchWidth = 44

	rows := []string{m.input.View(), ""}

	if m.input.Value() != "" && len(m.results) == 0 {
		rows = append(rows, styles.DimStyle.Render("Sin resultados"))
	}

	for pos, res := range m.results {
		kind := styles.DimStyle.Render(" (" + res.Kind + ")")
		if pos == m.cursor {
			rows = append(rows, styles.HighlightStyle.Render(res.Title)+kind)
		} else {
			rows = append(rows, "  "+res.Title+kind)
		}
	}

	rows = append(rows, "", styles.DimStyle.Render("enter ir · esc cerrar"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Indigo).
		Padding(1, 2).
		Width(searchWidth).
		Render(content)
}
