package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/dcastillo/studia/internal/tui/styles"
)

// Row is one renderable entry of the browser list: a title line plus
// optional detail lines (deliverables render as multi-line cards).
type Row struct {
	ID    string
	Title string
	Lines []string
}

// List renders the current page of a slice with a cursor and an optional
// fuzzy filter. Pagination is the owner's concern; the list only ever sees
// one page.
type List struct {
	rows   []Row
	cursor int

	filtering   bool
	filterInput textinput.Model
	filteredIdx []int
}

// NewList creates an empty browser list.
func NewList() List {
	ti := textinput.New()
	ti.Placeholder = "filtrar..."
	ti.CharLimit = 50
	ti.Width = 30
	ti.Prompt = "/ "

	return List{filterInput: ti}
}

// SetRows replaces the visible page and clamps the cursor.
func (l *List) SetRows(rows []Row) {
	l.rows = rows
	l.applyFilter()
	if l.cursor >= len(l.visible()) {
		l.cursor = 0
	}
}

// visible returns the indexes currently shown, honoring the filter.
func (l *List) visible() []int {
	if l.filteredIdx != nil {
		return l.filteredIdx
	}
	idx := make([]int, len(l.rows))
	for i := range l.rows {
		idx[i] = i
	}
	return idx
}

// CursorRow returns the row under the cursor, if any.
func (l *List) CursorRow() (Row, bool) {
	vis := l.visible()
	if len(vis) == 0 || l.cursor >= len(vis) {
		return Row{}, false
	}
	return l.rows[vis[l.cursor]], true
}

// SelectID moves the cursor to the row with the given id. It reports
// whether the row is visible on this page.
func (l *List) SelectID(id string) bool {
	for pos, idx := range l.visible() {
		if l.rows[idx].ID == id {
			l.cursor = pos
			return true
		}
	}
	return false
}

// MoveUp moves the cursor one row up.
func (l *List) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveDown moves the cursor one row down.
func (l *List) MoveDown() {
	if l.cursor < len(l.visible())-1 {
		l.cursor++
	}
}

// StartFilter opens the filter input.
func (l *List) StartFilter() {
	l.filtering = true
	l.filterInput.SetValue("")
	l.filterInput.Focus()
	l.applyFilter()
}

// StopFilter closes the filter input and clears the filter.
func (l *List) StopFilter() {
	l.filtering = false
	l.filterInput.Blur()
	l.filterInput.SetValue("")
	l.filteredIdx = nil
}

// Filtering reports whether the filter input owns the keyboard.
func (l *List) Filtering() bool { return l.filtering }

// Len reports how many rows the list holds before filtering.
func (l *List) Len() int { return len(l.rows) }

// Update feeds keystrokes into the filter input while it is open.
// It reports whether the event was consumed.
func (l *List) Update(msg tea.Msg) (tea.Cmd, bool) {
	if !l.filtering {
		return nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			// Keep the filter applied, return control to the browser
			l.filtering = false
			l.filterInput.Blur()
			return nil, true
		case "esc":
			l.StopFilter()
			return nil, true
		case "up", "down":
			// Let the browser move the cursor through matches
			return nil, false
		}
	}

	var cmd tea.Cmd
	l.filterInput, cmd = l.filterInput.Update(msg)
	l.applyFilter()
	return cmd, true
}

func (l *List) applyFilter() {
	query := l.filterInput.Value()
	if query == "" {
		l.filteredIdx = nil
		return
	}

	titles := make([]string, len(l.rows))
	for i, row := range l.rows {
		titles[i] = strings.ToLower(row.Title)
	}

	matches := fuzzy.Find(strings.ToLower(query), titles)
	l.filteredIdx = make([]int, len(matches))
	for i, match := range matches {
		l.filteredIdx[i] = match.Index
	}
	l.cursor = 0
}

// View renders the page rows and, when open, the filter line.
func (l *List) View(width int) string {
	var b strings.Builder

	if l.filtering || l.filterInput.Value() != "" {
		b.WriteString(l.filterInput.View())
		b.WriteString("\n\n")
	}

	vis := l.visible()
	if len(vis) == 0 {
		b.WriteString(styles.DimStyle.Render("No hay registros en esta página"))
		return b.String()
	}

	for pos, idx := range vis {
		row := l.rows[idx]

		title := styles.TitleStyle.Render(row.Title)
		marker := "  "
		if pos == l.cursor {
			marker = styles.AccentStyle.Render("▌ ")
			title = styles.HighlightStyle.Render(row.Title)
		}
		b.WriteString(marker + title + "\n")

		for _, line := range row.Lines {
			b.WriteString("  " + line + "\n")
		}
		if len(row.Lines) > 0 && pos < len(vis)-1 {
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}
