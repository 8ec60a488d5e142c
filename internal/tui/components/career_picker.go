package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/dcastillo/studia/internal/domain"
	"github.com/dcastillo/studia/internal/tui/styles"
)

// CareerPicker is the join dialog: the global career catalog with a fuzzy
// filter. Choosing an entry joins the user to that career.
type CareerPicker struct {
	visible bool
	loading bool
	catalog []domain.Career
	cursor  int

	input       textinput.Model
	filteredIdx []int
}

// NewCareerPicker creates a hidden picker.
func NewCareerPicker() CareerPicker {
	ti := textinput.New()
	ti.Placeholder = "buscar carrera..."
	ti.CharLimit = 50
	ti.Width = 34
	ti.Prompt = ""

	return CareerPicker{input: ti}
}

// Show opens the picker in its loading state; the catalog arrives async.
func (p *CareerPicker) Show() {
	p.visible = true
	p.loading = true
	p.catalog = nil
	p.cursor = 0
	p.input.SetValue("")
	p.input.Focus()
}

// SetCatalog installs the loaded catalog.
func (p *CareerPicker) SetCatalog(catalog []domain.Career) {
	p.catalog = catalog
	p.loading = false
	p.filteredIdx = nil
	p.cursor = 0
}

// Hide dismisses the picker.
func (p *CareerPicker) Hide() {
	p.visible = false
	p.input.Blur()
}

// IsVisible returns whether the picker is shown.
func (p CareerPicker) IsVisible() bool { return p.visible }

func (p *CareerPicker) visibleIdx() []int {
	if p.filteredIdx != nil {
		return p.filteredIdx
	}
	idx := make([]int, len(p.catalog))
	for i := range p.catalog {
		idx[i] = i
	}
	return idx
}

// Update handles input events, returns (cmd, chosen career or nil).
func (p *CareerPicker) Update(msg tea.Msg) (tea.Cmd, *domain.Career) {
	if !p.visible {
		return nil, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			p.Hide()
			return nil, nil
		case "up":
			if p.cursor > 0 {
				p.cursor--
			}
			return nil, nil
		case "down":
			if p.cursor < len(p.visibleIdx())-1 {
				p.cursor++
			}
			return nil, nil
		case "enter":
			vis := p.visibleIdx()
			if len(vis) == 0 || p.cursor >= len(vis) {
				return nil, nil
			}
			chosen := p.catalog[vis[p.cursor]]
			return nil, &chosen
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.applyFilter()
	return cmd, nil
}

func (p *CareerPicker) applyFilter() {
	query := p.input.Value()
	if query == "" {
		p.filteredIdx = nil
		return
	}

	names := make([]string, len(p.catalog))
	for i, c := range p.catalog {
		names[i] = strings.ToLower(c.Name)
	}

	matches := fuzzy.Find(strings.ToLower(query), names)
	p.filteredIdx = make([]int, len(matches))
	for i, match := range matches {
		p.filteredIdx[i] = match.Index
	}
	p.cursor = 0
}

// View renders the picker modal.
func (p CareerPicker) View() string {
	if !p.visible {
		return ""
	}

	const pickerWidth = 40

	rows := []string{
		styles.TitleStyle.Render("Únete a una carrera"),
		"",
		p.input.View(),
		"",
	}

	switch {
	case p.loading:
		rows = append(rows, styles.DimStyle.Render("Cargando catálogo..."))
	case len(p.visibleIdx()) == 0:
		rows = append(rows, styles.DimStyle.Render("Sin resultados"))
	default:
		for pos, idx := range p.visibleIdx() {
			name := p.catalog[idx].Name
			if pos == p.cursor {
				rows = append(rows, styles.HighlightStyle.Render(name))
			} else {
				rows = append(rows, "  "+name)
			}
		}
	}

	rows = append(rows, "", styles.DimStyle.Render("enter unirse · esc cancelar"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Indigo).
		Padding(1, 2).
		Width(pickerWidth).
		Render(content)
}
