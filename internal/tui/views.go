package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dcastillo/studia/internal/tui/styles"
)

func (m Model) View() string {
	if !m.Ready {
		return "Cargando..."
	}

	if m.State == StateLogin {
		return m.loginView()
	}

	if overlay := m.overlayView(); overlay != "" {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, overlay)
	}

	return m.browserView()
}

func (m Model) loginView() string {
	banner := lipgloss.JoinVertical(lipgloss.Center,
		styles.AccentStyle.Bold(true).Render("studia"),
		styles.DimStyle.Render("tu seguimiento académico"),
		"",
		m.LoginForm.View(),
	)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, banner)
}

// overlayView returns the modal that owns the screen, if any. Precedence
// mirrors the keyboard routing.
func (m Model) overlayView() string {
	switch {
	case m.Clock.IsVisible():
		return m.Clock.View()
	case m.Confirm.IsVisible():
		return m.Confirm.View()
	case m.Picker.IsVisible():
		return m.Picker.View()
	case m.Finder.IsVisible():
		return m.Finder.View()
	case m.noSelection:
		return styles.InactiveBorder.Padding(1, 3).Render(
			styles.SubtitleStyle.Render("Ninguna selección") + "\n" +
				styles.DimStyle.Render("No hay registro bajo el cursor"))
	case m.Dialog != nil:
		return m.Dialog.View()
	}
	return ""
}

func (m Model) browserView() string {
	header := m.headerView()
	footer := m.footerView()
	body := m.bodyView()

	chrome := lipgloss.Height(header) + lipgloss.Height(footer)
	bodyHeight := max(m.Height-chrome, 1)
	body = lipgloss.NewStyle().Height(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) headerView() string {
	title := styles.TitleStyle.Render(m.Level.Title())
	if crumb := m.breadcrumb(); crumb != "" {
		title += "  " + styles.SubtitleStyle.Render(crumb)
	}
	if m.levelLoading() {
		title += "  " + m.Spinner.View()
	}

	user := styles.DimStyle.Render(m.Auth.User().Name)
	gap := m.Width - lipgloss.Width(title) - lipgloss.Width(user) - 2
	if gap < 1 {
		gap = 1
	}
	line := " " + title + strings.Repeat(" ", gap) + user

	return line + "\n" + styles.DimStyle.Render(strings.Repeat("─", max(m.Width, 1)))
}

// breadcrumb renders the selected ancestors of the current level.
func (m Model) breadcrumb() string {
	var parts []string

	if m.Level == LevelSessions || m.Level == LevelCareers {
		return ""
	}
	if career, ok := m.Store.Careers.Selected(); ok {
		parts = append(parts, career.Name)
	}
	if m.Level == LevelDeliverables || m.Level == LevelTasks {
		if course, ok := m.Store.Courses.Selected(); ok {
			parts = append(parts, course.Name)
		}
	}
	if m.Level == LevelTasks {
		if deliverable, ok := m.Store.Deliverables.Selected(); ok {
			parts = append(parts, deliverable.Name)
		}
	}

	return strings.Join(parts, " › ")
}

func (m Model) bodyView() string {
	if errMsg := m.levelErr(); errMsg != "" {
		return "\n " + styles.ErrorStyle.Render(errMsg)
	}
	if m.levelLoading() && m.Browser.Len() == 0 {
		return "\n " + m.Spinner.View() + " " + styles.DimStyle.Render("Cargando...")
	}
	return "\n" + m.Browser.View(max(m.Width-2, 20))
}

func (m Model) footerView() string {
	var b strings.Builder

	total := max(m.totalPagesFor(m.Level), 1)
	pagerLine := " " + m.Pager.View() + "  " +
		styles.DimStyle.Render(fmt.Sprintf("página %d de %d", m.pages[m.Level], total))
	b.WriteString(pagerLine)
	b.WriteString("\n")

	if m.StatusMsg != "" {
		style := styles.SuccessStyle
		if m.StatusIsErr {
			style = styles.ErrorStyle
		}
		b.WriteString(" " + style.Render(m.StatusMsg))
	}
	b.WriteString("\n")

	b.WriteString(" " + m.HelpView.View(m.Keys))
	return b.String()
}
