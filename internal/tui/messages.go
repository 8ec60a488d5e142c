package tui

import "github.com/dcastillo/studia/internal/domain"

// Level identifies which entity collection the browser is showing.
// Levels nest: careers scope courses, courses scope deliverables,
// deliverables scope tasks. Sessions sit apart.
type Level int

const (
	LevelCareers Level = iota
	LevelCourses
	LevelDeliverables
	LevelTasks
	LevelSessions
)

// Title returns the display heading for the level.
func (l Level) Title() string {
	switch l {
	case LevelCareers:
		return "Carreras"
	case LevelCourses:
		return "Cursos"
	case LevelDeliverables:
		return "Entregables"
	case LevelTasks:
		return "Tareas"
	case LevelSessions:
		return "Sesiones"
	default:
		return ""
	}
}

// Op identifies the mutation flow a message came from.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
	OpDelete
)

// Message types for the TUI

// LoginResultMsg signals the outcome of a login attempt
type LoginResultMsg struct {
	Code domain.Code
}

// PageLoadedMsg signals that a Load flow finished; the page itself is
// already in the store
type PageLoadedMsg struct {
	Level Level
	Page  int
	Code  domain.Code
}

// MutationDoneMsg signals that a Create/Update/Delete flow finished
type MutationDoneMsg struct {
	Level Level
	Op    Op
	Code  domain.Code
}

// CatalogLoadedMsg carries the career catalog for the join picker
type CatalogLoadedMsg struct {
	Careers []domain.Career
	Code    domain.Code
}

// ClockTickMsg drives the session countdown, one per second
type ClockTickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
