package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/service"
)

// Command factories for async operations. Each runs a thunk in the
// background and reports its response code back into the event loop.

const requestTimeout = 30 * time.Second

// LoginCmd attempts a login with the given credentials
func LoginCmd(svc *service.AuthService, creds api.Credentials) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return LoginResultMsg{Code: svc.Login(ctx, creds)}
	}
}

// LoadCareersCmd loads one page of the user's careers
func LoadCareersCmd(svc *service.CareerService, userID string, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return PageLoadedMsg{Level: LevelCareers, Page: page, Code: svc.Load(ctx, userID, page)}
	}
}

// LoadCatalogCmd loads the full career catalog for the join picker
func LoadCatalogCmd(svc *service.CareerService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		careers, code := svc.Catalog(ctx)
		return CatalogLoadedMsg{Careers: careers, Code: code}
	}
}

// JoinCareerCmd joins the user to a catalog career
func JoinCareerCmd(svc *service.CareerService, careerID, userID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelCareers, Op: OpCreate, Code: svc.Add(ctx, careerID, userID)}
	}
}

// LeaveCareerCmd drops the user from a career
func LeaveCareerCmd(svc *service.CareerService, careerID, userID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelCareers, Op: OpDelete, Code: svc.Remove(ctx, careerID, userID)}
	}
}

// LoadCoursesCmd loads one page of the courses under a career
func LoadCoursesCmd(svc *service.CourseService, careerID string, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return PageLoadedMsg{Level: LevelCourses, Page: page, Code: svc.Load(ctx, careerID, page)}
	}
}

// CreateCourseCmd registers a new course
func CreateCourseCmd(svc *service.CourseService, payload api.CoursePayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelCourses, Op: OpCreate, Code: svc.Create(ctx, payload)}
	}
}

// UpdateCourseCmd replaces a course
func UpdateCourseCmd(svc *service.CourseService, id string, payload api.CoursePayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelCourses, Op: OpUpdate, Code: svc.Update(ctx, id, payload)}
	}
}

// DeleteCourseCmd removes a course
func DeleteCourseCmd(svc *service.CourseService, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelCourses, Op: OpDelete, Code: svc.Delete(ctx, id)}
	}
}

// LoadDeliverablesCmd loads one page of the deliverables under a course
func LoadDeliverablesCmd(svc *service.DeliverableService, courseID string, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return PageLoadedMsg{Level: LevelDeliverables, Page: page, Code: svc.Load(ctx, courseID, page)}
	}
}

// CreateDeliverableCmd registers a new deliverable
func CreateDeliverableCmd(svc *service.DeliverableService, payload api.DeliverablePayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelDeliverables, Op: OpCreate, Code: svc.Create(ctx, payload)}
	}
}

// UpdateDeliverableCmd replaces a deliverable
func UpdateDeliverableCmd(svc *service.DeliverableService, id string, payload api.DeliverablePayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelDeliverables, Op: OpUpdate, Code: svc.Update(ctx, id, payload)}
	}
}

// DeleteDeliverableCmd removes a deliverable
func DeleteDeliverableCmd(svc *service.DeliverableService, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelDeliverables, Op: OpDelete, Code: svc.Delete(ctx, id)}
	}
}

// LoadTasksCmd loads one page of the tasks under a deliverable
func LoadTasksCmd(svc *service.TaskService, deliverableID string, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return PageLoadedMsg{Level: LevelTasks, Page: page, Code: svc.Load(ctx, deliverableID, page)}
	}
}

// CreateTaskCmd registers a new task
func CreateTaskCmd(svc *service.TaskService, payload api.TaskPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelTasks, Op: OpCreate, Code: svc.Create(ctx, payload)}
	}
}

// UpdateTaskCmd replaces a task
func UpdateTaskCmd(svc *service.TaskService, id string, payload api.TaskPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelTasks, Op: OpUpdate, Code: svc.Update(ctx, id, payload)}
	}
}

// DeleteTaskCmd removes a task
func DeleteTaskCmd(svc *service.TaskService, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelTasks, Op: OpDelete, Code: svc.Delete(ctx, id)}
	}
}

// LoadSessionsCmd loads one page of the user's session presets
func LoadSessionsCmd(svc *service.SessionService, userID string, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return PageLoadedMsg{Level: LevelSessions, Page: page, Code: svc.Load(ctx, userID, page)}
	}
}

// CreateSessionCmd registers a new session preset
func CreateSessionCmd(svc *service.SessionService, payload api.SessionPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelSessions, Op: OpCreate, Code: svc.Create(ctx, payload)}
	}
}

// UpdateSessionCmd replaces a session preset
func UpdateSessionCmd(svc *service.SessionService, id string, payload api.SessionPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelSessions, Op: OpUpdate, Code: svc.Update(ctx, id, payload)}
	}
}

// DeleteSessionCmd removes a session preset
func DeleteSessionCmd(svc *service.SessionService, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return MutationDoneMsg{Level: LevelSessions, Op: OpDelete, Code: svc.Delete(ctx, id)}
	}
}

// ClockTickCmd schedules the next one-second countdown tick
func ClockTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockTickMsg{}
	})
}

// ClearStatusCmd clears the status bar after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
