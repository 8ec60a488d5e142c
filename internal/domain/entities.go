package domain

import (
	"fmt"
	"time"
)

// PageSize is the fixed page length the server uses for list endpoints;
// page-count math everywhere derives from it.
const PageSize = 5

// User is the authenticated account that owns careers and their content.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Career is a degree program. The selected career scopes which courses
// are visible in the UI.
type Career struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Course belongs to exactly one career.
type Course struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CareerID string `json:"career_id"`
}

// Deliverable is a gradable assignment belonging to a course, with a
// deadline, a grade (note) and a weight (percent), both on a 0-100 scale.
type Deliverable struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Deadline    time.Time         `json:"deadline"`
	Status      DeliverableStatus `json:"status"`
	Note        float64           `json:"note"`
	Percent     float64           `json:"percent"`
	CourseID    string            `json:"course_id"`
}

// Overdue reports whether the deliverable is still pending past its deadline.
func (d Deliverable) Overdue(now time.Time) bool {
	return d.Status == DeliverablePending && now.After(d.Deadline)
}

// DeliveryLabel returns the card label for the deadline state.
// A sent deliverable always reads "Entregado" regardless of the clock;
// a pending one past its deadline reads "No entregado"; otherwise the
// remaining time is shown.
func (d Deliverable) DeliveryLabel(now time.Time) string {
	if d.Status == DeliverableSent {
		return "Entregado"
	}
	if now.After(d.Deadline) {
		return "No entregado"
	}
	return "Tiempo: " + FormatRemaining(d.Deadline.Sub(now))
}

// WeightedNote returns the deliverable's contribution to the course grade.
func (d Deliverable) WeightedNote() float64 {
	return d.Note * d.Percent / 100
}

// Task is a unit of work attached to a deliverable.
type Task struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Status        TaskStatus `json:"status"`
	DeliverableID string     `json:"deliverable_id"`
}

// StudySession is a named timer preset. Duration is in minutes.
type StudySession struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     SessionType `json:"type"`
	Duration int         `json:"duration"`
}

// TotalSeconds returns the session length for the countdown clock.
func (s StudySession) TotalSeconds() int {
	return s.Duration * 60
}

// FormatRemaining renders a duration the way the deliverable cards show
// time left: "3d 4h", "4h 20m", "12m".
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
