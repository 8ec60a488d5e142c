package state

import "github.com/dcastillo/studia/internal/domain"

// Store groups the per-entity slices. One store exists per running app;
// the orchestration layer mutates it and the views render from it.
type Store struct {
	Careers      *Slice[domain.Career]
	Courses      *Slice[domain.Course]
	Deliverables *Slice[domain.Deliverable]
	Tasks        *Slice[domain.Task]
	Sessions     *Slice[domain.StudySession]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		Careers:      NewSlice(func(c domain.Career) string { return c.ID }),
		Courses:      NewSlice(func(c domain.Course) string { return c.ID }),
		Deliverables: NewSlice(func(d domain.Deliverable) string { return d.ID }),
		Tasks:        NewSlice(func(t domain.Task) string { return t.ID }),
		Sessions:     NewSlice(func(s domain.StudySession) string { return s.ID }),
	}
}
