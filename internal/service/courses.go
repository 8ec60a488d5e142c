package service

import (
	"context"
	"log/slog"

	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/domain"
	"github.com/dcastillo/studia/internal/state"
)

// CourseService orchestrates course flows against the courses slice.
type CourseService struct {
	api    *api.CourseService
	slice  *state.Slice[domain.Course]
	logger *slog.Logger
}

// NewCourseService creates the course orchestrator.
func NewCourseService(apiSvc *api.CourseService, store *state.Store, logger *slog.Logger) *CourseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseService{api: apiSvc, slice: store.Courses, logger: logger}
}

// Load fetches one page of the courses under a career into the slice.
func (s *CourseService) Load(ctx context.Context, careerID string, page int) domain.Code {
	return load(s.slice, s.logger, "course", func() ([]domain.Course, int, error) {
		return s.api.List(ctx, careerID, page)
	})
}

// Create registers a new course and merges it into the slice.
func (s *CourseService) Create(ctx context.Context, payload api.CoursePayload) domain.Code {
	return createOne(s.slice, s.logger, "course", func() (*domain.Course, error) {
		return s.api.Create(ctx, payload)
	})
}

// Update replaces a course and refreshes it in the slice.
func (s *CourseService) Update(ctx context.Context, id string, payload api.CoursePayload) domain.Code {
	return updateOne(s.slice, s.logger, "course", func() (*domain.Course, error) {
		return s.api.Update(ctx, id, payload)
	})
}

// Delete removes a course remotely and filters it out of the slice.
func (s *CourseService) Delete(ctx context.Context, id string) domain.Code {
	return removeOne(s.slice, s.logger, "course", id, func() error {
		_, err := s.api.Remove(ctx, id)
		return err
	})
}
