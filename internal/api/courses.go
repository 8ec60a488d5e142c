package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dcastillo/studia/internal/domain"
)

// CourseService wraps the courses endpoints.
type CourseService struct {
	c *Client
}

// NewCourseService creates the course service.
func NewCourseService(c *Client) *CourseService {
	return &CourseService{c: c}
}

// List returns one page of the courses under a career.
func (s *CourseService) List(ctx context.Context, careerID string, page int) ([]domain.Course, int, error) {
	return listPage[domain.Course](ctx, s.c, fmt.Sprintf("/courses/%s", careerID), page)
}

// Create registers a new course; identity is assigned by the server.
func (s *CourseService) Create(ctx context.Context, payload CoursePayload) (*domain.Course, error) {
	body, err := s.c.do(ctx, http.MethodPost, "/courses", nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Course](s.c, body)
}

// Update replaces the course record matched by id.
func (s *CourseService) Update(ctx context.Context, id string, payload CoursePayload) (*domain.Course, error) {
	body, err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/courses/%s", id), nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Course](s.c, body)
}

// Remove deletes the course.
func (s *CourseService) Remove(ctx context.Context, id string) (*domain.Course, error) {
	body, err := s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/courses/%s", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Course](s.c, body)
}
