package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dcastillo/studia/internal/domain"
)

// TaskService wraps the tasks endpoints.
type TaskService struct {
	c *Client
}

// NewTaskService creates the task service.
func NewTaskService(c *Client) *TaskService {
	return &TaskService{c: c}
}

// List returns one page of the tasks under a deliverable.
func (s *TaskService) List(ctx context.Context, deliverableID string, page int) ([]domain.Task, int, error) {
	return listPage[domain.Task](ctx, s.c, fmt.Sprintf("/tasks/%s", deliverableID), page)
}

// Create registers a new task; identity is assigned by the server.
func (s *TaskService) Create(ctx context.Context, payload TaskPayload) (*domain.Task, error) {
	body, err := s.c.do(ctx, http.MethodPost, "/tasks", nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Task](s.c, body)
}

// Update replaces the task record matched by id.
func (s *TaskService) Update(ctx context.Context, id string, payload TaskPayload) (*domain.Task, error) {
	body, err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%s", id), nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Task](s.c, body)
}

// Remove deletes the task.
func (s *TaskService) Remove(ctx context.Context, id string) (*domain.Task, error) {
	body, err := s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%s", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Task](s.c, body)
}
