package service

import (
	"context"
	"log/slog"

	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/domain"
	"github.com/dcastillo/studia/internal/state"
)

// TaskService orchestrates task flows against the tasks slice.
type TaskService struct {
	api    *api.TaskService
	slice  *state.Slice[domain.Task]
	logger *slog.Logger
}

// NewTaskService creates the task orchestrator.
func NewTaskService(apiSvc *api.TaskService, store *state.Store, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskService{api: apiSvc, slice: store.Tasks, logger: logger}
}

// Load fetches one page of the tasks under a deliverable into the slice.
func (s *TaskService) Load(ctx context.Context, deliverableID string, page int) domain.Code {
	return load(s.slice, s.logger, "task", func() ([]domain.Task, int, error) {
		return s.api.List(ctx, deliverableID, page)
	})
}

// Create registers a new task and merges it into the slice.
func (s *TaskService) Create(ctx context.Context, payload api.TaskPayload) domain.Code {
	return createOne(s.slice, s.logger, "task", func() (*domain.Task, error) {
		return s.api.Create(ctx, payload)
	})
}

// Update replaces a task and refreshes it in the slice.
func (s *TaskService) Update(ctx context.Context, id string, payload api.TaskPayload) domain.Code {
	return updateOne(s.slice, s.logger, "task", func() (*domain.Task, error) {
		return s.api.Update(ctx, id, payload)
	})
}

// Delete removes a task remotely and filters it out of the slice.
func (s *TaskService) Delete(ctx context.Context, id string) domain.Code {
	return removeOne(s.slice, s.logger, "task", id, func() error {
		_, err := s.api.Remove(ctx, id)
		return err
	})
}
