package service

import (
	"context"
	"log/slog"

	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/domain"
	"github.com/dcastillo/studia/internal/state"
)

// DeliverableService orchestrates deliverable flows against the
// deliverables slice.
type DeliverableService struct {
	api    *api.DeliverableService
	slice  *state.Slice[domain.Deliverable]
	logger *slog.Logger
}

// NewDeliverableService creates the deliverable orchestrator.
func NewDeliverableService(apiSvc *api.DeliverableService, store *state.Store, logger *slog.Logger) *DeliverableService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeliverableService{api: apiSvc, slice: store.Deliverables, logger: logger}
}

// Load fetches one page of the deliverables under a course into the slice.
func (s *DeliverableService) Load(ctx context.Context, courseID string, page int) domain.Code {
	return load(s.slice, s.logger, "deliverable", func() ([]domain.Deliverable, int, error) {
		return s.api.List(ctx, courseID, page)
	})
}

// Create registers a new deliverable and merges it into the slice.
func (s *DeliverableService) Create(ctx context.Context, payload api.DeliverablePayload) domain.Code {
	return createOne(s.slice, s.logger, "deliverable", func() (*domain.Deliverable, error) {
		return s.api.Create(ctx, payload)
	})
}

// Update replaces a deliverable and refreshes it in the slice.
func (s *DeliverableService) Update(ctx context.Context, id string, payload api.DeliverablePayload) domain.Code {
	return updateOne(s.slice, s.logger, "deliverable", func() (*domain.Deliverable, error) {
		return s.api.Update(ctx, id, payload)
	})
}

// Delete removes a deliverable remotely and filters it out of the slice.
func (s *DeliverableService) Delete(ctx context.Context, id string) domain.Code {
	return removeOne(s.slice, s.logger, "deliverable", id, func() error {
		_, err := s.api.Remove(ctx, id)
		return err
	})
}
