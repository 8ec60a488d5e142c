package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dcastillo/studia/internal/domain"
)

// DeliverableService wraps the deliverables endpoints.
type DeliverableService struct {
	c *Client
}

// NewDeliverableService creates the deliverable service.
func NewDeliverableService(c *Client) *DeliverableService {
	return &DeliverableService{c: c}
}

// List returns one page of the deliverables under a course.
func (s *DeliverableService) List(ctx context.Context, courseID string, page int) ([]domain.Deliverable, int, error) {
	return listPage[domain.Deliverable](ctx, s.c, fmt.Sprintf("/deliverables/%s", courseID), page)
}

// Create registers a new deliverable; identity is assigned by the server.
func (s *DeliverableService) Create(ctx context.Context, payload DeliverablePayload) (*domain.Deliverable, error) {
	body, err := s.c.do(ctx, http.MethodPost, "/deliverables", nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Deliverable](s.c, body)
}

// Update replaces the deliverable record matched by id.
func (s *DeliverableService) Update(ctx context.Context, id string, payload DeliverablePayload) (*domain.Deliverable, error) {
	body, err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/deliverables/%s", id), nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Deliverable](s.c, body)
}

// Remove deletes the deliverable.
func (s *DeliverableService) Remove(ctx context.Context, id string) (*domain.Deliverable, error) {
	body, err := s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/deliverables/%s", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Deliverable](s.c, body)
}
