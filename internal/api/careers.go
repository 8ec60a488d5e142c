package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dcastillo/studia/internal/domain"
)

// CareerService wraps the careers endpoints. Careers differ from the other
// entities: the catalog is global, and a user joins or leaves a career
// rather than owning it.
type CareerService struct {
	c *Client
}

// NewCareerService creates the career service.
func NewCareerService(c *Client) *CareerService {
	return &CareerService{c: c}
}

// ListAll returns the full career catalog.
func (s *CareerService) ListAll(ctx context.Context) ([]domain.Career, error) {
	body, err := s.c.do(ctx, http.MethodGet, "/careers/find/all", nil, nil)
	if err != nil {
		return nil, err
	}
	careers, err := decodeOne[[]domain.Career](s.c, body)
	if err != nil {
		return nil, err
	}
	return *careers, nil
}

// List returns one page of the careers a user belongs to.
func (s *CareerService) List(ctx context.Context, userID string, page int) ([]domain.Career, int, error) {
	return listPage[domain.Career](ctx, s.c, fmt.Sprintf("/careers/%s", userID), page)
}

// Add joins the user to a career from the catalog.
func (s *CareerService) Add(ctx context.Context, careerID, userID string) (*domain.Career, error) {
	body, err := s.c.do(ctx, http.MethodPost, fmt.Sprintf("/careers/%s/%s", careerID, userID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Career](s.c, body)
}

// Remove drops the user from a career.
func (s *CareerService) Remove(ctx context.Context, careerID, userID string) (*domain.Career, error) {
	body, err := s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/careers/%s/%s", careerID, userID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Career](s.c, body)
}
