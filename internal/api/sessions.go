package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dcastillo/studia/internal/domain"
)

// SessionService wraps the study-session endpoints.
type SessionService struct {
	c *Client
}

// NewSessionService creates the session service.
func NewSessionService(c *Client) *SessionService {
	return &SessionService{c: c}
}

// List returns one page of the user's study session presets.
func (s *SessionService) List(ctx context.Context, userID string, page int) ([]domain.StudySession, int, error) {
	return listPage[domain.StudySession](ctx, s.c, fmt.Sprintf("/sessions/%s", userID), page)
}

// Create registers a new session preset; identity is assigned by the server.
func (s *SessionService) Create(ctx context.Context, payload SessionPayload) (*domain.StudySession, error) {
	body, err := s.c.do(ctx, http.MethodPost, "/sessions", nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.StudySession](s.c, body)
}

// Update replaces the session record matched by id.
func (s *SessionService) Update(ctx context.Context, id string, payload SessionPayload) (*domain.StudySession, error) {
	body, err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/sessions/%s", id), nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.StudySession](s.c, body)
}

// Remove deletes the session preset.
func (s *SessionService) Remove(ctx context.Context, id string) (*domain.StudySession, error) {
	body, err := s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/sessions/%s", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.StudySession](s.c, body)
}
