package service

import (
	"context"
	"log/slog"

	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/domain"
	"github.com/dcastillo/studia/internal/state"
)

// SessionService orchestrates study-session flows against the sessions
// slice.
type SessionService struct {
	api    *api.SessionService
	slice  *state.Slice[domain.StudySession]
	logger *slog.Logger
}

// NewSessionService creates the session orchestrator.
func NewSessionService(apiSvc *api.SessionService, store *state.Store, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{api: apiSvc, slice: store.Sessions, logger: logger}
}

// Load fetches one page of the user's session presets into the slice.
func (s *SessionService) Load(ctx context.Context, userID string, page int) domain.Code {
	return load(s.slice, s.logger, "session", func() ([]domain.StudySession, int, error) {
		return s.api.List(ctx, userID, page)
	})
}

// Create registers a new session preset and merges it into the slice.
func (s *SessionService) Create(ctx context.Context, payload api.SessionPayload) domain.Code {
	return createOne(s.slice, s.logger, "session", func() (*domain.StudySession, error) {
		return s.api.Create(ctx, payload)
	})
}

// Update replaces a session preset and refreshes it in the slice.
func (s *SessionService) Update(ctx context.Context, id string, payload api.SessionPayload) domain.Code {
	return updateOne(s.slice, s.logger, "session", func() (*domain.StudySession, error) {
		return s.api.Update(ctx, id, payload)
	})
}

// Delete removes a session preset remotely and filters it out of the slice.
func (s *SessionService) Delete(ctx context.Context, id string) domain.Code {
	return removeOne(s.slice, s.logger, "session", id, func() error {
		_, err := s.api.Remove(ctx, id)
		return err
	})
}
