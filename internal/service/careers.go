package service

import (
	"context"
	"log/slog"

	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/domain"
	"github.com/dcastillo/studia/internal/state"
)

// CareerService orchestrates career flows. Unlike the other entities a
// career is joined from a global catalog rather than created, so the
// create/delete flows take (careerID, userID) pairs.
type CareerService struct {
	api    *api.CareerService
	slice  *state.Slice[domain.Career]
	logger *slog.Logger
}

// NewCareerService creates the career orchestrator.
func NewCareerService(apiSvc *api.CareerService, store *state.Store, logger *slog.Logger) *CareerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CareerService{api: apiSvc, slice: store.Careers, logger: logger}
}

// Load fetches one page of the user's careers into the slice.
func (s *CareerService) Load(ctx context.Context, userID string, page int) domain.Code {
	return load(s.slice, s.logger, "career", func() ([]domain.Career, int, error) {
		return s.api.List(ctx, userID, page)
	})
}

// Catalog returns the full career catalog for the join picker. The catalog
// is not slice state; it exists only while the picker is open.
func (s *CareerService) Catalog(ctx context.Context) ([]domain.Career, domain.Code) {
	careers, err := s.api.ListAll(ctx)
	if err != nil {
		code := domain.CodeFromError(err)
		s.logger.Error("catalog load failed", "code", code.String(), "error", err)
		return nil, code
	}
	return careers, domain.Success
}

// Add joins the user to a career and merges it into the slice.
func (s *CareerService) Add(ctx context.Context, careerID, userID string) domain.Code {
	return createOne(s.slice, s.logger, "career", func() (*domain.Career, error) {
		return s.api.Add(ctx, careerID, userID)
	})
}

// Remove drops the user from a career and filters it out of the slice.
func (s *CareerService) Remove(ctx context.Context, careerID, userID string) domain.Code {
	return removeOne(s.slice, s.logger, "career", careerID, func() error {
		_, err := s.api.Remove(ctx, careerID, userID)
		return err
	})
}
