package service

import (
	"context"
	"log/slog"

	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/domain"
)

// SessionStore persists the session across restarts. The config package
// provides the production implementation; tests inject a fake so they
// never touch the user's config file.
type SessionStore interface {
	SaveSession(token, userID, username string) error
	ClearSession() error
}

// AuthService orchestrates login and logout. A successful login writes the
// token into the shared store (so every later request carries it) and
// persists the session; logout and unauthorized responses reverse both.
type AuthService struct {
	api      *api.AuthService
	tokens   *api.TokenStore
	sessions SessionStore
	logger   *slog.Logger

	user domain.User
}

// NewAuthService creates the auth orchestrator. A nil session store means
// the session lives only for the process lifetime.
func NewAuthService(apiSvc *api.AuthService, tokens *api.TokenStore, sessions SessionStore, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{api: apiSvc, tokens: tokens, sessions: sessions, logger: logger}
}

// Login exchanges credentials for a session and installs it.
func (s *AuthService) Login(ctx context.Context, creds api.Credentials) domain.Code {
	result, err := s.api.Login(ctx, creds)
	if err != nil {
		code := domain.CodeFromError(err)
		s.logger.Warn("login failed", "code", code.String(), "error", err)
		return code
	}

	s.tokens.Set(result.Token)
	s.user = result.User
	if s.sessions != nil {
		if err := s.sessions.SaveSession(result.Token, result.User.ID, result.User.Name); err != nil {
			s.logger.Warn("failed to persist session", "error", err)
		}
	}
	s.logger.Info("logged in", "user", result.User.ID)
	return domain.Success
}

// Logout clears the in-memory token and the persisted session. Requests
// issued afterwards carry no bearer credential.
func (s *AuthService) Logout() {
	s.tokens.Clear()
	s.user = domain.User{}
	if s.sessions != nil {
		if err := s.sessions.ClearSession(); err != nil {
			s.logger.Warn("failed to clear persisted session", "error", err)
		}
	}
	s.logger.Info("logged out")
}

// SetUser seeds the account identity restored from a persisted session.
func (s *AuthService) SetUser(u domain.User) {
	s.user = u
}

// User returns the authenticated account.
func (s *AuthService) User() domain.User {
	return s.user
}
