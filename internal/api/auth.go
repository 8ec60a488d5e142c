package api

import (
	"context"
	"net/http"

	"github.com/dcastillo/studia/internal/domain"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the login response: the bearer token plus the account
// it belongs to.
type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// AuthService signs users in. It shares the base client, so a successful
// login followed by a token-store update authenticates every later request.
type AuthService struct {
	c *Client
}

// NewAuthService creates the auth service.
func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

// Login exchanges credentials for a session token.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	body, err := s.c.do(ctx, http.MethodPost, "/auth/login", nil, creds)
	if err != nil {
		return nil, err
	}
	return decodeOne[LoginResult](s.c, body)
}
