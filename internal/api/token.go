package api

import "sync"

// TokenStore holds the session token shared by every outgoing request.
// It is written wholesale at login, cleared at logout or on an unauthorized
// response, and read by the client's auth transport.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewTokenStore creates a token store seeded with a persisted token,
// if any.
func NewTokenStore(token string) *TokenStore {
	return &TokenStore{token: token}
}

// Token returns the current session token, or "" when no session exists.
func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set replaces the session token.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Clear drops the session token. Requests issued afterwards carry no
// bearer credential.
func (s *TokenStore) Clear() {
	s.Set("")
}
