package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/domain"
	"github.com/dcastillo/studia/internal/log"
)

// fakeSessionStore records persistence calls in memory, keeping the tests
// away from the user's real config file.
type fakeSessionStore struct {
	token    string
	userID   string
	username string
	saves    int
	clears   int
}

func (f *fakeSessionStore) SaveSession(token, userID, username string) error {
	f.token, f.userID, f.username = token, userID, username
	f.saves++
	return nil
}

func (f *fakeSessionStore) ClearSession() error {
	f.token, f.userID, f.username = "", "", ""
	f.clears++
	return nil
}

func newAuthFixture(t *testing.T, handler http.HandlerFunc) (*AuthService, *api.TokenStore, *fakeSessionStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := api.NewTokenStore("")
	sessions := &fakeSessionStore{}
	client := api.NewClient(server.URL, tokens, log.NullLogger())
	svc := NewAuthService(api.NewAuthService(client), tokens, sessions, log.NullLogger())
	return svc, tokens, sessions
}

func TestLoginInstallsToken(t *testing.T) {
	svc, tokens, sessions := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"token":"tok-abc","user":{"id":"u1","name":"Ana","email":"ana@uni.edu"}}`))
	})

	code := svc.Login(context.Background(), api.Credentials{Email: "ana@uni.edu", Password: "secreto"})
	assert.Equal(t, domain.Success, code)
	assert.Equal(t, "tok-abc", tokens.Token())
	assert.Equal(t, "u1", svc.User().ID)

	// Persistence goes through the injected store, nowhere else
	require.Equal(t, 1, sessions.saves)
	assert.Equal(t, "tok-abc", sessions.token)
	assert.Equal(t, "u1", sessions.userID)
	assert.Equal(t, "Ana", sessions.username)
}

func TestLoginRejected(t *testing.T) {
	svc, tokens, sessions := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	code := svc.Login(context.Background(), api.Credentials{Email: "ana@uni.edu", Password: "mala"})
	assert.Equal(t, domain.Unauthorized, code)
	assert.Empty(t, tokens.Token())
	assert.Empty(t, svc.User().ID)
	assert.Zero(t, sessions.saves, "a rejected login must not persist anything")
}

func TestLogoutClearsEverything(t *testing.T) {
	svc, tokens, sessions := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-abc","user":{"id":"u1","name":"Ana"}}`))
	})

	svc.Login(context.Background(), api.Credentials{Email: "ana@uni.edu", Password: "secreto"})
	svc.Logout()

	assert.Empty(t, tokens.Token())
	assert.Empty(t, svc.User().ID)
	assert.Equal(t, 1, sessions.clears)
	assert.Empty(t, sessions.token)
}

func TestNilSessionStoreIsOptional(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-abc","user":{"id":"u1","name":"Ana"}}`))
	}))
	t.Cleanup(server.Close)

	tokens := api.NewTokenStore("")
	client := api.NewClient(server.URL, tokens, log.NullLogger())
	svc := NewAuthService(api.NewAuthService(client), tokens, nil, log.NullLogger())

	code := svc.Login(context.Background(), api.Credentials{Email: "ana@uni.edu", Password: "secreto"})
	assert.Equal(t, domain.Success, code)
	assert.Equal(t, "tok-abc", tokens.Token())
	svc.Logout()
	assert.Empty(t, tokens.Token())
}
