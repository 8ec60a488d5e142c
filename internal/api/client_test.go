package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastillo/studia/internal/domain"
	"github.com/dcastillo/studia/internal/log"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, NewTokenStore(token), log.NullLogger())
}

func TestAuthTransportAttachesBearer(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}, "abc123")

	_, err := client.do(context.Background(), http.MethodGet, "/careers/u1", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestAuthTransportSkipsEmptyToken(t *testing.T) {
	var gotAuth string
	seen := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		seen = true
		w.Write([]byte(`{}`))
	}, "")

	_, err := client.do(context.Background(), http.MethodGet, "/auth/login", nil, nil)
	require.NoError(t, err)
	require.True(t, seen)
	assert.Empty(t, gotAuth)
}

func TestTokenStoreClearDropsCredential(t *testing.T) {
	tokens := NewTokenStore("abc123")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.Header.Get("Authorization")))
	}))
	t.Cleanup(server.Close)
	client := NewClient(server.URL, tokens, log.NullLogger())

	body, err := client.do(context.Background(), http.MethodGet, "/", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", string(body))

	tokens.Clear()
	body, err = client.do(context.Background(), http.MethodGet, "/", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, string(body))
}

func TestDoMapsStatusToSentinel(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, domain.ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, domain.ErrAuthFailed},
		{"not found", http.StatusNotFound, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}, "tok")

			_, err := client.do(context.Background(), http.MethodGet, "/x", nil, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDoOfflineServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore
	client := NewClient(server.URL, NewTokenStore(""), log.NullLogger())

	_, err := client.do(context.Background(), http.MethodGet, "/x", nil, nil)
	assert.ErrorIs(t, err, domain.ErrServerOffline)
}

func TestListPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/c1", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Write([]byte(`{"items":[{"id":"x1","name":"Redes"},{"id":"x2","name":"Bases de Datos"}],"count":12}`))
	}, "tok")

	items, count, err := listPage[domain.Course](context.Background(), client, "/courses/c1", 2)
	require.NoError(t, err)
	assert.Equal(t, 12, count)
	require.Len(t, items, 2)
	assert.Equal(t, "Redes", items[0].Name)
}

func TestCourseServiceCreate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/courses", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"c9","name":"Sistemas Operativos","career_id":"ca1"}`))
	}, "tok")

	svc := NewCourseService(client)
	course, err := svc.Create(context.Background(), CoursePayload{Name: "Sistemas Operativos", CareerID: "ca1"})
	require.NoError(t, err)
	assert.Equal(t, "c9", course.ID)
	assert.Equal(t, "ca1", course.CareerID)
}
