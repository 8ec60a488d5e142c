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
	"github.com/dcastillo/studia/internal/state"
)

func newCourseFixture(t *testing.T, handler http.HandlerFunc) (*CourseService, *state.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL, api.NewTokenStore("tok"), log.NullLogger())
	store := state.NewStore()
	svc := NewCourseService(api.NewCourseService(client), store, log.NullLogger())
	return svc, store
}

func TestCourseLoadFillsSlice(t *testing.T) {
	svc, store := newCourseFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/ca1", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Write([]byte(`{"items":[
			{"id":"c1","name":"Redes","career_id":"ca1"},
			{"id":"c2","name":"Bases de Datos","career_id":"ca1"},
			{"id":"c3","name":"Sistemas Operativos","career_id":"ca1"},
			{"id":"c4","name":"Algoritmos","career_id":"ca1"},
			{"id":"c5","name":"Compiladores","career_id":"ca1"}
		],"count":12}`))
	})

	code := svc.Load(context.Background(), "ca1", 1)
	assert.Equal(t, domain.Success, code)

	assert.Equal(t, 5, store.Courses.Len())
	assert.Equal(t, 12, store.Courses.Count())
	assert.Equal(t, 3, store.Courses.TotalPages())
	assert.False(t, store.Courses.Loading())
	assert.Empty(t, store.Courses.Err())
}

func TestCourseLoadUnauthorized(t *testing.T) {
	svc, store := newCourseFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	code := svc.Load(context.Background(), "ca1", 1)
	assert.Equal(t, domain.Unauthorized, code)
	assert.False(t, store.Courses.Loading())
	assert.Equal(t, domain.Unauthorized.Message(), store.Courses.Err())
}

func TestCourseCreateAddsExactlyOne(t *testing.T) {
	svc, store := newCourseFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"c9","name":"Criptografía","career_id":"ca1"}`))
	})
	store.Courses.SetItems([]domain.Course{{ID: "c1", Name: "Redes"}}, 1)

	code := svc.Create(context.Background(), api.CoursePayload{Name: "Criptografía", CareerID: "ca1"})
	assert.Equal(t, domain.Success, code)
	assert.Equal(t, 2, store.Courses.Len())
	assert.Equal(t, 2, store.Courses.Count())
}

func TestCourseUpdateReplacesRecord(t *testing.T) {
	svc, store := newCourseFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/courses/c1", r.URL.Path)
		w.Write([]byte(`{"id":"c1","name":"Redes Avanzadas","career_id":"ca1"}`))
	})
	store.Courses.SetItems([]domain.Course{{ID: "c1", Name: "Redes"}}, 1)

	code := svc.Update(context.Background(), "c1", api.CoursePayload{Name: "Redes Avanzadas", CareerID: "ca1"})
	assert.Equal(t, domain.Success, code)
	assert.Equal(t, "Redes Avanzadas", store.Courses.Items()[0].Name)
	assert.Equal(t, 1, store.Courses.Len())
}

func TestCourseDeleteFiltersRecord(t *testing.T) {
	svc, store := newCourseFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{"id":"c1","name":"Redes","career_id":"ca1"}`))
	})
	store.Courses.SetItems([]domain.Course{{ID: "c1"}, {ID: "c2"}}, 2)

	code := svc.Delete(context.Background(), "c1")
	assert.Equal(t, domain.Success, code)
	assert.Equal(t, 1, store.Courses.Len())
	assert.Equal(t, "c2", store.Courses.Items()[0].ID)
}

func TestCourseDeleteFailureLeavesSlice(t *testing.T) {
	svc, store := newCourseFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	store.Courses.SetItems([]domain.Course{{ID: "c1"}}, 1)

	code := svc.Delete(context.Background(), "c1")
	assert.Equal(t, domain.NotFound, code)
	assert.Equal(t, 1, store.Courses.Len(), "a failed delete must not touch the page")
}
