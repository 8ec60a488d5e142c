package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastillo/studia/internal/domain"
	"github.com/dcastillo/studia/internal/state"
)

func TestFindByID(t *testing.T) {
	courses := []domain.Course{{ID: "a", Name: "Redes"}, {ID: "b", Name: "Bases"}}

	got, ok := findByID(courses, "b", func(c domain.Course) string { return c.ID })
	require.True(t, ok)
	assert.Equal(t, "Bases", got.Name)

	_, ok = findByID(courses, "zzz", func(c domain.Course) string { return c.ID })
	assert.False(t, ok)
}

func TestCollectEntriesFlattensStore(t *testing.T) {
	store := state.NewStore()
	store.Careers.SetItems([]domain.Career{{ID: "ca1", Name: "Informática"}}, 1)
	store.Courses.SetItems([]domain.Course{{ID: "c1", Name: "Redes"}}, 1)
	store.Tasks.SetItems([]domain.Task{{ID: "t1", Name: "Leer paper"}}, 1)

	m := Model{Store: store}
	entries := m.collectEntries()

	require.Len(t, entries, 3)
	kinds := map[string]string{}
	for _, e := range entries {
		kinds[e.ID] = e.Kind
	}
	assert.Equal(t, "carrera", kinds["ca1"])
	assert.Equal(t, "curso", kinds["c1"])
	assert.Equal(t, "tarea", kinds["t1"])
}

func TestDeleteClampsPageToNewLastPage(t *testing.T) {
	store := state.NewStore()
	// 10 records remain after the delete: two pages
	store.Courses.SetItems(nil, 10)

	m := Model{
		Store: store,
		Level: LevelCourses,
		pages: map[Level]int{LevelCourses: 3},
	}

	updated, _ := m.handleMutationDone(MutationDoneMsg{
		Level: LevelCourses,
		Op:    OpDelete,
		Code:  domain.Success,
	})

	got := updated.(Model)
	assert.Equal(t, 2, got.pages[LevelCourses], "page falls back to the new last page")
}

func TestDeleteKeepsValidPage(t *testing.T) {
	store := state.NewStore()
	store.Courses.SetItems(nil, 10)

	m := Model{
		Store: store,
		Level: LevelCourses,
		pages: map[Level]int{LevelCourses: 1},
	}

	updated, _ := m.handleMutationDone(MutationDoneMsg{
		Level: LevelCourses,
		Op:    OpDelete,
		Code:  domain.Success,
	})

	got := updated.(Model)
	assert.Equal(t, 1, got.pages[LevelCourses])
}

func TestLevelTitles(t *testing.T) {
	assert.Equal(t, "Carreras", LevelCareers.Title())
	assert.Equal(t, "Sesiones", LevelSessions.Title())
}
