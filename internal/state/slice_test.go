package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastillo/studia/internal/domain"
)

func newCourseSlice() *Slice[domain.Course] {
	return NewSlice(func(c domain.Course) string { return c.ID })
}

func TestSliceApplyItems(t *testing.T) {
	s := newCourseSlice()
	assert.True(t, s.Loading(), "a fresh slice starts loading")

	seq := s.Begin()
	ok := s.ApplyItems(seq, []domain.Course{{ID: "a"}, {ID: "b"}}, 7)
	require.True(t, ok)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 7, s.Count())
}

func TestSliceDiscardsStaleResponse(t *testing.T) {
	s := newCourseSlice()

	first := s.Begin()
	second := s.Begin()

	// Newest load lands first
	require.True(t, s.ApplyItems(second, []domain.Course{{ID: "new"}}, 1))

	// The older load finishing late must not overwrite it
	assert.False(t, s.ApplyItems(first, []domain.Course{{ID: "old"}}, 1))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "new", items[0].ID)
}

func TestSliceAddUpdateRemove(t *testing.T) {
	s := newCourseSlice()
	s.SetItems([]domain.Course{{ID: "a", Name: "Redes"}}, 1)

	s.Add(domain.Course{ID: "b", Name: "Bases"})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.Count())

	s.Update(domain.Course{ID: "a", Name: "Redes II"})
	items := s.Items()
	assert.Equal(t, "Redes II", items[0].Name)

	// Updating a missing id changes nothing
	s.Update(domain.Course{ID: "zzz", Name: "Fantasma"})
	assert.Equal(t, 2, s.Len())

	s.Remove("a")
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Count())

	// Removing a missing id changes nothing
	s.Remove("zzz")
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Count())
}

func TestSliceSelectionFollowsMutations(t *testing.T) {
	s := newCourseSlice()
	s.SetItems([]domain.Course{{ID: "a", Name: "Redes"}}, 1)
	s.SetSelected(domain.Course{ID: "a", Name: "Redes"})

	s.Update(domain.Course{ID: "a", Name: "Redes II"})
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Redes II", sel.Name)

	s.Remove("a")
	_, ok = s.Selected()
	assert.False(t, ok, "removing the selected record clears the selection")
}

func TestSliceTotalPages(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{5, 1},
		{6, 2},
		{12, 3},
	}
	for _, tt := range tests {
		s := newCourseSlice()
		s.SetItems(nil, tt.count)
		assert.Equal(t, tt.want, s.TotalPages(), "count %d", tt.count)
	}

	// The page window is the shared server constant
	full := newCourseSlice()
	full.SetItems(nil, domain.PageSize)
	assert.Equal(t, 1, full.TotalPages())
	full.SetItems(nil, domain.PageSize+1)
	assert.Equal(t, 2, full.TotalPages())
}

func TestSliceErrorState(t *testing.T) {
	s := newCourseSlice()
	s.SetError("sin conexión")
	assert.Equal(t, "sin conexión", s.Err())
	s.SetError("")
	assert.Empty(t, s.Err())
}
