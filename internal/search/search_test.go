package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries() []Entry {
	return []Entry{
		{Kind: "curso", ID: "c1", Title: "Redes"},
		{Kind: "curso", ID: "c2", Title: "Bases de Datos"},
		{Kind: "entregable", ID: "d1", Title: "TP Redes Avanzadas"},
		{Kind: "tarea", ID: "t1", Title: "Leer paper"},
	}
}

func TestRankEmptyQueryMatchesNothing(t *testing.T) {
	assert.Empty(t, Rank("", entries()))
}

func TestRankIsCaseInsensitive(t *testing.T) {
	got := Rank("redes", entries())
	require.NotEmpty(t, got)

	ids := make([]string, len(got))
	for i, e := range got {
		ids[i] = e.ID
	}
	assert.Contains(t, ids, "c1")
	assert.Contains(t, ids, "d1")
	assert.NotContains(t, ids, "t1")
}

func TestRankBestMatchFirst(t *testing.T) {
	got := Rank("Redes", entries())
	require.NotEmpty(t, got)
	assert.Equal(t, "c1", got[0].ID, "the exact title outranks the longer one")
}

func TestRankNoMatch(t *testing.T) {
	assert.Empty(t, Rank("química", entries()))
}
