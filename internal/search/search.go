// Package search ranks loaded records against a query for the global
// search overlay. It only ever sees what the store already holds; it
// issues no requests of its own.
package search

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Entry is one searchable record.
type Entry struct {
	Kind  string // display label: "curso", "entregable", ...
	ID    string
	Title string
}

// Rank returns the entries matching the query, best match first.
// Matching is case-folding fuzzy; an empty query matches nothing.
func Rank(query string, entries []Entry) []Entry {
	if query == "" {
		return nil
	}

	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}

	ranks := fuzzy.RankFindFold(query, titles)
	sort.Sort(ranks)

	out := make([]Entry, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, entries[r.OriginalIndex])
	}
	return out
}
