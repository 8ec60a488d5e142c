package state

import (
	"sync"

	"github.com/dcastillo/studia/internal/domain"
)

// Slice is an in-memory state partition for one entity type. It holds the
// current page of items, the selection, and the loading/error flags the
// views render from. Mutations are pure state changes; all I/O lives in the
// orchestration layer.
//
// Slices are written from command goroutines and read by the view, so every
// accessor takes the lock.
type Slice[T any] struct {
	mu sync.RWMutex

	id       func(T) string
	items    []T
	selected *T
	loading  bool
	err      string
	count    int

	// Request sequencing: a Load tags itself with Begin() and applies its
	// result through ApplyItems. A response older than the newest applied
	// one is discarded, so a slow earlier Load cannot overwrite the state
	// a later one already wrote.
	seq     uint64
	applied uint64
}

// NewSlice creates a slice for entities identified by the given id func.
func NewSlice[T any](id func(T) string) *Slice[T] {
	return &Slice[T]{id: id, loading: true}
}

// Begin hands out the sequence number for a new load request.
func (s *Slice[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// ApplyItems installs a load result tagged with its request sequence.
// It reports whether the result was applied; a stale response (one
// issued before the newest applied request) is ignored.
func (s *Slice[T]) ApplyItems(seq uint64, items []T, count int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	s.items = items
	s.count = count
	return true
}

// SetItems replaces the current page and the total remote count.
func (s *Slice[T]) SetItems(items []T, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.count = count
}

// Add appends a freshly created entity to the current page.
func (s *Slice[T]) Add(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	s.count++
}

// Update replaces the entity with a matching id. Absent ids are a no-op.
// A matching selection is refreshed as well.
func (s *Slice[T]) Update(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	itemID := s.id(item)
	for i := range s.items {
		if s.id(s.items[i]) == itemID {
			s.items[i] = item
			break
		}
	}
	if s.selected != nil && s.id(*s.selected) == itemID {
		s.selected = &item
	}
}

// Remove filters the entity with the given id out of the page. A matching
// selection is cleared.
func (s *Slice[T]) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	removed := false
	for _, item := range s.items {
		if s.id(item) == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	if removed && s.count > 0 {
		s.count--
	}
	if s.selected != nil && s.id(*s.selected) == id {
		s.selected = nil
	}
}

// SetSelected marks an entity as the active selection.
func (s *Slice[T]) SetSelected(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &item
}

// ClearSelected drops the selection.
func (s *Slice[T]) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Selected returns the active selection, if any.
func (s *Slice[T]) Selected() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		var zero T
		return zero, false
	}
	return *s.selected, true
}

// SetLoading toggles the loading flag.
func (s *Slice[T]) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// SetError records a failure message. An empty string clears it.
func (s *Slice[T]) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

// Items returns a copy of the current page.
func (s *Slice[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items on the current page.
func (s *Slice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Count returns the total remote count.
func (s *Slice[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// Loading returns the loading flag.
func (s *Slice[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the recorded failure message, or "".
func (s *Slice[T]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// TotalPages returns ceil(count / domain.PageSize); an empty collection
// has zero pages.
func (s *Slice[T]) TotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (s.count + domain.PageSize - 1) / domain.PageSize
}
