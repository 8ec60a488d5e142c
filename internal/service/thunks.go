// Package service holds the orchestration layer: each entity gets four
// flows (Load, Create, Update, Delete) that call the API, mutate the
// entity's slice, and hand the response code back to the caller for UI
// branching. Slices never do I/O; the API never touches slices.
package service

import (
	"log/slog"

	"github.com/dcastillo/studia/internal/domain"
	"github.com/dcastillo/studia/internal/state"
)

// load runs a list fetch against a slice: toggles loading, records errors,
// and applies the page through the slice's request sequencing so a stale
// response cannot overwrite a newer one.
func load[T any](slice *state.Slice[T], logger *slog.Logger, what string, fetch func() ([]T, int, error)) domain.Code {
	seq := slice.Begin()
	slice.SetLoading(true)
	items, count, err := fetch()
	slice.SetLoading(false)
	if err != nil {
		code := domain.CodeFromError(err)
		slice.SetError(code.Message())
		logger.Error("load failed", "entity", what, "code", code.String(), "error", err)
		return code
	}
	if !slice.ApplyItems(seq, items, count) {
		logger.Debug("discarded stale page", "entity", what, "seq", seq)
		return domain.Success
	}
	slice.SetError("")
	logger.Info("loaded page", "entity", what, "items", len(items), "count", count)
	return domain.Success
}

// createOne runs a create call and merges the server-assigned record into
// the slice.
func createOne[T any](slice *state.Slice[T], logger *slog.Logger, what string, call func() (*T, error)) domain.Code {
	created, err := call()
	if err != nil {
		code := domain.CodeFromError(err)
		slice.SetError(code.Message())
		logger.Error("create failed", "entity", what, "code", code.String(), "error", err)
		return code
	}
	slice.Add(*created)
	slice.SetError("")
	return domain.Success
}

// updateOne runs an update call and replaces the matching record in the
// slice.
func updateOne[T any](slice *state.Slice[T], logger *slog.Logger, what string, call func() (*T, error)) domain.Code {
	updated, err := call()
	if err != nil {
		code := domain.CodeFromError(err)
		slice.SetError(code.Message())
		logger.Error("update failed", "entity", what, "code", code.String(), "error", err)
		return code
	}
	slice.Update(*updated)
	slice.SetError("")
	return domain.Success
}

// removeOne runs a delete call and filters the record out of the slice.
func removeOne[T any](slice *state.Slice[T], logger *slog.Logger, what, id string, call func() error) domain.Code {
	if err := call(); err != nil {
		code := domain.CodeFromError(err)
		slice.SetError(code.Message())
		logger.Error("delete failed", "entity", what, "code", code.String(), "error", err)
		return code
	}
	slice.Remove(id)
	slice.SetError("")
	return domain.Success
}
