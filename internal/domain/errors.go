package domain

import "errors"

// Sentinel errors for remote operations. The API layer maps HTTP failures
// onto these; everything else it returns is a wrapped transport error.
var (
	// ErrServerOffline indicates the API produced no response at all
	ErrServerOffline = errors.New("server is unreachable")

	// ErrAuthFailed indicates the session token was missing or rejected
	ErrAuthFailed = errors.New("session token is invalid")

	// ErrBadRequest indicates the server rejected the request payload
	ErrBadRequest = errors.New("request was rejected")

	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")
)
