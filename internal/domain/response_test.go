package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil is success", nil, Success},
		{"offline server", ErrServerOffline, InternalServerError},
		{"rejected payload", ErrBadRequest, BadRequest},
		{"expired token", ErrAuthFailed, Unauthorized},
		{"missing record", ErrNotFound, NotFound},
		{"wrapped sentinel", fmt.Errorf("loading careers: %w", ErrAuthFailed), Unauthorized},
		{"unknown error", errors.New("boom"), InternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeFromError(tt.err))
		})
	}
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "SUCCESS", Success.String())
	assert.Equal(t, "UNAUTHORIZE", Unauthorized.String())
	assert.Equal(t, "INTERNAL_SERVER_ERROR", InternalServerError.String())
}
