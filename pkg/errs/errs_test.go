package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error", errors.New("boom"), Internal},
		{"not found", NotFoundError("Post not found"), NotFound},
		{"wrapped conflict", fmt.Errorf("follow: %w", ConflictError("Already following this user")), Conflict},
		{"validation", ValidationError("content is required"), Validation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := NotFoundError("Post not found")

	assert.Equal(t, "Post not found", err.Error())
	assert.Equal(t, "not_found", err.Kind.String())

	var target *Error
	assert.True(t, errors.As(fmt.Errorf("get post: %w", err), &target))
	assert.Equal(t, "Post not found", target.Msg)
}
