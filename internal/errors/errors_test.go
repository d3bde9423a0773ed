package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  New(CodeValidationFailed, "name is required"),
			want: "VALIDATION_FAILED: name is required",
		},
		{
			name: "with cause",
			err:  Wrap(stderrors.New("boom"), CodeStorageUnavailable, "failed to list videos"),
			want: "STORAGE_UNAVAILABLE: failed to list videos (caused by: boom)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, CodeStorageUnavailable, "failed to get channel")

	assert.ErrorIs(t, err, cause)
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: stderrors.New("x"), want: CodeInternal},
		{name: "app error", err: New(CodeWriteFailed, "x"), want: CodeWriteFailed},
		{
			name: "wrapped app error",
			err:  fmt.Errorf("outer: %w", New(CodeDecodeFailed, "x")),
			want: CodeDecodeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestIs(t *testing.T) {
	err := Wrap(stderrors.New("dup"), CodeWriteFailed, "channel with this ID already exists")

	assert.True(t, Is(err, CodeWriteFailed))
	assert.False(t, Is(err, CodeStorageUnavailable))
	assert.False(t, Is(nil, CodeWriteFailed))
}
