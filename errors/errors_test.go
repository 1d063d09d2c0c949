package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"bucket and key", NewObjectError("copy", "b1", "k", base), "s3cmd.copy b1/k: boom"},
		{"bucket only", NewError("ls", base).WithBucket("b1"), "s3cmd.ls bucket b1: boom"},
		{"key only", NewError("read", base).WithKey("k"), "s3cmd.read object k: boom"},
		{"no context", NewError("cp", base), "s3cmd.cp: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_WithMessageKeepsChain(t *testing.T) {
	err := NewError("cp", ErrUnsupportedOperation).WithMessage("cannot copy local to local")

	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.Contains(t, err.Error(), "cannot copy local to local")
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsInvalidURI(NewError("parse", ErrInvalidURI)))
	assert.True(t, IsUnsupportedEnvironment(NewError("guard", ErrUnsupportedEnvironment)))
	assert.True(t, IsObjectNotFound(NewObjectError("read", "b", "k", ErrObjectNotFound)))
	assert.True(t, IsAccessDenied(NewError("ls", ErrAccessDenied)))
	assert.True(t, IsEnvironmentUnverified(NewError("requireSandbox", ErrEnvironmentUnverified)))
	assert.False(t, IsUnsupportedEnvironment(NewError("requireSandbox", ErrEnvironmentUnverified)))
	assert.False(t, IsInvalidURI(errors.New("other")))
}
