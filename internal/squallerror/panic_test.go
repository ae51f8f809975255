package squallerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanicError(t *testing.T) {
	err := NewPanicError("boom", []byte("stack"))

	assert.Equal(t, "panic occurred: boom", err.Error())
	assert.Equal(t, "boom", err.Value())
	assert.Equal(t, []byte("stack"), err.Stack)

	var pe PanicError
	assert.True(t, errors.As(error(err), &pe))
}
