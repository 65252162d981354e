package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type lengthError struct{ n int }

func (e *lengthError) Error() string { return "length" }

func TestWrapKeepsKind(t *testing.T) {
	sentinel := New("sentinel")
	err := Wrapf(Wrap(sentinel, "inner"), "outer %d", 1)

	assert.True(t, Is(err, sentinel))
	assert.Equal(t, "outer 1: inner: sentinel", err.Error())
}

func TestMarkAndAs(t *testing.T) {
	sentinel := New("sentinel")
	err := Wrap(Mark(&lengthError{n: 3}, sentinel), "stage")

	assert.True(t, Is(err, sentinel))

	var target *lengthError
	assert.True(t, As(err, &target))
	assert.Equal(t, 3, target.n)
}
