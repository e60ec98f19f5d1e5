package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/unwind/internal/apperr"
)

var errUnknown = &apperr.Error{Message: "unknown preset: %s"}

func TestFmtMatchesTemplate(t *testing.T) {
	err := errUnknown.Fmt("Lofi")

	assert.Equal(t, "unknown preset: Lofi", err.Error())
	assert.ErrorIs(t, err, errUnknown)
}

func TestWrapKeepsCause(t *testing.T) {
	err := errUnknown.Fmt("Lofi").Wrap(io.EOF)

	assert.ErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, errUnknown)
	assert.Equal(t, "unknown preset: Lofi: EOF", err.Error())
}

func TestDistinctErrorsDoNotMatch(t *testing.T) {
	other := &apperr.Error{Message: "other"}

	assert.False(t, errors.Is(other, errUnknown))
}
