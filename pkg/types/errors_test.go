package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("disk full")
	err := IOError(cause, "writing %s", "out.parquet")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "io")
	assert.Contains(t, err.Error(), "writing out.parquet")
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestKindDetection(t *testing.T) {
	err := MissingFieldError("ogrn")
	assert.Equal(t, ErrMissingField, Kind(err))

	wrapped := errors.New("wrap") // not an *Error, not unwrappable to one
	assert.Equal(t, ErrOther, Kind(wrapped))
}

func TestDateParseError(t *testing.T) {
	err := DateParseError("31-02-2020")
	assert.Equal(t, ErrDateParse, err.Kind)
	assert.Contains(t, err.Msg, "31-02-2020")
}
