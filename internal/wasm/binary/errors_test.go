package binary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitError_unwrapAndMessage(t *testing.T) {
	inner := errors.New("boom")
	err := emitErr("element segment 3", inner)
	require.ErrorIs(t, err, inner)
	require.Contains(t, err.Error(), "element segment 3")
	require.Contains(t, err.Error(), "boom")
}

func TestEmitError_nilErrIsNil(t *testing.T) {
	require.NoError(t, emitErr("anything", nil))
}

func TestParseError_unwrapAndMessage(t *testing.T) {
	inner := errors.New("truncated")
	err := parseErr(12, "section id", inner)
	require.ErrorIs(t, err, inner)
	require.Contains(t, err.Error(), "offset 12")
	require.Contains(t, err.Error(), "section id")
}

func TestErrUnknownOpcode_message(t *testing.T) {
	err := &ErrUnknownOpcode{Byte: 0xEE}
	require.Contains(t, err.Error(), "0xee")
}
