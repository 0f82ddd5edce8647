package terminal

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestIOError(t *testing.T) {
	err := &IOError{Op: "read", Err: io.EOF}
	require.Equal(t, "terminal: read: EOF", err.Error())
	require.Equal(t, io.EOF, errors.Cause(err))
	require.True(t, IsIOError(err))
	require.True(t, IsIOError(errors.Wrap(err, "game loop")))
	require.False(t, IsIOError(io.EOF))
	require.False(t, IsIOError(nil))
}

func TestSetupError(t *testing.T) {
	err := setupError(ErrNotTerminal, "stdin")
	require.Equal(t, ErrNotTerminal, errors.Cause(err))
	require.Equal(t, "terminal: setup: stdin: terminal: stdin is not a terminal", err.Error())
	require.False(t, IsIOError(err))
}
