package terminal

import (
	"github.com/pkg/errors"
)

// ErrNotTerminal is returned by Setup when stdin is not a tty.
var ErrNotTerminal = errors.New("terminal: stdin is not a terminal")

// IOError is a read or write failure while the game is running.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "terminal: " + e.Op + ": " + e.Err.Error()
}

// Cause returns the underlying error, for errors.Cause.
func (e *IOError) Cause() error { return e.Err }

// Unwrap returns the underlying error, for errors.Is and errors.As.
func (e *IOError) Unwrap() error { return e.Err }

// IsIOError reports whether err came from a failed read or write.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// setupError marks err as a startup failure.
func setupError(err error, msg string) error {
	return errors.Wrap(err, "terminal: setup: "+msg)
}
