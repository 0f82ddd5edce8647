//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import "github.com/pkg/errors"

var errANSIUnsupported = errors.New("terminal: ansi backend needs a unix terminal, use termbox or tcell")

// ANSI is unavailable on this platform.
type ANSI struct{}

// NewANSI returns a backend that fails Setup.
func NewANSI() *ANSI { return &ANSI{} }

// Setup always fails.
func (a *ANSI) Setup() error { return setupError(errANSIUnsupported, "ansi") }

// Cleanup does nothing.
func (a *ANSI) Cleanup() {}

// PollInput always fails.
func (a *ANSI) PollInput() (Key, error) {
	return KeyNone, &IOError{Op: "poll", Err: errANSIUnsupported}
}

// WriteGlyph always fails.
func (a *ANSI) WriteGlyph(int, int, rune) error {
	return &IOError{Op: "write", Err: errANSIUnsupported}
}

// Size always fails.
func (a *ANSI) Size() (int, int, error) { return 0, 0, setupError(errANSIUnsupported, "ansi") }
