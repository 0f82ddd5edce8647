package terminal

import "fmt"

// Terminal is the contract the game core consumes.
type Terminal interface {
	// Setup enters raw mode and the alternate screen.
	Setup() error
	// Cleanup restores the terminal. It is safe to call more than once.
	Cleanup()
	// PollInput returns the next key without blocking, or KeyNone.
	PollInput() (Key, error)
	// WriteGlyph draws ch at the zero based cell x, y.
	WriteGlyph(x, y int, ch rune) error
	// Size reports the screen size in cells.
	Size() (width, height int, err error)
}

// Backend names accepted by New.
const (
	BackendANSI    = "ansi"
	BackendTermbox = "termbox"
	BackendTcell   = "tcell"
)

// New builds the named backend. onInterrupt is called when a backend reads
// Ctrl-C as a key instead of letting the kernel raise SIGINT; it may be nil.
func New(backend string, onInterrupt func()) (Terminal, error) {
	switch backend {
	case "", BackendANSI:
		return NewANSI(), nil
	case BackendTermbox:
		return NewTermbox(onInterrupt), nil
	case BackendTcell:
		return NewTcell(onInterrupt), nil
	}
	return nil, fmt.Errorf("terminal: unknown backend %q", backend)
}
