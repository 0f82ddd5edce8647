//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ANSI drives the controlling terminal directly: termios for input mode and
// raw escape sequences for output. Signals stay enabled so Ctrl-C still
// raises SIGINT.
type ANSI struct {
	out   io.Writer
	inFd  int
	outFd int

	orig    *unix.Termios
	cleanup sync.Once
	buf     []byte
}

// NewANSI returns a backend bound to stdin and stdout.
func NewANSI() *ANSI {
	return &ANSI{
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

// Setup switches stdin to non-canonical, non-echoing, non-blocking reads and
// enters the alternate screen. On failure any termios change already made is
// rolled back.
func (a *ANSI) Setup() error {
	if !term.IsTerminal(a.inFd) {
		return setupError(ErrNotTerminal, "stdin")
	}

	orig, err := unix.IoctlGetTermios(a.inFd, ioctlReadTermios)
	if err != nil {
		return setupError(err, "read termios")
	}

	raw := *orig
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(a.inFd, ioctlWriteTermios, &raw); err != nil {
		return setupError(err, "write termios")
	}
	a.orig = orig

	if err := a.write(seqEnterScreen, seqClearScreen, seqHideCursor); err != nil {
		a.restore()
		return setupError(err, "enter alternate screen")
	}
	return nil
}

// Cleanup shows the cursor, leaves the alternate screen and restores the
// original termios. Only the first call has any effect.
func (a *ANSI) Cleanup() {
	a.cleanup.Do(func() {
		_ = a.write(seqShowCursor, seqLeaveScreen)
		a.restore()
	})
}

func (a *ANSI) restore() {
	if a.orig == nil {
		return
	}
	_ = unix.IoctlSetTermios(a.inFd, ioctlWriteTermios, a.orig)
	a.orig = nil
}

// Size reports the size of the terminal attached to stdout.
func (a *ANSI) Size() (int, int, error) {
	w, h, err := term.GetSize(a.outFd)
	if err != nil {
		return 0, 0, setupError(err, "detect size")
	}
	if w <= 0 || h <= 0 {
		return 0, 0, setupError(errors.Errorf("reported %dx%d", w, h), "detect size")
	}
	return w, h, nil
}

// PollInput reads at most one byte without blocking.
func (a *ANSI) PollInput() (Key, error) {
	fds := []unix.PollFd{{Fd: int32(a.inFd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil {
		if err == unix.EINTR {
			return KeyNone, nil
		}
		return KeyNone, &IOError{Op: "poll", Err: err}
	}
	if n == 0 {
		return KeyNone, nil
	}
	if fds[0].Revents&unix.POLLNVAL != 0 {
		return KeyNone, &IOError{Op: "poll", Err: unix.EBADF}
	}

	var b [1]byte
	rn, err := unix.Read(a.inFd, b[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return KeyNone, nil
		}
		return KeyNone, &IOError{Op: "read", Err: err}
	}
	if rn == 0 {
		// readable with nothing to read is end of input
		return KeyNone, &IOError{Op: "read", Err: io.EOF}
	}
	return KeyFromByte(b[0]), nil
}

// WriteGlyph moves the cursor to x, y and prints ch in a single write.
func (a *ANSI) WriteGlyph(x, y int, ch rune) error {
	a.buf = appendCursorPos(a.buf[:0], x, y)
	a.buf = utf8.AppendRune(a.buf, ch)
	if _, err := a.out.Write(a.buf); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

func (a *ANSI) write(seqs ...[]byte) error {
	a.buf = a.buf[:0]
	for _, s := range seqs {
		a.buf = append(a.buf, s...)
	}
	_, err := a.out.Write(a.buf)
	return err
}
