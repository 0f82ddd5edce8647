// Package terminal is the screen and keyboard boundary of the game. The game
// loop only sees the Terminal interface; the backends here own raw mode,
// alternate screen handling and key decoding.
//
// Backends:
//   - ansi: termios via golang.org/x/sys/unix and direct ANSI output (default)
//   - termbox: github.com/nsf/termbox-go
//   - tcell: github.com/gdamore/tcell/v2
package terminal
