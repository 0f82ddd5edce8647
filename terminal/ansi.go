package terminal

import "strconv"

// Control sequences written by the ansi backend.
var (
	seqEnterScreen = []byte("\x1b[?1049h")
	seqLeaveScreen = []byte("\x1b[?1049l")
	seqClearScreen = []byte("\x1b[2J")
	seqHideCursor  = []byte("\x1b[?25l")
	seqShowCursor  = []byte("\x1b[?25h")
)

// appendCursorPos appends the move-cursor sequence for the zero based cell
// x, y. The terminal counts rows and columns from 1.
func appendCursorPos(buf []byte, x, y int) []byte {
	buf = append(buf, "\x1b["...)
	buf = strconv.AppendInt(buf, int64(y+1), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(x+1), 10)
	return append(buf, 'H')
}
