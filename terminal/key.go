package terminal

// Key is a decoded keystroke. Only the keys the game reacts to are named.
type Key uint8

const (
	// KeyNone means no event, or a byte the game ignores.
	KeyNone Key = iota
	// KeyEscape toggles pause.
	KeyEscape
	// KeyUp is 'w'.
	KeyUp
	// KeyLeft is 'a'.
	KeyLeft
	// KeyDown is 's'.
	KeyDown
	// KeyRight is 'd'.
	KeyRight
)

var keyNames = [...]string{"none", "escape", "up", "left", "down", "right"}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// KeyFromByte decodes a single input byte.
func KeyFromByte(b byte) Key {
	switch b {
	case 0x1b:
		return KeyEscape
	case 'w':
		return KeyUp
	case 'a':
		return KeyLeft
	case 's':
		return KeyDown
	case 'd':
		return KeyRight
	}
	return KeyNone
}

// keyFromRune decodes a rune reported by a screen library.
func keyFromRune(r rune) Key {
	if r <= 0 || r > 0x7f {
		return KeyNone
	}
	return KeyFromByte(byte(r))
}
