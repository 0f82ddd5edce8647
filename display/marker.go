package display

import runewidth "github.com/mattn/go-runewidth"

// Marker is the content of one cell. The zero value is Empty.
type Marker uint8

const (
	// Empty is a cell with nothing drawn in it.
	Empty Marker = iota
	// Head is the leading snake segment.
	Head
	// Body is any trailing snake segment.
	Body
	// Food is the item that grows the snake.
	Food
)

var markerNames = [...]string{"empty", "head", "body", "food"}

func (m Marker) String() string {
	if int(m) < len(markerNames) {
		return markerNames[m]
	}
	return "unknown"
}

// IsSnake reports whether the marker belongs to the snake.
func (m Marker) IsSnake() bool {
	return m == Head || m == Body
}

// GlyphSet maps each marker to the rune drawn for it.
type GlyphSet [4]rune

var (
	// BlockGlyphs draws the snake with block elements.
	BlockGlyphs = GlyphSet{Empty: ' ', Head: '█', Body: '▓', Food: '●'}
	// ASCIIGlyphs is used when block elements would not fit in one column.
	ASCIIGlyphs = GlyphSet{Empty: ' ', Head: '@', Body: 'o', Food: '*'}
)

// Glyph returns the rune for m.
func (g GlyphSet) Glyph(m Marker) rune {
	if int(m) < len(g) {
		return g[m]
	}
	return g[Empty]
}

// singleWidth reports whether every glyph occupies exactly one column under
// cond.
func (g GlyphSet) singleWidth(cond *runewidth.Condition) bool {
	for _, r := range g {
		if cond.RuneWidth(r) != 1 {
			return false
		}
	}
	return true
}

// DefaultGlyphs picks BlockGlyphs unless the current locale renders them
// double width, which happens for East Asian ambiguous width runes.
func DefaultGlyphs() GlyphSet {
	return glyphsFor(runewidth.DefaultCondition)
}

func glyphsFor(cond *runewidth.Condition) GlyphSet {
	if BlockGlyphs.singleWidth(cond) {
		return BlockGlyphs
	}
	return ASCIIGlyphs
}
