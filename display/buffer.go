// Package display holds the in-memory mirror of the screen. Every cell that
// holds a marker has the marker's glyph drawn at the same coordinate, and
// every write to the buffer is forwarded to the output sink.
package display

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/battlesnakeio/termsnake/rules"
)

// Sink receives one glyph per buffer write.
type Sink interface {
	WriteGlyph(x, y int, ch rune) error
}

// Buffer is a fixed size grid of markers.
type Buffer struct {
	width  int
	height int
	cells  []Marker
	sink   Sink
	glyphs GlyphSet
	rand   *rand.Rand
}

// New creates an empty buffer. Dimensions are fixed for its lifetime.
func New(width, height int, sink Sink) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("display: invalid size %dx%d", width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]Marker, width*height),
		sink:   sink,
		glyphs: DefaultGlyphs(),
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// SetRand replaces the source used by RandomEmpty.
func (b *Buffer) SetRand(r *rand.Rand) { b.rand = r }

// SetGlyphs replaces the glyph set. Cells already drawn keep their old glyph
// until they are written again.
func (b *Buffer) SetGlyphs(g GlyphSet) { b.glyphs = g }

// Glyph returns the rune drawn for m.
func (b *Buffer) Glyph(m Marker) rune { return b.glyphs.Glyph(m) }

// Width of the grid in cells.
func (b *Buffer) Width() int { return b.width }

// Height of the grid in cells.
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) index(p rules.Point) (int, bool) {
	if p.X < 0 || p.X >= b.width || p.Y < 0 || p.Y >= b.height {
		return 0, false
	}
	return p.Y*b.width + p.X, true
}

// Set stores m at p and draws its glyph there, or a blank for Empty.
func (b *Buffer) Set(p rules.Point, m Marker) error {
	i, ok := b.index(p)
	if !ok {
		return fmt.Errorf("display: %s outside %dx%d", p, b.width, b.height)
	}
	b.cells[i] = m
	return b.sink.WriteGlyph(p.X, p.Y, b.glyphs.Glyph(m))
}

// Get returns the marker at p. Points off the grid read as Empty.
func (b *Buffer) Get(p rules.Point) Marker {
	i, ok := b.index(p)
	if !ok {
		return Empty
	}
	return b.cells[i]
}

// RandomEmpty picks uniformly among the cells holding no marker. It returns
// false when the grid is full.
func (b *Buffer) RandomEmpty() (rules.Point, bool) {
	open := make([]int, 0, len(b.cells))
	for i, m := range b.cells {
		if m == Empty {
			open = append(open, i)
		}
	}
	if len(open) == 0 {
		return rules.Point{}, false
	}
	i := open[b.rand.Intn(len(open))]
	return rules.Point{X: i % b.width, Y: i / b.width}, true
}

// Occupied lists every cell holding m in row major order.
func (b *Buffer) Occupied(m Marker) []rules.Point {
	var points []rules.Point
	for i, c := range b.cells {
		if c == m {
			points = append(points, rules.Point{X: i % b.width, Y: i / b.width})
		}
	}
	return points
}
