package rules

import "fmt"

// Point is a single cell on the board, zero based from the top left corner.
type Point struct {
	X int
	Y int
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Wrap folds the point back onto a width x height board so that leaving one
// edge re-enters at the opposite edge.
func (p Point) Wrap(width, height int) Point {
	return Point{X: wrap(p.X, width), Y: wrap(p.Y, height)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
