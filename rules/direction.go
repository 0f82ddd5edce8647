package rules

// Direction is the heading of the snake.
type Direction string

const (
	// DirectionUp moves the head towards row 0
	DirectionUp Direction = "up"
	// DirectionDown moves the head away from row 0
	DirectionDown Direction = "down"
	// DirectionLeft moves the head towards column 0
	DirectionLeft Direction = "left"
	// DirectionRight moves the head away from column 0
	DirectionRight Direction = "right"
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	}
	return false
}

// Step returns p moved one cell in direction d, wrapped onto the board.
func (d Direction) Step(p Point, width, height int) Point {
	switch d {
	case DirectionUp:
		p.Y--
	case DirectionDown:
		p.Y++
	case DirectionLeft:
		p.X--
	case DirectionRight:
		p.X++
	}
	return p.Wrap(width, height)
}
