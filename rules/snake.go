package rules

import "errors"

// ErrBoardTooSmall is returned when a snake cannot fit on the board.
var ErrBoardTooSmall = errors.New("rules: board too small for a snake")

// InitialLength is the number of segments a new snake starts with.
const InitialLength = 2

// Snake is an ordered body with the head at index 0, plus its heading.
type Snake struct {
	Body      []Point
	Direction Direction
}

// NewSnake places a snake of InitialLength with its head at head, trailing
// away from dir.
func NewSnake(head Point, dir Direction, width, height int) (*Snake, error) {
	if width*height < InitialLength || !dir.Valid() {
		return nil, ErrBoardTooSmall
	}
	head = head.Wrap(width, height)
	body := []Point{head}
	for len(body) < InitialLength {
		body = append(body, dir.Opposite().Step(body[len(body)-1], width, height))
	}
	if body[0].Equal(body[1]) {
		// a one cell wide axis folds the neck onto the head
		return nil, ErrBoardTooSmall
	}
	return &Snake{Body: body, Direction: dir}, nil
}

// Head returns the first point in the body
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Tail returns the last point in the body
func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// Len is the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// NextHead is the cell the head moves into on the next tick.
func (s *Snake) NextHead(width, height int) Point {
	return s.Direction.Step(s.Head(), width, height)
}

// Turn changes the heading. Reversing onto the neck is ignored and reported
// as false.
func (s *Snake) Turn(d Direction) bool {
	if !d.Valid() || d == s.Direction.Opposite() {
		return false
	}
	s.Direction = d
	return true
}

// Advance moves the head to next and shifts every segment into the cell its
// predecessor held. When grow is set the tail is kept, lengthening the snake
// by one.
func (s *Snake) Advance(next Point, grow bool) {
	if grow {
		s.Body = append(s.Body, Point{})
	}
	copy(s.Body[1:], s.Body)
	s.Body[0] = next
}

// Contains reports whether any segment occupies p.
func (s *Snake) Contains(p Point) bool {
	for _, b := range s.Body {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the snake.
func (s *Snake) Clone() *Snake {
	body := make([]Point, len(s.Body))
	copy(body, s.Body)
	return &Snake{Body: body, Direction: s.Direction}
}
