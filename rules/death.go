package rules

// Death records when and why the snake died.
type Death struct {
	Turn  int64
	Cause string
}

// deathByBodyCollision reports whether moving the head into next kills the
// snake. The tail cell is vacated during the same tick unless the snake is
// growing, so following the tail is legal.
func deathByBodyCollision(s *Snake, next Point, grow bool) bool {
	for i, b := range s.Body {
		if i == len(s.Body)-1 && !grow {
			continue
		}
		if b.Equal(next) {
			return true
		}
	}
	return false
}

// CheckForDeath returns the death caused by moving the head into next, or nil
// when the move is safe.
func CheckForDeath(turn int64, s *Snake, next Point, grow bool) *Death {
	if deathByBodyCollision(s, next, grow) {
		return &Death{Turn: turn, Cause: DeathCauseSelfCollision}
	}
	return nil
}
