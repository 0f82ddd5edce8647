package game

// Status is the state of a round.
type Status string

const (
	// StatusRunning advances the snake every tick
	StatusRunning Status = "running"
	// StatusPaused holds the simulation until the pause key is pressed again
	StatusPaused Status = "paused"
	// StatusDead is terminal for the round, the final frame stays on screen
	StatusDead Status = "dead"
)
