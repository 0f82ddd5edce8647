package rules

const (
	// DeathCauseSelfCollision is the death reason when the head runs into its own body
	DeathCauseSelfCollision = "snake-self-collision"
)
