package system

// Input is the player's intent for one tick.
// Horizontal is the held direction (-1, 0, +1); Jump and Attack are presses.
type Input struct {
	Horizontal int
	Jump       bool
	Attack     bool
}

// IsZero returns true if the input carries no intent at all
func (in Input) IsZero() bool {
	return in.Horizontal == 0 && !in.Jump && !in.Attack
}

// ClampDirection maps any integer onto -1, 0 or +1
func ClampDirection(dir int) int {
	switch {
	case dir > 0:
		return 1
	case dir < 0:
		return -1
	default:
		return 0
	}
}
