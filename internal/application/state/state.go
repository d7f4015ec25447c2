package state

// GameState represents the current state of the game
type GameState int

const (
	StateTutorial GameState = iota
	StatePlaying
	StatePaused
	StateLevelComplete
	StateGameOver
	StateWon
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateTutorial:
		return "Tutorial"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateLevelComplete:
		return "LevelComplete"
	case StateGameOver:
		return "GameOver"
	case StateWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the state ends the run
func (s GameState) Terminal() bool {
	return s == StateGameOver || s == StateWon
}

// Status is the progression view a state is derived from
type Status interface {
	GameOver() bool
	Won() bool
	Transitioning() bool
}

// Derive maps the simulation status and the pause toggle to a game state.
// Terminal states win over the pause toggle.
func Derive(s Status, paused bool) GameState {
	switch {
	case s.GameOver():
		return StateGameOver
	case s.Won():
		return StateWon
	case paused:
		return StatePaused
	case s.Transitioning():
		return StateLevelComplete
	default:
		return StatePlaying
	}
}
