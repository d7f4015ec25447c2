package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem maps raw keyboard state onto per-tick intent
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// KeyState holds the raw key state for one frame
type KeyState struct {
	Left          bool
	Right         bool
	JumpPressed   bool
	AttackPressed bool
	PausePressed  bool
}

// ReadKeys reads the current keyboard state.
// Arrows and WASD both move; Up, W and Space jump; X and J attack.
func (s *InputSystem) ReadKeys() KeyState {
	return KeyState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace),
		AttackPressed: inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsKeyJustPressed(ebiten.KeyJ),
		PausePressed:  inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
	}
}

// Translate converts key state into intent. Opposite directions cancel.
func (s *InputSystem) Translate(keys KeyState) Input {
	dir := 0
	if keys.Left {
		dir--
	}
	if keys.Right {
		dir++
	}
	return Input{
		Horizontal: dir,
		Jump:       keys.JumpPressed,
		Attack:     keys.AttackPressed,
	}
}

// Read reads the keyboard and returns this tick's intent
func (s *InputSystem) Read() Input {
	return s.Translate(s.ReadKeys())
}
