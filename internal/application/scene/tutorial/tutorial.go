// Package tutorial provides the intro screen shown before the first run.
package tutorial

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/skyquest/internal/application/scene"
	"github.com/younwookim/skyquest/internal/application/state"
)

var colorBG = color.RGBA{26, 26, 46, 255}

const instructions = `WELCOME TO SKY QUEST!

Arrows / A D  - Move
Up / W / Space - Jump (twice with Double Jump)
X / J          - Attack
Esc / P        - Pause

Collect coins, defeat enemies and reach each
level's target. Find the keys in the maze
and defeat the boss to win!

Press SPACE or ENTER to start, ESC to quit`

// Tutorial is the intro scene
type Tutorial struct {
	next      func() scene.Scene
	onDismiss func()
	screenW   int
	screenH   int
}

// New creates the tutorial scene. next builds the scene that follows;
// onDismiss runs once when the player continues.
func New(next func() scene.Scene, onDismiss func(), screenW, screenH int) *Tutorial {
	return &Tutorial{
		next:      next,
		onDismiss: onDismiss,
		screenW:   screenW,
		screenH:   screenH,
	}
}

// Update waits for the player to continue or quit (implements scene.Scene)
func (t *Tutorial) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, scene.ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return t.Continue(), nil
	}
	return nil, nil
}

// Continue dismisses the tutorial and returns the next scene
func (t *Tutorial) Continue() scene.Scene {
	if t.onDismiss != nil {
		t.onDismiss()
		t.onDismiss = nil
	}
	return t.next()
}

// State reports the tutorial game state
func (t *Tutorial) State() state.GameState {
	return state.StateTutorial
}

// Draw renders the instructions
func (t *Tutorial) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, instructions, t.screenW/2-150, t.screenH/2-90)
}

// OnEnter is called when entering this scene
func (t *Tutorial) OnEnter() {}

// OnExit is called when leaving this scene
func (t *Tutorial) OnExit() {}

// Name identifies the scene in logs
func (t *Tutorial) Name() string { return "tutorial" }
