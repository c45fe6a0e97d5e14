package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/movekit/internal/application/replay"
)

// InputSystem reads the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the input of one tick.
// Left/Right move along x, Up/Down along the depth axis (z).
type InputState struct {
	Left        bool
	Right       bool
	Up          bool
	Down        bool
	Walk        bool // half strength
	JumpPressed bool
	Dash        bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:          ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:        ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Walk:        ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Dash:        inpututil.IsKeyJustPressed(ebiten.KeyK),
	}
}

// Move returns the movement direction and strength. Opposite keys cancel.
func (in InputState) Move() (mgl64.Vec3, float64) {
	var dir mgl64.Vec3
	if in.Left {
		dir[0]--
	}
	if in.Right {
		dir[0]++
	}
	if in.Up {
		dir[2]++
	}
	if in.Down {
		dir[2]--
	}
	if dir == (mgl64.Vec3{}) {
		return dir, 0
	}

	strength := 1.0
	if in.Walk {
		strength = 0.5
	}
	return dir.Normalize(), strength
}

// Replay converts the input for recording
func (in InputState) Replay() replay.ReplayInput {
	return replay.ReplayInput{
		Left:        in.Left,
		Right:       in.Right,
		Up:          in.Up,
		Down:        in.Down,
		Walk:        in.Walk,
		JumpPressed: in.JumpPressed,
		Dash:        in.Dash,
	}
}

// InputFromReplay converts a recorded input back
func InputFromReplay(in replay.ReplayInput) InputState {
	return InputState{
		Left:        in.Left,
		Right:       in.Right,
		Up:          in.Up,
		Down:        in.Down,
		Walk:        in.Walk,
		JumpPressed: in.JumpPressed,
		Dash:        in.Dash,
	}
}
