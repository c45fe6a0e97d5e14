package ecs

import (
	"github.com/younwookim/movekit/internal/application/system"
)

// Mover is a movement character together with the body it drives
type Mover struct {
	Character *system.Character
	Body      system.Body
}

// AIType defines the behavior that produces an agent's input
type AIType int

const (
	AIIdle AIType = iota
	AIPatrol
	AIHop // patrol and jump whenever grounded
)

// AI represents an agent that walks back and forth around its start
type AI struct {
	Type           AIType
	PatrolStartX   float64
	PatrolDistance float64
	PatrolDir      float64 // +1 or -1
}

// Input returns the input for this tick given the current feet x.
// The patrol turns once it passes either bound.
func (ai *AI) Input(x float64, grounded bool) system.InputState {
	if ai.Type == AIIdle {
		return system.InputState{}
	}
	if ai.PatrolDir == 0 {
		ai.PatrolDir = 1
	}

	if ai.PatrolDir > 0 && x >= ai.PatrolStartX+ai.PatrolDistance {
		ai.PatrolDir = -1
	} else if ai.PatrolDir < 0 && x <= ai.PatrolStartX-ai.PatrolDistance {
		ai.PatrolDir = 1
	}

	in := system.InputState{
		Left:  ai.PatrolDir < 0,
		Right: ai.PatrolDir > 0,
		Walk:  true,
	}
	if ai.Type == AIHop && grounded {
		in.JumpPressed = true
	}
	return in
}
