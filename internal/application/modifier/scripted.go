package modifier

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/domain/motion"
)

// Scripted runs a tengo script each tick.
//
// Inputs are the globals dt, grounded, settled, move, strength,
// prev_velocity, prev_speed and prev_gravity. The script writes its
// contribution to the velocity and position globals as [x, y, z] arrays,
// both of which start each tick as [0, 0, 0]. A script may keep its own
// state in the memory map, which survives between ticks until reset.
type Scripted struct {
	name     string
	phase    motion.Phase
	compiled *tengo.Compiled
	memory   *tengo.Map
	logger   *log.Logger
}

var scriptGlobals = []string{
	"dt", "grounded", "settled", "move", "strength",
	"prev_velocity", "prev_speed", "prev_gravity",
	"velocity", "position", "memory",
}

// NewScripted compiles src. A compile error is returned here, never per tick.
func NewScripted(name string, src []byte, phase motion.Phase, logger *log.Logger) (*Scripted, error) {
	if logger == nil {
		logger = log.Default()
	}

	script := tengo.NewScript(src)
	for _, g := range scriptGlobals {
		_ = script.Add(g, nil)
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile script %s: %w", name, err)
	}

	return &Scripted{
		name:     name,
		phase:    phase,
		compiled: compiled,
		memory:   newScriptMemory(),
		logger:   logger,
	}, nil
}

func newScriptMemory() *tengo.Map {
	return &tengo.Map{Value: map[string]tengo.Object{}}
}

func (m *Scripted) Name() string            { return m.name }
func (m *Scripted) Phase() motion.Phase     { return m.phase }
func (m *Scripted) SetPhase(p motion.Phase) { m.phase = p }

func (m *Scripted) ProcessMovement(s motion.Snapshot, deltaTime float64) motion.Delta {
	d, err := m.run(s, deltaTime)
	if err != nil {
		m.logger.Printf("scripted modifier %s: %v", m.name, err)
		return motion.Delta{}
	}
	return d
}

func (m *Scripted) run(s motion.Snapshot, deltaTime float64) (motion.Delta, error) {
	inputs := map[string]any{
		"dt":            deltaTime,
		"grounded":      s.IsGrounded,
		"settled":       s.Settled(),
		"move":          vecToArray(s.MoveDirection),
		"strength":      s.MoveStrength,
		"prev_velocity": vecToArray(s.PrevVelocity),
		"prev_speed":    s.PrevSpeed,
		"prev_gravity":  s.PrevGravity,
		"velocity":      vecToArray(mgl64.Vec3{}),
		"position":      vecToArray(mgl64.Vec3{}),
		"memory":        m.memory,
	}
	for name, v := range inputs {
		if err := m.compiled.Set(name, v); err != nil {
			return motion.Delta{}, fmt.Errorf("set %s: %w", name, err)
		}
	}

	if err := m.compiled.Run(); err != nil {
		return motion.Delta{}, err
	}

	velocity, err := arrayToVec(m.compiled.Get("velocity"))
	if err != nil {
		return motion.Delta{}, fmt.Errorf("velocity: %w", err)
	}
	position, err := arrayToVec(m.compiled.Get("position"))
	if err != nil {
		return motion.Delta{}, fmt.Errorf("position: %w", err)
	}
	return motion.Delta{Velocity: velocity, Position: position}, nil
}

// ResetModifier clears the script memory.
func (m *Scripted) ResetModifier() {
	m.memory = newScriptMemory()
}

func vecToArray(v mgl64.Vec3) []any {
	return []any{v[0], v[1], v[2]}
}

func arrayToVec(v *tengo.Variable) (mgl64.Vec3, error) {
	if v == nil || v.IsUndefined() {
		return mgl64.Vec3{}, nil
	}
	items := v.Array()
	if items == nil {
		return mgl64.Vec3{}, fmt.Errorf("expected array, got %s", v.ValueType())
	}
	if len(items) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(items))
	}

	var out mgl64.Vec3
	for i, item := range items {
		switch n := item.(type) {
		case float64:
			out[i] = n
		case int64:
			out[i] = float64(n)
		default:
			return mgl64.Vec3{}, fmt.Errorf("component %d is %T", i, item)
		}
	}
	return out, nil
}
