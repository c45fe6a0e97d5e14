package system

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/application/modifier"
	"github.com/younwookim/movekit/internal/application/pipeline"
	"github.com/younwookim/movekit/internal/domain/motion"
	"github.com/younwookim/movekit/internal/infrastructure/config"
)

// ScriptSource provides script modifier sources by path.
// *config.Loader satisfies it.
type ScriptSource interface {
	LoadScript(name string) ([]byte, error)
}

// Character is a movement pipeline with the standard modifier set wired
// from a TuningConfig, plus the jump and dash controller that turns
// player input into forces and target movements.
type Character struct {
	Pipeline    *pipeline.Pipeline
	Directional *modifier.Directional
	Gravity     *modifier.Gravity
	Force       *modifier.Force
	Dash        *modifier.Target
	Scripts     []*modifier.Scripted

	ground  pipeline.Modifier // Stair, GroundSnap or nil
	scripts ScriptSource
	logger  *log.Logger
	tuning  *config.TuningConfig

	dashMove     modifier.TargetMovement
	coyoteTimer  float64
	jumpBuffer   float64
	dashCooldown float64
	facing       float64 // +1 right, -1 left
}

// NewCharacter builds a character on top of the given collaborators.
// scripts may be nil when the tuning attaches no script modifiers.
func NewCharacter(tuning *config.TuningConfig, ground pipeline.GroundResolver, body pipeline.Backend, scripts ScriptSource, opts ...pipeline.Option) (*Character, error) {
	logger := log.Default()

	up := mgl64.Vec3(tuning.Pipeline.Up)
	base := []pipeline.Option{
		pipeline.WithUp(up),
		pipeline.WithDebug(tuning.Pipeline.Debug),
		pipeline.WithLaunchGraceTicks(tuning.Pipeline.LaunchGraceTicks),
		pipeline.WithLogger(logger),
	}
	p, err := pipeline.New(ground, body, append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	force, err := modifier.NewForce(p)
	if err != nil {
		return nil, err
	}

	c := &Character{
		Pipeline:    p,
		Directional: modifier.NewDirectional(tuning.Directional.MaxSpeed, tuning.Directional.Acceleration, tuning.Directional.Deceleration),
		Gravity:     modifier.NewGravity(tuning.Gravity.Gravity),
		Force:       force,
		Dash:        modifier.NewTarget(),
		scripts:     scripts,
		logger:      logger,
		facing:      1,
	}

	p.AddModifier(c.Directional)
	p.AddModifier(c.Gravity)
	p.AddModifier(c.Force)
	p.AddModifier(c.Dash)
	c.Dash.OnFinished(c.endDash)

	if err := c.ApplyTuning(tuning); err != nil {
		return nil, err
	}
	return c, nil
}

// ApplyTuning pushes new tuning values into the live modifiers. Script
// modifiers are rebuilt from source. On error the previous tuning stays.
func (c *Character) ApplyTuning(tuning *config.TuningConfig) error {
	dashCurve, err := tuning.Dash.Curve.Build()
	if err != nil {
		return fmt.Errorf("dash curve: %w", err)
	}
	scripts, err := c.buildScripts(tuning.Scripts)
	if err != nil {
		return err
	}

	c.Directional.SetMaxSpeed(tuning.Directional.MaxSpeed)
	c.Directional.SetAcceleration(tuning.Directional.Acceleration)
	c.Directional.SetDeceleration(tuning.Directional.Deceleration)
	c.Directional.SetPhase(motion.ParsePhase(tuning.Directional.Phase))

	c.Gravity.SetGravity(tuning.Gravity.Gravity)
	c.Gravity.SetPhase(motion.ParsePhase(tuning.Gravity.Phase))
	if !c.Dash.Active() {
		c.Pipeline.SetModifierEnabled(c.Gravity, tuning.Gravity.Enabled)
	}

	c.Force.SetMass(tuning.Force.Mass)
	c.Force.SetDrag(tuning.Force.Drag)
	c.Force.SetEndThreshold(tuning.Force.EndThreshold)

	c.setGroundModifier(tuning.Stair)

	for _, s := range c.Scripts {
		c.Pipeline.RemoveModifier(s)
	}
	c.Scripts = scripts
	for _, s := range scripts {
		c.Pipeline.AddModifier(s)
	}

	c.dashMove = modifier.TargetMovement{
		Duration: tuning.Dash.Duration,
		Z:        modifier.AxisMovement{Use: true, Distance: tuning.Dash.Distance, Curve: dashCurve},
	}

	c.Pipeline.Registry().MarkDirty()
	c.tuning = tuning
	return nil
}

func (c *Character) buildScripts(cfgs []config.ScriptConfig) ([]*modifier.Scripted, error) {
	if len(cfgs) == 0 {
		return nil, nil
	}
	if c.scripts == nil {
		return nil, pipeline.NewMissingCollaboratorError("Character", "a script source")
	}

	scripts := make([]*modifier.Scripted, 0, len(cfgs))
	for _, sc := range cfgs {
		src, err := c.scripts.LoadScript(sc.Path)
		if err != nil {
			return nil, err
		}
		name := sc.Name
		if name == "" {
			name = sc.Path
		}
		m, err := modifier.NewScripted(name, src, motion.ParsePhase(sc.Phase), c.logger)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, m)
	}
	return scripts, nil
}

func (c *Character) setGroundModifier(cfg config.StairConfig) {
	if c.ground != nil {
		c.Pipeline.RemoveModifier(c.ground)
		c.ground = nil
	}

	switch cfg.Mode {
	case "velocity":
		c.ground = modifier.NewGroundSnap(cfg.SnapSpeed)
	case "none":
	default:
		c.ground = modifier.NewStair()
	}
	if c.ground != nil {
		c.Pipeline.AddModifier(c.ground)
	}
}

// GroundModifier returns the modifier keeping the body on the ground, if any.
func (c *Character) GroundModifier() pipeline.Modifier {
	return c.ground
}

// Tuning returns the tuning last applied.
func (c *Character) Tuning() *config.TuningConfig {
	return c.tuning
}

// Facing returns +1 when facing right and -1 when facing left.
func (c *Character) Facing() float64 {
	return c.facing
}

// Update feeds one tick of input into the pipeline and ticks it.
func (c *Character) Update(input InputState, deltaTime float64) pipeline.Report {
	dir, strength := input.Move()
	if dir.X() > 0 {
		c.facing = 1
	} else if dir.X() < 0 {
		c.facing = -1
	}
	c.Pipeline.SetMoveDirection(dir, strength)

	c.updateTimers(deltaTime)
	c.handleJump(input)
	c.handleDash(input)

	return c.Pipeline.Tick(deltaTime)
}

func (c *Character) updateTimers(dt float64) {
	// Coyote time
	if c.Pipeline.State().IsGrounded {
		c.coyoteTimer = c.tuning.Jump.CoyoteTime
	} else if c.coyoteTimer > 0 {
		c.coyoteTimer -= dt
	}

	if c.jumpBuffer > 0 {
		c.jumpBuffer -= dt
	}
	if c.dashCooldown > 0 {
		c.dashCooldown -= dt
	}
}

func (c *Character) handleJump(input InputState) {
	if input.JumpPressed {
		c.jumpBuffer = c.tuning.Jump.JumpBuffer
	}

	canJump := c.Pipeline.State().IsGrounded || c.coyoteTimer > 0
	if !canJump || c.jumpBuffer <= 0 {
		return
	}

	jump := mgl64.Vec3{0, c.tuning.Jump.Force, 0}
	c.Force.AddForce(jump, mgl64.Vec3{0, 1, 0})
	c.coyoteTimer = 0
	c.jumpBuffer = 0
}

func (c *Character) handleDash(input InputState) {
	if !input.Dash || c.dashCooldown > 0 || c.Dash.Active() {
		return
	}

	c.dashCooldown = c.tuning.Dash.Cooldown
	c.Pipeline.AddIgnoreInput()
	c.Pipeline.SetModifierEnabled(c.Gravity, false)
	c.Dash.StartAround(c.dashMove, 90*c.facing, c.Pipeline.State().Up)
}

func (c *Character) endDash(*modifier.Target) {
	c.Pipeline.RemoveIgnoreInput()
	c.Pipeline.SetModifierEnabled(c.Gravity, c.tuning.Gravity.Enabled)
}
