package config

import (
	"fmt"

	"github.com/younwookim/movekit/internal/domain/motion"
)

// TuningConfig is the root config for movement tuning files
type TuningConfig struct {
	Pipeline    PipelineConfig    `json:"pipeline" yaml:"pipeline"`
	Directional DirectionalConfig `json:"directional" yaml:"directional"`
	Gravity     GravityConfig     `json:"gravity" yaml:"gravity"`
	Force       ForceConfig       `json:"force" yaml:"force"`
	Stair       StairConfig       `json:"stair" yaml:"stair"`
	Probe       ProbeConfig       `json:"probe" yaml:"probe"`
	Jump        JumpConfig        `json:"jump" yaml:"jump"`
	Dash        DashConfig        `json:"dash" yaml:"dash"`
	Scripts     []ScriptConfig    `json:"scripts" yaml:"scripts"`
}

type PipelineConfig struct {
	Debug            bool       `json:"debug" yaml:"debug"`
	LaunchGraceTicks int        `json:"launchGraceTicks" yaml:"launchGraceTicks"`
	Up               [3]float64 `json:"up" yaml:"up"`
}

type DirectionalConfig struct {
	MaxSpeed     float64 `json:"maxSpeed" yaml:"maxSpeed"`
	Acceleration float64 `json:"acceleration" yaml:"acceleration"`
	Deceleration float64 `json:"deceleration" yaml:"deceleration"`
	Phase        string  `json:"phase" yaml:"phase"`
}

type GravityConfig struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Gravity float64 `json:"gravity" yaml:"gravity"`
	Phase   string  `json:"phase" yaml:"phase"`
}

type ForceConfig struct {
	Mass         float64 `json:"mass" yaml:"mass"`
	Drag         float64 `json:"drag" yaml:"drag"`
	EndThreshold float64 `json:"endThreshold" yaml:"endThreshold"`
}

// StairConfig selects how a settled body is kept on the ground.
// Mode is "position" (gap correction), "velocity" (ground snap) or "none".
type StairConfig struct {
	Mode      string  `json:"mode" yaml:"mode"`
	SnapSpeed float64 `json:"snapSpeed" yaml:"snapSpeed"`
}

type ProbeConfig struct {
	StairOffset float64 `json:"stairOffset" yaml:"stairOffset"`
	AirOffset   float64 `json:"airOffset" yaml:"airOffset"`
}

type JumpConfig struct {
	Force      float64 `json:"force" yaml:"force"`
	CoyoteTime float64 `json:"coyoteTime" yaml:"coyoteTime"`
	JumpBuffer float64 `json:"jumpBuffer" yaml:"jumpBuffer"`
}

type DashConfig struct {
	Distance float64     `json:"distance" yaml:"distance"`
	Duration float64     `json:"duration" yaml:"duration"`
	Cooldown float64     `json:"cooldown" yaml:"cooldown"`
	Curve    CurveConfig `json:"curve" yaml:"curve"`
}

// ScriptConfig attaches a tengo script modifier.
type ScriptConfig struct {
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
	Phase string `json:"phase" yaml:"phase"`
}

// CurveConfig describes a motion.Curve. Type is "linear", "easeInOut" or "keyframes".
type CurveConfig struct {
	Type string      `json:"type" yaml:"type"`
	Keys []KeyConfig `json:"keys" yaml:"keys"`
}

type KeyConfig struct {
	Time  float64 `json:"t" yaml:"t"`
	Value float64 `json:"v" yaml:"v"`
}

// Build converts the config into a curve.
func (c CurveConfig) Build() (motion.Curve, error) {
	switch c.Type {
	case "", "linear":
		return motion.LinearCurve{}, nil
	case "easeInOut":
		return motion.EaseInOutCurve{}, nil
	case "keyframes":
		if len(c.Keys) == 0 {
			return nil, fmt.Errorf("%w: keyframe curve without keys", ErrInvalidConfig)
		}
		keys := make([]motion.Key, len(c.Keys))
		for i, k := range c.Keys {
			keys[i] = motion.Key{Time: k.Time, Value: k.Value}
		}
		return motion.NewKeyframeCurve(keys...), nil
	default:
		return nil, fmt.Errorf("%w: unknown curve type %q", ErrInvalidConfig, c.Type)
	}
}

// DefaultTuning returns the tuning used when no file overrides it.
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		Pipeline: PipelineConfig{
			LaunchGraceTicks: 1,
			Up:               [3]float64{0, 1, 0},
		},
		Directional: DirectionalConfig{
			MaxSpeed:     5,
			Acceleration: 10,
			Deceleration: 20,
			Phase:        "default",
		},
		Gravity: GravityConfig{
			Enabled: true,
			Gravity: 9.81,
			Phase:   "late",
		},
		Force: ForceConfig{
			Mass:         1,
			Drag:         1,
			EndThreshold: 0.2,
		},
		Stair: StairConfig{
			Mode:      "position",
			SnapSpeed: 9.81,
		},
		Probe: ProbeConfig{
			StairOffset: 0.25,
			AirOffset:   0.05,
		},
		Jump: JumpConfig{
			Force:      6,
			CoyoteTime: 0.1,
			JumpBuffer: 0.1,
		},
		Dash: DashConfig{
			Distance: 3,
			Duration: 0.2,
			Cooldown: 0.5,
			Curve:    CurveConfig{Type: "easeInOut"},
		},
	}
}

// Validate checks the values the movement code cannot guard on its own.
func (c *TuningConfig) Validate() error {
	if c.Directional.MaxSpeed < 0 {
		return fmt.Errorf("%w: directional.maxSpeed must not be negative", ErrInvalidConfig)
	}
	if c.Directional.Acceleration < 0 || c.Directional.Deceleration < 0 {
		return fmt.Errorf("%w: directional rates must not be negative", ErrInvalidConfig)
	}
	if c.Force.Mass < 0 {
		return fmt.Errorf("%w: force.mass must not be negative", ErrInvalidConfig)
	}
	if c.Force.EndThreshold < 0 {
		return fmt.Errorf("%w: force.endThreshold must not be negative", ErrInvalidConfig)
	}
	if c.Probe.StairOffset < 0 || c.Probe.AirOffset < 0 {
		return fmt.Errorf("%w: probe offsets must not be negative", ErrInvalidConfig)
	}
	if c.Pipeline.LaunchGraceTicks < 0 {
		return fmt.Errorf("%w: pipeline.launchGraceTicks must not be negative", ErrInvalidConfig)
	}
	switch c.Stair.Mode {
	case "", "position", "velocity", "none":
	default:
		return fmt.Errorf("%w: unknown stair mode %q", ErrInvalidConfig, c.Stair.Mode)
	}
	if _, err := c.Dash.Curve.Build(); err != nil {
		return fmt.Errorf("dash curve: %w", err)
	}
	return nil
}
