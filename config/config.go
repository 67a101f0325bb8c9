package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/loco/parameter"
	"github.com/lixenwraith/loco/physics"
	"github.com/lixenwraith/loco/vmath"
)

// Config is the full sandbox configuration
// Zero-valued sections are never used directly: Load and Parse overlay files onto Default
type Config struct {
	Movement  Movement          `toml:"movement"`
	Explosive Explosive         `toml:"explosive"`
	Sandbox   Sandbox           `toml:"sandbox"`
	Keys      map[string]string `toml:"keys"`
}

// Movement tunes the player controller
type Movement struct {
	Gravity        float64 `toml:"gravity"`
	GroundFriction float64 `toml:"ground_friction"`
	AirDrag        float64 `toml:"air_drag"`
	StopThreshold  float64 `toml:"stop_threshold"`
	ClampDecay     bool    `toml:"clamp_decay"`
}

// Explosive tunes the inventory and blast
type Explosive struct {
	Capacity          int        `toml:"capacity"`
	Radius            float64    `toml:"radius"`
	Force             int        `toml:"force"`
	ForceMin          int        `toml:"force_min"`
	ForceMax          int        `toml:"force_max"`
	ForceStep         int        `toml:"force_step"`
	ForceAtDetonation bool       `toml:"force_at_detonation"`
	SpawnOffset       [3]float64 `toml:"spawn_offset"`
	ThrowVelocity     [3]float64 `toml:"throw_velocity"`
}

// Sandbox tunes the host loop and world
type Sandbox struct {
	TickRate int     `toml:"tick_rate"`
	Floor    float64 `toml:"floor"`
	MinX     float64 `toml:"min_x"`
	MaxX     float64 `toml:"max_x"`
}

// Default returns the parameter defaults
func Default() Config {
	return Config{
		Movement: Movement{
			Gravity:        parameter.Gravity,
			GroundFriction: parameter.GroundFriction,
			AirDrag:        parameter.AirDrag,
			StopThreshold:  parameter.StopThreshold,
			ClampDecay:     parameter.ClampDecay,
		},
		Explosive: Explosive{
			Capacity:          parameter.ExplosiveCapacity,
			Radius:            parameter.ExplosionRadius,
			Force:             parameter.ExplosionForceInitial,
			ForceMin:          parameter.ExplosionForceMin,
			ForceMax:          parameter.ExplosionForceMax,
			ForceStep:         parameter.ExplosionForceStep,
			ForceAtDetonation: parameter.ForceAtDetonation,
			SpawnOffset:       parameter.SpawnOffset,
			ThrowVelocity:     parameter.ThrowVelocity,
		},
		Sandbox: Sandbox{
			TickRate: parameter.TickRate,
			Floor:    parameter.FloorHeight,
			MinX:     parameter.WorldMinX,
			MaxX:     parameter.WorldMaxX,
		},
		Keys: map[string]string{},
	}
}

// Load reads a TOML file over the defaults and validates the result
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result
// Undecoded keys are rejected so typos surface instead of silently keeping defaults
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid value, joined into one error
func (c Config) Validate() error {
	m, e, s := c.Movement, c.Explosive, c.Sandbox
	var errs []error

	if m.GroundFriction < 0 {
		errs = append(errs, fmt.Errorf("movement.ground_friction %v must be >= 0", m.GroundFriction))
	}
	if m.AirDrag < 0 {
		errs = append(errs, fmt.Errorf("movement.air_drag %v must be >= 0", m.AirDrag))
	}
	if m.StopThreshold < 0 {
		errs = append(errs, fmt.Errorf("movement.stop_threshold %v must be >= 0", m.StopThreshold))
	}
	if e.Radius <= 0 {
		errs = append(errs, fmt.Errorf("explosive.radius %v must be > 0", e.Radius))
	}
	if e.ForceMin > e.ForceMax {
		errs = append(errs, fmt.Errorf("explosive.force_min %d exceeds force_max %d", e.ForceMin, e.ForceMax))
	} else if e.Force < e.ForceMin || e.Force > e.ForceMax {
		errs = append(errs, fmt.Errorf("explosive.force %d outside [%d, %d]", e.Force, e.ForceMin, e.ForceMax))
	}
	if e.ForceStep <= 0 {
		errs = append(errs, fmt.Errorf("explosive.force_step %d must be > 0", e.ForceStep))
	}
	if s.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("sandbox.tick_rate %d must be > 0", s.TickRate))
	}
	if s.MinX >= s.MaxX {
		errs = append(errs, fmt.Errorf("sandbox.min_x %v must be below max_x %v", s.MinX, s.MaxX))
	}

	return errors.Join(errs...)
}

// Tuning converts the movement section for physics.NewController
func (m Movement) Tuning() physics.Tuning {
	return physics.Tuning{
		Gravity:        m.Gravity,
		GroundFriction: m.GroundFriction,
		AirDrag:        m.AirDrag,
		StopThreshold:  m.StopThreshold,
		ClampDecay:     m.ClampDecay,
	}
}

// Offset returns the spawn offset as a vector
func (e Explosive) Offset() vmath.Vec3 { return vmath.Vec3(e.SpawnOffset) }

// Throw returns the throw velocity as a vector
func (e Explosive) Throw() vmath.Vec3 { return vmath.Vec3(e.ThrowVelocity) }

// TickInterval returns the wall-clock duration of one tick
func (s Sandbox) TickInterval() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}

// DT returns the simulated seconds per tick
func (s Sandbox) DT() float64 {
	return 1.0 / float64(s.TickRate)
}
