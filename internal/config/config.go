// Package config provides YAML-based tuning for the lander simulation and
// the difficulty presets that scale it.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-lander/internal/physics"
)

// LanderConfig contains every tunable of the simulation.
type LanderConfig struct {
	World         WorldConfig       `yaml:"world"`
	Restitution   RestitutionConfig `yaml:"restitution"`
	Craft         CraftConfig       `yaml:"craft"`
	Missile       MissileConfig     `yaml:"missile"`
	Launcher      LauncherConfig    `yaml:"launcher"`
	SuperLauncher LauncherConfig    `yaml:"super_launcher"`
	Hostage       HostageConfig     `yaml:"hostage"`
	Explosion     BlastConfig       `yaml:"explosion"`
	EMP           EMPConfig         `yaml:"emp"`
	Shield        ShieldConfig      `yaml:"shield"`
	Landing       LandingConfig     `yaml:"landing"`
	Camera        CameraConfig      `yaml:"camera"`
}

// WorldConfig defines the playfield and its environment.
type WorldConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	SpaceStart         float64 `yaml:"space_start"`
	SpaceEnd           float64 `yaml:"space_end"`
	Gravity            float64 `yaml:"gravity"`
	Friction           float64 `yaml:"friction"`
	DeepSpaceStiffness float64 `yaml:"deep_space_stiffness"`
	ViewWidth          float64 `yaml:"view_width"`
	ViewHeight         float64 `yaml:"view_height"`
	TerrainSegment     float64 `yaml:"terrain_segment"`
	TerrainHeight      float64 `yaml:"terrain_height"`
}

// PairConfig is one entry of the restitution table.
type PairConfig struct {
	A           string  `yaml:"a"`
	B           string  `yaml:"b"`
	Coefficient float64 `yaml:"coefficient"`
}

// RestitutionConfig defines the coefficient table.
type RestitutionConfig struct {
	Default float64      `yaml:"default"`
	Pairs   []PairConfig `yaml:"pairs"`
}

// CraftConfig defines the player's lander.
type CraftConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Mass         float64 `yaml:"mass"`
	Force        float64 `yaml:"force"`
	Fuel         float64 `yaml:"fuel"`
	ShieldCharge float64 `yaml:"shield_charge"`
	TurnRate     float64 `yaml:"turn_rate"` // degrees per second
}

// MissileConfig defines a homing missile.
type MissileConfig struct {
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Mass   float64     `yaml:"mass"`
	Force  float64     `yaml:"force"`
	Fuel   float64     `yaml:"fuel"`
	Launch float64     `yaml:"launch_speed"` // px per second straight up
	Blast  BlastConfig `yaml:"blast"`
}

// LauncherConfig defines a ground launcher and the missiles it fires.
type LauncherConfig struct {
	Width    float64       `yaml:"width"`
	Height   float64       `yaml:"height"`
	Mass     float64       `yaml:"mass"`
	Interval float64       `yaml:"interval"` // seconds between launches
	Shielded bool          `yaml:"shielded"`
	Missile  MissileConfig `yaml:"missile"`
}

// HostageConfig defines a stranded hostage.
type HostageConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Mass           float64 `yaml:"mass"`
	RescueDistance float64 `yaml:"rescue_distance"` // multiples of the craft height
	RescueTime     float64 `yaml:"rescue_time"`     // seconds
}

// BlastConfig defines an explosion.
type BlastConfig struct {
	Multiplier float64 `yaml:"multiplier"`
	Lifetime   float64 `yaml:"lifetime"`
	Force      float64 `yaml:"force"`
}

// EMPConfig defines the electromagnetic pulse.
type EMPConfig struct {
	Multiplier float64 `yaml:"multiplier"` // final radius in owner widths
	Lifetime   float64 `yaml:"lifetime"`
	Disable    float64 `yaml:"disable"` // seconds a hit shield stays down
}

// ShieldConfig defines shield geometry and recovery.
type ShieldConfig struct {
	Factor        float64 `yaml:"factor"`
	Cooldown      float64 `yaml:"cooldown"`
	StuckRetries  int     `yaml:"stuck_retries"`
	StuckCooldown float64 `yaml:"stuck_cooldown"`
	NudgeBudget   int     `yaml:"nudge_budget"`
}

// LandingConfig defines touchdown tolerances.
type LandingConfig struct {
	SafeSpeed float64 `yaml:"safe_speed"`
	MaxAngle  float64 `yaml:"max_angle"` // degrees
	Lift      float64 `yaml:"lift"`
	PadWidth  float64 `yaml:"pad_width"` // multiples of the craft width
}

// CameraConfig defines viewport behaviour.
type CameraConfig struct {
	Shake float64 `yaml:"shake"`
	Pan   float64 `yaml:"pan"`
}

// Spec converts a blast config into the physics description.
func (b BlastConfig) Spec() physics.BlastSpec {
	return physics.BlastSpec{Multiplier: b.Multiplier, Lifetime: b.Lifetime, Force: b.Force}
}

// PhysicsWorld returns the force environment.
func (c LanderConfig) PhysicsWorld() physics.World {
	return physics.World{
		Gravity:            c.World.Gravity,
		Friction:           c.World.Friction,
		SpaceStart:         c.World.SpaceStart,
		SpaceEnd:           c.World.SpaceEnd,
		DeepSpaceStiffness: c.World.DeepSpaceStiffness,
	}
}

// Table builds the restitution table. Unknown kind names are reported.
func (c LanderConfig) Table() (*physics.Restitution, error) {
	t := physics.NewRestitution(c.Restitution.Default)
	for _, p := range c.Restitution.Pairs {
		a, err := physics.ParseKind(p.A)
		if err != nil {
			return nil, fmt.Errorf("config: restitution: %w", err)
		}
		b, err := physics.ParseKind(p.B)
		if err != nil {
			return nil, fmt.Errorf("config: restitution: %w", err)
		}
		t.Set(a, b, p.Coefficient)
	}
	return t, nil
}

// Validate reports every field that would break the simulation.
func (c LanderConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("world.view_width", c.World.ViewWidth)
	positive("world.view_height", c.World.ViewHeight)
	positive("world.terrain_segment", c.World.TerrainSegment)
	if c.World.Width <= 4*c.World.ViewWidth {
		errs = append(errs, fmt.Errorf("world.width %v must exceed four view widths", c.World.Width))
	}
	if c.World.SpaceStart > c.World.SpaceEnd {
		errs = append(errs, errors.New("world.space_start must not exceed world.space_end"))
	}
	if c.World.Gravity < 0 {
		errs = append(errs, fmt.Errorf("world.gravity must not be negative, got %v", c.World.Gravity))
	}

	positive("craft.mass", c.Craft.Mass)
	positive("craft.width", c.Craft.Width)
	positive("craft.height", c.Craft.Height)
	positive("missile.mass", c.Missile.Mass)
	positive("missile.height", c.Missile.Height)
	positive("missile.blast.lifetime", c.Missile.Blast.Lifetime)
	for _, l := range []struct {
		name string
		cfg  LauncherConfig
	}{{"launcher", c.Launcher}, {"super_launcher", c.SuperLauncher}} {
		name, l := l.name, l.cfg
		positive(name+".mass", l.Mass)
		positive(name+".interval", l.Interval)
		positive(name+".missile.mass", l.Missile.Mass)
		positive(name+".missile.blast.lifetime", l.Missile.Blast.Lifetime)
	}
	positive("hostage.mass", c.Hostage.Mass)
	positive("explosion.lifetime", c.Explosion.Lifetime)
	positive("emp.lifetime", c.EMP.Lifetime)
	positive("shield.factor", c.Shield.Factor)
	positive("landing.safe_speed", c.Landing.SafeSpeed)

	if c.Restitution.Default < 0 {
		errs = append(errs, fmt.Errorf("restitution.default must not be negative, got %v", c.Restitution.Default))
	}
	if _, err := c.Table(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
