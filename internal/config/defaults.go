package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-lander/internal/physics"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the hardcoded tuning. It matches the embedded
// defaults/lander.yaml and is used when that cannot be parsed.
func DefaultLanderConfig() LanderConfig {
	missile := MissileConfig{
		Width:  6,
		Height: 20,
		Mass:   30,
		Force:  6000,
		Fuel:   20,
		Launch: 160,
		Blast:  BlastConfig{Multiplier: 4, Lifetime: 2, Force: 20},
	}
	return LanderConfig{
		World: WorldConfig{
			Width:              20000,
			Height:             2500,
			SpaceStart:         1666,
			SpaceEnd:           1785,
			Gravity:            100,
			Friction:           3,
			DeepSpaceStiffness: 5,
			ViewWidth:          1280,
			ViewHeight:         720,
			TerrainSegment:     200,
			TerrainHeight:      100,
		},
		Restitution: defaultRestitution(),
		Craft: CraftConfig{
			Width:        30,
			Height:       30,
			Mass:         20,
			Force:        5000,
			Fuel:         100,
			ShieldCharge: 100,
			TurnRate:     90,
		},
		Missile: missile,
		Launcher: LauncherConfig{
			Width:    30,
			Height:   30,
			Mass:     300,
			Interval: 15,
			Shielded: true,
			Missile:  missile,
		},
		SuperLauncher: LauncherConfig{
			Width:    40,
			Height:   40,
			Mass:     600,
			Interval: 15,
			Shielded: true,
			Missile: MissileConfig{
				Width:  8,
				Height: 26,
				Mass:   50,
				Force:  12000,
				Fuel:   60,
				Launch: 160,
				Blast:  BlastConfig{Multiplier: 8, Lifetime: 4, Force: 6000},
			},
		},
		Hostage: HostageConfig{
			Width:          12,
			Height:         20,
			Mass:           20,
			RescueDistance: 6,
			RescueTime:     5,
		},
		Explosion: BlastConfig{Multiplier: 4, Lifetime: 2, Force: 20},
		EMP:       EMPConfig{Multiplier: 12, Lifetime: 4, Disable: 5},
		Shield: ShieldConfig{
			Factor:        1.5,
			Cooldown:      1,
			StuckRetries:  10,
			StuckCooldown: 1,
			NudgeBudget:   10,
		},
		Landing: LandingConfig{SafeSpeed: 50, MaxAngle: 20, Lift: 5, PadWidth: 2},
		Camera:  CameraConfig{Shake: 5, Pan: 0.04},
	}
}

// defaultRestitution mirrors physics.DefaultRestitution as config pairs.
func defaultRestitution() RestitutionConfig {
	pair := func(a, b physics.Kind, e float64) PairConfig {
		return PairConfig{A: a.String(), B: b.String(), Coefficient: e}
	}
	return RestitutionConfig{
		Default: physics.DefaultCoefficient,
		Pairs: []PairConfig{
			pair(physics.KindLander, physics.KindMissile, 0.1),
			pair(physics.KindMissileLauncher, physics.KindLander, 0.5),
			pair(physics.KindExplosion, physics.KindMissile, 0.1),
			pair(physics.KindExplosion, physics.KindLander, 0.1),
			pair(physics.KindShield, physics.KindExplosion, 0.1),
			pair(physics.KindShield, physics.KindShield, 3.5),
			pair(physics.KindShield, physics.KindMissile, 0.1),
			pair(physics.KindShield, physics.KindLander, 0.8),
			pair(physics.KindShield, physics.KindMissileLauncher, 0.5),
		},
	}
}
