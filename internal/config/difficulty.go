package config

import "fmt"

// DifficultyPreset represents a difficulty level selection.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // keep the loaded tuning as is
)

// presetTable holds what each preset changes: gravity, craft fuel and
// shield charge, and how often launchers fire.
var presetTable = map[DifficultyPreset]struct {
	gravity  float64
	fuel     float64
	shield   float64
	interval float64
}{
	DifficultyEasy:   {gravity: 50, fuel: 200, shield: 200, interval: 20},
	DifficultyNormal: {gravity: 100, fuel: 150, shield: 150, interval: 15},
	DifficultyHard:   {gravity: 200, fuel: 100, shield: 100, interval: 10},
}

// ParsePreset validates a preset name. The empty string means fixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// GravityForPreset returns the gravity a preset sets, or 0 for fixed.
func GravityForPreset(preset DifficultyPreset) float64 {
	return presetTable[preset].gravity
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *LanderConfig, preset DifficultyPreset) {
	p, ok := presetTable[preset]
	if !ok {
		return
	}
	cfg.World.Gravity = p.gravity
	cfg.Craft.Fuel = p.fuel
	cfg.Craft.ShieldCharge = p.shield
	cfg.Launcher.Interval = p.interval
	cfg.SuperLauncher.Interval = p.interval
}
