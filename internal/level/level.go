// Package level holds the per-level difficulty configuration consumed by
// the simulation core.
package level

import (
	"fmt"

	"github.com/mhorn/skyfall/internal/object"
)

// Config is the immutable difficulty tuning for one level.
type Config struct {
	SpawnRateMs     float64                       // Milliseconds between hazard spawns
	Wave            int                           // Hazards spawned before the level can advance
	Gravity         float64                       // Downward acceleration applied to hazards
	BaseCooldownMs  float64                       // Milliseconds between shots from one base
	ExplosionRadius float64                       // Peak interceptor blast radius
	SplitLimit      int                           // Cap on hazard split generations
	Mix             map[object.HazardType]float64 // Hazard type weights
}

// Levels is the ordered campaign table. Difficulty escalates by spawning
// faster, pulling harder, blasting smaller, and mixing in swift and heavy
// hazards.
var Levels = []Config{
	{SpawnRateMs: 1800, Wave: 8, Gravity: 3.0, BaseCooldownMs: 500, ExplosionRadius: 9, SplitLimit: 0,
		Mix: map[object.HazardType]float64{object.HazardBasic: 1.0}},
	{SpawnRateMs: 1500, Wave: 10, Gravity: 3.5, BaseCooldownMs: 500, ExplosionRadius: 9, SplitLimit: 1,
		Mix: map[object.HazardType]float64{object.HazardBasic: 0.8, object.HazardHeavy: 0.2}},
	{SpawnRateMs: 1200, Wave: 12, Gravity: 4.0, BaseCooldownMs: 600, ExplosionRadius: 8, SplitLimit: 1,
		Mix: map[object.HazardType]float64{object.HazardBasic: 0.6, object.HazardSwift: 0.2, object.HazardHeavy: 0.2}},
	{SpawnRateMs: 1000, Wave: 14, Gravity: 4.5, BaseCooldownMs: 600, ExplosionRadius: 8, SplitLimit: 2,
		Mix: map[object.HazardType]float64{object.HazardBasic: 0.5, object.HazardSwift: 0.25, object.HazardHeavy: 0.25}},
	{SpawnRateMs: 850, Wave: 16, Gravity: 5.0, BaseCooldownMs: 700, ExplosionRadius: 7, SplitLimit: 2,
		Mix: map[object.HazardType]float64{object.HazardBasic: 0.4, object.HazardSwift: 0.3, object.HazardHeavy: 0.3}},
	{SpawnRateMs: 700, Wave: 20, Gravity: 5.5, BaseCooldownMs: 700, ExplosionRadius: 7, SplitLimit: 2,
		Mix: map[object.HazardType]float64{object.HazardBasic: 0.3, object.HazardSwift: 0.35, object.HazardHeavy: 0.35}},
}

// Count returns the number of campaign levels.
func Count() int {
	return len(Levels)
}

// Get returns the config for the given 0-based level index. Indexes past
// the end of the table clamp to the last level, so play continues at top
// difficulty indefinitely.
func Get(index int) Config {
	if index < 0 {
		index = 0
	}
	if index >= len(Levels) {
		index = len(Levels) - 1
	}
	return Levels[index]
}

// MixTotal returns the sum of the config's hazard type weights.
func (c Config) MixTotal() float64 {
	total := 0.0
	for _, w := range c.Mix {
		total += w
	}
	return total
}

// Validate reports whether the config is usable by the simulation.
func (c Config) Validate() error {
	if c.SpawnRateMs <= 0 {
		return fmt.Errorf("level: spawn rate must be positive, got %v", c.SpawnRateMs)
	}
	if c.Wave <= 0 {
		return fmt.Errorf("level: wave must be positive, got %d", c.Wave)
	}
	if c.Gravity < 0 {
		return fmt.Errorf("level: gravity must be non-negative, got %v", c.Gravity)
	}
	if c.BaseCooldownMs < 0 {
		return fmt.Errorf("level: base cooldown must be non-negative, got %v", c.BaseCooldownMs)
	}
	if c.ExplosionRadius <= 0 {
		return fmt.Errorf("level: explosion radius must be positive, got %v", c.ExplosionRadius)
	}
	if c.SplitLimit < 0 {
		return fmt.Errorf("level: split limit must be non-negative, got %d", c.SplitLimit)
	}
	for typ, w := range c.Mix {
		if w < 0 {
			return fmt.Errorf("level: mix weight for %q must be non-negative, got %v", typ, w)
		}
	}
	return nil
}

// ValidateAll checks every level in the campaign table. Called once at
// startup so a bad table is caught before the frame loop runs.
func ValidateAll() error {
	for i, cfg := range Levels {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return nil
}
