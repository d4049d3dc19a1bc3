package game

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/mhorn/skyfall/internal/level"
	"github.com/mhorn/skyfall/internal/object"
)

// Spawner creates hazards on the level's spawn timer. One spawner lives for
// the whole session; Reset reschedules it for each level.
type Spawner struct {
	nextSpawnAt float64 // Elapsed-ms threshold for the next spawn
	spawned     int     // Hazards spawned toward the current wave quota
	warned      bool    // Bad-mix warning already logged for this level
	rng         *rand.Rand
	logger      *log.Logger
}

// NewSpawner creates a spawner drawing randomness from rng.
func NewSpawner(rng *rand.Rand, logger *log.Logger) *Spawner {
	if logger == nil {
		logger = log.Default()
	}
	return &Spawner{rng: rng, logger: logger}
}

// Reset schedules the first spawn of a level one interval after elapsedMs
// and clears the wave progress.
func (s *Spawner) Reset(elapsedMs float64, cfg level.Config) {
	s.nextSpawnAt = elapsedMs + cfg.SpawnRateMs
	s.spawned = 0
	s.warned = false
}

// SpawnedThisWave returns how many hazards have spawned toward the quota.
func (s *Spawner) SpawnedThisWave() int {
	return s.spawned
}

// QuotaFilled reports whether the wave's hazard quota has fully spawned.
func (s *Spawner) QuotaFilled(cfg level.Config) bool {
	return s.spawned >= cfg.Wave
}

// TrySpawn creates one new hazard when the spawn timer has elapsed, the
// wave quota is not yet filled, and fewer than cfg.Wave hazards are live.
// Returns nil otherwise. An empty or all-zero mix fails closed: no spawn,
// one warning per level.
func (s *Spawner) TrySpawn(elapsedMs float64, cfg level.Config, liveHazards int, field object.Playfield) *object.Hazard {
	if elapsedMs < s.nextSpawnAt {
		return nil
	}
	if s.spawned >= cfg.Wave || liveHazards >= cfg.Wave {
		return nil
	}

	typ, ok := s.pickType(cfg.Mix)
	if !ok {
		if !s.warned {
			s.logger.Warn("hazard mix is empty or all-zero, refusing to spawn")
			s.warned = true
		}
		return nil
	}

	// Keep spawns away from the extreme edges so fragments stay on field.
	x := field.Width * (0.08 + s.rng.Float64()*0.84)
	h := object.NewHazard(x, typ, cfg.SplitLimit, s.rng)

	s.spawned++
	s.nextSpawnAt = elapsedMs + cfg.SpawnRateMs
	return h
}

// pickType selects a hazard type by weighted sampling: a single uniform
// draw partitioned by cumulative weights.
func (s *Spawner) pickType(mix map[object.HazardType]float64) (object.HazardType, bool) {
	total := 0.0
	for _, w := range mix {
		total += w
	}
	if total <= 0 {
		return "", false
	}

	// Map iteration order is random, so fix an order for the partition.
	order := []object.HazardType{object.HazardBasic, object.HazardSwift, object.HazardHeavy}

	draw := s.rng.Float64() * total
	acc := 0.0
	for _, typ := range order {
		w := mix[typ]
		if w <= 0 {
			continue
		}
		acc += w
		if draw < acc {
			return typ, true
		}
	}

	// Weights for types outside the known order, or float round-off on the
	// final partition: fall back to the last positive entry.
	for i := len(order) - 1; i >= 0; i-- {
		if mix[order[i]] > 0 {
			return order[i], true
		}
	}
	return "", false
}
