package game

import "github.com/mhorn/skyfall/internal/object"

// Mode is the current phase of the state machine.
type Mode int

const (
	ModeIdle Mode = iota // Title screen, nothing simulated
	ModePlaying
	ModePaused
	ModeGameOver
)

// String returns the mode name for logs and feeds.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// HazardView is the read-only render state of one hazard.
type HazardView struct {
	X, Y            float64
	Radius          float64
	Type            object.HazardType
	SplitsRemaining int
	Angle           float64
	Vertices        []float64
}

// ProjectileView is the read-only render state of one interceptor.
type ProjectileView struct {
	X, Y             float64
	TargetX, TargetY float64
}

// ExplosionView is the read-only render state of one explosion.
type ExplosionView struct {
	X, Y     float64
	Radius   float64
	Decaying bool
}

// BaseView is the read-only render state of one base.
type BaseView struct {
	X, Y      float64
	Cooldown  float64
	Destroyed bool
}

// Snapshot is the complete read-only state handed to renderers and feeds
// each frame. The core never reads a Snapshot back.
type Snapshot struct {
	Mode       Mode
	Level      int // 1-based for display
	Score      int
	Lives      int
	ElapsedMs  float64
	Muted      bool
	WaveQuota  int
	WaveSpawn  int // Hazards spawned toward the quota so far
	CrosshairX float64
	CrosshairY float64
	Field      object.Playfield

	Hazards     []HazardView
	Projectiles []ProjectileView
	Explosions  []ExplosionView
	Bases       []BaseView
}

// Snapshot copies the current state for rendering. Entities marked
// destroyed mid-frame are excluded.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:       g.mode,
		Level:      g.levelIdx + 1,
		Score:      g.score,
		Lives:      g.lives,
		ElapsedMs:  g.elapsedMs,
		Muted:      g.muted,
		WaveQuota:  g.cfg.Wave,
		WaveSpawn:  g.spawner.SpawnedThisWave(),
		CrosshairX: g.crosshairX,
		CrosshairY: g.crosshairY,
		Field:      g.field,

		Hazards:     make([]HazardView, 0, len(g.hazards)),
		Projectiles: make([]ProjectileView, 0, len(g.projectiles)),
		Explosions:  make([]ExplosionView, 0, len(g.explosions)),
		Bases:       make([]BaseView, 0, len(g.bases)),
	}

	for _, h := range g.hazards {
		if h.IsDestroyed() {
			continue
		}
		snap.Hazards = append(snap.Hazards, HazardView{
			X: h.X, Y: h.Y,
			Radius:          h.Radius,
			Type:            h.Type,
			SplitsRemaining: h.SplitsRemaining,
			Angle:           h.Angle,
			Vertices:        h.Vertices,
		})
	}
	for _, p := range g.projectiles {
		if p.IsDestroyed() {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			X: p.X, Y: p.Y,
			TargetX: p.TargetX, TargetY: p.TargetY,
		})
	}
	for _, e := range g.explosions {
		if e.IsDestroyed() {
			continue
		}
		snap.Explosions = append(snap.Explosions, ExplosionView{
			X: e.X, Y: e.Y,
			Radius:   e.Radius,
			Decaying: e.Decaying(),
		})
	}
	for _, b := range g.bases {
		snap.Bases = append(snap.Bases, BaseView{
			X: b.X, Y: b.Y,
			Cooldown:  b.Cooldown,
			Destroyed: b.Destroyed,
		})
	}

	return snap
}
