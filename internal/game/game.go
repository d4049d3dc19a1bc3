// Package game implements the simulation core: the entity lists, the
// per-frame Step, the spawner, the collision resolver, and the mode state
// machine. The core is headless; drivers feed it input calls and time
// deltas and read back snapshots and events.
package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhorn/skyfall/internal/level"
	"github.com/mhorn/skyfall/internal/object"
	"github.com/mhorn/skyfall/internal/physics"
)

// Game owns all simulation state for one play session. It is not safe for
// concurrent use; the driver calls it from a single goroutine.
type Game struct {
	field object.Playfield
	mode  Mode
	muted bool

	levelIdx  int
	cfg       level.Config
	score     int
	lives     int
	elapsedMs float64

	crosshairX float64
	crosshairY float64

	hazards     []*object.Hazard
	projectiles []*object.Projectile
	explosions  []*object.Explosion
	bases       []*object.Base

	spawner *Spawner
	rng     *rand.Rand
	logger  *log.Logger
	events  []Event
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source. Tests use a fixed seed.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the logger used for fail-closed warnings.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// New creates a session in ModeIdle with fresh bases and the first level
// loaded.
func New(opts ...Option) *Game {
	g := &Game{
		field: object.NewPlayfield(FieldWidth, FieldHeight, GroundMargin),
		mode:  ModeIdle,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.spawner = NewSpawner(g.rng, g.logger)
	g.reset()
	return g
}

// reset restores the initial session state: level 0, full lives, empty
// field, intact bases, crosshair at field center.
func (g *Game) reset() {
	g.levelIdx = 0
	g.cfg = level.Get(0)
	g.score = 0
	g.lives = InitialLives
	g.elapsedMs = 0
	g.crosshairX = g.field.Width / 2
	g.crosshairY = g.field.Height / 2
	g.hazards = g.hazards[:0]
	g.projectiles = g.projectiles[:0]
	g.explosions = g.explosions[:0]
	g.bases = object.NewBases(g.field, BaseCount)
	g.spawner.Reset(0, g.cfg)
	g.events = g.events[:0]
}

// Start begins play. Valid only from ModeIdle; otherwise a no-op.
func (g *Game) Start() {
	if g.mode != ModeIdle {
		return
	}
	g.mode = ModePlaying
}

// Pause suspends the simulation. Valid only from ModePlaying.
func (g *Game) Pause() {
	if g.mode != ModePlaying {
		return
	}
	g.mode = ModePaused
}

// Resume continues a paused session. Valid only from ModePaused.
func (g *Game) Resume() {
	if g.mode != ModePaused {
		return
	}
	g.mode = ModePlaying
}

// Restart returns to ModeIdle from any state and clears the session.
func (g *Game) Restart() {
	g.reset()
	g.mode = ModeIdle
}

// ToggleMute flips the mute flag. Orthogonal to the mode state machine.
func (g *Game) ToggleMute() {
	g.muted = !g.muted
}

// Muted returns the current mute flag.
func (g *Game) Muted() bool {
	return g.muted
}

// Mode returns the current state machine mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Level returns the 1-based current level number.
func (g *Game) Level() int {
	return g.levelIdx + 1
}

// MoveCrosshair moves the targeting crosshair by (dx, dy) logical units,
// clamped to the field above the ground line. No-op unless playing.
func (g *Game) MoveCrosshair(dx, dy float64) {
	if g.mode != ModePlaying {
		return
	}
	g.crosshairX += dx
	g.crosshairY += dy
	if g.crosshairX < 0 {
		g.crosshairX = 0
	}
	if g.crosshairX > g.field.Width {
		g.crosshairX = g.field.Width
	}
	if g.crosshairY < crosshairMinY {
		g.crosshairY = crosshairMinY
	}
	if g.crosshairY > g.field.GroundY-2 {
		g.crosshairY = g.field.GroundY - 2
	}
}

// FireFrom launches an interceptor from base i toward the crosshair.
// Rejected (returning false) unless the game is playing, the base index is
// valid, the base is intact, and its cooldown has elapsed.
func (g *Game) FireFrom(i int) bool {
	if g.mode != ModePlaying {
		return false
	}
	if i < 0 || i >= len(g.bases) {
		return false
	}
	b := g.bases[i]
	if !b.CanFire() {
		return false
	}

	b.Cooldown = g.cfg.BaseCooldownMs / 1000.0
	p := object.NewProjectile(i, b.X, b.Y-1, g.crosshairX, g.crosshairY)
	g.projectiles = append(g.projectiles, p)
	g.events = append(g.events, Event{Kind: EventFire, X: b.X, Y: b.Y})
	return true
}

// Step advances the simulation by dt seconds: spawn, integrate, detonate,
// resolve collisions, cull, then level and game-over bookkeeping. The whole
// step is synchronous. No-op unless playing. dt clamps to MaxDelta.
func (g *Game) Step(dt float64) {
	if g.mode != ModePlaying || dt <= 0 {
		return
	}
	if dt > MaxDelta {
		dt = MaxDelta
	}
	g.elapsedMs += dt * 1000

	for _, b := range g.bases {
		b.Tick(dt)
	}

	if h := g.spawner.TrySpawn(g.elapsedMs, g.cfg, len(g.hazards), g.field); h != nil {
		g.hazards = append(g.hazards, h)
	}

	physics.IntegrateHazards(g.hazards, g.cfg.Gravity, dt)
	physics.IntegrateProjectiles(g.projectiles, dt)

	g.detonateProjectiles()

	for _, e := range g.explosions {
		e.Advance(dt)
	}

	res := resolve(g.hazards, g.explosions, g.bases, g.cfg, g.field, g.rng)
	g.score += res.ScoreDelta
	g.hazards = append(g.hazards, res.Children...)
	g.events = append(g.events, res.Events...)
	for _, idx := range res.HitBases {
		b := g.bases[idx]
		if b.Destroyed {
			continue
		}
		b.Destroyed = true
		g.lives--
	}

	g.cull()

	if g.lives <= 0 {
		g.mode = ModeGameOver
		g.events = append(g.events, Event{Kind: EventGameOver, Value: g.score})
		return
	}

	if g.spawner.QuotaFilled(g.cfg) && len(g.hazards) == 0 && len(g.explosions) == 0 {
		g.levelIdx++
		g.cfg = level.Get(g.levelIdx)
		g.spawner.Reset(g.elapsedMs, g.cfg)
		g.events = append(g.events, Event{Kind: EventLevelUp, Value: g.levelIdx + 1})
	}
}

// detonateProjectiles converts interceptors that reached their target or
// timed out into explosions, and drops ones that left the field.
func (g *Game) detonateProjectiles() {
	for _, p := range g.projectiles {
		if p.IsDestroyed() {
			continue
		}
		if !g.field.Contains(p.X, p.Y) || p.Y < 0 {
			p.MarkDestroyed()
			continue
		}
		if p.ShouldDetonate() {
			p.MarkDetonated()
			g.explosions = append(g.explosions, object.NewExplosion(p.TargetX, p.TargetY, g.cfg.ExplosionRadius))
			g.events = append(g.events, Event{Kind: EventDetonate, X: p.TargetX, Y: p.TargetY})
		}
	}
}

// cull compacts the entity slices, dropping everything marked destroyed,
// so dead entities never survive into the next frame.
func (g *Game) cull() {
	hazards := g.hazards[:0]
	for _, h := range g.hazards {
		if !h.IsDestroyed() {
			hazards = append(hazards, h)
		}
	}
	g.hazards = hazards

	projectiles := g.projectiles[:0]
	for _, p := range g.projectiles {
		if !p.IsDestroyed() {
			projectiles = append(projectiles, p)
		}
	}
	g.projectiles = projectiles

	explosions := g.explosions[:0]
	for _, e := range g.explosions {
		if !e.IsDestroyed() {
			explosions = append(explosions, e)
		}
	}
	g.explosions = explosions
}

// DrainEvents returns the events accumulated since the last drain and
// clears the queue.
func (g *Game) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	drained := make([]Event, len(g.events))
	copy(drained, g.events)
	g.events = g.events[:0]
	return drained
}
