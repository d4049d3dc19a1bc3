package object

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Explosion timing. The radius grows quickly, then collapses a little
// slower; each phase is monotonic.
const (
	ExplosionGrowSeconds  = 0.25
	ExplosionDecaySeconds = 0.45
)

// Explosion is the transient area-of-effect left by a detonated
// interceptor. Its radius is animated 0 → MaxRadius → 0 and the entity
// removes itself once the decay completes.
type Explosion struct {
	X, Y      float64 // Center
	Radius    float64 // Current lethal radius
	MaxRadius float64 // Peak radius from the level config
	Age       float64 // Seconds since detonation

	grow      *gween.Tween
	decay     *gween.Tween
	decaying  bool
	destroyed bool
}

// NewExplosion creates an explosion at (x,y) peaking at maxRadius.
func NewExplosion(x, y, maxRadius float64) *Explosion {
	return &Explosion{
		X:         x,
		Y:         y,
		MaxRadius: maxRadius,
		grow:      gween.New(0, float32(maxRadius), ExplosionGrowSeconds, ease.OutQuad),
		decay:     gween.New(float32(maxRadius), 0, ExplosionDecaySeconds, ease.InQuad),
	}
}

// Decaying reports whether the explosion has passed its peak.
func (e *Explosion) Decaying() bool {
	return e.decaying
}

// Advance progresses the radius animation by dt seconds.
func (e *Explosion) Advance(dt float64) {
	if e.destroyed {
		return
	}
	e.Age += dt

	if !e.decaying {
		v, done := e.grow.Update(float32(dt))
		e.Radius = float64(v)
		if done {
			e.decaying = true
		}
		return
	}

	v, done := e.decay.Update(float32(dt))
	e.Radius = float64(v)
	if done {
		e.Radius = 0
		e.destroyed = true
	}
}

// MarkDestroyed marks the explosion for removal (implements Destructible).
func (e *Explosion) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true once the decay has finished.
func (e *Explosion) IsDestroyed() bool {
	return e.destroyed
}
