package object

import (
	"math"
	"math/rand"
	"sync"
)

// particlePool reuses Particle objects to reduce per-burst allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived cosmetic debris effect. Particles are owned by
// the renderer, not the simulation core, and never affect gameplay.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay (1.0 = no drag)
	Symbol      rune    // Character to display
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, lifetime float64, symbol rune) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.92
	p.Symbol = symbol
	return p
}

// Release returns the particle to the pool. Call when the particle has been
// removed from the renderer's list.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Advance moves the particle and reports whether it has expired.
func (p *Particle) Advance(dt float64) (expired bool) {
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true
	}

	dragFactor := math.Pow(p.Drag, dt*60) // Normalized to ~60fps
	p.VX *= dragFactor
	p.VY *= dragFactor

	p.X += p.VX * dt
	p.Y += p.VY * dt
	return false
}

// Faded reports whether the particle is in the tail of its lifetime and
// should no longer be drawn.
func (p *Particle) Faded() bool {
	return p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.2
}

// Burst creates count particles radiating from (x,y) and appends them to
// dst, returning the extended slice.
func Burst(dst []*Particle, x, y float64, count int, speed, lifetime float64) []*Particle {
	symbols := []rune{'#', '@', '*', '%', '+', 'x'}

	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rand.Float64())
		life := lifetime * (0.5 + rand.Float64()*0.5)

		p := NewParticle(x, y,
			math.Cos(angle)*spd,
			math.Sin(angle)*spd,
			life,
			symbols[rand.Intn(len(symbols))])
		dst = append(dst, p)
	}
	return dst
}
