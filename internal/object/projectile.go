package object

import "math"

// ProjectileSpeed is the fixed travel speed of interceptors.
const ProjectileSpeed = 55.0

// ProjectileLifetime is the flight time in seconds before an interceptor
// detonates wherever it is.
const ProjectileLifetime = 2.5

// Projectile is an interceptor fired from a base toward a target point.
// On reaching the target (or timing out) it detonates into an Explosion.
type Projectile struct {
	Base             int     // Origin base index
	X, Y             float64 // Position
	VX, VY           float64 // Velocity
	TargetX, TargetY float64 // Detonation point
	Age              float64 // Seconds since launch
	destroyed        bool
	detonated        bool
}

// NewProjectile creates an interceptor at (x,y) traveling toward the target
// at ProjectileSpeed.
func NewProjectile(baseIndex int, x, y, targetX, targetY float64) *Projectile {
	dx := targetX - x
	dy := targetY - y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		dist = 1
	}
	return &Projectile{
		Base:    baseIndex,
		X:       x,
		Y:       y,
		VX:      dx / dist * ProjectileSpeed,
		VY:      dy / dist * ProjectileSpeed,
		TargetX: targetX,
		TargetY: targetY,
	}
}

// ShouldDetonate reports whether the interceptor has reached or passed its
// target, or has exceeded its flight time. The pass check uses the sign of
// velocity·(target-position) so a fast step cannot tunnel through the
// target point.
func (p *Projectile) ShouldDetonate() bool {
	if p.destroyed || p.detonated {
		return false
	}
	if p.Age >= ProjectileLifetime {
		return true
	}
	toTargetX := p.TargetX - p.X
	toTargetY := p.TargetY - p.Y
	return p.VX*toTargetX+p.VY*toTargetY <= 0
}

// MarkDetonated marks the interceptor as converted into an explosion.
func (p *Projectile) MarkDetonated() {
	p.detonated = true
	p.destroyed = true
}

// MarkDestroyed marks the interceptor for removal without detonation
// (implements Destructible).
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the interceptor is marked for removal.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}
