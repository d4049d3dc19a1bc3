package physics

import "github.com/mhorn/skyfall/internal/object"

// IntegrateHazards advances hazard positions by one Euler step and applies
// gravity to the vertical velocity. Deterministic for a given (state, dt);
// mutates the hazards in place. Destroyed hazards are skipped.
func IntegrateHazards(hazards []*object.Hazard, gravity, dt float64) {
	for _, h := range hazards {
		if h.IsDestroyed() {
			continue
		}
		h.X += h.VX * dt
		h.Y += h.VY * dt
		h.VY += gravity * dt
		h.Rotate(dt)
	}
}

// IntegrateProjectiles advances interceptor positions by one Euler step and
// ages them. Destroyed projectiles are skipped.
func IntegrateProjectiles(projectiles []*object.Projectile, dt float64) {
	for _, p := range projectiles {
		if p.IsDestroyed() {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Age += dt
	}
}
