// Package object defines the entity records of the simulation: hazards
// falling from the sky, interceptor projectiles, their explosions, the
// defended bases, and cosmetic particles.
package object

// Playfield is the logical simulation area. X grows right, Y grows down,
// matching terminal coordinates. Hazards impacting at or below GroundY are
// ground hits; projectiles above Y=0 have left the field.
type Playfield struct {
	Width   float64
	Height  float64
	GroundY float64
}

// NewPlayfield creates a playfield with the ground line inset from the
// bottom edge by margin.
func NewPlayfield(width, height, margin float64) Playfield {
	return Playfield{
		Width:   width,
		Height:  height,
		GroundY: height - margin,
	}
}

// Contains reports whether the point lies inside the field, with slack
// above the top edge so freshly spawned hazards are not culled.
func (f Playfield) Contains(x, y float64) bool {
	return x >= 0 && x <= f.Width && y <= f.Height
}

// Destructible is implemented by entities that can be marked for removal.
type Destructible interface {
	// MarkDestroyed marks the entity for removal on the next compaction.
	MarkDestroyed()
	// IsDestroyed returns true if the entity is marked for removal.
	IsDestroyed() bool
}
