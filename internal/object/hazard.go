package object

import (
	"math"
	"math/rand"
)

// HazardType selects the visual and behavior variant of a falling hazard.
type HazardType string

const (
	HazardBasic HazardType = "basic" // plain rock, no splitting
	HazardSwift HazardType = "swift" // small and fast
	HazardHeavy HazardType = "heavy" // large, fragments when destroyed
)

// Per-type collision radius.
var hazardRadii = map[HazardType]float64{
	HazardBasic: 2.5,
	HazardSwift: 1.5,
	HazardHeavy: 4.0,
}

// Per-type initial fall speed.
var hazardSpeeds = map[HazardType]float64{
	HazardBasic: 8.0,
	HazardSwift: 16.0,
	HazardHeavy: 5.0,
}

// Per-type split budget before the level cap is applied.
var hazardSplits = map[HazardType]int{
	HazardBasic: 0,
	HazardSwift: 0,
	HazardHeavy: 2,
}

// Hazard is a falling obstacle. It accelerates under gravity and is
// destroyed by explosions or by reaching the ground.
type Hazard struct {
	X, Y            float64    // Position (center)
	VX, VY          float64    // Velocity
	Radius          float64    // Collision/draw radius
	Type            HazardType // Behavior/visual variant
	SplitsRemaining int        // Children generations left; never negative
	Angle           float64    // Current rotation angle
	RotationSpeed   float64    // Radians per second
	Vertices        []float64  // Vertex distances from center (irregular shape)
	destroyed       bool
}

// NewHazard creates a hazard of the given type at the top of the field.
// splitLimit caps the type's split budget per the active level.
// The horizontal drift and shape are randomized from rng.
func NewHazard(x float64, typ HazardType, splitLimit int, rng *rand.Rand) *Hazard {
	radius := hazardRadii[typ]
	speed := hazardSpeeds[typ]

	splits := hazardSplits[typ]
	if splits > splitLimit {
		splits = splitLimit
	}
	if splits < 0 {
		splits = 0
	}

	h := &Hazard{
		X:               x,
		Y:               1,
		VX:              (rng.Float64() - 0.5) * speed * 0.6,
		VY:              speed * (0.8 + rng.Float64()*0.4),
		Radius:          radius,
		Type:            typ,
		SplitsRemaining: splits,
		Angle:           rng.Float64() * 2 * math.Pi,
		RotationSpeed:   (rng.Float64() - 0.5) * 2.0,
	}
	h.Vertices = irregularVertices(radius, rng)
	return h
}

// Split produces the two child hazards created when this hazard is
// destroyed with splits remaining. Children inherit the parent's position
// with perturbed velocity and one fewer split generation. Returns nil when
// no splits remain.
func (h *Hazard) Split(rng *rand.Rand) []*Hazard {
	if h.SplitsRemaining <= 0 {
		return nil
	}

	children := make([]*Hazard, 0, 2)
	for i := 0; i < 2; i++ {
		// Fan the fragments out to either side of the parent's path.
		side := float64(1 - 2*i)
		child := &Hazard{
			X:               h.X,
			Y:               h.Y,
			VX:              h.VX + side*(3.0+rng.Float64()*4.0),
			VY:              h.VY * (0.6 + rng.Float64()*0.3),
			Radius:          h.Radius * 0.65,
			Type:            h.Type,
			SplitsRemaining: h.SplitsRemaining - 1,
			Angle:           rng.Float64() * 2 * math.Pi,
			RotationSpeed:   (rng.Float64() - 0.5) * 3.0,
		}
		child.Vertices = irregularVertices(child.Radius, rng)
		children = append(children, child)
	}
	return children
}

// Rotate advances the hazard's visual rotation.
func (h *Hazard) Rotate(dt float64) {
	h.Angle += h.RotationSpeed * dt
}

// MarkDestroyed marks the hazard for removal (implements Destructible).
func (h *Hazard) MarkDestroyed() {
	h.destroyed = true
}

// IsDestroyed returns true if the hazard is marked for removal.
func (h *Hazard) IsDestroyed() bool {
	return h.destroyed
}

// irregularVertices generates 6-10 vertex distances varying ±30% around
// radius, giving each hazard its own rocky outline.
func irregularVertices(radius float64, rng *rand.Rand) []float64 {
	n := 6 + rng.Intn(5)
	verts := make([]float64, n)
	for i := range verts {
		verts[i] = radius * (0.7 + rng.Float64()*0.6)
	}
	return verts
}
