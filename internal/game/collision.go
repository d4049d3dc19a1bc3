package game

import (
	"math"
	"math/rand"

	"github.com/mhorn/skyfall/internal/level"
	"github.com/mhorn/skyfall/internal/object"
	"github.com/mhorn/skyfall/internal/physics"
)

// Resolution is the outcome of one collision pass.
type Resolution struct {
	Destroyed  []*object.Hazard // Hazards killed this frame (explosion or ground)
	Children   []*object.Hazard // Fragments to add to the field
	HitBases   []int            // Indexes of bases taken out by ground impacts
	ScoreDelta int
	Events     []Event
}

// resolve runs the explosion-vs-hazard and hazard-vs-ground passes over the
// entities that were alive at frame start. A hazard dies at most once: the
// first qualifying explosion in slice order claims it, and a hazard claimed
// by an explosion cannot also hit the ground in the same frame. Calling
// resolve again without advancing state finds nothing new, since destroyed
// entities are skipped.
func resolve(hazards []*object.Hazard, explosions []*object.Explosion, bases []*object.Base,
	cfg level.Config, field object.Playfield, rng *rand.Rand) Resolution {

	var res Resolution

	// Broad phase: index live hazards by position. Cell size covers the
	// largest possible explosion-plus-hazard pairing.
	cellSize := cfg.ExplosionRadius + maxHazardRadius(hazards)
	if cellSize < 1 {
		cellSize = 1
	}
	grid := physics.NewGrid(field.Width, field.Height, cellSize)
	for i, h := range hazards {
		if h.IsDestroyed() {
			continue
		}
		grid.Insert(h.X, h.Y, i)
	}

	for _, e := range explosions {
		if e.IsDestroyed() || e.Radius <= 0 {
			continue
		}
		grid.QueryAround(e.X, e.Y, func(i int) bool {
			h := hazards[i]
			if h.IsDestroyed() {
				return false
			}
			if !physics.CirclesOverlap(e.X, e.Y, e.Radius, h.X, h.Y, h.Radius) {
				return false
			}

			h.MarkDestroyed()
			res.Destroyed = append(res.Destroyed, h)

			if children := h.Split(rng); children != nil {
				res.Children = append(res.Children, children...)
				delta := destroyScore(h.Type) / ScoreSplitDivisor
				res.ScoreDelta += delta
				res.Events = append(res.Events, Event{Kind: EventHazardSplit, X: h.X, Y: h.Y, Value: delta})
			} else {
				delta := destroyScore(h.Type)
				res.ScoreDelta += delta
				res.Events = append(res.Events, Event{Kind: EventHazardDestroyed, X: h.X, Y: h.Y, Value: delta})
			}
			return false
		})
	}

	// Ground pass. Impacts near an intact base take the base out; impacts
	// on open ground just remove the hazard. Never scores.
	for _, h := range hazards {
		if h.IsDestroyed() {
			continue
		}
		if h.Y+h.Radius < field.GroundY {
			continue
		}

		h.MarkDestroyed()
		res.Destroyed = append(res.Destroyed, h)

		if idx, ok := nearestIntactBase(bases, h.X); ok {
			res.HitBases = append(res.HitBases, idx)
			res.Events = append(res.Events, Event{Kind: EventBaseHit, X: bases[idx].X, Y: field.GroundY})
		} else {
			res.Events = append(res.Events, Event{Kind: EventGroundImpact, X: h.X, Y: field.GroundY})
		}
	}

	return res
}

// nearestIntactBase finds the closest surviving base within BaseHitRange of
// the impact column.
func nearestIntactBase(bases []*object.Base, x float64) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, b := range bases {
		if b.Destroyed {
			continue
		}
		d := math.Abs(b.X - x)
		if d <= BaseHitRange && d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}

func maxHazardRadius(hazards []*object.Hazard) float64 {
	max := 0.0
	for _, h := range hazards {
		if !h.IsDestroyed() && h.Radius > max {
			max = h.Radius
		}
	}
	return max
}
