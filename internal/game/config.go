package game

import "github.com/mhorn/skyfall/internal/object"

// Game tuning constants. All non-level parameters are centralized here.

// Logical playfield resolution. Rendering scales to fit the terminal.
const (
	FieldWidth   = 120.0
	FieldHeight  = 80.0
	GroundMargin = 3.0
)

// Player
const (
	BaseCount    = 3
	InitialLives = 3
	// BaseHitRange is the horizontal distance within which a ground impact
	// takes out a base.
	BaseHitRange = 14.0
)

// Crosshair
const (
	CrosshairSpeed = 45.0 // Logical units per second
	crosshairMinY  = 4.0
)

// MaxDelta clamps the per-step time delta so a stalled frame (e.g. a
// suspended SSH session) cannot tunnel hazards through the ground.
const MaxDelta = 1.0 / 30.0

// Scoring
const (
	ScoreBasic = 100
	ScoreSwift = 150
	ScoreHeavy = 75
	// Destroying a hazard that splits awards partial score; the rest is
	// earned by finishing off the fragments.
	ScoreSplitDivisor = 2
)

// destroyScore returns the full score for destroying a hazard of the given type.
func destroyScore(typ object.HazardType) int {
	switch typ {
	case object.HazardBasic:
		return ScoreBasic
	case object.HazardSwift:
		return ScoreSwift
	case object.HazardHeavy:
		return ScoreHeavy
	default:
		return 0
	}
}
