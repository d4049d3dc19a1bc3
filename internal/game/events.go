package game

// EventKind identifies a simulation event emitted during Step.
type EventKind int

const (
	EventFire EventKind = iota
	EventDetonate
	EventHazardDestroyed
	EventHazardSplit
	EventGroundImpact
	EventBaseHit
	EventLevelUp
	EventGameOver
)

// Event is a one-shot notification from the core to its driver, used for
// sound effects and visual flourishes. Events never feed back into the
// simulation.
type Event struct {
	Kind EventKind
	X, Y float64 // Field position, where meaningful
	// Value carries the score delta for destruction events, the new level
	// number for EventLevelUp, and the final score for EventGameOver.
	Value int
}
