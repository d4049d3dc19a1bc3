package object

// Base is one of the player's fixed defense positions on the ground line.
type Base struct {
	Index     int     // 0 = left, 1 = center, 2 = right
	X, Y      float64 // Position on the ground line
	Cooldown  float64 // Seconds until the next shot is allowed; clamped >= 0
	Destroyed bool
}

// NewBases lays out count bases evenly across the field's ground line.
func NewBases(field Playfield, count int) []*Base {
	bases := make([]*Base, count)
	for i := range bases {
		bases[i] = &Base{
			Index: i,
			X:     field.Width * (2*float64(i) + 1) / (2 * float64(count)),
			Y:     field.GroundY,
		}
	}
	return bases
}

// Tick advances the firing cooldown, clamping at zero.
func (b *Base) Tick(dt float64) {
	b.Cooldown -= dt
	if b.Cooldown < 0 {
		b.Cooldown = 0
	}
}

// CanFire reports whether the base is intact and off cooldown.
func (b *Base) CanFire() bool {
	return !b.Destroyed && b.Cooldown <= 0
}
