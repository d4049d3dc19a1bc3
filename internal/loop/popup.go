package loop

// popup is a short-lived floating text overlay, used for score awards and
// level callouts. Coordinates are logical field positions; the popup
// drifts upward as it ages.
type popup struct {
	X, Y float64
	Text string
	TTL  float64
}

const popupLifetime = 1.2

func newPopup(x, y float64, text string) *popup {
	return &popup{X: x, Y: y, Text: text, TTL: popupLifetime}
}

// advance ages the popup and reports whether it has expired.
func (p *popup) advance(dt float64) (expired bool) {
	p.TTL -= dt
	p.Y -= 4.0 * dt
	return p.TTL <= 0
}
