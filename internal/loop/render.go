package loop

import (
	"io"
	"math"

	"github.com/mhorn/skyfall/internal/draw"
	"github.com/mhorn/skyfall/internal/game"
)

// renderFrame draws the current snapshot plus cosmetic overlays and flushes
// everything in one write pass.
func renderFrame(w io.Writer, canvas *draw.Canvas, st *session) error {
	snap := st.g.Snapshot()

	cw := draw.NewChunkWriter(w, canvas.OffsetCol(), canvas.OffsetRow())
	cw.WriteString("\033[2J")

	switch snap.Mode {
	case game.ModeIdle:
		drawTitleScreen(cw, canvas, snap)
	case game.ModeGameOver:
		drawGameOverScreen(cw, canvas, snap, st.opts.Store, st.opts.GameID)
	default:
		drawPlayfield(canvas, snap, st)
		canvas.Render(cw)
		canvas.RenderBorder(cw)
		drawPopups(cw, canvas, st)
		drawHUD(cw, canvas, snap)
		if snap.Mode == game.ModePaused {
			drawPauseOverlay(cw, canvas)
		}
	}

	return cw.Flush()
}

// drawPlayfield rasterizes the simulation entities onto the canvas.
func drawPlayfield(canvas *draw.Canvas, snap game.Snapshot, st *session) {
	canvas.Clear()

	drawGround(canvas, snap)

	for i := range snap.Bases {
		drawBase(canvas, snap, i)
	}
	for _, h := range snap.Hazards {
		drawHazard(canvas, h)
	}
	for _, p := range snap.Projectiles {
		drawProjectile(canvas, p)
	}
	for _, e := range snap.Explosions {
		canvas.DrawCircle(e.X, e.Y, e.Radius, !e.Decaying)
	}
	for _, p := range st.particles {
		if !p.Faded() {
			canvas.SetFloat(p.X, p.Y)
		}
	}

	drawCrosshair(canvas, snap)
}

func drawGround(canvas *draw.Canvas, snap game.Snapshot) {
	canvas.DrawLine(
		draw.Point{X: 0, Y: snap.Field.GroundY},
		draw.Point{X: snap.Field.Width, Y: snap.Field.GroundY},
	)
}

// drawBase renders an intact base as a triangle bunker, a destroyed one as
// low rubble.
func drawBase(canvas *draw.Canvas, snap game.Snapshot, i int) {
	b := snap.Bases[i]

	if b.Destroyed {
		canvas.DrawLine(
			draw.Point{X: b.X - 3, Y: b.Y},
			draw.Point{X: b.X + 3, Y: b.Y},
		)
		canvas.SetFloat(b.X-1, b.Y-1)
		canvas.SetFloat(b.X+2, b.Y-1)
		return
	}

	tri := canvas.BorrowPoints(3)
	tri[0] = draw.Point{X: b.X, Y: b.Y - 4}
	tri[1] = draw.Point{X: b.X - 4, Y: b.Y}
	tri[2] = draw.Point{X: b.X + 4, Y: b.Y}
	canvas.DrawPolygon(tri, true)
}

// drawHazard renders the rotating irregular outline stored on the hazard.
func drawHazard(canvas *draw.Canvas, h game.HazardView) {
	n := len(h.Vertices)
	if n < 3 {
		canvas.DrawCircle(h.X, h.Y, h.Radius, false)
		return
	}

	points := canvas.BorrowPoints(n)
	for i, dist := range h.Vertices {
		angle := h.Angle + float64(i)/float64(n)*2*math.Pi
		points[i] = draw.Point{
			X: h.X + math.Cos(angle)*dist,
			Y: h.Y + math.Sin(angle)*dist,
		}
	}
	canvas.DrawPolygon(points, h.Type == "heavy")
}

// drawProjectile renders the interceptor dot with a short trail opposite
// its direction of travel.
func drawProjectile(canvas *draw.Canvas, p game.ProjectileView) {
	canvas.SetFloat(p.X, p.Y)

	dx := p.TargetX - p.X
	dy := p.TargetY - p.Y
	dist := math.Hypot(dx, dy)
	if dist < 1e-9 {
		return
	}
	canvas.DrawLine(
		draw.Point{X: p.X, Y: p.Y},
		draw.Point{X: p.X - dx/dist*2.5, Y: p.Y - dy/dist*2.5},
	)
}

func drawCrosshair(canvas *draw.Canvas, snap game.Snapshot) {
	x, y := snap.CrosshairX, snap.CrosshairY
	arm := 1.5
	canvas.DrawLine(draw.Point{X: x - arm, Y: y}, draw.Point{X: x + arm, Y: y})
	canvas.DrawLine(draw.Point{X: x, Y: y - arm}, draw.Point{X: x, Y: y + arm})
}

// drawPopups writes floating text overlays on top of the rendered canvas.
func drawPopups(cw *draw.ChunkWriter, canvas *draw.Canvas, st *session) {
	for _, p := range st.popups {
		col, row := canvas.LogicalToTerminal(p.X, p.Y)
		col -= len(p.Text) / 2
		if col < 1 {
			col = 1
		}
		if row < 1 || row > canvas.TerminalHeight() {
			continue
		}
		cw.WriteAt(col, row, p.Text)
	}
}
