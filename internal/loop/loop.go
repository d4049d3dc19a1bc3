// Package loop drives the simulation from a terminal: it decodes input,
// advances the core once per frame, and renders snapshots to a canvas.
package loop

import (
	"bufio"
	"io"
	"math"
	"sort"
	"time"

	"github.com/mhorn/skyfall/internal/audio"
	"github.com/mhorn/skyfall/internal/draw"
	"github.com/mhorn/skyfall/internal/game"
	"github.com/mhorn/skyfall/internal/input"
	"github.com/mhorn/skyfall/internal/level"
	"github.com/mhorn/skyfall/internal/object"
	"github.com/mhorn/skyfall/internal/score"
)

const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
)

// Options configures one game session.
type Options struct {
	// TermSizeFunc reports the terminal size; defaults to os.Stdout.
	TermSizeFunc draw.TermSizeFunc
	// Store receives the final score on game over. Optional.
	Store *score.Store
	// Audio plays sound effects. A nil player is silent.
	Audio *audio.Player
	// PlayerName is recorded with the final score.
	PlayerName string
	// GameID keys the score table; defaults to score.DefaultGame.
	GameID string
}

// session is the driver-side state around one Game: cosmetic effects and
// input edge tracking. All gameplay state lives in the core.
type session struct {
	g         *game.Game
	opts      Options
	popups    []*popup
	particles []*object.Particle
	prev      input.Input
	recorded  bool // Final score already sent to the store
}

// Run starts the session loop with the standard input → step → draw cycle.
// Returns when the player quits or the reader closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.GameID == "" {
		opts.GameID = score.DefaultGame
	}
	if err := level.ValidateAll(); err != nil {
		return err
	}

	st := &session{
		g:    game.New(),
		opts: opts,
	}
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termW, termH, err := opts.TermSizeFunc()
	if err != nil || termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	canvas := draw.NewCanvas(termW, termH, game.FieldWidth, game.FieldHeight)
	fitCanvas(canvas, termW, termH)

	lastTime := time.Now()
	running := true

	for running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		inp := input.ReadInput(stream)
		if inp.Quit {
			running = false
		}

		st.applyInput(inp, dt)
		st.g.Step(dt)
		st.handleEvents(st.g.DrainEvents())
		st.advanceEffects(dt)

		if tw, th, sizeErr := opts.TermSizeFunc(); sizeErr == nil && tw > 0 && th > 0 {
			fitCanvas(canvas, tw, th)
		}

		if err := renderFrame(w, canvas, st); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// applyInput translates the frame's input into core calls. Toggles act on
// the key's rising edge; movement keys act while held.
func (st *session) applyInput(inp input.Input, dt float64) {
	g := st.g
	prev := st.prev
	st.prev = inp

	if inp.Mute && !prev.Mute {
		g.ToggleMute()
		st.opts.Audio.SetMuted(g.Muted())
	}
	if inp.Restart && !prev.Restart {
		g.Restart()
		st.reset()
		return
	}

	switch g.Mode() {
	case game.ModeIdle:
		if startEdge(inp, prev) {
			st.reset()
			g.Start()
		}

	case game.ModePlaying:
		if inp.Pause && !prev.Pause {
			g.Pause()
			return
		}

		var dx, dy float64
		if inp.Left {
			dx -= game.CrosshairSpeed * dt
		}
		if inp.Right {
			dx += game.CrosshairSpeed * dt
		}
		if inp.Up {
			dy -= game.CrosshairSpeed * dt
		}
		if inp.Down {
			dy += game.CrosshairSpeed * dt
		}
		if dx != 0 || dy != 0 {
			g.MoveCrosshair(dx, dy)
		}

		if inp.FireBase >= 0 && inp.FireBase != prev.FireBase {
			g.FireFrom(inp.FireBase)
		}
		if inp.Space && !prev.Space {
			st.fireNearest()
		}

	case game.ModePaused:
		if (inp.Pause && !prev.Pause) || startEdge(inp, prev) {
			g.Resume()
		}

	case game.ModeGameOver:
		if startEdge(inp, prev) {
			g.Restart()
			st.reset()
			g.Start()
		}
	}
}

func startEdge(inp, prev input.Input) bool {
	return (inp.Space && !prev.Space) || (inp.Enter && !prev.Enter)
}

// fitCanvas sizes the canvas to the largest area inside the terminal that
// preserves the field's aspect ratio, centered, leaving room for a border.
func fitCanvas(canvas *draw.Canvas, termW, termH int) {
	availW := termW - 2
	availH := termH - 2
	if availW < 2 {
		availW = termW
	}
	if availH < 2 {
		availH = termH
	}

	// A terminal cell covers two vertical sub-pixels.
	aspect := game.FieldWidth / (game.FieldHeight / 2)
	w := availW
	h := int(float64(w) / aspect)
	if h > availH {
		h = availH
		w = int(float64(h) * aspect)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	canvas.Resize(w, h)
	canvas.SetOffset((termW-w)/2, (termH-h)/2)
}

// fireNearest fires from the ready base closest to the crosshair.
func (st *session) fireNearest() {
	snap := st.g.Snapshot()

	order := make([]int, 0, len(snap.Bases))
	for i := range snap.Bases {
		order = append(order, i)
	}
	sort.Slice(order, func(a, b int) bool {
		da := math.Abs(snap.Bases[order[a]].X - snap.CrosshairX)
		db := math.Abs(snap.Bases[order[b]].X - snap.CrosshairX)
		return da < db
	})

	for _, i := range order {
		if st.g.FireFrom(i) {
			return
		}
	}
}

// reset drops all cosmetic state for a fresh session.
func (st *session) reset() {
	for _, p := range st.particles {
		p.Release()
	}
	st.particles = st.particles[:0]
	st.popups = st.popups[:0]
	st.recorded = false
}
