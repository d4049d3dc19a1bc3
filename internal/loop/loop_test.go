package loop

import (
	"testing"

	"github.com/mhorn/skyfall/internal/game"
	"github.com/mhorn/skyfall/internal/input"
	"github.com/mhorn/skyfall/internal/score"
)

func TestPopupAdvance(t *testing.T) {
	p := newPopup(50, 40, "+100")
	y0 := p.Y

	if p.advance(0.1) {
		t.Fatal("popup expired immediately")
	}
	if p.Y >= y0 {
		t.Errorf("popup did not drift upward: %v -> %v", y0, p.Y)
	}

	if !p.advance(popupLifetime) {
		t.Error("popup should expire past its lifetime")
	}
}

func TestApplyInputEdges(t *testing.T) {
	st := &session{g: game.New()}

	t.Run("space starts from idle", func(t *testing.T) {
		st.applyInput(input.Input{Space: true, FireBase: -1}, 0.016)
		if st.g.Mode() != game.ModePlaying {
			t.Fatalf("Mode = %v, want playing", st.g.Mode())
		}
	})

	t.Run("held space does not retrigger", func(t *testing.T) {
		st.g.Pause()
		// Space still held from the previous frame: no resume edge.
		st.applyInput(input.Input{Space: true, FireBase: -1}, 0.016)
		if st.g.Mode() != game.ModePaused {
			t.Errorf("held space acted as a new press")
		}
	})

	t.Run("pause edge resumes", func(t *testing.T) {
		st.applyInput(input.Input{FireBase: -1}, 0.016) // release
		st.applyInput(input.Input{Pause: true, FireBase: -1}, 0.016)
		if st.g.Mode() != game.ModePlaying {
			t.Errorf("Mode = %v after pause edge, want playing", st.g.Mode())
		}
	})

	t.Run("mute edge toggles once", func(t *testing.T) {
		st.applyInput(input.Input{Mute: true, FireBase: -1}, 0.016)
		if !st.g.Muted() {
			t.Fatal("not muted after edge")
		}
		st.applyInput(input.Input{Mute: true, FireBase: -1}, 0.016)
		if !st.g.Muted() {
			t.Error("held mute key toggled again")
		}
	})

	t.Run("restart returns to idle", func(t *testing.T) {
		st.applyInput(input.Input{FireBase: -1}, 0.016)
		st.applyInput(input.Input{Restart: true, FireBase: -1}, 0.016)
		if st.g.Mode() != game.ModeIdle {
			t.Errorf("Mode = %v after restart, want idle", st.g.Mode())
		}
	})
}

func TestApplyInputMovement(t *testing.T) {
	st := &session{g: game.New()}
	st.applyInput(input.Input{Enter: true, FireBase: -1}, 0.016)
	if st.g.Mode() != game.ModePlaying {
		t.Fatal("setup: enter did not start the game")
	}

	before := st.g.Snapshot()
	st.applyInput(input.Input{Right: true, Up: true, FireBase: -1}, 0.1)
	after := st.g.Snapshot()

	if after.CrosshairX <= before.CrosshairX {
		t.Errorf("CrosshairX %v -> %v, want moved right", before.CrosshairX, after.CrosshairX)
	}
	if after.CrosshairY >= before.CrosshairY {
		t.Errorf("CrosshairY %v -> %v, want moved up", before.CrosshairY, after.CrosshairY)
	}
}

func TestApplyInputFireKeys(t *testing.T) {
	st := &session{g: game.New()}
	st.applyInput(input.Input{Space: true, FireBase: -1}, 0.016)
	st.applyInput(input.Input{FireBase: -1}, 0.016) // release

	st.applyInput(input.Input{FireBase: 2}, 0.016)
	snap := st.g.Snapshot()
	if len(snap.Projectiles) != 1 {
		t.Fatalf("projectiles = %d after pressing '3', want 1", len(snap.Projectiles))
	}
}

func TestFireNearestPrefersClosestReadyBase(t *testing.T) {
	st := &session{g: game.New()}
	st.applyInput(input.Input{Space: true, FireBase: -1}, 0.016)
	st.applyInput(input.Input{FireBase: -1}, 0.016)

	// Crosshair starts at field center, above the middle base.
	st.fireNearest()
	snap := st.g.Snapshot()
	if len(snap.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(snap.Projectiles))
	}
	// The middle base is now on cooldown; a second volley falls through to
	// a neighbor.
	st.fireNearest()
	snap = st.g.Snapshot()
	if len(snap.Projectiles) != 2 {
		t.Errorf("projectiles = %d after fallback volley, want 2", len(snap.Projectiles))
	}
}

func TestGameOverRecordsScoreOnce(t *testing.T) {
	store := score.NewStore()
	st := &session{
		g: game.New(),
		opts: Options{
			Store:      store,
			PlayerName: "tester",
			GameID:     score.DefaultGame,
		},
	}

	st.handleEvents([]game.Event{{Kind: game.EventGameOver, Value: 1234}})
	st.handleEvents([]game.Event{{Kind: game.EventGameOver, Value: 1234}})

	top := store.TopScores(score.DefaultGame, 10)
	if len(top) != 1 {
		t.Fatalf("stored %d entries, want 1", len(top))
	}
	if top[0].Points != 1234 || top[0].Name != "tester" {
		t.Errorf("stored %+v, want tester/1234", top[0])
	}
}

func TestHandleEventsSpawnsEffects(t *testing.T) {
	st := &session{g: game.New()}

	st.handleEvents([]game.Event{
		{Kind: game.EventHazardDestroyed, X: 40, Y: 30, Value: 100},
		{Kind: game.EventDetonate, X: 60, Y: 50},
	})

	if len(st.popups) != 1 {
		t.Errorf("popups = %d, want 1 score popup", len(st.popups))
	}
	if st.popups[0].Text != "+100" {
		t.Errorf("popup text = %q, want +100", st.popups[0].Text)
	}
	if len(st.particles) == 0 {
		t.Error("no particles for destruction and detonation")
	}
}

func TestAdvanceEffectsExpires(t *testing.T) {
	st := &session{g: game.New()}
	st.handleEvents([]game.Event{{Kind: game.EventHazardDestroyed, X: 40, Y: 30, Value: 100}})

	for i := 0; i < 300; i++ {
		st.advanceEffects(1.0 / 60.0)
	}

	if len(st.popups) != 0 {
		t.Errorf("popups survived: %d", len(st.popups))
	}
	if len(st.particles) != 0 {
		t.Errorf("particles survived: %d", len(st.particles))
	}
}
