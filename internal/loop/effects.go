package loop

import (
	"fmt"

	"github.com/mhorn/skyfall/internal/game"
	"github.com/mhorn/skyfall/internal/object"
)

// handleEvents turns core events into sound, particle bursts, and popups.
func (st *session) handleEvents(events []game.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case game.EventFire:
			st.opts.Audio.Fire()

		case game.EventDetonate:
			st.opts.Audio.Detonate()
			st.particles = object.Burst(st.particles, ev.X, ev.Y, 6, 12, 0.4)

		case game.EventHazardDestroyed, game.EventHazardSplit:
			if ev.Value > 0 {
				st.popups = append(st.popups, newPopup(ev.X, ev.Y, fmt.Sprintf("+%d", ev.Value)))
			}
			st.particles = object.Burst(st.particles, ev.X, ev.Y, 10, 18, 0.6)

		case game.EventGroundImpact:
			st.particles = object.Burst(st.particles, ev.X, ev.Y, 8, 10, 0.5)

		case game.EventBaseHit:
			st.opts.Audio.BaseHit()
			st.particles = object.Burst(st.particles, ev.X, ev.Y, 24, 22, 0.9)

		case game.EventLevelUp:
			st.opts.Audio.LevelUp()
			snap := st.g.Snapshot()
			st.popups = append(st.popups,
				newPopup(snap.Field.Width/2, snap.Field.Height/3, fmt.Sprintf("LEVEL %d", ev.Value)))

		case game.EventGameOver:
			st.opts.Audio.GameOver()
			st.recordScore(ev.Value)
		}
	}
}

// recordScore sends the final score to the store once per run.
func (st *session) recordScore(points int) {
	if st.recorded || st.opts.Store == nil {
		return
	}
	st.recorded = true
	st.opts.Store.AddWin(st.opts.GameID, st.opts.PlayerName, points)
}

// advanceEffects ages popups and particles, compacting expired ones.
func (st *session) advanceEffects(dt float64) {
	popups := st.popups[:0]
	for _, p := range st.popups {
		if !p.advance(dt) {
			popups = append(popups, p)
		}
	}
	st.popups = popups

	particles := st.particles[:0]
	for _, p := range st.particles {
		if p.Advance(dt) {
			p.Release()
			continue
		}
		particles = append(particles, p)
	}
	st.particles = particles
}
