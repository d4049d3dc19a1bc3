package game

import (
	"math/rand"
	"testing"

	"github.com/mhorn/skyfall/internal/level"
	"github.com/mhorn/skyfall/internal/object"
)

func testField() object.Playfield {
	return object.NewPlayfield(FieldWidth, FieldHeight, GroundMargin)
}

// explosionAt builds an explosion frozen at the given lethal radius.
func explosionAt(x, y, radius float64) *object.Explosion {
	e := object.NewExplosion(x, y, radius)
	e.Radius = radius
	return e
}

func hazardAt(rng *rand.Rand, typ object.HazardType, x, y float64, splitLimit int) *object.Hazard {
	h := object.NewHazard(x, typ, splitLimit, rng)
	h.Y = y
	return h
}

func TestResolveExplosionDestroysHazard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := level.Config{ExplosionRadius: 20, SplitLimit: 0}

	// Hazard center 20 units away; radii sum to 20+4 so they overlap.
	h := hazardAt(rng, object.HazardHeavy, 70, 30, 0)
	e := explosionAt(50, 30, 20)

	res := resolve([]*object.Hazard{h}, []*object.Explosion{e}, nil, cfg, testField(), rng)

	if !h.IsDestroyed() {
		t.Fatal("overlapping hazard not destroyed")
	}
	if len(res.Destroyed) != 1 {
		t.Errorf("Destroyed = %d entries, want 1", len(res.Destroyed))
	}
	if res.ScoreDelta != ScoreHeavy {
		t.Errorf("ScoreDelta = %d, want %d", res.ScoreDelta, ScoreHeavy)
	}
}

func TestResolveMissesDistantHazard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := level.Config{ExplosionRadius: 8, SplitLimit: 0}

	h := hazardAt(rng, object.HazardBasic, 100, 30, 0)
	e := explosionAt(20, 30, 8)

	res := resolve([]*object.Hazard{h}, []*object.Explosion{e}, nil, cfg, testField(), rng)

	if h.IsDestroyed() {
		t.Fatal("distant hazard destroyed")
	}
	if res.ScoreDelta != 0 {
		t.Errorf("ScoreDelta = %d, want 0", res.ScoreDelta)
	}
}

func TestResolveSplitsHazard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := level.Config{ExplosionRadius: 10, SplitLimit: 2}

	t.Run("with splits remaining", func(t *testing.T) {
		h := hazardAt(rng, object.HazardHeavy, 50, 30, 2)
		e := explosionAt(50, 30, 10)

		res := resolve([]*object.Hazard{h}, []*object.Explosion{e}, nil, cfg, testField(), rng)

		if len(res.Children) != 2 {
			t.Fatalf("Children = %d, want 2", len(res.Children))
		}
		for i, c := range res.Children {
			if c.SplitsRemaining != 1 {
				t.Errorf("child %d SplitsRemaining = %d, want 1", i, c.SplitsRemaining)
			}
		}
		want := ScoreHeavy / ScoreSplitDivisor
		if res.ScoreDelta != want {
			t.Errorf("split ScoreDelta = %d, want partial score %d", res.ScoreDelta, want)
		}

		foundSplit := false
		for _, ev := range res.Events {
			if ev.Kind == EventHazardSplit {
				foundSplit = true
			}
		}
		if !foundSplit {
			t.Error("no EventHazardSplit emitted")
		}
	})

	t.Run("without splits remaining", func(t *testing.T) {
		h := hazardAt(rng, object.HazardHeavy, 50, 30, 0)
		e := explosionAt(50, 30, 10)

		res := resolve([]*object.Hazard{h}, []*object.Explosion{e}, nil, cfg, testField(), rng)

		if len(res.Children) != 0 {
			t.Fatalf("Children = %d, want 0", len(res.Children))
		}
		if res.ScoreDelta != ScoreHeavy {
			t.Errorf("ScoreDelta = %d, want full score %d", res.ScoreDelta, ScoreHeavy)
		}
	})
}

func TestResolveSingleClaimWithOverlappingExplosions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := level.Config{ExplosionRadius: 10, SplitLimit: 0}

	h := hazardAt(rng, object.HazardBasic, 50, 30, 0)
	explosions := []*object.Explosion{
		explosionAt(48, 30, 10),
		explosionAt(52, 30, 10),
	}

	res := resolve([]*object.Hazard{h}, explosions, nil, cfg, testField(), rng)

	if len(res.Destroyed) != 1 {
		t.Errorf("hazard destroyed %d times by two overlapping explosions, want 1", len(res.Destroyed))
	}
	if res.ScoreDelta != ScoreBasic {
		t.Errorf("ScoreDelta = %d, want %d scored once", res.ScoreDelta, ScoreBasic)
	}
}

func TestResolveIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := level.Config{ExplosionRadius: 10, SplitLimit: 0}

	hazards := []*object.Hazard{hazardAt(rng, object.HazardBasic, 50, 30, 0)}
	explosions := []*object.Explosion{explosionAt(50, 30, 10)}

	first := resolve(hazards, explosions, nil, cfg, testField(), rng)
	if len(first.Destroyed) != 1 {
		t.Fatalf("setup: Destroyed = %d, want 1", len(first.Destroyed))
	}

	second := resolve(hazards, explosions, nil, cfg, testField(), rng)
	if len(second.Destroyed) != 0 || second.ScoreDelta != 0 || len(second.Children) != 0 {
		t.Errorf("second resolve found work: %+v", second)
	}
}

func TestResolveGroundImpact(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := level.Config{ExplosionRadius: 8, SplitLimit: 0}
	field := testField()

	t.Run("open ground scores nothing", func(t *testing.T) {
		bases := object.NewBases(field, BaseCount)
		// Impact at X=40: 20 away from the nearest base, outside BaseHitRange.
		h := hazardAt(rng, object.HazardBasic, 40, field.GroundY, 0)

		res := resolve([]*object.Hazard{h}, nil, bases, cfg, field, rng)

		if !h.IsDestroyed() {
			t.Fatal("grounded hazard not destroyed")
		}
		if res.ScoreDelta != 0 {
			t.Errorf("ground impact scored %d, want 0", res.ScoreDelta)
		}
		if len(res.HitBases) != 0 {
			t.Errorf("open-ground impact hit bases %v", res.HitBases)
		}
		if len(res.Events) != 1 || res.Events[0].Kind != EventGroundImpact {
			t.Errorf("events = %+v, want one EventGroundImpact", res.Events)
		}
	})

	t.Run("impact near base takes it out", func(t *testing.T) {
		bases := object.NewBases(field, BaseCount)
		// Base 1 sits at X=60; impact within BaseHitRange.
		h := hazardAt(rng, object.HazardBasic, 65, field.GroundY, 0)

		res := resolve([]*object.Hazard{h}, nil, bases, cfg, field, rng)

		if len(res.HitBases) != 1 || res.HitBases[0] != 1 {
			t.Fatalf("HitBases = %v, want [1]", res.HitBases)
		}
		if len(res.Events) != 1 || res.Events[0].Kind != EventBaseHit {
			t.Errorf("events = %+v, want one EventBaseHit", res.Events)
		}
	})

	t.Run("destroyed base is not claimed again", func(t *testing.T) {
		bases := object.NewBases(field, BaseCount)
		bases[1].Destroyed = true
		h := hazardAt(rng, object.HazardBasic, 60, field.GroundY, 0)

		res := resolve([]*object.Hazard{h}, nil, bases, cfg, field, rng)

		if len(res.HitBases) != 0 {
			t.Errorf("HitBases = %v, want none for rubble", res.HitBases)
		}
	})
}

func TestResolveExplosionClaimBeatsGround(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := level.Config{ExplosionRadius: 10, SplitLimit: 0}
	field := testField()
	bases := object.NewBases(field, BaseCount)

	// Hazard overlaps both an explosion and the ground line in the same
	// frame; the explosion claims it and the base survives.
	h := hazardAt(rng, object.HazardBasic, 60, field.GroundY, 0)
	e := explosionAt(60, field.GroundY-2, 10)

	res := resolve([]*object.Hazard{h}, []*object.Explosion{e}, bases, cfg, field, rng)

	if len(res.Destroyed) != 1 {
		t.Fatalf("Destroyed = %d, want 1", len(res.Destroyed))
	}
	if len(res.HitBases) != 0 {
		t.Errorf("intercepted hazard still hit bases %v", res.HitBases)
	}
	if res.ScoreDelta != ScoreBasic {
		t.Errorf("ScoreDelta = %d, want %d", res.ScoreDelta, ScoreBasic)
	}
}
