package runner

import (
	"math"
	"testing"

	"github.com/clonkbot/void-runner-60f04d/internal/config"
)

func testField(seed int64) (*Field, *config.RunnerConfig) {
	cfg := config.DefaultRunnerConfig()
	return NewField(seed, &cfg), &cfg
}

func TestFieldSpawnProperties(t *testing.T) {
	f, cfg := testField(42)

	kinds := make(map[Kind]int)
	seenID := make(map[int64]bool)
	var lastID int64 = -1

	for i := 0; i < 300; i++ {
		f.MaybeSpawn(cfg.Track.SpawnIntervalMs)
	}

	obs := f.Obstacles()
	if len(obs) != 300 {
		t.Fatalf("expected 300 spawns, got %d", len(obs))
	}

	for _, o := range obs {
		if seenID[o.ID] {
			t.Fatalf("duplicate obstacle ID %d", o.ID)
		}
		seenID[o.ID] = true
		if o.ID <= lastID {
			t.Fatalf("IDs must be monotonic: %d after %d", o.ID, lastID)
		}
		lastID = o.ID

		if o.Lane < 0 || o.Lane > 2 {
			t.Errorf("lane out of range: %d", o.Lane)
		}
		if o.Depth != cfg.Track.SpawnDepth {
			t.Errorf("spawn depth = %v, expected %v", o.Depth, cfg.Track.SpawnDepth)
		}
		if o.Orientation < 0 || o.Orientation >= 2*math.Pi {
			t.Errorf("orientation out of range: %v", o.Orientation)
		}
		kinds[o.Kind]++
	}

	// Uniform over three kinds: all of them should show up in 300 draws.
	for _, k := range []Kind{KindCrystal, KindSpike, KindRing} {
		if kinds[k] == 0 {
			t.Errorf("kind %v never spawned in 300 draws", k)
		}
	}
}

func TestFieldSpawnTimerAccumulates(t *testing.T) {
	f, cfg := testField(1)

	half := cfg.Track.SpawnIntervalMs / 2
	f.MaybeSpawn(half)
	if f.Len() != 0 {
		t.Fatalf("spawned before the interval elapsed")
	}
	f.MaybeSpawn(half)
	if f.Len() != 1 {
		t.Fatalf("expected one spawn once the interval accumulated, got %d", f.Len())
	}

	// Timer resets: another half interval is not enough.
	f.MaybeSpawn(half)
	if f.Len() != 1 {
		t.Fatalf("spawn timer should reset after spawning, got %d", f.Len())
	}
}

func TestFieldAdvanceAndCull(t *testing.T) {
	f, cfg := testField(1)

	f.obstacles = []Obstacle{
		{ID: 0, Lane: 0, Depth: -10},
		{ID: 1, Lane: 1, Depth: cfg.Track.CleanupDepth - 0.1},
	}

	// 1000ms at 0.03 units/ms moves everything 30 units forward.
	f.Advance(1000)

	obs := f.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("obstacle past the cleanup threshold should be culled, got %d", len(obs))
	}
	if obs[0].ID != 0 {
		t.Errorf("wrong obstacle survived: %d", obs[0].ID)
	}
	if obs[0].Depth != -10+30 {
		t.Errorf("depth = %v, expected %v", obs[0].Depth, -10.0+30)
	}
}

func TestFieldResetReplaysSpawns(t *testing.T) {
	f, cfg := testField(77)

	for i := 0; i < 20; i++ {
		f.MaybeSpawn(cfg.Track.SpawnIntervalMs)
	}
	first := make([]Obstacle, len(f.Obstacles()))
	copy(first, f.Obstacles())

	f.Reset(77)
	for i := 0; i < 20; i++ {
		f.MaybeSpawn(cfg.Track.SpawnIntervalMs)
	}

	second := f.Obstacles()
	if len(first) != len(second) {
		t.Fatalf("replay lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("spawn %d differs after reseed: %+v vs %+v", i, first[i], second[i])
		}
	}
}
