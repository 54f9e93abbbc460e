package runner

import (
	"math"
	"math/rand"

	"github.com/clonkbot/void-runner-60f04d/internal/config"
)

// Kind identifies the obstacle family, which decides its clearance rule.
type Kind int

const (
	KindCrystal Kind = iota
	KindSpike
	KindRing
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCrystal:
		return "Crystal"
	case KindSpike:
		return "Spike"
	case KindRing:
		return "Ring"
	default:
		return "Unknown"
	}
}

// Obstacle is a single hazard on the track. Depth runs along the travel
// axis: spawned far ahead of the player (negative), advancing toward the
// player plane at depth 0 and culled shortly past it.
type Obstacle struct {
	ID          int64   // unique and monotonic within a run
	Lane        int     // 0, 1 or 2
	Depth       float64 // position along the travel axis
	Kind        Kind    // decides the clearance rule
	Orientation float64 // radians, cosmetic spin only
}

// Field owns the active obstacle set: spawning, motion and culling.
// The set is never aliased outside the simulation; snapshots copy it.
type Field struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	cfg        *config.RunnerConfig
	nextID     int64
	sinceSpawn float64 // ms accumulated since the last spawn
}

// NewField creates an obstacle field with the given RNG seed.
func NewField(seed int64, cfg *config.RunnerConfig) *Field {
	f := &Field{
		obstacles: make([]Obstacle, 0, 16),
		cfg:       cfg,
	}
	f.Reset(seed)
	return f
}

// Reset clears all obstacles, the spawn timer and the ID counter, and
// reseeds the RNG so spawn sequences replay deterministically.
func (f *Field) Reset(seed int64) {
	f.obstacles = f.obstacles[:0]
	f.rng = rand.New(rand.NewSource(seed))
	f.nextID = 0
	f.sinceSpawn = 0
}

// UpdateConfig swaps in new tuning parameters.
func (f *Field) UpdateConfig(cfg *config.RunnerConfig) {
	f.cfg = cfg
}

// Advance moves every obstacle toward the player by speed*dt*scale, then
// drops any that have passed the cleanup threshold. Update-then-filter,
// in stable order.
func (f *Field) Advance(dt float64) {
	step := f.cfg.Physics.Speed * dt * f.cfg.Physics.DepthScale
	for i := range f.obstacles {
		f.obstacles[i].Depth += step
	}

	alive := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Depth <= f.cfg.Track.CleanupDepth {
			alive = append(alive, o)
		}
	}
	f.obstacles = alive
}

// MaybeSpawn accumulates elapsed time and emits exactly one new obstacle
// once the spawn interval has elapsed, resetting the timer. Lane and kind
// are uniform over their three values; orientation is cosmetic.
func (f *Field) MaybeSpawn(dt float64) {
	f.sinceSpawn += dt
	if f.sinceSpawn < f.cfg.Track.SpawnIntervalMs {
		return
	}
	f.sinceSpawn = 0

	f.obstacles = append(f.obstacles, Obstacle{
		ID:          f.nextID,
		Lane:        f.rng.Intn(laneCount),
		Depth:       f.cfg.Track.SpawnDepth,
		Kind:        Kind(f.rng.Intn(3)),
		Orientation: f.rng.Float64() * 2 * math.Pi,
	})
	f.nextID++
}

// Obstacles returns the live obstacle slice. Owned by the simulation;
// callers must not retain it across ticks.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of active obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}
