// Package runner implements the void-runner simulation: a three-lane
// endless runner where the player dodges or jumps oncoming obstacles.
// The package is pure game logic with no platform dependencies; the TUI
// shell drives it through Reset/Step/Render and reads Snapshots.
package runner

import (
	"github.com/clonkbot/void-runner-60f04d/internal/config"
	"github.com/clonkbot/void-runner-60f04d/internal/core"
)

const (
	laneCount  = 3
	centerLane = 1

	// Height tolerance for the grounded check on jump. The landing snap
	// writes exactly 0, but the gate must not rely on float equality.
	groundEpsilon = 1e-3
)

// Phase is the run state machine: Idle -> Playing -> GameOver -> Playing...
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Player is the runner's simulation state. Height is relative to the
// ground at 0 and never drops below it.
type Player struct {
	Lane        int
	Height      float64
	VerticalVel float64
	Airborne    bool
}

// Game holds the complete simulation state. Exactly one mutator touches it
// at a time (a tick or an intent handler), so no locking is needed.
type Game struct {
	phase     Phase
	score     int
	highScore int
	player    Player
	field     *Field
	cfg       config.RunnerConfig
	runtime   core.RuntimeConfig
	tickCount uint64
}

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "voidrunner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Void Runner"
}

// Reset initializes the game into the idle phase. The high score carries
// across resets within a session; use SetHighScore to seed it from storage.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	g.cfg = cfg

	if g.field == nil {
		g.field = NewField(runtime.Seed, &g.cfg)
	} else {
		g.field.UpdateConfig(&g.cfg)
		g.field.Reset(runtime.Seed)
	}

	g.phase = PhaseIdle
	g.score = 0
	g.tickCount = 0
	g.player = Player{Lane: centerLane}
}

// SetSeed sets the RNG seed used by the next run's obstacle field.
// The shell reseeds before each restart so runs differ; tests pin a seed.
func (g *Game) SetSeed(seed int64) {
	g.runtime.Seed = seed
}

// SetHighScore seeds the session high score, typically from storage.
// Lower values than the current high score are ignored.
func (g *Game) SetHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
}

// start discards the previous run and begins a new one. Valid from Idle
// and GameOver; the high score survives.
func (g *Game) start() {
	g.phase = PhasePlaying
	g.score = 0
	g.tickCount = 0
	g.player = Player{Lane: centerLane}
	g.field.Reset(g.runtime.Seed)
}

// Step advances the simulation by one tick. dt is the measured elapsed
// wall time in milliseconds since the previous tick. Queued intents apply
// at the start of the tick, then obstacles and the player integrate,
// a spawn may occur, and collisions are resolved.
func (g *Game) Step(in core.InputFrame, dt float64) Snapshot {
	if in.Has(core.ActionStart) && g.phase != PhasePlaying {
		g.start()
		return g.Snapshot()
	}

	if g.phase != PhasePlaying {
		// Idle and game-over states are frozen; rendering continues.
		return g.Snapshot()
	}

	g.applyIntents(in)
	g.tickCount++

	g.field.Advance(dt)
	g.integratePlayer()
	g.field.MaybeSpawn(dt)

	// Frame-coupled scoring: one point per simulation step regardless of dt.
	g.score++

	g.resolveCollisions()

	return g.Snapshot()
}

// applyIntents translates queued actions into lane and velocity changes.
// Only reachable while Playing.
func (g *Game) applyIntents(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.player.Lane = core.Clamp(g.player.Lane-1, 0, laneCount-1)
	}
	if in.Has(core.ActionRight) {
		g.player.Lane = core.Clamp(g.player.Lane+1, 0, laneCount-1)
	}
	if in.Has(core.ActionJump) && !g.player.Airborne && g.player.Height <= groundEpsilon {
		g.player.VerticalVel = g.cfg.Physics.JumpForce
		g.player.Airborne = true
	}
}

// integratePlayer applies per-tick gravity and clamps to the ground.
// Velocity zeroes and Airborne clears exactly when the floor is reached.
func (g *Game) integratePlayer() {
	g.player.VerticalVel -= g.cfg.Physics.Gravity
	g.player.Height += g.player.VerticalVel
	if g.player.Height <= 0 {
		g.player.Height = 0
		g.player.VerticalVel = 0
		g.player.Airborne = false
	}
}

// resolveCollisions scans obstacles inside the hit window around the player
// plane and ends the run on the first violation. Multiple simultaneous hits
// produce a single transition.
func (g *Game) resolveCollisions() {
	hw := g.cfg.Track.HitWindow
	for _, o := range g.field.Obstacles() {
		if o.Depth <= -hw || o.Depth >= hw {
			continue
		}
		if o.Lane != g.player.Lane {
			continue
		}
		if g.player.Height < g.clearanceFor(o.Kind) {
			g.endRun()
			return
		}
	}
}

// clearanceFor returns the minimum height that passes the given kind.
func (g *Game) clearanceFor(k Kind) float64 {
	if k == KindRing {
		return g.cfg.Clearance.Ring
	}
	return g.cfg.Clearance.Block
}

// endRun transitions to GameOver and captures the high score, once.
func (g *Game) endRun() {
	g.phase = PhaseGameOver
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current run score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score seen this session.
func (g *Game) HighScore() int {
	return g.highScore
}
