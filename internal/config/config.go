// Package config provides YAML-based tuning configuration for the runner,
// with an embedded default and a user-overridable search chain.
package config

// RunnerConfig contains all tuning parameters for the game simulation.
type RunnerConfig struct {
	Physics   RunnerPhysics   `yaml:"physics"`
	Track     RunnerTrack     `yaml:"track"`
	Clearance RunnerClearance `yaml:"clearance"`
}

// RunnerPhysics defines jump and motion parameters.
// Gravity and jump_force apply once per tick; speed is in depth units per
// millisecond and is scaled by measured frame time.
type RunnerPhysics struct {
	Gravity    float64 `yaml:"gravity"`
	JumpForce  float64 `yaml:"jump_force"`
	Speed      float64 `yaml:"speed"`
	DepthScale float64 `yaml:"depth_scale"`
}

// RunnerTrack defines the obstacle course geometry and spawn cadence.
// Depth is measured along the travel axis: obstacles spawn at the far
// negative spawn_depth, the player plane sits at depth 0, and obstacles are
// culled once past cleanup_depth.
type RunnerTrack struct {
	SpawnDepth      float64 `yaml:"spawn_depth"`
	CleanupDepth    float64 `yaml:"cleanup_depth"`
	HitWindow       float64 `yaml:"hit_window"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
}

// RunnerClearance defines the minimum player height needed to safely pass
// each obstacle family. Rings demand the higher jump.
type RunnerClearance struct {
	Ring  float64 `yaml:"ring"`
	Block float64 `yaml:"block"`
}
