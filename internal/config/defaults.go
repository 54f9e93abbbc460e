package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default configuration.
// Used as a last resort if the embedded YAML cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:    0.012,
			JumpForce:  0.35,
			Speed:      0.03,
			DepthScale: 1.0,
		},
		Track: RunnerTrack{
			SpawnDepth:      -90.0,
			CleanupDepth:    5.0,
			HitWindow:       1.0,
			SpawnIntervalMs: 1500,
		},
		Clearance: RunnerClearance{
			Ring:  1.5,
			Block: 1.2,
		},
	}
}

// GetDefaultYAML returns the embedded default runner YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
