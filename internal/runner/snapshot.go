package runner

import "fmt"

// PlayerView is the read-only player state exposed to the shell.
type PlayerView struct {
	Lane     int
	Height   float64
	Airborne bool
}

// Snapshot captures the complete simulation state for rendering,
// determinism testing and replay. Obstacles are copied; mutating a
// snapshot never touches the live simulation.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int
	Player    PlayerView
	Obstacles []Obstacle
}

// Snapshot returns a copy of the current simulation state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, g.field.Len())
	copy(obstacles, g.field.Obstacles())

	return Snapshot{
		Tick:      g.tickCount,
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
		Player: PlayerView{
			Lane:     g.player.Lane,
			Height:   g.player.Height,
			Airborne: g.player.Airborne,
		},
		Obstacles: obstacles,
	}
}

// FormatScore renders a score as the zero-padded 6-digit display string.
// Presentation only; the score itself is a plain integer.
func FormatScore(score int) string {
	return fmt.Sprintf("%06d", score)
}
