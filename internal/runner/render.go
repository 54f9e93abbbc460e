package runner

import (
	"fmt"
	"math"

	"github.com/clonkbot/void-runner-60f04d/internal/core"
)

// Visual characters for rendering
const (
	RunnerHead  = '◆'
	RunnerBody  = '█'
	SpikeChar   = '▲'
	RingChar    = '◯'
	GroundChar  = '═'
	LaneDotChar = '·'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	horizon := 2
	groundY := h - 3
	if groundY <= horizon {
		groundY = horizon + 1
	}

	g.drawTrack(dst, w, horizon, groundY)

	// Far obstacles first so near ones overdraw them.
	obs := g.field.Obstacles()
	for i := len(obs) - 1; i >= 0; i-- {
		g.drawObstacle(dst, obs[i], w, horizon, groundY)
	}

	g.drawRunner(dst, w, horizon, groundY)

	// HUD
	dst.DrawHLine(0, groundY+1, w, GroundChar, core.ColorGray)
	dst.DrawTextColor(2, 0, fmt.Sprintf(" SCORE %s ", FormatScore(g.score)), core.ColorBrightWhite)
	best := fmt.Sprintf(" BEST %s ", FormatScore(g.highScore))
	dst.DrawTextColor(w-len(best)-2, 0, best, core.ColorGray)

	switch g.phase {
	case PhaseIdle:
		g.drawCenteredMessage(dst, "V O I D  R U N N E R", "Press Enter to start")
	case PhaseGameOver:
		sub := fmt.Sprintf("Score %s  |  Enter to run again", FormatScore(g.score))
		g.drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

// depthT maps an obstacle depth to a 0..1 perspective parameter,
// 0 at the far spawn plane and 1 at the player plane.
func (g *Game) depthT(depth float64) float64 {
	far := g.cfg.Track.SpawnDepth
	if far >= 0 {
		return 1
	}
	return core.ClampF((depth-far)/(0-far), 0, 1)
}

// laneX returns the screen column for a lane at perspective parameter t.
// Lanes converge toward the horizon and spread apart near the player.
func laneX(w, lane int, t float64) int {
	spreadFar := 2.0
	spreadNear := float64(w) / 5.0
	offset := float64(lane-1) * (spreadFar + t*(spreadNear-spreadFar))
	return w/2 + int(math.Round(offset))
}

// drawTrack sketches the three lanes with dotted center lines.
func (g *Game) drawTrack(dst *core.Screen, w, horizon, groundY int) {
	rows := groundY - horizon
	if rows <= 0 {
		return
	}
	for row := 0; row <= rows; row++ {
		if row%2 != 0 {
			continue
		}
		t := float64(row) / float64(rows)
		for lane := 0; lane < laneCount; lane++ {
			dst.SetCell(laneX(w, lane, t), horizon+row, LaneDotChar, core.ColorGray)
		}
	}
}

// drawObstacle places a single obstacle glyph at its perspective position.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle, w, horizon, groundY int) {
	if o.Depth > 0 {
		return // already past the player plane
	}
	t := g.depthT(o.Depth)
	row := horizon + int(math.Round(t*float64(groundY-horizon)))
	x := laneX(w, o.Lane, t)

	switch o.Kind {
	case KindCrystal:
		// Orientation is cosmetic spin; alternate the facet glyph with it.
		glyph := '◇'
		if math.Sin(o.Orientation) > 0 {
			glyph = '◆'
		}
		dst.SetCell(x, row, glyph, core.ColorCyan)
	case KindSpike:
		dst.SetCell(x, row, SpikeChar, core.ColorRed)
		if t > 0.6 {
			dst.SetCell(x-1, row, '▲', core.ColorRed)
			dst.SetCell(x+1, row, '▲', core.ColorRed)
		}
	case KindRing:
		dst.SetCell(x, row, RingChar, core.ColorYellow)
		if t > 0.6 {
			dst.SetCell(x, row-1, '╭', core.ColorYellow)
			dst.SetCell(x, row+1, '╰', core.ColorYellow)
		}
	}
}

// drawRunner renders the player at their lane, lifted by jump height.
func (g *Game) drawRunner(dst *core.Screen, w, horizon, groundY int) {
	x := laneX(w, g.player.Lane, 1)
	y := groundY - int(math.Round(g.player.Height))

	dst.SetCell(x, y-1, RunnerHead, core.ColorMagenta)
	dst.SetCell(x, y, RunnerBody, core.ColorMagenta)

	if g.player.Airborne {
		dst.SetCell(x, groundY, '▿', core.ColorGray) // ground shadow
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
