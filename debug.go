package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"slimesurvivors/game"
)

// DebugState holds debug overlay flags that persist across restarts
type DebugState struct {
	ShowHitboxes bool // Outline collision circles
	ShowGrid     bool // Show spatial grid lines
	ShowStats    bool // Show entity counts and FPS
}

// drawDebug renders whichever overlays are enabled
func (g *Game) drawDebug(screen *ebiten.Image) {
	if g.debug.ShowGrid {
		g.drawGrid(screen)
	}
	if g.debug.ShowHitboxes {
		g.drawHitboxes(screen)
	}
	if g.debug.ShowStats {
		line := fmt.Sprintf("FPS %.0f  TPS %.0f  enemies %d  bullets %d  orbs %d  particles %d",
			g.fps, ebiten.ActualTPS(), len(g.sim.Enemies()), len(g.sim.Projectiles()),
			len(g.sim.Pickups()), g.particles.Len())
		text.Draw(screen, line, basicfont.Face7x13, hudMargin, screen.Bounds().Dy()-hudMargin, colorTextDim)
	}
}

// drawGrid draws the enemy spatial partition
func (g *Game) drawGrid(screen *ebiten.Image) {
	cfg := g.sim.Config()
	for x := 0.0; x <= cfg.Width; x += cfg.GridCellSize {
		x0, y0 := g.camera.WorldToScreen(game.Vec2{X: x})
		x1, y1 := g.camera.WorldToScreen(game.Vec2{X: x, Y: cfg.Height})
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, colorGridLine, false)
	}
	for y := 0.0; y <= cfg.Height; y += cfg.GridCellSize {
		x0, y0 := g.camera.WorldToScreen(game.Vec2{Y: y})
		x1, y1 := g.camera.WorldToScreen(game.Vec2{X: cfg.Width, Y: y})
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, colorGridLine, false)
	}
}

// drawHitboxes outlines every collision circle. The player ring uses the
// contact scale so it matches what enemies actually touch.
func (g *Game) drawHitboxes(screen *ebiten.Image) {
	cfg := g.sim.Config()
	zoom := float32(g.camera.Zoom)

	p := g.sim.Player()
	sx, sy := g.camera.WorldToScreen(p.Pos)
	vector.StrokeCircle(screen, float32(sx), float32(sy), float32(p.Radius*cfg.Player.ContactScale)*zoom, 1, colorHitbox, true)

	for _, e := range g.sim.Enemies() {
		sx, sy := g.camera.WorldToScreen(e.Pos)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(e.Radius)*zoom, 1, colorHitbox, true)
	}
	for _, pr := range g.sim.Projectiles() {
		sx, sy := g.camera.WorldToScreen(pr.Pos)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(pr.Radius)*zoom, 1, colorHitbox, true)
	}
}
