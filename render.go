package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"slimesurvivors/game"
)

// Camera represents the viewport into the arena
type Camera struct {
	X, Y   float64 // Camera position in world coordinates
	Zoom   float64 // Zoom level
	Width  float64 // Viewport width
	Height float64 // Viewport height

	shakeFrames int
	offset      game.Vec2
}

// NewCamera creates a camera centered on the arena
func NewCamera(bounds game.Vec2) *Camera {
	return &Camera{
		X:      bounds.X / 2,
		Y:      bounds.Y / 2,
		Zoom:   1.0,
		Width:  bounds.X,
		Height: bounds.Y,
	}
}

// Shake starts a short screen shake
func (c *Camera) Shake() {
	c.shakeFrames = shakeFrames
}

// Update advances the shake animation
func (c *Camera) Update() {
	if c.shakeFrames <= 0 {
		c.offset = game.Vec2{}
		return
	}
	c.shakeFrames--
	m := shakeMagnitude * float64(c.shakeFrames) / shakeFrames
	c.offset = game.Vec2{X: (rand.Float64()*2 - 1) * m, Y: (rand.Float64()*2 - 1) * m}
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(p game.Vec2) (float64, float64) {
	sx := (p.X-c.X)*c.Zoom + c.Width/2 + c.offset.X
	sy := (p.Y-c.Y)*c.Zoom + c.Height/2 + c.offset.Y
	return sx, sy
}

// newFloor scatters static speckles over the arena
func newFloor(bounds game.Vec2, rng *rand.Rand) []floorSpeck {
	floor := make([]floorSpeck, floorSpeckCount)
	for i := range floor {
		floor[i] = floorSpeck{
			pos:  game.Vec2{X: rng.Float64() * bounds.X, Y: rng.Float64() * bounds.Y},
			size: 0.5 + rng.Float64()*floorSpeckMaxSize,
		}
	}
	return floor
}

// drawArena draws the floor and the arena border
func (g *Game) drawArena(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	for _, s := range g.floor {
		sx, sy := g.camera.WorldToScreen(s.pos)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(s.size), colorFloorSpeck, false)
	}

	bounds := g.sim.Bounds()
	x0, y0 := g.camera.WorldToScreen(game.Vec2{})
	x1, y1 := g.camera.WorldToScreen(bounds)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 2, colorArenaBorder, false)
}

// drawPickups draws experience orbs
func (g *Game) drawPickups(screen *ebiten.Image) {
	for _, pk := range g.sim.Pickups() {
		clr := colorOrb
		if pk.Attracted {
			clr = colorOrbAttracted
		}
		g.sprites.draw(screen, g.camera, g.sprites.orb, pk.Pos, pk.Radius, clr, 1)
	}
}

// drawEnemies draws slimes, flashing while hurt and fading while dying
func (g *Game) drawEnemies(screen *ebiten.Image) {
	for _, e := range g.sim.Enemies() {
		clr := enemyColors[e.Kind.String()]
		if e.Hurt() {
			clr = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}

		alpha := 1.0
		radius := e.Radius
		if e.State == game.EnemyDying {
			t := float64(e.DeathTicks) / float64(g.sim.Config().Enemy.DeathTicks)
			alpha = t
			radius *= 1 + (1-t)*0.5
		}
		g.sprites.draw(screen, g.camera, g.sprites.slime, e.Pos, radius, clr, alpha)

		if e.HasHealth() && e.Alive() && e.Health < e.MaxHealth {
			g.drawHealthPips(screen, e)
		}
	}
}

// drawHealthPips draws a small bar over damaged multi-hit enemies
func (g *Game) drawHealthPips(screen *ebiten.Image, e game.Enemy) {
	sx, sy := g.camera.WorldToScreen(e.Pos)
	barWidth := e.Radius * 2
	barX := sx - barWidth/2
	barY := sy - e.Radius - 6
	ratio := float64(e.Health) / float64(e.MaxHealth)
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), 3, colorHealthBack, false)
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth*ratio), 3, colorHealthFill, false)
}

// drawProjectiles draws bullets in flight
func (g *Game) drawProjectiles(screen *ebiten.Image) {
	for _, p := range g.sim.Projectiles() {
		sx, sy := g.camera.WorldToScreen(p.Pos)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(p.Radius*g.camera.Zoom), colorProjectile, true)
	}
}

// drawPlayer draws the player, blinking while invulnerable
func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := g.sim.Player()
	if p.Invulnerable() && (p.InvulnerableTicks/4)%2 == 0 {
		return
	}

	clr := colorPlayer
	if p.HurtTicks > 0 {
		clr = color.NRGBA{R: 255, G: 90, B: 90, A: 255}
	}
	g.sprites.draw(screen, g.camera, g.sprites.player, p.Pos, p.Radius, clr, 1)

	// Facing indicator
	if p.Facing.Len() > 0 {
		sx, sy := g.camera.WorldToScreen(p.Pos)
		dir := p.Facing.Scale(1 / p.Facing.Len())
		tip := p.Radius * 0.6 * g.camera.Zoom
		vector.StrokeLine(screen, float32(sx), float32(sy),
			float32(sx+dir.X*tip), float32(sy+dir.Y*tip), 2, colorText, true)
	}

	// Pickup radius ring
	sx, sy := g.camera.WorldToScreen(p.Pos)
	ring := color.NRGBA{R: colorOrb.R, G: colorOrb.G, B: colorOrb.B, A: 40}
	vector.StrokeCircle(screen, float32(sx), float32(sy), float32(math.Max(p.PickupRadius, 1)*g.camera.Zoom), 1, ring, true)
}
