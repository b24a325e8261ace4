package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"slimesurvivors/game"
)

// Particle represents a single particle in a particle system
type Particle struct {
	pos      game.Vec2 // world position
	vel      game.Vec2 // units per second
	age      float64   // age in seconds
	lifetime float64   // total lifetime in seconds
	color    color.NRGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// burstSpec describes one emission of particles
type burstSpec struct {
	count          int
	velocityMin    float64
	velocityMax    float64
	lifetimeMin    float64
	lifetimeMax    float64
	sizeMin        float64
	sizeMax        float64
	colorBase      color.NRGBA
	colorVariation color.NRGBA
}

// Burst presets, one per visual event
var (
	burstEnemyDeath = burstSpec{
		count: 14, velocityMin: 40, velocityMax: 140,
		lifetimeMin: 0.3, lifetimeMax: 0.7, sizeMin: 1.5, sizeMax: 3.5,
		colorBase: color.NRGBA{R: 120, G: 220, B: 90, A: 255}, colorVariation: color.NRGBA{R: 40, G: 35, B: 40},
	}
	burstHit = burstSpec{
		count: 4, velocityMin: 30, velocityMax: 80,
		lifetimeMin: 0.1, lifetimeMax: 0.25, sizeMin: 1, sizeMax: 2,
		colorBase: color.NRGBA{R: 255, G: 240, B: 160, A: 255}, colorVariation: color.NRGBA{R: 0, G: 15, B: 60},
	}
	burstPlayerHurt = burstSpec{
		count: 20, velocityMin: 60, velocityMax: 180,
		lifetimeMin: 0.2, lifetimeMax: 0.5, sizeMin: 2, sizeMax: 4,
		colorBase: color.NRGBA{R: 255, G: 60, B: 60, A: 255}, colorVariation: color.NRGBA{R: 0, G: 40, B: 40},
	}
	burstPickup = burstSpec{
		count: 5, velocityMin: 20, velocityMax: 60,
		lifetimeMin: 0.15, lifetimeMax: 0.3, sizeMin: 1, sizeMax: 2,
		colorBase: colorOrb, colorVariation: color.NRGBA{R: 30, G: 30, B: 0},
	}
	burstLevelUp = burstSpec{
		count: 48, velocityMin: 160, velocityMax: 200,
		lifetimeMin: 0.5, lifetimeMax: 0.8, sizeMin: 2, sizeMax: 3,
		colorBase: colorTextGold, colorVariation: color.NRGBA{R: 0, G: 40, B: 60},
	}
)

// ParticleSystem holds short-lived cosmetic particles spawned by simulation events
type ParticleSystem struct {
	particles    []Particle
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates a particle system with a fixed capacity
func NewParticleSystem(maxParticles int, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		particles:    make([]Particle, 0, maxParticles),
		maxParticles: maxParticles,
		rng:          rng,
	}
}

// Burst emits spec.count particles radiating from pos
func (ps *ParticleSystem) Burst(pos game.Vec2, spec burstSpec) {
	for i := 0; i < spec.count && len(ps.particles) < ps.maxParticles; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := ps.between(spec.velocityMin, spec.velocityMax)
		ps.particles = append(ps.particles, Particle{
			pos:      pos,
			vel:      game.FromAngle(angle, speed),
			lifetime: ps.between(spec.lifetimeMin, spec.lifetimeMax),
			color:    ps.vary(spec.colorBase, spec.colorVariation),
			size:     ps.between(spec.sizeMin, spec.sizeMax),
		})
	}
}

// between returns a uniform value in [lo, hi)
func (ps *ParticleSystem) between(lo, hi float64) float64 {
	return lo + ps.rng.Float64()*(hi-lo)
}

// vary jitters each channel of base by up to ±variation
func (ps *ParticleSystem) vary(base, variation color.NRGBA) color.NRGBA {
	ch := func(b, v uint8) uint8 {
		val := float64(b) + (ps.rng.Float64()*2-1)*float64(v)
		return uint8(math.Max(0, math.Min(255, val)))
	}
	return color.NRGBA{
		R: ch(base.R, variation.R),
		G: ch(base.G, variation.G),
		B: ch(base.B, variation.B),
		A: base.A,
	}
}

// Update ages and moves every particle and drops the expired ones
func (ps *ParticleSystem) Update(dt float64) {
	kept := ps.particles[:0]
	for _, p := range ps.particles {
		p.age += dt
		if !p.IsAlive() {
			continue
		}
		p.pos = p.pos.Add(p.vel.Scale(dt))
		p.vel = p.vel.Scale(0.92)
		kept = append(kept, p)
	}
	ps.particles = kept
}

// Clear drops every particle
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

// Len returns the number of live particles
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Draw renders all particles in the system
func (ps *ParticleSystem) Draw(screen *ebiten.Image, cam *Camera) {
	for _, p := range ps.particles {
		sx, sy := cam.WorldToScreen(p.pos)

		// Fade out with age
		alpha := math.Max(0, math.Min(1, 1-p.age/p.lifetime))
		clr := p.color
		clr.A = uint8(float64(clr.A) * alpha)

		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(p.size*cam.Zoom), clr, true)
	}
}

// Notify turns simulation events into particle bursts
func (ps *ParticleSystem) Notify(ev game.Event) {
	switch ev.Kind {
	case game.EventEnemyHit:
		ps.Burst(ev.Pos, burstHit)
	case game.EventEnemyKilled:
		spec := burstEnemyDeath
		spec.colorBase = enemyColors[ev.Enemy.String()]
		ps.Burst(ev.Pos, spec)
	case game.EventPlayerHurt:
		ps.Burst(ev.Pos, burstPlayerHurt)
	case game.EventPickupCollected:
		ps.Burst(ev.Pos, burstPickup)
	case game.EventLevelUp:
		ps.Burst(ev.Pos, burstLevelUp)
	}
}
