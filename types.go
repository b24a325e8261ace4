package main

import (
	"github.com/rs/zerolog"

	"slimesurvivors/audio"
	"slimesurvivors/game"
)

// floorSpeck is one static decoration on the arena floor
type floorSpeck struct {
	pos  game.Vec2
	size float64
}

// Game adapts a Simulation to ebiten's Update/Draw loop. It owns every piece
// of presentation state; the simulation never sees any of it.
type Game struct {
	sim       *game.Simulation
	sound     *audio.SoundManager
	autopilot *game.Autopilot
	profiler  *Profiler
	log       zerolog.Logger

	camera    *Camera
	sprites   *spriteSet
	particles *ParticleSystem
	floor     []floorSpeck
	debug     DebugState

	useAutopilot bool
	clock        *game.PausableClock
	lastReport   game.TickReport

	// FPS tracking
	fps      float64
	fpsTimer float64
}
