package main

import (
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"slimesurvivors/audio"
	"slimesurvivors/game"
)

// NewGame wires a simulation to the window frontend. The game registers
// itself as an event sink so particles and screen shake follow the simulation.
func NewGame(cfg game.Config, opts game.Options, sound *audio.SoundManager, profiler *Profiler, log zerolog.Logger) (*Game, error) {
	g := &Game{
		sound:     sound,
		autopilot: game.NewAutopilot(),
		profiler:  profiler,
		log:       log,
		fps:       ticksPerSecond,
	}

	// Pausing freezes the simulation clock so paused time never counts
	g.clock = game.NewPausableClock(opts.Clock)
	opts.Clock = g.clock

	rng := rand.New(rand.NewSource(rand.Int63()))
	g.particles = NewParticleSystem(2000, rng)

	opts.Sink = game.MultiSink{opts.Sink, sound, g.particles, game.EventSinkFunc(g.onEvent)}
	sim, err := game.NewSimulation(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("create simulation: %w", err)
	}
	g.sim = sim

	sprites, err := loadSprites(log)
	if err != nil {
		return nil, err
	}
	g.sprites = sprites
	g.camera = NewCamera(sim.Bounds())
	g.floor = newFloor(sim.Bounds(), rng)
	return g, nil
}

// onEvent reacts to simulation events that affect the whole frame
func (g *Game) onEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventPlayerHurt:
		g.camera.Shake()
	case game.EventRewardChosen:
		if r, ok := game.LookupReward(ev.Reward); ok {
			g.log.Info().Str("reward", r.Name).Int("level", g.sim.Player().Level).Msg("reward taken")
		}
	case game.EventPlayerDied:
		stats := g.sim.Stats()
		g.log.Info().
			Int("score", g.sim.Score()).
			Int("kills", stats.EnemiesKilled).
			Str("survived", formatSurvived(g.sim.Survived())).
			Msg("player died")
	}
}

// restart rebuilds the run while keeping frontend settings
func (g *Game) restart() {
	g.clock.Resume()
	g.sim.Restart()
	g.particles.Clear()
	g.lastReport = game.TickReport{}
}

// intentProvider returns whoever steers the player this frame
func (g *Game) intentProvider() game.IntentProvider {
	if g.useAutopilot {
		return g.autopilot
	}
	return game.IntentFunc(readKeyboard)
}

// Update advances one frame
func (g *Game) Update() error {
	g.updateFPS()
	g.handleInput()

	if g.useAutopilot && g.sim.RewardPending() {
		// The autopilot always takes the first offer
		if _, err := g.sim.ChooseReward(0); err != nil {
			g.log.Warn().Err(err).Msg("autopilot reward")
		}
	}

	if !g.clock.Paused() {
		g.lastReport = g.sim.Tick(g.intentProvider().Intent(g.sim))
	}

	g.camera.Update()
	g.particles.Update(frameDelta)
	return nil
}

// updateFPS samples the frame rate and triggers profiling on drops
func (g *Game) updateFPS() {
	g.fpsTimer += frameDelta
	if g.fpsTimer < fpsSampleWindow {
		return
	}
	g.fps = ebiten.ActualFPS()
	g.fpsTimer = 0

	if g.profiler == nil || g.fps >= fpsDropLimit || g.sim.Stats().Ticks < 3*ticksPerSecond {
		return
	}
	stats := g.sim.Stats()
	frame := frameSnapshot{
		Run:         stats.RunID.String(),
		Tick:        stats.Ticks,
		FPS:         g.fps,
		Enemies:     len(g.sim.Enemies()),
		Projectiles: len(g.sim.Projectiles()),
		Pickups:     len(g.sim.Pickups()),
		Particles:   g.particles.Len(),
	}
	if err := g.profiler.CaptureProfile(frame); err == nil {
		g.log.Warn().Float64("fps", g.fps).Int("enemies", frame.Enemies).Msg("fps drop, capturing profile")
	}
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawArena(screen)
	g.drawPickups(screen)
	g.drawEnemies(screen)
	g.drawProjectiles(screen)
	g.drawPlayer(screen)
	g.particles.Draw(screen, g.camera)
	g.drawDebug(screen)
	g.drawHUD(screen)

	switch {
	case g.sim.GameOver():
		g.drawGameOver(screen)
	case g.sim.RewardPending():
		g.drawRewardModal(screen)
	case g.clock.Paused():
		drawPaused(screen)
	}
}

// Layout returns the game's logical screen size, which is the arena size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.sim.Bounds()
	return int(b.X), int(b.Y)
}
