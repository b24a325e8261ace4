package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"slimesurvivors/game"
)

// rewardKeys selects the offered reward by position
var rewardKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// readKeyboard polls WASD and the arrow keys
func readKeyboard(game.View) game.Intent {
	return game.Intent{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
	}
}

// handleInput processes toggles, restart and reward selection
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.ShowHitboxes = !g.debug.ShowHitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug.ShowGrid = !g.debug.ShowGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		g.debug.ShowStats = !g.debug.ShowStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.useAutopilot = !g.useAutopilot
		g.log.Info().Bool("autopilot", g.useAutopilot).Msg("autopilot toggled")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sound.ToggleMute()
	}

	// Alt+Enter toggles fullscreen
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && (g.sim.GameOver() || g.clock.Paused()) {
		g.restart()
		return
	}

	if g.sim.GameOver() {
		return
	}

	if g.sim.RewardPending() {
		g.handleRewardKeys()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.clock.SetPaused(!g.clock.Paused())
	}
}

// handleRewardKeys picks a reward when its number key is pressed
func (g *Game) handleRewardKeys() {
	options := len(g.sim.PendingRewards())
	for i, key := range rewardKeys[:min(options, len(rewardKeys))] {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if _, err := g.sim.ChooseReward(i); err != nil {
			g.log.Warn().Err(err).Int("index", i).Msg("reward rejected")
		}
		return
	}
}
