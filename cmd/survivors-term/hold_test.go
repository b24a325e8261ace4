package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"slimesurvivors/game"
)

func TestHeldKeysExpire(t *testing.T) {
	var h heldKeys
	h.press(dirLeft)

	for i := 0; i < holdTicks; i++ {
		assert.Equal(t, game.Intent{Left: true}, h.tick(), "tick %d", i)
	}
	assert.Equal(t, game.Intent{}, h.tick())
}

func TestHeldKeysOppositeCancels(t *testing.T) {
	var h heldKeys
	h.press(dirUp)
	h.press(dirRight)
	h.press(dirDown)

	assert.Equal(t, game.Intent{Down: true, Right: true}, h.tick())

	h.release()
	assert.Equal(t, game.Intent{}, h.tick())
}

func TestRuneDirection(t *testing.T) {
	assert.Equal(t, dirUp, runeDirection('w'))
	assert.Equal(t, dirUp, runeDirection('k'))
	assert.Equal(t, dirLeft, runeDirection('h'))
	assert.Equal(t, dirRight, runeDirection('D'))
	assert.Equal(t, dirNone, runeDirection('q'))
}

func TestProjectionStaysInsideBorder(t *testing.T) {
	p := projection{bounds: game.Vec2{X: 720, Y: 720}, cols: 80, rows: 24}

	x, y := p.cell(game.Vec2{})
	assert.Equal(t, 1, x)
	assert.Equal(t, hudRows+1, y)

	x, y = p.cell(game.Vec2{X: 720, Y: 720})
	assert.Equal(t, 78, x)
	assert.Equal(t, 22, y)

	x, y = p.cell(game.Vec2{X: 360, Y: 360})
	assert.Equal(t, 1+39, x)
	assert.Equal(t, hudRows+1+10, y)
}
