package main

import "slimesurvivors/game"

// holdTicks is how long one key press keeps a direction active. Terminals
// report presses and auto-repeat but never releases, so a held key is
// modeled as a stream of presses that keep refreshing this window.
const holdTicks = 8

// heldKeys turns discrete terminal key presses into a continuous Intent
type heldKeys struct {
	up, down, left, right int
}

// press refreshes the hold window for one direction. Pressing a direction
// cancels its opposite so reversing feels immediate.
func (h *heldKeys) press(dir direction) {
	switch dir {
	case dirUp:
		h.up, h.down = holdTicks, 0
	case dirDown:
		h.down, h.up = holdTicks, 0
	case dirLeft:
		h.left, h.right = holdTicks, 0
	case dirRight:
		h.right, h.left = holdTicks, 0
	}
}

// release drops every held direction
func (h *heldKeys) release() {
	*h = heldKeys{}
}

// tick returns the intent for this frame and ages every hold window
func (h *heldKeys) tick() game.Intent {
	in := game.Intent{
		Up:    h.up > 0,
		Down:  h.down > 0,
		Left:  h.left > 0,
		Right: h.right > 0,
	}
	h.up = max(0, h.up-1)
	h.down = max(0, h.down-1)
	h.left = max(0, h.left-1)
	h.right = max(0, h.right-1)
	return in
}

// direction is one of the four movement keys
type direction int

const (
	dirNone direction = iota
	dirUp
	dirDown
	dirLeft
	dirRight
)

// runeDirection maps WASD and hjkl to directions
func runeDirection(r rune) direction {
	switch r {
	case 'w', 'W', 'k':
		return dirUp
	case 's', 'S', 'j':
		return dirDown
	case 'a', 'A', 'h':
		return dirLeft
	case 'd', 'D', 'l':
		return dirRight
	default:
		return dirNone
	}
}
