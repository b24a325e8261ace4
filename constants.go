package main

import "image/color"

// Frame timing
const (
	ticksPerSecond = 60
	frameDelta     = 1.0 / ticksPerSecond
)

// Color constants
var (
	colorBackground   = color.NRGBA{R: 26, G: 32, B: 22, A: 255}
	colorFloorSpeck   = color.NRGBA{R: 48, G: 58, B: 40, A: 255}
	colorArenaBorder  = color.NRGBA{R: 90, G: 110, B: 70, A: 255}
	colorPlayer       = color.NRGBA{R: 120, G: 200, B: 255, A: 255}
	colorProjectile   = color.NRGBA{R: 255, G: 230, B: 90, A: 255}
	colorOrb          = color.NRGBA{R: 80, G: 200, B: 255, A: 255}
	colorOrbAttracted = color.NRGBA{R: 170, G: 240, B: 255, A: 255}
	colorHealthBack   = color.NRGBA{R: 90, G: 20, B: 20, A: 255}
	colorHealthFill   = color.NRGBA{R: 60, G: 220, B: 90, A: 255}
	colorExpBack      = color.NRGBA{R: 20, G: 30, B: 70, A: 255}
	colorExpFill      = color.NRGBA{R: 80, G: 160, B: 255, A: 255}
	colorText         = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	colorTextDim      = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	colorTextGold     = color.NRGBA{R: 255, G: 210, B: 80, A: 255}
	colorModalShade   = color.NRGBA{R: 0, G: 0, B: 0, A: 170}
	colorCard         = color.NRGBA{R: 36, G: 44, B: 70, A: 240}
	colorCardBorder   = color.NRGBA{R: 120, G: 150, B: 230, A: 255}
	colorHitbox       = color.NRGBA{R: 255, G: 0, B: 255, A: 200}
	colorGridLine     = color.NRGBA{R: 255, G: 255, B: 255, A: 30}
	colorDanger       = color.NRGBA{R: 255, G: 80, B: 80, A: 255}
)

// enemyColors tints the slime sprite per kind
var enemyColors = map[string]color.NRGBA{
	"basic":  {R: 110, G: 220, B: 90, A: 255},
	"ranged": {R: 230, G: 120, B: 220, A: 255},
	"tank":   {R: 230, G: 140, B: 60, A: 255},
}

// Floor speckle constants
const (
	floorSpeckCount   = 90
	floorSpeckMaxSize = 2.5
)

// UI constants
const (
	hudMargin       = 10
	hudBarWidth     = 220
	hudBarHeight    = 12
	hudLineHeight   = 16
	cardWidth       = 200
	cardHeight      = 110
	cardGap         = 20
	panelWidth      = 360
	panelHeight     = 300
	fpsSampleWindow = 0.5 // seconds between FPS samples
	fpsDropLimit    = 50.0
)

// Screen shake constants
const (
	shakeFrames    = 12
	shakeMagnitude = 6.0
)
