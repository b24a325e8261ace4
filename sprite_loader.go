package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"slimesurvivors/game"
)

var (
	//go:embed assets/player.svg
	playerSVGData []byte
	//go:embed assets/slime.svg
	slimeSVGData []byte
	//go:embed assets/orb.svg
	orbSVGData []byte
)

// spriteSize is the rasterized edge length of every sprite; sprites are
// scaled to entity radius at draw time
const spriteSize = 64

// spriteSet holds the white base sprites that are tinted per entity
type spriteSet struct {
	player *ebiten.Image
	slime  *ebiten.Image
	orb    *ebiten.Image
}

// loadSprites rasterizes the embedded SVG assets
func loadSprites(log zerolog.Logger) (*spriteSet, error) {
	var (
		set spriteSet
		err error
	)
	if set.player, err = rasterize(log, "player", playerSVGData); err != nil {
		return nil, err
	}
	if set.slime, err = rasterize(log, "slime", slimeSVGData); err != nil {
		return nil, err
	}
	if set.orb, err = rasterize(log, "orb", orbSVGData); err != nil {
		return nil, err
	}
	return &set, nil
}

// rasterize converts one SVG asset to an ebiten image
func rasterize(log zerolog.Logger, name string, data []byte) (*ebiten.Image, error) {
	img, err := svgToPNG(data, spriteSize, spriteSize)
	if err != nil {
		return nil, fmt.Errorf("rasterize %s sprite: %w", name, err)
	}

	// Optionally save PNG for debugging
	if os.Getenv("DEBUG_SPRITES") == "1" {
		saveDebugPNG(log, img, "debug_"+name+".png")
	}
	return ebiten.NewImageFromImage(img), nil
}

// svgToPNG converts SVG data to an RGBA image
func svgToPNG(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// saveDebugPNG saves a PNG image for debugging purposes
func saveDebugPNG(log zerolog.Logger, img image.Image, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Warn().Err(err).Str("file", filename).Msg("create debug png")
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Warn().Err(err).Str("file", filename).Msg("encode debug png")
	}
}

// draw renders a sprite centered on pos with its half-width equal to radius
func (s *spriteSet) draw(screen *ebiten.Image, cam *Camera, sprite *ebiten.Image, pos game.Vec2, radius float64, tint color.NRGBA, alpha float64) {
	scale := radius * 2 * cam.Zoom / spriteSize
	sx, sy := cam.WorldToScreen(pos)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-spriteSize/2, -spriteSize/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(tint)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
