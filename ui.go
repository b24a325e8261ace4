package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// drawText draws a line with its top-left corner at (x, y)
func drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	// text.Draw positions the baseline, basicfont ascends 11px
	text.Draw(screen, s, basicfont.Face7x13, x, y+11, clr)
}

// drawCenteredText draws a line horizontally centered on cx
func drawCenteredText(screen *ebiten.Image, s string, cx, y int, clr color.Color) {
	w := text.BoundString(basicfont.Face7x13, s).Dx()
	drawText(screen, s, cx-w/2, y, clr)
}

// drawBar draws a labeled progress bar
func drawBar(screen *ebiten.Image, x, y float32, ratio float64, back, fill color.Color, label string) {
	ratio = max(0, min(1, ratio))
	vector.DrawFilledRect(screen, x, y, hudBarWidth, hudBarHeight, back, false)
	vector.DrawFilledRect(screen, x, y, float32(float64(hudBarWidth)*ratio), hudBarHeight, fill, false)
	drawText(screen, label, int(x)+hudBarWidth+8, int(y)-1, colorText)
}

// formatSurvived renders a duration as mm:ss
func formatSurvived(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// drawHUD draws the heads-up display with player stats
func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.sim.Player()
	stats := g.sim.Stats()

	drawBar(screen, hudMargin, hudMargin,
		float64(p.Health)/float64(p.MaxHealth), colorHealthBack, colorHealthFill,
		fmt.Sprintf("HP %d/%d", p.Health, p.MaxHealth))
	drawBar(screen, hudMargin, hudMargin+hudLineHeight,
		float64(p.Experience)/float64(p.ExpToNext), colorExpBack, colorExpFill,
		fmt.Sprintf("LV %d  %d/%d", p.Level, p.Experience, p.ExpToNext))

	w := screen.Bounds().Dx()
	right := []string{
		formatSurvived(g.sim.Survived()),
		fmt.Sprintf("Kills %d", stats.EnemiesKilled),
		fmt.Sprintf("Bullets x%d", p.BulletsPerShot),
	}
	for i, line := range right {
		lw := text.BoundString(basicfont.Face7x13, line).Dx()
		drawText(screen, line, w-hudMargin-lw, hudMargin+i*hudLineHeight, colorText)
	}

	var flags string
	if g.useAutopilot {
		flags += "[AUTO] "
	}
	if g.sound.Muted() {
		flags += "[MUTED] "
	}
	if g.profiler != nil && g.profiler.IsProfiling() {
		flags += "[PROFILING] "
	}
	if flags != "" {
		drawText(screen, flags, hudMargin, hudMargin+2*hudLineHeight+4, colorTextGold)
	}
}

// drawShade dims the whole screen behind a modal
func drawShade(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), colorModalShade, false)
}

// drawRewardModal draws the level-up choice cards
func (g *Game) drawRewardModal(screen *ebiten.Image) {
	rewards := g.sim.PendingRewards()
	if len(rewards) == 0 {
		return
	}
	drawShade(screen)

	b := screen.Bounds()
	cx, cy := b.Dx()/2, b.Dy()/2
	drawCenteredText(screen, fmt.Sprintf("LEVEL %d!", g.sim.Player().Level), cx, cy-cardHeight/2-48, colorTextGold)
	drawCenteredText(screen, "Choose a reward", cx, cy-cardHeight/2-30, colorText)

	total := len(rewards)*cardWidth + (len(rewards)-1)*cardGap
	x0 := cx - total/2
	y0 := cy - cardHeight/2
	for i, r := range rewards {
		x := x0 + i*(cardWidth+cardGap)
		vector.DrawFilledRect(screen, float32(x), float32(y0), cardWidth, cardHeight, colorCard, false)
		vector.StrokeRect(screen, float32(x), float32(y0), cardWidth, cardHeight, 2, colorCardBorder, false)

		mid := x + cardWidth/2
		drawCenteredText(screen, fmt.Sprintf("[%d]", i+1), mid, y0+10, colorTextDim)
		drawCenteredText(screen, r.Icon, mid, y0+32, colorTextGold)
		drawCenteredText(screen, r.Name, mid, y0+54, colorText)
		drawCenteredText(screen, r.Description, mid, y0+76, colorTextDim)
	}
}

// drawGameOver draws the end-of-run panel
func (g *Game) drawGameOver(screen *ebiten.Image) {
	drawShade(screen)

	b := screen.Bounds()
	cx := b.Dx() / 2
	x := float32(cx - panelWidth/2)
	y := float32(b.Dy()/2 - panelHeight/2)
	vector.DrawFilledRect(screen, x, y, panelWidth, panelHeight, colorCard, false)
	vector.StrokeRect(screen, x, y, panelWidth, panelHeight, 2, colorCardBorder, false)

	p := g.sim.Player()
	stats := g.sim.Stats()
	lines := []struct {
		label string
		value string
	}{
		{"Time survived", formatSurvived(g.sim.Survived())},
		{"Level reached", fmt.Sprint(p.Level)},
		{"Enemies killed", fmt.Sprint(stats.EnemiesKilled)},
		{"Bullets fired", fmt.Sprint(stats.BulletsFired)},
		{"Accuracy", fmt.Sprintf("%.1f%%", stats.Accuracy()*100)},
		{"Damage taken", fmt.Sprint(stats.DamageTaken)},
		{"Experience", fmt.Sprint(stats.TotalExperience)},
		{"Rewards chosen", fmt.Sprint(stats.RewardsChosen)},
	}

	top := int(y) + 16
	drawCenteredText(screen, "GAME OVER", cx, top, colorDanger)
	drawCenteredText(screen, fmt.Sprintf("Score %d", g.sim.Score()), cx, top+22, colorTextGold)

	left := int(x) + 30
	valueRight := int(x) + panelWidth - 30
	for i, l := range lines {
		ly := top + 54 + i*(hudLineHeight+4)
		drawText(screen, l.label, left, ly, colorTextDim)
		vw := text.BoundString(basicfont.Face7x13, l.value).Dx()
		drawText(screen, l.value, valueRight-vw, ly, colorText)
	}

	drawCenteredText(screen, "Press R to restart", cx, int(y)+panelHeight-28, colorText)
}

// drawPaused draws the pause overlay
func drawPaused(screen *ebiten.Image) {
	drawShade(screen)
	b := screen.Bounds()
	drawCenteredText(screen, "PAUSED", b.Dx()/2, b.Dy()/2-16, colorText)
	drawCenteredText(screen, "P resume  R restart  M mute  F1 hitboxes  F2 autopilot  F3 grid  F4 stats", b.Dx()/2, b.Dy()/2+4, colorTextDim)
}
