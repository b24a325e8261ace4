package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"slimesurvivors/game"
)

// hudRows is the number of terminal rows reserved above the arena
const hudRows = 2

var (
	styleDefault  = tcell.StyleDefault
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorDarkOliveGreen)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleHurt     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBullet   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleOrb      = tcell.StyleDefault.Foreground(tcell.ColorDeepSkyBlue)
	styleDying    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGold     = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleHealthOK = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHealthLo = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// enemyGlyphs maps each kind to its character and style
var enemyGlyphs = map[game.EnemyKind]struct {
	ch    rune
	style tcell.Style
}{
	game.EnemyKindBasic:  {'o', tcell.StyleDefault.Foreground(tcell.ColorLime)},
	game.EnemyKindRanged: {'x', tcell.StyleDefault.Foreground(tcell.ColorFuchsia)},
	game.EnemyKindTank:   {'O', tcell.StyleDefault.Foreground(tcell.ColorOrange)},
}

// projection maps world coordinates onto the terminal grid below the HUD
type projection struct {
	bounds     game.Vec2
	cols, rows int
}

// cell converts a world position to a terminal cell inside the border
func (p projection) cell(pos game.Vec2) (int, int) {
	innerCols := max(1, p.cols-2)
	innerRows := max(1, p.rows-hudRows-2)
	x := int(pos.X / p.bounds.X * float64(innerCols))
	y := int(pos.Y / p.bounds.Y * float64(innerRows))
	x = max(0, min(x, innerCols-1))
	y = max(0, min(y, innerRows-1))
	return x + 1, y + hudRows + 1
}

// drawText writes a string starting at (x, y)
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawCentered writes a string centered on the screen width
func drawCentered(s tcell.Screen, y int, style tcell.Style, text string) {
	w, _ := s.Size()
	drawText(s, (w-len([]rune(text)))/2, y, style, text)
}

// drawBox draws a border rectangle
func drawBox(s tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, tcell.RuneHLine, nil, style)
		s.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, tcell.RuneVLine, nil, style)
		s.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	s.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	s.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	s.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

// fillBox clears a rectangle
func fillBox(s tcell.Screen, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.SetContent(x, y, ' ', nil, styleDefault)
		}
	}
}

// formatSurvived renders a duration as mm:ss
func formatSurvived(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// draw renders one frame
func (t *terminal) draw() {
	s := t.screen
	s.Clear()
	cols, rows := s.Size()
	proj := projection{bounds: t.sim.Bounds(), cols: cols, rows: rows}

	drawBox(s, 0, hudRows, cols-1, rows-1, styleBorder)
	t.drawHUD(cols)

	for _, pk := range t.sim.Pickups() {
		x, y := proj.cell(pk.Pos)
		s.SetContent(x, y, '◆', nil, styleOrb)
	}
	for _, e := range t.sim.Enemies() {
		x, y := proj.cell(e.Pos)
		glyph := enemyGlyphs[e.Kind]
		switch {
		case e.State == game.EnemyDying:
			s.SetContent(x, y, '*', nil, styleDying)
		case e.Hurt():
			s.SetContent(x, y, glyph.ch, nil, glyph.style.Reverse(true))
		default:
			s.SetContent(x, y, glyph.ch, nil, glyph.style)
		}
	}
	for _, p := range t.sim.Projectiles() {
		x, y := proj.cell(p.Pos)
		s.SetContent(x, y, '·', nil, styleBullet)
	}

	p := t.sim.Player()
	x, y := proj.cell(p.Pos)
	style := stylePlayer
	if p.HurtTicks > 0 {
		style = styleHurt
	}
	s.SetContent(x, y, '@', nil, style)

	switch {
	case t.sim.GameOver():
		t.drawGameOver(cols, rows)
	case t.sim.RewardPending():
		t.drawRewards(cols, rows)
	case t.clock.Paused():
		drawCentered(s, rows/2, styleGold, " PAUSED  p resume  r restart  q quit ")
	}

	s.Show()
}

// drawHUD renders the status lines above the arena
func (t *terminal) drawHUD(cols int) {
	p := t.sim.Player()
	stats := t.sim.Stats()

	hp := styleHealthOK
	if p.Health*4 <= p.MaxHealth {
		hp = styleHealthLo
	}
	drawText(t.screen, 0, 0, hp, fmt.Sprintf("HP %d/%d", p.Health, p.MaxHealth))
	drawText(t.screen, 14, 0, styleDefault, fmt.Sprintf("LV %d  EXP %d/%d", p.Level, p.Experience, p.ExpToNext))

	right := fmt.Sprintf("%s  kills %d", formatSurvived(t.sim.Survived()), stats.EnemiesKilled)
	drawText(t.screen, cols-len(right), 0, styleDefault, right)

	help := "wasd/hjkl move  1-3 reward  p/esc pause  r restart  m mute  F2 autopilot  q quit"
	if t.autopilot {
		help = "[AUTO] " + help
	}
	drawText(t.screen, 0, 1, styleDim, help)
}

// drawRewards renders the level-up choice list
func (t *terminal) drawRewards(cols, rows int) {
	rewards := t.sim.PendingRewards()
	height := len(rewards) + 4
	x0, x1 := cols/2-24, cols/2+24
	y0 := rows/2 - height/2
	y1 := y0 + height - 1
	fillBox(t.screen, x0, y0, x1, y1)
	drawBox(t.screen, x0, y0, x1, y1, styleGold)

	drawCentered(t.screen, y0+1, styleGold, fmt.Sprintf("LEVEL %d! Choose a reward", t.sim.Player().Level))
	for i, r := range rewards {
		drawText(t.screen, x0+2, y0+3+i, styleDefault, fmt.Sprintf("%d) %s %s: %s", i+1, r.Icon, r.Name, r.Description))
	}
}

// drawGameOver renders the end-of-run panel
func (t *terminal) drawGameOver(cols, rows int) {
	p := t.sim.Player()
	stats := t.sim.Stats()
	lines := []string{
		fmt.Sprintf("Score          %d", t.sim.Score()),
		fmt.Sprintf("Time survived  %s", formatSurvived(t.sim.Survived())),
		fmt.Sprintf("Level reached  %d", p.Level),
		fmt.Sprintf("Enemies killed %d", stats.EnemiesKilled),
		fmt.Sprintf("Bullets fired  %d", stats.BulletsFired),
		fmt.Sprintf("Accuracy       %.1f%%", stats.Accuracy()*100),
		fmt.Sprintf("Damage taken   %d", stats.DamageTaken),
	}

	height := len(lines) + 6
	x0, x1 := cols/2-18, cols/2+18
	y0 := rows/2 - height/2
	y1 := y0 + height - 1
	fillBox(t.screen, x0, y0, x1, y1)
	drawBox(t.screen, x0, y0, x1, y1, styleHealthLo)

	drawCentered(t.screen, y0+1, styleHealthLo, "GAME OVER")
	for i, l := range lines {
		drawText(t.screen, x0+3, y0+3+i, styleDefault, l)
	}
	drawCentered(t.screen, y1-1, styleDim, "r restart  q quit")
}
