// Package render draws engine snapshots onto a tcell screen. It is a
// pure consumer: a frame is a function of the snapshot plus the layout
// constants, and nothing here mutates engine state.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeclaw/constants"
	"github.com/lixenwraith/snakeclaw/core"
	"github.com/lixenwraith/snakeclaw/engine"
)

// Style palette
var (
	styleSnake     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleFood      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBonus     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBorder    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleTitle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHighlight = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleSuccess   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleWarning   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer draws frames for one fixed playfield size. The window is the
// playfield at 2 columns per cell plus a one-cell border, with two HUD
// rows below it.
type Renderer struct {
	screen tcell.Screen

	playW, playH int
	// winW and winH include the border
	winW, winH int
}

// New creates a renderer for a width x height logical playfield.
func New(screen tcell.Screen, width, height int) *Renderer {
	return &Renderer{
		screen: screen,
		playW:  width,
		playH:  height,
		winW:   width*constants.CellWidth + 2,
		winH:   height + 2,
	}
}

// Draw renders one complete frame for the snapshot's state.
func (r *Renderer) Draw(snap engine.Snapshot) {
	r.screen.Clear()
	switch snap.State {
	case core.StateMenu:
		r.drawMenu(snap)
	case core.StatePlaying:
		r.drawPlayFrame(snap, false)
	case core.StatePaused:
		r.drawPlayFrame(snap, true)
	case core.StateGameOver:
		r.drawGameOver(snap)
	case core.StateEnterInitials:
		r.drawEnterInitials(snap)
	case core.StateHighScores:
		r.drawHighScores(snap)
	case core.StateHelp:
		r.drawHelp()
	}
	r.screen.Show()
}

// drawText writes a string left-to-right starting at (x, y). tcell
// ignores out-of-bounds cells, so no clipping is needed here.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// centerCol returns the x that centers text within the window.
func (r *Renderer) centerCol(text string) int {
	w := len([]rune(text))
	x := r.winW/2 - w/2
	if x < 0 {
		x = 0
	}
	return x
}

// cellOrigin maps a logical playfield cell to its top-left screen cell,
// offset past the border.
func cellOrigin(p core.Position) (x, y int) {
	return p.Col*constants.CellWidth + 1, p.Row + 1
}

func (r *Renderer) drawBorder() {
	inner := r.playW * constants.CellWidth
	r.screen.SetContent(0, 0, '┌', nil, styleBorder)
	r.screen.SetContent(inner+1, 0, '┐', nil, styleBorder)
	r.screen.SetContent(0, r.playH+1, '└', nil, styleBorder)
	r.screen.SetContent(inner+1, r.playH+1, '┘', nil, styleBorder)
	for x := 1; x <= inner; x++ {
		r.screen.SetContent(x, 0, '─', nil, styleBorder)
		r.screen.SetContent(x, r.playH+1, '─', nil, styleBorder)
	}
	for y := 1; y <= r.playH; y++ {
		r.screen.SetContent(0, y, '│', nil, styleBorder)
		r.screen.SetContent(inner+1, y, '│', nil, styleBorder)
	}
}

func (r *Renderer) drawSnake(body []core.Position) {
	for _, seg := range body {
		x, y := cellOrigin(seg)
		r.drawText(x, y, constants.SnakeSegment, styleSnake)
	}
}

func (r *Renderer) drawFood(f *engine.FoodView) {
	if f == nil {
		return
	}
	x, y := cellOrigin(f.Position)
	r.drawText(x, y, f.Symbol, styleFood)
}

func (r *Renderer) drawBonus(b *engine.BonusView) {
	if b == nil {
		return
	}
	style := styleBonus
	if b.TicksLeft < 10 {
		style = style.Blink(true)
	}
	x, y := cellOrigin(b.Position)
	r.drawText(x, y, b.Symbol, style)
}

func (r *Renderer) drawHUD(snap engine.Snapshot, paused bool) {
	stats := fmt.Sprintf(" Score: %d  │  Hi: %d  │  Lvl: %d ", snap.Score, snap.BestScore, snap.Level)
	if paused {
		stats += " │  PAUSED"
	}
	r.drawText(r.centerCol(stats), r.playH+2, stats, styleHUD)
	r.drawText(r.centerCol(constants.GameHints), r.playH+3, constants.GameHints, styleBorder)
}

func (r *Renderer) drawPlayFrame(snap engine.Snapshot, paused bool) {
	r.drawBorder()
	r.drawSnake(snap.Snake)
	r.drawFood(snap.Food)
	r.drawBonus(snap.Bonus)
	r.drawHUD(snap, paused)
	if paused {
		text := " PAUSED — P to resume "
		r.drawText(r.centerCol(text), r.winH/2, text, styleHUD)
	}
}
