package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/snakeclaw/constants"
	"github.com/lixenwraith/snakeclaw/engine"
)

func (r *Renderer) drawMenu(snap engine.Snapshot) {
	items := constants.MenuItems

	maxItem := 0
	for _, item := range items {
		if n := len([]rune(constants.MenuMarker + item)); n > maxItem {
			maxItem = n
		}
	}
	boxInner := maxItem + 2
	boxW := boxInner + 2

	logoLines := len(constants.GameTitle)
	boxH := len(items) + 2
	totalH := logoLines + 2 + boxH + 2
	startRow := (r.winH - totalH) / 2
	if startRow < 1 {
		startRow = 1
	}

	for i, line := range constants.GameTitle {
		r.drawText(r.centerCol(line), startRow+i, line, styleSnake)
	}
	r.drawText(r.centerCol(constants.GameSubtitle), startRow+logoLines, constants.GameSubtitle, styleTitle)

	menuStart := startRow + logoLines + 2
	boxCol := r.centerCol(strings.Repeat("x", boxW))

	r.drawText(boxCol, menuStart, "╔"+strings.Repeat("═", boxInner)+"╗", styleBorder)
	for i, item := range items {
		marker := constants.MenuSpacer
		style := styleTitle
		if i == snap.MenuIndex {
			marker = constants.MenuMarker
			style = styleHighlight
		}
		label := marker + item
		label += strings.Repeat(" ", boxInner-len([]rune(label)))
		row := menuStart + 1 + i
		r.drawText(boxCol, row, "║", styleBorder)
		r.drawText(boxCol+1, row, label, style)
		r.drawText(boxCol+1+boxInner, row, "║", styleBorder)
	}
	r.drawText(boxCol, menuStart+1+len(items), "╚"+strings.Repeat("═", boxInner)+"╝", styleBorder)

	if snap.BestScore > 0 {
		hs := fmt.Sprintf("★ Best: %d ★", snap.BestScore)
		r.drawText(r.centerCol(hs), menuStart+boxH+1, hs, styleHUD)
	}

	r.drawText(r.centerCol(constants.MenuHint), r.winH-1, constants.MenuHint, styleBorder)
}

func (r *Renderer) drawHighScores(snap engine.Snapshot) {
	banner := []string{
		"╔══════════════════════╗",
		"║    ★ HIGH SCORES ★   ║",
		"╚══════════════════════╝",
	}
	startRow := 2
	for i, line := range banner {
		r.drawText(r.centerCol(line), startRow+i, line, styleHUD)
	}

	if len(snap.TopScores) == 0 {
		msg := "No scores yet — go play!"
		r.drawText(r.centerCol(msg), startRow+5, msg, styleTitle)
	} else {
		header := "  #  NAME   SCORE"
		sep := strings.Repeat("─", len([]rune(header)))
		r.drawText(r.centerCol(header), startRow+4, header, styleBorder)
		r.drawText(r.centerCol(sep), startRow+5, sep, styleBorder)
		for i, e := range snap.TopScores {
			line := fmt.Sprintf(" %2d. %-5s %6d", i+1, e.Initials, e.Score)
			style := styleTitle
			switch {
			case i == 0:
				style = styleSuccess
			case i < 3:
				style = styleHUD
			}
			r.drawText(r.centerCol(line), startRow+6+i, line, style)
		}
	}

	r.drawText(r.centerCol(constants.ReturnHint), r.winH-1, constants.ReturnHint, styleBorder)
}

func (r *Renderer) drawHelp() {
	banner := []string{
		"╔═══════════════════╗",
		"║    ? CONTROLS ?   ║",
		"╚═══════════════════╝",
	}
	for i, line := range banner {
		r.drawText(r.centerCol(line), 2+i, line, styleHUD)
	}
	for i, line := range constants.HelpText {
		style := styleTitle
		for _, prefix := range []string{"Arrow", "P ", "R ", "M ", "Q "} {
			if strings.HasPrefix(line, prefix) {
				style = styleSnake
				break
			}
		}
		r.drawText(r.centerCol(line), 6+i, line, style)
	}
	r.drawText(r.centerCol(constants.ReturnHint), r.winH-1, constants.ReturnHint, styleBorder)
}

func (r *Renderer) drawGameOver(snap engine.Snapshot) {
	r.drawBorder()
	midRow := r.winH/2 - 2
	lines := []string{
		"╔═══════════════════╗",
		"║     GAME OVER     ║",
		"╚═══════════════════╝",
		fmt.Sprintf("  Score: %d   Best: %d", snap.Score, snap.BestScore),
		"",
		"R = restart   M = menu   Q = quit",
	}
	for i, line := range lines {
		style := styleTitle
		if i < 3 {
			style = styleWarning
		}
		r.drawText(r.centerCol(line), midRow+i, line, style)
	}
}

func (r *Renderer) drawEnterInitials(snap engine.Snapshot) {
	r.drawBorder()
	midRow := r.winH/2 - 4

	banner := []string{
		"╔═══════════════════════╗",
		"║    NEW HIGH SCORE!    ║",
		"╚═══════════════════════╝",
	}
	for i, line := range banner {
		r.drawText(r.centerCol(line), midRow+i, line, styleSuccess)
	}

	scoreLine := fmt.Sprintf("Score: %d", snap.Score)
	r.drawText(r.centerCol(scoreLine), midRow+4, scoreLine, styleTitle)

	prompt := "Enter your initials:"
	r.drawText(r.centerCol(prompt), midRow+6, prompt, styleTitle)

	// Slots are spaced 4 columns apart with the cursor marked below
	initials := []rune(snap.Initials)
	displayW := len(initials)*4 - 3
	startCol := r.winW/2 - displayW/2
	for i, ch := range initials {
		col := startCol + i*4
		style := styleSnake
		if i == snap.InitialsCursor {
			style = styleHighlight
		}
		r.screen.SetContent(col, midRow+8, ch, nil, style)
		if i == snap.InitialsCursor {
			r.screen.SetContent(col, midRow+9, '▲', nil, styleHighlight)
		}
	}

	for i, hint := range constants.InitialsHints {
		r.drawText(r.centerCol(hint), midRow+11+i, hint, styleBorder)
	}
}
