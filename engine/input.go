package engine

import (
	"github.com/lixenwraith/snakeclaw/constants"
	"github.com/lixenwraith/snakeclaw/core"
)

// initialsAlphabet is the cycling order for one initials slot. The '-'
// placeholder seeded into the buffer is outside the alphabet; cycling
// from it enters at 'A' going up and 'Z' going down.
const initialsAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ "

// HandleInput processes one semantic action. Unrecognized or currently
// meaningless actions are no-ops, never errors. Actions common to all
// states (quit, return to menu) are checked before per-state dispatch.
func (e *Engine) HandleInput(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if e.handleCommon(a) {
		return
	}

	switch e.state {
	case core.StateMenu:
		e.handleMenu(a)
	case core.StatePlaying:
		e.handlePlaying(a)
	case core.StatePaused:
		e.handlePaused(a)
	case core.StateGameOver:
		e.handleGameOver(a)
	case core.StateEnterInitials:
		e.handleInitials(a)
	case core.StateHelp, core.StateHighScores:
		// Any key returns to the menu
		e.toMenu()
	}
}

// handleCommon applies the cross-state precedence rules: quit is honored
// everywhere; menu/cancel shortcuts are honored everywhere except the
// menu itself and initials entry, where those actions carry
// state-specific meaning. Returns true when the action was consumed.
func (e *Engine) handleCommon(a core.Action) bool {
	if a == core.ActionQuit {
		e.state = core.StateQuit
		return true
	}
	if a == core.ActionMenu || a == core.ActionCancel {
		if e.state != core.StateMenu && e.state != core.StateEnterInitials {
			e.toMenu()
			return true
		}
	}
	return false
}

func (e *Engine) toMenu() {
	e.state = core.StateMenu
	e.menuIndex = 0
}

func (e *Engine) handleMenu(a core.Action) {
	switch a {
	case core.ActionMoveUp:
		e.menuIndex = (e.menuIndex - 1 + len(constants.MenuItems)) % len(constants.MenuItems)
	case core.ActionMoveDown:
		e.menuIndex = (e.menuIndex + 1) % len(constants.MenuItems)
	case core.ActionConfirm:
		switch constants.MenuItems[e.menuIndex] {
		case "Start Game":
			e.newGame()
		case "High Scores":
			e.state = core.StateHighScores
		case "Help":
			e.state = core.StateHelp
		case "Quit":
			e.state = core.StateQuit
		}
	}
}

func (e *Engine) handlePlaying(a core.Action) {
	if d, ok := a.MoveDirection(); ok {
		e.snake.SetDirection(d)
		return
	}
	switch a {
	case core.ActionPause:
		e.state = core.StatePaused
	case core.ActionRestart:
		e.newGame()
	}
}

func (e *Engine) handlePaused(a core.Action) {
	switch a {
	case core.ActionPause:
		e.state = core.StatePlaying
	case core.ActionRestart:
		e.newGame()
	}
}

func (e *Engine) handleGameOver(a core.Action) {
	if a == core.ActionRestart || a == core.ActionConfirm {
		e.newGame()
	}
}

// handleInitials drives the 3-slot initials editor: up/down cycle the
// character under the cursor, left/right move the cursor (clamped),
// confirm records the buffer, cancel records the default "---".
func (e *Engine) handleInitials(a core.Action) {
	switch a {
	case core.ActionMoveUp:
		e.cycleInitial(1)
	case core.ActionMoveDown:
		e.cycleInitial(-1)
	case core.ActionMoveLeft:
		if e.initialsCursor > 0 {
			e.initialsCursor--
		}
	case core.ActionMoveRight:
		if e.initialsCursor < constants.InitialsLength-1 {
			e.initialsCursor++
		}
	case core.ActionConfirm:
		e.scores.Insert(string(e.initials), e.score)
		e.state = core.StateGameOver
	case core.ActionCancel, core.ActionMenu:
		e.scores.Insert("---", e.score)
		e.state = core.StateGameOver
	}
}

// cycleInitial steps the character under the cursor through the
// alphabet, wrapping in both directions.
func (e *Engine) cycleInitial(delta int) {
	cur := e.initials[e.initialsCursor]
	idx := -1
	for i, r := range initialsAlphabet {
		if r == cur {
			idx = i
			break
		}
	}
	n := len(initialsAlphabet)
	var next rune
	if idx < 0 {
		// Untouched placeholder: enter the alphabet at either end
		if delta > 0 {
			next = 'A'
		} else {
			next = 'Z'
		}
	} else {
		next = rune(initialsAlphabet[(idx+delta+n)%n])
	}
	e.initials[e.initialsCursor] = next
}
