// Package input translates raw tcell key events into the engine's
// semantic actions. The engine never sees key codes.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeclaw/core"
)

// runeActions maps printable keys to actions. Letters are accepted in
// both cases.
var runeActions = map[rune]core.Action{
	'w': core.ActionMoveUp,
	'W': core.ActionMoveUp,
	's': core.ActionMoveDown,
	'S': core.ActionMoveDown,
	'a': core.ActionMoveLeft,
	'A': core.ActionMoveLeft,
	'd': core.ActionMoveRight,
	'D': core.ActionMoveRight,
	'p': core.ActionPause,
	'P': core.ActionPause,
	'm': core.ActionMenu,
	'M': core.ActionMenu,
	'r': core.ActionRestart,
	'R': core.ActionRestart,
	'q': core.ActionQuit,
	'Q': core.ActionQuit,
	' ': core.ActionConfirm,
}

// Translate converts a terminal event into an action. Events that carry
// no game meaning translate to ActionNone.
func Translate(ev tcell.Event) core.Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return core.ActionNone
	}

	switch key.Key() {
	case tcell.KeyUp:
		return core.ActionMoveUp
	case tcell.KeyDown:
		return core.ActionMoveDown
	case tcell.KeyLeft:
		return core.ActionMoveLeft
	case tcell.KeyRight:
		return core.ActionMoveRight
	case tcell.KeyEnter:
		return core.ActionConfirm
	case tcell.KeyEscape:
		return core.ActionCancel
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		if a, ok := runeActions[key.Rune()]; ok {
			return a
		}
	}
	return core.ActionNone
}
