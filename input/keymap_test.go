package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeclaw/core"
)

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestTranslateKeys(t *testing.T) {
	cases := []struct {
		name string
		ev   tcell.Event
		want core.Action
	}{
		{"arrow up", keyEvent(tcell.KeyUp, 0), core.ActionMoveUp},
		{"arrow down", keyEvent(tcell.KeyDown, 0), core.ActionMoveDown},
		{"arrow left", keyEvent(tcell.KeyLeft, 0), core.ActionMoveLeft},
		{"arrow right", keyEvent(tcell.KeyRight, 0), core.ActionMoveRight},
		{"w", keyEvent(tcell.KeyRune, 'w'), core.ActionMoveUp},
		{"W", keyEvent(tcell.KeyRune, 'W'), core.ActionMoveUp},
		{"s", keyEvent(tcell.KeyRune, 's'), core.ActionMoveDown},
		{"a", keyEvent(tcell.KeyRune, 'a'), core.ActionMoveLeft},
		{"d", keyEvent(tcell.KeyRune, 'd'), core.ActionMoveRight},
		{"p", keyEvent(tcell.KeyRune, 'p'), core.ActionPause},
		{"m", keyEvent(tcell.KeyRune, 'm'), core.ActionMenu},
		{"r", keyEvent(tcell.KeyRune, 'r'), core.ActionRestart},
		{"q", keyEvent(tcell.KeyRune, 'q'), core.ActionQuit},
		{"space", keyEvent(tcell.KeyRune, ' '), core.ActionConfirm},
		{"enter", keyEvent(tcell.KeyEnter, 0), core.ActionConfirm},
		{"escape", keyEvent(tcell.KeyEscape, 0), core.ActionCancel},
		{"ctrl-c", keyEvent(tcell.KeyCtrlC, 0), core.ActionQuit},
		{"unbound rune", keyEvent(tcell.KeyRune, 'z'), core.ActionNone},
		{"unbound key", keyEvent(tcell.KeyF1, 0), core.ActionNone},
	}
	for _, tc := range cases {
		if got := Translate(tc.ev); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestTranslateNonKeyEvent(t *testing.T) {
	if got := Translate(tcell.NewEventResize(80, 24)); got != core.ActionNone {
		t.Errorf("resize events carry no action, got %v", got)
	}
}
