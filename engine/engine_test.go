package engine

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/snakeclaw/core"
	"github.com/lixenwraith/snakeclaw/score"
)

func newTestEngine(t *testing.T, width, height int) *Engine {
	t.Helper()
	store := score.NewStore(filepath.Join(t.TempDir(), "highscores.json"), zerolog.Nop())
	return New(width, height, store, rand.New(rand.NewSource(7)))
}

// startGame drives the engine from the menu into a fresh session.
func startGame(t *testing.T, e *Engine) {
	t.Helper()
	e.HandleInput(core.ActionConfirm)
	if e.State() != core.StatePlaying {
		t.Fatalf("expected playing after menu start, got %v", e.State())
	}
}

func TestEngineStartsInMenu(t *testing.T) {
	e := newTestEngine(t, 48, 30)
	if e.State() != core.StateMenu {
		t.Errorf("expected menu, got %v", e.State())
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	e := newTestEngine(t, 48, 30)
	if e.menuIndex != 0 {
		t.Fatalf("menu cursor must start at 0, got %d", e.menuIndex)
	}
	e.HandleInput(core.ActionMoveDown)
	if e.menuIndex != 1 {
		t.Errorf("expected cursor 1, got %d", e.menuIndex)
	}
	e.HandleInput(core.ActionMoveUp)
	e.HandleInput(core.ActionMoveUp)
	if e.menuIndex != 3 {
		t.Errorf("cursor must wrap to last item, got %d", e.menuIndex)
	}
}

func TestMenuSelections(t *testing.T) {
	cases := []struct {
		index int
		want  core.GameState
	}{
		{0, core.StatePlaying},
		{1, core.StateHighScores},
		{2, core.StateHelp},
		{3, core.StateQuit},
	}
	for _, tc := range cases {
		e := newTestEngine(t, 48, 30)
		for i := 0; i < tc.index; i++ {
			e.HandleInput(core.ActionMoveDown)
		}
		e.HandleInput(core.ActionConfirm)
		if e.State() != tc.want {
			t.Errorf("menu item %d: expected %v, got %v", tc.index, tc.want, e.State())
		}
	}
}

func TestStartResetsSession(t *testing.T) {
	e := newTestEngine(t, 48, 30)
	startGame(t, e)

	if e.snake.Len() != 3 {
		t.Errorf("expected snake length 3, got %d", e.snake.Len())
	}
	if e.snake.Direction() != core.DirRight {
		t.Errorf("expected snake facing right, got %v", e.snake.Direction())
	}
	if e.Score() != 0 || e.Level() != 1 {
		t.Errorf("expected score 0 level 1, got %d/%d", e.Score(), e.Level())
	}
	if !e.food.Placed() {
		t.Error("food must be placed on game start")
	}
	if e.snake.Occupies(e.food.Position()) {
		t.Error("food must not be placed on the snake")
	}
}

func TestPauseToggle(t *testing.T) {
	e := newTestEngine(t, 48, 30)
	startGame(t, e)

	e.HandleInput(core.ActionPause)
	if e.State() != core.StatePaused {
		t.Fatalf("expected paused, got %v", e.State())
	}
	e.HandleInput(core.ActionPause)
	if e.State() != core.StatePlaying {
		t.Errorf("expected playing after unpause, got %v", e.State())
	}
}

func TestQuitHonoredFromEveryState(t *testing.T) {
	states := []func(e *Engine){
		func(e *Engine) {}, // menu
		func(e *Engine) { e.HandleInput(core.ActionConfirm) }, // playing
		func(e *Engine) {
			e.HandleInput(core.ActionConfirm)
			e.HandleInput(core.ActionPause)
		}, // paused
		func(e *Engine) {
			e.HandleInput(core.ActionMoveDown)
			e.HandleInput(core.ActionMoveDown)
			e.HandleInput(core.ActionConfirm)
		}, // help
	}
	for i, setup := range states {
		e := newTestEngine(t, 48, 30)
		setup(e)
		e.HandleInput(core.ActionQuit)
		if e.State() != core.StateQuit {
			t.Errorf("case %d: quit not honored from %v", i, e.State())
		}
	}
}

func TestMenuActionReturnsToMenu(t *testing.T) {
	e := newTestEngine(t, 48, 30)
	startGame(t, e)
	e.HandleInput(core.ActionMoveDown) // move the snake, stays playing
	if e.State() != core.StatePlaying {
		t.Fatalf("directional action must not change state, got %v", e.State())
	}

	e.HandleInput(core.ActionMenu)
	if e.State() != core.StateMenu {
		t.Errorf("expected menu, got %v", e.State())
	}
	if e.menuIndex != 0 {
		t.Errorf("menu cursor must reset to 0, got %d", e.menuIndex)
	}
}

func TestOverlayAnyKeyReturnsToMenu(t *testing.T) {
	e := newTestEngine(t, 48, 30)
	e.HandleInput(core.ActionMoveDown)
	e.HandleInput(core.ActionConfirm)
	if e.State() != core.StateHighScores {
		t.Fatalf("expected high scores, got %v", e.State())
	}
	e.HandleInput(core.ActionMoveDown)
	if e.State() != core.StateMenu {
		t.Errorf("any key must leave the overlay, got %v", e.State())
	}
}

func TestGameOverRestart(t *testing.T) {
	e := newTestEngine(t, 48, 30)
	e.state = core.StateGameOver
	e.HandleInput(core.ActionRestart)
	if e.State() != core.StatePlaying {
		t.Errorf("expected playing after restart, got %v", e.State())
	}
	if e.Score() != 0 || e.Level() != 1 || e.snake.Len() != 3 {
		t.Error("restart must fully reset the session")
	}
}

func TestInitialsCycling(t *testing.T) {
	e := newTestEngine(t, 48, 30)
	e.state = core.StateEnterInitials
	e.resetInitials()

	// From the '-' placeholder, up enters the alphabet at 'A'
	e.HandleInput(core.ActionMoveUp)
	if e.initials[0] != 'A' {
		t.Fatalf("expected 'A', got %q", e.initials[0])
	}

	// Buffer "A--", cursor 0, two ups: slot 0 becomes 'C'
	e.HandleInput(core.ActionMoveUp)
	e.HandleInput(core.ActionMoveUp)
	if e.initials[0] != 'C' {
		t.Errorf("expected 'C', got %q", e.initials[0])
	}

	// Down cycles back
	e.HandleInput(core.ActionMoveDown)
	if e.initials[0] != 'B' {
		t.Errorf("expected 'B', got %q", e.initials[0])
	}
}

func TestInitialsCyclingWraps(t *testing.T) {
	e := newTestEngine(t, 48, 30)
	e.state = core.StateEnterInitials
	e.resetInitials()

	e.initials[0] = 'Z'
	e.HandleInput(core.ActionMoveUp)
	if e.initials[0] != ' ' {
		t.Errorf("up from 'Z' must reach space, got %q", e.initials[0])
	}
	e.HandleInput(core.ActionMoveUp)
	if e.initials[0] != 'A' {
		t.Errorf("up from space must wrap to 'A', got %q", e.initials[0])
	}
	e.HandleInput(core.ActionMoveDown)
	if e.initials[0] != ' ' {
		t.Errorf("down from 'A' must wrap to space, got %q", e.initials[0])
	}
}

func TestInitialsCursorClamps(t *testing.T) {
	e := newTestEngine(t, 48, 30)
	e.state = core.StateEnterInitials
	e.resetInitials()

	e.HandleInput(core.ActionMoveLeft)
	if e.initialsCursor != 0 {
		t.Errorf("cursor must clamp at 0, got %d", e.initialsCursor)
	}
	for i := 0; i < 5; i++ {
		e.HandleInput(core.ActionMoveRight)
	}
	if e.initialsCursor != 2 {
		t.Errorf("cursor must clamp at 2, got %d", e.initialsCursor)
	}
}

func TestInitialsConfirmRecordsScore(t *testing.T) {
	e := newTestEngine(t, 48, 30)
	e.score = 12
	e.state = core.StateEnterInitials
	e.resetInitials()

	e.HandleInput(core.ActionMoveUp) // slot 0 -> 'A'
	e.HandleInput(core.ActionConfirm)

	if e.State() != core.StateGameOver {
		t.Fatalf("expected game over after confirm, got %v", e.State())
	}
	top := e.scores.Top(1)
	if len(top) != 1 || top[0].Initials != "A--" || top[0].Score != 12 {
		t.Errorf("unexpected stored entry: %+v", top)
	}
}

func TestInitialsCancelRecordsDefault(t *testing.T) {
	e := newTestEngine(t, 48, 30)
	e.score = 7
	e.state = core.StateEnterInitials
	e.resetInitials()

	e.HandleInput(core.ActionCancel)
	if e.State() != core.StateGameOver {
		t.Fatalf("expected game over after cancel, got %v", e.State())
	}
	top := e.scores.Top(1)
	if len(top) != 1 || top[0].Initials != "---" || top[0].Score != 7 {
		t.Errorf("unexpected stored entry: %+v", top)
	}
}

func TestInitialsDirectionalDoesNotLeaveState(t *testing.T) {
	e := newTestEngine(t, 48, 30)
	e.state = core.StateEnterInitials
	e.resetInitials()

	for _, a := range []core.Action{core.ActionMoveUp, core.ActionMoveDown, core.ActionMoveLeft, core.ActionMoveRight} {
		e.HandleInput(a)
		if e.State() != core.StateEnterInitials {
			t.Fatalf("action %v must stay in initials entry, got %v", a, e.State())
		}
	}
}
