// Package engine holds the snake simulation and the state machine that
// drives it. It has no terminal dependency: an external driver feeds it
// actions, calls Tick at the interval the engine reports, and renders
// the read-only Snapshot.
package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/snakeclaw/constants"
	"github.com/lixenwraith/snakeclaw/core"
	"github.com/lixenwraith/snakeclaw/score"
)

// Engine owns one game session: the current state, the snake, the food,
// the score, and the initials-entry buffer. All mutation is synchronous;
// a single Tick or HandleInput call runs to completion.
type Engine struct {
	width  int
	height int

	state core.GameState
	snake *Snake
	food  *Food
	bonus *BonusFood

	score int
	level int

	scores *score.Store

	menuIndex int

	initials       []rune
	initialsCursor int

	rng *rand.Rand
}

// New creates an engine in the menu state. The store may already hold
// loaded entries; rng drives food placement and bonus spawning.
func New(width, height int, scores *score.Store, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{
		width:  width,
		height: height,
		state:  core.StateMenu,
		level:  1,
		scores: scores,
		rng:    rng,
	}
	e.resetInitials()
	return e
}

// newGame resets the session and enters the playing state: a fresh
// snake facing right in the left-center of the field, food placed off
// the body, score and level back to their starting values.
func (e *Engine) newGame() {
	start := core.Position{Row: e.height / 2, Col: e.width / 4}
	e.snake = NewSnake(start, constants.InitialSnakeLength, core.DirRight)
	e.food = &Food{}
	e.food.Place(e.width, e.height, e.snake.Body(), e.rng)
	e.bonus = nil
	e.score = 0
	e.level = 1
	e.state = core.StatePlaying
}

// State returns the current top-level mode.
func (e *Engine) State() core.GameState {
	return e.state
}

// Score returns the current session score.
func (e *Engine) Score() int {
	return e.score
}

// Level returns the current speed level (1..MaxLevel).
func (e *Engine) Level() int {
	return e.level
}

// TickInterval reports the simulation interval for the current level.
// The engine never schedules ticks itself; the driver consumes this.
func (e *Engine) TickInterval() time.Duration {
	return constants.TickInterval(e.level)
}

// bestScore is the figure shown as "Hi" in the HUD: the better of the
// persisted best and the score of the game in progress.
func (e *Engine) bestScore() int {
	if e.score > e.scores.Best() {
		return e.score
	}
	return e.scores.Best()
}

// endGame routes the death (or win) transition: qualifying scores go
// through initials entry, everything else straight to game over.
func (e *Engine) endGame() {
	if e.scores.Qualifies(e.score) {
		e.resetInitials()
		e.state = core.StateEnterInitials
		return
	}
	e.state = core.StateGameOver
}

func (e *Engine) resetInitials() {
	e.initials = []rune{'-', '-', '-'}
	e.initialsCursor = 0
}

// occupiedWithFood lists every cell a new bonus must avoid.
func (e *Engine) occupiedWithFood() []core.Position {
	occ := e.snake.Body()
	if e.food != nil && e.food.Placed() {
		occ = append(occ, e.food.Position())
	}
	return occ
}
