package engine

import (
	"time"

	"github.com/lixenwraith/snakeclaw/core"
	"github.com/lixenwraith/snakeclaw/score"
)

// FoodView is the renderable state of a food item.
type FoodView struct {
	Position core.Position
	Symbol   string
}

// BonusView is the renderable state of the bonus food.
type BonusView struct {
	Position  core.Position
	Symbol    string
	TicksLeft int
}

// Snapshot is a read-only copy of everything the renderer needs for one
// frame. The renderer is a pure function of it plus layout constants and
// must never reach back into the engine.
type Snapshot struct {
	State  core.GameState
	Width  int
	Height int

	Snake     []core.Position
	Direction core.Direction
	Food      *FoodView
	Bonus     *BonusView

	Score     int
	BestScore int
	Level     int

	// TickInterval is the speed the driver should pace ticks at
	TickInterval time.Duration

	MenuIndex int

	Initials       string
	InitialsCursor int

	// TopScores backs the high-score screen
	TopScores []score.Entry
}

// Snapshot captures the current session for rendering.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		State:          e.state,
		Width:          e.width,
		Height:         e.height,
		Score:          e.score,
		BestScore:      e.bestScore(),
		Level:          e.level,
		TickInterval:   e.TickInterval(),
		MenuIndex:      e.menuIndex,
		Initials:       string(e.initials),
		InitialsCursor: e.initialsCursor,
		TopScores:      e.scores.Top(e.scores.Len()),
	}
	if e.snake != nil {
		snap.Snake = e.snake.Body()
		snap.Direction = e.snake.Direction()
	}
	if e.food != nil && e.food.Placed() {
		snap.Food = &FoodView{Position: e.food.Position(), Symbol: e.food.Symbol()}
	}
	if e.bonus != nil {
		snap.Bonus = &BonusView{
			Position:  e.bonus.Position(),
			Symbol:    e.bonus.Symbol(),
			TicksLeft: e.bonus.TicksLeft(),
		}
	}
	return snap
}
