package engine

import (
	"github.com/lixenwraith/snakeclaw/constants"
	"github.com/lixenwraith/snakeclaw/core"
)

// TickOutcome reports what happened during one simulation step so the
// driver can trigger sounds without inspecting the session.
type TickOutcome struct {
	AteFood   bool
	AteBonus  bool
	LeveledUp bool
	Died      bool
	Won       bool
}

// Tick advances the simulation by one step. Outside the playing state
// it is a no-op; the engine prevents out-of-state advancement by
// construction rather than reporting it.
func (e *Engine) Tick() TickOutcome {
	var out TickOutcome
	if e.state != core.StatePlaying || e.snake == nil {
		return out
	}

	// Collision is evaluated against the prospective head before any
	// move is committed.
	next := e.snake.PeekNextHead()
	if e.snake.WouldCollide(next, e.width, e.height) {
		out.Died = true
		e.endGame()
		return out
	}

	e.snake.Advance()
	head := e.snake.Head()

	if e.food.Eaten(head) {
		out.AteFood = true
		e.snake.Grow(1)
		e.score += constants.FoodPoints
		occupied := e.snake.Body()
		if e.bonus != nil && e.bonus.Placed() {
			occupied = append(occupied, e.bonus.Position())
		}
		if !e.food.Place(e.width, e.height, occupied, e.rng) {
			// No free cell left: the board is won
			out.Won = true
			e.endGame()
			return out
		}
		e.maybeSpawnBonus()
	}

	if e.bonus != nil {
		if e.bonus.Eaten(head) {
			out.AteBonus = true
			e.score += constants.BonusPoints
			e.bonus = nil
		} else if e.bonus.CountDown() {
			// Expired unclaimed, removed without scoring
			e.bonus = nil
		}
	}

	if lvl := e.levelForScore(); lvl != e.level {
		e.level = lvl
		out.LeveledUp = true
	}
	return out
}

func (e *Engine) levelForScore() int {
	lvl := 1 + e.score/constants.PointsPerLevel
	if lvl > constants.MaxLevel {
		lvl = constants.MaxLevel
	}
	return lvl
}

// maybeSpawnBonus rolls the bonus chance after a normal food is eaten.
// Only one bonus may be active; its lifetime is fixed in ticks at the
// interval in effect when it spawns.
func (e *Engine) maybeSpawnBonus() {
	if e.bonus != nil {
		return
	}
	if e.rng.Float64() >= constants.BonusSpawnChance {
		return
	}
	lifetime := int(constants.BonusLifetime / e.TickInterval())
	if lifetime < 1 {
		lifetime = 1
	}
	e.bonus = SpawnBonus(e.width, e.height, e.occupiedWithFood(), lifetime, e.rng)
}
