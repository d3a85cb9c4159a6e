package engine

import (
	"math/rand"

	"github.com/lixenwraith/snakeclaw/constants"
	"github.com/lixenwraith/snakeclaw/core"
)

// Food occupies a single free cell until eaten. Each placement picks a
// fresh glyph from the rotating symbol set.
type Food struct {
	pos    core.Position
	symbol string
	placed bool
}

// Place moves the food to a uniformly random cell not in occupied.
// It returns false and leaves the food unplaced when no free cell
// exists, which the engine treats as the board being won.
func (f *Food) Place(width, height int, occupied []core.Position, rng *rand.Rand) bool {
	taken := make(map[core.Position]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	free := make([]core.Position, 0, width*height-len(taken))
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			p := core.Position{Row: row, Col: col}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		f.placed = false
		return false
	}

	f.pos = free[rng.Intn(len(free))]
	f.symbol = constants.FoodSymbols[rng.Intn(len(constants.FoodSymbols))]
	f.placed = true
	return true
}

// Position returns the current cell. Only meaningful while placed.
func (f *Food) Position() core.Position {
	return f.pos
}

// Symbol returns the glyph chosen at the last placement.
func (f *Food) Symbol() string {
	return f.symbol
}

// Placed reports whether the food currently occupies a cell.
func (f *Food) Placed() bool {
	return f.placed
}

// Eaten reports whether head sits on the food.
func (f *Food) Eaten(head core.Position) bool {
	return f.placed && f.pos == head
}

// BonusFood is a time-limited food worth extra points. At most one is
// active at a time; it vanishes when its tick budget runs out.
type BonusFood struct {
	Food
	ticksLeft int
}

// SpawnBonus places a bonus food on a free cell with the given lifetime
// in ticks. It returns nil when no free cell exists.
func SpawnBonus(width, height int, occupied []core.Position, lifetimeTicks int, rng *rand.Rand) *BonusFood {
	b := &BonusFood{ticksLeft: lifetimeTicks}
	if !b.Place(width, height, occupied, rng) {
		return nil
	}
	b.symbol = constants.BonusFoodSymbol
	return b
}

// CountDown burns one tick of lifetime and reports whether the bonus
// has expired.
func (b *BonusFood) CountDown() bool {
	b.ticksLeft--
	return b.ticksLeft <= 0
}

// TicksLeft returns the remaining lifetime in ticks.
func (b *BonusFood) TicksLeft() int {
	return b.ticksLeft
}
