package constants

import "time"

// Playfield Dimensions
const (
	// DefaultWidth is the playfield width in logical cells
	DefaultWidth = 48

	// DefaultHeight is the playfield height in logical cells
	DefaultHeight = 30
)

// Snake Parameters
const (
	// InitialSnakeLength is the body length at spawn
	InitialSnakeLength = 3
)

// Scoring and Level Progression
const (
	// FoodPoints is the score awarded per normal food
	FoodPoints = 1

	// BonusPoints is the score awarded for bonus food (5x normal)
	BonusPoints = 5

	// PointsPerLevel advances the speed level every N points
	PointsPerLevel = 5

	// MaxLevel caps the speed progression
	MaxLevel = 6
)

// Bonus Food Parameters
const (
	// BonusSpawnChance is the probability of a bonus spawning after a
	// normal food is eaten
	BonusSpawnChance = 0.08

	// BonusLifetime is how long a bonus stays on the field, converted to
	// ticks at the interval in effect when it spawns
	BonusLifetime = 5 * time.Second
)

// High Score Configuration
const (
	// MaxHighScoreEntries is the capacity of the persisted table
	MaxHighScoreEntries = 10

	// InitialsLength is the number of characters in a table entry name
	InitialsLength = 3
)

// speedLevels maps speed level to tick interval. Level 1 is the slowest.
var speedLevels = [MaxLevel + 1]time.Duration{
	0, // unused, levels are 1-based
	180 * time.Millisecond,
	150 * time.Millisecond,
	130 * time.Millisecond,
	110 * time.Millisecond,
	90 * time.Millisecond,
	70 * time.Millisecond,
}

// TickInterval returns the simulation interval for a speed level.
// Out-of-range levels clamp to the fastest interval.
func TickInterval(level int) time.Duration {
	if level < 1 || level > MaxLevel {
		return speedLevels[MaxLevel]
	}
	return speedLevels[level]
}
