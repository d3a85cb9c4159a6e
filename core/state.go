package core

// GameState is the engine's top-level mode. Exactly one is active.
type GameState uint8

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateEnterInitials
	StateHelp
	StateHighScores
	StateQuit
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateEnterInitials:
		return "enter_initials"
	case StateHelp:
		return "help"
	case StateHighScores:
		return "high_scores"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}
