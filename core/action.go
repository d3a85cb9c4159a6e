package core

// Action is a semantic input event. The input layer translates raw key
// codes into these; the engine never sees key codes.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionPause
	ActionMenu
	ActionConfirm
	ActionCancel
	ActionRestart
	ActionQuit
)

// MoveDirection returns the direction for a movement action and whether
// the action is a movement at all.
func (a Action) MoveDirection() (Direction, bool) {
	switch a {
	case ActionMoveUp:
		return DirUp, true
	case ActionMoveDown:
		return DirDown, true
	case ActionMoveLeft:
		return DirLeft, true
	case ActionMoveRight:
		return DirRight, true
	}
	return 0, false
}

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveUp:
		return "move_up"
	case ActionMoveDown:
		return "move_down"
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionPause:
		return "pause"
	case ActionMenu:
		return "menu"
	case ActionConfirm:
		return "confirm"
	case ActionCancel:
		return "cancel"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	}
	return "unknown"
}
