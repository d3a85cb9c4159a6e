package engine

import (
	"github.com/lixenwraith/snakeclaw/core"
)

// Snake is the player body: an ordered list of cells with the head first,
// a movement direction, and a pending-growth counter consumed on advance.
type Snake struct {
	body          []core.Position
	dir           core.Direction
	pendingGrowth int
}

// NewSnake builds a snake with the head at start and the body trailing
// behind it, opposite the facing direction.
func NewSnake(start core.Position, length int, dir core.Direction) *Snake {
	if length < 1 {
		length = 1
	}
	s := &Snake{
		body: make([]core.Position, 0, length),
		dir:  dir,
	}
	s.body = append(s.body, start)
	pos := start
	for i := 1; i < length; i++ {
		pos = pos.Translate(dir.Opposite())
		s.body = append(s.body, pos)
	}
	return s
}

// Head returns the first body cell.
func (s *Snake) Head() core.Position {
	return s.body[0]
}

// Tail returns the last body cell.
func (s *Snake) Tail() core.Position {
	return s.body[len(s.body)-1]
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current facing direction.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Position {
	out := make([]core.Position, len(s.body))
	copy(out, s.body)
	return out
}

// SetDirection changes the facing direction. A 180-degree reversal would
// drive the head into the neck, so the opposite of the current direction
// is silently ignored.
func (s *Snake) SetDirection(d core.Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.dir = d
}

// PeekNextHead returns where the head lands on the next advance without
// mutating any state.
func (s *Snake) PeekNextHead() core.Position {
	return s.body[0].Translate(s.dir)
}

// WouldCollide reports whether moving the head to pos ends the game:
// either pos is outside the width x height grid, or it lands on a body
// cell. The tail cell is excluded when the snake is not growing this
// tick, since that cell is vacated by the same move.
func (s *Snake) WouldCollide(pos core.Position, width, height int) bool {
	if !pos.InBounds(width, height) {
		return true
	}
	check := s.body
	if s.pendingGrowth == 0 {
		check = s.body[:len(s.body)-1]
	}
	for _, seg := range check {
		if seg == pos {
			return true
		}
	}
	return false
}

// Occupies reports whether any body cell equals pos.
func (s *Snake) Occupies(pos core.Position) bool {
	for _, seg := range s.body {
		if seg == pos {
			return true
		}
	}
	return false
}

// Advance commits one movement step: the new head is inserted in front,
// and the tail is dropped unless a pending growth is consumed instead.
// It returns whether net growth occurred.
func (s *Snake) Advance() bool {
	next := s.PeekNextHead()
	s.body = append([]core.Position{next}, s.body...)
	if s.pendingGrowth > 0 {
		s.pendingGrowth--
		return true
	}
	s.body = s.body[:len(s.body)-1]
	return false
}

// Grow schedules n cells of growth to be absorbed by future advances.
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.pendingGrowth += n
	}
}
