package core

import "testing"

func TestOppositePairs(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if d.Opposite() != want {
			t.Errorf("%v.Opposite(): expected %v, got %v", d, want, d.Opposite())
		}
	}
}

func TestTranslate(t *testing.T) {
	p := Position{Row: 5, Col: 5}
	cases := []struct {
		dir  Direction
		want Position
	}{
		{DirUp, Position{Row: 4, Col: 5}},
		{DirDown, Position{Row: 6, Col: 5}},
		{DirLeft, Position{Row: 5, Col: 4}},
		{DirRight, Position{Row: 5, Col: 6}},
	}
	for _, tc := range cases {
		if got := p.Translate(tc.dir); got != tc.want {
			t.Errorf("translate %v: expected %v, got %v", tc.dir, tc.want, got)
		}
	}
}

func TestInBounds(t *testing.T) {
	const width, height = 48, 30
	valid := []Position{
		{Row: 0, Col: 0},
		{Row: 0, Col: width - 1},
		{Row: height - 1, Col: 0},
		{Row: height - 1, Col: width - 1},
		{Row: 10, Col: 20},
	}
	for _, p := range valid {
		if !p.InBounds(width, height) {
			t.Errorf("%v must be in bounds", p)
		}
	}
	invalid := []Position{
		{Row: -1, Col: 0},
		{Row: height, Col: 0},
		{Row: 0, Col: -1},
		{Row: 0, Col: width},
	}
	for _, p := range invalid {
		if p.InBounds(width, height) {
			t.Errorf("%v must be out of bounds", p)
		}
	}
}
