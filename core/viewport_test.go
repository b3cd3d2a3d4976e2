package core

import (
	"testing"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/vmath"
)

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Cols: 80, Rows: 24}

	w, h := v.ArenaSize()
	if w != 80*constants.CellWidth || h != float64(24-constants.HUDRows)*constants.CellHeight {
		t.Fatalf("ArenaSize = %f x %f", w, h)
	}

	tests := []struct{ x, y int }{
		{0, constants.HUDRows},
		{79, 23},
		{40, 12},
	}
	for _, test := range tests {
		p := v.CellToWorld(test.x, test.y)
		x, y, ok := v.WorldToCell(p)
		if !ok || x != test.x || y != test.y {
			t.Errorf("cell (%d,%d) -> %v -> (%d,%d,%v)", test.x, test.y, p, x, y, ok)
		}
	}
}

func TestViewportOutside(t *testing.T) {
	v := Viewport{Cols: 10, Rows: 10}
	w, h := v.ArenaSize()

	for _, p := range [][2]float64{{-1, 5}, {5, -1}, {w, 5}, {5, h}} {
		if _, _, ok := v.WorldToCell(vmath.V2(p[0], p[1])); ok {
			t.Errorf("point %v reported inside", p)
		}
	}
}
