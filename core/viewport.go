package core

import (
	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/vmath"
)

// Viewport maps terminal cells to world units
// The arena occupies every row below the HUD; one cell is CellWidth x CellHeight units
type Viewport struct {
	Cols, Rows int
}

// ArenaRows is the number of terminal rows available to the arena
func (v Viewport) ArenaRows() int {
	return max(v.Rows-constants.HUDRows, 1)
}

// ArenaSize returns the arena extent in world units
func (v Viewport) ArenaSize() (width, height float64) {
	return float64(max(v.Cols, 1)) * constants.CellWidth, float64(v.ArenaRows()) * constants.CellHeight
}

// CellToWorld returns the world position at the centre of screen cell (x, y)
func (v Viewport) CellToWorld(x, y int) vmath.Vec2 {
	return vmath.V2(
		(float64(x)+0.5)*constants.CellWidth,
		(float64(y-constants.HUDRows)+0.5)*constants.CellHeight,
	)
}

// WorldToCell returns the screen cell containing world position p
// ok is false when p falls outside the arena rows and columns
func (v Viewport) WorldToCell(p vmath.Vec2) (x, y int, ok bool) {
	fx := p.X / constants.CellWidth
	fy := p.Y / constants.CellHeight
	if fx < 0 || fy < 0 {
		return 0, 0, false
	}
	x = int(fx)
	y = int(fy)
	if x >= v.Cols || y >= v.ArenaRows() {
		return 0, 0, false
	}
	return x, y + constants.HUDRows, true
}
