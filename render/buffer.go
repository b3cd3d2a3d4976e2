package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-strike/core"
)

// Cell is one composed terminal cell
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
	Bold bool
}

// Buffer is a compositor for one frame, flushed to the screen in a single pass
type Buffer struct {
	cells  []Cell
	width  int
	height int
	bg     core.RGB
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int, bg core.RGB) *Buffer {
	b := &Buffer{bg: bg}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty background using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: b.bg, Bg: b.bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); out of bounds yields a zero cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set overwrites a cell
func (b *Buffer) Set(x, y int, r rune, fg, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// SetFg draws a glyph keeping the existing background
func (b *Buffer) SetFg(x, y int, r rune, fg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
	c.Bold = false
}

// SetBold marks a cell bold
func (b *Buffer) SetBold(x, y int) {
	if b.inBounds(x, y) {
		b.cells[y*b.width+x].Bold = true
	}
}

// Text writes s starting at (x, y) keeping backgrounds; returns the column after the last rune
func (b *Buffer) Text(x, y int, s string, fg core.RGB) int {
	for _, r := range s {
		b.SetFg(x, y, r, fg)
		x++
	}
	return x
}

// Fill paints a rectangle with a background colour
func (b *Buffer) Fill(x, y, w, h int, bg core.RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, ' ', bg, bg)
		}
	}
}

// Flush writes every cell to the screen
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(ToTcell(c.Fg)).Background(ToTcell(c.Bg)).Bold(c.Bold)
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

// ToTcell converts an RGB value to a true-colour tcell colour
func ToTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
