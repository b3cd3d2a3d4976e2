package render

import (
	"math"

	"github.com/lixenwraith/neon-strike/core"
)

// Arrows by octant, clockwise from east; world y grows downward like the screen
var arrowGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Vanguard points along its velocity
var wedgeGlyphs = [4]rune{'▶', '▼', '◀', '▲'}

// Titan corners cycle as it spins
var spinGlyphs = [4]rune{'◢', '◣', '◤', '◥'}

// sector maps an angle in radians to one of n equal sectors, sector 0 centred on east
func sector(angle float64, n int) int {
	step := 2 * math.Pi / float64(n)
	s := int(math.Round(angle/step)) % n
	if s < 0 {
		s += n
	}
	return s
}

// ArrowGlyph returns the arrow pointing along angle
func ArrowGlyph(angle float64) rune {
	return arrowGlyphs[sector(angle, len(arrowGlyphs))]
}

// EnemyGlyph returns the glyph of an enemy facing heading
func EnemyGlyph(t core.EnemyType, heading float64) rune {
	switch t {
	case core.EnemyVanguard:
		return wedgeGlyphs[sector(heading, len(wedgeGlyphs))]
	case core.EnemyTitan:
		return spinGlyphs[sector(heading, len(spinGlyphs))]
	default:
		return t.Profile().Glyph
	}
}

// ParticleGlyph returns the glyph of a particle by shape and direction of travel
func ParticleGlyph(p *core.Particle) rune {
	switch p.Shape {
	case core.ShapeLine:
		switch sector(p.Vel.Angle(), 8) % 4 {
		case 0:
			return '─'
		case 1:
			return '╲'
		case 2:
			return '│'
		default:
			return '╱'
		}
	case core.ShapeRect:
		return '▪'
	default:
		return '·'
	}
}
