package render

import (
	"math"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/vmath"
)

// gridLine reports whether the world span [lo, hi) crosses a grid line shifted by offset
func gridLine(lo, hi, offset float64) bool {
	return math.Floor((hi-offset)/constants.GridSpacing) > math.Floor((lo-offset)/constants.GridSpacing)
}

// parallax returns the grid drift for the player's position across the arena
func parallax(w *engine.World) vmath.Vec2 {
	if w.Width <= 0 || w.Height <= 0 {
		return vmath.Vec2{}
	}
	return vmath.V2(
		-(w.Player.Pos.X/w.Width)*constants.GridParallax,
		-(w.Player.Pos.Y/w.Height)*constants.GridParallax,
	)
}

// drawGrid marks grid intersections across the arena rows
func (r *Renderer) drawGrid(w *engine.World, shake vmath.Vec2) {
	off := parallax(w).Add(shake)
	for y := constants.HUDRows; y < r.vp.Rows; y++ {
		wy := float64(y-constants.HUDRows) * constants.CellHeight
		if !gridLine(wy, wy+constants.CellHeight, off.Y) {
			continue
		}
		for x := 0; x < r.vp.Cols; x++ {
			wx := float64(x) * constants.CellWidth
			if gridLine(wx, wx+constants.CellWidth, off.X) {
				r.buf.SetFg(x, y, '+', core.RGBGrid)
			}
		}
	}
}

// plot draws a glyph at the cell containing world position p
func (r *Renderer) plot(p vmath.Vec2, ch rune, fg core.RGB) {
	if x, y, ok := r.vp.WorldToCell(p); ok {
		r.buf.SetFg(x, y, ch, fg)
	}
}

// disc fills every cell whose centre lies inside the circle
func (r *Renderer) disc(center vmath.Vec2, radius float64, ch rune, fg core.RGB) {
	x0 := int(math.Floor((center.X - radius) / constants.CellWidth))
	x1 := int(math.Floor((center.X + radius) / constants.CellWidth))
	y0 := int(math.Floor((center.Y - radius) / constants.CellHeight))
	y1 := int(math.Floor((center.Y + radius) / constants.CellHeight))
	r2 := radius * radius
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			c := r.vp.CellToWorld(cx, cy+constants.HUDRows)
			if vmath.DistSq(c, center) <= r2 {
				r.plot(c, ch, fg)
			}
		}
	}
}

// drawArena draws entities back to front: pickups, particles, enemies, bullets, player
func (r *Renderer) drawArena(w *engine.World, s Scene, shake vmath.Vec2) {
	for _, o := range w.Orbs.Items() {
		ch := '∙'
		if o.Value >= core.EnemyHunter.Profile().Exp {
			ch = '•'
		}
		r.plot(o.Pos.Add(shake), ch, core.RGBNeonCyan)
	}
	for _, p := range w.Packs.Items() {
		r.plot(p.Pos.Add(shake), '✚', core.RGBNeonGreen)
	}

	for i := range w.Particles.Len() {
		p := w.Particles.At(i)
		fg := core.RGBBackground.Blend(p.Color, p.Life)
		r.plot(p.Pos.Add(shake), ParticleGlyph(p), fg)
	}

	for i := range w.Enemies.Len() {
		e := w.Enemies.At(i)
		fg := e.Color
		if e.Flashing(w.Now) {
			fg = core.RGBWhite
		}
		pos := e.Pos.Add(shake)
		if e.Radius > constants.CellWidth {
			r.disc(pos, e.Radius, '░', core.RGBBackground.Blend(fg, 0.45))
		}
		r.plot(pos, EnemyGlyph(e.Type, e.Heading), fg)
	}

	for _, b := range w.EnemyBullets.Items() {
		ch := '•'
		if b.Homing {
			ch = '◉'
		} else if b.Radius > constants.BulletRadius+1 {
			ch = '●'
		}
		r.plot(b.Pos.Add(shake), ch, b.Color)
	}
	for _, b := range w.Bullets.Items() {
		r.plot(b.Pos.Add(shake), '•', b.Color)
	}

	pl := &w.Player
	aim := s.Aim.Sub(pl.Pos)
	r.plot(pl.Pos.Add(shake), ArrowGlyph(aim.Angle()), core.RGBNeonCyan)
	if x, y, ok := r.vp.WorldToCell(pl.Pos.Add(shake)); ok {
		r.buf.SetBold(x, y)
	}
}
