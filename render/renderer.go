// Package render draws the world, HUD and phase overlays into a tcell screen
// Rendering is read-only with respect to the world
package render

import (
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/store"
	"github.com/lixenwraith/neon-strike/vmath"
)

// Scene is everything a frame needs beyond the world itself
type Scene struct {
	World   *engine.World
	Aim     vmath.Vec2 // Pointer position in world units
	History []store.Record
	Muted   bool
}

// Renderer composes frames into a buffer and flushes them to a screen
type Renderer struct {
	buf *Buffer
	vp  core.Viewport
	// Shake jitter uses its own source so drawing never perturbs simulation randomness
	rng *rand.Rand
}

// NewRenderer creates a renderer; seed drives shake jitter only
func NewRenderer(seed uint64) *Renderer {
	return &Renderer{
		buf: NewBuffer(0, 0, core.RGBBackground),
		rng: rand.New(rand.NewPCG(seed, seed^0x5eed)),
	}
}

// Buffer exposes the last composed frame
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Compose draws the scene into the internal buffer sized cols x rows
func (r *Renderer) Compose(cols, rows int, s Scene) {
	if cw, ch := r.buf.Size(); cw != cols || ch != rows {
		r.buf.Resize(cols, rows)
	} else {
		r.buf.Clear()
	}
	r.vp = core.Viewport{Cols: cols, Rows: rows}

	w := s.World
	if w == nil {
		return
	}

	switch {
	case w.Phase.Is(engine.PhaseStart):
		r.drawGrid(w, vmath.Vec2{})
		r.drawStart(w, s)
	default:
		shake := w.Shake.Offset(r.rng)
		r.drawGrid(w, shake)
		r.drawArena(w, s, shake)
		r.drawHUD(w, s)
		switch {
		case w.Phase.Is(engine.PhaseLevelUp):
			r.drawLevelUp(w)
		case w.Phase.Is(engine.PhaseGameOver):
			r.drawGameOver(w, s)
		}
	}
}

// Draw composes the scene and presents it on the screen
func (r *Renderer) Draw(screen tcell.Screen, s Scene) {
	cols, rows := screen.Size()
	r.Compose(cols, rows, s)
	r.buf.Flush(screen)
	screen.Show()
}
