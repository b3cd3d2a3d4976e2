package render

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
	"github.com/lixenwraith/neon-strike/store"
)

var panelBg = core.RGB{R: 0, G: 0, B: 0}

// line is one centred row of an overlay panel
type line struct {
	text  string
	color core.RGB
	bold  bool
}

// drawPanel draws a bordered box sized to its lines, centred on screen
func (r *Renderer) drawPanel(border core.RGB, lines []line) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l.text))
	}
	w := min(inner+6, r.vp.Cols)
	h := min(len(lines)+4, r.vp.Rows)
	x0 := (r.vp.Cols - w) / 2
	y0 := (r.vp.Rows - h) / 2

	r.buf.Fill(x0, y0, w, h, panelBg)
	for x := x0 + 1; x < x0+w-1; x++ {
		r.buf.SetFg(x, y0, '─', border)
		r.buf.SetFg(x, y0+h-1, '─', border)
	}
	for y := y0 + 1; y < y0+h-1; y++ {
		r.buf.SetFg(x0, y, '│', border)
		r.buf.SetFg(x0+w-1, y, '│', border)
	}
	r.buf.SetFg(x0, y0, '╭', border)
	r.buf.SetFg(x0+w-1, y0, '╮', border)
	r.buf.SetFg(x0, y0+h-1, '╰', border)
	r.buf.SetFg(x0+w-1, y0+h-1, '╯', border)

	for i, l := range lines {
		y := y0 + 2 + i
		x := x0 + (w-utf8.RuneCountInString(l.text))/2
		end := r.buf.Text(x, y, l.text, l.color)
		if l.bold {
			for bx := x; bx < end; bx++ {
				r.buf.SetBold(bx, y)
			}
		}
	}
}

func historyLines(history []store.Record) []line {
	if len(history) == 0 {
		return []line{{text: "no runs recorded", color: core.RGBDimText}}
	}
	out := []line{{text: fmt.Sprintf("%-10s %6s %6s  %-10s", "SCORE", "KILLS", "TIME", "DATE"), color: core.RGBDimText}}
	for _, rec := range history {
		out = append(out, line{
			text: fmt.Sprintf("%-10s %6d %6s  %-10s",
				FormatScore(rec.Score), rec.Kills, FormatClock(time.Duration(rec.Time)*time.Second), rec.Date.Local().Format("2006-01-02")),
			color: core.RGBWhite,
		})
	}
	return out
}

// drawStart shows title, controls, high score and recent runs
func (r *Renderer) drawStart(w *engine.World, s Scene) {
	lines := []line{
		{text: "N E O N   S T R I K E", color: core.RGBNeonCyan, bold: true},
		{text: "cybernetic protocol", color: core.RGBNeonPink},
		{},
		{text: "move  WASD / arrows / hjkl", color: core.RGBWhite},
		{text: "aim   mouse        fire  click or space", color: core.RGBWhite},
		{text: "collect cyan cores to evolve, green packs to repair", color: core.RGBDimText},
		{},
		{text: "HIGH SCORE  " + FormatScore(w.HighScore), color: core.RGBNeonAmber, bold: true},
		{},
	}
	lines = append(lines, historyLines(s.History)...)
	lines = append(lines,
		line{},
		line{text: "[ENTER] start   [C] clear history   [M] mute   [Q] quit", color: core.RGBNeonCyan},
	)
	r.drawPanel(core.RGBNeonCyan, lines)
}

// drawLevelUp lists the offered upgrades keyed 1..n
func (r *Renderer) drawLevelUp(w *engine.World) {
	lines := []line{
		{text: "LEVEL " + strconv.Itoa(w.Player.Level), color: core.RGBNeonViolet, bold: true},
		{text: "select an upgrade", color: core.RGBDimText},
		{},
	}
	for i, kind := range w.Offer {
		info := kind.Info()
		lines = append(lines,
			line{text: fmt.Sprintf("[%d] %s", i+1, info.Title), color: core.RGBNeonCyan, bold: true},
			line{text: info.Desc, color: core.RGBWhite},
		)
	}
	if w.PendingLevelUps > 0 {
		lines = append(lines, line{}, line{text: fmt.Sprintf("+%d more pending", w.PendingLevelUps), color: core.RGBDimText})
	}
	r.drawPanel(core.RGBNeonViolet, lines)
}

// drawGameOver shows the final tally and recent runs
func (r *Renderer) drawGameOver(w *engine.World, s Scene) {
	lines := []line{
		{text: "SIGNAL LOST", color: core.RGBNeonPink, bold: true},
		{},
		{text: "SCORE  " + FormatScore(w.Score), color: core.RGBWhite, bold: true},
		{text: fmt.Sprintf("KILLS  %d    LEVEL  %d    TIME  %s", w.Kills, w.Player.Level, FormatClock(w.Now)), color: core.RGBWhite},
	}
	if w.Score > 0 && w.Score >= w.HighScore {
		lines = append(lines, line{text: "NEW HIGH SCORE", color: core.RGBNeonAmber, bold: true})
	}
	lines = append(lines, line{})
	lines = append(lines, historyLines(s.History)...)
	lines = append(lines,
		line{},
		line{text: "[ENTER] retry   [ESC] menu   [Q] quit", color: core.RGBNeonCyan},
	)
	r.drawPanel(core.RGBNeonPink, lines)
}
