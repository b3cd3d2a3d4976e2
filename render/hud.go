package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/engine"
)

var (
	hudBg    = core.RGB{R: 12, G: 14, B: 18}
	barEmpty = core.RGB{R: 40, G: 44, B: 52}
)

// BarCells returns how many of width cells a value/max bar fills, clamped to [0, width]
func BarCells(value, maxValue float64, width int) int {
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	n := int(value / maxValue * float64(width))
	return min(max(n, 0), width)
}

// HealthColor returns the health bar colour, red below the low-health ratio
func HealthColor(health, maxHealth float64) core.RGB {
	if maxHealth > 0 && health/maxHealth < constants.LowHealthRatio {
		return core.RGBAlertRed
	}
	return core.RGBNeonCyan
}

// FormatScore renders n with comma thousands separators
func FormatScore(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatClock renders a duration as m:ss
func FormatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// drawHUD fills the reserved top rows: stats line and experience bar
func (r *Renderer) drawHUD(w *engine.World, s Scene) {
	r.buf.Fill(0, 0, r.vp.Cols, constants.HUDRows, hudBg)

	pl := &w.Player
	hpColor := HealthColor(pl.Health, pl.MaxHealth)

	x := r.buf.Text(1, 0, "HP ", core.RGBDimText)
	filled := BarCells(pl.Health, pl.MaxHealth, constants.HealthBarWidth)
	for i := range constants.HealthBarWidth {
		if i < filled {
			r.buf.SetFg(x+i, 0, '█', hpColor)
		} else {
			r.buf.SetFg(x+i, 0, '░', barEmpty)
		}
	}
	x += constants.HealthBarWidth + 1
	x = r.buf.Text(x, 0, fmt.Sprintf("%d/%d", int(pl.Health+0.5), int(pl.MaxHealth)), hpColor)

	fields := []struct {
		label string
		value string
		color core.RGB
	}{
		{"SCORE", FormatScore(w.Score), core.RGBNeonPink},
		{"LV", strconv.Itoa(pl.Level), core.RGBNeonViolet},
		{"TIME", FormatClock(w.Now), core.RGBWhite},
		{"HI", FormatScore(w.HighScore), core.RGBNeonAmber},
	}
	for _, f := range fields {
		x = r.buf.Text(x+3, 0, f.label+" ", core.RGBDimText)
		x = r.buf.Text(x, 0, f.value, f.color)
	}
	if s.Muted {
		r.buf.Text(r.vp.Cols-6, 0, "MUTED", core.RGBDimText)
	}

	// Experience bar spans the second row
	expFilled := BarCells(pl.Exp, pl.ExpToNextLevel, r.vp.Cols)
	for i := range r.vp.Cols {
		if i < expFilled {
			r.buf.SetFg(i, 1, '━', core.RGBNeonCyan)
		} else {
			r.buf.SetFg(i, 1, '─', barEmpty)
		}
	}
}
