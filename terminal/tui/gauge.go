package tui

import "github.com/lixenwraith/tamagotchi/terminal"

// Progress bar characters
const (
	progressFull  = '█'
	progressEmpty = '░'
	progressHalf  = '▌'
)

// Progress draws horizontal progress bar (0.0-1.0)
func (r Region) Progress(x, y, w int, pct float64, fg, bg terminal.RGB) {
	if y < 0 || y >= r.H || w <= 0 {
		return
	}
	pct = clamp01(pct)

	filled := int(float64(w) * pct)
	remainder := float64(w)*pct - float64(filled)

	for i := 0; i < w; i++ {
		if x+i >= r.W {
			break
		}
		var ch rune
		switch {
		case i < filled:
			ch = progressFull
		case i == filled && remainder >= 0.5:
			ch = progressHalf
		default:
			ch = progressEmpty
		}
		r.Cell(x+i, y, ch, fg, bg, terminal.AttrNone)
	}
}

// Gauge draws a full-width bar with a left label, e.g. "HUN ████░░░░"
// Bar width is whatever remains after the label and a separating space
func (r Region) Gauge(y int, label string, pct float64, labelFg, barFg terminal.RGB) {
	if y < 0 || y >= r.H {
		return
	}
	x := 0
	if label != "" {
		x = r.Text(0, y, label, labelFg, terminal.RGBDefault, terminal.AttrNone) + 1
	}
	r.Progress(x, y, r.W-x, pct, barFg, terminal.RGBDefault)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
