package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tamagotchi/terminal"
)

// Align specifies horizontal text alignment
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// DefaultStyle returns style with default background
func DefaultStyle(fg terminal.RGB) Style {
	return Style{Fg: fg}
}

// StringWidth returns the display width of s in cells
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if its display width exceeds maxW
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	return runewidth.Truncate(s, maxW, "…")
}

// Text draws a single line at (x, y), clipped to the region
// Returns the number of cells advanced
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) int {
	start := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x >= r.W {
			break
		}
		r.Cell(x, y, ch, fg, bg, attr)
		x += w
	}
	return x - start
}

// TextStyled draws a single line using a Style
func (r Region) TextStyled(x, y int, s string, style Style) int {
	return r.Text(x, y, s, style.Fg, style.Bg, style.Attr)
}

// TextCenter draws a line horizontally centered in the region
func (r Region) TextCenter(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	s = Truncate(s, r.W)
	r.Text((r.W-StringWidth(s))/2, y, s, fg, bg, attr)
}

// TextRight draws a line right-aligned in the region
func (r Region) TextRight(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	s = Truncate(s, r.W)
	r.Text(r.W-StringWidth(s), y, s, fg, bg, attr)
}

// Paragraph draws lines from the top of the region with the given alignment
// Lines beyond the region height are dropped; returns lines drawn
func (r Region) Paragraph(lines []string, align Align, style Style) int {
	drawn := 0
	for y, line := range lines {
		if y >= r.H {
			break
		}
		switch align {
		case AlignCenter:
			r.TextCenter(y, line, style.Fg, style.Bg, style.Attr)
		case AlignRight:
			r.TextRight(y, line, style.Fg, style.Bg, style.Attr)
		default:
			r.Text(0, y, Truncate(line, r.W), style.Fg, style.Bg, style.Attr)
		}
		drawn++
	}
	return drawn
}

// RowString reads back a region row as a string, empty cells as spaces
func (r Region) RowString(y int) string {
	runes := make([]rune, 0, r.W)
	for x := 0; x < r.W; x++ {
		ch := r.Get(x, y).Rune
		if ch == 0 {
			ch = ' '
		}
		runes = append(runes, ch)
	}
	return string(runes)
}
