package terminal

import "github.com/gdamore/tcell/v2"

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Named colors used by the widgets
var (
	RGBDefault = RGB{}
	RGBBlack   = RGB{1, 1, 1} // Near-black: the zero value is reserved for the terminal default
	RGBWhite   = RGB{255, 255, 255}
	RGBGray    = RGB{128, 128, 128}
	RGBRed     = RGB{255, 0, 0}
	RGBGreen   = RGB{0, 205, 0}
	RGBBlue    = RGB{0, 0, 255}
	RGBYellow  = RGB{255, 255, 0}
	RGBCyan    = RGB{0, 255, 255}
)

// IsDefault reports whether c is the terminal default color
func (c RGB) IsDefault() bool {
	return c == RGBDefault
}

// Color converts to a tcell color
func (c RGB) Color() tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style converts a cell's colors and attributes to a tcell style
func (c Cell) Style() tcell.Style {
	st := tcell.StyleDefault.Foreground(c.Fg.Color()).Background(c.Bg.Color())
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
