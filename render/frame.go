package render

import (
	"github.com/lixenwraith/tamagotchi/terminal"
	"github.com/lixenwraith/tamagotchi/terminal/tui"
)

// Frame is a full-screen cell buffer handed to Terminal.Flush
type Frame struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewFrame creates a cleared frame of the given size
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (f *Frame) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(f.cells) < size {
		f.cells = make([]terminal.Cell, size)
	} else {
		f.cells = f.cells[:size]
	}
	f.width = width
	f.height = height
	f.Clear()
}

// Clear resets every cell to a blank on the terminal default colors
func (f *Frame) Clear() {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = terminal.Cell{Rune: ' '}
	// Exponential copy
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

// Size returns the frame dimensions
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// Cells exposes the backing buffer for flushing
func (f *Frame) Cells() []terminal.Cell {
	return f.cells
}

// Region returns a drawing region spanning the whole frame
func (f *Frame) Region() tui.Region {
	return tui.NewRegion(f.cells, f.width, 0, 0, f.width, f.height)
}

// Flush writes the frame to the terminal
func (f *Frame) Flush(t terminal.Terminal) error {
	return t.Flush(f.cells, f.width, f.height)
}
