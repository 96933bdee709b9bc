// Package tui provides immediate-mode TUI primitives for the terminal package.
//
// Core abstraction is Region, representing a rectangular area within a cell buffer.
// All drawing operations are relative to region bounds with automatic clipping.
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//
//	cols := tui.SplitH(root, 0.3, 0.7)
//	inner := cols[0].Block("Status", tui.LineSingle, terminal.RGBWhite)
//	inner.Paragraph([]string{"Hello"}, tui.AlignCenter, tui.DefaultStyle(terminal.RGBWhite))
//
//	term.Flush(cells, w, h)
package tui
