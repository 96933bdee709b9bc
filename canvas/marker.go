package canvas

import "fmt"

// Marker selects how painted points are rasterized into terminal cells
type Marker uint8

const (
	MarkerDot       Marker = iota // One point per cell, '•'
	MarkerBraille                 // 2x4 points per cell, U+2800 block
	MarkerBlock                   // One point per cell, '█'
	MarkerHalfBlock               // 1x2 points per cell, '▀' '▄' '█'
	MarkerBar                     // One point per cell, '▄'
)

// MarkerCycle is the rotation order used by Next
var MarkerCycle = [...]Marker{MarkerDot, MarkerBraille, MarkerBlock, MarkerHalfBlock, MarkerBar}

// Next returns the following marker in the rotation, wrapping Bar to Dot
func (m Marker) Next() Marker {
	switch m {
	case MarkerDot:
		return MarkerBraille
	case MarkerBraille:
		return MarkerBlock
	case MarkerBlock:
		return MarkerHalfBlock
	case MarkerHalfBlock:
		return MarkerBar
	case MarkerBar:
		return MarkerDot
	}
	return MarkerDot
}

func (m Marker) String() string {
	switch m {
	case MarkerDot:
		return "dot"
	case MarkerBraille:
		return "braille"
	case MarkerBlock:
		return "block"
	case MarkerHalfBlock:
		return "half_block"
	case MarkerBar:
		return "bar"
	}
	return fmt.Sprintf("marker(%d)", uint8(m))
}

// resolution returns points per cell horizontally and vertically
func (m Marker) resolution() (sx, sy int) {
	switch m {
	case MarkerBraille:
		return 2, 4
	case MarkerHalfBlock:
		return 1, 2
	}
	return 1, 1
}

// brailleBits indexes dot bits by [row][col] within a cell
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// bit returns the mask bit for a point at sub-cell offset (col, row)
func (m Marker) bit(col, row int) uint8 {
	switch m {
	case MarkerBraille:
		return brailleBits[row][col]
	case MarkerHalfBlock:
		return 1 << row
	}
	return 1
}

// glyph returns the rune for a non-empty cell mask
func (m Marker) glyph(mask uint8) rune {
	switch m {
	case MarkerBraille:
		return rune(0x2800) + rune(mask)
	case MarkerHalfBlock:
		switch mask {
		case 1:
			return '▀'
		case 2:
			return '▄'
		}
		return '█'
	case MarkerBlock:
		return '█'
	case MarkerBar:
		return '▄'
	}
	return '•'
}
