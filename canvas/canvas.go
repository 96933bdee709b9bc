// Package canvas rasterizes world-space shapes into terminal cells.
//
// World coordinates map onto the target region through XBounds and YBounds,
// with Y growing upward: YBounds[1] is the top row. Each Marker defines a
// sub-cell point grid (Braille packs 2x4 points into one cell).
package canvas

import (
	"github.com/lixenwraith/tamagotchi/terminal"
	"github.com/lixenwraith/tamagotchi/terminal/tui"
)

// Shape is anything that can paint points through a Painter
type Shape interface {
	Draw(p *Painter)
}

type label struct {
	x, y  float64
	text  string
	color terminal.RGB
}

// Canvas collects shapes and labels, then renders them into a region
type Canvas struct {
	XBounds [2]float64
	YBounds [2]float64
	Marker  Marker

	shapes []Shape
	labels []label
}

// New creates a canvas with the given world bounds and marker
func New(xBounds, yBounds [2]float64, marker Marker) *Canvas {
	return &Canvas{XBounds: xBounds, YBounds: yBounds, Marker: marker}
}

// Draw queues a shape for rendering
func (c *Canvas) Draw(s Shape) {
	c.shapes = append(c.shapes, s)
}

// Print queues a text label anchored at world coordinates
func (c *Canvas) Print(x, y float64, text string, color terminal.RGB) {
	c.labels = append(c.labels, label{x: x, y: y, text: text, color: color})
}

// Render paints all queued shapes, then labels, into r
// Only painted cells are written; borders and backgrounds are preserved elsewhere
func (c *Canvas) Render(r tui.Region) {
	if r.Empty() {
		return
	}

	g := newGrid(r.W, r.H, c.Marker)
	p := &Painter{grid: g, xBounds: c.XBounds, yBounds: c.YBounds}
	for _, s := range c.shapes {
		s.Draw(p)
	}

	for cy := 0; cy < g.h; cy++ {
		for cx := 0; cx < g.w; cx++ {
			idx := cy*g.w + cx
			if g.masks[idx] == 0 {
				continue
			}
			r.Overlay(cx, cy, c.Marker.glyph(g.masks[idx]), g.colors[idx])
		}
	}

	for _, l := range c.labels {
		cx, cy, ok := c.labelCell(l.x, l.y, r.W, r.H)
		if !ok {
			continue
		}
		r.Text(cx, cy, l.text, l.color, r.Get(cx, cy).Bg, terminal.AttrNone)
	}
}

// labelCell maps world coordinates to a cell position
func (c *Canvas) labelCell(x, y float64, w, h int) (int, int, bool) {
	left, right := c.XBounds[0], c.XBounds[1]
	bottom, top := c.YBounds[0], c.YBounds[1]
	if x < left || x > right || y < bottom || y > top {
		return 0, 0, false
	}
	width, height := right-left, top-bottom
	if width == 0 || height == 0 {
		return 0, 0, false
	}
	cx := int((x - left) * float64(w-1) / width)
	cy := int((top - y) * float64(h-1) / height)
	return cx, cy, true
}

// grid is the sub-cell point buffer for one render
type grid struct {
	w, h   int // Cells
	sx, sy int // Points per cell
	marker Marker
	masks  []uint8
	colors []terminal.RGB
}

func newGrid(w, h int, marker Marker) *grid {
	sx, sy := marker.resolution()
	return &grid{
		w:      w,
		h:      h,
		sx:     sx,
		sy:     sy,
		marker: marker,
		masks:  make([]uint8, w*h),
		colors: make([]terminal.RGB, w*h),
	}
}

// Painter converts world coordinates to grid points and sets them
type Painter struct {
	grid    *grid
	xBounds [2]float64
	yBounds [2]float64
}

// Resolution returns the point grid size
func (p *Painter) Resolution() (int, int) {
	return p.grid.w * p.grid.sx, p.grid.h * p.grid.sy
}

// Point maps world coordinates to a grid point, ok=false outside bounds
func (p *Painter) Point(x, y float64) (gx, gy int, ok bool) {
	left, right := p.xBounds[0], p.xBounds[1]
	bottom, top := p.yBounds[0], p.yBounds[1]
	if x < left || x > right || y < bottom || y > top {
		return 0, 0, false
	}
	width, height := right-left, top-bottom
	if width == 0 || height == 0 {
		return 0, 0, false
	}
	resX, resY := p.Resolution()
	gx = int((x - left) * float64(resX-1) / width)
	gy = int((top - y) * float64(resY-1) / height)
	return gx, gy, true
}

// World maps a grid point back to world coordinates
func (p *Painter) World(gx, gy int) (x, y float64) {
	resX, resY := p.Resolution()
	left, right := p.xBounds[0], p.xBounds[1]
	bottom, top := p.yBounds[0], p.yBounds[1]
	if resX > 1 {
		x = left + float64(gx)*(right-left)/float64(resX-1)
	} else {
		x = left
	}
	if resY > 1 {
		y = top - float64(gy)*(top-bottom)/float64(resY-1)
	} else {
		y = top
	}
	return x, y
}

// Paint sets a grid point; out-of-range points are ignored
func (p *Painter) Paint(gx, gy int, color terminal.RGB) {
	g := p.grid
	resX, resY := p.Resolution()
	if gx < 0 || gy < 0 || gx >= resX || gy >= resY {
		return
	}
	cx, cy := gx/g.sx, gy/g.sy
	idx := cy*g.w + cx
	g.masks[idx] |= g.marker.bit(gx%g.sx, gy%g.sy)
	g.colors[idx] = color
}
