package canvas

import (
	"math"

	"github.com/lixenwraith/tamagotchi/terminal"
)

// Circle is a filled disc centered at (X, Y)
type Circle struct {
	X, Y   float64
	Radius float64
	Color  terminal.RGB
}

// Draw paints every grid point whose world position lies within the radius
func (c Circle) Draw(p *Painter) {
	// Grid box spanned by the circle's world bounding box, clipped to canvas bounds
	x0 := math.Max(c.X-c.Radius, p.xBounds[0])
	x1 := math.Min(c.X+c.Radius, p.xBounds[1])
	y0 := math.Max(c.Y-c.Radius, p.yBounds[0])
	y1 := math.Min(c.Y+c.Radius, p.yBounds[1])
	if x0 > x1 || y0 > y1 {
		return
	}

	gxMin, gyMin, ok1 := p.Point(x0, y1)
	gxMax, gyMax, ok2 := p.Point(x1, y0)
	if !ok1 || !ok2 {
		return
	}

	r2 := c.Radius * c.Radius
	painted := false
	for gy := gyMin; gy <= gyMax; gy++ {
		for gx := gxMin; gx <= gxMax; gx++ {
			wx, wy := p.World(gx, gy)
			dx, dy := wx-c.X, wy-c.Y
			if dx*dx+dy*dy <= r2 {
				p.Paint(gx, gy, c.Color)
				painted = true
			}
		}
	}

	// Coarse grids can fall between sample points; the center always shows
	if !painted {
		if gx, gy, ok := p.Point(c.X, c.Y); ok {
			p.Paint(gx, gy, c.Color)
		}
	}
}

// Line is a segment between two world points
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  terminal.RGB
}

// Draw rasterizes the segment with Bresenham; skipped if an endpoint is outside the bounds
func (l Line) Draw(p *Painter) {
	x1, y1, ok1 := p.Point(l.X1, l.Y1)
	x2, y2, ok2 := p.Point(l.X2, l.Y2)
	if !ok1 || !ok2 {
		return
	}

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy

	for {
		p.Paint(x1, y1, l.Color)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

// Rectangle is an outline with (X, Y) at its bottom-left corner
type Rectangle struct {
	X, Y          float64
	Width, Height float64
	Color         terminal.RGB
}

// Draw paints the four edges
func (r Rectangle) Draw(p *Painter) {
	top := r.Y + r.Height
	right := r.X + r.Width
	Line{r.X, r.Y, right, r.Y, r.Color}.Draw(p)
	Line{r.X, top, right, top, r.Color}.Draw(p)
	Line{r.X, r.Y, r.X, top, r.Color}.Draw(p)
	Line{right, r.Y, right, top, r.Color}.Draw(p)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
