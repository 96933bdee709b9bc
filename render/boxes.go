package render

import (
	"strconv"

	"github.com/lixenwraith/tamagotchi/canvas"
	"github.com/lixenwraith/tamagotchi/terminal"
	"github.com/lixenwraith/tamagotchi/terminal/tui"
)

const (
	boxCount    = 12
	boxLowY     = 2.0
	boxHighY    = 21.0
	boxLabelMax = 100
)

// BoxesCanvas builds the decorative rectangle panel for an area of w x h cells
// Bounds follow the area so squares keep their cell size as the terminal resizes
func BoxesCanvas(w, h int, marker canvas.Marker) *canvas.Canvas {
	c := canvas.New(
		[2]float64{0, float64(w)},
		[2]float64{0, float64(h)*2 - 4},
		marker,
	)

	for i := 0; i < boxCount; i++ {
		x := float64(i*i+3*i)/2 + 2
		side := float64(i)
		c.Draw(canvas.Rectangle{X: x, Y: boxLowY, Width: side, Height: side, Color: BoxLowColor})
		c.Draw(canvas.Rectangle{X: x, Y: boxHighY, Width: side, Height: side, Color: BoxHighColor})
	}

	for i := 0; i < boxLabelMax; i++ {
		if i%10 == 0 {
			continue
		}
		digit := strconv.Itoa(i % 10)
		c.Print(float64(i)+1, 0, digit, BoxTextColor)
		if i%2 == 0 {
			c.Print(0, float64(i), digit, BoxTextColor)
		}
	}
	return c
}

func (r *Renderer) drawBoxes(area tui.Region, marker canvas.Marker) {
	inner := area.Block(BoxesTitle, tui.LineSingle, terminal.RGBDefault)
	BoxesCanvas(area.W, area.H, marker).Render(inner)
}
