// Package render draws the pet state into a cell frame.
//
// Draw is immediate-mode: every call repaints the whole frame from the state,
// the eased gauge values and the options. Nothing is retained between frames.
package render

import (
	"fmt"

	"github.com/lixenwraith/tamagotchi/canvas"
	"github.com/lixenwraith/tamagotchi/pet"
	"github.com/lixenwraith/tamagotchi/terminal"
	"github.com/lixenwraith/tamagotchi/terminal/tui"
)

// Panel titles
const (
	StatusTitle = "Status"
	PetTitle    = "Tamagotchi"
	BoxesTitle  = "Rects"
)

// Pet canvas world bounds
var (
	PetXBounds = [2]float64{10, 210}
	PetYBounds = [2]float64{10, 110}
)

// Options control colors and optional panels
type Options struct {
	PetColor    terminal.RGB
	StatusColor terminal.RGB
	ShowBoxes   bool
}

// DefaultOptions returns yellow pet, white status text, no box panel
func DefaultOptions() Options {
	return Options{
		PetColor:    terminal.RGBYellow,
		StatusColor: terminal.RGBWhite,
	}
}

// Layout holds the outer panel regions for one frame
type Layout struct {
	Status tui.Region
	Pet    tui.Region
	Boxes  tui.Region // Empty unless ShowBoxes
}

// ComputeLayout splits the screen 30/70; the right column is shared with the box panel when enabled
func ComputeLayout(screen tui.Region, showBoxes bool) Layout {
	cols := tui.SplitH(screen, tui.Percent(30, 70)...)
	if len(cols) != 2 {
		return Layout{}
	}

	l := Layout{Status: cols[0], Pet: cols[1]}
	if showBoxes {
		rows := tui.SplitV(cols[1], tui.Percent(50, 50)...)
		if len(rows) == 2 {
			l.Pet, l.Boxes = rows[0], rows[1]
		}
	}
	return l
}

// Renderer draws frames; it holds only immutable options
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer with the given options
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Draw repaints the frame from the state; gauges may be nil
func (r *Renderer) Draw(f *Frame, s *pet.State, g *MoodGauges) {
	f.Clear()
	l := ComputeLayout(f.Region(), r.opts.ShowBoxes)

	r.drawStatus(l.Status, s, g)
	r.drawPet(l.Pet, s)
	if !l.Boxes.Empty() {
		r.drawBoxes(l.Boxes, s.Marker)
	}
}

// StatusLines returns the exact status text
func StatusLines(s *pet.State) []string {
	return []string{
		fmt.Sprintf("Hunger: %d", s.Hunger),
		fmt.Sprintf("Happiness: %d", s.Happiness),
	}
}

func (r *Renderer) drawStatus(area tui.Region, s *pet.State, g *MoodGauges) {
	if area.Empty() {
		return
	}
	inner := area.Block(StatusTitle, tui.LineSingle, r.opts.StatusColor)
	if inner.Empty() {
		return
	}

	used := inner.Paragraph(StatusLines(s), tui.AlignCenter, tui.DefaultStyle(r.opts.StatusColor))
	if g == nil {
		return
	}

	// Gauges sit one blank row below the text when there is room
	y := used + 1
	if y+1 >= inner.H {
		return
	}
	inner.Gauge(y, "HUN", g.Hunger(), r.opts.StatusColor, HungerColor(g.Hunger()))
	inner.Gauge(y+1, "HAP", g.Happiness(), r.opts.StatusColor, HappinessColor(g.Happiness()))
}

func (r *Renderer) drawPet(area tui.Region, s *pet.State) {
	if area.Empty() {
		return
	}
	inner := area.Block(PetTitle, tui.LineSingle, terminal.RGBDefault)

	c := canvas.New(PetXBounds, PetYBounds, s.Marker)
	c.Draw(canvas.Circle{
		X:      s.Position.X,
		Y:      s.Position.Y,
		Radius: pet.PetRadius,
		Color:  r.opts.PetColor,
	})
	c.Render(inner)
}
