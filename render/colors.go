package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/tamagotchi/terminal"
)

// Box panel colors
var (
	BoxLowColor  = terminal.RGBRed
	BoxHighColor = terminal.RGBBlue
	BoxTextColor = terminal.RGBWhite
)

// Gauge gradient endpoints
var (
	gaugeGood = colorful.Color{R: 0.2, G: 0.85, B: 0.3}
	gaugeBad  = colorful.Color{R: 0.95, G: 0.2, B: 0.2}
)

// gradient blends from good to bad by t in Lab space
func gradient(t float64) terminal.RGB {
	t = min(max(t, 0), 1)
	r, g, b := gaugeGood.BlendLab(gaugeBad, t).Clamped().RGB255()
	rgb := terminal.RGB{R: r, G: g, B: b}
	if rgb.IsDefault() {
		return terminal.RGBBlack
	}
	return rgb
}

// HungerColor goes from green when fed to red when starving
func HungerColor(pct float64) terminal.RGB {
	return gradient(pct)
}

// HappinessColor goes from red when miserable to green when content
func HappinessColor(pct float64) terminal.RGB {
	return gradient(1 - pct)
}
