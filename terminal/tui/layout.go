package tui

// SplitH splits region horizontally by ratios (0.0-1.0)
// Ratios are normalized if they don't sum to 1.0
func SplitH(r Region, ratios ...float64) []Region {
	widths := distribute(r.W, ratios)
	if widths == nil {
		return nil
	}

	regions := make([]Region, len(widths))
	x := 0
	for i, w := range widths {
		regions[i] = r.Sub(x, 0, w, r.H)
		x += w
	}
	return regions
}

// SplitV splits region vertically by ratios (0.0-1.0)
func SplitV(r Region, ratios ...float64) []Region {
	heights := distribute(r.H, ratios)
	if heights == nil {
		return nil
	}

	regions := make([]Region, len(heights))
	y := 0
	for i, h := range heights {
		regions[i] = r.Sub(0, y, r.W, h)
		y += h
	}
	return regions
}

// Percent converts integer percentages to split ratios
func Percent(pcts ...int) []float64 {
	ratios := make([]float64, len(pcts))
	for i, p := range pcts {
		ratios[i] = float64(p) / 100
	}
	return ratios
}

// distribute divides total cells by ratios, last segment gets the remainder to avoid rounding gaps
func distribute(total int, ratios []float64) []int {
	if len(ratios) == 0 {
		return nil
	}

	var sum float64
	for _, ratio := range ratios {
		sum += ratio
	}
	if sum <= 0 {
		sum = 1
	}

	sizes := make([]int, len(ratios))
	remaining := total
	for i, ratio := range ratios {
		if i == len(ratios)-1 {
			sizes[i] = remaining
			break
		}
		n := int(float64(total)*ratio/sum + 0.5) // Round to nearest cell
		if n > remaining {
			n = remaining
		}
		if n < 0 {
			n = 0
		}
		sizes[i] = n
		remaining -= n
	}
	return sizes
}
