package hapticharts

// BarChart lays out equal-width, bottom-aligned bars left to right.
type BarChart struct {
	Values []float64
	// MaxValue is the value drawn at full inner height. Zero or negative
	// means the largest value.
	MaxValue float64
	// Padding insets the plot area on every side.
	Padding float64
	// Gap is the horizontal space between adjacent bars.
	Gap float64
}

// DefaultBarChart returns a BarChart with the default knobs and no values.
func DefaultBarChart() BarChart {
	return BarChart{MaxValue: 1, Padding: 24, Gap: 12}
}

// Kind implements Chart.
func (c BarChart) Kind() ChartKind { return ChartBar }

// Normalize returns c with every knob clamped to its valid range.
func (c BarChart) Normalize() BarChart {
	c.Values = sanitize(c.Values)
	c.MaxValue = clamp(c.MaxValue, 0, maxKnob)
	c.Padding = clamp(c.Padding, 0, maxPadding)
	c.Gap = clamp(c.Gap, 0, maxGap)
	return c
}

// Layout implements Chart.
func (c BarChart) Layout(bounds Rect) Layout {
	c = c.Normalize()
	l := Layout{Kind: ChartBar, Bounds: bounds, Clip: true}

	n := len(c.Values)
	inner := bounds.Inset(c.Padding)
	if n == 0 || inner.Empty() {
		return l
	}
	barW := (inner.Width - float64(n-1)*c.Gap) / float64(n)
	if barW <= 0 {
		return l
	}
	scale := c.MaxValue
	if scale <= 0 {
		scale = maxOf(c.Values)
	}
	bottom := inner.Y + inner.Height

	l.Regions = make([]Region, n)
	for i, v := range c.Values {
		h := clamp01(safeDiv(v, scale)) * inner.Height
		l.Regions[i] = Region{
			ID:   RegionID(i),
			Kind: RegionRect,
			Rect: Rect{
				X:      inner.X + float64(i)*(barW+c.Gap),
				Y:      bottom - h,
				Width:  barW,
				Height: h,
			},
		}
	}
	return l
}

// StackedBarChart lays out one column whose segments are stacked bottom-up,
// each proportional to its value.
type StackedBarChart struct {
	Values []float64
	// Padding insets the column on every side.
	Padding float64
	// Spacing is the vertical gap between consecutive segments.
	Spacing float64
}

// DefaultStackedBarChart returns a StackedBarChart with the default knobs.
func DefaultStackedBarChart() StackedBarChart {
	return StackedBarChart{Padding: 24, Spacing: 4}
}

// Kind implements Chart.
func (c StackedBarChart) Kind() ChartKind { return ChartStackedBar }

// Normalize returns c with every knob clamped to its valid range.
func (c StackedBarChart) Normalize() StackedBarChart {
	c.Values = sanitize(c.Values)
	c.Padding = clamp(c.Padding, 0, maxPadding)
	c.Spacing = clamp(c.Spacing, 0, maxGap)
	return c
}

// Layout implements Chart.
func (c StackedBarChart) Layout(bounds Rect) Layout {
	c = c.Normalize()
	l := Layout{Kind: ChartStackedBar, Bounds: bounds, Clip: true}

	n := len(c.Values)
	total := sum(c.Values)
	col := bounds.Inset(c.Padding)
	if n == 0 || total < epsilon || col.Empty() {
		return l
	}
	usable := col.Height - float64(n-1)*c.Spacing
	if usable <= 0 {
		return l
	}

	l.Regions = make([]Region, n)
	y := col.Y + col.Height
	for i, v := range c.Values {
		h := v / total * usable
		y -= h
		l.Regions[i] = Region{
			ID:   RegionID(i),
			Kind: RegionRect,
			Rect: Rect{X: col.X, Y: y, Width: col.Width, Height: h},
		}
		y -= c.Spacing
	}
	return l
}
