package hapticharts

import "math"

// PieChart lays out one annular wedge per value. With Donut disabled the
// wedges reach the center.
type PieChart struct {
	Values []float64
	// Gap is the angular gap between adjacent slices, in degrees. Each slice
	// gives up half of it on either side.
	Gap float64
	// Separation pushes every slice outward along its own bisector.
	Separation float64
	// Donut enables the inner-radius cut-out of DonutRatio * outer radius.
	Donut      bool
	DonutRatio float64
	// StartAngle is where the first slice begins, in radians. Zero points
	// along +X; angles grow clockwise on screen.
	StartAngle float64
	// Padding insets the plot area on every side.
	Padding float64
}

// DefaultPieChart returns a PieChart with the default knobs.
func DefaultPieChart() PieChart {
	return PieChart{Gap: 2, Separation: 0, DonutRatio: 0.55, Padding: 16}
}

// Kind implements Chart.
func (c PieChart) Kind() ChartKind { return ChartPie }

// Normalize returns c with every knob clamped to its valid range.
func (c PieChart) Normalize() PieChart {
	c.Values = sanitize(c.Values)
	c.Gap = clamp(c.Gap, 0, maxPieGap)
	c.Separation = clamp(c.Separation, 0, maxSeparation)
	c.DonutRatio = clamp(c.DonutRatio, 0, maxDonutRatio)
	c.StartAngle = normalizeAngle(c.StartAngle)
	c.Padding = clamp(c.Padding, 0, maxPadding)
	return c
}

// Layout implements Chart.
func (c PieChart) Layout(bounds Rect) Layout {
	c = c.Normalize()
	l := Layout{Kind: ChartPie, Bounds: bounds}

	total := sum(c.Values)
	if len(c.Values) == 0 || total < epsilon || bounds.Empty() {
		return l
	}
	outer := math.Min(bounds.Width, bounds.Height)/2 - c.Padding - c.Separation
	if outer <= 0 {
		return l
	}
	var inner float64
	if c.Donut {
		inner = outer * c.DonutRatio
	}
	center := Vec2{X: bounds.X + bounds.Width/2, Y: bounds.Y + bounds.Height/2}
	halfGap := c.Gap * math.Pi / 180 / 2
	// A lone slice is a full ring; there is no neighbour to leave a gap for
	// and no direction to separate it in.
	lone := countPositive(c.Values) == 1
	if lone {
		halfGap = 0
	}

	l.Regions = make([]Region, 0, len(c.Values))
	var cum float64
	for i, v := range c.Values {
		start := c.StartAngle + cum/total*fullTurn
		cum += v
		end := c.StartAngle + cum/total*fullTurn
		if v <= 0 {
			continue
		}
		if lone {
			end = start + fullTurn
		}
		start += halfGap
		end -= halfGap
		if end <= start {
			continue
		}
		sep := c.Separation
		if lone {
			sep = 0
		}
		l.Regions = append(l.Regions, Region{
			ID:          RegionID(i),
			Kind:        RegionWedge,
			Center:      center,
			Offset:      sliceOffset(start, end, sep),
			InnerRadius: inner,
			OuterRadius: outer,
			StartAngle:  start,
			EndAngle:    end,
		})
	}
	return l
}

// sliceOffset is the displacement of a slice along its bisector.
func sliceOffset(start, end, separation float64) Vec2 {
	if separation <= 0 {
		return Vec2{}
	}
	mid := (start + end) / 2
	return Vec2{X: separation * math.Cos(mid), Y: separation * math.Sin(mid)}
}
