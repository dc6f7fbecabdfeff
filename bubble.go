package hapticharts

import "math"

// Bubble is a circle in normalized chart space. X and Y are fractions of the
// plot width and height; Radius is a fraction of the shorter plot side.
type Bubble struct {
	X, Y, Radius float64
}

// BubbleChart hit-tests only the edges of its circles: a point matches when
// it lies within EdgeBand of a circumference.
type BubbleChart struct {
	Bubbles []Bubble
	// EdgeBand is the half-thickness of the band around each circumference.
	EdgeBand float64
}

// DefaultBubbleChart returns a BubbleChart with the default knobs.
func DefaultBubbleChart() BubbleChart {
	return BubbleChart{EdgeBand: 8}
}

// Kind implements Chart.
func (c BubbleChart) Kind() ChartKind { return ChartBubble }

// Normalize returns c with every knob clamped to its valid range.
func (c BubbleChart) Normalize() BubbleChart {
	bubbles := make([]Bubble, len(c.Bubbles))
	for i, b := range c.Bubbles {
		bubbles[i] = Bubble{X: clamp01(b.X), Y: clamp01(b.Y), Radius: clamp01(b.Radius)}
	}
	c.Bubbles = bubbles
	c.EdgeBand = clamp(c.EdgeBand, minEdgeBand, maxEdgeBand)
	return c
}

// Layout implements Chart.
func (c BubbleChart) Layout(bounds Rect) Layout {
	c = c.Normalize()
	l := Layout{Kind: ChartBubble, Bounds: bounds, Clip: true}
	if len(c.Bubbles) == 0 || bounds.Empty() {
		return l
	}
	side := math.Min(bounds.Width, bounds.Height)

	l.Regions = make([]Region, len(c.Bubbles))
	for i, b := range c.Bubbles {
		l.Regions[i] = Region{
			ID:   RegionID(i),
			Kind: RegionRing,
			Center: Vec2{
				X: bounds.X + b.X*bounds.Width,
				Y: bounds.Y + b.Y*bounds.Height,
			},
			Radius: b.Radius * side,
			Band:   c.EdgeBand,
		}
	}
	return l
}
