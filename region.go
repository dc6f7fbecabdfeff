package hapticharts

import "math"

// RegionKind selects the shape of a Region.
type RegionKind uint8

const (
	RegionRect  RegionKind = iota // axis-aligned rectangle (bars, stacked segments)
	RegionWedge                   // annular wedge (pie and donut slices)
	RegionRing                    // circle edge band (bubbles)
)

// Region is one hit-testable, drawable area of a chart. Regions are produced
// by a Chart for a given set of bounds and are never mutated afterwards.
type Region struct {
	ID   RegionID
	Kind RegionKind

	// RegionRect
	Rect Rect

	// RegionWedge. The wedge is drawn and hit-tested around Center+Offset.
	Center      Vec2
	Offset      Vec2
	InnerRadius float64
	OuterRadius float64
	StartAngle  float64
	EndAngle    float64

	// RegionRing. Center is shared with RegionWedge.
	Radius float64
	Band   float64 // half-thickness of the edge band
}

// Origin returns the point a wedge or ring is built around, including any
// separation offset.
func (r Region) Origin() Vec2 {
	return Vec2{X: r.Center.X + r.Offset.X, Y: r.Center.Y + r.Offset.Y}
}

// Contains reports whether p lies inside the region.
func (r Region) Contains(p Vec2) bool {
	switch r.Kind {
	case RegionRect:
		return r.Rect.Contains(p.X, p.Y)
	case RegionWedge:
		o := r.Origin()
		dx, dy := p.X-o.X, p.Y-o.Y
		rad := math.Hypot(dx, dy)
		if rad < r.InnerRadius || rad > r.OuterRadius {
			return false
		}
		return angleInRange(math.Atan2(dy, dx), r.StartAngle, r.EndAngle)
	case RegionRing:
		return r.Deviation(p) <= r.Band
	}
	return false
}

// Deviation returns the distance from p to the circumference of a ring
// region. It returns +Inf for other kinds.
func (r Region) Deviation(p Vec2) float64 {
	if r.Kind != RegionRing {
		return math.Inf(1)
	}
	return math.Abs(distance(r.Center, p) - r.Radius)
}

// Empty reports whether the region can never contain a point.
func (r Region) Empty() bool {
	switch r.Kind {
	case RegionRect:
		return r.Rect.Empty()
	case RegionWedge:
		return r.EndAngle <= r.StartAngle || r.OuterRadius <= r.InnerRadius
	case RegionRing:
		return r.Radius <= 0 && r.Band <= 0
	}
	return true
}

// defaultArcSegments is the number of segments used per full turn when
// flattening arcs for drawing.
const defaultArcSegments = 96

// Outline returns the closed boundary of the region as a polygon, using the
// same center, offset, radii and angles as Contains. Rings return their
// outer edge-band boundary followed by the inner boundary in reverse, so the
// outline can be filled as a strip. The returned slice is newly allocated.
func (r Region) Outline() []Vec2 {
	switch r.Kind {
	case RegionRect:
		x, y, w, h := r.Rect.X, r.Rect.Y, r.Rect.Width, r.Rect.Height
		return []Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	case RegionWedge:
		return wedgeOutline(r.Origin(), r.InnerRadius, r.OuterRadius, r.StartAngle, r.EndAngle)
	case RegionRing:
		inner := math.Max(r.Radius-r.Band, 0)
		return wedgeOutline(r.Center, inner, r.Radius+r.Band, 0, fullTurn)
	}
	return nil
}

func wedgeOutline(o Vec2, inner, outer, start, end float64) []Vec2 {
	span := end - start
	if span <= 0 || outer <= 0 {
		return nil
	}
	segs := int(math.Ceil(defaultArcSegments * span / fullTurn))
	if segs < 2 {
		segs = 2
	}
	pts := make([]Vec2, 0, 2*(segs+1))
	for i := 0; i <= segs; i++ {
		a := start + span*float64(i)/float64(segs)
		pts = append(pts, polar(o, a, outer))
	}
	if inner <= 0 {
		return append(pts, o)
	}
	for i := segs; i >= 0; i-- {
		a := start + span*float64(i)/float64(segs)
		pts = append(pts, polar(o, a, inner))
	}
	return pts
}
