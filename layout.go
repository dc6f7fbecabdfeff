package hapticharts

// Chart is a declarative chart description. Layout turns it into regions for
// the given plot bounds; implementations must be pure and must clamp their
// numeric knobs before use.
type Chart interface {
	Kind() ChartKind
	Layout(bounds Rect) Layout
}

// Layout is the set of regions a Chart produces for one set of bounds. It is
// the single source of truth for both drawing and hit testing.
type Layout struct {
	Kind    ChartKind
	Bounds  Rect
	Regions []Region
	// Clip restricts hit testing to points inside Bounds.
	Clip bool
}

// Region returns the region with the given id.
func (l Layout) Region(id RegionID) (Region, bool) {
	for _, r := range l.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// HitTest returns the region under p, or NoRegion.
//
// Filled regions (rectangles and wedges) are disjoint by construction, so the
// first containing region wins. Ring regions may overlap; among all rings whose
// edge band contains p, the one whose circumference is closest wins, with the
// earlier region winning exact ties.
func (l Layout) HitTest(p Vec2) RegionID {
	if len(l.Regions) == 0 {
		return NoRegion
	}
	if l.Clip && !l.Bounds.Contains(p.X, p.Y) {
		return NoRegion
	}

	best := NoRegion
	bestDev := 0.0
	for i := range l.Regions {
		r := &l.Regions[i]
		if r.Kind != RegionRing {
			if r.Contains(p) {
				return r.ID
			}
			continue
		}
		dev := r.Deviation(p)
		if dev > r.Band {
			continue
		}
		if best == NoRegion || dev < bestDev {
			best = r.ID
			bestDev = dev
		}
	}
	return best
}
