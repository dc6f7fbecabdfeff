package hapticharts

// Vec2 is a 2D point or offset in chart-local coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle. The left and top
// edges are inside, the right and bottom edges are not, so rectangles that
// share an edge never both contain a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset returns r shrunk by d on every side. The result may be Empty.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

// Intersects reports whether r and other overlap with a non-zero area.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// RegionID identifies a region within a Layout. IDs are the index of the
// datum the region was built from.
type RegionID int

// NoRegion is returned by hit tests that match nothing.
const NoRegion RegionID = -1

// ChartKind selects the geometry a Chart produces.
type ChartKind uint8

const (
	ChartBar        ChartKind = iota // equal-width bottom-aligned bars
	ChartStackedBar                  // one column of proportional segments
	ChartPie                         // annular wedges (pie or donut)
	ChartBubble                      // circle edges (ring hit test)
)

func (k ChartKind) String() string {
	switch k {
	case ChartBar:
		return "bar"
	case ChartStackedBar:
		return "stacked"
	case ChartPie:
		return "pie"
	case ChartBubble:
		return "bubble"
	default:
		return "unknown"
	}
}

// TransitionType identifies a change of the touched region.
type TransitionType uint8

const (
	TransitionNone    TransitionType = iota // region unchanged
	TransitionEntered                       // no region -> region
	TransitionCrossed                       // region -> different region
	TransitionExited                        // region -> no region (or release)
)

func (t TransitionType) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionEntered:
		return "entered"
	case TransitionCrossed:
		return "crossed"
	case TransitionExited:
		return "exited"
	default:
		return "unknown"
	}
}

// FeedbackMode selects how a Controller drives its Device.
type FeedbackMode uint8

const (
	// ModeContinuous starts one session on entry, keeps it running across
	// adjacent regions, forwards live parameter changes and stops on exit.
	ModeContinuous FeedbackMode = iota
	// ModePulse fires one discrete pulse per entry and never starts a session.
	ModePulse
)

func (m FeedbackMode) String() string {
	if m == ModePulse {
		return "pulse"
	}
	return "continuous"
}
