package hapticharts

// HitTester answers which region lies under a point.
type HitTester interface {
	HitTest(p Vec2) RegionID
}

// Transition describes how the touched region changed on one input.
type Transition struct {
	Type     TransitionType
	From, To RegionID
}

// Tracker is the touch state machine. It is either idle (Active returns
// NoRegion) or active in exactly one region.
type Tracker struct {
	active RegionID
}

// NewTracker returns an idle Tracker.
func NewTracker() *Tracker {
	return &Tracker{active: NoRegion}
}

// Active returns the region currently touched, or NoRegion.
func (t *Tracker) Active() RegionID { return t.active }

// Move hit-tests p against h and returns the resulting transition. Moving
// from one region straight into another is a single Crossed transition.
func (t *Tracker) Move(h HitTester, p Vec2) Transition {
	id := NoRegion
	if h != nil {
		id = h.HitTest(p)
	}
	prev := t.active
	if id == prev {
		return Transition{Type: TransitionNone, From: prev, To: id}
	}
	t.active = id
	switch {
	case prev == NoRegion:
		return Transition{Type: TransitionEntered, From: prev, To: id}
	case id == NoRegion:
		return Transition{Type: TransitionExited, From: prev, To: id}
	default:
		return Transition{Type: TransitionCrossed, From: prev, To: id}
	}
}

// Release ends contact. It always leaves the tracker idle; it reports Exited
// only when a region was active, so releasing twice is harmless.
func (t *Tracker) Release() Transition {
	prev := t.active
	t.active = NoRegion
	if prev == NoRegion {
		return Transition{Type: TransitionNone, From: NoRegion, To: NoRegion}
	}
	return Transition{Type: TransitionExited, From: prev, To: NoRegion}
}

// Reset forces the tracker idle without reporting a transition.
func (t *Tracker) Reset() {
	t.active = NoRegion
}
