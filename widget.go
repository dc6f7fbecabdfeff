package hapticharts

import "time"

// EventSink is the interface for optional ECS integration. When set on a
// Widget, every region transition is forwarded to it.
type EventSink interface {
	EmitEvent(event TransitionEvent)
}

// TransitionEvent carries a region transition for the ECS bridge.
type TransitionEvent struct {
	Type     TransitionType
	Chart    ChartKind
	WidgetID uint32
	From     RegionID
	To       RegionID
	X, Y     float64
	Params   Params
}

// widgetIDCounter is a plain counter, not atomic: widgets are driven from a
// single event loop.
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// Widget is one interactive chart. It owns the chart's layout, the touch
// tracker and the feedback controller, and runs every pointer sample through
// geometry, tracker and controller in that order.
type Widget struct {
	ID uint32

	chart       Chart
	bounds      Rect
	layout      Layout
	layoutDirty bool

	tracker  *Tracker
	feedback *Controller

	handlers handlerRegistry
	sink     EventSink
	debug    bool

	lastX, lastY float64
	closed       bool

	injectQueue []syntheticPointerEvent
	runner      *GestureRunner
}

// NewWidget creates a widget for chart laid out in bounds. A nil feedback
// controller gets a controller without a device.
func NewWidget(chart Chart, bounds Rect, feedback *Controller) *Widget {
	if feedback == nil {
		feedback = NewController(nil, ModeContinuous)
	}
	w := &Widget{
		ID:          nextWidgetID(),
		chart:       chart,
		bounds:      bounds,
		layoutDirty: true,
		tracker:     NewTracker(),
		feedback:    feedback,
	}
	feedback.log = w.debugf
	return w
}

// Chart returns the widget's chart.
func (w *Widget) Chart() Chart { return w.chart }

// SetChart replaces the chart. The layout is rebuilt on next use; the touch
// state is kept and re-evaluated by the next pointer sample.
func (w *Widget) SetChart(chart Chart) {
	w.chart = chart
	w.layoutDirty = true
}

// Bounds returns the widget's plot bounds.
func (w *Widget) Bounds() Rect { return w.bounds }

// SetBounds changes the plot bounds, typically on resize.
func (w *Widget) SetBounds(bounds Rect) {
	if bounds == w.bounds {
		return
	}
	w.bounds = bounds
	w.layoutDirty = true
}

// Layout returns the current layout, rebuilding it if the chart or bounds
// changed. The returned regions must not be mutated.
func (w *Widget) Layout() Layout {
	if w.layoutDirty {
		var t0 time.Time
		if w.debug {
			t0 = time.Now()
		}
		if w.chart != nil {
			w.layout = w.chart.Layout(w.bounds)
		} else {
			w.layout = Layout{Bounds: w.bounds}
		}
		w.layoutDirty = false
		if w.debug {
			w.debugLayout(w.layout, time.Since(t0))
		}
	}
	return w.layout
}

// HitTest implements HitTester against the current layout.
func (w *Widget) HitTest(p Vec2) RegionID {
	return w.Layout().HitTest(p)
}

// Active returns the region currently touched, or NoRegion.
func (w *Widget) Active() RegionID { return w.tracker.Active() }

// Feedback returns the widget's feedback controller.
func (w *Widget) Feedback() *Controller { return w.feedback }

// SetEventSink sets the optional ECS bridge.
func (w *Widget) SetEventSink(sink EventSink) {
	w.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, transitions and
// swallowed device errors are logged to stderr.
func (w *Widget) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// PointerMove processes one pointer sample in chart-local coordinates.
func (w *Widget) PointerMove(x, y float64) Transition {
	if w.closed {
		return Transition{Type: TransitionNone, From: NoRegion, To: NoRegion}
	}
	w.lastX, w.lastY = x, y
	t := w.tracker.Move(w, Vec2{X: x, Y: y})
	w.dispatch(t, x, y)
	return t
}

// PointerRelease ends contact. The feedback session is always told to stop,
// so a release is safe to deliver more than once.
func (w *Widget) PointerRelease() Transition {
	t := w.tracker.Release()
	w.dispatch(t, w.lastX, w.lastY)
	w.feedback.Exited()
	return t
}

// SetParams changes the feedback parameters. While a session is running the
// change is forwarded to the device immediately.
func (w *Widget) SetParams(intensity, sharpness float64) {
	w.feedback.SetParams(Params{Intensity: intensity, Sharpness: sharpness})
}

// Close tears the widget down: any running feedback session is stopped even
// if no exit was observed, and later pointer samples are ignored.
func (w *Widget) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.tracker.Reset()
	w.feedback.Close()
	w.injectQueue = w.injectQueue[:0]
	w.debugf("widget %d closed", w.ID)
}

// Closed reports whether Close has been called.
func (w *Widget) Closed() bool { return w.closed }

func (w *Widget) dispatch(t Transition, x, y float64) {
	if t.Type == TransitionNone {
		return
	}
	w.debugf("widget %d %s: %d -> %d at (%.1f, %.1f)", w.ID, t.Type, t.From, t.To, x, y)

	w.feedback.Handle(t)

	ctx := TouchContext{
		Widget: w, Region: t.To, Previous: t.From,
		X: x, Y: y, Params: w.feedback.Params(),
	}
	switch t.Type {
	case TransitionEntered:
		for _, h := range w.handlers.enter {
			h.fn(ctx)
		}
	case TransitionCrossed:
		for _, h := range w.handlers.cross {
			h.fn(ctx)
		}
	case TransitionExited:
		for _, h := range w.handlers.exit {
			h.fn(ctx)
		}
	}

	if w.sink != nil {
		kind := ChartKind(0)
		if w.chart != nil {
			kind = w.chart.Kind()
		}
		w.sink.EmitEvent(TransitionEvent{
			Type:     t.Type,
			Chart:    kind,
			WidgetID: w.ID,
			From:     t.From,
			To:       t.To,
			X:        x,
			Y:        y,
			Params:   ctx.Params,
		})
	}
}
