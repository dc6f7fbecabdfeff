package hapticharts

import "testing"

func newBarWidget(dev Device) *Widget {
	return NewWidget(sampleBarChart(), Rect{Width: 300, Height: 200}, NewController(dev, ModeContinuous))
}

// barPoint returns a point near the bottom of bar id, inside every bar.
func barPoint(w *Widget, id int) (float64, float64) {
	r := w.Layout().Regions[id].Rect
	return r.X + r.Width/2, r.Y + r.Height - 1
}

func TestWidgetCallbacks(t *testing.T) {
	w := newBarWidget(newRecordingDevice())

	var events []string
	w.OnEnter(func(ctx TouchContext) {
		events = append(events, "enter")
		if ctx.Region != 1 || ctx.Previous != NoRegion {
			t.Errorf("enter context: %+v", ctx)
		}
	})
	w.OnCross(func(ctx TouchContext) {
		events = append(events, "cross")
		if ctx.Region != 2 || ctx.Previous != 1 {
			t.Errorf("cross context: %+v", ctx)
		}
	})
	w.OnExit(func(ctx TouchContext) {
		events = append(events, "exit")
		if ctx.Region != NoRegion || ctx.Previous != 2 {
			t.Errorf("exit context: %+v", ctx)
		}
	})

	x1, y1 := barPoint(w, 1)
	x2, y2 := barPoint(w, 2)
	w.PointerMove(x1, y1)
	w.PointerMove(x1, y1-1)
	w.PointerMove(x2, y2)
	w.PointerRelease()
	w.PointerRelease()

	want := []string{"enter", "cross", "exit"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
}

func TestWidgetCallbackHandle_Remove(t *testing.T) {
	w := newBarWidget(nil)
	var count int
	h := w.OnEnter(func(TouchContext) { count++ })

	x, y := barPoint(w, 0)
	w.PointerMove(x, y)
	w.PointerRelease()
	h.Remove()
	h.Remove()
	w.PointerMove(x, y)

	if count != 1 {
		t.Errorf("expected 1 call before removal, got %d", count)
	}
	if len(w.handlers.enter) != 0 {
		t.Errorf("handler slice should be empty, got %d", len(w.handlers.enter))
	}
}

func TestWidgetExitOnEmptySpace(t *testing.T) {
	dev := newRecordingDevice()
	w := newBarWidget(dev)
	x, y := barPoint(w, 0)

	w.PointerMove(x, y)
	w.PointerMove(x, 5) // above the bar, inside the widget
	if w.Active() != NoRegion {
		t.Fatalf("expected idle, active = %d", w.Active())
	}
	if got := dev.String(); got != "start,stop" {
		t.Errorf("calls = %s", got)
	}
	w.PointerRelease()
	if dev.count("stop") != 1 {
		t.Errorf("release after exit must not stop again, got %s", dev)
	}
}

type mockSink struct {
	events []TransitionEvent
}

func (m *mockSink) EmitEvent(e TransitionEvent) {
	m.events = append(m.events, e)
}

func TestWidgetEventSink(t *testing.T) {
	w := newBarWidget(newRecordingDevice())
	sink := &mockSink{}
	w.SetEventSink(sink)
	w.SetParams(0.25, 0.75)

	x, y := barPoint(w, 4)
	w.PointerMove(x, y)
	w.PointerMove(x, y)
	w.PointerRelease()

	if len(sink.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(sink.events))
	}
	e := sink.events[0]
	if e.Type != TransitionEntered || e.To != 4 || e.Chart != ChartBar || e.WidgetID != w.ID {
		t.Errorf("unexpected event: %+v", e)
	}
	if e.X != x || e.Y != y || e.Params != (Params{0.25, 0.75}) {
		t.Errorf("event position/params: %+v", e)
	}
	if sink.events[1].Type != TransitionExited || sink.events[1].From != 4 {
		t.Errorf("unexpected exit event: %+v", sink.events[1])
	}
}

func TestWidgetSetChartRebuildsLayout(t *testing.T) {
	w := newBarWidget(nil)
	if n := len(w.Layout().Regions); n != 5 {
		t.Fatalf("expected 5 regions, got %d", n)
	}
	c := sampleBarChart()
	c.Values = c.Values[:2]
	w.SetChart(c)
	if n := len(w.Layout().Regions); n != 2 {
		t.Errorf("expected 2 regions after SetChart, got %d", n)
	}

	w.SetBounds(Rect{Width: 600, Height: 200})
	if got := w.Layout().Regions[0].Rect.Width; got != (600-48-12)/2.0 {
		t.Errorf("bar width after resize = %v", got)
	}
}

func TestWidgetLayoutChangeMidDrag(t *testing.T) {
	dev := newRecordingDevice()
	w := newBarWidget(dev)
	x, y := barPoint(w, 3)
	w.PointerMove(x, y)

	// Flatten the touched bar; the next sample finds nothing there.
	c := sampleBarChart()
	c.Values = []float64{0.2, 0.65, 0.4, 0, 0.55}
	w.SetChart(c)
	w.PointerMove(x, y)

	if w.Active() != NoRegion {
		t.Errorf("expected idle after the region disappeared, active = %d", w.Active())
	}
	if got := dev.String(); got != "start,stop" {
		t.Errorf("calls = %s", got)
	}
}

func TestWidgetClose(t *testing.T) {
	dev := newRecordingDevice()
	w := newBarWidget(dev)
	x, y := barPoint(w, 2)
	w.PointerMove(x, y)

	w.Close()
	if got := dev.String(); got != "start,stop" {
		t.Fatalf("close must stop the running session, calls = %s", got)
	}
	if !w.Closed() || w.Active() != NoRegion {
		t.Error("widget should be closed and idle")
	}

	w.PointerMove(x, y)
	w.PointerRelease()
	w.Close()
	if got := dev.String(); got != "start,stop" {
		t.Errorf("closed widget must not drive the device, calls = %s", got)
	}
}

func TestWidgetNilChart(t *testing.T) {
	w := NewWidget(nil, Rect{Width: 10, Height: 10}, nil)
	if got := w.PointerMove(5, 5); got.Type != TransitionNone {
		t.Errorf("widget without chart should never hit, got %+v", got)
	}
}

func TestWidgetDebugMode(t *testing.T) {
	dev := newRecordingDevice()
	dev.capable = true
	w := newBarWidget(dev)
	w.SetDebugMode(true)
	w.SetChart(BarChart{})

	// Logging must not change behaviour.
	w.PointerMove(10, 10)
	w.PointerRelease()
	if len(dev.calls) != 0 {
		t.Errorf("empty chart should not drive the device, calls = %s", dev)
	}
}

func TestWidgetIDsUnique(t *testing.T) {
	a := NewWidget(nil, Rect{}, nil)
	b := NewWidget(nil, Rect{}, nil)
	if a.ID == b.ID {
		t.Errorf("widget IDs should differ, both %d", a.ID)
	}
}

func BenchmarkWidgetPointerMove(b *testing.B) {
	w := newBarWidget(nil)
	w.Layout()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.PointerMove(float64(i%300), 150)
	}
}
