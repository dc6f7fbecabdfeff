package ebitenchart

import (
	"testing"

	"github.com/phanxgames/hapticharts"
)

// newThreeBars returns a 300x200 widget with three full-height bars, each
// 100 pixels wide.
func newThreeBars() *hapticharts.Widget {
	chart := hapticharts.BarChart{Values: []float64{1, 1, 1}, MaxValue: 1}
	return hapticharts.NewWidget(chart, hapticharts.Rect{Width: 300, Height: 200}, nil)
}

func TestHostCaptureLocalCoordinates(t *testing.T) {
	h := NewHost()
	w := newThreeBars()
	h.Add(w, 50, 40)

	h.processPointer(0, 50+150, 40+100, true)
	if got := w.Active(); got != 1 {
		t.Fatalf("Active() = %d after press on bar 1, want 1", got)
	}
	h.processPointer(0, 50+250, 40+100, true)
	if got := w.Active(); got != 2 {
		t.Errorf("Active() = %d after moving to bar 2, want 2", got)
	}

	// Leaving the widget keeps the capture; the sample lands outside every bar.
	h.processPointer(0, 600, 140, true)
	if got := w.Active(); got != hapticharts.NoRegion {
		t.Errorf("Active() = %d outside the widget, want NoRegion", got)
	}
	h.processPointer(0, 50+50, 40+100, true)
	if got := w.Active(); got != 0 {
		t.Errorf("Active() = %d after returning, want 0", got)
	}

	h.processPointer(0, 50+50, 40+100, false)
	if got := w.Active(); got != hapticharts.NoRegion {
		t.Errorf("Active() = %d after release, want NoRegion", got)
	}
	if h.pointers[0].down || h.pointers[0].owner != nil {
		t.Error("pointer state not reset after release")
	}
}

func TestHostPressOutsideDoesNotCapture(t *testing.T) {
	h := NewHost()
	w := newThreeBars()
	h.Add(w, 50, 40)

	h.processPointer(0, 10, 10, true)
	h.processPointer(0, 50+150, 40+100, true)
	if got := w.Active(); got != hapticharts.NoRegion {
		t.Errorf("drag that started outside reached the widget: Active() = %d", got)
	}
	h.processPointer(0, 50+150, 40+100, false)

	// A fresh press inside does capture.
	h.processPointer(0, 50+150, 40+100, true)
	if got := w.Active(); got != 1 {
		t.Errorf("Active() = %d, want 1", got)
	}
}

func TestHostOnePointerPerWidget(t *testing.T) {
	h := NewHost()
	w := newThreeBars()
	h.Add(w, 0, 0)

	h.processPointer(0, 50, 100, true)
	h.processPointer(1, 250, 100, true)
	if got := w.Active(); got != 0 {
		t.Errorf("second pointer stole the widget: Active() = %d", got)
	}
	if h.pointers[1].owner != nil {
		t.Error("second pointer captured an owned widget")
	}

	h.processPointer(1, 250, 100, false)
	if got := w.Active(); got != 0 {
		t.Errorf("releasing the uncaptured pointer changed Active() to %d", got)
	}
}

func TestHostTopmostWidgetWins(t *testing.T) {
	h := NewHost()
	below, above := newThreeBars(), newThreeBars()
	h.Add(below, 0, 0)
	h.Add(above, 100, 0)

	h.processPointer(0, 150, 100, true)
	if above.Active() != 0 || below.Active() != hapticharts.NoRegion {
		t.Errorf("press went to the wrong widget: above=%d below=%d", above.Active(), below.Active())
	}

	// Another pointer in the overlap falls through to the free widget below.
	h.processPointer(1, 160, 100, true)
	if below.Active() != 1 {
		t.Errorf("below.Active() = %d, want 1", below.Active())
	}
}

func TestHostRemoveReleasesCapture(t *testing.T) {
	h := NewHost()
	w := newThreeBars()
	exits := 0
	w.OnExit(func(hapticharts.TouchContext) { exits++ })
	h.Add(w, 0, 0)

	h.processPointer(0, 50, 100, true)
	h.Remove(w)
	if exits != 1 {
		t.Errorf("exits = %d after Remove, want 1", exits)
	}
	if h.pointers[0].owner != nil {
		t.Error("removed widget still owns the pointer")
	}
	if len(h.Widgets()) != 0 {
		t.Errorf("Widgets() = %d after Remove", len(h.Widgets()))
	}

	// Further samples go nowhere.
	h.processPointer(0, 150, 100, true)
	h.processPointer(0, 150, 100, false)
	if exits != 1 {
		t.Errorf("exits = %d, removed widget received input", exits)
	}
}

func TestHostAddMovesExisting(t *testing.T) {
	h := NewHost()
	w := newThreeBars()
	h.Add(w, 0, 0)
	h.Add(w, 500, 0)
	h.Add(nil, 0, 0)
	if len(h.Widgets()) != 1 {
		t.Fatalf("Widgets() = %d, want 1", len(h.Widgets()))
	}

	h.processPointer(0, 50, 100, true)
	if w.Active() != hapticharts.NoRegion {
		t.Error("widget still answers at its old position")
	}
	h.processPointer(0, 50, 100, false)
	h.processPointer(0, 550, 100, true)
	if w.Active() != 0 {
		t.Errorf("Active() = %d at the new position, want 0", w.Active())
	}
}

func TestHostInjectedFrameIgnoresRealSamples(t *testing.T) {
	h := NewHost()
	w := newThreeBars()
	h.Add(w, 0, 0)

	h.processPointer(0, 50, 100, true)
	h.placements[0].injected = true
	h.processPointer(0, 250, 100, true)
	if w.Active() != 0 {
		t.Errorf("real sample reached a widget fed by injected input: Active() = %d", w.Active())
	}

	h.placements[0].injected = false
	h.processPointer(0, 250, 100, true)
	if w.Active() != 2 {
		t.Errorf("Active() = %d, want 2", w.Active())
	}
}

func TestHostSkipsClosedWidgets(t *testing.T) {
	h := NewHost()
	w := newThreeBars()
	h.Add(w, 0, 0)
	w.Close()

	h.processPointer(0, 50, 100, true)
	if h.pointers[0].owner != nil {
		t.Error("closed widget captured a pointer")
	}

	h.Close()
	if len(h.Widgets()) != 0 {
		t.Error("Close did not forget widgets")
	}
}
