package hapticharts

import (
	"fmt"
	"os"
	"time"
)

// debugf prints a line to stderr when the widget is in debug mode.
func (w *Widget) debugf(format string, args ...any) {
	if !w.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[hapticharts] "+format+"\n", args...)
}

// debugLayout reports a layout rebuild. Empty layouts are called out because
// they silently disable hit testing.
func (w *Widget) debugLayout(l Layout, took time.Duration) {
	if !w.debug {
		return
	}
	w.debugf("layout %s: %d regions in %v (bounds %.0fx%.0f)",
		l.Kind, len(l.Regions), took, l.Bounds.Width, l.Bounds.Height)
	if len(l.Regions) == 0 {
		w.debugf("warning: widget %d has an empty layout; every hit test misses", w.ID)
	}
}
