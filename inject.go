package hapticharts

// syntheticPointerEvent represents a single injected pointer event in
// chart-local coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	release bool
}

// InjectMove queues a pointer movement sample. The event is consumed on the
// next Update call.
func (w *Widget) InjectMove(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectRelease queues a pointer release.
func (w *Widget) InjectRelease() {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{release: true})
}

// InjectTap queues a single sample at (x, y) followed by a release. Consumes
// two frames.
func (w *Widget) InjectTap(x, y float64) {
	w.InjectMove(x, y)
	w.InjectRelease()
}

// InjectDrag queues a full drag: a sample at (fromX, fromY), linearly
// interpolated samples over frames-2 intermediate frames, a sample at
// (toX, toY) and a release. The total sequence consumes frames+1 frames.
// Minimum frames is 2.
func (w *Widget) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	w.InjectMove(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		w.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	w.InjectMove(toX, toY)
	w.InjectRelease()
}

// Pending returns the number of injected events not yet consumed.
func (w *Widget) Pending() int { return len(w.injectQueue) }

// Update advances one frame: the attached gesture runner (if any) steps, then
// one injected event is consumed. It reports whether an event was consumed,
// in which case hosts should skip real input for the frame.
func (w *Widget) Update() bool {
	if w.runner != nil {
		w.runner.step(w)
	}
	return w.processInjectedInput()
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the pointer pipeline.
func (w *Widget) processInjectedInput() bool {
	if len(w.injectQueue) == 0 || w.closed {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	if evt.release {
		w.PointerRelease()
	} else {
		w.PointerMove(evt.x, evt.y)
	}
	return true
}
