package hapticharts

// TouchContext carries region transition data to callbacks.
type TouchContext struct {
	Widget   *Widget
	Region   RegionID // region now touched (NoRegion on exit)
	Previous RegionID // region touched before the transition
	X, Y     float64
	Params   Params
}

// --- Handler registry ---

type touchHandler struct {
	id uint32
	fn func(TouchContext)
}

type handlerRegistry struct {
	enter  []touchHandler
	cross  []touchHandler
	exit   []touchHandler
	nextID uint32
}

// CallbackHandle allows removing a registered widget callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event TransitionType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case TransitionEntered:
		h.reg.enter = removeTouchHandler(h.reg.enter, h.id)
	case TransitionCrossed:
		h.reg.cross = removeTouchHandler(h.reg.cross, h.id)
	case TransitionExited:
		h.reg.exit = removeTouchHandler(h.reg.exit, h.id)
	}
}

func removeTouchHandler(s []touchHandler, id uint32) []touchHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = touchHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event TransitionType, fn func(TouchContext)) CallbackHandle {
	r.nextID++
	h := touchHandler{id: r.nextID, fn: fn}
	switch event {
	case TransitionEntered:
		r.enter = append(r.enter, h)
	case TransitionCrossed:
		r.cross = append(r.cross, h)
	case TransitionExited:
		r.exit = append(r.exit, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

// OnEnter registers a callback fired when the pointer moves from empty space
// into a region.
func (w *Widget) OnEnter(fn func(TouchContext)) CallbackHandle {
	return w.handlers.add(TransitionEntered, fn)
}

// OnCross registers a callback fired when the pointer moves directly from one
// region into another.
func (w *Widget) OnCross(fn func(TouchContext)) CallbackHandle {
	return w.handlers.add(TransitionCrossed, fn)
}

// OnExit registers a callback fired when the pointer leaves all regions or is
// released over one.
func (w *Widget) OnExit(fn func(TouchContext)) CallbackHandle {
	return w.handlers.add(TransitionExited, fn)
}
