package ebitenchart

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/hapticharts"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// placement is a widget positioned on screen.
type placement struct {
	w        *hapticharts.Widget
	x, y     float64
	injected bool // consumed injected input this frame
}

func (p *placement) contains(sx, sy float64) bool {
	return p.w.Bounds().Contains(sx-p.x, sy-p.y)
}

type pointerState struct {
	down  bool
	owner *placement
	lastX float64
	lastY float64
}

// Host routes Ebitengine mouse and touch input to a set of widgets and draws
// them. A press captures the topmost widget under it; that widget receives
// every sample of the pointer in its own coordinates until release, even
// outside its bounds. A widget is owned by at most one pointer at a time.
type Host struct {
	placements []*placement
	pointers   [maxPointers]pointerState

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
}

// NewHost returns an empty Host.
func NewHost() *Host {
	return &Host{}
}

// Add places w with its layout origin at screen position (x, y). Adding a
// widget that is already hosted moves it.
func (h *Host) Add(w *hapticharts.Widget, x, y float64) {
	if w == nil {
		return
	}
	if p := h.find(w); p != nil {
		p.x, p.y = x, y
		return
	}
	h.placements = append(h.placements, &placement{w: w, x: x, y: y})
}

// Remove stops hosting w. A pointer captured by w is released first.
func (h *Host) Remove(w *hapticharts.Widget) {
	for i, p := range h.placements {
		if p.w != w {
			continue
		}
		h.releaseOwner(p)
		copy(h.placements[i:], h.placements[i+1:])
		h.placements[len(h.placements)-1] = nil
		h.placements = h.placements[:len(h.placements)-1]
		return
	}
}

// Widgets returns the hosted widgets in drawing order.
func (h *Host) Widgets() []*hapticharts.Widget {
	out := make([]*hapticharts.Widget, len(h.placements))
	for i, p := range h.placements {
		out[i] = p.w
	}
	return out
}

// Update advances injected input on every widget, then polls real mouse and
// touch input. A widget that consumed injected input this frame ignores real
// pointer samples for the frame.
func (h *Host) Update() {
	for _, p := range h.placements {
		p.injected = p.w.Update()
	}
	h.processMousePointer()
	h.processTouchPointers()
}

// Draw renders every hosted widget with theme.
func (h *Host) Draw(dst *ebiten.Image, theme Theme) {
	for _, p := range h.placements {
		if p.w.Closed() || p.w.Chart() == nil {
			continue
		}
		DrawLayout(dst, p.w.Layout(), p.x, p.y, theme, p.w.Active())
	}
}

// Close closes every hosted widget and forgets them.
func (h *Host) Close() {
	for _, p := range h.placements {
		p.w.Close()
	}
	h.placements = nil
	h.pointers = [maxPointers]pointerState{}
}

func (h *Host) find(w *hapticharts.Widget) *placement {
	for _, p := range h.placements {
		if p.w == w {
			return p
		}
	}
	return nil
}

func (h *Host) releaseOwner(p *placement) {
	for i := range h.pointers {
		ps := &h.pointers[i]
		if ps.owner == p {
			p.w.PointerRelease()
			ps.owner = nil
		}
	}
}

func (h *Host) owned(p *placement) bool {
	for i := range h.pointers {
		if h.pointers[i].owner == p {
			return true
		}
	}
	return false
}

// hitTest returns the topmost free placement containing the screen point.
func (h *Host) hitTest(sx, sy float64) *placement {
	for i := len(h.placements) - 1; i >= 0; i-- {
		p := h.placements[i]
		if p.w.Closed() || h.owned(p) {
			continue
		}
		if p.contains(sx, sy) {
			return p
		}
	}
	return nil
}

// processMousePointer feeds the left mouse button as pointer 0.
func (h *Host) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	h.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (h *Host) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(h.prevTouchIDs[:0])
	h.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := h.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		h.processPointer(slot, float64(tx), float64(ty), true)
	}

	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && !activeSlots[i] {
			ps := &h.pointers[i]
			if ps.down {
				h.processPointer(i, ps.lastX, ps.lastY, false)
			}
			h.touchUsed[i] = false
			h.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (h *Host) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && h.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !h.touchUsed[i] {
			h.touchUsed[i] = true
			h.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the capture state machine for one pointer at screen
// position (sx, sy).
func (h *Host) processPointer(pointerID int, sx, sy float64, pressed bool) {
	ps := &h.pointers[pointerID]

	if !pressed {
		if ps.down && ps.owner != nil {
			ps.owner.w.PointerRelease()
		}
		*ps = pointerState{}
		return
	}

	if !ps.down {
		ps.down = true
		ps.owner = h.hitTest(sx, sy)
	}
	ps.lastX, ps.lastY = sx, sy

	if p := ps.owner; p != nil && !p.injected {
		p.w.PointerMove(sx-p.x, sy-p.y)
	}
}
