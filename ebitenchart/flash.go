package ebitenchart

import (
	"errors"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/hapticharts"
)

// ErrNotRunning is returned by FlashDevice.Update outside a session.
var ErrNotRunning = errors.New("ebitenchart: flash update without a running session")

// FlashDevice is a hapticharts.Device that renders feedback as light instead
// of vibration. Its Level rises toward the session intensity while a session
// runs and decays to zero when it stops. Sharper parameters attack faster.
//
// FlashDevice also implements hapticharts.Pulser. Call Tick once per frame.
type FlashDevice struct {
	// MinAttack and MaxAttack bound the rise time in seconds: sharpness 1
	// uses MinAttack, sharpness 0 uses MaxAttack.
	MinAttack float32
	MaxAttack float32
	// Decay is the fall time in seconds after Stop or a pulse.
	Decay float32

	level   float32
	tween   *gween.Tween
	running bool
	params  hapticharts.Params
}

// NewFlashDevice returns a FlashDevice with default timings.
func NewFlashDevice() *FlashDevice {
	return &FlashDevice{MinAttack: 0.03, MaxAttack: 0.25, Decay: 0.35}
}

// Capable always reports true.
func (f *FlashDevice) Capable() bool { return true }

// Start begins a session and tweens the level up to p.Intensity.
func (f *FlashDevice) Start(p hapticharts.Params) error {
	f.running = true
	f.params = p.Clamp()
	f.retarget(float32(f.params.Intensity), f.attack(), ease.OutCubic)
	return nil
}

// Update retargets the running session to p.
func (f *FlashDevice) Update(p hapticharts.Params) error {
	if !f.running {
		return ErrNotRunning
	}
	f.params = p.Clamp()
	f.retarget(float32(f.params.Intensity), f.attack(), ease.OutCubic)
	return nil
}

// Stop ends the session and lets the level decay to zero.
func (f *FlashDevice) Stop() error {
	f.running = false
	f.retarget(0, f.Decay, ease.OutQuad)
	return nil
}

// Pulse jumps the level to p.Intensity and decays it immediately.
func (f *FlashDevice) Pulse(p hapticharts.Params) error {
	p = p.Clamp()
	f.params = p
	f.level = float32(p.Intensity)
	f.retarget(0, f.Decay, ease.OutQuad)
	return nil
}

// Tick advances the current tween by dt seconds.
func (f *FlashDevice) Tick(dt float32) {
	if f.tween == nil {
		return
	}
	v, done := f.tween.Update(dt)
	f.level = v
	if done {
		f.tween = nil
	}
}

// Level returns the current glow level in [0, 1].
func (f *FlashDevice) Level() float64 { return float64(f.level) }

// Running reports whether a session is open.
func (f *FlashDevice) Running() bool { return f.running }

// Params returns the parameters of the last Start, Update or Pulse.
func (f *FlashDevice) Params() hapticharts.Params { return f.params }

func (f *FlashDevice) attack() float32 {
	s := float32(f.params.Sharpness)
	return f.MaxAttack + (f.MinAttack-f.MaxAttack)*s
}

func (f *FlashDevice) retarget(to, dur float32, fn ease.TweenFunc) {
	if dur <= 0 {
		f.level = to
		f.tween = nil
		return
	}
	f.tween = gween.New(f.level, to, dur, fn)
}
