package hapticharts

// Params are the two normalized feedback parameters.
type Params struct {
	Intensity float64
	Sharpness float64
}

// Clamp returns p with both parameters clamped to [0, 1].
func (p Params) Clamp() Params {
	return Params{Intensity: clamp01(p.Intensity), Sharpness: clamp01(p.Sharpness)}
}

// DefaultParams are used by a Controller until SetParams is called.
var DefaultParams = Params{Intensity: 0.8, Sharpness: 0.5}

// Device is a feedback sink such as a haptic engine. Calls are
// fire-and-forget: implementations may act asynchronously, and any error they
// return is absorbed by the Controller.
type Device interface {
	// Capable reports whether the device can produce feedback at all. It is
	// consulted once, when the Controller is created.
	Capable() bool
	Start(p Params) error
	Update(p Params) error
	Stop() error
}

// Pulser is implemented by devices that can play a single discrete pulse.
// It is required by ModePulse.
type Pulser interface {
	Pulse(p Params) error
}

// NopDevice is a Device without feedback capability.
type NopDevice struct{}

func (NopDevice) Capable() bool       { return false }
func (NopDevice) Start(Params) error  { return nil }
func (NopDevice) Update(Params) error { return nil }
func (NopDevice) Stop() error         { return nil }
func (NopDevice) Pulse(Params) error  { return nil }

// Session is the state of the single feedback session slot of a Controller.
// Active tracks the logical session (it mirrors the tracker being in a
// region); Suppressed is set once the device has failed during the session,
// after which no further calls are made until the session ends.
type Session struct {
	Active     bool
	Suppressed bool
}

// Controller turns region transitions into Device calls.
//
// In ModeContinuous a session starts on entry, survives region crossings,
// receives every parameter change and stops on exit. In ModePulse each entry
// fires one pulse and no session is ever opened. A Controller whose device is
// not Capable makes no device calls at all.
type Controller struct {
	device  Device
	pulser  Pulser
	mode    FeedbackMode
	enabled bool
	params  Params
	session Session
	log     func(format string, args ...any)
}

// NewController creates a Controller for device in the given mode. A nil
// device behaves like NopDevice.
func NewController(device Device, mode FeedbackMode) *Controller {
	if device == nil {
		device = NopDevice{}
	}
	c := &Controller{
		device: device,
		mode:   mode,
		params: DefaultParams.Clamp(),
	}
	c.enabled = device.Capable()
	if p, ok := device.(Pulser); ok {
		c.pulser = p
	}
	if mode == ModePulse && c.pulser == nil {
		c.enabled = false
	}
	return c
}

// Mode returns the feedback mode chosen at construction.
func (c *Controller) Mode() FeedbackMode { return c.mode }

// Enabled reports whether the controller will call its device.
func (c *Controller) Enabled() bool { return c.enabled }

// Params returns the current, clamped parameters.
func (c *Controller) Params() Params { return c.params }

// Session returns a copy of the session slot.
func (c *Controller) Session() Session { return c.session }

// SessionActive reports whether a continuous session is open.
func (c *Controller) SessionActive() bool { return c.session.Active }

// Handle applies a tracker transition.
func (c *Controller) Handle(t Transition) {
	switch t.Type {
	case TransitionEntered:
		c.Entered(t.To)
	case TransitionExited:
		c.Exited()
	}
}

// Entered opens a session (continuous) or fires a pulse (pulse mode). It is a
// no-op when a session is already open.
func (c *Controller) Entered(id RegionID) {
	if c.mode == ModePulse {
		if c.enabled {
			c.call("pulse", c.pulser.Pulse(c.params))
		}
		return
	}
	if c.session.Active {
		return
	}
	c.session = Session{Active: true}
	if !c.enabled {
		return
	}
	if err := c.device.Start(c.params); err != nil {
		c.session.Suppressed = true
		c.call("start", err)
	}
}

// Exited closes the open session. It is a no-op when none is open.
func (c *Controller) Exited() {
	if !c.session.Active {
		return
	}
	suppressed := c.session.Suppressed
	c.session = Session{}
	if c.enabled && !suppressed {
		c.call("stop", c.device.Stop())
	}
}

// SetParams stores clamped parameters and, while a session is open, forwards
// them to the device immediately.
func (c *Controller) SetParams(p Params) {
	c.params = p.Clamp()
	if c.mode != ModeContinuous || !c.session.Active || c.session.Suppressed || !c.enabled {
		return
	}
	if err := c.device.Update(c.params); err != nil {
		c.session.Suppressed = true
		c.call("update", err)
		c.call("stop", c.device.Stop())
	}
}

// Close ends any open session regardless of tracker state. It must be called
// when the owning widget is torn down.
func (c *Controller) Close() {
	c.Exited()
}

// call reports a swallowed device error through the debug logger.
func (c *Controller) call(op string, err error) {
	if err != nil && c.log != nil {
		c.log("device %s failed: %v", op, err)
	}
}
