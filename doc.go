// Package hapticharts turns touches on interactive charts into haptic
// feedback.
//
// A [Widget] binds a [Chart] (bar, stacked bar, pie/donut or bubble) to a set
// of plot bounds and a feedback [Controller]. Every pointer sample goes
// through the same three steps:
//
//  1. the chart's [Layout] answers which region is under the pointer,
//  2. the [Tracker] turns the region into a transition (entered, crossed,
//     exited),
//  3. the [Controller] turns the transition into [Device] calls.
//
// # Quick start
//
//	chart := hapticharts.DefaultBarChart()
//	chart.Values = []float64{0.2, 0.65, 0.4, 0.85, 0.55}
//
//	fb := hapticharts.NewController(device, hapticharts.ModeContinuous)
//	w := hapticharts.NewWidget(chart, hapticharts.Rect{Width: 300, Height: 200}, fb)
//	defer w.Close()
//
//	// From the host's input loop, in chart-local coordinates:
//	w.PointerMove(x, y)
//	w.PointerRelease()
//
//	// From a slider:
//	w.SetParams(intensity, sharpness)
//
// # Geometry
//
// A Layout is the single source of truth for a chart: hosts draw
// [Region.Outline] and the widget hit-tests [Region.Contains] on the same
// regions. Layouts are rebuilt whenever the chart or bounds change and are
// never patched. Degenerate input (no values, zero total, no room) yields an
// empty layout, so every hit test misses instead of failing.
//
// Bars and stacked segments are half-open rectangles; pie slices are annular
// wedges shrunk by the gap and moved out along their bisector by the
// separation; bubbles are edge bands around each circumference, where the
// closest circumference wins when bands overlap.
//
// # Feedback
//
// In [ModeContinuous] one session starts when the pointer first enters a
// region, keeps running while the pointer crosses into adjacent regions,
// receives every parameter change live, and stops when the pointer leaves
// all regions or is released. In [ModePulse] each entry plays one discrete
// pulse instead. Device failures never reach the caller; a device that is not
// capable is never called. [Widget.Close] stops any running session and must
// be called on teardown.
//
// Package ebitenchart hosts widgets in an Ebitengine game, and package ecs
// forwards transitions into a [Donburi] world.
//
// [Donburi]: https://github.com/yohamta/donburi
package hapticharts
