// Package ecs bridges hapticharts widgets into a [Donburi] world.
//
// [NewDonburiSink] returns a hapticharts.EventSink that publishes every
// region transition as a typed Donburi event. Subscribe to
// [TransitionEventType] in your ECS systems to receive them. Widgets can
// also be bound to entities, in which case the sink keeps each entity's
// [TouchState] component in step with the widget's active region.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	sink.Bind(widget.ID, entity)
//	widget.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
