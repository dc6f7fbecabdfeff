package ecs

import (
	"github.com/phanxgames/hapticharts"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransitionEventType is the Donburi event type for widget region
// transitions. Events are queued; drain them with ProcessEvents.
var TransitionEventType = events.NewEventType[hapticharts.TransitionEvent]()

// TouchState mirrors the touch state of a widget bound to an entity.
type TouchState struct {
	WidgetID uint32
	Active   hapticharts.RegionID
	X, Y     float64
	Params   hapticharts.Params
}

// TouchStateComponent stores TouchState on bound entities.
var TouchStateComponent = donburi.NewComponentType[TouchState]()

// DonburiSink publishes widget transitions into a Donburi world.
type DonburiSink struct {
	world    donburi.World
	bindings map[uint32]donburi.Entity
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world, bindings: make(map[uint32]donburi.Entity)}
}

// Bind attaches the widget with the given ID to entity. The entity gains a
// TouchState component if it lacks one.
func (s *DonburiSink) Bind(widgetID uint32, entity donburi.Entity) {
	if !s.world.Valid(entity) {
		return
	}
	entry := s.world.Entry(entity)
	if !entry.HasComponent(TouchStateComponent) {
		entry.AddComponent(TouchStateComponent)
	}
	*TouchStateComponent.Get(entry) = TouchState{WidgetID: widgetID, Active: hapticharts.NoRegion}
	s.bindings[widgetID] = entity
}

// Unbind detaches a widget. Its entity keeps the last TouchState.
func (s *DonburiSink) Unbind(widgetID uint32) {
	delete(s.bindings, widgetID)
}

// EmitEvent implements hapticharts.EventSink.
func (s *DonburiSink) EmitEvent(event hapticharts.TransitionEvent) {
	if entity, ok := s.bindings[event.WidgetID]; ok {
		if s.world.Valid(entity) {
			state := TouchStateComponent.Get(s.world.Entry(entity))
			state.Active = event.To
			state.X, state.Y = event.X, event.Y
			state.Params = event.Params
		} else {
			delete(s.bindings, event.WidgetID)
		}
	}
	TransitionEventType.Publish(s.world, event)
}
