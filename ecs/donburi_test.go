package ecs

import (
	"testing"

	"github.com/phanxgames/hapticharts"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

var labelComponent = donburi.NewComponentType[string]()

func newBarWidget() *hapticharts.Widget {
	chart := hapticharts.BarChart{Values: []float64{1, 1, 1}, MaxValue: 1}
	return hapticharts.NewWidget(chart, hapticharts.Rect{Width: 300, Height: 200}, nil)
}

func TestNewDonburiSink(t *testing.T) {
	var sink hapticharts.EventSink = NewDonburiSink(donburi.NewWorld())
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []hapticharts.TransitionEvent
	TransitionEventType.Subscribe(world, func(w donburi.World, e hapticharts.TransitionEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(hapticharts.TransitionEvent{
		Type:     hapticharts.TransitionEntered,
		Chart:    hapticharts.ChartBar,
		WidgetID: 42,
		From:     hapticharts.NoRegion,
		To:       3,
		X:        100,
		Y:        200,
	})
	sink.EmitEvent(hapticharts.TransitionEvent{Type: hapticharts.TransitionExited, WidgetID: 42, From: 3, To: hapticharts.NoRegion})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	TransitionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != hapticharts.TransitionEntered || e0.WidgetID != 42 || e0.To != 3 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.X, e0.Y)
	}
	if received[1].Type != hapticharts.TransitionExited {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_FromWidget(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	w := newBarWidget()
	w.SetEventSink(sink)

	var types []hapticharts.TransitionType
	TransitionEventType.Subscribe(world, func(_ donburi.World, e hapticharts.TransitionEvent) {
		if e.WidgetID != w.ID {
			t.Errorf("event for widget %d, want %d", e.WidgetID, w.ID)
		}
		types = append(types, e.Type)
	})

	w.PointerMove(50, 100)
	w.PointerMove(150, 100)
	w.PointerRelease()
	events.ProcessAllEvents(world)

	want := []hapticharts.TransitionType{hapticharts.TransitionEntered, hapticharts.TransitionCrossed, hapticharts.TransitionExited}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiSink_BindTracksTouchState(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	entity := world.Create(labelComponent)
	w := newBarWidget()
	w.SetEventSink(sink)
	sink.Bind(w.ID, entity)

	entry := world.Entry(entity)
	if !entry.HasComponent(TouchStateComponent) {
		t.Fatal("Bind did not add TouchState")
	}
	if got := TouchStateComponent.Get(entry).Active; got != hapticharts.NoRegion {
		t.Errorf("initial Active = %d, want NoRegion", got)
	}

	w.PointerMove(250, 120)
	state := TouchStateComponent.Get(entry)
	if state.Active != 2 || state.X != 250 || state.Y != 120 || state.WidgetID != w.ID {
		t.Errorf("state after entry: %+v", *state)
	}

	w.PointerRelease()
	if got := TouchStateComponent.Get(entry).Active; got != hapticharts.NoRegion {
		t.Errorf("Active after release = %d, want NoRegion", got)
	}

	sink.Unbind(w.ID)
	w.PointerMove(50, 100)
	if got := TouchStateComponent.Get(entry).Active; got != hapticharts.NoRegion {
		t.Errorf("unbound entity still updated: Active = %d", got)
	}
}

func TestDonburiSink_RemovedEntity(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	entity := world.Create(labelComponent)
	sink.Bind(7, entity)
	world.Remove(entity)

	sink.EmitEvent(hapticharts.TransitionEvent{Type: hapticharts.TransitionEntered, WidgetID: 7, To: 0})
	if _, ok := sink.bindings[7]; ok {
		t.Error("binding to a removed entity was kept")
	}

	// Binding an invalid entity is ignored.
	sink.Bind(8, entity)
	if _, ok := sink.bindings[8]; ok {
		t.Error("bound an invalid entity")
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	TransitionEventType.Subscribe(world, func(w donburi.World, e hapticharts.TransitionEvent) {
		count1++
	})
	TransitionEventType.Subscribe(world, func(w donburi.World, e hapticharts.TransitionEvent) {
		count2++
	})

	sink.EmitEvent(hapticharts.TransitionEvent{Type: hapticharts.TransitionCrossed})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
