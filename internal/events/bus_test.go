package events_test

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	"github.com/KirkDiggler/paranoidworld/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_ItemsGranted(t *testing.T) {
	bus := events.NewBus(nil)

	var granted []string
	bus.Subscribe(events.EventTypeItemsGranted, events.NewListener("collector", events.PriorityDefault, func(e events.Event) error {
		if ev, ok := e.(*events.ItemsGrantedEvent); ok {
			for _, item := range ev.Items {
				granted = append(granted, item.Name)
			}
		}
		return nil
	}))

	err := bus.Emit(events.NewItemsGrantedEvent("actor-1", []*entities.Item{
		{Name: "Quickdraw", Type: entities.ItemTypeMove},
		{Name: "Sidearm", Type: entities.ItemTypeEquipment},
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"Quickdraw", "Sidearm"}, granted)
}

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus(nil)

	// Track execution order
	var executionOrder []string

	lowPriority := &testListener{
		id:       "low",
		priority: 300,
		handler: func(e events.Event) error {
			executionOrder = append(executionOrder, "low")
			return nil
		},
	}

	highPriority := &testListener{
		id:       "high",
		priority: 100,
		handler: func(e events.Event) error {
			executionOrder = append(executionOrder, "high")
			return nil
		},
	}

	mediumPriority := &testListener{
		id:       "medium",
		priority: 200,
		handler: func(e events.Event) error {
			executionOrder = append(executionOrder, "medium")
			return nil
		},
	}

	// Subscribe in random order
	bus.Subscribe(events.EventTypeActorLeveledUp, lowPriority)
	bus.Subscribe(events.EventTypeActorLeveledUp, highPriority)
	bus.Subscribe(events.EventTypeActorLeveledUp, mediumPriority)

	err := bus.Emit(events.NewActorLeveledUpEvent("actor-1", 1, 2, 0))
	require.NoError(t, err)

	// Lower priority number runs earlier
	assert.Equal(t, []string{"high", "medium", "low"}, executionOrder)
}

func TestEventBus_Cancellation(t *testing.T) {
	bus := events.NewBus(nil)

	var firstExecuted, secondExecuted bool

	first := &testListener{
		id:       "first",
		priority: 100,
		handler: func(e events.Event) error {
			firstExecuted = true
			e.Cancel()
			return nil
		},
	}

	second := &testListener{
		id:       "second",
		priority: 200,
		handler: func(e events.Event) error {
			secondExecuted = true
			return nil
		},
	}

	bus.Subscribe(events.EventTypeItemCreated, first)
	bus.Subscribe(events.EventTypeItemCreated, second)

	event := events.NewItemCreatedEvent(&entities.Item{Name: "Flare", Type: entities.ItemTypeEquipment})
	err := bus.Emit(event)
	require.NoError(t, err)

	assert.True(t, firstExecuted)
	assert.False(t, secondExecuted)
	assert.True(t, event.IsCancelled())
}

func TestEventBus_ListenerErrorStopsEmit(t *testing.T) {
	bus := events.NewBus(nil)
	bus.Subscribe(events.EventTypeRollResolved, events.NewListener("broken", 1, func(events.Event) error {
		return errors.New("boom")
	}))

	err := bus.Emit(events.NewRollResolvedEvent("actor-1", "2d6", 7, "partial", "Defy Danger"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listener broken failed")
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := events.NewBus(nil)

	calls := 0
	bus.Subscribe(events.EventTypeActorChanged, events.NewListener("counter", 1, func(events.Event) error {
		calls++
		return nil
	}))

	actor := &entities.Actor{ID: "actor-1"}
	require.NoError(t, bus.Emit(events.NewActorChangedEvent(actor, actor, nil)))

	bus.Unsubscribe(events.EventTypeActorChanged, "counter")
	require.NoError(t, bus.Emit(events.NewActorChangedEvent(actor, actor, nil)))

	assert.Equal(t, 1, calls)
}

// Test helper: simple event listener
type testListener struct {
	id       string
	priority int
	handler  func(events.Event) error
}

func (l *testListener) ID() string                       { return l.id }
func (l *testListener) Priority() int                    { return l.priority }
func (l *testListener) HandleEvent(e events.Event) error { return l.handler(e) }
