package events

import (
	"github.com/KirkDiggler/paranoidworld/internal/entities"
)

// EventType represents the type of domain event
type EventType string

// Event is the base interface for all domain events
type Event interface {
	GetType() EventType
	GetActorID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	ActorID   string
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) GetActorID() string { return e.ActorID }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// ActorLeveledUpEvent is emitted when a level-up changes the actor's level
type ActorLeveledUpEvent struct {
	BaseEvent
	PreviousLevel int
	Level         int
	XP            int
}

// NewActorLeveledUpEvent builds an ActorLeveledUpEvent
func NewActorLeveledUpEvent(actorID string, previous, level, xp int) *ActorLeveledUpEvent {
	return &ActorLeveledUpEvent{
		BaseEvent:     BaseEvent{Type: EventTypeActorLeveledUp, ActorID: actorID},
		PreviousLevel: previous,
		Level:         level,
		XP:            xp,
	}
}

// ItemsGrantedEvent is emitted when items are added to an actor
type ItemsGrantedEvent struct {
	BaseEvent
	Items []*entities.Item
}

// NewItemsGrantedEvent builds an ItemsGrantedEvent
func NewItemsGrantedEvent(actorID string, items []*entities.Item) *ItemsGrantedEvent {
	return &ItemsGrantedEvent{
		BaseEvent: BaseEvent{Type: EventTypeItemsGranted, ActorID: actorID},
		Items:     items,
	}
}

// ItemCreatedEvent is emitted when a world item is created
type ItemCreatedEvent struct {
	BaseEvent
	Item *entities.Item
}

// NewItemCreatedEvent builds an ItemCreatedEvent
func NewItemCreatedEvent(item *entities.Item) *ItemCreatedEvent {
	return &ItemCreatedEvent{
		BaseEvent: BaseEvent{Type: EventTypeItemCreated},
		Item:      item,
	}
}

// HarmChange carries the harm level before and after an update
type HarmChange struct {
	Original entities.HarmLevel
	Current  entities.HarmLevel
}

// ActorChangedEvent is emitted after an actor update
type ActorChangedEvent struct {
	BaseEvent
	Before *entities.Actor
	After  *entities.Actor
	Harm   *HarmChange // nil when harm was not part of the update
}

// NewActorChangedEvent builds an ActorChangedEvent
func NewActorChangedEvent(before, after *entities.Actor, harm *HarmChange) *ActorChangedEvent {
	return &ActorChangedEvent{
		BaseEvent: BaseEvent{Type: EventTypeActorChanged, ActorID: after.ID},
		Before:    before,
		After:     after,
		Harm:      harm,
	}
}

// RollResolvedEvent is emitted after a roll has been evaluated
type RollResolvedEvent struct {
	BaseEvent
	Formula string
	Total   int
	Tier    string
	Title   string
}

// NewRollResolvedEvent builds a RollResolvedEvent
func NewRollResolvedEvent(actorID, formula string, total int, tier, title string) *RollResolvedEvent {
	return &RollResolvedEvent{
		BaseEvent: BaseEvent{Type: EventTypeRollResolved, ActorID: actorID},
		Formula:   formula,
		Total:     total,
		Tier:      tier,
		Title:     title,
	}
}
