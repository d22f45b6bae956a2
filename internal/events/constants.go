package events

// Event type constants
const (
	// Progression
	EventTypeActorLeveledUp EventType = "actor_leveled_up"
	EventTypeItemsGranted   EventType = "items_granted"

	// Sheet changes
	EventTypeActorChanged EventType = "actor_changed"
	EventTypeItemCreated  EventType = "item_created"

	// Dice
	EventTypeRollResolved EventType = "roll_resolved"
)

// Listener priorities, lower runs first
const (
	PriorityCache   = 100
	PriorityDefault = 500
	PriorityLogging = 900
)
