package testutils

import (
	"github.com/KirkDiggler/paranoidworld/internal/entities"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

// CreateTestCharacter creates a level 1 character with no XP, every ability
// at 10 and no owned items
func CreateTestCharacter(id, class string) *entities.Actor {
	abilities := make(map[ruleset.Ability]entities.AbilityScore)
	for _, def := range ruleset.Default().Abilities() {
		abilities[def.Key] = entities.AbilityScore{Value: 10}
	}

	return &entities.Actor{
		ID:        id,
		OwnerID:   "user-1",
		Name:      "Agent " + id,
		Type:      entities.ActorTypeCharacter,
		Abilities: abilities,
		Attributes: entities.Attributes{
			Level: entities.Tracker{Value: 1},
		},
		Details: entities.Details{Class: class},
		Flags:   entities.Flags{Levelup: true},
	}
}

// CreateTestClass creates a class with a carry load, two drives and two
// equipment groups pointing at the CreateTestEquipment ids
func CreateTestClass(id, name string, load int) *entities.Item {
	return &entities.Item{
		ID:          id,
		Name:        name,
		Type:        entities.ItemTypeClass,
		Description: "Field agent for hire.",
		Class: &entities.ClassData{
			Load: load,
			Drives: map[string]entities.DriveOption{
				"loyalty":  {Label: "Loyalty", Description: "Protect the cell at personal cost."},
				"ambition": {Label: "Ambition", Description: "Take credit for a success."},
			},
			Equipment: map[string]*entities.EquipmentGroup{
				"sidearm": {Label: "Sidearm", Items: []string{"eq-pistol", "eq-knife"}},
				"kit":     {Label: "Kit", Items: []string{"eq-vest"}},
			},
		},
	}
}

// CreateTestMove creates a move item
func CreateTestMove(id, name, class string, requiresLevel int, requiresMove, group string) *entities.Item {
	moveType := entities.MoveTypeAdvanced
	if requiresLevel < 2 {
		moveType = entities.MoveTypeStarting
	}
	return &entities.Item{
		ID:   id,
		Name: name,
		Type: entities.ItemTypeMove,
		Move: &entities.MoveData{
			MoveType:      moveType,
			RequiresLevel: requiresLevel,
			RequiresMove:  requiresMove,
			MoveGroup:     group,
			Class:         class,
		},
	}
}

// CreateTestEquipment creates an equipment item with quantity 1
func CreateTestEquipment(id, name string, weight int) *entities.Item {
	return &entities.Item{
		ID:   id,
		Name: name,
		Type: entities.ItemTypeEquipment,
		Equipment: &entities.EquipmentData{
			Quantity: 1,
			Weight:   weight,
		},
	}
}

// OperativeMoves is the Operative move pack used across tests: three starting
// moves in two groups plus one ungrouped, prerequisite chains and both
// advanced tiers
func OperativeMoves() []*entities.Item {
	return []*entities.Item{
		CreateTestMove("op-cover", "Cover Story", "Operative", 1, "", "Tradecraft"),
		CreateTestMove("op-drop", "Dead Drop", "Operative", 1, "", "Tradecraft"),
		CreateTestMove("op-brawl", "Dirty Fighting", "Operative", 1, "", "Close Quarters"),
		CreateTestMove("op-steady", "Steady Hands", "Operative", 1, "", ""),
		CreateTestMove("op-quickdraw", "Quickdraw", "Operative", 2, "Steady Hands", ""),
		CreateTestMove("op-trigger", "Trigger Discipline", "Operative", 2, "Steady Hands", ""),
		CreateTestMove("op-doubletap", "Double Tap", "Operative", 3, "Quickdraw", ""),
		CreateTestMove("op-safehouse", "Safehouse", "Operative", 4, "", ""),
		CreateTestMove("op-ghost", "Ghost Protocol", "Operative", 6, "", ""),
		CreateTestMove("op-burn", "Burn Notice", "Operative", 8, "", ""),
	}
}

// OperativeEquipment is the equipment the test class groups point at
func OperativeEquipment() []*entities.Item {
	return []*entities.Item{
		CreateTestEquipment("eq-pistol", "Pistol", 1),
		CreateTestEquipment("eq-knife", "Knife", 1),
		CreateTestEquipment("eq-vest", "Armored Vest", 2),
	}
}
