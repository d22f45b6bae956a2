package character

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	"github.com/KirkDiggler/paranoidworld/internal/roll"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// ValidateInput validates any input that implements Validator
func ValidateInput(input Validator) error {
	if input == nil {
		return fmt.Errorf("input cannot be nil")
	}
	return input.Validate()
}

// CreateActorInput contains the data needed to create an actor
type CreateActorInput struct {
	OwnerID   string
	Name      string
	Type      entities.ActorType // defaults to character
	Class     string
	Abilities map[ruleset.Ability]int
}

// Validate checks CreateActorInput for validity
func (i *CreateActorInput) Validate() error {
	if i == nil {
		return fmt.Errorf("CreateActorInput cannot be nil")
	}

	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("actor name is required")
	}

	if len(i.Name) > 100 {
		return fmt.Errorf("actor name cannot exceed 100 characters")
	}

	if i.Type != "" && !i.Type.Valid() {
		return fmt.Errorf("unknown actor type %q", i.Type)
	}

	for key, score := range i.Abilities {
		if score < 0 || score > 18 {
			return fmt.Errorf("ability score for %s must be between 0 and 18, got %d", key, score)
		}
	}

	return nil
}

// RollInput asks for a roll on behalf of an actor
type RollInput struct {
	ActorID string
	Request roll.Request
}

// Validate checks RollInput for validity
func (i *RollInput) Validate() error {
	if i == nil {
		return fmt.Errorf("RollInput cannot be nil")
	}

	if i.ActorID == "" {
		return fmt.Errorf("actor ID is required")
	}

	if strings.TrimSpace(i.Request.Roll) == "" {
		return fmt.Errorf("roll is required")
	}

	if i.Request.Mode != "" && !i.Request.Mode.Valid() {
		return fmt.Errorf("unknown roll mode %q", i.Request.Mode)
	}

	return nil
}

// RollItemInput asks for an owned item to be rolled
type RollItemInput struct {
	ActorID      string
	ItemID       string
	UserModifier *int
	Mode         entities.RollMode
}

// Validate checks RollItemInput for validity
func (i *RollItemInput) Validate() error {
	if i == nil {
		return fmt.Errorf("RollItemInput cannot be nil")
	}

	if i.ActorID == "" {
		return fmt.Errorf("actor ID is required")
	}

	if i.ItemID == "" {
		return fmt.Errorf("item ID is required")
	}

	if i.Mode != "" && !i.Mode.Valid() {
		return fmt.Errorf("unknown roll mode %q", i.Mode)
	}

	return nil
}

// Counter names an item field that can be stepped
type Counter string

const (
	CounterUses     Counter = "uses"
	CounterQuantity Counter = "quantity"
)

// AdjustItemCounterInput steps an owned item's counter
type AdjustItemCounterInput struct {
	ActorID string
	ItemID  string
	Counter Counter
	Delta   int
}

// Validate checks AdjustItemCounterInput for validity
func (i *AdjustItemCounterInput) Validate() error {
	if i == nil {
		return fmt.Errorf("AdjustItemCounterInput cannot be nil")
	}

	if i.ActorID == "" {
		return fmt.Errorf("actor ID is required")
	}

	if i.ItemID == "" {
		return fmt.Errorf("item ID is required")
	}

	if i.Counter != CounterUses && i.Counter != CounterQuantity {
		return fmt.Errorf("unknown counter %q", i.Counter)
	}

	if i.Delta == 0 {
		return fmt.Errorf("delta cannot be zero")
	}

	return nil
}
