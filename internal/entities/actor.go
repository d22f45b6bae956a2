package entities

import (
	"fmt"

	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

// ActorType is the closed set of actor variants
type ActorType string

const (
	ActorTypeCharacter ActorType = "character"
	ActorTypeNPC       ActorType = "npc"
)

// Valid reports whether the actor type is known
func (t ActorType) Valid() bool {
	return t == ActorTypeCharacter || t == ActorTypeNPC
}

// RollMode controls how the primary 2d6 of a roll is rolled
type RollMode string

const (
	RollModeDefault      RollMode = "def"
	RollModeAdvantage    RollMode = "adv"
	RollModeDisadvantage RollMode = "dis"
)

// Valid reports whether the roll mode is known
func (m RollMode) Valid() bool {
	switch m {
	case RollModeDefault, RollModeAdvantage, RollModeDisadvantage:
		return true
	}
	return false
}

// HarmLevel is a step on the harm track
type HarmLevel string

const (
	HarmOkay      HarmLevel = "okay"
	HarmSnafued   HarmLevel = "snafued"
	HarmInjured   HarmLevel = "injured"
	HarmWounded   HarmLevel = "wounded"
	HarmDowned    HarmLevel = "downed"
	HarmMaimed    HarmLevel = "maimed"
	HarmKilled    HarmLevel = "killed"
	HarmVaporized HarmLevel = "vaporized"
)

// HarmLevels lists the harm track from least to most severe
func HarmLevels() []HarmLevel {
	return []HarmLevel{HarmOkay, HarmSnafued, HarmInjured, HarmWounded, HarmDowned, HarmMaimed, HarmKilled, HarmVaporized}
}

// Valid reports whether the harm level is on the track. Empty means okay.
func (h HarmLevel) Valid() bool {
	if h == "" {
		return true
	}
	for _, level := range HarmLevels() {
		if level == h {
			return true
		}
	}
	return false
}

// AbilityScore is one ability on the sheet. Mod and the labels are derived.
type AbilityScore struct {
	Value         int    `json:"value"`
	Mod           int    `json:"mod"`
	Debility      bool   `json:"debility,omitempty"`
	Label         string `json:"label,omitempty"`
	DebilityLabel string `json:"debility_label,omitempty"`
}

// Tracker is a value with an optional maximum
type Tracker struct {
	Value int `json:"value"`
	Max   int `json:"max,omitempty"`
}

// Harm holds the current harm level
type Harm struct {
	Value HarmLevel `json:"value,omitempty"`
}

// Attributes are the numeric sheet fields
type Attributes struct {
	Level  Tracker `json:"level"`
	XP     Tracker `json:"xp"`
	Weight Tracker `json:"weight"`
	Harm   Harm    `json:"harm"`
}

// Drive is the character's chosen drive
type Drive struct {
	Value       string `json:"value,omitempty"`
	Description string `json:"description,omitempty"`
}

// IsEmpty reports whether no drive has been picked
func (d Drive) IsEmpty() bool {
	return d.Value == "" && d.Description == ""
}

// Details are the descriptive sheet fields
type Details struct {
	Class string `json:"class,omitempty"`
	Drive Drive  `json:"drive"`
	Look  string `json:"look,omitempty"`
}

// Flags are the system flags stored on the actor
type Flags struct {
	Levelup       bool     `json:"levelup,omitempty"`
	RollMode      RollMode `json:"roll_mode,omitempty"`
	SidebarClosed bool     `json:"sidebar_closed,omitempty"`
}

// Actor is a character or NPC with its owned items
type Actor struct {
	ID         string                           `json:"id"`
	OwnerID    string                           `json:"owner_id,omitempty"`
	Name       string                           `json:"name"`
	Type       ActorType                        `json:"type"`
	Abilities  map[ruleset.Ability]AbilityScore `json:"abilities"`
	Attributes Attributes                       `json:"attributes"`
	Details    Details                          `json:"details"`
	Items      []*Item                          `json:"items,omitempty"`
	Flags      Flags                            `json:"flags"`
}

// IsCharacter reports whether the actor is a player character
func (a *Actor) IsCharacter() bool {
	return a.Type == ActorTypeCharacter
}

// Level returns the actor's level, 1 when unset
func (a *Actor) Level() int {
	if a.Attributes.Level.Value < 1 {
		return 1
	}
	return a.Attributes.Level.Value
}

// Ability returns the score for key, zero when missing
func (a *Actor) Ability(key ruleset.Ability) AbilityScore {
	return a.Abilities[key]
}

// Item finds an owned item by id
func (a *Actor) Item(id string) (*Item, bool) {
	for _, item := range a.Items {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// ItemsOfType returns owned items of type t in sheet order
func (a *Actor) ItemsOfType(t ItemType) []*Item {
	var out []*Item
	for _, item := range a.Items {
		if item.Type == t {
			out = append(out, item)
		}
	}
	return out
}

// OwnedNames returns the set of owned item names of type t
func (a *Actor) OwnedNames(t ItemType) map[string]bool {
	names := make(map[string]bool)
	for _, item := range a.Items {
		if item.Type == t {
			names[item.Name] = true
		}
	}
	return names
}

// HasStartingMoves reports whether any owned move is a starting move
func (a *Actor) HasStartingMoves() bool {
	for _, item := range a.ItemsOfType(ItemTypeMove) {
		if item.Move != nil && item.Move.MoveType == MoveTypeStarting {
			return true
		}
	}
	return false
}

// RollMode returns the actor's roll mode, def when unset
func (a *Actor) RollMode() RollMode {
	if a.Flags.RollMode == "" {
		return RollModeDefault
	}
	return a.Flags.RollMode
}

// Validate checks the closed enums on the actor and its items
func (a *Actor) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("actor name is required")
	}
	if !a.Type.Valid() {
		return fmt.Errorf("unknown actor type %q", a.Type)
	}
	if a.Flags.RollMode != "" && !a.Flags.RollMode.Valid() {
		return fmt.Errorf("unknown roll mode %q", a.Flags.RollMode)
	}
	if !a.Attributes.Harm.Value.Valid() {
		return fmt.Errorf("unknown harm level %q", a.Attributes.Harm.Value)
	}
	for _, item := range a.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone creates a deep copy of the actor
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	clone := *a
	if a.Abilities != nil {
		clone.Abilities = make(map[ruleset.Ability]AbilityScore, len(a.Abilities))
		for k, v := range a.Abilities {
			clone.Abilities[k] = v
		}
	}
	clone.Items = CloneItems(a.Items)
	return &clone
}

// RollData exposes the actor to formulas as nested maps, matching the
// "@attributes.level.value" reference style
func (a *Actor) RollData() map[string]any {
	abilities := make(map[string]any, len(a.Abilities))
	for k, v := range a.Abilities {
		abilities[string(k)] = map[string]any{
			"value":    v.Value,
			"mod":      v.Mod,
			"debility": v.Debility,
		}
	}

	return map[string]any{
		"abilities": abilities,
		"attributes": map[string]any{
			"level":  map[string]any{"value": a.Level()},
			"xp":     map[string]any{"value": a.Attributes.XP.Value, "max": a.Attributes.XP.Max},
			"weight": map[string]any{"value": a.Attributes.Weight.Value, "max": a.Attributes.Weight.Max},
			"harm":   map[string]any{"value": string(a.Attributes.Harm.Value)},
		},
		"details": map[string]any{
			"class": a.Details.Class,
			"look":  a.Details.Look,
		},
		"level": a.Level(),
	}
}
