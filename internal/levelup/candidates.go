package levelup

import (
	"github.com/KirkDiggler/paranoidworld/internal/entities"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

// AbilityOption is one ability as offered by the level-up dialog
type AbilityOption struct {
	Key      ruleset.Ability `json:"key"`
	Label    string          `json:"label"`
	Value    int             `json:"value"`
	Mod      int             `json:"mod"`
	Disabled bool            `json:"disabled"`
}

// DriveChoice is one drive the class offers
type DriveChoice struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// EquipmentChoice is a class equipment group with its resolved items
type EquipmentChoice struct {
	Key   string           `json:"key"`
	Label string           `json:"label,omitempty"`
	Items []*entities.Item `json:"items"`
}

// CandidateSet is everything the actor may pick when leveling up. It is
// computed without touching the actor and can be discarded freely.
type CandidateSet struct {
	ActorID      string `json:"actor_id"`
	CurrentLevel int    `json:"current_level"`
	Level        int    `json:"level"`
	FirstLevel   bool   `json:"first_level"`
	XPRequired   int    `json:"xp_required"`

	Class       *entities.Item `json:"class"`
	ClassName   string         `json:"class_name"`
	ClassSlug   string         `json:"class_slug"`
	Description string         `json:"description,omitempty"`

	Starting        []MoveGroup      `json:"starting,omitempty"`
	AdvancedTierOne []*entities.Item `json:"advanced_tier_one,omitempty"`
	AdvancedTierTwo []*entities.Item `json:"advanced_tier_two,omitempty"`

	Drives         []DriveChoice     `json:"drives,omitempty"`
	Equipment      []EquipmentChoice `json:"equipment,omitempty"`
	AbilityScores  []int             `json:"ability_scores,omitempty"`
	AbilityOptions []AbilityOption   `json:"ability_options"`
}

// Moves lists every candidate move, starting groups first
func (c *CandidateSet) Moves() []*entities.Item {
	var out []*entities.Item
	for _, g := range c.Starting {
		out = append(out, g.Moves...)
	}
	out = append(out, c.AdvancedTierOne...)
	return append(out, c.AdvancedTierTwo...)
}

// Move finds a candidate move by id
func (c *CandidateSet) Move(id string) (*entities.Item, bool) {
	for _, move := range c.Moves() {
		if move.ID == id {
			return move, true
		}
	}
	return nil, false
}

// EquipmentItem finds an item of any equipment group by id
func (c *CandidateSet) EquipmentItem(id string) (*entities.Item, bool) {
	for _, group := range c.Equipment {
		for _, item := range group.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return nil, false
}

// Drive finds an offered drive by key
func (c *CandidateSet) Drive(key string) (DriveChoice, bool) {
	for _, d := range c.Drives {
		if d.Key == key {
			return d, true
		}
	}
	return DriveChoice{}, false
}

// AbilityOption finds the option for an ability
func (c *CandidateSet) AbilityOption(key ruleset.Ability) (AbilityOption, bool) {
	for _, opt := range c.AbilityOptions {
		if opt.Key == key {
			return opt, true
		}
	}
	return AbilityOption{}, false
}

// Load is the class's base carry load, zero when the class defines none
func (c *CandidateSet) Load() int {
	if c.Class == nil || c.Class.Class == nil {
		return 0
	}
	return c.Class.Class.Load
}
