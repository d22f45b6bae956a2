package entities

import (
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

// XPRequiredFunc evaluates the XP needed for the next level from roll data
type XPRequiredFunc func(rollData map[string]any) (int, error)

// PrepareDerived recomputes every derived field of a character: ability
// modifiers and labels, carried weight, level default, required XP and roll
// mode. NPCs are left untouched.
func (a *Actor) PrepareDerived(rs *ruleset.Ruleset, xpRequired XPRequiredFunc) {
	if !a.IsCharacter() {
		return
	}

	if a.Abilities == nil {
		a.Abilities = make(map[ruleset.Ability]AbilityScore)
	}
	for _, def := range rs.Abilities() {
		score := a.Abilities[def.Key]
		score.Mod = rs.EffectiveModifier(score.Value, score.Debility)
		score.Label = def.Label
		score.DebilityLabel = def.DebilityLabel
		a.Abilities[def.Key] = score
	}

	a.Attributes.Weight.Value = CarriedWeight(a.Items)

	if a.Attributes.Level.Value < 1 {
		a.Attributes.Level.Value = 1
	}

	a.Attributes.XP.Max = a.Attributes.Level.Value + 7
	if xpRequired != nil {
		if required, err := xpRequired(a.RollData()); err == nil {
			a.Attributes.XP.Max = required
		}
	}

	if a.Flags.RollMode == "" {
		a.Flags.RollMode = RollModeDefault
	}
}

// CarriedWeight sums quantity times weight over equipment with positive weight
func CarriedWeight(items []*Item) int {
	total := 0
	for _, item := range items {
		if item.Type != ItemTypeEquipment || item.Equipment == nil {
			continue
		}
		if item.Equipment.Weight > 0 {
			total += item.Equipment.Quantity * item.Equipment.Weight
		}
	}
	return total
}
