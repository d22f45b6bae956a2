package entities

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

// AbilityPatch updates one ability
type AbilityPatch struct {
	Value    *int  `json:"value,omitempty"`
	Debility *bool `json:"debility,omitempty"`
}

// ActorPatch is a partial update of an actor. Nil fields are left alone.
type ActorPatch struct {
	Name      *string                          `json:"name,omitempty"`
	Abilities map[ruleset.Ability]AbilityPatch `json:"abilities,omitempty"`
	Level     *int                             `json:"level,omitempty"`
	XP        *int                             `json:"xp,omitempty"`
	WeightMax *int                             `json:"weight_max,omitempty"`
	Harm      *HarmLevel                       `json:"harm,omitempty"`
	Class     *string                          `json:"class,omitempty"`
	Drive     *Drive                           `json:"drive,omitempty"`
	Look      *string                          `json:"look,omitempty"`
	Levelup   *bool                            `json:"levelup,omitempty"`
	RollMode  *RollMode                        `json:"roll_mode,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p ActorPatch) IsEmpty() bool {
	return p.Name == nil && len(p.Abilities) == 0 && p.Level == nil && p.XP == nil &&
		p.WeightMax == nil && p.Harm == nil && p.Class == nil && p.Drive == nil &&
		p.Look == nil && p.Levelup == nil && p.RollMode == nil
}

// SetAbilityValue stages a new raw value for an ability
func (p *ActorPatch) SetAbilityValue(key ruleset.Ability, value int) {
	if p.Abilities == nil {
		p.Abilities = make(map[ruleset.Ability]AbilityPatch)
	}
	ap := p.Abilities[key]
	ap.Value = &value
	p.Abilities[key] = ap
}

// AbilityValue returns the staged value for key when one is set
func (p ActorPatch) AbilityValue(key ruleset.Ability) (int, bool) {
	ap, ok := p.Abilities[key]
	if !ok || ap.Value == nil {
		return 0, false
	}
	return *ap.Value, true
}

// Validate checks the enum fields of the patch
func (p ActorPatch) Validate() error {
	if p.Harm != nil && !p.Harm.Valid() {
		return fmt.Errorf("unknown harm level %q", *p.Harm)
	}
	if p.RollMode != nil && !p.RollMode.Valid() {
		return fmt.Errorf("unknown roll mode %q", *p.RollMode)
	}
	if p.Level != nil && *p.Level < 1 {
		return fmt.Errorf("level must be at least 1")
	}
	return nil
}

// Apply writes the patch onto actor
func (p ActorPatch) Apply(a *Actor) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	for key, ap := range p.Abilities {
		if a.Abilities == nil {
			a.Abilities = make(map[ruleset.Ability]AbilityScore)
		}
		score := a.Abilities[key]
		if ap.Value != nil {
			score.Value = *ap.Value
		}
		if ap.Debility != nil {
			score.Debility = *ap.Debility
		}
		a.Abilities[key] = score
	}
	if p.Level != nil {
		a.Attributes.Level.Value = *p.Level
	}
	if p.XP != nil {
		a.Attributes.XP.Value = *p.XP
	}
	if p.WeightMax != nil {
		a.Attributes.Weight.Max = *p.WeightMax
	}
	if p.Harm != nil {
		a.Attributes.Harm.Value = *p.Harm
	}
	if p.Class != nil {
		a.Details.Class = *p.Class
	}
	if p.Drive != nil {
		a.Details.Drive = *p.Drive
	}
	if p.Look != nil {
		a.Details.Look = *p.Look
	}
	if p.Levelup != nil {
		a.Flags.Levelup = *p.Levelup
	}
	if p.RollMode != nil {
		a.Flags.RollMode = *p.RollMode
	}
}

// AdjustPath builds a patch that moves a numeric sheet field by delta.
// Supported paths are attributes.level.value, attributes.xp.value,
// attributes.weight.max and abilities.<key>.value.
func AdjustPath(a *Actor, rs *ruleset.Ruleset, path string, delta int) (ActorPatch, error) {
	var patch ActorPatch

	switch path {
	case "attributes.level.value":
		v := a.Attributes.Level.Value + delta
		patch.Level = &v
		return patch, patch.Validate()
	case "attributes.xp.value":
		v := a.Attributes.XP.Value + delta
		patch.XP = &v
		return patch, nil
	case "attributes.weight.max":
		v := a.Attributes.Weight.Max + delta
		patch.WeightMax = &v
		return patch, nil
	}

	parts := strings.Split(path, ".")
	if len(parts) == 3 && parts[0] == "abilities" && parts[2] == "value" {
		key, ok := rs.ParseAbility(parts[1])
		if !ok {
			return patch, fmt.Errorf("unknown ability %q", parts[1])
		}
		patch.SetAbilityValue(key, a.Ability(key).Value+delta)
		return patch, nil
	}

	return patch, fmt.Errorf("unsupported attribute path %q", path)
}
