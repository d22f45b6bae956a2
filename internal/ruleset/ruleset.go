// Package ruleset holds the immutable rules content the engine runs on:
// ability keys, the score to modifier table, roll outcome bands and the
// level-up constants. A Ruleset is built once and handed to every component.
package ruleset

import (
	_ "embed"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Ability is one of the six fixed ability keys
type Ability string

const (
	AbilityMan Ability = "man"
	AbilityStl Ability = "stl"
	AbilityVio Ability = "vio"
	AbilityHwr Ability = "hwr"
	AbilitySwr Ability = "swr"
	AbilityWwr Ability = "wwr"
)

// Tier is the outcome band of a 2d6 roll
type Tier string

const (
	TierNone    Tier = ""
	TierFailure Tier = "failure"
	TierPartial Tier = "partial"
	TierSuccess Tier = "success"
)

// AbilityDef describes an ability and its localization keys
type AbilityDef struct {
	Key           Ability
	Label         string
	DebilityLabel string
}

//go:embed default.yaml
var defaultContent []byte

// Config is the on-disk shape of a ruleset
type Config struct {
	System               string          `yaml:"system"`
	I18nPrefix           string          `yaml:"i18n_prefix"`
	Abilities            []AbilityConfig `yaml:"abilities"`
	Modifiers            []ModifierBand  `yaml:"modifiers"`
	Tiers                []TierBand      `yaml:"tiers"`
	StandardArray        []int           `yaml:"standard_array"`
	AbilityCap           int             `yaml:"ability_cap"`
	CarryAbility         Ability         `yaml:"carry_ability"`
	StartingBelowLevel   int             `yaml:"starting_below_level"`
	AdvancedTierTwoLevel int             `yaml:"advanced_tier_two_level"`
	MaxLevel             int             `yaml:"max_level"`
	BondSlots            int             `yaml:"bond_slots"`
}

// AbilityConfig is one ability entry in Config
type AbilityConfig struct {
	Key      Ability `yaml:"key"`
	Label    string  `yaml:"label"`
	Debility string  `yaml:"debility"`
}

// ModifierBand maps an inclusive score range to a modifier
type ModifierBand struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
	Mod int `yaml:"mod"`
}

// TierBand maps an inclusive total range to a tier. A nil bound is open.
type TierBand struct {
	Tier  Tier   `yaml:"tier"`
	Min   *int   `yaml:"min"`
	Max   *int   `yaml:"max"`
	Label string `yaml:"label"`
}

// Ruleset is read-only after construction
type Ruleset struct {
	system               string
	i18nPrefix           string
	abilities            []AbilityDef
	modifiers            []ModifierBand
	tiers                []TierBand
	standardArray        []int
	abilityCap           int
	carryAbility         Ability
	startingBelowLevel   int
	advancedTierTwoLevel int
	maxLevel             int
	bondSlots            int
}

// New validates cfg and builds a Ruleset from a copy of it
func New(cfg Config) (*Ruleset, error) {
	if cfg.System == "" {
		return nil, fmt.Errorf("ruleset: system is required")
	}
	if len(cfg.Abilities) == 0 {
		return nil, fmt.Errorf("ruleset: at least one ability is required")
	}
	if len(cfg.Modifiers) == 0 {
		return nil, fmt.Errorf("ruleset: modifier table is required")
	}
	for i, band := range cfg.Modifiers {
		if band.Min > band.Max {
			return nil, fmt.Errorf("ruleset: modifier band %d has min %d above max %d", i, band.Min, band.Max)
		}
		if i > 0 && band.Min != cfg.Modifiers[i-1].Max+1 {
			return nil, fmt.Errorf("ruleset: modifier band %d does not continue band %d", i, i-1)
		}
	}
	if len(cfg.Tiers) == 0 {
		return nil, fmt.Errorf("ruleset: outcome tiers are required")
	}

	rs := &Ruleset{
		system:               cfg.System,
		i18nPrefix:           cfg.I18nPrefix,
		modifiers:            append([]ModifierBand(nil), cfg.Modifiers...),
		tiers:                append([]TierBand(nil), cfg.Tiers...),
		standardArray:        append([]int(nil), cfg.StandardArray...),
		abilityCap:           cfg.AbilityCap,
		carryAbility:         cfg.CarryAbility,
		startingBelowLevel:   cfg.StartingBelowLevel,
		advancedTierTwoLevel: cfg.AdvancedTierTwoLevel,
		maxLevel:             cfg.MaxLevel,
		bondSlots:            cfg.BondSlots,
	}

	seen := make(map[Ability]bool, len(cfg.Abilities))
	for _, a := range cfg.Abilities {
		if a.Key == "" {
			return nil, fmt.Errorf("ruleset: ability key is required")
		}
		if seen[a.Key] {
			return nil, fmt.Errorf("ruleset: duplicate ability %q", a.Key)
		}
		seen[a.Key] = true
		rs.abilities = append(rs.abilities, AbilityDef{Key: a.Key, Label: a.Label, DebilityLabel: a.Debility})
	}
	if rs.carryAbility != "" && !seen[rs.carryAbility] {
		return nil, fmt.Errorf("ruleset: carry ability %q is not a known ability", rs.carryAbility)
	}

	return rs, nil
}

// Load decodes a YAML ruleset
func Load(r io.Reader) (*Ruleset, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode ruleset: %w", err)
	}
	return New(cfg)
}

// Default returns the embedded Paranoid World rules
func Default() *Ruleset {
	var cfg Config
	if err := yaml.Unmarshal(defaultContent, &cfg); err != nil {
		panic(fmt.Sprintf("ruleset: embedded content is invalid: %v", err))
	}
	rs, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return rs
}

// Modifier maps an ability score to its modifier. Scores outside the table
// take the modifier of the nearest band.
func (r *Ruleset) Modifier(score int) int {
	first, last := r.modifiers[0], r.modifiers[len(r.modifiers)-1]
	if score < first.Min {
		return first.Mod
	}
	if score > last.Max {
		return last.Mod
	}
	for _, band := range r.modifiers {
		if score >= band.Min && score <= band.Max {
			return band.Mod
		}
	}
	return 0
}

// EffectiveModifier applies the debility penalty on top of Modifier
func (r *Ruleset) EffectiveModifier(score int, debility bool) int {
	mod := r.Modifier(score)
	if debility {
		mod--
	}
	return mod
}

// Classify maps a roll total to its outcome tier
func (r *Ruleset) Classify(total int) Tier {
	for _, band := range r.tiers {
		if band.Min != nil && total < *band.Min {
			continue
		}
		if band.Max != nil && total > *band.Max {
			continue
		}
		return band.Tier
	}
	return TierNone
}

// TierLabel returns the localization key for a tier
func (r *Ruleset) TierLabel(t Tier) string {
	for _, band := range r.tiers {
		if band.Tier == t {
			return band.Label
		}
	}
	return ""
}

// Abilities returns the abilities in sheet order
func (r *Ruleset) Abilities() []AbilityDef {
	return append([]AbilityDef(nil), r.abilities...)
}

// Ability looks up an ability definition by key
func (r *Ruleset) Ability(key Ability) (AbilityDef, bool) {
	for _, a := range r.abilities {
		if a.Key == key {
			return a, true
		}
	}
	return AbilityDef{}, false
}

// ParseAbility reports whether s names a known ability
func (r *Ruleset) ParseAbility(s string) (Ability, bool) {
	def, ok := r.Ability(Ability(strings.ToLower(strings.TrimSpace(s))))
	return def.Key, ok
}

// System is the namespace used for compendium pack ids
func (r *Ruleset) System() string { return r.system }

// I18nPrefix is the namespace used for localization keys
func (r *Ruleset) I18nPrefix() string { return r.i18nPrefix }

// StandardArray is the set of scores offered at character creation
func (r *Ruleset) StandardArray() []int { return append([]int(nil), r.standardArray...) }

// AbilityCap is the highest raw score an ability may be raised from
func (r *Ruleset) AbilityCap() int { return r.abilityCap }

// CarryAbility is the ability whose modifier adds to carry capacity
func (r *Ruleset) CarryAbility() Ability { return r.carryAbility }

// StartingBelowLevel is the level under which starting moves are offered
func (r *Ruleset) StartingBelowLevel() int { return r.startingBelowLevel }

// AdvancedTierTwoLevel splits advanced moves into the two tiers
func (r *Ruleset) AdvancedTierTwoLevel() int { return r.advancedTierTwoLevel }

// MaxLevel is the highest level a character can reach
func (r *Ruleset) MaxLevel() int { return r.maxLevel }

// BondSlots is the number of bond templates probed per class
func (r *Ruleset) BondSlots() int { return r.bondSlots }

// MovePackID names the compendium pack holding a class's moves
func (r *Ruleset) MovePackID(classSlug string) string {
	return fmt.Sprintf("%s.%s-moves", r.system, classSlug)
}

// BasicMovesPackID names the pack of moves every character starts with
func (r *Ruleset) BasicMovesPackID() string {
	return r.system + ".basic-moves"
}

// ClassesPackID names the compendium pack holding class items
func (r *Ruleset) ClassesPackID() string {
	return r.system + ".classes"
}

// BondKey builds the localization key of the n-th bond template for a class
func (r *Ruleset) BondKey(classSlug string, n int) string {
	return fmt.Sprintf("%s.%s.Bond%d", r.i18nPrefix, classSlug, n)
}

// Key builds a localization key under the system prefix
func (r *Ruleset) Key(suffix string) string {
	return r.i18nPrefix + "." + suffix
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a class name into the identifier used for pack and bond keys
func Slug(name string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-"), "-")
}
