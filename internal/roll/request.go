package roll

import (
	"github.com/KirkDiggler/paranoidworld/internal/dice"
	"github.com/KirkDiggler/paranoidworld/internal/entities"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

// Keywords that ask the player for a modifier instead of reading an ability
const (
	KeywordBond   = "BOND"
	KeywordAskMod = "ASKMOD"
)

// Request is one roll to resolve
type Request struct {
	// Roll is a raw dice formula, an ability key, BOND or ASKMOD
	Roll string

	// Modifier is the flat modifier carried by the move, added when non-zero
	Modifier int

	// UserModifier is the value the player typed for BOND and ASKMOD rolls
	UserModifier *int

	// Title names the roll on the chat card, usually the move name
	Title string

	// Mode overrides the actor's roll mode when set
	Mode entities.RollMode
}

// IsPrompt reports whether the request needs a player supplied modifier
func (r Request) IsPrompt() bool {
	return r.Roll == KeywordBond || r.Roll == KeywordAskMod
}

// Result is a resolved roll
type Result struct {
	Formula   string
	Total     int
	Dice      []int
	Breakdown string

	// Tier is empty when the formula's primary term is not two d6
	Tier      ruleset.Tier
	TierLabel string

	Flavor string
	Title  string

	Roll *dice.Result `json:"-"`
}

// IsClassified reports whether an outcome tier was assigned
func (r *Result) IsClassified() bool {
	return r.Tier != ruleset.TierNone
}
