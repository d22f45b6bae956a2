package levelup

import (
	"sort"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

// Eligible reports whether move can be taken at level by an actor owning the
// moves named in owned
func Eligible(move *entities.Item, level int, owned map[string]bool) bool {
	if move == nil || move.Type != entities.ItemTypeMove {
		return false
	}
	if move.RequiresLevel() > level {
		return false
	}
	if owned[move.Name] {
		return false
	}
	if move.Move != nil && move.Move.RequiresMove != "" && !owned[move.Move.RequiresMove] {
		return false
	}
	return true
}

// MergeMoves appends the library moves whose names are not already used by a
// local move. Names compare case-sensitively.
func MergeMoves(local, library []*entities.Item) []*entities.Item {
	names := make(map[string]bool, len(local))
	merged := make([]*entities.Item, 0, len(local)+len(library))
	for _, move := range local {
		names[move.Name] = true
		merged = append(merged, move)
	}
	for _, move := range library {
		if names[move.Name] {
			continue
		}
		names[move.Name] = true
		merged = append(merged, move)
	}
	return merged
}

// FilterEligible keeps the moves Eligible accepts, preserving order
func FilterEligible(moves []*entities.Item, level int, owned map[string]bool) []*entities.Item {
	var out []*entities.Item
	for _, move := range moves {
		if Eligible(move, level, owned) {
			out = append(out, move)
		}
	}
	return out
}

// MoveGroup is a named group of starting moves. The ungrouped bucket has an
// empty Key.
type MoveGroup struct {
	Key   string           `json:"key"`
	Moves []*entities.Item `json:"moves"`
}

// Buckets is the partitioned move list shown in the level-up dialog
type Buckets struct {
	Starting []MoveGroup     `json:"starting,omitempty"`
	TierOne  []*entities.Item `json:"tier_one,omitempty"`
	TierTwo  []*entities.Item `json:"tier_two,omitempty"`
}

// Partition splits moves by level requirement. Starting moves are only
// offered below the ruleset's starting level; they are grouped by move group
// with the ungrouped bucket last. Every bucket is ordered by requires level.
func Partition(moves []*entities.Item, level int, rules *ruleset.Ruleset) Buckets {
	sorted := append([]*entities.Item(nil), moves...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RequiresLevel() < sorted[j].RequiresLevel()
	})

	startingBelow := rules.StartingBelowLevel()
	tierTwoFrom := rules.AdvancedTierTwoLevel()

	var b Buckets
	groups := make(map[string][]*entities.Item)
	for _, move := range sorted {
		r := move.RequiresLevel()
		switch {
		case r < startingBelow:
			if level < startingBelow {
				key := ""
				if move.Move != nil {
					key = move.Move.MoveGroup
				}
				groups[key] = append(groups[key], move)
			}
		case r < tierTwoFrom:
			b.TierOne = append(b.TierOne, move)
		default:
			b.TierTwo = append(b.TierTwo, move)
		}
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		// Ungrouped sorts last
		if keys[i] == "" || keys[j] == "" {
			return keys[j] == ""
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		b.Starting = append(b.Starting, MoveGroup{Key: key, Moves: groups[key]})
	}

	return b
}

// StartingMoves flattens the starting groups
func (b Buckets) StartingMoves() []*entities.Item {
	var out []*entities.Item
	for _, g := range b.Starting {
		out = append(out, g.Moves...)
	}
	return out
}

// Len is the number of moves across every bucket
func (b Buckets) Len() int {
	return len(b.StartingMoves()) + len(b.TierOne) + len(b.TierTwo)
}
