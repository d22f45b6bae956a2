package roll

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

// ChatCard is the payload posted to chat for a roll or an unrolled move
type ChatCard struct {
	Speaker     string `json:"speaker"`
	Title       string `json:"title"`
	Flavor      string `json:"flavor,omitempty"`
	Description string `json:"description,omitempty"`
	Formula     string `json:"formula,omitempty"`
	Total       int    `json:"total,omitempty"`
	Dice        []int  `json:"dice,omitempty"`
	Breakdown   string `json:"breakdown,omitempty"`
	Result      string `json:"result,omitempty"`
	ResultLabel string `json:"result_label,omitempty"`
	// CanMarkXP is set on failed rolls, which earn XP
	CanMarkXP bool `json:"can_mark_xp,omitempty"`
}

// NewChatCard builds the card for a resolved roll. result may be nil for a
// move that is posted without rolling.
func NewChatCard(actor *entities.Actor, title, description string, result *Result, localizer Localizer) *ChatCard {
	card := &ChatCard{
		Title:       title,
		Description: description,
	}
	if actor != nil {
		card.Speaker = actor.Name
	}
	if result == nil {
		return card
	}

	if card.Title == "" {
		card.Title = result.Title
	}
	card.Flavor = result.Flavor
	card.Formula = result.Formula
	card.Total = result.Total
	card.Dice = append([]int(nil), result.Dice...)
	card.Breakdown = result.Breakdown
	if result.IsClassified() {
		card.Result = string(result.Tier)
		card.ResultLabel = result.TierLabel
		if localizer != nil {
			card.ResultLabel = localizer.Localize(result.TierLabel)
		}
		card.CanMarkXP = result.Tier == ruleset.TierFailure
	}
	return card
}

// Text renders the card as plain lines
func (c *ChatCard) Text() string {
	var b strings.Builder
	if c.Speaker != "" {
		fmt.Fprintf(&b, "%s: ", c.Speaker)
	}
	b.WriteString(c.Title)
	if c.Flavor != "" && c.Flavor != c.Title {
		fmt.Fprintf(&b, " [%s]", c.Flavor)
	}
	b.WriteString("\n")
	if c.Formula != "" {
		fmt.Fprintf(&b, "%s = %s = %d", c.Formula, c.Breakdown, c.Total)
		if c.ResultLabel != "" {
			fmt.Fprintf(&b, " (%s)", c.ResultLabel)
		}
		b.WriteString("\n")
	}
	if c.Description != "" {
		b.WriteString(c.Description)
		b.WriteString("\n")
	}
	return b.String()
}
