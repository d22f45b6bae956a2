package roll_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/paranoidworld/internal/dice"
	mockdice "github.com/KirkDiggler/paranoidworld/internal/dice/mock"
	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/roll"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

type fakeLocalizer map[string]string

func (f fakeLocalizer) Localize(key string) string {
	if v, ok := f[key]; ok {
		return v
	}
	return key
}

type ResolverTestSuite struct {
	suite.Suite
	roller   *mockdice.ManualMockRoller
	resolver *roll.Resolver
	actor    *entities.Actor
	ctx      context.Context
}

func (s *ResolverTestSuite) SetupTest() {
	rs := ruleset.Default()
	s.roller = mockdice.NewManualMockRoller()

	var err error
	s.resolver, err = roll.NewResolver(&roll.ResolverConfig{
		Ruleset: rs,
		Dice:    dice.NewEngine(s.roller),
		Localizer: fakeLocalizer{
			"PW.AbilityVio":  "Violence",
			"PW.DebilityVio": "Weak",
		},
	})
	s.Require().NoError(err)

	s.actor = &entities.Actor{
		ID:   "a1",
		Name: "Mira",
		Type: entities.ActorTypeCharacter,
		Abilities: map[ruleset.Ability]entities.AbilityScore{
			ruleset.AbilityVio: {Value: 16},
			ruleset.AbilityStl: {Value: 8},
		},
	}
	s.actor.PrepareDerived(rs, nil)
	s.ctx = context.Background()
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func intPtr(n int) *int { return &n }

func (s *ResolverTestSuite) TestFormula() {
	tests := []struct {
		name string
		req  roll.Request
		mode entities.RollMode
		want string
	}{
		{name: "ability with extra modifier", req: roll.Request{Roll: "vio", Modifier: 1}, want: "2d6+2+1"},
		{name: "ability without extra modifier", req: roll.Request{Roll: "vio"}, want: "2d6+2"},
		{name: "negative ability", req: roll.Request{Roll: "stl", Modifier: -1}, want: "2d6-1-1"},
		{name: "ability key is case insensitive", req: roll.Request{Roll: "VIO"}, want: "2d6+2"},
		{name: "raw formula verbatim", req: roll.Request{Roll: "1d8+3", Modifier: 5}, want: "1d8+3"},
		{name: "raw formula with reference", req: roll.Request{Roll: "2d6+@abilities.stl.mod"}, want: "2d6+-1"},
		{name: "bond without value", req: roll.Request{Roll: roll.KeywordBond}, want: "2d6"},
		{name: "bond with zero value", req: roll.Request{Roll: roll.KeywordBond, UserModifier: intPtr(0)}, want: "2d6"},
		{name: "bond with value", req: roll.Request{Roll: roll.KeywordBond, UserModifier: intPtr(2)}, want: "2d6+2"},
		{name: "askmod with value and move modifier", req: roll.Request{Roll: roll.KeywordAskMod, UserModifier: intPtr(-1), Modifier: 1}, want: "2d6-1+1"},
		{name: "advantage", req: roll.Request{Roll: "vio"}, mode: entities.RollModeAdvantage, want: "3d6kh2+2"},
		{name: "disadvantage", req: roll.Request{Roll: roll.KeywordAskMod}, mode: entities.RollModeDisadvantage, want: "3d6kl2"},
		{name: "request mode wins", req: roll.Request{Roll: "vio", Mode: entities.RollModeDefault}, mode: entities.RollModeAdvantage, want: "2d6+2"},
		{name: "mode ignores other dice", req: roll.Request{Roll: "1d8"}, mode: entities.RollModeAdvantage, want: "1d8"},
		{name: "mode leaves raw 2d6 alone", req: roll.Request{Roll: "2d6+1"}, mode: entities.RollModeAdvantage, want: "2d6+1"},
		{name: "mode leaves raw 2d6 alone on disadvantage", req: roll.Request{Roll: "2d6"}, mode: entities.RollModeDisadvantage, want: "2d6"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			actor := s.actor.Clone()
			actor.Flags.RollMode = tt.mode

			got, err := s.resolver.Formula(tt.req, actor)
			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *ResolverTestSuite) TestFormula_UppercaseDiceIsNotRaw() {
	_, err := s.resolver.Formula(roll.Request{Roll: "2D6"}, s.actor)
	s.True(pwerr.IsInvalidFormula(err))
}

func (s *ResolverTestSuite) TestFormula_UnknownAbility() {
	_, err := s.resolver.Formula(roll.Request{Roll: "str"}, s.actor)
	s.True(pwerr.IsInvalidFormula(err))

	_, err = s.resolver.Formula(roll.Request{Roll: "2d6+@abilities.str.mod"}, s.actor)
	s.True(pwerr.IsInvalidFormula(err))

	_, err = s.resolver.Formula(roll.Request{Roll: " "}, s.actor)
	s.True(pwerr.IsInvalidArgument(err))
}

// vio 16 (+2) with +1 rolling 2 and 3 totals 8, a partial success
func (s *ResolverTestSuite) TestResolve_AbilityRollIsClassified() {
	s.roller.SetRolls([]int{2, 3})

	result, err := s.resolver.Resolve(s.ctx, roll.Request{Roll: "vio", Modifier: 1}, s.actor)
	s.Require().NoError(err)

	s.Equal("2d6+2+1", result.Formula)
	s.Equal(8, result.Total)
	s.Equal([]int{2, 3}, result.Dice)
	s.Equal(ruleset.TierPartial, result.Tier)
	s.Equal("PW.partial", result.TierLabel)
	s.Equal("Violence", result.Flavor)
	s.Equal("Violence", result.Title)
}

func (s *ResolverTestSuite) TestResolve_DebilityInFlavor() {
	s.actor.Abilities[ruleset.AbilityVio] = entities.AbilityScore{Value: 16, Mod: 1, Debility: true}
	s.roller.SetRolls([]int{1, 1})

	result, err := s.resolver.Resolve(s.ctx, roll.Request{Roll: "vio", Title: "Wreck"}, s.actor)
	s.Require().NoError(err)

	s.Equal("Violence (Weak)", result.Flavor)
	s.Equal("Wreck", result.Title)
	s.Equal(3, result.Total)
	s.Equal(ruleset.TierFailure, result.Tier)
}

func (s *ResolverTestSuite) TestResolve_NonTwoD6IsUnlabeled() {
	s.roller.SetRolls([]int{7})

	result, err := s.resolver.Resolve(s.ctx, roll.Request{Roll: "1d8+3"}, s.actor)
	s.Require().NoError(err)

	s.Equal(10, result.Total)
	s.False(result.IsClassified())
	s.Empty(result.TierLabel)
	s.Empty(result.Flavor)
}

func (s *ResolverTestSuite) TestResolve_AdvantageKeepsHighest() {
	s.actor.Flags.RollMode = entities.RollModeAdvantage
	s.roller.SetRolls([]int{1, 5, 4})

	result, err := s.resolver.Resolve(s.ctx, roll.Request{Roll: roll.KeywordBond}, s.actor)
	s.Require().NoError(err)

	s.Equal("3d6kh2", result.Formula)
	s.Equal(9, result.Total)
	s.Equal(ruleset.TierPartial, result.Tier)
}

func (s *ResolverTestSuite) TestResolve_MalformedFormula() {
	_, err := s.resolver.Resolve(s.ctx, roll.Request{Roll: "2d6+"}, s.actor)
	s.True(pwerr.IsInvalidFormula(err))
	s.Equal(0, s.roller.Remaining())
}

func TestNewResolver_RequiresRuleset(t *testing.T) {
	_, err := roll.NewResolver(&roll.ResolverConfig{})
	assert.True(t, pwerr.IsInvalidArgument(err))

	_, err = roll.NewResolver(nil)
	assert.True(t, pwerr.IsInvalidArgument(err))
}

// Classification happens for every total the classifier bands cover
func TestResolve_ClassifiesAcrossBands(t *testing.T) {
	rs := ruleset.Default()
	roller := mockdice.NewManualMockRoller()
	resolver, err := roll.NewResolver(&roll.ResolverConfig{Ruleset: rs, Dice: dice.NewEngine(roller)})
	require.NoError(t, err)

	for a := 1; a <= 6; a++ {
		for b := 1; b <= 6; b++ {
			roller.SetRolls([]int{a, b})
			result, err := resolver.Resolve(context.Background(), roll.Request{Roll: "2d6"}, nil)
			require.NoError(t, err)
			assert.Equal(t, rs.Classify(a+b), result.Tier)
		}
	}
}
