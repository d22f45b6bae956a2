// Package roll turns a roll request into a 2d6 formula, evaluates it and
// classifies the outcome.
package roll

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/paranoidworld/internal/dice"
	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

const baseDice = "2d6"

var (
	// Lowercase d only, so upper-cased input falls through to the ability lookup
	rawFormulaPattern = regexp.MustCompile(`\d*d\d+`)
	referencePattern  = regexp.MustCompile(`@([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)`)
	modeRewrites      = map[entities.RollMode]string{
		entities.RollModeAdvantage:    "3d6kh2",
		entities.RollModeDisadvantage: "3d6kl2",
	}
)

// Localizer resolves label keys for flavor text
type Localizer interface {
	Localize(key string) string
}

// Resolver builds and evaluates roll formulas. It has no side effects.
type Resolver struct {
	rules     *ruleset.Ruleset
	dice      *dice.Engine
	localizer Localizer
	logger    *zap.Logger
}

// ResolverConfig holds the resolver dependencies
type ResolverConfig struct {
	Ruleset *ruleset.Ruleset
	Dice    *dice.Engine

	// Localizer is optional; without it flavor text carries label keys
	Localizer Localizer
	Logger    *zap.Logger
}

// NewResolver creates a resolver
func NewResolver(cfg *ResolverConfig) (*Resolver, error) {
	if cfg == nil {
		return nil, pwerr.InvalidArgument("resolver config is required")
	}
	if cfg.Ruleset == nil {
		return nil, pwerr.InvalidArgument("ruleset is required")
	}

	engine := cfg.Dice
	if engine == nil {
		engine = dice.NewEngine(nil)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{
		rules:     cfg.Ruleset,
		dice:      engine,
		localizer: cfg.Localizer,
		logger:    logger.Named("roll"),
	}, nil
}

// Formula builds the formula for req without rolling it
func (r *Resolver) Formula(req Request, actor *entities.Actor) (string, error) {
	roll := strings.TrimSpace(req.Roll)
	if roll == "" {
		return "", pwerr.InvalidArgument("roll is required")
	}

	var formula string
	switch {
	case req.IsPrompt():
		formula = baseDice
		if req.UserModifier != nil {
			formula += signed(*req.UserModifier)
		}
		formula += signed(req.Modifier)
	case rawFormulaPattern.MatchString(roll):
		// Raw formulas are used as written, roll mode included
		return substitute(roll, actor)
	default:
		key, ok := r.rules.ParseAbility(roll)
		if !ok {
			return "", pwerr.InvalidFormulaf("%q is neither a formula nor an ability", roll).
				WithMeta("formula", roll)
		}
		if actor == nil {
			return "", pwerr.InvalidArgument("an actor is required for ability rolls")
		}
		formula = baseDice + signedAlways(actor.Ability(key).Mod) + signed(req.Modifier)
	}

	mode := req.Mode
	if mode == "" && actor != nil {
		mode = actor.RollMode()
	}
	if rewrite, ok := modeRewrites[mode]; ok && strings.HasPrefix(formula, baseDice) {
		formula = rewrite + strings.TrimPrefix(formula, baseDice)
	}

	return formula, nil
}

// Resolve builds, evaluates and classifies a roll
func (r *Resolver) Resolve(ctx context.Context, req Request, actor *entities.Actor) (*Result, error) {
	formula, err := r.Formula(req, actor)
	if err != nil {
		return nil, err
	}

	rolled, err := r.dice.Evaluate(ctx, formula)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Formula:   rolled.Formula,
		Total:     rolled.Total,
		Dice:      rolled.Dice(),
		Breakdown: rolled.Breakdown(),
		Title:     req.Title,
		Flavor:    r.flavor(req, actor),
		Roll:      rolled,
	}
	if result.Title == "" {
		result.Title = result.Flavor
	}

	if rolled.HasTwoD6() {
		result.Tier = r.rules.Classify(rolled.Total)
		result.TierLabel = r.rules.TierLabel(result.Tier)
	}

	r.logger.Debug("roll resolved",
		zap.String("formula", result.Formula),
		zap.Int("total", result.Total),
		zap.String("tier", string(result.Tier)))

	return result, nil
}

// flavor is the ability label, with the debility label in parentheses when
// the ability is debilitated. Non ability rolls have no flavor.
func (r *Resolver) flavor(req Request, actor *entities.Actor) string {
	if actor == nil || req.IsPrompt() {
		return ""
	}
	key, ok := r.rules.ParseAbility(req.Roll)
	if !ok {
		return ""
	}
	def, _ := r.rules.Ability(key)

	flavor := r.localize(def.Label)
	if actor.Ability(key).Debility {
		flavor += fmt.Sprintf(" (%s)", r.localize(def.DebilityLabel))
	}
	return flavor
}

func (r *Resolver) localize(key string) string {
	if r.localizer == nil {
		return key
	}
	return r.localizer.Localize(key)
}

// signed renders a non-zero modifier as "+n" or "-n", and zero as nothing
func signed(n int) string {
	if n == 0 {
		return ""
	}
	return signedAlways(n)
}

func signedAlways(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}
	return "+" + strconv.Itoa(n)
}

// substitute replaces "@path.to.value" references with the actor's roll data
func substitute(formula string, actor *entities.Actor) (string, error) {
	if !strings.Contains(formula, "@") {
		return formula, nil
	}
	if actor == nil {
		return "", pwerr.InvalidFormulaf("formula %q references actor data", formula).WithMeta("formula", formula)
	}

	data := actor.RollData()
	var missing string
	out := referencePattern.ReplaceAllStringFunc(formula, func(ref string) string {
		v, ok := lookup(data, strings.Split(ref[1:], "."))
		if !ok {
			missing = ref
			return ref
		}
		return strconv.Itoa(v)
	})
	if missing != "" {
		return "", pwerr.InvalidFormulaf("formula %q references unknown value %s", formula, missing).
			WithMeta("formula", formula)
	}
	return out, nil
}

func lookup(data map[string]any, path []string) (int, bool) {
	var cur any = data
	for _, part := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return 0, false
		}
		if cur, ok = m[part]; !ok {
			return 0, false
		}
	}
	switch v := cur.(type) {
	case int:
		return v, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
