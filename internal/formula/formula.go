// Package formula evaluates the numeric formulas stored in world settings,
// such as the XP required to level up, against an actor's roll data.
package formula

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
)

// Variables every formula may reference
var rollDataVariables = []string{"attributes", "abilities", "details", "level"}

var referencePattern = regexp.MustCompile(`@([A-Za-z_])`)

// Evaluator compiles formulas once and evaluates them against roll data
type Evaluator struct {
	env *cel.Env

	mu       sync.RWMutex
	programs map[string]cel.Program
}

// NewEvaluator creates the evaluation environment
func NewEvaluator() (*Evaluator, error) {
	opts := []cel.EnvOption{ext.Math()}
	for _, name := range rollDataVariables {
		opts = append(opts, cel.Variable(name, cel.DynType))
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create formula environment: %w", err)
	}

	return &Evaluator{
		env:      env,
		programs: make(map[string]cel.Program),
	}, nil
}

// Normalize rewrites "@attributes.level.value" style references into plain
// variable access
func Normalize(formula string) string {
	return referencePattern.ReplaceAllString(strings.TrimSpace(formula), "$1")
}

// EvalInt evaluates formula and truncates the result to an integer
func (e *Evaluator) EvalInt(formula string, data map[string]any) (int, error) {
	prg, err := e.program(formula)
	if err != nil {
		return 0, err
	}

	vars := make(map[string]any, len(rollDataVariables))
	for _, name := range rollDataVariables {
		if v, ok := data[name]; ok {
			vars[name] = v
		} else {
			vars[name] = map[string]any{}
		}
	}

	out, _, err := prg.Eval(vars)
	if err != nil {
		return 0, pwerr.WrapWithCode(err, pwerr.CodeInvalidFormula, "failed to evaluate formula").
			WithMeta("formula", formula)
	}

	switch v := out.Value().(type) {
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, pwerr.InvalidFormulaf("formula %q is not a finite number", formula)
		}
		return int(math.Floor(v)), nil
	default:
		return 0, pwerr.InvalidFormulaf("formula %q evaluated to %T, not a number", formula, v)
	}
}

func (e *Evaluator) program(formula string) (cel.Program, error) {
	expr := Normalize(formula)
	if expr == "" {
		return nil, pwerr.InvalidFormulaf("formula is empty")
	}

	e.mu.RLock()
	prg, ok := e.programs[expr]
	e.mu.RUnlock()
	if ok {
		return prg, nil
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, pwerr.WrapWithCode(issues.Err(), pwerr.CodeInvalidFormula, "failed to compile formula").
			WithMeta("formula", formula)
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, pwerr.WrapWithCode(err, pwerr.CodeInvalidFormula, "failed to build formula").
			WithMeta("formula", formula)
	}

	e.mu.Lock()
	e.programs[expr] = prg
	e.mu.Unlock()

	return prg, nil
}
