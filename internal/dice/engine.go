package dice

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
)

// TermResult is the outcome of one term of a formula
type TermResult struct {
	Term  Term
	Rolls []int // every die rolled, in roll order
	Kept  []int // dice counted toward the total
	Total int   // signed contribution to the formula total
}

// Result is an evaluated formula
type Result struct {
	Formula string
	Total   int
	Terms   []TermResult

	expr *Expression
}

// HasTwoD6 reports whether the formula's primary term kept two six-sided dice
func (r *Result) HasTwoD6() bool {
	return r.expr != nil && r.expr.HasTwoD6()
}

// Dice returns the kept dice of every dice term in order
func (r *Result) Dice() []int {
	var out []int
	for _, t := range r.Terms {
		out = append(out, t.Kept...)
	}
	return out
}

// Breakdown renders the per-term detail, e.g. "[4, 4] + 2 + 1"
func (r *Result) Breakdown() string {
	var b strings.Builder
	for i, t := range r.Terms {
		switch {
		case i > 0 && t.Term.Sign < 0:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		case t.Term.Sign < 0:
			b.WriteString("-")
		}

		if !t.Term.IsDice() {
			b.WriteString(strconv.Itoa(t.Term.Constant))
			continue
		}

		parts := make([]string, len(t.Rolls))
		for j, roll := range t.Rolls {
			parts[j] = strconv.Itoa(roll)
		}
		b.WriteString("[" + strings.Join(parts, ", ") + "]")
	}
	return b.String()
}

// Engine evaluates dice formulas
type Engine struct {
	roller Roller
}

// NewEngine creates an engine rolling through roller. A nil roller uses
// NewRandomRoller.
func NewEngine(roller Roller) *Engine {
	if roller == nil {
		roller = NewRandomRoller()
	}
	return &Engine{roller: roller}
}

// Evaluate parses and rolls formula
func (e *Engine) Evaluate(ctx context.Context, formula string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	expr, err := Parse(formula)
	if err != nil {
		return nil, err
	}

	result := &Result{Formula: expr.Raw, expr: expr}
	for _, term := range expr.Terms {
		tr, err := e.evaluateTerm(term)
		if err != nil {
			return nil, pwerr.Wrapf(err, "failed to roll %s", term.Raw).WithMeta("formula", expr.Raw)
		}
		result.Terms = append(result.Terms, tr)
		result.Total += tr.Total
	}

	return result, nil
}

func (e *Engine) evaluateTerm(term Term) (TermResult, error) {
	if !term.IsDice() {
		return TermResult{Term: term, Total: term.Sign * term.Constant}, nil
	}

	rolled, err := e.roller.Roll(term.Count, term.Sides, 0)
	if err != nil {
		return TermResult{}, err
	}
	if len(rolled.Rolls) != term.Count {
		return TermResult{}, fmt.Errorf("roller returned %d dice, expected %d", len(rolled.Rolls), term.Count)
	}

	kept := keep(rolled.Rolls, term.Keep, term.KeepLowest)
	sum := 0
	for _, d := range kept {
		sum += d
	}

	return TermResult{
		Term:  term,
		Rolls: append([]int(nil), rolled.Rolls...),
		Kept:  kept,
		Total: term.Sign * sum,
	}, nil
}

// keep selects n dice, highest first unless lowest is set. n of 0 keeps all.
func keep(rolls []int, n int, lowest bool) []int {
	if n <= 0 || n >= len(rolls) {
		return append([]int(nil), rolls...)
	}

	sorted := append([]int(nil), rolls...)
	if lowest {
		sort.Ints(sorted)
	} else {
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	}
	return sorted[:n]
}
