package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
)

const (
	maxDiceCount = 100
	maxDiceSides = 1000
)

// formulaLexer splits a formula into dice terms, integers and signs
var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Dice", Pattern: `\d*[dD]\d+(?:[kK][hHlL]?\d+)?`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Operator", Pattern: `[-+]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type formulaAST struct {
	Head *termAST      `parser:"@@"`
	Tail []*operandAST `parser:"@@*"`
}

type operandAST struct {
	Operator string   `parser:"@Operator"`
	Term     *termAST `parser:"@@"`
}

type termAST struct {
	Negative bool   `parser:"@\"-\"?"`
	Dice     string `parser:"( @Dice"`
	Number   string `parser:"| @Int )"`
}

var formulaParser = participle.MustBuild[formulaAST](
	participle.Lexer(formulaLexer),
	participle.Elide("Whitespace"),
)

var dicePattern = regexp.MustCompile(`^(\d*)[dD](\d+)(?:([kK])([hHlL]?)(\d+))?$`)

// Term is one signed operand of a formula
type Term struct {
	Sign       int // +1 or -1
	Count      int
	Sides      int
	Keep       int // 0 keeps every die
	KeepLowest bool
	Constant   int
	Raw        string
}

// IsDice reports whether the term rolls dice
func (t Term) IsDice() bool {
	return t.Sides > 0
}

// KeptCount is the number of dice contributing to the total
func (t Term) KeptCount() int {
	if t.Keep > 0 {
		return t.Keep
	}
	return t.Count
}

// Expression is a parsed dice formula
type Expression struct {
	Raw   string
	Terms []Term
}

// Parse parses a formula such as "2d6+2-1" or "3d6kh2+1"
func Parse(formula string) (*Expression, error) {
	raw := strings.TrimSpace(formula)
	if raw == "" {
		return nil, pwerr.InvalidFormulaf("formula is empty").WithMeta("formula", formula)
	}

	ast, err := formulaParser.ParseString("", raw)
	if err != nil {
		return nil, pwerr.WrapWithCode(err, pwerr.CodeInvalidFormula, fmt.Sprintf("failed to parse formula %q", raw)).
			WithMeta("formula", raw)
	}

	expr := &Expression{Raw: raw}

	head, termErr := buildTerm(ast.Head, 1)
	if termErr != nil {
		return nil, termErr.WithMeta("formula", raw)
	}
	expr.Terms = append(expr.Terms, head)

	for _, op := range ast.Tail {
		sign := 1
		if op.Operator == "-" {
			sign = -1
		}
		term, termErr := buildTerm(op.Term, sign)
		if termErr != nil {
			return nil, termErr.WithMeta("formula", raw)
		}
		expr.Terms = append(expr.Terms, term)
	}

	return expr, nil
}

func buildTerm(ast *termAST, sign int) (Term, *pwerr.Error) {
	if ast.Negative {
		sign = -sign
	}

	if ast.Number != "" {
		n, err := strconv.Atoi(ast.Number)
		if err != nil {
			return Term{}, pwerr.WrapWithCode(err, pwerr.CodeInvalidFormula, "invalid constant")
		}
		return Term{Sign: sign, Constant: n, Raw: ast.Number}, nil
	}

	m := dicePattern.FindStringSubmatch(ast.Dice)
	if m == nil {
		return Term{}, pwerr.InvalidFormulaf("invalid dice term %q", ast.Dice)
	}

	term := Term{Sign: sign, Count: 1, Raw: ast.Dice}
	if m[1] != "" {
		term.Count, _ = strconv.Atoi(m[1])
	}
	term.Sides, _ = strconv.Atoi(m[2])

	if m[3] != "" {
		term.Keep, _ = strconv.Atoi(m[5])
		term.KeepLowest = strings.EqualFold(m[4], "l")
		if term.Keep < 1 || term.Keep > term.Count {
			return Term{}, pwerr.InvalidFormulaf("cannot keep %d of %d dice in %q", term.Keep, term.Count, ast.Dice)
		}
	}

	if term.Count < 1 || term.Count > maxDiceCount {
		return Term{}, pwerr.InvalidFormulaf("dice count must be between 1 and %d in %q", maxDiceCount, ast.Dice)
	}
	if term.Sides < 1 || term.Sides > maxDiceSides {
		return Term{}, pwerr.InvalidFormulaf("dice sides must be between 1 and %d in %q", maxDiceSides, ast.Dice)
	}

	return term, nil
}

// Primary returns the first dice term of the expression
func (e *Expression) Primary() (Term, bool) {
	for _, t := range e.Terms {
		if t.IsDice() {
			return t, true
		}
	}
	return Term{}, false
}

// HasTwoD6 reports whether the primary term keeps exactly two six-sided dice,
// as in 2d6, 3d6kh2 and 3d6kl2
func (e *Expression) HasTwoD6() bool {
	p, ok := e.Primary()
	return ok && p.Sign > 0 && p.Sides == 6 && p.KeptCount() == 2
}
