package dice_test

import (
	"testing"

	"github.com/KirkDiggler/paranoidworld/internal/dice"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		formula string
		want    []dice.Term
	}{
		{
			formula: "2d6",
			want:    []dice.Term{{Sign: 1, Count: 2, Sides: 6, Raw: "2d6"}},
		},
		{
			formula: "2d6+2+1",
			want: []dice.Term{
				{Sign: 1, Count: 2, Sides: 6, Raw: "2d6"},
				{Sign: 1, Constant: 2, Raw: "2"},
				{Sign: 1, Constant: 1, Raw: "1"},
			},
		},
		{
			formula: "2d6-1",
			want: []dice.Term{
				{Sign: 1, Count: 2, Sides: 6, Raw: "2d6"},
				{Sign: -1, Constant: 1, Raw: "1"},
			},
		},
		{
			formula: "2d6+-1",
			want: []dice.Term{
				{Sign: 1, Count: 2, Sides: 6, Raw: "2d6"},
				{Sign: -1, Constant: 1, Raw: "1"},
			},
		},
		{
			formula: " 3d6kh2 + 1 ",
			want: []dice.Term{
				{Sign: 1, Count: 3, Sides: 6, Keep: 2, Raw: "3d6kh2"},
				{Sign: 1, Constant: 1, Raw: "1"},
			},
		},
		{
			formula: "3d6kl2",
			want:    []dice.Term{{Sign: 1, Count: 3, Sides: 6, Keep: 2, KeepLowest: true, Raw: "3d6kl2"}},
		},
		{
			formula: "d8",
			want:    []dice.Term{{Sign: 1, Count: 1, Sides: 8, Raw: "d8"}},
		},
		{
			formula: "-1d4",
			want:    []dice.Term{{Sign: -1, Count: 1, Sides: 4, Raw: "1d4"}},
		},
		{
			formula: "5",
			want:    []dice.Term{{Sign: 1, Constant: 5, Raw: "5"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			expr, err := dice.Parse(tt.formula)
			require.NoError(t, err)
			assert.Equal(t, tt.want, expr.Terms)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, formula := range []string{"", "2d6+", "2d6 3", "abc", "2d6*2", "0d6", "2d0", "2d6kh3", "2d6+bond"} {
		t.Run(formula, func(t *testing.T) {
			_, err := dice.Parse(formula)
			require.Error(t, err)
			assert.True(t, pwerr.IsInvalidFormula(err), "got %v", err)
		})
	}
}

func TestExpression_HasTwoD6(t *testing.T) {
	tests := map[string]bool{
		"2d6":      true,
		"2d6+3":    true,
		"3d6kh2":   true,
		"3d6kl2-1": true,
		"1+2d6":    true,
		"1d6":      false,
		"3d6":      false,
		"2d8":      false,
		"1d20+5":   false,
		"7":        false,
		"-2d6":     false,
	}

	for formula, want := range tests {
		expr, err := dice.Parse(formula)
		require.NoError(t, err, formula)
		assert.Equal(t, want, expr.HasTwoD6(), formula)
	}
}
