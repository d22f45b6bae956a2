package dice_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/paranoidworld/internal/dice"
	mockdice "github.com/KirkDiggler/paranoidworld/internal/dice/mock"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Evaluate(t *testing.T) {
	tests := []struct {
		name          string
		formula       string
		rolls         []int
		wantTotal     int
		wantDice      []int
		wantBreakdown string
		wantTwoD6     bool
	}{
		{
			name:          "ability roll",
			formula:       "2d6+2+1",
			rolls:         []int{2, 3},
			wantTotal:     8,
			wantDice:      []int{2, 3},
			wantBreakdown: "[2, 3] + 2 + 1",
			wantTwoD6:     true,
		},
		{
			name:          "negative modifier",
			formula:       "2d6-1",
			rolls:         []int{6, 5},
			wantTotal:     10,
			wantDice:      []int{6, 5},
			wantBreakdown: "[6, 5] - 1",
			wantTwoD6:     true,
		},
		{
			name:          "advantage keeps highest",
			formula:       "3d6kh2",
			rolls:         []int{1, 5, 4},
			wantTotal:     9,
			wantDice:      []int{5, 4},
			wantBreakdown: "[1, 5, 4]",
			wantTwoD6:     true,
		},
		{
			name:          "disadvantage keeps lowest",
			formula:       "3d6kl2+1",
			rolls:         []int{1, 5, 4},
			wantTotal:     6,
			wantDice:      []int{1, 4},
			wantBreakdown: "[1, 5, 4] + 1",
			wantTwoD6:     true,
		},
		{
			name:          "damage die",
			formula:       "1d10+2",
			rolls:         []int{7},
			wantTotal:     9,
			wantDice:      []int{7},
			wantBreakdown: "[7] + 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.rolls)
			engine := dice.NewEngine(roller)

			result, err := engine.Evaluate(context.Background(), tt.formula)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantDice, result.Dice())
			assert.Equal(t, tt.wantBreakdown, result.Breakdown())
			assert.Equal(t, tt.wantTwoD6, result.HasTwoD6())
			assert.Equal(t, 0, roller.Remaining())
		})
	}
}

func TestEngine_EvaluateInvalidFormula(t *testing.T) {
	engine := dice.NewEngine(mockdice.NewManualMockRoller())

	_, err := engine.Evaluate(context.Background(), "2d6++")
	require.Error(t, err)
	assert.True(t, pwerr.IsInvalidFormula(err))
}

func TestEngine_EvaluateRollerFailure(t *testing.T) {
	engine := dice.NewEngine(mockdice.NewManualMockRoller())

	_, err := engine.Evaluate(context.Background(), "2d6")
	require.Error(t, err)
	assert.Equal(t, "2d6", pwerr.GetMeta(err)["formula"])
}

func TestEngine_EvaluateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dice.NewEngine(nil).Evaluate(ctx, "2d6")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_RandomRollerStaysInRange(t *testing.T) {
	engine := dice.NewEngine(dice.NewSeededRoller(7))

	for i := 0; i < 50; i++ {
		result, err := engine.Evaluate(context.Background(), "2d6+1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Total, 3)
		assert.LessOrEqual(t, result.Total, 13)
	}
}
