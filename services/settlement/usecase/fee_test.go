package usecase

import (
	"math"
	"testing"

	"github.com/piresc/nebengjek-settlement/services/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFee(t *testing.T) {
	tests := []struct {
		name   string
		amount uint64
		fee    uint64
		after  uint64
	}{
		{"one million", 1_000_000, 10_000, 990_000},
		{"rounds fee down", 199, 1, 198},
		{"below one percent", 99, 0, 99},
		{"single unit", 1, 0, 1},
		{"max amount", math.MaxUint64, math.MaxUint64 / 100, math.MaxUint64 - math.MaxUint64/100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := SplitFee(tt.amount, DefaultFeeNumerator, DefaultFeeDenominator)
			require.NoError(t, err)
			assert.Equal(t, tt.fee, split.Fee)
			assert.Equal(t, tt.after, split.AmountAfterFee)
		})
	}
}

func TestSplitFee_SumsToAmount(t *testing.T) {
	for amount := uint64(1); amount < 1<<20; amount = amount*3 + 7 {
		split, err := SplitFee(amount, DefaultFeeNumerator, DefaultFeeDenominator)
		require.NoError(t, err)
		assert.Equal(t, amount, split.Fee+split.AmountAfterFee, "amount %d", amount)
		assert.Equal(t, amount/100, split.Fee, "amount %d", amount)
	}
}

func TestSplitFee_Errors(t *testing.T) {
	_, err := SplitFee(0, 1, 100)
	assert.ErrorIs(t, err, settlement.ErrInvalidAmount)

	_, err = SplitFee(100, 1, 0)
	assert.ErrorIs(t, err, settlement.ErrArithmeticOverflow)

	_, err = SplitFee(100, 101, 100)
	assert.ErrorIs(t, err, settlement.ErrArithmeticOverflow)
}
