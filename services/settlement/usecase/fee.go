package usecase

import (
	"fmt"
	"math/bits"

	safemath "github.com/luxfi/math"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

// Default treasury cut, one percent
const (
	DefaultFeeNumerator   uint64 = 1
	DefaultFeeDenominator uint64 = 100
)

// SplitFee divides amount into the treasury fee, rounded down, and the
// remainder. fee + remainder always equals amount.
func SplitFee(amount, numerator, denominator uint64) (settlement.FeeSplit, error) {
	if amount == 0 {
		return settlement.FeeSplit{}, settlement.ErrInvalidAmount
	}
	if denominator == 0 || numerator > denominator {
		return settlement.FeeSplit{}, fmt.Errorf("%w: fee ratio %d/%d", settlement.ErrArithmeticOverflow, numerator, denominator)
	}

	hi, lo := bits.Mul64(amount, numerator)
	if hi >= denominator {
		return settlement.FeeSplit{}, fmt.Errorf("%w: %d * %d / %d", settlement.ErrArithmeticOverflow, amount, numerator, denominator)
	}
	fee, _ := bits.Div64(hi, lo, denominator)

	after, err := safemath.Sub(amount, fee)
	if err != nil {
		return settlement.FeeSplit{}, fmt.Errorf("%w: %d - %d", settlement.ErrArithmeticUnderflow, amount, fee)
	}
	total, err := safemath.Add(fee, after)
	if err != nil || total != amount {
		return settlement.FeeSplit{}, fmt.Errorf("%w: fee split does not sum to %d", settlement.ErrArithmeticOverflow, amount)
	}
	return settlement.FeeSplit{Fee: fee, AmountAfterFee: after}, nil
}
