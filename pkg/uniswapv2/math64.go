package uniswapv2

import (
	"fmt"
	"math/bits"
)

// GetAmountOut64 is GetAmountOut restricted to 64-bit operands. The numerator
// is carried in 128 bits, but amountIn * (D - bps) and reserveIn * D + that
// product must each fit a uint64, otherwise ErrOverflow is returned. Callers
// with reserves near the uint64 range should use GetAmountOut.
func GetAmountOut64(amountIn, reserveIn, reserveOut uint64, fee Fee) (uint64, error) {
	if err := fee.Validate(); err != nil {
		return 0, err
	}
	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrInvalidReserve
	}

	hi, withFee := bits.Mul64(amountIn, fee.Multiplier())
	if hi != 0 {
		return 0, fmt.Errorf("%w: amountIn * (D - bps) exceeds 64 bits", ErrOverflow)
	}
	hi, den := bits.Mul64(reserveIn, fee.Denominator)
	if hi != 0 {
		return 0, fmt.Errorf("%w: reserveIn * D exceeds 64 bits", ErrOverflow)
	}
	den, carry := bits.Add64(den, withFee, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: denominator exceeds 64 bits", ErrOverflow)
	}
	if den == 0 {
		return 0, ErrDivisionByZero
	}

	numHi, numLo := bits.Mul64(withFee, reserveOut)
	// bits.Div64 panics when the quotient does not fit.
	if numHi >= den {
		return 0, fmt.Errorf("%w: quotient exceeds 64 bits", ErrOverflow)
	}
	out, _ := bits.Div64(numHi, numLo, den)
	return out, nil
}
