// Package uniswapv2 implements the Uniswap V2 constant-product pricing
// formulas with explicit integer widths and overflow detection.
package uniswapv2

import (
	"fmt"

	"github.com/holiman/uint256"
)

// GetAmountOut returns the maximum output amount for amountIn given the pair
// reserves, writing it into dst:
//
//	amountInWithFee = amountIn * (D - bps)
//	amountOut       = amountInWithFee * reserveOut / (reserveIn * D + amountInWithFee)
//
// Arithmetic is done on 256-bit words like the on-chain router, and any
// intermediate that does not fit reports ErrOverflow. The division truncates,
// so the result is always strictly below reserveOut. A nil dst is allocated.
func GetAmountOut(dst, amountIn, reserveIn, reserveOut *uint256.Int, fee Fee) (*uint256.Int, error) {
	if err := fee.Validate(); err != nil {
		return nil, err
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return nil, ErrInvalidReserve
	}

	var withFee, num, den, k uint256.Int
	if _, overflow := withFee.MulOverflow(amountIn, k.SetUint64(fee.Multiplier())); overflow {
		return nil, fmt.Errorf("%w: amountIn * (D - bps)", ErrOverflow)
	}
	if _, overflow := num.MulOverflow(&withFee, reserveOut); overflow {
		return nil, fmt.Errorf("%w: amountInWithFee * reserveOut", ErrOverflow)
	}
	if _, overflow := den.MulOverflow(reserveIn, k.SetUint64(fee.Denominator)); overflow {
		return nil, fmt.Errorf("%w: reserveIn * D", ErrOverflow)
	}
	if _, overflow := den.AddOverflow(&den, &withFee); overflow {
		return nil, fmt.Errorf("%w: reserveIn * D + amountInWithFee", ErrOverflow)
	}
	if den.IsZero() {
		return nil, ErrDivisionByZero
	}
	if dst == nil {
		dst = new(uint256.Int)
	}
	return dst.Div(&num, &den), nil
}
