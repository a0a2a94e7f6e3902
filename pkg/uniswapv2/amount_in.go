package uniswapv2

import (
	"fmt"

	"github.com/holiman/uint256"
)

// GetAmountIn returns the minimum input amount required to receive amountOut,
// writing it into dst:
//
//	amountIn = reserveIn * amountOut * D / ((reserveOut - amountOut) * (D - bps)) + 1
//
// The trailing +1 rounds in favour of the pool, so
// GetAmountOut(GetAmountIn(x)) >= x. A nil dst is allocated.
func GetAmountIn(dst, amountOut, reserveIn, reserveOut *uint256.Int, fee Fee) (*uint256.Int, error) {
	if err := fee.Validate(); err != nil {
		return nil, err
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return nil, ErrInvalidReserve
	}
	if amountOut.IsZero() {
		return nil, fmt.Errorf("%w: amountOut must be positive", ErrInvalidAmount)
	}
	if !amountOut.Lt(reserveOut) {
		return nil, fmt.Errorf("%w: amountOut %s >= reserveOut %s", ErrInsufficientLiquidity, amountOut.Dec(), reserveOut.Dec())
	}

	var num, den, k uint256.Int
	if _, overflow := num.MulOverflow(reserveIn, amountOut); overflow {
		return nil, fmt.Errorf("%w: reserveIn * amountOut", ErrOverflow)
	}
	if _, overflow := num.MulOverflow(&num, k.SetUint64(fee.Denominator)); overflow {
		return nil, fmt.Errorf("%w: reserveIn * amountOut * D", ErrOverflow)
	}
	den.Sub(reserveOut, amountOut)
	if _, overflow := den.MulOverflow(&den, k.SetUint64(fee.Multiplier())); overflow {
		return nil, fmt.Errorf("%w: (reserveOut - amountOut) * (D - bps)", ErrOverflow)
	}
	if den.IsZero() {
		return nil, ErrDivisionByZero
	}
	if dst == nil {
		dst = new(uint256.Int)
	}
	dst.Div(&num, &den)
	if _, overflow := dst.AddOverflow(dst, k.SetOne()); overflow {
		return nil, fmt.Errorf("%w: amountIn + 1", ErrOverflow)
	}
	return dst, nil
}

// Quote returns the amount of the other asset equivalent to amountA at the
// current reserve ratio, without fees: amountA * reserveB / reserveA. A nil
// dst is allocated.
func Quote(dst, amountA, reserveA, reserveB *uint256.Int) (*uint256.Int, error) {
	if reserveA.IsZero() || reserveB.IsZero() {
		return nil, ErrInvalidReserve
	}
	var num uint256.Int
	if _, overflow := num.MulOverflow(amountA, reserveB); overflow {
		return nil, fmt.Errorf("%w: amountA * reserveB", ErrOverflow)
	}
	if dst == nil {
		dst = new(uint256.Int)
	}
	return dst.Div(&num, reserveA), nil
}
