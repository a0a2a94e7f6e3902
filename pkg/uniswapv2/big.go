package uniswapv2

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// GetAmountOutBig is GetAmountOut for *big.Int operands, as returned by
// go-ethereum. Operands wider than 256 bits report ErrOverflow.
func GetAmountOutBig(amountIn, reserveIn, reserveOut *big.Int, fee Fee) (*big.Int, error) {
	in, rIn, rOut, err := toWords(amountIn, reserveIn, reserveOut)
	if err != nil {
		return nil, err
	}
	var out uint256.Int
	if _, err := GetAmountOut(&out, in, rIn, rOut, fee); err != nil {
		return nil, err
	}
	return out.ToBig(), nil
}

// GetAmountInBig is GetAmountIn for *big.Int operands.
func GetAmountInBig(amountOut, reserveIn, reserveOut *big.Int, fee Fee) (*big.Int, error) {
	out, rIn, rOut, err := toWords(amountOut, reserveIn, reserveOut)
	if err != nil {
		return nil, err
	}
	var in uint256.Int
	if _, err := GetAmountIn(&in, out, rIn, rOut, fee); err != nil {
		return nil, err
	}
	return in.ToBig(), nil
}

// QuoteBig is Quote for *big.Int operands.
func QuoteBig(amountA, reserveA, reserveB *big.Int) (*big.Int, error) {
	a, rA, rB, err := toWords(amountA, reserveA, reserveB)
	if err != nil {
		return nil, err
	}
	var b uint256.Int
	if _, err := Quote(&b, a, rA, rB); err != nil {
		return nil, err
	}
	return b.ToBig(), nil
}

func toWords(amount, reserveIn, reserveOut *big.Int) (*uint256.Int, *uint256.Int, *uint256.Int, error) {
	if amount == nil {
		return nil, nil, nil, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}
	if amount.Sign() < 0 {
		return nil, nil, nil, fmt.Errorf("%w: amount must be non-negative", ErrInvalidAmount)
	}
	if reserveIn == nil || reserveOut == nil || reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return nil, nil, nil, ErrInvalidReserve
	}
	a, overflow := uint256.FromBig(amount)
	if overflow {
		return nil, nil, nil, fmt.Errorf("%w: amount exceeds 256 bits", ErrOverflow)
	}
	rIn, overflow := uint256.FromBig(reserveIn)
	if overflow {
		return nil, nil, nil, fmt.Errorf("%w: reserve exceeds 256 bits", ErrOverflow)
	}
	rOut, overflow := uint256.FromBig(reserveOut)
	if overflow {
		return nil, nil, nil, fmt.Errorf("%w: reserve exceeds 256 bits", ErrOverflow)
	}
	return a, rIn, rOut, nil
}
