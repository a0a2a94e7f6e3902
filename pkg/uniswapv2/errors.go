package uniswapv2

import "errors"

var (
	// ErrInvalidReserve is returned when a pool reserve is zero or negative.
	ErrInvalidReserve = errors.New("uniswapv2: reserves must be positive")
	// ErrInvalidFee is returned when the fee is not in [0, denominator).
	ErrInvalidFee = errors.New("uniswapv2: fee must be in [0, denominator)")
	// ErrOverflow is returned when an intermediate value does not fit the
	// integer width of the chosen path.
	ErrOverflow = errors.New("uniswapv2: arithmetic overflow")
	// ErrDivisionByZero is returned when the formula denominator is zero.
	ErrDivisionByZero = errors.New("uniswapv2: division by zero")
	// ErrInvalidAmount is returned for negative inputs, or a zero output
	// requested from GetAmountIn.
	ErrInvalidAmount = errors.New("uniswapv2: invalid amount")
	// ErrInsufficientLiquidity is returned when the requested output would
	// drain the output reserve.
	ErrInsufficientLiquidity = errors.New("uniswapv2: insufficient liquidity")
)
