package uniswapv2

import "fmt"

// Fee is a proportional trading fee expressed as Bps parts out of
// Denominator. The Uniswap V2 0.3% fee is Fee{Bps: 30, Denominator: 10000}.
type Fee struct {
	Bps         uint64
	Denominator uint64
}

// DefaultFee is the 0.3% fee tier.
var DefaultFee = Fee{Bps: 30, Denominator: 10_000}

// Validate reports ErrInvalidFee unless 0 <= Bps < Denominator.
func (f Fee) Validate() error {
	if f.Denominator == 0 || f.Bps >= f.Denominator {
		return fmt.Errorf("%w: %d/%d", ErrInvalidFee, f.Bps, f.Denominator)
	}
	return nil
}

// Multiplier is the share of the input that reaches the pool, Denominator - Bps.
func (f Fee) Multiplier() uint64 {
	return f.Denominator - f.Bps
}

func (f Fee) String() string {
	return fmt.Sprintf("%d/%d", f.Bps, f.Denominator)
}
