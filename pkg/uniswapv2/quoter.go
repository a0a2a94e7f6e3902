package uniswapv2

import "math/big"

// Quoter prices swaps against a single fee tier. It holds no mutable state
// and is safe for concurrent use.
type Quoter struct {
	fee Fee
}

// NewQuoter returns a Quoter for fee, or ErrInvalidFee.
func NewQuoter(fee Fee) (*Quoter, error) {
	if err := fee.Validate(); err != nil {
		return nil, err
	}
	return &Quoter{fee: fee}, nil
}

// Fee returns the fee tier the quoter was built with.
func (q *Quoter) Fee() Fee {
	return q.fee
}

// AmountOut returns the output amount for swapping amountIn into the pool.
func (q *Quoter) AmountOut(amountIn, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	return GetAmountOutBig(amountIn, reserveIn, reserveOut, q.fee)
}

// AmountIn returns the input amount needed to receive amountOut.
func (q *Quoter) AmountIn(amountOut, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	return GetAmountInBig(amountOut, reserveIn, reserveOut, q.fee)
}

// Quote returns the fee-less equivalent of amountA at the reserve ratio.
func (q *Quoter) Quote(amountA, reserveA, reserveB *big.Int) (*big.Int, error) {
	return QuoteBig(amountA, reserveA, reserveB)
}
