package service

import (
	"context"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/nulln0ne/amm-quoter/internal/eth"
	"github.com/nulln0ne/amm-quoter/internal/metrics"
	"github.com/nulln0ne/amm-quoter/pkg/uniswapv2"
)

// PairReader supplies pair snapshots. *eth.PairReader reads them on-chain.
type PairReader interface {
	ReadPair(ctx context.Context, pool common.Address) (*eth.Pair, error)
}

// EstimateService prices swaps against Uniswap V2 pairs. Reserves come either
// from the chain (Estimate, EstimateIn) or from the caller (Quote).
type EstimateService struct {
	BaseService
	pairs  PairReader
	quoter *uniswapv2.Quoter
}

// NewEstimateService constructs an EstimateService. m may be nil.
func NewEstimateService(logger *slog.Logger, pairs PairReader, quoter *uniswapv2.Quoter, m *metrics.Metrics) *EstimateService {
	return &EstimateService{
		BaseService: BaseService{logger: logger, metrics: m},
		pairs:       pairs,
		quoter:      quoter,
	}
}

// Fee returns the default fee tier.
func (e *EstimateService) Fee() uniswapv2.Fee {
	return e.quoter.Fee()
}

// Estimate computes the expected output amount for swapping amountIn of src to
// dst in the provided pool at the latest block.
func (e *EstimateService) Estimate(ctx context.Context, pool, src, dst common.Address, amountIn *big.Int) (out *big.Int, err error) {
	defer e.observe("estimate_out", time.Now(), &err)
	e.logger.Debug("estimating swap", "pool", pool.Hex(), "src", src.Hex(), "dst", dst.Hex(), "in", amountIn.String())

	reserveIn, reserveOut, err := e.reserves(ctx, pool, src, dst)
	if err != nil {
		return nil, err
	}

	out, err = e.quoter.AmountOut(amountIn, reserveIn, reserveOut)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("amount out computed", "out", out.String())
	return out, nil
}

// EstimateIn computes the input amount of src needed to receive amountOut of
// dst from the provided pool at the latest block.
func (e *EstimateService) EstimateIn(ctx context.Context, pool, src, dst common.Address, amountOut *big.Int) (in *big.Int, err error) {
	defer e.observe("estimate_in", time.Now(), &err)
	e.logger.Debug("estimating exact-out swap", "pool", pool.Hex(), "src", src.Hex(), "dst", dst.Hex(), "out", amountOut.String())

	reserveIn, reserveOut, err := e.reserves(ctx, pool, src, dst)
	if err != nil {
		return nil, err
	}

	in, err = e.quoter.AmountIn(amountOut, reserveIn, reserveOut)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("amount in computed", "in", in.String())
	return in, nil
}

// Quote prices a swap against caller-supplied reserves. A nil fee uses the
// service default.
func (e *EstimateService) Quote(amountIn, reserveIn, reserveOut *big.Int, fee *uniswapv2.Fee) (out *big.Int, err error) {
	defer e.observe("quote", time.Now(), &err)

	if fee == nil {
		return e.quoter.AmountOut(amountIn, reserveIn, reserveOut)
	}
	return uniswapv2.GetAmountOutBig(amountIn, reserveIn, reserveOut, *fee)
}

func (e *EstimateService) reserves(ctx context.Context, pool, src, dst common.Address) (reserveIn, reserveOut *big.Int, err error) {
	if src == dst {
		return nil, nil, ErrSameToken
	}

	pair, err := e.pairs.ReadPair(ctx, pool)
	if err != nil {
		return nil, nil, err
	}

	reserveIn, reserveOut, err = pair.Orient(src, dst)
	if err != nil {
		return nil, nil, err
	}

	if reserveIn.Sign() == 0 || reserveOut.Sign() == 0 {
		return nil, nil, ErrEmptyReserves
	}
	return reserveIn, reserveOut, nil
}

func (e *EstimateService) observe(operation string, start time.Time, err *error) {
	e.metrics.Observe(operation, *err, time.Since(start))
}
