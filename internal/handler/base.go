// Package handler defines HTTP request handlers and related utilities.
package handler

import (
	"errors"
	"log/slog"
	"math/big"

	"github.com/nulln0ne/amm-quoter/internal/service"
	"github.com/nulln0ne/amm-quoter/pkg/uniswapv2"
)

// BaseHandler provides common dependencies for HTTP handlers.
type BaseHandler struct {
	logger *slog.Logger
}

func (h *BaseHandler) parseAmount(amountStr string) (*big.Int, error) {
	if amountStr == "" {
		return nil, ErrAmountRequired
	}

	amount, ok := new(big.Int).SetString(amountStr, 10)
	if !ok {
		return nil, ErrInvalidAmountFormat
	}

	if amount.Sign() <= 0 {
		return nil, ErrAmountNonPositive
	}

	return amount, nil
}

// handleServiceError maps service and pricing errors to HTTP errors. Anything
// unrecognised is logged and reported as a 500.
func (h *BaseHandler) handleServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrSameToken):
		return ErrSameTokenBadRequest
	case errors.Is(err, service.ErrEmptyReserves):
		return ErrEmptyReservesBadRequest
	case errors.Is(err, service.ErrPairMismatch):
		return ErrPairMismatchBadRequest
	case errors.Is(err, uniswapv2.ErrInvalidReserve),
		errors.Is(err, uniswapv2.ErrInvalidFee),
		errors.Is(err, uniswapv2.ErrInvalidAmount),
		errors.Is(err, uniswapv2.ErrInsufficientLiquidity):
		return NewRejectedQuote(err)
	case errors.Is(err, uniswapv2.ErrOverflow),
		errors.Is(err, uniswapv2.ErrDivisionByZero):
		return NewUnprocessableQuote(err)
	default:
		h.logger.Error("service estimate failed", "err", err)
		return ErrEstimationFailedInternal
	}
}
