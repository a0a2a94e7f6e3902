package handler

import (
	"log/slog"
	"math/big"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/nulln0ne/amm-quoter/internal/service"
	"github.com/nulln0ne/amm-quoter/pkg/uniswapv2"
)

// QuoteHandler prices swaps against reserves given in the request.
type QuoteHandler struct {
	BaseHandler
	service *service.EstimateService
}

func NewQuoteHandler(logger *slog.Logger, svc *service.EstimateService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

type QuoteRequest struct {
	AmountIn       string `query:"amount_in" json:"amount_in"`
	ReserveIn      string `query:"reserve_in" json:"reserve_in"`
	ReserveOut     string `query:"reserve_out" json:"reserve_out"`
	FeeBps         string `query:"fee_bps" json:"fee_bps"`
	FeeDenominator string `query:"fee_denominator" json:"fee_denominator"`
}

type QuoteResponse struct {
	AmountOut      string `json:"amount_out"`
	FeeBps         uint64 `json:"fee_bps"`
	FeeDenominator uint64 `json:"fee_denominator"`
}

// Handle serves GET /quote. amount_in may be zero; reserves are validated by
// the pricing formula itself so its error taxonomy reaches the caller.
func (h *QuoteHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req QuoteRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}

		amountIn, err := parseInteger("amount_in", req.AmountIn)
		if err != nil {
			return err
		}
		reserveIn, err := parseInteger("reserve_in", req.ReserveIn)
		if err != nil {
			return err
		}
		reserveOut, err := parseInteger("reserve_out", req.ReserveOut)
		if err != nil {
			return err
		}
		fee, err := h.parseFee(req.FeeBps, req.FeeDenominator)
		if err != nil {
			return err
		}

		amountOut, err := h.service.Quote(amountIn, reserveIn, reserveOut, &fee)
		if err != nil {
			return h.handleServiceError(err)
		}

		h.logger.Debug("quote computed", "in", amountIn.String(), "reserve_in", reserveIn.String(), "reserve_out", reserveOut.String(), "fee", fee.String(), "out", amountOut.String())
		return c.JSON(QuoteResponse{
			AmountOut:      amountOut.String(),
			FeeBps:         fee.Bps,
			FeeDenominator: fee.Denominator,
		})
	}
}

// parseFee overlays the optional fee parameters on the service default.
func (h *QuoteHandler) parseFee(bps, denominator string) (uniswapv2.Fee, error) {
	fee := h.service.Fee()
	if bps != "" {
		v, err := strconv.ParseUint(bps, 10, 64)
		if err != nil {
			return fee, NewInvalidParam("fee_bps", err)
		}
		fee.Bps = v
	}
	if denominator != "" {
		v, err := strconv.ParseUint(denominator, 10, 64)
		if err != nil {
			return fee, NewInvalidParam("fee_denominator", err)
		}
		fee.Denominator = v
	}
	return fee, nil
}

func parseInteger(field, s string) (*big.Int, error) {
	if s == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, field+" is required")
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+field+" format")
	}
	return v, nil
}
