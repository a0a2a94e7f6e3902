package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"

	"github.com/nulln0ne/amm-quoter/internal/service"
)

// estimateTimeout bounds the on-chain reserve read of a single request.
const estimateTimeout = 10 * time.Second

type EstimateHandler struct {
	BaseHandler
	service *service.EstimateService
}

func NewEstimateHandler(logger *slog.Logger, svc *service.EstimateService) *EstimateHandler {
	return &EstimateHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

type EstimateRequest struct {
	Pool      string `query:"pool" json:"pool"`
	Src       string `query:"src" json:"src"`
	Dst       string `query:"dst" json:"dst"`
	AmountIn  string `query:"src_amount" json:"amount_in"`
	AmountOut string `query:"dst_amount" json:"amount_out"`
}

// Handle serves GET /estimate: the dst amount received for src_amount of src.
func (h *EstimateHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		req, err := h.parseAndValidateRequest(c)
		if err != nil {
			return err
		}

		amountIn, err := h.parseAmount(req.AmountIn)
		if err != nil {
			return NewInvalidAmountIn(err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), estimateTimeout)
		defer cancel()

		amountOut, err := h.service.Estimate(ctx, common.HexToAddress(req.Pool), common.HexToAddress(req.Src), common.HexToAddress(req.Dst), amountIn)
		if err != nil {
			return h.handleServiceError(err)
		}

		h.logger.Debug("estimate computed", "pool", req.Pool, "src", req.Src, "dst", req.Dst, "in", amountIn.String(), "out", amountOut.String())
		return c.SendString(amountOut.String())
	}
}

// HandleIn serves GET /estimate/in: the src amount needed to receive
// dst_amount of dst.
func (h *EstimateHandler) HandleIn() fiber.Handler {
	return func(c fiber.Ctx) error {
		req, err := h.parseAndValidateRequest(c)
		if err != nil {
			return err
		}

		amountOut, err := h.parseAmount(req.AmountOut)
		if err != nil {
			return NewInvalidParam("dst_amount", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), estimateTimeout)
		defer cancel()

		amountIn, err := h.service.EstimateIn(ctx, common.HexToAddress(req.Pool), common.HexToAddress(req.Src), common.HexToAddress(req.Dst), amountOut)
		if err != nil {
			return h.handleServiceError(err)
		}

		h.logger.Debug("exact-out estimate computed", "pool", req.Pool, "src", req.Src, "dst", req.Dst, "in", amountIn.String(), "out", amountOut.String())
		return c.SendString(amountIn.String())
	}
}

func (h *EstimateHandler) parseAndValidateRequest(c fiber.Ctx) (*EstimateRequest, error) {
	var req EstimateRequest

	if err := c.Bind().Query(&req); err != nil {
		h.logger.Debug("failed to bind query parameters", "err", err)
		return nil, ErrInvalidQueryParameters
	}

	if err := h.validateAddresses(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

func (h *EstimateHandler) validateAddresses(req *EstimateRequest) error {
	fields := []struct{ name, addr string }{
		{"pool", req.Pool},
		{"src", req.Src},
		{"dst", req.Dst},
	}

	for _, f := range fields {
		if f.addr == "" {
			return NewAddressRequired(f.name)
		}
		if !common.IsHexAddress(f.addr) {
			return NewInvalidAddress(f.name)
		}
	}

	if common.HexToAddress(req.Src) == common.HexToAddress(req.Dst) {
		return ErrSameAddresses
	}

	return nil
}
