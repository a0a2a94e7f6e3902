package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nulln0ne/amm-quoter/internal/config"
	"github.com/nulln0ne/amm-quoter/internal/eth"
	"github.com/nulln0ne/amm-quoter/internal/handler"
	"github.com/nulln0ne/amm-quoter/internal/logging"
	"github.com/nulln0ne/amm-quoter/internal/metrics"
	"github.com/nulln0ne/amm-quoter/internal/service"
	"github.com/nulln0ne/amm-quoter/pkg/uniswapv2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	quoter, err := uniswapv2.NewQuoter(cfg.Fee)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ethereumClient, err := eth.Dial(ctx, cfg.RPCEndpoint)
	if err != nil {
		return fmt.Errorf("failed to connect to Ethereum node: %w", err)
	}
	defer ethereumClient.Close()

	registry := prometheus.NewRegistry()
	quoteMetrics := metrics.New(registry)

	estimateService := service.NewEstimateService(logger, eth.NewPairReader(ethereumClient), quoter, quoteMetrics)
	estimateHandler := handler.NewEstimateHandler(logger, estimateService)
	quoteHandler := handler.NewQuoteHandler(logger, estimateService)

	app := fiber.New()
	app.Get("/estimate", estimateHandler.Handle())
	app.Get("/estimate/in", estimateHandler.HandleIn())
	app.Get("/quote", quoteHandler.Handle())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	logger.Info("starting quoter api", "addr", cfg.Addr, "fee", cfg.Fee.String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warn("shutdown", "err", err)
	}
	return nil
}
