package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nulln0ne/amm-quoter/pkg/uniswapv2"
)

type Config struct {
	Addr        string
	RPCEndpoint string
	LogLevel    string
	LogFormat   string
	Fee         uniswapv2.Fee
}

func FromEnv() (*Config, error) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":1337"
	}

	rpcURL := os.Getenv("ETH_RPC_URL")
	if rpcURL == "" {
		return nil, ErrMissingRPCEndpoint
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}

	fee := uniswapv2.DefaultFee
	if v := os.Getenv("FEE_BPS"); v != "" {
		bps, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFeeBps, v)
		}
		fee.Bps = bps
	}
	if v := os.Getenv("FEE_DENOMINATOR"); v != "" {
		den, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFeeDenominator, v)
		}
		fee.Denominator = den
	}
	if err := fee.Validate(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:        addr,
		RPCEndpoint: rpcURL,
		LogLevel:    logLevel,
		LogFormat:   logFormat,
		Fee:         fee,
	}

	return cfg, nil
}
