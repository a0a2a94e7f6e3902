package config

import "errors"

// ErrMissingRPCEndpoint indicates that the required ETH_RPC_URL variable is
// not set in the environment.
var ErrMissingRPCEndpoint = errors.New("missing ETH_RPC_URL environment variable")

// ErrInvalidFeeBps is returned when FEE_BPS is not an unsigned integer.
var ErrInvalidFeeBps = errors.New("invalid FEE_BPS environment variable")

// ErrInvalidFeeDenominator is returned when FEE_DENOMINATOR is not an
// unsigned integer.
var ErrInvalidFeeDenominator = errors.New("invalid FEE_DENOMINATOR environment variable")
