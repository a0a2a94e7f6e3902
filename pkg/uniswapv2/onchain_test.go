package uniswapv2_test

import (
	"context"
	"math/big"
	"os"
	"strings"
	"testing"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/stretchr/testify/require"

	"github.com/nulln0ne/amm-quoter/pkg/uniswapv2"
)

const getAmountOutABI = `[{"inputs":[{"internalType":"uint256","name":"amountIn","type":"uint256"},{"internalType":"uint256","name":"reserveIn","type":"uint256"},{"internalType":"uint256","name":"reserveOut","type":"uint256"}],"name":"getAmountOut","outputs":[{"internalType":"uint256","name":"amountOut","type":"uint256"}],"stateMutability":"pure","type":"function"},{"inputs":[{"internalType":"uint256","name":"amountOut","type":"uint256"},{"internalType":"uint256","name":"reserveIn","type":"uint256"},{"internalType":"uint256","name":"reserveOut","type":"uint256"}],"name":"getAmountIn","outputs":[{"internalType":"uint256","name":"amountIn","type":"uint256"}],"stateMutability":"pure","type":"function"}]`

// Uniswap V2 Router02 on mainnet.
var router = common.HexToAddress("0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D")

// TestRouter_Onchain compares the local formulas to Router02's getAmountOut
// and getAmountIn via eth_call. Skips if ETH_RPC_URL is not set.
func TestRouter_Onchain(t *testing.T) {
	rpcURL := os.Getenv("ETH_RPC_URL")
	if rpcURL == "" {
		t.Skip("ETH_RPC_URL not set; skipping on-chain comparison test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	require.NoError(t, err, "dial eth rpc")
	defer client.Close()

	contractABI, err := gethabi.JSON(strings.NewReader(getAmountOutABI))
	require.NoError(t, err)

	call := func(t *testing.T, method string, args ...any) *big.Int {
		t.Helper()
		input, err := contractABI.Pack(method, args...)
		require.NoError(t, err, "abi pack")
		out, err := client.CallContract(ctx, ethereum.CallMsg{To: &router, Data: input}, nil)
		require.NoError(t, err, "eth_call %s", method)
		values, err := contractABI.Unpack(method, out)
		require.NoError(t, err, "abi unpack")
		require.Len(t, values, 1)
		v, ok := values[0].(*big.Int)
		require.True(t, ok, "unexpected output type: %T", values[0])
		return v
	}

	cases := []struct {
		name       string
		amountIn   *big.Int
		reserveIn  *big.Int
		reserveOut *big.Int
	}{
		{"small_balanced", big.NewInt(1_000), big.NewInt(1_000_000), big.NewInt(1_000_000)},
		{"skewed_reserves", big.NewInt(50_000_000_000_000), new(big.Int).SetUint64(5_000_000_000_000_000), new(big.Int).SetUint64(100_000_000_000_000_000)},
		{"large_values", new(big.Int).SetUint64(1_000_000_000_000_000), new(big.Int).SetUint64(50_000_000_000_000_000), new(big.Int).SetUint64(75_000_000_000_000_000)},
		{"wide_reserve_in", big.NewInt(3_734_534_447_974), big.NewInt(33_593_153_629_677_144), big.NewInt(899_196_436)},
	}

	// Router02 hardcodes 997/1000.
	fee := uniswapv2.Fee{Bps: 3, Denominator: 1_000}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			local, err := uniswapv2.GetAmountOutBig(tc.amountIn, tc.reserveIn, tc.reserveOut, fee)
			require.NoError(t, err)
			onchain := call(t, "getAmountOut", tc.amountIn, tc.reserveIn, tc.reserveOut)
			require.Zero(t, local.Cmp(onchain), "getAmountOut mismatch: local=%s onchain=%s", local, onchain)

			if local.Sign() == 0 {
				return
			}
			localIn, err := uniswapv2.GetAmountInBig(local, tc.reserveIn, tc.reserveOut, fee)
			require.NoError(t, err)
			onchainIn := call(t, "getAmountIn", local, tc.reserveIn, tc.reserveOut)
			require.Zero(t, localIn.Cmp(onchainIn), "getAmountIn mismatch: local=%s onchain=%s", localIn, onchainIn)
		})
	}
}
