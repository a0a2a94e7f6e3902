package uniswapv2

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetAmountOutBig(t *testing.T) {
	in, _ := new(big.Int).SetString("3734534447974", 10)
	rIn, _ := new(big.Int).SetString("33593153629677144", 10)
	rOut := big.NewInt(899_196_436)

	out, err := GetAmountOutBig(in, rIn, rOut, DefaultFee)
	require.NoError(t, err)
	require.Equal(t, "99652", out.String())
}

func TestGetAmountOutBig_Errors(t *testing.T) {
	one := big.NewInt(1)
	wide := new(big.Int).Lsh(one, 256)

	_, err := GetAmountOutBig(big.NewInt(-1), one, one, DefaultFee)
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = GetAmountOutBig(nil, one, one, DefaultFee)
	require.ErrorIs(t, err, ErrInvalidAmount)
	require.ErrorContains(t, err, "amount is required")

	_, err = GetAmountOutBig(big.NewInt(-1), one, one, DefaultFee)
	require.ErrorContains(t, err, "non-negative")

	_, err = GetAmountOutBig(one, big.NewInt(-5), one, DefaultFee)
	require.ErrorIs(t, err, ErrInvalidReserve)

	_, err = GetAmountOutBig(one, one, big.NewInt(0), DefaultFee)
	require.ErrorIs(t, err, ErrInvalidReserve)

	_, err = GetAmountOutBig(wide, one, one, DefaultFee)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = GetAmountOutBig(one, wide, one, DefaultFee)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestQuoter(t *testing.T) {
	_, err := NewQuoter(Fee{Bps: 10_000, Denominator: 10_000})
	require.ErrorIs(t, err, ErrInvalidFee)

	q, err := NewQuoter(DefaultFee)
	require.NoError(t, err)
	require.Equal(t, DefaultFee, q.Fee())

	out, err := q.AmountOut(big.NewInt(10_000), big.NewInt(100_000_000), big.NewInt(400_000_000))
	require.NoError(t, err)
	require.Equal(t, int64(39_876), out.Int64())

	in, err := q.AmountIn(out, big.NewInt(100_000_000), big.NewInt(400_000_000))
	require.NoError(t, err)
	require.Equal(t, int64(10_000), in.Int64())

	b, err := q.Quote(big.NewInt(10_000), big.NewInt(100_000_000), big.NewInt(400_000_000))
	require.NoError(t, err)
	require.Equal(t, int64(40_000), b.Int64())
}
