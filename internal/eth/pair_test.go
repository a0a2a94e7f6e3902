package eth

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/nulln0ne/amm-quoter/internal/eth/ethtest"
)

var (
	token0 = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	token1 = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	pool   = common.HexToAddress("0x0000000000000000000000000000000000000abc")
)

func TestReadPair(t *testing.T) {
	t.Parallel()

	maxReserve := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1))
	node := ethtest.NewNode(77)
	node.SetPair(pool, token0, token1, big.NewInt(1_000_000), maxReserve, 1_700_000_000)

	p, err := NewPairReader(node.Client(t)).ReadPair(context.Background(), pool)
	require.NoError(t, err)
	require.Equal(t, pool, p.Address)
	require.Equal(t, token0, p.Token0)
	require.Equal(t, token1, p.Token1)
	require.Equal(t, "1000000", p.Reserve0.String())
	require.Zero(t, p.Reserve1.Cmp(maxReserve))
	require.Equal(t, uint32(1_700_000_000), p.BlockTimestampLast)
	require.Equal(t, uint64(77), p.BlockNumber)
}

func TestReadPair_Empty(t *testing.T) {
	t.Parallel()

	node := ethtest.NewNode(1)
	p, err := NewPairReader(node.Client(t)).ReadPair(context.Background(), pool)
	require.NoError(t, err)
	require.Equal(t, common.Address{}, p.Token0)
	require.Zero(t, p.Reserve0.Sign())
	require.Zero(t, p.Reserve1.Sign())
}

type failingReader struct{}

func (failingReader) BlockNumber(context.Context) (uint64, error) { return 0, errors.New("node down") }

func (failingReader) StorageAt(context.Context, common.Address, common.Hash, *big.Int) ([]byte, error) {
	return nil, errors.New("node down")
}

func TestReadPair_NodeError(t *testing.T) {
	t.Parallel()

	_, err := NewPairReader(failingReader{}).ReadPair(context.Background(), pool)
	require.ErrorContains(t, err, "block number")
}

func TestOrient(t *testing.T) {
	t.Parallel()

	p := &Pair{Token0: token0, Token1: token1, Reserve0: big.NewInt(1), Reserve1: big.NewInt(2)}

	in, out, err := p.Orient(token0, token1)
	require.NoError(t, err)
	require.Equal(t, int64(1), in.Int64())
	require.Equal(t, int64(2), out.Int64())

	in, out, err = p.Orient(token1, token0)
	require.NoError(t, err)
	require.Equal(t, int64(2), in.Int64())
	require.Equal(t, int64(1), out.Int64())

	_, _, err = p.Orient(token0, common.HexToAddress("0xcc"))
	require.ErrorIs(t, err, ErrPairMismatch)
}
