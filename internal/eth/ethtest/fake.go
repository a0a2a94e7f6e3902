// Package ethtest serves fake Uniswap V2 pair storage over an in-process
// go-ethereum RPC server.
package ethtest

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

// Node answers eth_blockNumber and eth_getStorageAt.
type Node struct {
	Block uint64
	// Storage[address][positionHash] = 32-byte value
	Storage map[common.Address]map[common.Hash][]byte
}

func NewNode(block uint64) *Node {
	return &Node{Block: block, Storage: map[common.Address]map[common.Hash][]byte{}}
}

// SetPair lays out token0, token1 and packed reserves in slots 6, 7 and 8.
func (n *Node) SetPair(pool, token0, token1 common.Address, reserve0, reserve1 *big.Int, ts uint32) {
	n.Storage[pool] = map[common.Hash][]byte{
		slot(6): rightPadAddress(token0),
		slot(7): rightPadAddress(token1),
		slot(8): PackReserves(reserve0, reserve1, ts),
	}
}

// api is the RPC receiver; Node's own helpers stay off the wire.
type api struct {
	n *Node
}

func (a *api) BlockNumber(ctx context.Context) (hexutil.Uint64, error) {
	return hexutil.Uint64(a.n.Block), nil
}

func (a *api) GetStorageAt(ctx context.Context, addr common.Address, position common.Hash, _ gethrpc.BlockNumberOrHash) (hexutil.Bytes, error) {
	if m, ok := a.n.Storage[addr]; ok {
		if v, ok2 := m[position]; ok2 {
			return hexutil.Bytes(v), nil
		}
	}
	// default empty 32 bytes
	return hexutil.Bytes(make([]byte, 32)), nil
}

// Client registers n under the "eth" namespace and returns a client dialed
// in-process. The client is closed when the test ends.
func (n *Node) Client(t testing.TB) *ethclient.Client {
	t.Helper()
	srv := gethrpc.NewServer()
	if err := srv.RegisterName("eth", &api{n: n}); err != nil {
		t.Fatalf("register rpc service: %v", err)
	}
	c := gethrpc.DialInProc(srv)
	ec := ethclient.NewClient(c)
	t.Cleanup(func() {
		ec.Close()
		srv.Stop()
	})
	return ec
}

// PackReserves encodes reserves the way UniswapV2Pair stores them.
func PackReserves(r0, r1 *big.Int, ts uint32) []byte {
	v := new(big.Int).SetUint64(uint64(ts))
	v.Lsh(v, 112)
	v.Or(v, r1)
	v.Lsh(v, 112)
	v.Or(v, r0)
	return u256Bytes(v)
}

func slot(n uint64) common.Hash {
	return common.BigToHash(new(big.Int).SetUint64(n))
}

func u256Bytes(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) > 32 {
		panic("value does not fit in 32 bytes")
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

// Address is right-aligned in 32 bytes when read from storage.
func rightPadAddress(addr common.Address) []byte {
	out := make([]byte, 32)
	copy(out[12:], addr.Bytes())
	return out
}
