// Package eth reads Uniswap V2 pair state from an Ethereum node.
package eth

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
)

// Dial connects to the node at url and checks that it answers eth_chainId,
// giving up after 15 seconds. HTTP endpoints are otherwise dialed lazily and
// a bad URL would only surface on the first quote.
func Dial(ctx context.Context, url string) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}
	if _, err := client.ChainID(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("chain id: %w", err)
	}
	return client, nil
}
