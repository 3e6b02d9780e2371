// Package chain provides lazily dialed RPC access to the supported networks.
package chain

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"walletscope/internal/registry"
)

const weiPerGwei = 1e9

// Pool manages one RPC connection per chain, dialed on first use.
type Pool struct {
	mu      sync.Mutex
	clients map[registry.Chain]*ethclient.Client
}

// NewPool creates an empty connection pool.
func NewPool() *Pool {
	return &Pool{clients: make(map[registry.Chain]*ethclient.Client)}
}

// Close closes every dialed connection.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, cl := range p.clients {
		cl.Close()
	}
	p.clients = make(map[registry.Chain]*ethclient.Client)
}

func (p *Pool) client(ctx context.Context, chain registry.Chain) (*ethclient.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cl, ok := p.clients[chain]; ok {
		return cl, nil
	}

	desc, err := registry.Lookup(chain)
	if err != nil {
		return nil, err
	}
	rpcClient, err := rpc.DialContext(ctx, desc.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s rpc: %w", chain, err)
	}
	cl := ethclient.NewClient(rpcClient)
	p.clients[chain] = cl
	return cl, nil
}

// GasPrice returns the suggested gas price for a chain in gwei.
func (p *Pool) GasPrice(ctx context.Context, chain registry.Chain) (float64, error) {
	cl, err := p.client(ctx, chain)
	if err != nil {
		return 0, err
	}
	price, err := cl.SuggestGasPrice(ctx)
	if err != nil {
		return 0, fmt.Errorf("suggest gas price: %w", err)
	}
	gwei, _ := new(big.Float).Quo(new(big.Float).SetInt(price), big.NewFloat(weiPerGwei)).Float64()
	return gwei, nil
}

// LatestBlockNumber returns the latest block number of a chain.
func (p *Pool) LatestBlockNumber(ctx context.Context, chain registry.Chain) (uint64, error) {
	cl, err := p.client(ctx, chain)
	if err != nil {
		return 0, err
	}
	return cl.BlockNumber(ctx)
}
