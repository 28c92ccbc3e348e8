// Package rpcclient wraps the btcd RPC client with call metrics.
package rpcclient

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
)

var _ Node = (*rpcclient.Client)(nil)

// ObservedClient records a metric for every node call.
type ObservedClient struct {
	node       Node
	rpcMetrics RPCMetrics
}

// NewObservedClient wraps node.
func NewObservedClient(node Node, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		node:       node,
		rpcMetrics: rpcMetrics,
	}
}

// Connect opens an HTTP POST mode client to bitcoind.
func Connect(host, user, password string, disableTLS bool) (*rpcclient.Client, error) {
	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   disableTLS,
	}, nil)
}

func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.node.GetBlockCount()
}

func (r *ObservedClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.node.GetBlockHash(blockHeight)
}

func (r *ObservedClient) GetBlockHeader(blockHash *chainhash.Hash) (header *wire.BlockHeader, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_header", err, started)
	}()
	return r.node.GetBlockHeader(blockHash)
}

func (r *ObservedClient) GetBlock(blockHash *chainhash.Hash) (block *wire.MsgBlock, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block", err, started)
	}()
	return r.node.GetBlock(blockHash)
}
