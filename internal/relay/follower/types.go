package follower

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/chain"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Node reads the best chain of a bitcoind node.
	Node interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlockHeader(blockHash *chainhash.Hash) (*wire.BlockHeader, error)
	}

	// Relay is the engine surface the follower drives.
	Relay interface {
		Tip(ctx context.Context) (model.CommittedHeader, error)
		Initialized(ctx context.Context) (bool, error)
		Bootstrap(ctx context.Context, caller model.Caller, cp chain.Checkpoint) (model.CommittedHeader, error)
		SubmitHeaders(ctx context.Context, caller model.Caller, headers []wire.BlockHeader, prior model.CommittedHeader) ([]model.CommittedHeader, error)
	}

	Metrics interface {
		ObserveSync(err error, started time.Time)
		ObserveBatch(headers int)
		SetLag(nodeHeight, relayHeight uint32)
	}
)
