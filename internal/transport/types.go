package transport

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/chain"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/settlement"
	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Relay is the engine surface served over REST.
	Relay interface {
		Initialized(ctx context.Context) (bool, error)
		Bootstrap(ctx context.Context, caller model.Caller, cp chain.Checkpoint) (model.CommittedHeader, error)
		SubmitHeaders(ctx context.Context, caller model.Caller, headers []wire.BlockHeader, prior model.CommittedHeader) ([]model.CommittedHeader, error)
		Tip(ctx context.Context) (model.CommittedHeader, error)
		HeaderStatus(ctx context.Context, hash chainhash.Hash) (chain.HeaderStatus, error)
		CheckBlockHeight(ctx context.Context, value, op uint32) error
		SettleTransaction(ctx context.Context, caller model.Caller, raw []byte, inc settlement.Inclusion, recipient string) (model.SettlementResult, error)
		InitAssembly(ctx context.Context, caller model.Caller, txid chainhash.Hash, declaredLength uint32, inc settlement.Inclusion, recipient string) (model.SettlementRecord, error)
		AppendBytes(ctx context.Context, caller model.Caller, txid chainhash.Hash, chunk []byte) (model.SettlementRecord, error)
		Finalize(ctx context.Context, caller model.Caller, txid chainhash.Hash) (model.SettlementResult, error)
		Record(ctx context.Context, txid chainhash.Hash) (model.SettlementRecord, error)
		DepositReserve(ctx context.Context, caller model.Caller, amount uint64) (uint64, error)
		InitiateWithdrawal(ctx context.Context, caller model.Caller, amount uint64, destination string) (model.Withdrawal, error)
		Withdrawal(ctx context.Context, id uuid.UUID) (model.Withdrawal, error)
		Reserve(ctx context.Context) (uint64, error)
		Balance(ctx context.Context, recipient string) (uint64, error)
	}
)
