package settlement

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Headers resolves committed headers against the relay chain state.
	Headers interface {
		VerifyCommitted(header model.CommittedHeader, confirmations uint32) error
	}

	// Records persists settlement records keyed by transaction id.
	Records interface {
		CreateRecord(rec model.SettlementRecord) error
		Record(txid chainhash.Hash) (model.SettlementRecord, error)
		PutRecord(rec model.SettlementRecord) error
		// PutChunk stores the index-th chunk of a staged transaction.
		PutChunk(txid chainhash.Hash, index uint32, chunk []byte) error
		// Assembled concatenates the first chunks chunks of txid, expecting length bytes.
		Assembled(txid chainhash.Hash, chunks, length uint32) ([]byte, error)
	}

	// Funds persists the reserve pool, recipient balances and withdrawal intents.
	Funds interface {
		Reserve() (uint64, error)
		PutReserve(amount uint64) error
		Balance(recipient string) (uint64, error)
		PutBalance(recipient string, amount uint64) error
		CreateWithdrawal(w model.Withdrawal) error
		Withdrawal(id uuid.UUID) (model.Withdrawal, error)
	}
)
