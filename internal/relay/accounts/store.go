// Package accounts is the persistent keyed-account store the relay core reads and writes.
package accounts

import (
	"context"
	"errors"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/google/uuid"
)

var (
	ErrAccountExists   = errors.New("account already exists")
	ErrAccountNotFound = errors.New("account not found")
	ErrReadOnly        = errors.New("account store transaction is read-only")
)

// Key addresses an account.
type Key string

const (
	StateKey   Key = "state"
	ReserveKey Key = "reserve"
)

// HeaderKey addresses the existence marker of a block hash.
func HeaderKey(hash chainhash.Hash) Key {
	return Key("header/" + hash.String())
}

// RecordKey addresses the settlement record of a transaction id.
func RecordKey(txid chainhash.Hash) Key {
	return Key("tx/" + txid.String())
}

// ChunkKey addresses the index-th staged chunk of a transaction under assembly.
func ChunkKey(txid chainhash.Hash, index uint32) Key {
	return Key("tx/" + txid.String() + "/chunk/" + strconv.FormatUint(uint64(index), 10))
}

// BalanceKey addresses the payout balance of a recipient.
func BalanceKey(recipient string) Key {
	return Key("balance/" + recipient)
}

// WithdrawalKey addresses a withdrawal intent.
func WithdrawalKey(id uuid.UUID) Key {
	return Key("withdrawal/" + id.String())
}

// Tx is a view of the store inside a single atomic call.
type Tx interface {
	// Create stores a new account and fails with ErrAccountExists if key is taken.
	Create(key Key, value []byte) error
	// Read returns a copy of the account value or ErrAccountNotFound.
	Read(key Key) ([]byte, error)
	// Write replaces an existing account or fails with ErrAccountNotFound.
	Write(key Key, value []byte) error
	Exists(key Key) (bool, error)
}

// Store serializes atomic calls. Atomic commits every write of fn when fn returns nil and none
// otherwise; View runs fn on a read-only Tx.
type Store interface {
	Atomic(ctx context.Context, fn func(Tx) error) error
	View(ctx context.Context, fn func(Tx) error) error
	Close() error
}
