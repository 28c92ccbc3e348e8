package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/google/uuid"
)

// RecordStatus is the lifecycle stage of a settlement record.
type RecordStatus uint8

const (
	StatusUnknown RecordStatus = iota
	StatusAssembling
	StatusSettled
)

func (s RecordStatus) String() string {
	switch s {
	case StatusAssembling:
		return "assembling"
	case StatusSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// SettlementRecord is the anti-replay record of a Bitcoin transaction, keyed by txid.
type SettlementRecord struct {
	TxID           chainhash.Hash
	Status         RecordStatus
	Recipient      string
	DeclaredLength uint32
	// Received counts the bytes appended so far; they are stored as Chunks separate accounts.
	Received uint32
	Chunks   uint32
	OutputIndex    uint32
	LeafPosition   uint32
	Proof          []chainhash.Hash
	Header         CommittedHeader
	Confirmations  uint32
	Payout         uint64
	CreatedAt      time.Time
	SettledAt      time.Time
}

// Cursor is the write offset of the staged buffer.
func (r SettlementRecord) Cursor() uint32 {
	return r.Received
}

// ProvenOutput is a transaction output whose inclusion in a committed block was verified.
type ProvenOutput struct {
	TxID   chainhash.Hash
	Index  uint32
	Value  int64
	Script []byte
}

// SettlementResult describes a completed payout.
type SettlementResult struct {
	TxID        chainhash.Hash
	Recipient   string
	OutputIndex uint32
	Value       int64
	Payout      uint64
	BlockHash   chainhash.Hash
	BlockHeight uint32
	Staged      bool
	SettledAt   time.Time
}

// Withdrawal is an operator intent to move reserve funds to an external destination.
type Withdrawal struct {
	ID          uuid.UUID
	Amount      uint64
	Destination string
	Requester   string
	CreatedAt   time.Time
}

// Caller identifies who issued a state-mutating call.
type Caller struct {
	ID       string
	Operator bool
}
