package accounts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/google/uuid"
	"github.com/lightningnetwork/lnd/tlv"
)

// Account values are TLV streams. Record types are ascending within each account kind and
// must never be renumbered.

func encode(records ...tlv.Record) ([]byte, error) {
	stream, err := tlv.NewStream(records...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := stream.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(raw []byte, records ...tlv.Record) error {
	stream, err := tlv.NewStream(records...)
	if err != nil {
		return err
	}
	return stream.Decode(bytes.NewReader(raw))
}

func unixSeconds(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}
	return uint64(t.Unix())
}

func fromUnixSeconds(v uint64) time.Time {
	if v == 0 {
		return time.Time{}
	}
	return time.Unix(int64(v), 0).UTC()
}

func joinHashes(hashes []chainhash.Hash) []byte {
	out := make([]byte, 0, len(hashes)*chainhash.HashSize)
	for _, h := range hashes {
		out = append(out, h[:]...)
	}
	return out
}

func splitHashes(raw []byte) ([]chainhash.Hash, error) {
	if len(raw)%chainhash.HashSize != 0 {
		return nil, fmt.Errorf("hash list length %d is not a multiple of %d", len(raw), chainhash.HashSize)
	}
	hashes := make([]chainhash.Hash, len(raw)/chainhash.HashSize)
	for i := range hashes {
		copy(hashes[i][:], raw[i*chainhash.HashSize:])
	}
	return hashes, nil
}

// EncodeState encodes the chain state singleton.
func EncodeState(state model.ChainState) ([]byte, error) {
	tip := state.Tip.Bytes()
	bootstrap := state.BootstrapHeight
	ring := joinHashes(state.Ring)
	return encode(
		tlv.MakePrimitiveRecord(1, &tip),
		tlv.MakePrimitiveRecord(2, &bootstrap),
		tlv.MakePrimitiveRecord(3, &ring),
	)
}

// DecodeState decodes the chain state singleton.
func DecodeState(raw []byte) (model.ChainState, error) {
	var (
		tip       []byte
		bootstrap uint32
		ring      []byte
	)
	err := decode(raw,
		tlv.MakePrimitiveRecord(1, &tip),
		tlv.MakePrimitiveRecord(2, &bootstrap),
		tlv.MakePrimitiveRecord(3, &ring),
	)
	if err != nil {
		return model.ChainState{}, fmt.Errorf("decode chain state: %w", err)
	}

	committed, err := model.ParseCommittedHeader(tip)
	if err != nil {
		return model.ChainState{}, fmt.Errorf("decode chain state tip: %w", err)
	}
	hashes, err := splitHashes(ring)
	if err != nil {
		return model.ChainState{}, fmt.Errorf("decode chain state ring: %w", err)
	}
	return model.ChainState{Tip: committed, BootstrapHeight: bootstrap, Ring: hashes}, nil
}

// EncodeMarker encodes a header existence marker.
func EncodeMarker(marker model.HeaderMarker) ([]byte, error) {
	hash := [32]byte(marker.Hash)
	commit := [32]byte(marker.CommitHash)
	height := marker.Height
	return encode(
		tlv.MakePrimitiveRecord(1, &hash),
		tlv.MakePrimitiveRecord(2, &commit),
		tlv.MakePrimitiveRecord(3, &height),
	)
}

// DecodeMarker decodes a header existence marker.
func DecodeMarker(raw []byte) (model.HeaderMarker, error) {
	var (
		hash, commit [32]byte
		height       uint32
	)
	err := decode(raw,
		tlv.MakePrimitiveRecord(1, &hash),
		tlv.MakePrimitiveRecord(2, &commit),
		tlv.MakePrimitiveRecord(3, &height),
	)
	if err != nil {
		return model.HeaderMarker{}, fmt.Errorf("decode header marker: %w", err)
	}
	return model.HeaderMarker{Hash: hash, CommitHash: commit, Height: height}, nil
}

// EncodeRecord encodes a settlement record.
func EncodeRecord(rec model.SettlementRecord) ([]byte, error) {
	var (
		txid          = [32]byte(rec.TxID)
		status        = uint8(rec.Status)
		recipient     = []byte(rec.Recipient)
		declared      = rec.DeclaredLength
		received      = rec.Received
		chunks        = rec.Chunks
		outputIndex   = rec.OutputIndex
		position      = rec.LeafPosition
		proof         = joinHashes(rec.Proof)
		header        = rec.Header.Bytes()
		confirmations = rec.Confirmations
		payout        = rec.Payout
		created       = unixSeconds(rec.CreatedAt)
		settled       = unixSeconds(rec.SettledAt)
	)
	return encode(
		tlv.MakePrimitiveRecord(1, &txid),
		tlv.MakePrimitiveRecord(2, &status),
		tlv.MakePrimitiveRecord(3, &recipient),
		tlv.MakePrimitiveRecord(4, &declared),
		tlv.MakePrimitiveRecord(5, &received),
		tlv.MakePrimitiveRecord(6, &outputIndex),
		tlv.MakePrimitiveRecord(7, &position),
		tlv.MakePrimitiveRecord(8, &proof),
		tlv.MakePrimitiveRecord(9, &header),
		tlv.MakePrimitiveRecord(10, &confirmations),
		tlv.MakePrimitiveRecord(11, &payout),
		tlv.MakePrimitiveRecord(12, &created),
		tlv.MakePrimitiveRecord(13, &settled),
		tlv.MakePrimitiveRecord(14, &chunks),
	)
}

// DecodeRecord decodes a settlement record.
func DecodeRecord(raw []byte) (model.SettlementRecord, error) {
	var (
		txid                                   [32]byte
		status                                 uint8
		recipient, proof, header               []byte
		declared, outputIndex, position, confs uint32
		received, chunks                       uint32
		payout, created, settled               uint64
	)
	err := decode(raw,
		tlv.MakePrimitiveRecord(1, &txid),
		tlv.MakePrimitiveRecord(2, &status),
		tlv.MakePrimitiveRecord(3, &recipient),
		tlv.MakePrimitiveRecord(4, &declared),
		tlv.MakePrimitiveRecord(5, &received),
		tlv.MakePrimitiveRecord(6, &outputIndex),
		tlv.MakePrimitiveRecord(7, &position),
		tlv.MakePrimitiveRecord(8, &proof),
		tlv.MakePrimitiveRecord(9, &header),
		tlv.MakePrimitiveRecord(10, &confs),
		tlv.MakePrimitiveRecord(11, &payout),
		tlv.MakePrimitiveRecord(12, &created),
		tlv.MakePrimitiveRecord(13, &settled),
		tlv.MakePrimitiveRecord(14, &chunks),
	)
	if err != nil {
		return model.SettlementRecord{}, fmt.Errorf("decode settlement record: %w", err)
	}

	hashes, err := splitHashes(proof)
	if err != nil {
		return model.SettlementRecord{}, fmt.Errorf("decode settlement record proof: %w", err)
	}
	committed, err := model.ParseCommittedHeader(header)
	if err != nil {
		return model.SettlementRecord{}, fmt.Errorf("decode settlement record header: %w", err)
	}
	return model.SettlementRecord{
		TxID:           txid,
		Status:         model.RecordStatus(status),
		Recipient:      string(recipient),
		DeclaredLength: declared,
		Received:       received,
		Chunks:         chunks,
		OutputIndex:    outputIndex,
		LeafPosition:   position,
		Proof:          hashes,
		Header:         committed,
		Confirmations:  confs,
		Payout:         payout,
		CreatedAt:      fromUnixSeconds(created),
		SettledAt:      fromUnixSeconds(settled),
	}, nil
}

// EncodeAmount encodes a reserve or balance amount.
func EncodeAmount(amount uint64) ([]byte, error) {
	return encode(tlv.MakePrimitiveRecord(1, &amount))
}

// DecodeAmount decodes a reserve or balance amount.
func DecodeAmount(raw []byte) (uint64, error) {
	var amount uint64
	if err := decode(raw, tlv.MakePrimitiveRecord(1, &amount)); err != nil {
		return 0, fmt.Errorf("decode amount: %w", err)
	}
	return amount, nil
}

// EncodeWithdrawal encodes a withdrawal intent.
func EncodeWithdrawal(w model.Withdrawal) ([]byte, error) {
	var (
		id          = w.ID[:]
		amount      = w.Amount
		destination = []byte(w.Destination)
		requester   = []byte(w.Requester)
		created     = unixSeconds(w.CreatedAt)
	)
	return encode(
		tlv.MakePrimitiveRecord(1, &id),
		tlv.MakePrimitiveRecord(2, &amount),
		tlv.MakePrimitiveRecord(3, &destination),
		tlv.MakePrimitiveRecord(4, &requester),
		tlv.MakePrimitiveRecord(5, &created),
	)
}

// DecodeWithdrawal decodes a withdrawal intent.
func DecodeWithdrawal(raw []byte) (model.Withdrawal, error) {
	var (
		id, destination, requester []byte
		amount, created            uint64
	)
	err := decode(raw,
		tlv.MakePrimitiveRecord(1, &id),
		tlv.MakePrimitiveRecord(2, &amount),
		tlv.MakePrimitiveRecord(3, &destination),
		tlv.MakePrimitiveRecord(4, &requester),
		tlv.MakePrimitiveRecord(5, &created),
	)
	if err != nil {
		return model.Withdrawal{}, fmt.Errorf("decode withdrawal: %w", err)
	}
	parsed, err := uuid.FromBytes(id)
	if err != nil {
		return model.Withdrawal{}, fmt.Errorf("decode withdrawal id: %w", err)
	}
	return model.Withdrawal{
		ID:          parsed,
		Amount:      amount,
		Destination: string(destination),
		Requester:   string(requester),
		CreatedAt:   fromUnixSeconds(created),
	}, nil
}
