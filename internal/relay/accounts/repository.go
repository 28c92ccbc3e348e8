package accounts

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/google/uuid"
)

// Repository maps relay entities onto accounts of one Tx and translates store errors into the
// relay error taxonomy.
type Repository struct {
	tx Tx
}

// NewRepository wraps tx.
func NewRepository(tx Tx) *Repository {
	return &Repository{tx: tx}
}

func (r *Repository) State() (model.ChainState, error) {
	raw, err := r.tx.Read(StateKey)
	if errors.Is(err, ErrAccountNotFound) {
		return model.ChainState{}, model.ErrNotInitialized
	}
	if err != nil {
		return model.ChainState{}, fmt.Errorf("read chain state: %w", err)
	}
	return DecodeState(raw)
}

func (r *Repository) CreateState(state model.ChainState) error {
	raw, err := EncodeState(state)
	if err != nil {
		return err
	}
	err = r.tx.Create(StateKey, raw)
	if errors.Is(err, ErrAccountExists) {
		return model.ErrAlreadyInitialized
	}
	return err
}

func (r *Repository) PutState(state model.ChainState) error {
	raw, err := EncodeState(state)
	if err != nil {
		return err
	}
	err = r.tx.Write(StateKey, raw)
	if errors.Is(err, ErrAccountNotFound) {
		return model.ErrNotInitialized
	}
	return err
}

func (r *Repository) CreateMarker(marker model.HeaderMarker) error {
	raw, err := EncodeMarker(marker)
	if err != nil {
		return err
	}
	err = r.tx.Create(HeaderKey(marker.Hash), raw)
	if errors.Is(err, ErrAccountExists) {
		return fmt.Errorf("%w: header marker %s", model.ErrDuplicateRecord, marker.Hash)
	}
	return err
}

func (r *Repository) Marker(hash chainhash.Hash) (model.HeaderMarker, error) {
	raw, err := r.tx.Read(HeaderKey(hash))
	if errors.Is(err, ErrAccountNotFound) {
		return model.HeaderMarker{}, fmt.Errorf("%w: %s", model.ErrUnknownHeader, hash)
	}
	if err != nil {
		return model.HeaderMarker{}, fmt.Errorf("read header marker: %w", err)
	}
	return DecodeMarker(raw)
}

func (r *Repository) CreateRecord(rec model.SettlementRecord) error {
	raw, err := EncodeRecord(rec)
	if err != nil {
		return err
	}
	err = r.tx.Create(RecordKey(rec.TxID), raw)
	if errors.Is(err, ErrAccountExists) {
		return fmt.Errorf("%w: transaction %s", model.ErrDuplicateRecord, rec.TxID)
	}
	return err
}

func (r *Repository) Record(txid chainhash.Hash) (model.SettlementRecord, error) {
	raw, err := r.tx.Read(RecordKey(txid))
	if errors.Is(err, ErrAccountNotFound) {
		return model.SettlementRecord{}, fmt.Errorf("%w: %s", model.ErrRecordNotFound, txid)
	}
	if err != nil {
		return model.SettlementRecord{}, fmt.Errorf("read settlement record: %w", err)
	}
	return DecodeRecord(raw)
}

func (r *Repository) PutRecord(rec model.SettlementRecord) error {
	raw, err := EncodeRecord(rec)
	if err != nil {
		return err
	}
	err = r.tx.Write(RecordKey(rec.TxID), raw)
	if errors.Is(err, ErrAccountNotFound) {
		return fmt.Errorf("%w: %s", model.ErrRecordNotFound, rec.TxID)
	}
	return err
}

// PutChunk stores a staged chunk. Chunks are write-once; a second write at index is a
// duplicate.
func (r *Repository) PutChunk(txid chainhash.Hash, index uint32, chunk []byte) error {
	err := r.tx.Create(ChunkKey(txid, index), chunk)
	if errors.Is(err, ErrAccountExists) {
		return fmt.Errorf("%w: transaction %s chunk %d", model.ErrDuplicateRecord, txid, index)
	}
	return err
}

// Assembled concatenates chunks 0..chunks-1 of txid and checks they add up to length bytes.
func (r *Repository) Assembled(txid chainhash.Hash, chunks, length uint32) ([]byte, error) {
	out := make([]byte, 0, length)
	for i := uint32(0); i < chunks; i++ {
		chunk, err := r.tx.Read(ChunkKey(txid, i))
		if err != nil {
			return nil, fmt.Errorf("read chunk %d: %w", i, err)
		}
		out = append(out, chunk...)
	}
	if uint32(len(out)) != length {
		return nil, fmt.Errorf("%w: chunks hold %d of %d bytes", model.ErrIncompleteAssembly, len(out), length)
	}
	return out, nil
}

func (r *Repository) Reserve() (uint64, error) {
	return r.amount(ReserveKey)
}

func (r *Repository) PutReserve(amount uint64) error {
	return r.putAmount(ReserveKey, amount)
}

func (r *Repository) Balance(recipient string) (uint64, error) {
	return r.amount(BalanceKey(recipient))
}

func (r *Repository) PutBalance(recipient string, amount uint64) error {
	return r.putAmount(BalanceKey(recipient), amount)
}

func (r *Repository) CreateWithdrawal(w model.Withdrawal) error {
	raw, err := EncodeWithdrawal(w)
	if err != nil {
		return err
	}
	err = r.tx.Create(WithdrawalKey(w.ID), raw)
	if errors.Is(err, ErrAccountExists) {
		return fmt.Errorf("%w: withdrawal %s", model.ErrDuplicateRecord, w.ID)
	}
	return err
}

func (r *Repository) Withdrawal(id uuid.UUID) (model.Withdrawal, error) {
	raw, err := r.tx.Read(WithdrawalKey(id))
	if errors.Is(err, ErrAccountNotFound) {
		return model.Withdrawal{}, fmt.Errorf("%w: %s", model.ErrWithdrawalNotFound, id)
	}
	if err != nil {
		return model.Withdrawal{}, fmt.Errorf("read withdrawal %s: %w", id, err)
	}
	return DecodeWithdrawal(raw)
}

func (r *Repository) amount(key Key) (uint64, error) {
	raw, err := r.tx.Read(key)
	if errors.Is(err, ErrAccountNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", key, err)
	}
	return DecodeAmount(raw)
}

func (r *Repository) putAmount(key Key, amount uint64) error {
	raw, err := EncodeAmount(amount)
	if err != nil {
		return err
	}
	exists, err := r.tx.Exists(key)
	if err != nil {
		return err
	}
	if exists {
		return r.tx.Write(key, raw)
	}
	return r.tx.Create(key, raw)
}
