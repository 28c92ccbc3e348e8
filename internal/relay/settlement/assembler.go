package settlement

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/bitcoin"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

// InitAssembly opens a staged record for a transaction too large to submit in one call. The
// declared txid must already fold to the header Merkle root with the given proof; the bytes
// themselves are checked against it on Finalize.
func (l *Ledger) InitAssembly(txid chainhash.Hash, declaredLength uint32, inc Inclusion, recipient string) (model.SettlementRecord, error) {
	if recipient == "" {
		return model.SettlementRecord{}, model.ErrInvalidRecipient
	}
	if declaredLength < l.cfg.SmallTxThreshold || declaredLength > l.cfg.MaxTxSize {
		return model.SettlementRecord{}, fmt.Errorf("%w: %d not in [%d, %d]",
			model.ErrInvalidDeclaredLength, declaredLength, l.cfg.SmallTxThreshold, l.cfg.MaxTxSize)
	}
	if err := l.ensureUnused(txid); err != nil {
		return model.SettlementRecord{}, err
	}
	if err := l.headers.VerifyCommitted(inc.Header, inc.Confirmations); err != nil {
		return model.SettlementRecord{}, err
	}
	if err := bitcoin.VerifyTxID(txid, inc.LeafPosition, inc.Proof, inc.Header); err != nil {
		return model.SettlementRecord{}, err
	}

	rec := model.SettlementRecord{
		TxID:           txid,
		Status:         model.StatusAssembling,
		Recipient:      recipient,
		DeclaredLength: declaredLength,
		OutputIndex:    inc.OutputIndex,
		LeafPosition:   inc.LeafPosition,
		Proof:          inc.Proof,
		Header:         inc.Header,
		Confirmations:  inc.Confirmations,
		CreatedAt:      l.clock.Now().UTC(),
	}
	if err := l.records.CreateRecord(rec); err != nil {
		return model.SettlementRecord{}, fmt.Errorf("assembly %s: %w", txid, err)
	}
	return rec, nil
}

// AppendBytes writes chunk at the record cursor. Each chunk is its own account, so an append
// costs the chunk plus the fixed-size record regardless of how much was appended before.
func (l *Ledger) AppendBytes(txid chainhash.Hash, chunk []byte) (model.SettlementRecord, error) {
	rec, err := l.assembling(txid)
	if err != nil {
		return model.SettlementRecord{}, err
	}
	if uint64(rec.Cursor())+uint64(len(chunk)) > uint64(rec.DeclaredLength) {
		return model.SettlementRecord{}, fmt.Errorf("%w: cursor %d, chunk %d, declared %d",
			model.ErrChunkOverflow, rec.Cursor(), len(chunk), rec.DeclaredLength)
	}

	if len(chunk) == 0 {
		return rec, nil
	}

	if err := l.records.PutChunk(txid, rec.Chunks, chunk); err != nil {
		return model.SettlementRecord{}, fmt.Errorf("assembly %s chunk %d: %w", txid, rec.Chunks, err)
	}
	rec.Chunks++
	rec.Received += uint32(len(chunk))
	if err := l.records.PutRecord(rec); err != nil {
		return model.SettlementRecord{}, fmt.Errorf("assembly %s: %w", txid, err)
	}
	return rec, nil
}

// Finalize verifies the assembled bytes and settles the record. On failure the record stays
// assembling.
func (l *Ledger) Finalize(txid chainhash.Hash) (model.SettlementResult, error) {
	rec, err := l.assembling(txid)
	if err != nil {
		return model.SettlementResult{}, err
	}
	if rec.Cursor() != rec.DeclaredLength {
		return model.SettlementResult{}, fmt.Errorf("%w: %d of %d bytes",
			model.ErrIncompleteAssembly, rec.Cursor(), rec.DeclaredLength)
	}

	// The header may have left the ring since InitAssembly; its marker still resolves it.
	if err := l.headers.VerifyCommitted(rec.Header, rec.Confirmations); err != nil {
		return model.SettlementResult{}, err
	}
	raw, err := l.records.Assembled(txid, rec.Chunks, rec.Received)
	if err != nil {
		return model.SettlementResult{}, fmt.Errorf("assembly %s: %w", txid, err)
	}
	out, err := bitcoin.VerifyInclusion(raw, rec.OutputIndex, rec.LeafPosition, rec.Proof, rec.Header)
	if err != nil {
		return model.SettlementResult{}, err
	}
	if out.TxID != txid {
		return model.SettlementResult{}, fmt.Errorf("%w: assembled %s, declared %s", model.ErrMerkleProofMismatch, out.TxID, txid)
	}

	payout, err := l.pay(out, rec.Recipient)
	if err != nil {
		return model.SettlementResult{}, err
	}

	rec.Status = model.StatusSettled
	rec.Payout = payout
	rec.SettledAt = l.clock.Now().UTC()
	if err := l.records.PutRecord(rec); err != nil {
		return model.SettlementResult{}, fmt.Errorf("settle %s: %w", txid, err)
	}
	return result(rec, out, true), nil
}

// Record returns the settlement record of txid.
func (l *Ledger) Record(txid chainhash.Hash) (model.SettlementRecord, error) {
	return l.records.Record(txid)
}

func (l *Ledger) assembling(txid chainhash.Hash) (model.SettlementRecord, error) {
	rec, err := l.records.Record(txid)
	if err != nil {
		return model.SettlementRecord{}, err
	}
	if rec.Status == model.StatusSettled {
		return model.SettlementRecord{}, fmt.Errorf("%w: %s", model.ErrAlreadySettled, txid)
	}
	return rec, nil
}
