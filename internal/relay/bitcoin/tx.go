package bitcoin

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

// 64-byte transactions are indistinguishable from an inner Merkle node.
const forgeableTxSize = 64

// LeafHash returns the Merkle leaf of raw transaction bytes: their double-SHA-256, or the
// witness-stripped txid when the bytes use the segwit encoding.
func LeafHash(raw []byte) (chainhash.Hash, error) {
	if !hasWitnessMarker(raw) {
		return chainhash.DoubleHashH(raw), nil
	}
	tx, err := DecodeTransaction(raw)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return tx.TxHash(), nil
}

// DecodeTransaction parses a complete raw transaction and rejects trailing bytes.
func DecodeTransaction(raw []byte) (*wire.MsgTx, error) {
	if len(raw) == forgeableTxSize {
		return nil, fmt.Errorf("%w: %d-byte transaction", model.ErrMalformedTransaction, len(raw))
	}

	reader := bytes.NewReader(raw)
	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(reader); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedTransaction, err)
	}
	if reader.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", model.ErrMalformedTransaction, reader.Len())
	}
	return tx, nil
}

// OutputAt extracts value and script of output index.
func OutputAt(tx *wire.MsgTx, index uint32) (model.ProvenOutput, error) {
	if int(index) >= len(tx.TxOut) {
		return model.ProvenOutput{}, fmt.Errorf("%w: index %d, outputs %d", model.ErrOutputIndexOutOfRange, index, len(tx.TxOut))
	}
	out := tx.TxOut[index]
	if out.Value < 0 {
		return model.ProvenOutput{}, fmt.Errorf("%w: negative output value", model.ErrMalformedTransaction)
	}
	return model.ProvenOutput{
		TxID:   tx.TxHash(),
		Index:  index,
		Value:  out.Value,
		Script: append([]byte(nil), out.PkScript...),
	}, nil
}

func hasWitnessMarker(raw []byte) bool {
	return len(raw) > 6 && raw[4] == 0x00 && raw[5] == 0x01
}
