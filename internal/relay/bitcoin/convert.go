package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

// ParseHeader decodes an 80-byte serialized block header.
func ParseHeader(raw []byte) (wire.BlockHeader, error) {
	if len(raw) != model.HeaderSize {
		return wire.BlockHeader{}, fmt.Errorf("block header: expected %d bytes, got %d", model.HeaderSize, len(raw))
	}
	var header wire.BlockHeader
	if err := header.Deserialize(bytes.NewReader(raw)); err != nil {
		return wire.BlockHeader{}, fmt.Errorf("block header: %w", err)
	}
	return header, nil
}

// ParseHeaderHex decodes a hex-encoded serialized block header.
func ParseHeaderHex(value string) (wire.BlockHeader, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return wire.BlockHeader{}, fmt.Errorf("block header hex: %w", err)
	}
	return ParseHeader(raw)
}

// HeaderHex serializes a header to hex.
func HeaderHex(header wire.BlockHeader) string {
	var buf bytes.Buffer
	_ = header.Serialize(&buf)
	return hex.EncodeToString(buf.Bytes())
}

// ParseHashes decodes hashes given in display (byte-reversed) order.
func ParseHashes(values []string) ([]chainhash.Hash, error) {
	hashes := make([]chainhash.Hash, 0, len(values))
	for i, value := range values {
		hash, err := chainhash.NewHashFromStr(value)
		if err != nil {
			return nil, fmt.Errorf("hash %d: %w", i, err)
		}
		hashes = append(hashes, *hash)
	}
	return hashes, nil
}

// ParseChainWork decodes a big-endian hex chain work value of at most 32 bytes.
func ParseChainWork(value string) ([32]byte, error) {
	var work [32]byte
	value = strings.TrimPrefix(strings.TrimSpace(value), "0x")
	if value == "" {
		return work, nil
	}
	if len(value)%2 == 1 {
		value = "0" + value
	}
	raw, err := hex.DecodeString(value)
	if err != nil {
		return work, fmt.Errorf("chain work hex: %w", err)
	}
	if len(raw) > len(work) {
		return work, fmt.Errorf("chain work: %d bytes exceeds 32", len(raw))
	}
	copy(work[len(work)-len(raw):], raw)
	return work, nil
}
