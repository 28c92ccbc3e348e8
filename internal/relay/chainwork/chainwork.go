// Package chainwork computes per-header proof-of-work and accumulates it in 256-bit words.
package chainwork

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/holiman/uint256"
)

// Work returns floor(2^256 / (T+1)) for the target T encoded by nbits.
func Work(nbits uint32) (*uint256.Int, error) {
	target, err := Target(nbits)
	if err != nil {
		return nil, err
	}

	// 2^256 / (T+1) == (2^256 - T - 1) / (T+1) + 1 == ^T / (T+1) + 1
	denominator, overflow := new(uint256.Int).AddOverflow(target, uint256.NewInt(1))
	if overflow {
		return uint256.NewInt(1), nil
	}
	work := new(uint256.Int).Not(target)
	work.Div(work, denominator)
	return work.AddUint64(work, 1), nil
}

// Target decodes the compact encoding into a 256-bit target. Zero, negative and oversized
// targets are rejected.
func Target(nbits uint32) (*uint256.Int, error) {
	big := blockchain.CompactToBig(nbits)
	if big.Sign() <= 0 {
		return nil, fmt.Errorf("%w: non-positive target from bits %08x", model.ErrProofOfWork, nbits)
	}
	target, overflow := uint256.FromBig(big)
	if overflow {
		return nil, fmt.Errorf("%w: target from bits %08x exceeds 256 bits", model.ErrProofOfWork, nbits)
	}
	return target, nil
}

// Add returns a + b, failing when the sum does not fit in 256 bits.
func Add(a, b *uint256.Int) (*uint256.Int, error) {
	sum, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, fmt.Errorf("chain work: %w", model.ErrArithmeticOverflow)
	}
	return sum, nil
}

// Accumulate adds the work of nbits to the big-endian encoded chain work.
func Accumulate(chainWork [32]byte, nbits uint32) ([32]byte, error) {
	work, err := Work(nbits)
	if err != nil {
		return [32]byte{}, err
	}
	sum, err := Add(FromBytes(chainWork), work)
	if err != nil {
		return [32]byte{}, err
	}
	return sum.Bytes32(), nil
}

// FromBytes decodes a 32-byte big-endian value.
func FromBytes(b [32]byte) *uint256.Int {
	return new(uint256.Int).SetBytes32(b[:])
}

// Compare orders two big-endian encoded values.
func Compare(a, b [32]byte) int {
	return bytes.Compare(a[:], b[:])
}

// ParseHex decodes a big-endian hex value such as the chainwork field of getblockheader.
func ParseHex(s string) ([32]byte, error) {
	s = strings.TrimLeft(strings.TrimPrefix(s, "0x"), "0")
	if s == "" {
		s = "0"
	}
	v, err := uint256.FromHex("0x" + s)
	if err != nil {
		return [32]byte{}, fmt.Errorf("parse chain work %q: %w", s, err)
	}
	return v.Bytes32(), nil
}
