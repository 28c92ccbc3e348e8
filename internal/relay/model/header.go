package model

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	// TimestampWindow is the number of preceding block timestamps carried by a committed header.
	TimestampWindow = 10

	// HeaderSize is the length of a serialized Bitcoin block header.
	HeaderSize = 80

	// CommittedHeaderSize is the length of the canonical committed header encoding.
	CommittedHeaderSize = HeaderSize + 32 + 4 + 4 + TimestampWindow*4
)

// CommittedHeader is an accepted block header together with the consensus state derived for it.
// Its canonical encoding is the continuation token callers present on the next submission.
type CommittedHeader struct {
	Header             wire.BlockHeader
	ChainWork          [32]byte
	LastDiffAdjustment uint32
	Height             uint32
	// PrevTimestamps holds the timestamps of the headers preceding this one, oldest first.
	PrevTimestamps [TimestampWindow]uint32
}

// Hash returns the block hash of the wrapped header.
func (c CommittedHeader) Hash() chainhash.Hash {
	return c.Header.BlockHash()
}

// Timestamp returns the header time in seconds.
func (c CommittedHeader) Timestamp() uint32 {
	return uint32(c.Header.Timestamp.Unix())
}

// MedianTimePast returns the median of the preceding window and this header's own timestamp.
func (c CommittedHeader) MedianTimePast() uint32 {
	values := make([]uint32, 0, TimestampWindow+1)
	values = append(values, c.PrevTimestamps[:]...)
	values = append(values, c.Timestamp())
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values[len(values)/2]
}

// Bytes returns the canonical encoding:
// header(80) | chainWork(32 BE) | lastDiffAdjustment(4 LE) | height(4 LE) | timestamps(10 x 4 LE).
func (c CommittedHeader) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(CommittedHeaderSize)
	// Serialize into a bytes.Buffer cannot fail.
	_ = c.Header.Serialize(&buf)
	buf.Write(c.ChainWork[:])

	var scratch [4]byte
	binary.LittleEndian.PutUint32(scratch[:], c.LastDiffAdjustment)
	buf.Write(scratch[:])
	binary.LittleEndian.PutUint32(scratch[:], c.Height)
	buf.Write(scratch[:])
	for _, ts := range c.PrevTimestamps {
		binary.LittleEndian.PutUint32(scratch[:], ts)
		buf.Write(scratch[:])
	}
	return buf.Bytes()
}

// CommitHash is the double-SHA-256 digest of the canonical encoding.
func (c CommittedHeader) CommitHash() chainhash.Hash {
	return chainhash.DoubleHashH(c.Bytes())
}

// ParseCommittedHeader decodes the canonical committed header encoding.
func ParseCommittedHeader(b []byte) (CommittedHeader, error) {
	if len(b) != CommittedHeaderSize {
		return CommittedHeader{}, fmt.Errorf("committed header: expected %d bytes, got %d", CommittedHeaderSize, len(b))
	}

	var c CommittedHeader
	if err := c.Header.Deserialize(bytes.NewReader(b[:HeaderSize])); err != nil {
		return CommittedHeader{}, fmt.Errorf("committed header: decode block header: %w", err)
	}
	offset := HeaderSize
	copy(c.ChainWork[:], b[offset:offset+32])
	offset += 32
	c.LastDiffAdjustment = binary.LittleEndian.Uint32(b[offset:])
	offset += 4
	c.Height = binary.LittleEndian.Uint32(b[offset:])
	offset += 4
	for i := range c.PrevTimestamps {
		c.PrevTimestamps[i] = binary.LittleEndian.Uint32(b[offset:])
		offset += 4
	}
	return c, nil
}

// HeaderMarker records that a header hash was accepted at some point. Markers are never removed.
type HeaderMarker struct {
	Hash       chainhash.Hash
	CommitHash chainhash.Hash
	Height     uint32
}

// ChainState is the singleton relay state: the tip and a ring of recent commit hashes.
type ChainState struct {
	Tip             CommittedHeader
	BootstrapHeight uint32
	Ring            []chainhash.Hash
}

// PruningFactor is the ring capacity.
func (s ChainState) PruningFactor() uint32 {
	return uint32(len(s.Ring))
}

// InRing reports whether height is still retained by the ring.
func (s ChainState) InRing(height uint32) bool {
	n := s.PruningFactor()
	if n == 0 || height < s.BootstrapHeight || height > s.Tip.Height {
		return false
	}
	return s.Tip.Height-height < n
}

// Commitment returns the ring entry for height, if retained.
func (s ChainState) Commitment(height uint32) (chainhash.Hash, bool) {
	if !s.InRing(height) {
		return chainhash.Hash{}, false
	}
	return s.Ring[height%s.PruningFactor()], true
}

// Push stores the commit hash of a new tip, overwriting the slot evicted from the window.
func (s *ChainState) Push(tip CommittedHeader) {
	s.Ring[tip.Height%s.PruningFactor()] = tip.CommitHash()
	s.Tip = tip
}
