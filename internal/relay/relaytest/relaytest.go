// Package relaytest builds mined header chains and proven transactions for tests.
package relaytest

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/bitcoin"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

const (
	// Bits is the regtest proof-of-work limit; roughly every other nonce satisfies it.
	Bits uint32 = 0x207fffff

	// Spacing is the interval between generated block timestamps.
	Spacing = 10 * time.Minute
)

// Epoch is the timestamp of generated checkpoints.
var Epoch = time.Unix(1_700_000_000, 0)

// RegtestParams returns a copy of the regression test network params.
func RegtestParams() *chaincfg.Params {
	params := chaincfg.RegressionNetParams
	return &params
}

// RetargetParams returns regtest-like params with difficulty adjustment enabled.
func RetargetParams() *chaincfg.Params {
	params := chaincfg.RegressionNetParams
	params.Name = "retargettest"
	params.PoWNoRetargeting = false
	params.ReduceMinDifficulty = false
	return &params
}

// Mine searches for a nonce satisfying the header target.
func Mine(t testing.TB, header *wire.BlockHeader) {
	t.Helper()

	target := blockchain.CompactToBig(header.Bits)
	for nonce := uint32(0); ; nonce++ {
		header.Nonce = nonce
		hash := header.BlockHash()
		if blockchain.HashToBig(&hash).Cmp(target) <= 0 {
			return
		}
		if nonce == math.MaxUint32 {
			t.Fatalf("no nonce satisfies bits %08x", header.Bits)
		}
	}
}

// Unmine searches for a nonce whose hash exceeds the header target.
func Unmine(t testing.TB, header *wire.BlockHeader) {
	t.Helper()

	target := blockchain.CompactToBig(header.Bits)
	for nonce := uint32(0); ; nonce++ {
		header.Nonce = nonce
		hash := header.BlockHash()
		if blockchain.HashToBig(&hash).Cmp(target) > 0 {
			return
		}
		if nonce == math.MaxUint32 {
			t.Fatalf("every nonce satisfies bits %08x", header.Bits)
		}
	}
}

// Checkpoint builds a trusted starting header at height with a 10-minute timestamp history.
func Checkpoint(t testing.TB, height uint32, bits uint32) model.CommittedHeader {
	t.Helper()

	var prev chainhash.Hash
	binary.LittleEndian.PutUint32(prev[:], height)
	header := wire.BlockHeader{
		Version:    0x20000000,
		PrevBlock:  prev,
		MerkleRoot: chainhash.DoubleHashH(prev[:]),
		Timestamp:  Epoch,
		Bits:       bits,
	}
	Mine(t, &header)

	committed := model.CommittedHeader{
		Header: header,
		Height: height,
	}
	committed.ChainWork[30] = 0x01
	start := uint32(Epoch.Unix())
	for i := range committed.PrevTimestamps {
		committed.PrevTimestamps[i] = start - uint32(model.TimestampWindow-i)*uint32(Spacing.Seconds())
	}
	committed.LastDiffAdjustment = start - (height%bitcoin.DefaultRetargetInterval)*uint32(Spacing.Seconds())
	return committed
}

// HeaderOption customizes a generated header before it is mined.
type HeaderOption func(*wire.BlockHeader)

// WithBits overrides the header bits.
func WithBits(bits uint32) HeaderOption {
	return func(h *wire.BlockHeader) { h.Bits = bits }
}

// WithTime overrides the header timestamp.
func WithTime(ts time.Time) HeaderOption {
	return func(h *wire.BlockHeader) { h.Timestamp = ts }
}

// WithMerkleRoot sets the header Merkle root.
func WithMerkleRoot(root chainhash.Hash) HeaderOption {
	return func(h *wire.BlockHeader) { h.MerkleRoot = root }
}

// WithPrevBlock overrides the parent hash.
func WithPrevBlock(prev chainhash.Hash) HeaderOption {
	return func(h *wire.BlockHeader) { h.PrevBlock = prev }
}

// Chain extends a tip with mined headers.
type Chain struct {
	t    testing.TB
	tip  wire.BlockHeader
	Bits uint32
}

// NewChain starts a chain at tip.
func NewChain(t testing.TB, tip wire.BlockHeader) *Chain {
	return &Chain{t: t, tip: tip, Bits: tip.Bits}
}

// Tip returns the last generated header.
func (c *Chain) Tip() wire.BlockHeader {
	return c.tip
}

// Next mines a header on top of the tip and makes it the new tip.
func (c *Chain) Next(opts ...HeaderOption) wire.BlockHeader {
	c.t.Helper()

	header := c.Build(opts...)
	Mine(c.t, &header)
	c.tip = header
	return header
}

// Build returns an unmined child of the tip without advancing the chain.
func (c *Chain) Build(opts ...HeaderOption) wire.BlockHeader {
	header := wire.BlockHeader{
		Version:    0x20000000,
		PrevBlock:  c.tip.BlockHash(),
		MerkleRoot: chainhash.DoubleHashH(c.tip.MerkleRoot[:]),
		Timestamp:  c.tip.Timestamp.Add(Spacing),
		Bits:       c.Bits,
	}
	for _, opt := range opts {
		opt(&header)
	}
	return header
}

// Headers mines n consecutive headers.
func (c *Chain) Headers(n int) []wire.BlockHeader {
	c.t.Helper()

	headers := make([]wire.BlockHeader, 0, n)
	for i := 0; i < n; i++ {
		headers = append(headers, c.Next())
	}
	return headers
}

// PaymentTx builds a one-input transaction paying values to scripts. Filler outputs grow the
// encoding for staged assembly tests.
func PaymentTx(seed byte, values []int64, scripts [][]byte) *wire.MsgTx {
	tx := wire.NewMsgTx(2)
	prev := chainhash.DoubleHashH([]byte{seed})
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prev, uint32(seed)), []byte{0x51, seed}, nil))
	for i, value := range values {
		tx.AddTxOut(wire.NewTxOut(value, scripts[i%len(scripts)]))
	}
	return tx
}

// Raw serializes a transaction without witness data.
func Raw(t testing.TB, tx *wire.MsgTx) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := tx.SerializeNoWitness(&buf); err != nil {
		t.Fatalf("serialize tx: %v", err)
	}
	return buf.Bytes()
}

// Block is a generated block: its transactions, their txids and the Merkle root over them.
type Block struct {
	Txs    []*wire.MsgTx
	Leaves []chainhash.Hash
	Root   chainhash.Hash
}

// NewBlock computes txids and the Merkle root using btcd's tree builder.
func NewBlock(txs ...*wire.MsgTx) Block {
	wrapped := make([]*btcutil.Tx, 0, len(txs))
	leaves := make([]chainhash.Hash, 0, len(txs))
	for _, tx := range txs {
		wrapped = append(wrapped, btcutil.NewTx(tx))
		leaves = append(leaves, tx.TxHash())
	}
	store := blockchain.BuildMerkleTreeStore(wrapped, false)
	return Block{Txs: txs, Leaves: leaves, Root: *store[len(store)-1]}
}

// Proof returns the Merkle path of transaction index.
func (b Block) Proof(t testing.TB, index uint32) []chainhash.Hash {
	t.Helper()

	proof, err := bitcoin.BuildProof(b.Leaves, index)
	if err != nil {
		t.Fatalf("build proof: %v", err)
	}
	return proof
}

// Filler returns distinct coinbase-like transactions used to populate blocks.
func Filler(n int) []*wire.MsgTx {
	script := []byte{0x00, 0x14, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a,
		0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14}
	txs := make([]*wire.MsgTx, 0, n)
	for i := 0; i < n; i++ {
		txs = append(txs, PaymentTx(byte(200+i), []int64{int64(1000 + i)}, [][]byte{script}))
	}
	return txs
}
