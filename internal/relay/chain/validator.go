// Package chain accepts Bitcoin headers as linear extensions of a trusted checkpoint.
package chain

import (
	"errors"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/bitcoin"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/chainwork"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/lightningnetwork/lnd/clock"
)

// Checkpoint is the operator-supplied starting point of the relayed chain.
type Checkpoint struct {
	Header             wire.BlockHeader
	Height             uint32
	ChainWork          [32]byte
	LastDiffAdjustment uint32
	PrevTimestamps     [model.TimestampWindow]uint32
}

// Validator applies header acceptance rules against a Store.
type Validator struct {
	cfg      Config
	retarget bitcoin.Retarget
	store    Store
	clock    clock.Clock
}

// NewValidator builds a Validator. Config is assumed validated.
func NewValidator(cfg Config, store Store, clk clock.Clock) *Validator {
	return &Validator{
		cfg:      cfg,
		retarget: bitcoin.NewRetarget(cfg.Params, cfg.RetargetInterval),
		store:    store,
		clock:    clk,
	}
}

// Bootstrap initializes the chain state from a trusted checkpoint. It fails once the state exists.
func (v *Validator) Bootstrap(cp Checkpoint) (model.CommittedHeader, error) {
	committed := model.CommittedHeader{
		Header:             cp.Header,
		ChainWork:          cp.ChainWork,
		LastDiffAdjustment: cp.LastDiffAdjustment,
		Height:             cp.Height,
		PrevTimestamps:     cp.PrevTimestamps,
	}

	state := model.ChainState{
		BootstrapHeight: cp.Height,
		Ring:            make([]chainhash.Hash, v.cfg.PruningFactor),
	}
	state.Push(committed)

	if err := v.store.CreateState(state); err != nil {
		return model.CommittedHeader{}, fmt.Errorf("bootstrap: %w", err)
	}
	if err := v.createMarker(committed); err != nil {
		return model.CommittedHeader{}, fmt.Errorf("bootstrap: %w", err)
	}
	return committed, nil
}

// Submit validates headers in order on top of prior, which must be the current tip, and
// commits every accepted header. It returns the committed headers in submission order.
func (v *Validator) Submit(headers []wire.BlockHeader, prior model.CommittedHeader) ([]model.CommittedHeader, error) {
	if len(headers) == 0 {
		return nil, model.ErrEmptyHeaderBatch
	}

	state, err := v.store.State()
	if err != nil {
		return nil, err
	}
	if prior.Height != state.Tip.Height || prior.CommitHash() != state.Tip.CommitHash() {
		return nil, fmt.Errorf("%w: prior header %s at %d is not the tip %s at %d",
			model.ErrChainContinuity, prior.Hash(), prior.Height, state.Tip.Hash(), state.Tip.Height)
	}

	accepted := make([]model.CommittedHeader, 0, len(headers))
	current := state.Tip
	for i := range headers {
		next, err := v.accept(current, &headers[i])
		if err != nil {
			return nil, fmt.Errorf("header %d (%s): %w", i, headers[i].BlockHash(), err)
		}
		state.Push(next)
		if err := v.createMarker(next); err != nil {
			return nil, fmt.Errorf("header %d: %w", i, err)
		}
		accepted = append(accepted, next)
		current = next
	}

	if err := v.store.PutState(state); err != nil {
		return nil, fmt.Errorf("store chain state: %w", err)
	}
	return accepted, nil
}

func (v *Validator) accept(prior model.CommittedHeader, header *wire.BlockHeader) (model.CommittedHeader, error) {
	priorHash := prior.Hash()
	if !header.PrevBlock.IsEqual(&priorHash) {
		return model.CommittedHeader{}, fmt.Errorf("%w: previous block %s, expected %s",
			model.ErrChainContinuity, header.PrevBlock, priorHash)
	}
	if err := bitcoin.CheckProofOfWork(header, v.cfg.Params.PowLimit); err != nil {
		return model.CommittedHeader{}, err
	}
	if prior.Height == math.MaxUint32 {
		return model.CommittedHeader{}, fmt.Errorf("height: %w", model.ErrArithmeticOverflow)
	}
	height := prior.Height + 1
	if err := v.retarget.Check(prior, header, height); err != nil {
		return model.CommittedHeader{}, err
	}

	timestamp := uint32(header.Timestamp.Unix())
	if mtp := prior.MedianTimePast(); timestamp <= mtp {
		return model.CommittedHeader{}, fmt.Errorf("%w: timestamp %d not after median time past %d",
			model.ErrTimestampOrdering, timestamp, mtp)
	}
	if limit := v.clock.Now().Add(v.cfg.MaxFutureBlockTime); !header.Timestamp.Before(limit) {
		return model.CommittedHeader{}, fmt.Errorf("%w: timestamp %d, limit %d",
			model.ErrTimestampTooFarInFuture, timestamp, limit.Unix())
	}

	work, err := chainwork.Accumulate(prior.ChainWork, header.Bits)
	if err != nil {
		return model.CommittedHeader{}, err
	}

	next := model.CommittedHeader{
		Header:             *header,
		ChainWork:          work,
		LastDiffAdjustment: v.retarget.LastAdjustment(prior, header, height),
		Height:             height,
	}
	copy(next.PrevTimestamps[:], prior.PrevTimestamps[1:])
	next.PrevTimestamps[model.TimestampWindow-1] = prior.Timestamp()
	return next, nil
}

func (v *Validator) createMarker(committed model.CommittedHeader) error {
	return v.store.CreateMarker(model.HeaderMarker{
		Hash:       committed.Hash(),
		CommitHash: committed.CommitHash(),
		Height:     committed.Height,
	})
}

// Tip returns the current tip.
func (v *Validator) Tip() (model.CommittedHeader, error) {
	state, err := v.store.State()
	if err != nil {
		return model.CommittedHeader{}, err
	}
	return state.Tip, nil
}

// HeaderStatus describes what the relay retains about a header hash.
type HeaderStatus struct {
	Marker model.HeaderMarker
	InRing bool
}

// Status looks up the marker of hash and whether its commitment is still in the ring.
func (v *Validator) Status(hash chainhash.Hash) (HeaderStatus, error) {
	state, err := v.store.State()
	if err != nil {
		return HeaderStatus{}, err
	}
	marker, err := v.store.Marker(hash)
	if err != nil {
		return HeaderStatus{}, err
	}
	slot, ok := state.Commitment(marker.Height)
	return HeaderStatus{Marker: marker, InRing: ok && slot == marker.CommitHash}, nil
}

// VerifyCommitted checks that header was committed by this relay and is buried under at least
// max(confirmations, MinConfirmations) blocks counting itself. Headers pruned from the ring
// are resolved through their existence marker.
func (v *Validator) VerifyCommitted(header model.CommittedHeader, confirmations uint32) error {
	state, err := v.store.State()
	if err != nil {
		return err
	}

	commit := header.CommitHash()
	if slot, ok := state.Commitment(header.Height); !ok || slot != commit {
		marker, err := v.store.Marker(header.Hash())
		if err != nil {
			return err
		}
		if marker.CommitHash != commit || marker.Height != header.Height {
			return fmt.Errorf("%w: commitment of %s does not match", model.ErrUnknownHeader, header.Hash())
		}
	}

	if header.Height > state.Tip.Height {
		return fmt.Errorf("%w: header %d above tip %d", model.ErrUnknownHeader, header.Height, state.Tip.Height)
	}
	if confirmations < v.cfg.MinConfirmations {
		confirmations = v.cfg.MinConfirmations
	}
	if have := state.Tip.Height - header.Height + 1; have < confirmations {
		return fmt.Errorf("%w: have %d, need %d", model.ErrInsufficientConfirmations, have, confirmations)
	}
	return nil
}

// Comparison operators accepted by CheckBlockHeight.
const (
	HeightLess uint32 = iota
	HeightLessOrEqual
	HeightGreater
	HeightGreaterOrEqual
	HeightEqual
)

// CheckBlockHeight asserts a relation between the tip height and value.
func (v *Validator) CheckBlockHeight(value, op uint32) error {
	tip, err := v.Tip()
	if err != nil {
		return err
	}

	var ok bool
	switch op {
	case HeightLess:
		ok = tip.Height < value
	case HeightLessOrEqual:
		ok = tip.Height <= value
	case HeightGreater:
		ok = tip.Height > value
	case HeightGreaterOrEqual:
		ok = tip.Height >= value
	case HeightEqual:
		ok = tip.Height == value
	default:
		return fmt.Errorf("%w: unknown operation %d", model.ErrBlockHeightCondition, op)
	}
	if !ok {
		return fmt.Errorf("%w: tip %d, operation %d, value %d", model.ErrBlockHeightCondition, tip.Height, op, value)
	}
	return nil
}

// IsNotInitialized reports whether err means the relay has no chain state yet.
func IsNotInitialized(err error) bool {
	return errors.Is(err, model.ErrNotInitialized)
}
