package bitcoin

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

// DefaultRetargetInterval is the number of blocks between difficulty adjustments on Bitcoin.
const DefaultRetargetInterval = 2016

// Retarget applies the difficulty adjustment rule of a network.
type Retarget struct {
	Interval            uint32
	TargetTimespan      int64
	AdjustmentFactor    int64
	PowLimit            *big.Int
	NoRetargeting       bool
	ReduceMinDifficulty bool
}

// NewRetarget builds the rule from chain params. A zero interval falls back to the params.
func NewRetarget(params *chaincfg.Params, interval uint32) Retarget {
	timespan := int64(params.TargetTimespan.Seconds())
	if interval == 0 {
		interval = uint32(params.TargetTimespan / params.TargetTimePerBlock)
	}
	return Retarget{
		Interval:            interval,
		TargetTimespan:      timespan,
		AdjustmentFactor:    params.RetargetAdjustmentFactor,
		PowLimit:            params.PowLimit,
		NoRetargeting:       params.PoWNoRetargeting,
		ReduceMinDifficulty: params.ReduceMinDifficulty,
	}
}

// IsBoundary reports whether a header at height starts a new difficulty period.
func (r Retarget) IsBoundary(height uint32) bool {
	return r.Interval != 0 && height%r.Interval == 0
}

// NextBits computes the compact target required at a period boundary following prior.
func (r Retarget) NextBits(prior model.CommittedHeader) uint32 {
	span := int64(prior.Timestamp()) - int64(prior.LastDiffAdjustment)
	factor := r.AdjustmentFactor
	if factor <= 0 {
		factor = 4
	}
	minSpan := r.TargetTimespan / factor
	maxSpan := r.TargetTimespan * factor
	if span < minSpan {
		span = minSpan
	} else if span > maxSpan {
		span = maxSpan
	}

	target := blockchain.CompactToBig(prior.Header.Bits)
	target.Mul(target, big.NewInt(span))
	target.Div(target, big.NewInt(r.TargetTimespan))
	if r.PowLimit != nil && target.Cmp(r.PowLimit) > 0 {
		target.Set(r.PowLimit)
	}
	return blockchain.BigToCompact(target)
}

// Check verifies the bits of header, to be committed at height, against prior.
func (r Retarget) Check(prior model.CommittedHeader, header *wire.BlockHeader, height uint32) error {
	switch {
	case r.NoRetargeting:
		if header.Bits != prior.Header.Bits {
			return fmt.Errorf("%w: bits %08x at height %d, network does not retarget",
				model.ErrDifficultyAdjustment, header.Bits, height)
		}
		return nil
	case r.ReduceMinDifficulty:
		// Min-difficulty blocks depend on history the relay does not keep.
		return nil
	case !r.IsBoundary(height):
		if header.Bits != prior.Header.Bits {
			return fmt.Errorf("%w: bits %08x at height %d, expected unchanged %08x",
				model.ErrDifficultyAdjustment, header.Bits, height, prior.Header.Bits)
		}
		return nil
	default:
		want := r.NextBits(prior)
		if header.Bits != want {
			return fmt.Errorf("%w: bits %08x at retarget height %d, expected %08x",
				model.ErrDifficultyAdjustment, header.Bits, height, want)
		}
		return nil
	}
}

// LastAdjustment returns the lastDiffAdjustment carried by a header committed at height.
func (r Retarget) LastAdjustment(prior model.CommittedHeader, header *wire.BlockHeader, height uint32) uint32 {
	if r.IsBoundary(height) {
		return uint32(header.Timestamp.Unix())
	}
	return prior.LastDiffAdjustment
}
