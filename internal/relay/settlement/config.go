package settlement

import (
	"errors"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/bitcoin"
)

const (
	// DefaultRateNumerator and DefaultRateDenominator convert satoshis into payout units.
	DefaultRateNumerator   = 10
	DefaultRateDenominator = 1

	// DefaultSmallTxThreshold is the smallest transaction that must go through staged assembly.
	DefaultSmallTxThreshold = 800
	// DefaultMaxTxSize bounds declared transaction lengths.
	DefaultMaxTxSize = 4_000_000
)

// Config holds the settlement parameters of a relay deployment.
type Config struct {
	Params           *chaincfg.Params
	RateNumerator    uint64
	RateDenominator  uint64
	SmallTxThreshold uint32
	MaxTxSize        uint32
	Deposit          bitcoin.DepositPolicy
}

// DefaultConfig returns a config without a deposit address restriction.
func DefaultConfig(params *chaincfg.Params) Config {
	return Config{
		Params:           params,
		RateNumerator:    DefaultRateNumerator,
		RateDenominator:  DefaultRateDenominator,
		SmallTxThreshold: DefaultSmallTxThreshold,
		MaxTxSize:        DefaultMaxTxSize,
	}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	switch {
	case c.Params == nil:
		return errors.New("chain params are required")
	case c.RateDenominator == 0:
		return errors.New("payout rate denominator must be positive")
	case c.SmallTxThreshold == 0:
		return errors.New("small transaction threshold must be positive")
	case c.MaxTxSize < c.SmallTxThreshold:
		return errors.New("max transaction size is below the small transaction threshold")
	}
	return nil
}
