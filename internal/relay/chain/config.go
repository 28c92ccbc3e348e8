package chain

import (
	"errors"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/bitcoin"
)

const (
	DefaultPruningFactor      = 250
	DefaultMinConfirmations   = 1
	DefaultMaxFutureBlockTime = 4 * time.Hour
)

// Config holds the consensus parameters of a relay deployment.
type Config struct {
	Params             *chaincfg.Params
	PruningFactor      uint32
	RetargetInterval   uint32
	MinConfirmations   uint32
	MaxFutureBlockTime time.Duration
}

// DefaultConfig returns the Bitcoin defaults for params.
func DefaultConfig(params *chaincfg.Params) Config {
	return Config{
		Params:             params,
		PruningFactor:      DefaultPruningFactor,
		RetargetInterval:   bitcoin.DefaultRetargetInterval,
		MinConfirmations:   DefaultMinConfirmations,
		MaxFutureBlockTime: DefaultMaxFutureBlockTime,
	}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	switch {
	case c.Params == nil:
		return errors.New("chain params are required")
	case c.PruningFactor == 0:
		return errors.New("pruning factor must be positive")
	case c.MaxFutureBlockTime <= 0:
		return errors.New("max future block time must be positive")
	}
	return nil
}
