package service

import (
	"fmt"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/chain"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/settlement"
)

// Config assembles the parameters of one relay deployment.
type Config struct {
	Network    model.Network
	Chain      chain.Config
	Settlement settlement.Config
	// OpenSubmission lets any authenticated caller submit headers.
	OpenSubmission bool
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if err := c.Chain.Validate(); err != nil {
		return fmt.Errorf("chain config: %w", err)
	}
	if err := c.Settlement.Validate(); err != nil {
		return fmt.Errorf("settlement config: %w", err)
	}
	if c.Chain.Params != c.Settlement.Params {
		return fmt.Errorf("chain and settlement configs use different networks")
	}
	return nil
}
