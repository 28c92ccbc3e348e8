package follower

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/chain"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"go.uber.org/zap"
)

// BootstrapConfig selects the trusted checkpoint read from the node.
type BootstrapConfig struct {
	Height           uint32
	ChainWork        [32]byte
	RetargetInterval uint32
	Workers          int
	Caller           model.Caller
}

func (c BootstrapConfig) Validate() error {
	switch {
	case c.Height < model.TimestampWindow:
		return fmt.Errorf("bootstrap height must be at least %d", model.TimestampWindow)
	case c.ChainWork == [32]byte{}:
		return errors.New("bootstrap chain work is required")
	case c.RetargetInterval == 0:
		return errors.New("retarget interval must be positive")
	case c.Caller.ID == "":
		return errors.New("caller id is required")
	}
	return nil
}

// Bootstrapper initializes an empty relay from headers read off the node.
type Bootstrapper struct {
	cfg    BootstrapConfig
	node   Node
	relay  Relay
	logger *zap.Logger
}

func NewBootstrapper(cfg BootstrapConfig, node Node, relay Relay, logger *zap.Logger) (*Bootstrapper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bootstrap config: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	return &Bootstrapper{cfg: cfg, node: node, relay: relay, logger: logger.Named("bootstrapper")}, nil
}

// Bootstrap initializes the relay unless it already is. It reports whether it did.
func (b *Bootstrapper) Bootstrap(ctx context.Context) (bool, error) {
	initialized, err := b.relay.Initialized(ctx)
	if err != nil {
		return false, fmt.Errorf("relay state: %w", err)
	}
	if initialized {
		return false, nil
	}

	cp, err := b.Checkpoint(ctx)
	if err != nil {
		return false, err
	}
	committed, err := b.relay.Bootstrap(ctx, b.cfg.Caller, cp)
	if err != nil {
		return false, fmt.Errorf("bootstrap relay: %w", err)
	}
	b.logger.Info("relay bootstrapped from node",
		zap.Uint32("height", committed.Height),
		zap.Stringer("hash", committed.Hash()))
	return true, nil
}

// Checkpoint reads the header at the configured height together with the ten headers before it
// and the last retarget boundary.
func (b *Bootstrapper) Checkpoint(ctx context.Context) (chain.Checkpoint, error) {
	h := b.cfg.Height
	boundary := h - h%b.cfg.RetargetInterval

	heights := heightRange(h-model.TimestampWindow, h)
	heights = append(heights, boundary)
	headers, err := fetchHeaders(ctx, b.node, b.cfg.Workers, heights)
	if err != nil {
		return chain.Checkpoint{}, fmt.Errorf("checkpoint headers: %w", err)
	}

	window := headers[:model.TimestampWindow+1]
	if err := linked(window[0].PrevBlock, window); err != nil {
		return chain.Checkpoint{}, fmt.Errorf("checkpoint window: %w", err)
	}

	cp := chain.Checkpoint{
		Header:             window[model.TimestampWindow],
		Height:             h,
		ChainWork:          b.cfg.ChainWork,
		LastDiffAdjustment: uint32(headers[len(headers)-1].Timestamp.Unix()),
	}
	for i := 0; i < model.TimestampWindow; i++ {
		cp.PrevTimestamps[i] = uint32(window[i].Timestamp.Unix())
	}
	return cp, nil
}
