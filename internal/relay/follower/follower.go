// Package follower keeps a relay in step with a bitcoind node.
package follower

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcrelay-backend/internal/clock"
	"github.com/goodnatureofminers/btcrelay-backend/pkg/safe"
	lndclock "github.com/lightningnetwork/lnd/clock"
	"go.uber.org/zap"
)

// ErrDiverged means the node's best chain does not extend the relay tip.
var ErrDiverged = errors.New("node chain diverges from relay tip")

// Follower submits the node's new headers to the relay in batches.
type Follower struct {
	cfg     Config
	node    Node
	relay   Relay
	metrics Metrics
	clock   lndclock.Clock
	logger  *zap.Logger
	signal  <-chan struct{}
}

// New builds a Follower. A non-nil signal wakes the loop before the poll interval elapses.
func New(cfg Config, node Node, relay Relay, metrics Metrics, clk lndclock.Clock, logger *zap.Logger, signal <-chan struct{}) (*Follower, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("follower config: %w", err)
	}
	return &Follower{
		cfg:     cfg,
		node:    node,
		relay:   relay,
		metrics: metrics,
		clock:   clk,
		logger:  logger.Named("follower"),
		signal:  signal,
	}, nil
}

// Run syncs until ctx is done.
func (f *Follower) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		caughtUp, err := f.Sync(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			f.logger.Warn("sync failed, backing off", zap.Error(err), zap.Duration("sleep", f.cfg.PollInterval))
		}
		if err == nil && !caughtUp {
			continue
		}
		if err := f.wait(ctx, f.cfg.PollInterval); err != nil {
			return err
		}
	}
}

// Sync submits at most one batch of headers above the relay tip. It reports whether the relay
// has caught up with the node.
func (f *Follower) Sync(ctx context.Context) (caughtUp bool, err error) {
	started := time.Now()
	defer func() {
		f.metrics.ObserveSync(err, started)
	}()

	tip, err := f.relay.Tip(ctx)
	if err != nil {
		return false, fmt.Errorf("relay tip: %w", err)
	}
	count, err := f.node.GetBlockCount()
	if err != nil {
		return false, fmt.Errorf("get block count: %w", err)
	}
	nodeHeight, err := safe.Uint32(count)
	if err != nil {
		return false, fmt.Errorf("node height %d: %w", count, err)
	}
	f.metrics.SetLag(nodeHeight, tip.Height)

	if nodeHeight <= tip.Height {
		return true, nil
	}

	last := nodeHeight
	if uint64(nodeHeight)-uint64(tip.Height) > uint64(f.cfg.BatchSize) {
		last = tip.Height + uint32(f.cfg.BatchSize)
	}

	headers, err := fetchHeaders(ctx, f.node, f.cfg.Workers, heightRange(tip.Height+1, last))
	if err != nil {
		return false, err
	}
	if err := linked(tip.Hash(), headers); err != nil {
		return false, err
	}

	accepted, err := f.relay.SubmitHeaders(ctx, f.cfg.Caller, headers, tip)
	if err != nil {
		return false, fmt.Errorf("submit headers %d-%d: %w", tip.Height+1, last, err)
	}
	f.metrics.ObserveBatch(len(accepted))
	f.logger.Info("headers relayed",
		zap.Uint32("from", tip.Height+1),
		zap.Uint32("to", last),
		zap.Uint32("node_height", nodeHeight))

	return last == nodeHeight, nil
}

func (f *Follower) wait(ctx context.Context, d time.Duration) error {
	if f.signal == nil {
		return clock.Sleep(ctx, f.clock, d)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.signal:
		return nil
	case <-f.clock.TickAfter(d):
		return nil
	}
}

func linked(parent chainhash.Hash, headers []wire.BlockHeader) error {
	for i := range headers {
		if headers[i].PrevBlock != parent {
			return fmt.Errorf("%w: header %s does not build on %s", ErrDiverged, headers[i].BlockHash(), parent)
		}
		parent = headers[i].BlockHash()
	}
	return nil
}
