// Package clock provides context-aware waiting on an injectable clock.
package clock

import (
	"context"
	"time"

	lndclock "github.com/lightningnetwork/lnd/clock"
)

// Sleep waits d on clk or returns early with the context error.
func Sleep(ctx context.Context, clk lndclock.Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-clk.TickAfter(d):
		return nil
	}
}
