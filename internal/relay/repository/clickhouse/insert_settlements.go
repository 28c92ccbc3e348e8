package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const insertSettlementsQuery = `
INSERT INTO relay_settlements (
	network,
	txid,
	recipient,
	output_index,
	value,
	payout,
	block_hash,
	block_height,
	staged,
	settled_at
) VALUES`

// InsertSettlements stores completed payouts.
func (r *Repository) InsertSettlements(ctx context.Context, rows []SettlementRow) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_settlements", len(rows), err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	err = r.send(ctx, insertSettlementsQuery, len(rows), func(i int) []any {
		res := rows[i].Result
		return []any{
			string(rows[i].Network),
			res.TxID.String(),
			res.Recipient,
			res.OutputIndex,
			res.Value,
			res.Payout,
			res.BlockHash.String(),
			res.BlockHeight,
			res.Staged,
			res.SettledAt.UTC(),
		}
	})
	if err != nil {
		return fmt.Errorf("insert settlements: %w", err)
	}
	return nil
}
