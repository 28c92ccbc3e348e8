package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const insertWithdrawalsQuery = `
INSERT INTO relay_withdrawals (
	network,
	id,
	amount,
	destination,
	requester,
	created_at
) VALUES`

// InsertWithdrawals stores initiated withdrawals.
func (r *Repository) InsertWithdrawals(ctx context.Context, rows []WithdrawalRow) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_withdrawals", len(rows), err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	err = r.send(ctx, insertWithdrawalsQuery, len(rows), func(i int) []any {
		w := rows[i].Withdrawal
		return []any{
			string(rows[i].Network),
			w.ID,
			w.Amount,
			w.Destination,
			w.Requester,
			w.CreatedAt.UTC(),
		}
	})
	if err != nil {
		return fmt.Errorf("insert withdrawals: %w", err)
	}
	return nil
}
