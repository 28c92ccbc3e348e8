package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"
)

const insertHeadersQuery = `
INSERT INTO relay_headers (
	network,
	height,
	hash,
	prev_hash,
	merkle_root,
	version,
	timestamp,
	bits,
	nonce,
	chain_work,
	commit_hash,
	accepted_at
) VALUES`

// InsertHeaders stores accepted headers.
func (r *Repository) InsertHeaders(ctx context.Context, rows []HeaderRow) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_headers", len(rows), err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	err = r.send(ctx, insertHeadersQuery, len(rows), func(i int) []any {
		row := rows[i]
		h := row.Header
		return []any{
			string(row.Network),
			h.Height,
			h.Hash().String(),
			h.Header.PrevBlock.String(),
			h.Header.MerkleRoot.String(),
			h.Header.Version,
			h.Header.Timestamp.UTC(),
			h.Header.Bits,
			h.Header.Nonce,
			hex.EncodeToString(h.ChainWork[:]),
			h.CommitHash().String(),
			row.AcceptedAt.UTC(),
		}
	})
	if err != nil {
		return fmt.Errorf("insert headers: %w", err)
	}
	return nil
}
