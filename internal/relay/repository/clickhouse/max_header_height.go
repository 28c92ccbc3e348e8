package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

const maxHeaderHeightQuery = `
SELECT coalesce(max(height), toUInt32(0)) AS max_height
FROM relay_headers
WHERE network = ?`

// MaxHeaderHeight returns the highest header recorded for network, zero when none is.
func (r *Repository) MaxHeaderHeight(ctx context.Context, network model.Network) (height uint32, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_header_height", 0, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxHeaderHeightQuery, string(network))
	if err != nil {
		return 0, fmt.Errorf("query max header height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, errors.New("max header height not found")
	}
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan max header height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max header height: %w", err)
	}
	return height, nil
}
