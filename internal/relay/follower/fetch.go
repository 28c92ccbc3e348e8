package follower

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcrelay-backend/pkg/workerpool"
)

// fetchHeaders reads the headers at heights from the node, in the order given.
func fetchHeaders(ctx context.Context, node Node, workers int, heights []uint32) ([]wire.BlockHeader, error) {
	return workerpool.Map(ctx, workers, heights, func(ctx context.Context, height uint32) (wire.BlockHeader, error) {
		if err := ctx.Err(); err != nil {
			return wire.BlockHeader{}, err
		}
		hash, err := node.GetBlockHash(int64(height))
		if err != nil {
			return wire.BlockHeader{}, fmt.Errorf("get block hash %d: %w", height, err)
		}
		header, err := node.GetBlockHeader(hash)
		if err != nil {
			return wire.BlockHeader{}, fmt.Errorf("get block header %s: %w", hash, err)
		}
		return *header, nil
	})
}

func heightRange(from, to uint32) []uint32 {
	if to < from {
		return nil
	}
	heights := make([]uint32, 0, to-from+1)
	for h := from; ; h++ {
		heights = append(heights, h)
		if h == to {
			return heights
		}
	}
}
