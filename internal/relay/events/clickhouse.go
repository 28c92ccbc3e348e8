package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/repository/clickhouse"
	"github.com/goodnatureofminers/btcrelay-backend/pkg/batcher"
	"go.uber.org/zap"
)

// ClickhouseSink queues events and writes them to history in batches. Publish only blocks while
// the queue is full.
type ClickhouseSink struct {
	history History
	batcher *batcher.Batcher[model.Event]
}

func NewClickhouseSink(history History, logger *zap.Logger, opts batcher.Options) *ClickhouseSink {
	s := &ClickhouseSink{history: history}
	s.batcher = batcher.New[model.Event](logger.Named("clickhouse_sink"), s.flush, opts)
	return s
}

// Start runs the flush loop until ctx is done.
func (s *ClickhouseSink) Start(ctx context.Context) {
	s.batcher.Start(ctx)
}

// Stop flushes queued events.
func (s *ClickhouseSink) Stop() {
	s.batcher.Stop()
}

func (s *ClickhouseSink) Publish(ctx context.Context, event model.Event) error {
	if err := s.batcher.Add(ctx, event); err != nil {
		return fmt.Errorf("queue %s event: %w", event.Kind, err)
	}
	return nil
}

func (s *ClickhouseSink) flush(ctx context.Context, events []model.Event) error {
	headers, settlements, withdrawals := clickhouse.RowsFromEvents(events)
	var errs []error
	if err := s.history.InsertHeaders(ctx, headers); err != nil {
		errs = append(errs, err)
	}
	if err := s.history.InsertSettlements(ctx, settlements); err != nil {
		errs = append(errs, err)
	}
	if err := s.history.InsertWithdrawals(ctx, withdrawals); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
