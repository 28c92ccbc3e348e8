// Package events delivers committed engine events to off-core observers.
package events

import (
	"context"
	"encoding/hex"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"go.uber.org/zap"
)

// LogSink writes events to a logger.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Named("events")}
}

func (s *LogSink) Publish(_ context.Context, event model.Event) error {
	fields := []zap.Field{
		zap.String("kind", string(event.Kind)),
		zap.String("network", string(event.Network)),
		zap.Time("at", event.At),
	}
	switch {
	case len(event.Headers) > 0:
		last := event.Headers[len(event.Headers)-1]
		fields = append(fields,
			zap.Int("headers", len(event.Headers)),
			zap.Uint32("tip_height", last.Height),
			zap.Stringer("tip_hash", last.Hash()),
			zap.String("committed", hex.EncodeToString(last.Bytes())))
	case event.Settlement != nil:
		fields = append(fields,
			zap.Stringer("txid", event.Settlement.TxID),
			zap.String("recipient", event.Settlement.Recipient),
			zap.Uint64("payout", event.Settlement.Payout))
	case event.Withdrawal != nil:
		fields = append(fields,
			zap.Stringer("id", event.Withdrawal.ID),
			zap.Uint64("amount", event.Withdrawal.Amount),
			zap.String("destination", event.Withdrawal.Destination))
	}
	s.logger.Info("event", fields...)
	return nil
}
