package events

import (
	"context"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/repository/clickhouse"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Sink interface {
		Publish(ctx context.Context, event model.Event) error
	}

	// History persists event rows.
	History interface {
		InsertHeaders(ctx context.Context, rows []clickhouse.HeaderRow) error
		InsertSettlements(ctx context.Context, rows []clickhouse.SettlementRow) error
		InsertWithdrawals(ctx context.Context, rows []clickhouse.WithdrawalRow) error
	}

	Metrics interface {
		Observe(kind string, err error)
	}
)
