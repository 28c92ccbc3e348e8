package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Sink receives events of committed calls. Delivery failures never affect the call.
	Sink interface {
		Publish(ctx context.Context, event model.Event) error
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
		SetTip(height uint32)
		AddHeaders(n int)
		AddPayout(amount uint64, staged bool)
	}
)
