package clickhouse

import (
	"time"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

// HeaderRow is one accepted header.
type HeaderRow struct {
	Network    model.Network
	Header     model.CommittedHeader
	AcceptedAt time.Time
}

// SettlementRow is one completed payout.
type SettlementRow struct {
	Network model.Network
	Result  model.SettlementResult
}

// WithdrawalRow is one initiated withdrawal.
type WithdrawalRow struct {
	Network    model.Network
	Withdrawal model.Withdrawal
}

// RowsFromEvents splits events into table rows. Unknown kinds are dropped.
func RowsFromEvents(events []model.Event) ([]HeaderRow, []SettlementRow, []WithdrawalRow) {
	var (
		headers     []HeaderRow
		settlements []SettlementRow
		withdrawals []WithdrawalRow
	)
	for _, event := range events {
		switch event.Kind {
		case model.EventHeadersAccepted:
			for _, h := range event.Headers {
				headers = append(headers, HeaderRow{Network: event.Network, Header: h, AcceptedAt: event.At})
			}
		case model.EventTransactionSettled:
			if event.Settlement != nil {
				settlements = append(settlements, SettlementRow{Network: event.Network, Result: *event.Settlement})
			}
		case model.EventWithdrawalInitiated:
			if event.Withdrawal != nil {
				withdrawals = append(withdrawals, WithdrawalRow{Network: event.Network, Withdrawal: *event.Withdrawal})
			}
		}
	}
	return headers, settlements, withdrawals
}
