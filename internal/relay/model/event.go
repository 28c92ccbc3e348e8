package model

import "time"

// EventKind names an engine event.
type EventKind string

const (
	EventHeadersAccepted     EventKind = "headers_accepted"
	EventTransactionSettled  EventKind = "transaction_settled"
	EventWithdrawalInitiated EventKind = "withdrawal_initiated"
)

// Event is emitted after a committed engine call. Exactly one payload matches Kind.
type Event struct {
	Kind       EventKind
	Network    Network
	At         time.Time
	Headers    []CommittedHeader
	Settlement *SettlementResult
	Withdrawal *Withdrawal
}
