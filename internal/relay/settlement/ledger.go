// Package settlement turns proven Bitcoin outputs into one-time payouts from the reserve pool.
package settlement

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/bitcoin"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/goodnatureofminers/btcrelay-backend/pkg/safe"
	"github.com/google/uuid"
	"github.com/lightningnetwork/lnd/clock"
)

// Ledger applies settlements, staged assemblies and reserve accounting. It is built per atomic
// call over the stores of that call.
type Ledger struct {
	cfg     Config
	headers Headers
	records Records
	funds   Funds
	clock   clock.Clock
}

// NewLedger builds a Ledger. Config is assumed validated.
func NewLedger(cfg Config, headers Headers, records Records, funds Funds, clk clock.Clock) *Ledger {
	return &Ledger{
		cfg:     cfg,
		headers: headers,
		records: records,
		funds:   funds,
		clock:   clk,
	}
}

// Inclusion locates a transaction output in a committed block.
type Inclusion struct {
	OutputIndex   uint32
	LeafPosition  uint32
	Proof         []chainhash.Hash
	Header        model.CommittedHeader
	Confirmations uint32
}

// SettleTransaction proves raw in a committed header and pays the recipient in a single step.
func (l *Ledger) SettleTransaction(raw []byte, inc Inclusion, recipient string) (model.SettlementResult, error) {
	if recipient == "" {
		return model.SettlementResult{}, model.ErrInvalidRecipient
	}
	if uint64(len(raw)) > uint64(l.cfg.MaxTxSize) {
		return model.SettlementResult{}, fmt.Errorf("%w: %d bytes", model.ErrInvalidDeclaredLength, len(raw))
	}
	if err := l.headers.VerifyCommitted(inc.Header, inc.Confirmations); err != nil {
		return model.SettlementResult{}, err
	}

	out, err := bitcoin.VerifyInclusion(raw, inc.OutputIndex, inc.LeafPosition, inc.Proof, inc.Header)
	if err != nil {
		return model.SettlementResult{}, err
	}
	if err := l.ensureUnused(out.TxID); err != nil {
		return model.SettlementResult{}, err
	}

	payout, err := l.pay(out, recipient)
	if err != nil {
		return model.SettlementResult{}, err
	}

	now := l.clock.Now().UTC()
	rec := model.SettlementRecord{
		TxID:           out.TxID,
		Status:         model.StatusSettled,
		Recipient:      recipient,
		DeclaredLength: uint32(len(raw)),
		OutputIndex:    inc.OutputIndex,
		LeafPosition:   inc.LeafPosition,
		Proof:          inc.Proof,
		Header:         inc.Header,
		Confirmations:  inc.Confirmations,
		Payout:         payout,
		CreatedAt:      now,
		SettledAt:      now,
	}
	if err := l.records.CreateRecord(rec); err != nil {
		return model.SettlementResult{}, fmt.Errorf("settle %s: %w", out.TxID, err)
	}
	return result(rec, out, false), nil
}

// ensureUnused fails when txid already has a record.
func (l *Ledger) ensureUnused(txid chainhash.Hash) error {
	rec, err := l.records.Record(txid)
	switch {
	case errors.Is(err, model.ErrRecordNotFound):
		return nil
	case err != nil:
		return err
	case rec.Status == model.StatusSettled:
		return fmt.Errorf("%w: %s", model.ErrAlreadySettled, txid)
	default:
		return fmt.Errorf("%w: %s is %s", model.ErrDuplicateRecord, txid, rec.Status)
	}
}

// pay checks the deposit policy, then moves the payout of out from the reserve to recipient.
func (l *Ledger) pay(out model.ProvenOutput, recipient string) (uint64, error) {
	if err := l.cfg.Deposit.Check(out); err != nil {
		return 0, err
	}
	value, err := safe.Uint64(out.Value)
	if err != nil {
		return 0, fmt.Errorf("%w: output value %d", model.ErrMalformedTransaction, out.Value)
	}
	payout, err := l.Payout(value)
	if err != nil {
		return 0, err
	}

	reserve, err := l.funds.Reserve()
	if err != nil {
		return 0, err
	}
	if reserve < payout {
		return 0, fmt.Errorf("%w: reserve %d, payout %d", model.ErrInsufficientReserve, reserve, payout)
	}
	balance, err := l.funds.Balance(recipient)
	if err != nil {
		return 0, err
	}
	credited, err := safe.Add(balance, payout)
	if err != nil {
		return 0, fmt.Errorf("%w: balance of %s", model.ErrArithmeticOverflow, recipient)
	}

	if err := l.funds.PutReserve(reserve - payout); err != nil {
		return 0, err
	}
	if err := l.funds.PutBalance(recipient, credited); err != nil {
		return 0, err
	}
	return payout, nil
}

// Payout converts a value in satoshis into payout units at the configured rate.
func (l *Ledger) Payout(value uint64) (uint64, error) {
	payout, err := safe.MulDiv(value, l.cfg.RateNumerator, l.cfg.RateDenominator)
	if err != nil {
		return 0, fmt.Errorf("%w: payout of %d", model.ErrArithmeticOverflow, value)
	}
	return payout, nil
}

// Deposit credits the reserve pool and returns the new reserve.
func (l *Ledger) Deposit(amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, fmt.Errorf("%w: zero deposit", model.ErrInvalidAmount)
	}
	reserve, err := l.funds.Reserve()
	if err != nil {
		return 0, err
	}
	total, err := safe.Add(reserve, amount)
	if err != nil {
		return 0, fmt.Errorf("%w: reserve", model.ErrArithmeticOverflow)
	}
	if err := l.funds.PutReserve(total); err != nil {
		return 0, err
	}
	return total, nil
}

// InitiateWithdrawal debits the reserve and records the intent to pay destination off-ledger.
func (l *Ledger) InitiateWithdrawal(amount uint64, destination, requester string) (model.Withdrawal, error) {
	if amount == 0 {
		return model.Withdrawal{}, fmt.Errorf("%w: zero withdrawal", model.ErrInvalidAmount)
	}
	if err := bitcoin.ValidateDestination(destination, l.cfg.Params); err != nil {
		return model.Withdrawal{}, err
	}

	reserve, err := l.funds.Reserve()
	if err != nil {
		return model.Withdrawal{}, err
	}
	remaining, err := safe.Sub(reserve, amount)
	if err != nil {
		return model.Withdrawal{}, fmt.Errorf("%w: reserve %d, withdrawal %d", model.ErrInsufficientReserve, reserve, amount)
	}

	w := model.Withdrawal{
		ID:          uuid.New(),
		Amount:      amount,
		Destination: destination,
		Requester:   requester,
		CreatedAt:   l.clock.Now().UTC(),
	}
	if err := l.funds.PutReserve(remaining); err != nil {
		return model.Withdrawal{}, err
	}
	if err := l.funds.CreateWithdrawal(w); err != nil {
		return model.Withdrawal{}, fmt.Errorf("withdrawal %s: %w", w.ID, err)
	}
	return w, nil
}

// Withdrawal returns a previously initiated withdrawal intent.
func (l *Ledger) Withdrawal(id uuid.UUID) (model.Withdrawal, error) {
	return l.funds.Withdrawal(id)
}

// Reserve returns the reserve pool balance.
func (l *Ledger) Reserve() (uint64, error) {
	return l.funds.Reserve()
}

// Balance returns the payout balance of recipient.
func (l *Ledger) Balance(recipient string) (uint64, error) {
	return l.funds.Balance(recipient)
}

func result(rec model.SettlementRecord, out model.ProvenOutput, staged bool) model.SettlementResult {
	return model.SettlementResult{
		TxID:        rec.TxID,
		Recipient:   rec.Recipient,
		OutputIndex: out.Index,
		Value:       out.Value,
		Payout:      rec.Payout,
		BlockHash:   rec.Header.Hash(),
		BlockHeight: rec.Header.Height,
		Staged:      staged,
		SettledAt:   rec.SettledAt,
	}
}
