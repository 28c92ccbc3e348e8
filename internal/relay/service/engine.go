// Package service runs relay operations as atomic account-store transactions.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/google/uuid"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/accounts"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/chain"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/settlement"
	"github.com/lightningnetwork/lnd/clock"
	"go.uber.org/zap"
)

// Engine serializes relay calls through the account store and reports their outcome.
type Engine struct {
	cfg     Config
	store   accounts.Store
	sink    Sink
	metrics Metrics
	clock   clock.Clock
	logger  *zap.Logger
}

// NewEngine validates cfg and builds an Engine.
func NewEngine(cfg Config, store accounts.Store, sink Sink, metrics Metrics, clk clock.Clock, logger *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:     cfg,
		store:   store,
		sink:    sink,
		metrics: metrics,
		clock:   clk,
		logger:  logger.Named("engine").With(zap.String("network", string(cfg.Network))),
	}, nil
}

type components struct {
	validator *chain.Validator
	ledger    *settlement.Ledger
}

func (e *Engine) components(tx accounts.Tx) components {
	repo := accounts.NewRepository(tx)
	validator := chain.NewValidator(e.cfg.Chain, repo, e.clock)
	return components{
		validator: validator,
		ledger:    settlement.NewLedger(e.cfg.Settlement, validator, repo, repo, e.clock),
	}
}

func (e *Engine) update(ctx context.Context, operation string, fn func(c components) error) (err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe(operation, err, started)
	}()
	err = e.store.Atomic(ctx, func(tx accounts.Tx) error {
		return fn(e.components(tx))
	})
	e.failed(operation, err)
	return err
}

func (e *Engine) view(ctx context.Context, operation string, fn func(c components) error) (err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe(operation, err, started)
	}()
	err = e.store.View(ctx, func(tx accounts.Tx) error {
		return fn(e.components(tx))
	})
	e.failed(operation, err)
	return err
}

// failed logs rejections at debug level. Anything else is a store or infrastructure fault.
func (e *Engine) failed(operation string, err error) {
	switch {
	case err == nil:
	case IsRejection(err):
		e.logger.Debug("call rejected", zap.String("operation", operation), zap.Error(err))
	default:
		e.logger.Error("call failed", zap.String("operation", operation), zap.Error(err))
	}
}

func (e *Engine) publish(ctx context.Context, event model.Event) {
	event.Network = e.cfg.Network
	event.At = e.clock.Now().UTC()
	if err := e.sink.Publish(ctx, event); err != nil {
		e.logger.Warn("event not published", zap.String("kind", string(event.Kind)), zap.Error(err))
	}
}

func authenticated(caller model.Caller) error {
	if caller.ID == "" {
		return fmt.Errorf("%w: anonymous caller", model.ErrUnauthorized)
	}
	return nil
}

func operator(caller model.Caller) error {
	if err := authenticated(caller); err != nil {
		return err
	}
	if !caller.Operator {
		return fmt.Errorf("%w: %s is not an operator", model.ErrUnauthorized, caller.ID)
	}
	return nil
}

// Bootstrap initializes the relay from a trusted checkpoint.
func (e *Engine) Bootstrap(ctx context.Context, caller model.Caller, cp chain.Checkpoint) (model.CommittedHeader, error) {
	if err := operator(caller); err != nil {
		return model.CommittedHeader{}, err
	}

	var committed model.CommittedHeader
	err := e.update(ctx, "bootstrap", func(c components) error {
		var err error
		committed, err = c.validator.Bootstrap(cp)
		return err
	})
	if err != nil {
		return model.CommittedHeader{}, err
	}

	e.metrics.SetTip(committed.Height)
	e.logger.Info("relay bootstrapped",
		zap.Uint32("height", committed.Height),
		zap.Stringer("hash", committed.Hash()),
		zap.String("caller", caller.ID))
	e.publish(ctx, model.Event{Kind: model.EventHeadersAccepted, Headers: []model.CommittedHeader{committed}})
	return committed, nil
}

// SubmitHeaders extends the tip with headers on top of prior.
func (e *Engine) SubmitHeaders(ctx context.Context, caller model.Caller, headers []wire.BlockHeader, prior model.CommittedHeader) ([]model.CommittedHeader, error) {
	check := operator
	if e.cfg.OpenSubmission {
		check = authenticated
	}
	if err := check(caller); err != nil {
		return nil, err
	}

	var accepted []model.CommittedHeader
	err := e.update(ctx, "submit_headers", func(c components) error {
		var err error
		accepted, err = c.validator.Submit(headers, prior)
		return err
	})
	if err != nil {
		return nil, err
	}

	tip := accepted[len(accepted)-1]
	e.metrics.SetTip(tip.Height)
	e.metrics.AddHeaders(len(accepted))
	e.logger.Info("headers accepted",
		zap.Int("count", len(accepted)),
		zap.Uint32("tip_height", tip.Height),
		zap.Stringer("tip_hash", tip.Hash()))
	e.publish(ctx, model.Event{Kind: model.EventHeadersAccepted, Headers: accepted})
	return accepted, nil
}

// Tip returns the committed tip.
func (e *Engine) Tip(ctx context.Context) (model.CommittedHeader, error) {
	var tip model.CommittedHeader
	err := e.view(ctx, "tip", func(c components) error {
		var err error
		tip, err = c.validator.Tip()
		return err
	})
	if err != nil {
		return model.CommittedHeader{}, err
	}
	e.metrics.SetTip(tip.Height)
	return tip, nil
}

// HeaderStatus reports what the relay retains about hash.
func (e *Engine) HeaderStatus(ctx context.Context, hash chainhash.Hash) (chain.HeaderStatus, error) {
	var status chain.HeaderStatus
	err := e.view(ctx, "header_status", func(c components) error {
		var err error
		status, err = c.validator.Status(hash)
		return err
	})
	return status, err
}

// CheckBlockHeight asserts a relation between the tip height and value.
func (e *Engine) CheckBlockHeight(ctx context.Context, value, op uint32) error {
	return e.view(ctx, "check_block_height", func(c components) error {
		return c.validator.CheckBlockHeight(value, op)
	})
}

// SettleTransaction proves and settles a small transaction in one call.
func (e *Engine) SettleTransaction(ctx context.Context, caller model.Caller, raw []byte, inc settlement.Inclusion, recipient string) (model.SettlementResult, error) {
	if err := authenticated(caller); err != nil {
		return model.SettlementResult{}, err
	}

	var res model.SettlementResult
	err := e.update(ctx, "settle_transaction", func(c components) error {
		var err error
		res, err = c.ledger.SettleTransaction(raw, inc, recipient)
		return err
	})
	if err != nil {
		return model.SettlementResult{}, err
	}
	e.settled(ctx, res)
	return res, nil
}

// InitAssembly opens a staged settlement.
func (e *Engine) InitAssembly(ctx context.Context, caller model.Caller, txid chainhash.Hash, declaredLength uint32, inc settlement.Inclusion, recipient string) (model.SettlementRecord, error) {
	if err := authenticated(caller); err != nil {
		return model.SettlementRecord{}, err
	}

	var rec model.SettlementRecord
	err := e.update(ctx, "init_assembly", func(c components) error {
		var err error
		rec, err = c.ledger.InitAssembly(txid, declaredLength, inc, recipient)
		return err
	})
	if err != nil {
		return model.SettlementRecord{}, err
	}
	e.logger.Debug("assembly opened", zap.Stringer("txid", txid), zap.Uint32("declared_length", declaredLength))
	return rec, nil
}

// AppendBytes appends a chunk to a staged settlement.
func (e *Engine) AppendBytes(ctx context.Context, caller model.Caller, txid chainhash.Hash, chunk []byte) (model.SettlementRecord, error) {
	if err := authenticated(caller); err != nil {
		return model.SettlementRecord{}, err
	}

	var rec model.SettlementRecord
	err := e.update(ctx, "append_bytes", func(c components) error {
		var err error
		rec, err = c.ledger.AppendBytes(txid, chunk)
		return err
	})
	return rec, err
}

// Finalize verifies and settles a fully assembled transaction.
func (e *Engine) Finalize(ctx context.Context, caller model.Caller, txid chainhash.Hash) (model.SettlementResult, error) {
	if err := authenticated(caller); err != nil {
		return model.SettlementResult{}, err
	}

	var res model.SettlementResult
	err := e.update(ctx, "finalize", func(c components) error {
		var err error
		res, err = c.ledger.Finalize(txid)
		return err
	})
	if err != nil {
		return model.SettlementResult{}, err
	}
	e.settled(ctx, res)
	return res, nil
}

func (e *Engine) settled(ctx context.Context, res model.SettlementResult) {
	e.metrics.AddPayout(res.Payout, res.Staged)
	e.logger.Info("transaction settled",
		zap.Stringer("txid", res.TxID),
		zap.String("recipient", res.Recipient),
		zap.Uint64("payout", res.Payout),
		zap.Bool("staged", res.Staged))
	e.publish(ctx, model.Event{Kind: model.EventTransactionSettled, Settlement: &res})
}

// Record returns the settlement record of txid.
func (e *Engine) Record(ctx context.Context, txid chainhash.Hash) (model.SettlementRecord, error) {
	var rec model.SettlementRecord
	err := e.view(ctx, "record", func(c components) error {
		var err error
		rec, err = c.ledger.Record(txid)
		return err
	})
	return rec, err
}

// DepositReserve credits the reserve pool.
func (e *Engine) DepositReserve(ctx context.Context, caller model.Caller, amount uint64) (uint64, error) {
	if err := authenticated(caller); err != nil {
		return 0, err
	}

	var reserve uint64
	err := e.update(ctx, "deposit_reserve", func(c components) error {
		var err error
		reserve, err = c.ledger.Deposit(amount)
		return err
	})
	if err != nil {
		return 0, err
	}
	e.logger.Info("reserve deposited", zap.Uint64("amount", amount), zap.Uint64("reserve", reserve), zap.String("caller", caller.ID))
	return reserve, nil
}

// InitiateWithdrawal debits the reserve toward an external destination.
func (e *Engine) InitiateWithdrawal(ctx context.Context, caller model.Caller, amount uint64, destination string) (model.Withdrawal, error) {
	if err := operator(caller); err != nil {
		return model.Withdrawal{}, err
	}

	var w model.Withdrawal
	err := e.update(ctx, "initiate_withdrawal", func(c components) error {
		var err error
		w, err = c.ledger.InitiateWithdrawal(amount, destination, caller.ID)
		return err
	})
	if err != nil {
		return model.Withdrawal{}, err
	}
	e.logger.Info("withdrawal initiated",
		zap.Stringer("id", w.ID),
		zap.Uint64("amount", w.Amount),
		zap.String("destination", w.Destination))
	e.publish(ctx, model.Event{Kind: model.EventWithdrawalInitiated, Withdrawal: &w})
	return w, nil
}

// Withdrawal returns the withdrawal intent with id.
func (e *Engine) Withdrawal(ctx context.Context, id uuid.UUID) (model.Withdrawal, error) {
	var w model.Withdrawal
	err := e.view(ctx, "withdrawal", func(c components) error {
		var err error
		w, err = c.ledger.Withdrawal(id)
		return err
	})
	return w, err
}

// Reserve returns the reserve pool balance.
func (e *Engine) Reserve(ctx context.Context) (uint64, error) {
	var reserve uint64
	err := e.view(ctx, "reserve", func(c components) error {
		var err error
		reserve, err = c.ledger.Reserve()
		return err
	})
	return reserve, err
}

// Balance returns the payout balance of recipient.
func (e *Engine) Balance(ctx context.Context, recipient string) (uint64, error) {
	var balance uint64
	err := e.view(ctx, "balance", func(c components) error {
		var err error
		balance, err = c.ledger.Balance(recipient)
		return err
	})
	return balance, err
}

// Initialized reports whether the relay has been bootstrapped.
func (e *Engine) Initialized(ctx context.Context) (bool, error) {
	_, err := e.Tip(ctx)
	switch {
	case chain.IsNotInitialized(err):
		return false, nil
	case err != nil:
		return false, err
	default:
		return true, nil
	}
}

// IsRejection reports whether err is a caller-visible rejection rather than an infrastructure
// failure.
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var rejections = []error{
	model.ErrChainContinuity,
	model.ErrProofOfWork,
	model.ErrDifficultyAdjustment,
	model.ErrTimestampOrdering,
	model.ErrMerkleProofMismatch,
	model.ErrChunkOverflow,
	model.ErrIncompleteAssembly,
	model.ErrDuplicateRecord,
	model.ErrAlreadySettled,
	model.ErrInsufficientReserve,
	model.ErrNotInitialized,
	model.ErrUnauthorized,
	model.ErrInsufficientConfirmations,
	model.ErrUnknownHeader,
	model.ErrRecordNotFound,
	model.ErrInvalidDeclaredLength,
	model.ErrUnexpectedDepositScript,
	model.ErrMalformedTransaction,
	model.ErrOutputIndexOutOfRange,
	model.ErrAlreadyInitialized,
	model.ErrArithmeticOverflow,
	model.ErrBlockHeightCondition,
	model.ErrInvalidDestination,
	model.ErrEmptyHeaderBatch,
	model.ErrInvalidAmount,
	model.ErrInvalidRecipient,
	model.ErrWithdrawalNotFound,
}
