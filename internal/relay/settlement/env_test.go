package settlement_test

import (
	"context"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/accounts"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/chain"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/relaytest"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/settlement"
	"github.com/lightningnetwork/lnd/clock"
	"github.com/stretchr/testify/require"
)

const initialReserve = 10_000_000

// env is a bootstrapped relay with one block carrying the transactions under test.
type env struct {
	t        *testing.T
	chainCfg chain.Config
	cfg      settlement.Config
	store    *accounts.MemoryStore
	clock    *clock.TestClock
	gen      *relaytest.Chain

	tip   model.CommittedHeader
	block model.CommittedHeader
}

func newEnv(t *testing.T, mutate ...func(*chain.Config, *settlement.Config)) *env {
	t.Helper()

	params := relaytest.RegtestParams()
	e := &env{
		t:        t,
		chainCfg: chain.DefaultConfig(params),
		cfg:      settlement.DefaultConfig(params),
		store:    accounts.NewMemoryStore(),
		clock:    clock.NewTestClock(relaytest.Epoch.Add(7 * 24 * time.Hour)),
	}
	for _, fn := range mutate {
		fn(&e.chainCfg, &e.cfg)
	}
	require.NoError(t, e.chainCfg.Validate())
	require.NoError(t, e.cfg.Validate())

	cp := relaytest.Checkpoint(t, 500, relaytest.Bits)
	require.NoError(t, e.run(func(_ *settlement.Ledger, v *chain.Validator) error {
		_, err := v.Bootstrap(chain.Checkpoint{
			Header:             cp.Header,
			Height:             cp.Height,
			ChainWork:          cp.ChainWork,
			LastDiffAdjustment: cp.LastDiffAdjustment,
			PrevTimestamps:     cp.PrevTimestamps,
		})
		return err
	}))
	e.tip = cp
	e.gen = relaytest.NewChain(t, cp.Header)

	require.NoError(t, e.run(func(l *settlement.Ledger, _ *chain.Validator) error {
		_, err := l.Deposit(initialReserve)
		return err
	}))
	return e
}

func (e *env) run(fn func(l *settlement.Ledger, v *chain.Validator) error) error {
	return e.store.Atomic(context.Background(), func(tx accounts.Tx) error {
		repo := accounts.NewRepository(tx)
		v := chain.NewValidator(e.chainCfg, repo, e.clock)
		return fn(settlement.NewLedger(e.cfg, v, repo, repo, e.clock), v)
	})
}

// mine commits a block with root followed by extra empty blocks.
func (e *env) mine(root chainhash.Hash, extra int) {
	e.t.Helper()

	headers := []wire.BlockHeader{e.gen.Next(relaytest.WithMerkleRoot(root))}
	headers = append(headers, e.gen.Headers(extra)...)
	require.NoError(e.t, e.run(func(_ *settlement.Ledger, v *chain.Validator) error {
		accepted, err := v.Submit(headers, e.tip)
		if err != nil {
			return err
		}
		e.block = accepted[0]
		e.tip = accepted[len(accepted)-1]
		return nil
	}))
}

func (e *env) reserve() uint64 {
	e.t.Helper()

	var reserve uint64
	require.NoError(e.t, e.run(func(l *settlement.Ledger, _ *chain.Validator) error {
		var err error
		reserve, err = l.Reserve()
		return err
	}))
	return reserve
}

func (e *env) balance(recipient string) uint64 {
	e.t.Helper()

	var balance uint64
	require.NoError(e.t, e.run(func(l *settlement.Ledger, _ *chain.Validator) error {
		var err error
		balance, err = l.Balance(recipient)
		return err
	}))
	return balance
}

func (e *env) record(txid chainhash.Hash) model.SettlementRecord {
	e.t.Helper()

	var rec model.SettlementRecord
	require.NoError(e.t, e.run(func(l *settlement.Ledger, _ *chain.Validator) error {
		var err error
		rec, err = l.Record(txid)
		return err
	}))
	return rec
}

// address returns a regtest P2PKH address and its output script.
func address(t *testing.T, seed byte) (string, []byte) {
	t.Helper()

	hash := make([]byte, 20)
	for i := range hash {
		hash[i] = seed
	}
	addr, err := btcutil.NewAddressPubKeyHash(hash, relaytest.RegtestParams())
	require.NoError(t, err)
	script, err := txscript.PayToAddrScript(addr)
	require.NoError(t, err)
	return addr.EncodeAddress(), script
}
