package main

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/btcrelay-backend/internal/metrics"
	"github.com/goodnatureofminers/btcrelay-backend/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/chainwork"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/follower"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/service"
	lndclock "github.com/lightningnetwork/lnd/clock"
	"go.uber.org/zap"
)

func follow(ctx context.Context, engine *service.Engine, network model.Network, retargetInterval uint32, clk lndclock.Clock, logger *zap.Logger) error {
	client, err := rpcclient.Connect(config.Follower.RPCHost, config.Follower.RPCUser, config.Follower.RPCPassword, !config.Follower.RPCTLS)
	if err != nil {
		return fmt.Errorf("connect bitcoind: %w", err)
	}
	defer client.Shutdown()
	node := rpcclient.NewObservedClient(client, metrics.NewRPCClient(network))
	caller := model.Caller{ID: config.Follower.Caller, Operator: true}

	if config.Bootstrap.Height > 0 {
		work, err := chainwork.ParseHex(config.Bootstrap.ChainWork)
		if err != nil {
			return err
		}
		b, err := follower.NewBootstrapper(follower.BootstrapConfig{
			Height:           config.Bootstrap.Height,
			ChainWork:        work,
			RetargetInterval: retargetInterval,
			Workers:          config.Follower.Workers,
			Caller:           caller,
		}, node, engine, logger)
		if err != nil {
			return err
		}
		if _, err := b.Bootstrap(ctx); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
	}

	signal, err := startBlockSignal(ctx, config.Follower.ZMQAddr, logger)
	if err != nil {
		return err
	}

	cfg := follower.DefaultConfig(caller)
	cfg.PollInterval = config.Follower.PollInterval
	cfg.BatchSize = config.Follower.BatchSize
	cfg.Workers = config.Follower.Workers
	f, err := follower.New(cfg, node, engine, metrics.NewFollower(network), clk, logger, signal)
	if err != nil {
		return err
	}
	return f.Run(ctx)
}
