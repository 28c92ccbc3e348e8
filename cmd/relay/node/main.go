package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/btcrelay-backend/internal/metrics"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/accounts"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/bitcoin"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/chain"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/events"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/repository/clickhouse"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/service"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/settlement"
	"github.com/goodnatureofminers/btcrelay-backend/internal/transport"
	"github.com/goodnatureofminers/btcrelay-backend/pkg/batcher"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	lndclock "github.com/lightningnetwork/lnd/clock"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/health"
)

var config struct {
	Network        string `long:"network" env:"RELAY_NETWORK" description:"bitcoin network (mainnet, testnet, regtest, signet)" default:"mainnet"`
	StorePath      string `long:"store-path" env:"RELAY_STORE_PATH" description:"bbolt account store file, empty keeps state in memory"`
	OperatorToken  string `long:"operator-token" env:"RELAY_OPERATOR_TOKEN" description:"bearer token granting operator rights"`
	OpenSubmission bool   `long:"open-submission" env:"RELAY_OPEN_SUBMISSION" description:"let any authenticated caller submit headers"`
	RestAddr       string `long:"rest-addr" env:"RELAY_REST_ADDR" description:"rest addr" default:":8001"`
	GRPCAddr       string `long:"grpc-addr" env:"RELAY_GRPC_ADDR" description:"grpc health addr" default:":8000"`
	MetricsAddr    string `long:"metrics-addr" env:"RELAY_METRICS_ADDR" description:"separate metrics addr, empty serves /metrics on the rest addr"`

	Chain struct {
		PruningFactor      uint32        `long:"pruning-factor" env:"PRUNING_FACTOR" description:"number of recent commitments kept" default:"250"`
		RetargetInterval   uint32        `long:"retarget-interval" env:"RETARGET_INTERVAL" description:"blocks per difficulty period" default:"2016"`
		MinConfirmations   uint32        `long:"min-confirmations" env:"MIN_CONFIRMATIONS" description:"confirmations required by settlement" default:"1"`
		MaxFutureBlockTime time.Duration `long:"max-future-block-time" env:"MAX_FUTURE_BLOCK_TIME" description:"how far a header may run ahead of the clock" default:"4h"`
	} `group:"chain" namespace:"chain" env-namespace:"RELAY_CHAIN"`

	Settlement struct {
		RateNumerator    uint64 `long:"rate-numerator" env:"RATE_NUMERATOR" description:"payout rate numerator" default:"10"`
		RateDenominator  uint64 `long:"rate-denominator" env:"RATE_DENOMINATOR" description:"payout rate denominator" default:"1"`
		SmallTxThreshold uint32 `long:"small-tx-threshold" env:"SMALL_TX_THRESHOLD" description:"largest transaction settled in one call" default:"800"`
		MaxTxSize        uint32 `long:"max-tx-size" env:"MAX_TX_SIZE" description:"largest transaction accepted by staged assembly" default:"4000000"`
		DepositAddress   string `long:"deposit-address" env:"DEPOSIT_ADDRESS" description:"address settled outputs must pay, empty accepts any"`
	} `group:"settlement" namespace:"settlement" env-namespace:"RELAY_SETTLEMENT"`

	History struct {
		ClickhouseDSN string        `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" description:"ClickHouse DSN, empty disables history"`
		BatchSize     int           `long:"batch-size" env:"BATCH_SIZE" description:"events per insert" default:"1000"`
		FlushInterval time.Duration `long:"flush-interval" env:"FLUSH_INTERVAL" description:"partial batch flush interval" default:"5s"`
		RPS           int           `long:"rps" env:"RPS" description:"max inserts per second" default:"10"`
	} `group:"history" namespace:"history" env-namespace:"RELAY_HISTORY"`

	Follower struct {
		Enabled      bool          `long:"enabled" env:"ENABLED" description:"follow a bitcoind node"`
		RPCHost      string        `long:"rpc-host" env:"RPC_HOST" description:"bitcoind rpc host:port" default:"localhost:8332"`
		RPCUser      string        `long:"rpc-user" env:"RPC_USER" description:"bitcoind rpc user"`
		RPCPassword  string        `long:"rpc-password" env:"RPC_PASSWORD" description:"bitcoind rpc password"`
		RPCTLS       bool          `long:"rpc-tls" env:"RPC_TLS" description:"use tls for rpc"`
		ZMQAddr      string        `long:"zmq-addr" env:"ZMQ_ADDR" description:"bitcoind zmqpubhashblock endpoint"`
		PollInterval time.Duration `long:"poll-interval" env:"POLL_INTERVAL" description:"poll interval" default:"30s"`
		BatchSize    int           `long:"batch-size" env:"BATCH_SIZE" description:"headers per submission" default:"500"`
		Workers      int           `long:"workers" env:"WORKERS" description:"concurrent header fetches" default:"8"`
		Caller       string        `long:"caller" env:"CALLER" description:"caller id of follower submissions" default:"follower"`
	} `group:"follower" namespace:"follower" env-namespace:"RELAY_FOLLOWER"`

	Bootstrap struct {
		Height    uint32 `long:"height" env:"HEIGHT" description:"checkpoint height read from the node, zero skips bootstrap"`
		ChainWork string `long:"chain-work" env:"CHAIN_WORK" description:"cumulative chain work at the checkpoint (hex)"`
	} `group:"bootstrap" namespace:"bootstrap" env-namespace:"RELAY_BOOTSTRAP"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	if err := run(ctx, logger); err != nil {
		logger.Fatal("Relay node stopped", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	network := model.Network(config.Network)
	cfg, err := engineConfig(network)
	if err != nil {
		return err
	}
	clk := lndclock.NewDefaultClock()

	store, err := openStore(config.StorePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close account store", zap.Error(err))
		}
	}()

	sinks := events.Fanout{events.Observed{Sink: events.NewLogSink(logger), Metrics: metrics.NewSink("log")}}
	if config.History.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(config.History.ClickhouseDSN, metrics.NewClickhouseRepository(network))
		if err != nil {
			return fmt.Errorf("connect clickhouse: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("Failed to close clickhouse", zap.Error(err))
			}
		}()
		if height, err := repo.MaxHeaderHeight(ctx, network); err != nil {
			logger.Warn("Failed to read history height", zap.Error(err))
		} else {
			logger.Info("History resumes", zap.Uint32("height", height))
		}

		sink := events.NewClickhouseSink(repo, logger, batcher.Options{
			Size:     config.History.BatchSize,
			Interval: config.History.FlushInterval,
			RPS:      config.History.RPS,
		})
		sink.Start(ctx)
		defer sink.Stop()
		sinks = append(sinks, events.Observed{Sink: sink, Metrics: metrics.NewSink("clickhouse")})
	}

	engine, err := service.NewEngine(cfg, store, sinks, metrics.NewEngine(network), clk, logger)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	hs := health.NewServer()
	grpcServer := transport.NewGRPCServer(logger, hs)
	socket, err := net.Listen("tcp", config.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	g.Go(func() error {
		logger.Info("Starting gRPC server", zap.String("addr", config.GRPCAddr))
		return grpcServer.Serve(socket)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
		return nil
	})
	g.Go(func() error {
		return ignoreCanceled(transport.NewHealthWatcher(engine, hs, 10*time.Second, clk, logger).Run(ctx))
	})

	srv, err := transport.NewHTTPServer(config.RestAddr, transport.NewHandler(engine, transport.NewAuthenticator(config.OperatorToken), logger))
	if err != nil {
		return err
	}
	servers := []*http.Server{srv}
	if config.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		servers = append(servers, &http.Server{
			Addr:              config.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		})
	}
	for _, s := range servers {
		s := s
		g.Go(func() error {
			logger.Info("Starting HTTP server", zap.String("addr", s.Addr))
			if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen and serve %s: %w", s.Addr, err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			logger.Info("Shutting down the http server", zap.String("addr", s.Addr))
			if err := s.Shutdown(context.Background()); err != nil {
				logger.Error("Failed to shutdown http server", zap.Error(err))
			}
			return nil
		})
	}

	if config.Follower.Enabled {
		g.Go(func() error {
			return ignoreCanceled(follow(ctx, engine, network, cfg.Chain.RetargetInterval, clk, logger))
		})
	}

	return g.Wait()
}

func engineConfig(network model.Network) (service.Config, error) {
	params, err := bitcoin.ParamsForNetwork(network)
	if err != nil {
		return service.Config{}, err
	}

	chainCfg := chain.DefaultConfig(params)
	chainCfg.PruningFactor = config.Chain.PruningFactor
	chainCfg.RetargetInterval = config.Chain.RetargetInterval
	chainCfg.MinConfirmations = config.Chain.MinConfirmations
	chainCfg.MaxFutureBlockTime = config.Chain.MaxFutureBlockTime

	deposit, err := bitcoin.NewDepositPolicy(config.Settlement.DepositAddress, params)
	if err != nil {
		return service.Config{}, err
	}
	settlementCfg := settlement.DefaultConfig(params)
	settlementCfg.RateNumerator = config.Settlement.RateNumerator
	settlementCfg.RateDenominator = config.Settlement.RateDenominator
	settlementCfg.SmallTxThreshold = config.Settlement.SmallTxThreshold
	settlementCfg.MaxTxSize = config.Settlement.MaxTxSize
	settlementCfg.Deposit = deposit

	cfg := service.Config{
		Network:        network,
		Chain:          chainCfg,
		Settlement:     settlementCfg,
		OpenSubmission: config.OpenSubmission,
	}
	return cfg, cfg.Validate()
}

func openStore(path string) (accounts.Store, error) {
	if path == "" {
		return accounts.NewMemoryStore(), nil
	}
	return accounts.OpenBoltStore(path, 5*time.Second)
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
