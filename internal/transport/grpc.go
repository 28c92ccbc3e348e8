package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/btcrelay-backend/internal/clock"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	lndclock "github.com/lightningnetwork/lnd/clock"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthService is the gRPC health service name reported for the relay.
const HealthService = "btcrelay.v1.Relay"

// NewGRPCServer builds a gRPC server with the standard interceptor chain and registers hs on it.
func NewGRPCServer(logger *zap.Logger, hs *health.Server) *grpc.Server {
	unary := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	stream := []grpc.StreamServerInterceptor{
		grpcRecovery.StreamServerInterceptor(),
		grpcCtxTags.StreamServerInterceptor(),
		grpcPrometheus.StreamServerInterceptor,
		grpcZap.StreamServerInterceptor(logger),
	}
	server := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(unary...)),
		grpc.StreamInterceptor(grpcMiddleware.ChainStreamServer(stream...)),
	)
	healthpb.RegisterHealthServer(server, hs)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(server)
	return server
}

// HealthWatcher reports SERVING once the relay holds chain state.
type HealthWatcher struct {
	relay    Relay
	health   *health.Server
	interval time.Duration
	clock    lndclock.Clock
	logger   *zap.Logger
}

func NewHealthWatcher(relay Relay, hs *health.Server, interval time.Duration, clk lndclock.Clock, logger *zap.Logger) *HealthWatcher {
	return &HealthWatcher{
		relay:    relay,
		health:   hs,
		interval: interval,
		clock:    clk,
		logger:   logger.Named("health"),
	}
}

// Check updates the served status once and returns it.
func (w *HealthWatcher) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	ok, err := w.relay.Initialized(ctx)
	switch {
	case err != nil:
		w.logger.Warn("health check failed", zap.Error(err))
	case ok:
		status = healthpb.HealthCheckResponse_SERVING
	}
	w.health.SetServingStatus(HealthService, status)
	w.health.SetServingStatus("", status)
	return status
}

// Run checks every interval until ctx is done, then marks the relay as shutting down.
func (w *HealthWatcher) Run(ctx context.Context) error {
	defer w.health.Shutdown()
	for {
		w.Check(ctx)
		if err := clock.Sleep(ctx, w.clock, w.interval); err != nil {
			return err
		}
	}
}
