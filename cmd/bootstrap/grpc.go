package bootstrap

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"google.golang.org/grpc"

	"reservation-service/internal/handler/rpc"
	"reservation-service/internal/pkg/config"

	pb "reservation-service/gen/reservationpb"
)

var GRPCModule = fx.Module("grpc",
	fx.Provide(
		rpc.NewService,
		NewGRPCServer,
	),
	fx.Invoke(
		StartGRPCServer,
		StartMetricsServer,
	),
)

func NewGRPCServer(svc *rpc.Service, logger *slog.Logger, reg *prometheus.Registry) *grpc.Server {
	metrics := rpc.NewMetrics(reg)

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			rpc.LoggingUnaryInterceptor(logger),
			metrics.UnaryInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			rpc.LoggingStreamInterceptor(logger),
			metrics.StreamInterceptor(),
		),
	)
	pb.RegisterReservationServiceServer(server, svc)
	return server
}

// StartGRPCServer binds during OnStart so a busy port fails startup
// instead of dying later inside the serve goroutine.
func StartGRPCServer(lc fx.Lifecycle, server *grpc.Server, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			lis, err := net.Listen("tcp", cfg.Server.Addr())
			if err != nil {
				return err
			}
			logger.Info("grpc server listening", "addr", cfg.Server.Addr())
			go func() {
				if err := server.Serve(lis); err != nil {
					logger.Error("grpc server stopped", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping grpc server")
			server.GracefulStop()
			return nil
		},
	})
}

// StartMetricsServer exposes /metrics when a metrics port is configured.
func StartMetricsServer(lc fx.Lifecycle, cfg config.Config, reg *prometheus.Registry, logger *slog.Logger) {
	if cfg.Metrics.Port == 0 {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(int(cfg.Metrics.Port)))
			lis, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			logger.Info("metrics server listening", "addr", addr)
			go func() {
				if err := srv.Serve(lis); err != nil && err != http.ErrServerClosed {
					logger.Error("metrics server stopped", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
