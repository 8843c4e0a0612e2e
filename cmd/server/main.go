package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/cobrancas/internal/config"
	"github.com/mmynk/cobrancas/internal/httpapi"
	"github.com/mmynk/cobrancas/internal/metrics"
	"github.com/mmynk/cobrancas/internal/rpc"
	"github.com/mmynk/cobrancas/internal/service"
	"github.com/mmynk/cobrancas/internal/storage/sqlite"
	"github.com/mmynk/cobrancas/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The schema must exist before any request is served.
	store, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := service.NewChargeService(store,
		service.WithStrictStatusUpdates(cfg.StrictStatusUpdates),
		service.WithMetrics(metrics.New(reg)),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// REST API, with the Connect service mounted behind the same middleware
	rpcPath, rpcHandler := rpc.NewChargeServiceHandler(svc, rpc.DefaultInterceptors())
	gin.SetMode(cfg.GinMode)
	mux.Handle("/", httpapi.NewRouter(svc, httpapi.WithHandler(rpcPath, rpcHandler)))

	// Wrap with h2c for HTTP/2 without TLS
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(mux, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Server starting", "address", cfg.Addr(), "strict_status_updates", cfg.StrictStatusUpdates)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
