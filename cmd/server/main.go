package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/ledger-engine/internal/config"
	"github.com/grachmannico95/ledger-engine/internal/eventbus"
	"github.com/grachmannico95/ledger-engine/internal/handler"
	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/grachmannico95/ledger-engine/internal/metrics"
	promcollector "github.com/grachmannico95/ledger-engine/internal/metrics/prometheus"
	"github.com/grachmannico95/ledger-engine/internal/server"
	"github.com/grachmannico95/ledger-engine/internal/service"
	"github.com/grachmannico95/ledger-engine/internal/storage"
	"github.com/grachmannico95/ledger-engine/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	var recorder metrics.Recorder = metrics.NoOpRecorder{}
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		collector := promcollector.NewCollector(cfg.Metrics.Namespace)
		if err := collector.Register(registry); err != nil {
			log.Fatal(ctx, "Failed to register metrics",
				"error", err,
			)
		}
		recorder = collector
		gatherer = registry
		log.Info(ctx, "Metrics initialized",
			"namespace", cfg.Metrics.Namespace,
		)
	}

	repo := storage.NewMemoryStore()
	log.Info(ctx, "Repository initialized")

	live := ledger.NewSharedEngine(
		ledger.WithErrorPolicy(ledger.PolicyStrict),
		ledger.WithRoundPlaces(cfg.Ledger.RoundPlaces),
		ledger.WithLogger(log.Named("live")),
		ledger.WithMetrics(recorder),
	)

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
		RetryDelay:    cfg.Worker.RetryBaseDelay,
	}
	bus := eventbus.New(log, eventBusCfg)
	log.Info(ctx, "Event bus initialized")

	actionConsumer := eventbus.NewActionConsumer(live, repo, log)
	log.Info(ctx, "Action consumer initialized",
		"worker_count", actionConsumer.GetWorkerCount(),
	)

	err := bus.Subscribe(eventbus.EventTypeAction, actionConsumer)
	if err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	err = bus.Start(ctx)
	if err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	csvProcessor := service.NewCSVProcessor(repo, service.ProcessorConfig{
		DecodePolicy: cfg.Ledger.DecodePolicy,
		ErrorPolicy:  cfg.Ledger.ErrorPolicy,
		RoundPlaces:  cfg.Ledger.RoundPlaces,
	}, recorder, log)
	ledgerService := service.NewLedgerService(repo, csvProcessor, bus, live, log)
	log.Info(ctx, "Services initialized")

	ledgerHandler := handler.NewLedgerHandler(ledgerService, log)
	healthHandler := handler.NewHealthHandler(live)
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, ledgerHandler, healthHandler, gatherer)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting actions before draining the bus into the live ledger.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
