package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tenement_hub/internal/api"
	"tenement_hub/internal/config"
	"tenement_hub/internal/domain"
	"tenement_hub/internal/publisher"
	"tenement_hub/internal/scheduler"
	"tenement_hub/internal/service"
	"tenement_hub/internal/source/govdata"
	"tenement_hub/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	// The client connects on first use so that an unreachable database
	// surfaces as a request failure rather than a startup crash.
	client := postgres.NewClient(cfg.Database.DSN(), cfg.Database.MaxOpenConns)
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close database client", "error", err)
		}
	}()

	tenementStore := postgres.NewTenementStore(client)
	holderStore := postgres.NewHolderStore(client)
	syncStateStore := postgres.NewSyncStateStore(client)
	txManager := postgres.NewTransactionManager(client)

	var sources []service.Source
	for _, j := range domain.Jurisdictions {
		src, ok := cfg.SourceFor(j)
		if !ok {
			continue
		}
		sources = append(sources, govdata.New(govdata.Config{
			Jurisdiction:   j,
			Name:           src.Name,
			BaseURL:        src.BaseURL,
			PageSize:       cfg.API.PageSize,
			Timeout:        cfg.API.Timeout,
			MaxAttempts:    cfg.API.Retry.MaxAttempts,
			InitialBackoff: cfg.API.Retry.InitialBackoff,
			MaxBackoff:     cfg.API.Retry.MaxBackoff,
		}, logger))
	}
	logger.Info("data sources configured", "count", len(sources))

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	syncService := service.NewSyncService(
		sources,
		tenementStore,
		holderStore,
		syncStateStore,
		txManager,
		pub,
		logger,
		cfg.Sync,
	)
	statsService := service.NewStatsService(tenementStore, cfg.Stats.MaxConcurrentQueries, logger)
	statusService := service.NewStatusService(tenementStore, syncService)

	router := api.NewServer(api.Services{
		Syncer:    syncService,
		Stats:     statsService,
		Status:    statusService,
		Tenements: tenementStore,
	}, logger,
		api.WithMiddlewares(api.DefaultMiddlewares(logger)...),
		api.WithSyncTimeout(cfg.HTTP.SyncTimeout),
		api.WithMaxConcurrentSyncs(cfg.HTTP.MaxConcurrentSyncs),
		api.WithStatusCheck(cfg.HTTP.StatusCheckEnabled),
	)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	schedulerDone := make(chan struct{})
	if cfg.Sync.Enabled {
		sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, cfg.Sync.Timeout, logger)
		go func() {
			defer close(schedulerDone)
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
	} else {
		close(schedulerDone)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting tenement hub",
			"addr", cfg.HTTP.Addr,
			"scheduled_sync", cfg.Sync.Enabled,
			"status_check", cfg.HTTP.StatusCheckEnabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		if err != nil {
			logger.Error("http server error", "error", err)
		}
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	<-schedulerDone

	logger.Info("tenement hub stopped")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
