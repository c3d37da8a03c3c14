package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	approval_service "pinstack-publish-service/internal/application/service/approval"
	post_service "pinstack-publish-service/internal/application/service/post"
	publish_service "pinstack-publish-service/internal/application/service/publish"
	scheduler_service "pinstack-publish-service/internal/application/service/scheduler"
	"pinstack-publish-service/internal/infrastructure/config"
	cron_runner "pinstack-publish-service/internal/infrastructure/inbound/cron"
	grpc_server "pinstack-publish-service/internal/infrastructure/inbound/grpc"
	http_server "pinstack-publish-service/internal/infrastructure/inbound/http"
	"pinstack-publish-service/internal/infrastructure/inbound/http/middleware"
	metrics_server "pinstack-publish-service/internal/infrastructure/inbound/metrics"
	"pinstack-publish-service/internal/infrastructure/logger"
	"pinstack-publish-service/internal/infrastructure/outbound/account"
	"pinstack-publish-service/internal/infrastructure/outbound/auth"
	redis_cache "pinstack-publish-service/internal/infrastructure/outbound/cache/redis"
	prometheus_metrics "pinstack-publish-service/internal/infrastructure/outbound/metrics/prometheus"
	"pinstack-publish-service/internal/infrastructure/outbound/platform"
	account_postgres "pinstack-publish-service/internal/infrastructure/outbound/repository/account/postgres"
	approval_postgres "pinstack-publish-service/internal/infrastructure/outbound/repository/approval/postgres"
	failure_postgres "pinstack-publish-service/internal/infrastructure/outbound/repository/failure/postgres"
	media_postgres "pinstack-publish-service/internal/infrastructure/outbound/repository/media/postgres"
	post_postgres "pinstack-publish-service/internal/infrastructure/outbound/repository/post/postgres"
	"pinstack-publish-service/internal/infrastructure/outbound/repository/postgres"
	target_postgres "pinstack-publish-service/internal/infrastructure/outbound/repository/target/postgres"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if cfg.Auth.JWTSecret == "" {
		log.Error("auth.jwt_secret is not configured")
		os.Exit(1)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.MigrateUp(cfg.Database.DSN(), cfg.Database.MigrationsPath, log); err != nil {
			log.Error("Failed to migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	unitOfWork := postgres.NewUnitOfWork(pool, log, metrics)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	targetRepo := target_postgres.NewTargetRepository(pool, log, metrics)
	approvalRepo := approval_postgres.NewApprovalRepository(pool, log, metrics)
	mediaRepo := media_postgres.NewMediaRepository(pool, log, metrics)
	failureRepo := failure_postgres.NewFailureRepository(pool, log, metrics)
	accountRepo := account_postgres.NewAccountRepository(pool, log, metrics)

	accountCache := redis_cache.NewAccountCache(redisClient, log, cfg.Publisher.AccountTTL)
	accounts := account.NewDirectoryCacheDecorator(accountRepo, accountCache, log, metrics)
	events := redis_cache.NewEventPublisher(redisClient, cfg.Publisher.EventsChannel, log, metrics)
	authorizer := auth.NewRoleAuthorizer()

	httpClient := &http.Client{Timeout: cfg.Publisher.AdapterTimeout}
	registry := platform.NewRegistry(log)
	for code, p := range cfg.Platforms {
		webhook := platform.NewWebhook(code, p.Endpoint, p.Token, httpClient, log)
		registry.Register(code, platform.NewRateLimited(webhook, cfg.Publisher.RatePerSecond, cfg.Publisher.Burst))
	}

	postService := post_service.NewPostService(postRepo, targetRepo, mediaRepo, unitOfWork, authorizer, events, log, metrics)
	ledgerService := approval_service.NewLedgerService(postRepo, approvalRepo, unitOfWork, authorizer, events, log, metrics)
	orchestrator := publish_service.NewOrchestratorService(publish_service.Dependencies{
		PostRepo:     postRepo,
		TargetRepo:   targetRepo,
		MediaRepo:    mediaRepo,
		FailureRepo:  failureRepo,
		UOW:          unitOfWork,
		Adapters:     registry,
		Accounts:     accounts,
		Integrations: accountRepo,
		Authorizer:   authorizer,
		Events:       events,
		Log:          log,
		Metrics:      metrics,
	}, publish_service.Options{
		Workers:        cfg.Publisher.Workers,
		AdapterTimeout: cfg.Publisher.AdapterTimeout,
		StaleAfter:     cfg.Publisher.StaleAfter,
	})
	dueScheduler := scheduler_service.NewDueSchedulerService(
		postRepo,
		orchestrator,
		redisClient,
		log,
		metrics,
		cfg.Scheduler.BatchSize,
		cfg.Scheduler.LeaseTTL,
	)

	router := http_server.NewRouter(http_server.RouterDeps{
		Posts:        postService,
		Ledger:       ledgerService,
		Orchestrator: orchestrator,
		Scheduler:    dueScheduler,
		Auth:         middleware.Auth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, log),
		Log:          log,
		Metrics:      metrics,
	})
	httpServer := http_server.NewServer(
		cfg.HTTPServer.Address,
		cfg.HTTPServer.Port,
		router,
		cfg.HTTPServer.ReadTimeout,
		cfg.HTTPServer.WriteTimeout,
		log,
	)
	grpcServer := grpc_server.NewServer(cfg.GRPCServer.Address, cfg.GRPCServer.Port, log, metrics)
	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	var runner *cron_runner.Runner
	if cfg.Scheduler.Enabled {
		runner = cron_runner.NewRunner(dueScheduler, cfg.Scheduler.Spec, cfg.Scheduler.LeaseTTL, log)
		if err := runner.Start(); err != nil {
			log.Error("Failed to start due scheduler", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	metrics.SetServiceHealth(true)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	httpDone := make(chan bool, 1)
	grpcDone := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		httpDone <- true
	}()

	go func() {
		if err := grpcServer.Run(); err != nil {
			log.Error("gRPC server error", slog.String("error", err.Error()))
		}
		grpcDone <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)
	grpcServer.SetServing(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if runner != nil {
		if err := runner.Stop(shutdownCtx); err != nil {
			log.Error("Due scheduler shutdown error", slog.String("error", err.Error()))
		}
	}

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := grpcServer.Shutdown(); err != nil {
		log.Error("gRPC server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-httpDone
	<-grpcDone
	<-metricsDone

	log.Info("Server exited")
}
