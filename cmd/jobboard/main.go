package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobboard/internal/config"
	dbElastic "github.com/kailas-cloud/jobboard/internal/db/elastic"
	dbPostgres "github.com/kailas-cloud/jobboard/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/jobboard/internal/db/redis"
	logpkg "github.com/kailas-cloud/jobboard/internal/logger"
	"github.com/kailas-cloud/jobboard/internal/metrics"
	applicationrepo "github.com/kailas-cloud/jobboard/internal/repository/application"
	documentrepo "github.com/kailas-cloud/jobboard/internal/repository/document"
	indexrepo "github.com/kailas-cloud/jobboard/internal/repository/index"
	jobrepo "github.com/kailas-cloud/jobboard/internal/repository/job"
	searchrepo "github.com/kailas-cloud/jobboard/internal/repository/search"
	"github.com/kailas-cloud/jobboard/internal/repository/searchcache"
	"github.com/kailas-cloud/jobboard/internal/scheduler"
	chiTransport "github.com/kailas-cloud/jobboard/internal/transport/chi"
	applicationuc "github.com/kailas-cloud/jobboard/internal/usecase/application"
	healthuc "github.com/kailas-cloud/jobboard/internal/usecase/health"
	indexinguc "github.com/kailas-cloud/jobboard/internal/usecase/indexing"
	jobuc "github.com/kailas-cloud/jobboard/internal/usecase/job"
	mirroruc "github.com/kailas-cloud/jobboard/internal/usecase/mirror"
	reindexuc "github.com/kailas-cloud/jobboard/internal/usecase/reindex"
	searchuc "github.com/kailas-cloud/jobboard/internal/usecase/search"
	"github.com/kailas-cloud/jobboard/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting jobboard API server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("search_addrs", cfg.Search.Addrs),
		zap.Bool("cache_enabled", cfg.Cache.Enabled()),
	)

	ctx := context.Background()

	// Relational store: source of truth
	pool, err := dbPostgres.NewPool(ctx, dbPostgres.Config{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := dbPostgres.WaitForReady(ctx, pool, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	if cfg.Database.Migrate {
		if err := dbPostgres.Migrate(ctx, pool); err != nil {
			logger.Fatal("Database migration failed", zap.Error(err))
		}
	}
	logger.Info("Connected to database")

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Search index: best-effort mirror
	es, err := dbElastic.New(dbElastic.Config{
		Addrs:          cfg.Search.Addrs,
		Username:       cfg.Search.Username,
		Password:       cfg.Search.Password,
		RequestTimeout: time.Duration(cfg.Search.RequestTimeoutSec) * time.Second,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create search client", zap.Error(err))
	}

	names := indexrepo.Names{
		Jobs:         cfg.Search.JobsIndex,
		Applications: cfg.Search.ApplicationsIndex,
	}.WithDefaults()

	jobRepo := jobrepo.New(pool)
	appRepo := applicationrepo.New(pool)
	docRepo := documentrepo.New(es, names)
	indexMgr := indexrepo.New(es, names, logger)

	// Optional facet cache in front of the search repository
	var searchRepo searchuc.Repository = searchrepo.New(es, names.Jobs)
	mirrorSvc := mirroruc.New(docRepo, es, logger).WithOutcomeCounter(metrics.MirrorTotal)
	healthSvc := healthuc.New(pool, es)

	if store := openCache(cfg.Cache, dbRedis.NewStore, logger); store != nil {
		defer store.Close()

		cached := searchcache.New(searchRepo, store,
			time.Duration(cfg.Cache.TTLSec)*time.Second, metrics.FacetCacheTotal, logger)
		searchRepo = cached
		mirrorSvc.WithCacheInvalidator(cached)
		healthSvc.WithCache(store)
		logger.Info("Facet cache enabled", zap.Strings("addrs", cfg.Cache.Addrs))
	} else if cfg.Cache.Enabled() {
		healthSvc.WithCacheDisabled()
	}

	// Startup indexing: probe, mappings, full reindex
	reindexSvc := reindexuc.New(jobRepo, docRepo, es, logger).
		WithDocumentCounter(metrics.ReindexDocumentsTotal)
	indexinguc.New(es, indexMgr, reindexSvc, logger).Initialize(ctx)

	monitor := scheduler.NewMonitor(es, metrics.SearchIndexUp, cfg.Search.HealthCheckSpec,
		time.Duration(cfg.Search.RequestTimeoutSec)*time.Second, logger)
	if err := monitor.Start(ctx); err != nil {
		logger.Error("Search index monitor not started", zap.Error(err))
	}
	defer monitor.Stop()

	// Create use case services
	searchSvc := searchuc.New(searchRepo, es, logger).
		WithPagination(cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize).
		WithDegradedCounter(metrics.SearchDegradedTotal)
	jobSvc := jobuc.New(jobRepo, appRepo, mirrorSvc, searchSvc)
	appSvc := applicationuc.New(appRepo, jobRepo, mirrorSvc).
		WithPagination(cfg.Pagination.ApplicationsPageSize, cfg.Pagination.MaxPageSize)

	// Create chi server
	server := chiTransport.NewServer(jobSvc, appSvc, searchSvc, healthSvc, logger)
	handler := chiTransport.NewRouter(server, cfg.Auth.APIKeys, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
