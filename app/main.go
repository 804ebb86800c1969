package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/karasuemlak/gundem-feed/app/api"
	"github.com/karasuemlak/gundem-feed/app/cfg"
	"github.com/karasuemlak/gundem-feed/app/config"
	"github.com/karasuemlak/gundem-feed/app/database"
	"github.com/karasuemlak/gundem-feed/app/feed"
	"github.com/karasuemlak/gundem-feed/app/fetch"
	"github.com/karasuemlak/gundem-feed/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting gundem-feed", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBHost, appCfg.DBPort, appCfg.DBUser,
		appCfg.DBPassword, appCfg.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database ready", "migration_version", version, "dirty", dirty)

	articleRepo := database.NewArticleRepository(db)

	loader := config.NewLoader(appCfg.SourcesDir)
	sources, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load source configurations: %v", err)
	}
	if len(sources) == 0 {
		source := config.DefaultSource(appCfg.FeedURL, appCfg.SiteBaseURL)
		source.Settings.PageFetchBudget = appCfg.PageFetchBudget
		sources = map[string]*config.Source{source.Name: source}
		slog.Info("No source configurations found, using default", "url", source.URL)
	}
	slog.Info("Source configurations loaded", "count", len(sources))

	var cache fetch.Cache
	if appCfg.RedisAddr != "" {
		redisCache, err := fetch.NewRedisCache(appCfg.RedisAddr)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		cache = redisCache
		slog.Info("Fetch cache enabled", "addr", appCfg.RedisAddr)
	}

	fetchClient := fetch.NewClient(
		&http.Client{Timeout: 30 * time.Second},
		appCfg.UserAgent,
		cache,
		time.Duration(appCfg.FeedCacheTTL)*time.Second,
	)

	feedService := feed.NewService(fetchClient)

	scheduler := tasks.NewScheduler(sources, feedService, fetchClient, articleRepo,
		time.Duration(appCfg.SchedulerInterval)*time.Second, appCfg.WorkerCount)
	scheduler.Start()
	defer scheduler.Stop()
	slog.Info("Background scheduler started",
		"workers", appCfg.WorkerCount, "interval_seconds", appCfg.SchedulerInterval)

	handler := api.NewHandler(articleRepo, sources, feedService, scheduler)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
