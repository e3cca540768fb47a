// Sleep Stats API
//
// REST API for recording sleep sessions and analysing them.
//
//	@title			Sleep Stats API
//	@version		1.0
//	@description	Sleep session tracking with statistics, rule-based insights and narrative analysis.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sleep-sessions
//	@tag.description	Sleep session recording endpoints
//
//	@tag.name			sleep-stats
//	@tag.description	Summary, trend, period and pattern statistics
//
//	@tag.name			sleep-insights
//	@tag.description	Rule-based insights and narrative analysis
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
	_ "time/tzdata" // stats read local clocks from stored IANA zones

	"github.com/blaisecz/sleep-stats/internal/api"
	"github.com/blaisecz/sleep-stats/internal/api/handler"
	"github.com/blaisecz/sleep-stats/internal/cache"
	"github.com/blaisecz/sleep-stats/internal/config"
	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/blaisecz/sleep-stats/internal/langfuse"
	"github.com/blaisecz/sleep-stats/internal/llm"
	"github.com/blaisecz/sleep-stats/internal/logging"
	"github.com/blaisecz/sleep-stats/internal/observability"
	"github.com/blaisecz/sleep-stats/internal/repository"
	"github.com/blaisecz/sleep-stats/internal/seed"
	"github.com/blaisecz/sleep-stats/internal/service"
	"github.com/blaisecz/sleep-stats/internal/telemetry"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleep-stats-api", log)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err := config.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	log.Info("database migration completed")

	if cfg.Seed {
		log.Info("seeding database with sample data")
		if err := seed.Run(ctx, db, log, time.Now()); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	}

	metrics := observability.NewMetrics()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSleepSessionRepository(db)

	// External clients
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      log,
	})
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := langfuseClient.Flush(flushCtx); err != nil {
			log.Warn("langfuse flush failed", zap.Error(err))
		}
	}()

	var narrativeLLM llm.NarrativeLLM
	if client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAINarrativeModel); client != nil {
		narrativeLLM = client
	} else {
		log.Warn("OPENAI_API_KEY not configured, narratives will use the fallback")
	}

	// Services
	narrativeCache := cache.NewTTL[domain.NarrativeAnalysis](cfg.NarrativeCacheTTL, time.Now, metrics)
	userService := service.NewUserService(userRepo)
	statsService := service.NewStatsService(sessionRepo, userRepo, metrics)
	narrativeService := service.NewNarrativeService(statsService, userRepo, narrativeLLM, langfuseClient, narrativeCache, log)
	sessionService := service.NewSleepSessionService(sessionRepo, userRepo, narrativeService)

	// Handlers
	router := api.NewRouter(
		handler.NewUserHandler(userService),
		handler.NewSleepSessionHandler(sessionService),
		handler.NewStatsHandler(statsService),
		handler.NewNarrativeHandler(narrativeService),
		metrics,
		log,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
