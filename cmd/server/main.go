package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"pathfinder/internal/cache"
	"pathfinder/internal/catalog"
	"pathfinder/internal/config"
	"pathfinder/internal/logger"
	"pathfinder/internal/metrics"
	"pathfinder/internal/repository"
	"pathfinder/internal/service"
	"pathfinder/internal/transport/rest"
	"pathfinder/internal/transport/ws"
	"syscall"
	"time"

	_ "pathfinder/docs"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// @title Pathfinder API
// @version 1.0
// @description Career and course recommendation quiz with AI analysis
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging.Mode, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	if cfg.AI.IsEnabled() {
		log.Info("gemini configured", "extract", cfg.AI.Models.Extract, "narrate", cfg.AI.Models.Narrate)
	} else {
		log.Warn("GEMINI_API_KEY not set, analyses will serve fallback results")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer mongoClient.Disconnect(context.Background())

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	log.Info("connected to MongoDB", "database", cfg.Mongo.Database)
	db := mongoClient.Database(cfg.Mongo.Database)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.URI})
	defer rdb.Close()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	log.Info("connected to Redis", "addr", cfg.Redis.URI)

	defaultCatalog := catalog.Default()
	if cfg.Analysis.CatalogPath != "" {
		if defaultCatalog, err = catalog.LoadFile(cfg.Analysis.CatalogPath); err != nil {
			return err
		}
	}
	stats := defaultCatalog.Stats()
	metrics.SetCatalogSizes(stats.Undergraduate, stats.Postgraduate, stats.Excluded)
	log.Info("default catalog loaded", "programs", stats.Total, "ug", stats.Undergraduate, "pg", stats.Postgraduate, "orphans", len(stats.Orphans))

	// Repositories and caches
	reportRepo := repository.NewReportRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)
	sessionCache := cache.NewSessionCache(rdb, cfg.Redis.SessionTTL)
	resultCache := cache.NewResultCache(rdb, cfg.Redis.SessionTTL)

	// Services
	wsHub := ws.NewHub(log)
	authSvc := service.NewAuthService(cfg.Auth)
	catalogSvc := service.NewCatalogService(catalogRepo, defaultCatalog, log)
	reportSvc := service.NewReportService(reportRepo)

	gemini := service.NewGeminiClient(cfg.AI, nil, log)
	analysisSvc := service.NewAnalysisService(
		service.NewGeminiExtractor(gemini, cfg.AI, log),
		service.NewGeminiNarrator(gemini, cfg.AI),
		catalogSvc,
		cfg.Analysis.Timeout,
		cfg.Analysis.CandidateLimit,
		log,
	)
	analysisSvc.SetBroadcaster(wsHub)

	// The lock outlives one analysis so a crashed run frees the session eventually
	lockTTL := cfg.Analysis.Timeout + 15*time.Second
	quizSvc := service.NewQuizService(sessionCache, resultCache, reportSvc, analysisSvc, catalogSvc, authSvc, lockTTL, log)

	router := rest.NewRouter(&rest.Container{
		Server:         cfg.Server,
		AuthService:    authSvc,
		QuizService:    quizSvc,
		ReportService:  reportSvc,
		CatalogService: catalogSvc,
		WSHub:          wsHub,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		// Upgraded sockets are not tracked by Shutdown.
		wsHub.Close()
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server exited")
	return nil
}
