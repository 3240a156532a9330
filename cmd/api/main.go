package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/adapter/handler"
	"github.com/johnquangdev/meeting-insights/internal/adapter/repository"
	"github.com/johnquangdev/meeting-insights/internal/adapter/repository/memory"
	"github.com/johnquangdev/meeting-insights/internal/adapter/repository/seed"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/realtime"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// @title           Meeting Insights API
// @version         1.0
// @description     Meeting transcripts in, decisions, action items and summaries out
// @BasePath        /api

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	log.Println("🔧 Initializing dependencies...")
	checks := make(map[string]handler.Checker)

	// Initialize store
	store, closeStore := newStore(ctx, cfg, checks)
	defer closeStore()

	if cfg.Store.SeedDemoData {
		log.Println("🌱 Seeding demo data...")
		if err := seed.LoadDemo(ctx, store, logger); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// Initialize projection cache
	projections, closeCache := newCache(ctx, cfg, checks)
	defer closeCache()

	// Initialize object storage
	var objects analysis.ObjectStore
	if cfg.Storage.Enabled {
		log.Println("📦 Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
		objects = minioClient
		checks["storage"] = minioClient.Ping
	} else {
		log.Println("⚠️  Object storage disabled, recordings will not be archived")
	}

	// Realtime notifications
	hub := realtime.NewHub(logger)
	go hub.Run()
	defer hub.Shutdown()

	// Use cases
	log.Println("⚙️  Initializing services...")
	meetingService := meeting.NewMeetingService(store, projections, cfg.Cache.TTL, hub, logger)
	analysisService := analysis.NewAnalysisService(
		meetingService,
		analysis.NewExtractor(analysis.DefaultRules(), analysis.NewRandomDueDates(cfg.Analysis.DueDateSeed)),
		objects,
		analysis.DefaultMetrics(),
		logger,
		analysis.Options{
			DemoUserID:      cfg.Demo.UserID,
			DefaultDuration: cfg.Analysis.DefaultDuration,
		},
	)

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true

	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, logger, handler.Handlers{
		Meeting:      handler.NewMeetingHandler(meetingService, logger),
		ActionItem:   handler.NewActionItemHandler(meetingService, logger),
		User:         handler.NewUserHandler(meetingService, logger),
		Notification: handler.NewNotificationHandler(meetingService, hub, cfg.Demo.UserID, logger),
		Analysis:     handler.NewAnalysisHandler(analysisService, logger),
	}, checks)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newStore opens the configured store and registers its health check
func newStore(ctx context.Context, cfg *config.Config, checks map[string]handler.Checker) (repositories.Store, func()) {
	if cfg.Store.Driver != config.StoreDriverPostgres {
		log.Println("📦 Using in-memory store")
		return memory.New(), func() {}
	}

	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Production deployments should manage schema with cmd/migrate
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE and run cmd/migrate.")
		}
		log.Println("🔄 Applying migrations...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	store := repository.NewStore(db)
	checks["database"] = func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}
	return store, func() {
		if err := store.Close(); err != nil {
			log.Printf("⚠️  Failed to close database: %v", err)
		}
	}
}

// newCache builds the projection cache; the none driver disables caching
func newCache(ctx context.Context, cfg *config.Config, checks map[string]handler.Checker) (meeting.ProjectionCache, func()) {
	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		log.Println("📦 Connecting to Redis...")
		client, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		checks["cache"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
		return cache.NewRedisStore(client, "meeting-insights:"), func() { _ = client.Close() }
	case config.CacheDriverMemory:
		store := cache.NewMemoryStore(0)
		return store, func() { _ = store.Close() }
	}
	return nil, func() {}
}
