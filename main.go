package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"filmes-api/cmd"
	"filmes-api/internal/data/repository"
	"filmes-api/internal/wire"
	"filmes-api/pkg/cache"
	"filmes-api/pkg/database"
	"filmes-api/pkg/queue"
	"filmes-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(config.Database, config.App.Debug, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		if err := repository.AutoMigrate(ctx, db.Gorm); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database schema migrated")
	}

	readCache := newCache(ctx, config.Cache, logger)

	events := newPublisher(config.Events, logger)
	defer events.Close()

	repos := repository.NewRepository(db.Gorm, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, readCache, events, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}

	logger.Info("Server stopped")
}

// newCache connects to Redis, falling back to no caching when it is not
// configured or not reachable.
func newCache(ctx context.Context, config utils.CacheConfig, logger *zap.Logger) cache.Cache {
	if config.Addr == "" {
		logger.Info("Read cache disabled")
		return cache.Noop{}
	}

	rdb, err := cache.NewRedisClient(ctx, config)
	if err != nil {
		logger.Warn("Redis unavailable, read cache disabled", zap.Error(err), zap.String("addr", config.Addr))
		return cache.Noop{}
	}

	logger.Info("Redis connected", zap.String("addr", config.Addr), zap.Duration("ttl", config.TTL))
	return cache.NewRedisCache(rdb, config.Prefix, config.TTL)
}

func newPublisher(config utils.EventsConfig, logger *zap.Logger) queue.Publisher {
	if config.URL == "" {
		logger.Info("Event publishing disabled")
		return queue.Noop{}
	}

	publisher, err := queue.NewAMQPPublisher(config.URL, config.Queue, logger)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, event publishing disabled", zap.Error(err))
		return queue.Noop{}
	}

	logger.Info("RabbitMQ publisher ready", zap.String("queue", config.Queue))
	return publisher
}
