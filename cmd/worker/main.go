package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/config"
	"github.com/fleet-logistics-service/internal/pkg/logger"
	"github.com/fleet-logistics-service/internal/repository/cache"
	"github.com/fleet-logistics-service/internal/repository/postgres"
	redisRepo "github.com/fleet-logistics-service/internal/repository/redis"
	"github.com/fleet-logistics-service/internal/usecase"
	"github.com/fleet-logistics-service/internal/worker"
	"github.com/fleet-logistics-service/internal/worker/stats"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, &logger.FileConfig{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   true,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	consumerName := cfg.Worker.ConsumerName
	if consumerName == "" {
		hostname, _ := os.Hostname()
		consumerName = fmt.Sprintf("%s-%d", hostname, os.Getpid())
	}

	log.Info("Starting station statistics worker",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("consumer_name", consumerName),
		zap.Duration("read_timeout", cfg.Worker.StreamReadTimeout))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Статистику пересчитывает тот же use case, что и у API
	stationRepo := postgres.NewStationRepository(db)
	stationUC := usecase.NewStationUseCase(
		stationRepo,
		cache.NewCacheRepository(redisClient),
		usecase.NewStationGuard(stationRepo),
		postgres.NewTransactor(db),
		nil,
		cfg.Cache.StatsCacheTTL,
		log,
	)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Workers
	manager := worker.NewManager(worker.DefaultShutdownTimeout, log)
	manager.Register(stats.NewStationStatsWorker(
		streamRepo,
		stationUC,
		cfg.Worker.ConsumerGroup,
		consumerName,
		cfg.Worker.StreamReadTimeout,
		log,
	))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info("Received shutdown signal")

	cancel()
	if err := manager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
