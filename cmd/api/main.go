package main

// @title Fleet Logistics API
// @version 1.0.0
// @description Справочники флота для планирования перевозок баржами: станции, баржи, буксиры,
// @description клиенты, перевозчики и заказы. Только чтение для рассчитанных стоимостей и расписаний.
// @description
// @description Основные возможности:
// @description - CRUD справочников и массовое удаление
// @description - Привязка барж, буксиров и клиентов к станциям
// @description - Загрузка буксиров и заказов из CSV
// @description - Таймлайн рейсов и фильтры расписаний

// @contact.name API Support

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	_ "github.com/fleet-logistics-service/docs"
	"github.com/fleet-logistics-service/internal/config"
	httpDelivery "github.com/fleet-logistics-service/internal/delivery/http"
	"github.com/fleet-logistics-service/internal/delivery/http/handler"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/logger"
	"github.com/fleet-logistics-service/internal/repository/cache"
	"github.com/fleet-logistics-service/internal/repository/postgres"
	redisRepo "github.com/fleet-logistics-service/internal/repository/redis"
	"github.com/fleet-logistics-service/internal/usecase"
)

func main() {
	// Числовые поля расписаний отдаются числами, а не строками
	decimal.MarshalJSONWithoutQuotes = true

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
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

	log.Info("Starting Fleet Logistics API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("import_strict", cfg.Import.Strict),
		zap.Bool("customer_station_links", cfg.Features.CustomerStationLinks),
		zap.String("events_stream", cfg.Features.EventsStream),
	)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	cancel()
	log.Info("All connections healthy")

	// 5. Repositories
	stationRepo := postgres.NewStationRepository(db)
	bargeRepo := postgres.NewBargeRepository(db)
	tugboatRepo := postgres.NewTugboatRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	carrierRepo := postgres.NewCarrierRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	costRepo := postgres.NewCostRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	tx := postgres.NewTransactor(db)

	var linkRepo repository.CustomerStationRepository
	if cfg.Features.CustomerStationLinks {
		linkRepo = postgres.NewCustomerStationRepository(db)
	}

	// 6. Use cases
	events := usecase.NewEventPublisher(streamRepo, cfg.Features.EventsStream, log)
	importMode := usecase.ImportMode{Strict: cfg.Import.Strict}
	guard := usecase.NewStationGuard(stationRepo)

	stationUC := usecase.NewStationUseCase(stationRepo, cacheRepo, guard, tx, events, cfg.Cache.StatsCacheTTL, log)
	bargeUC := usecase.NewBargeUseCase(bargeRepo, stationRepo, tx, events, log)
	tugboatUC := usecase.NewTugboatUseCase(tugboatRepo, stationRepo, tx, events, importMode, log)
	customerUC := usecase.NewCustomerUseCase(customerRepo, linkRepo, stationRepo, tx, events, log)
	carrierUC := usecase.NewCarrierUseCase(carrierRepo, tx, events, log)
	orderUC := usecase.NewOrderUseCase(orderRepo, stationRepo, tx, events, importMode, log)
	costUC := usecase.NewCostUseCase(costRepo, log)
	scheduleUC := usecase.NewScheduleUseCase(scheduleRepo, cacheRepo, cfg.Cache.TypePointsCacheTTL, log)

	// 7. HTTP server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		Station:  handler.NewStationHandler(stationUC, log),
		Barge:    handler.NewBargeHandler(bargeUC, log),
		Tugboat:  handler.NewTugboatHandler(tugboatUC, log),
		Customer: handler.NewCustomerHandler(customerUC, log),
		Carrier:  handler.NewCarrierHandler(carrierUC, log),
		Order:    handler.NewOrderHandler(orderUC, log),
		Cost:     handler.NewCostHandler(costUC, log),
		Schedule: handler.NewScheduleHandler(scheduleUC, log),
	}, map[string]httpDelivery.HealthChecker{
		"postgres": db,
		"redis":    redisClient,
	})

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("address", cfg.GetServerAddr()))

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped")
}
