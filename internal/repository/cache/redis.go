package cache

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/fleet-logistics-service/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const connectTimeout = 5 * time.Second

// Redis - одно подключение на процесс: кеш статистики станций
// и стрим fleet-событий (API публикует, воркер читает группой)
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis подключается и сразу проверяет доступность. Без Redis
// API не сможет инвалидировать статистику станций, поэтому ошибка фатальна
func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	opts := clientOptions(cfg)
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s unreachable: %w", opts.Addr, err)
	}

	logger.Info("Redis ready for station stats and fleet events",
		zap.String("addr", opts.Addr),
		zap.Int("db", opts.DB),
	)

	return &Redis{client: client, logger: logger}, nil
}

// NewRedisForTest оборачивает готовый клиент
func NewRedisForTest(client *redis.Client, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{client: client, logger: logger}
}

func clientOptions(cfg *config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func (r *Redis) Close() error {
	err := r.client.Close()
	if err != nil {
		r.logger.Warn("Redis close failed", zap.Error(err))
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// Health - проверка для /health, ключ "redis"
func (r *Redis) Health(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Client отдает клиент репозиторию стрима событий
func (r *Redis) Client() *redis.Client {
	return r.client
}
