package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyStationStats = "fleet:stations:stats"
	keyTypePoints   = "fleet:schedules:type-points"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, errors.ErrCacheError.Wrap(err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return errors.ErrCacheError.Wrap(err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.Strings("keys", keys), zap.Error(err))
		return errors.ErrCacheError.Wrap(err)
	}

	r.logger.Debug("Cache deleted", zap.Strings("keys", keys))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, errors.ErrCacheError.Wrap(err)
	}

	return val > 0, nil
}

func (r *cacheRepository) GetStationStats(ctx context.Context) (*domain.StationStatistics, error) {
	var stats domain.StationStatistics
	ok, err := r.getJSON(ctx, keyStationStats, &stats)
	if err != nil || !ok {
		return nil, err
	}
	return &stats, nil
}

func (r *cacheRepository) SetStationStats(ctx context.Context, stats *domain.StationStatistics, ttl time.Duration) error {
	return r.setJSON(ctx, keyStationStats, stats, ttl)
}

func (r *cacheRepository) InvalidateStationStats(ctx context.Context) error {
	return r.Delete(ctx, keyStationStats)
}

func (r *cacheRepository) GetTypePoints(ctx context.Context) ([]domain.ViewScheduleTypePoint, error) {
	var points []domain.ViewScheduleTypePoint
	ok, err := r.getJSON(ctx, keyTypePoints, &points)
	if err != nil || !ok {
		return nil, err
	}
	return points, nil
}

func (r *cacheRepository) SetTypePoints(ctx context.Context, points []domain.ViewScheduleTypePoint, ttl time.Duration) error {
	return r.setJSON(ctx, keyTypePoints, points, ttl)
}

// getJSON возвращает false при промахе кеша
func (r *cacheRepository) getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil || data == nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		r.logger.Error("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false, errors.ErrCacheError.Wrap(err)
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return errors.ErrCacheError.Wrap(err)
	}
	return r.Set(ctx, key, data, ttl)
}
