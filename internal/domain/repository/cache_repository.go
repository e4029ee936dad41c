package repository

import (
	"context"
	"time"

	"github.com/fleet-logistics-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значения из кеша
	Delete(ctx context.Context, keys ...string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetStationStats получает статистику станций, (nil, nil) при промахе
	GetStationStats(ctx context.Context) (*domain.StationStatistics, error)

	// SetStationStats сохраняет статистику станций
	SetStationStats(ctx context.Context, stats *domain.StationStatistics, ttl time.Duration) error

	// InvalidateStationStats сбрасывает статистику станций
	InvalidateStationStats(ctx context.Context) error

	// GetTypePoints получает список type_point, (nil, nil) при промахе
	GetTypePoints(ctx context.Context) ([]domain.ViewScheduleTypePoint, error)

	// SetTypePoints сохраняет список type_point
	SetTypePoints(ctx context.Context, points []domain.ViewScheduleTypePoint, ttl time.Duration) error
}
