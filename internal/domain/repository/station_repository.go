package repository

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
)

// StationRepository - интерфейс для работы со станциями
type StationRepository interface {
	// List возвращает станции по фильтру (Type, Search, MaxDistance)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Station, error)

	// GetByID возвращает станцию или NotFound
	GetByID(ctx context.Context, id string) (*domain.Station, error)

	// Exists проверяет наличие станции
	Exists(ctx context.Context, id string) (bool, error)

	// Create сохраняет новую станцию, Conflict при дубликате ID
	Create(ctx context.Context, station *domain.Station) error

	// Update записывает только заданные поля и возвращает обновлённую станцию
	Update(ctx context.Context, id string, patch domain.StationPatch) (*domain.Station, error)

	// Delete удаляет станцию
	Delete(ctx context.Context, id string) error

	// DeleteMany проверяет все ID по очереди, затем удаляет одним запросом
	DeleteMany(ctx context.Context, ids []string) error

	// Usage считает ссылки на станцию из барж, буксиров, клиентов и заказов
	Usage(ctx context.Context, id string) (*domain.StationUsage, error)

	// Statistics возвращает агрегаты по всем станциям
	Statistics(ctx context.Context) (*domain.StationStatistics, error)
}
