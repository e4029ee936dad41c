package repository

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
)

// OrderRepository - интерфейс для работы с заказами
type OrderRepository interface {
	// List фильтрует по StationID (станция отправления или назначения), Type и Search (product_name)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, order *domain.Order) error
	CreateMany(ctx context.Context, orders []domain.Order) error
	Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
}
