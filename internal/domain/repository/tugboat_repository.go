package repository

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
)

// TugboatRepository - интерфейс для работы с буксирами
type TugboatRepository interface {
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Tugboat, error)
	GetByID(ctx context.Context, id string) (*domain.Tugboat, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, tugboat *domain.Tugboat) error

	// CreateMany вставляет пачку буксиров (загрузка файла)
	CreateMany(ctx context.Context, tugboats []domain.Tugboat) error

	Update(ctx context.Context, id string, patch domain.TugboatPatch) (*domain.Tugboat, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	SetStation(ctx context.Context, id string, stationID *string) error
}
