package repository

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
)

// CarrierRepository - интерфейс для работы с судами-перевозчиками
type CarrierRepository interface {
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Carrier, error)
	GetByID(ctx context.Context, id string) (*domain.Carrier, error)
	Exists(ctx context.Context, id string) (bool, error)

	// NameTaken проверяет уникальность имени, исключая перевозчика excludeID
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)

	Create(ctx context.Context, carrier *domain.Carrier) error
	Update(ctx context.Context, id string, patch domain.CarrierPatch) (*domain.Carrier, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
}
