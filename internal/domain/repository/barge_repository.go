package repository

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
)

// BargeRepository - интерфейс для работы с баржами
type BargeRepository interface {
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Barge, error)
	GetByID(ctx context.Context, id string) (*domain.Barge, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, barge *domain.Barge) error
	Update(ctx context.Context, id string, patch domain.BargePatch) (*domain.Barge, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error

	// SetStation меняет только station_id, nil снимает привязку
	SetStation(ctx context.Context, id string, stationID *string) error
}
