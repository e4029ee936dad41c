package repository

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
)

// CustomerRepository - интерфейс для работы с клиентами
type CustomerRepository interface {
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Exists(ctx context.Context, id string) (bool, error)

	// EmailTaken проверяет email без учёта регистра, исключая клиента excludeID
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)

	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, id string, patch domain.CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	SetStation(ctx context.Context, id string, stationID *string) error
}

// CustomerStationRepository - связи клиент-станция многие-ко-многим
type CustomerStationRepository interface {
	// Link создаёт связь, Conflict если она уже есть
	Link(ctx context.Context, customerID, stationID string) error

	// Unlink удаляет связь, NotFound если её нет
	Unlink(ctx context.Context, customerID, stationID string) error

	Exists(ctx context.Context, customerID, stationID string) (bool, error)

	// ListStations возвращает станции клиента, отсортированные по имени
	ListStations(ctx context.Context, customerID string) ([]domain.Station, error)
}
