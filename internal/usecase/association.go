package usecase

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// AssetRepository - доступ к активу с привязкой к станции (баржа, буксир, клиент)
type AssetRepository[T domain.StationAssignable] interface {
	GetByID(ctx context.Context, id string) (T, error)
	SetStation(ctx context.Context, id string, stationID *string) error
}

// AssociationManager поддерживает ссылку актива на станцию.
// Проверки и запись выполняются в одной транзакции.
type AssociationManager[T domain.StationAssignable] struct {
	entity      string
	assetRepo   AssetRepository[T]
	stationRepo repository.StationRepository
	tx          repository.Transactor
	events      *EventPublisher
	logger      *zap.Logger
}

// NewAssociationManager создает менеджер привязок для одного вида активов
func NewAssociationManager[T domain.StationAssignable](
	entity string,
	assetRepo AssetRepository[T],
	stationRepo repository.StationRepository,
	tx repository.Transactor,
	events *EventPublisher,
	logger *zap.Logger,
) *AssociationManager[T] {
	return &AssociationManager[T]{
		entity:      entity,
		assetRepo:   assetRepo,
		stationRepo: stationRepo,
		tx:          tx,
		events:      events,
		logger:      logger,
	}
}

// Assign привязывает актив к станции и возвращает актив с раскрытой станцией
func (m *AssociationManager[T]) Assign(ctx context.Context, assetID, stationID string) (T, error) {
	var result T
	err := m.tx.WithinTx(ctx, func(ctx context.Context) error {
		asset, err := m.assetRepo.GetByID(ctx, assetID)
		if err != nil {
			return err
		}
		if _, err := m.stationRepo.GetByID(ctx, stationID); err != nil {
			return err
		}

		if current := asset.StationRef(); current != nil && *current == stationID {
			return errors.Conflict("%s %s is already assigned to station %s", m.entity, assetID, stationID)
		}

		if err := m.assetRepo.SetStation(ctx, assetID, &stationID); err != nil {
			return err
		}

		result, err = m.assetRepo.GetByID(ctx, assetID)
		return err
	})
	if err != nil {
		return result, err
	}

	m.logger.Info("Asset assigned to station",
		zap.String("entity", m.entity),
		zap.String("id", assetID),
		zap.String("station_id", stationID))

	event := domain.NewFleetEvent(m.entity, domain.ActionAssigned, assetID)
	event.StationID = &stationID
	m.events.Publish(ctx, event)

	return result, nil
}

// Unassign снимает привязку. NotFound, если актива нет или он ни к чему не привязан
func (m *AssociationManager[T]) Unassign(ctx context.Context, assetID string) (T, error) {
	var (
		result    T
		stationID string
	)
	err := m.tx.WithinTx(ctx, func(ctx context.Context) error {
		asset, err := m.assetRepo.GetByID(ctx, assetID)
		if err != nil {
			return err
		}

		current := asset.StationRef()
		if current == nil {
			return errors.ErrNotFound.WithMessage("%s %s is not assigned to any station", m.entity, assetID)
		}
		stationID = *current

		if err := m.assetRepo.SetStation(ctx, assetID, nil); err != nil {
			return err
		}

		result, err = m.assetRepo.GetByID(ctx, assetID)
		return err
	})
	if err != nil {
		return result, err
	}

	m.logger.Info("Asset unassigned from station",
		zap.String("entity", m.entity),
		zap.String("id", assetID),
		zap.String("station_id", stationID))

	event := domain.NewFleetEvent(m.entity, domain.ActionUnassigned, assetID)
	event.StationID = &stationID
	m.events.Publish(ctx, event)

	return result, nil
}

// StationGuard проверяет, что на станцию никто не ссылается
type StationGuard struct {
	stationRepo repository.StationRepository
}

func NewStationGuard(stationRepo repository.StationRepository) *StationGuard {
	return &StationGuard{stationRepo: stationRepo}
}

// CanDeleteStation возвращает false, если станцию использует баржа, буксир,
// клиент (в том числе через связь многие-ко-многим) или заказ
func (g *StationGuard) CanDeleteStation(ctx context.Context, stationID string) (bool, error) {
	usage, err := g.stationRepo.Usage(ctx, stationID)
	if err != nil {
		return false, err
	}
	return !usage.InUse(), nil
}
