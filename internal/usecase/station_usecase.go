package usecase

import (
	"context"
	"time"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"github.com/fleet-logistics-service/internal/pkg/validator"
	"github.com/fleet-logistics-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// StationUseCase обрабатывает бизнес-логику станций
type StationUseCase struct {
	stationRepo repository.StationRepository
	cacheRepo   repository.CacheRepository
	guard       *StationGuard
	tx          repository.Transactor
	events      *EventPublisher
	statsTTL    time.Duration
	logger      *zap.Logger
}

// NewStationUseCase создает новый экземпляр StationUseCase
func NewStationUseCase(
	stationRepo repository.StationRepository,
	cacheRepo repository.CacheRepository,
	guard *StationGuard,
	tx repository.Transactor,
	events *EventPublisher,
	statsTTL time.Duration,
	logger *zap.Logger,
) *StationUseCase {
	return &StationUseCase{
		stationRepo: stationRepo,
		cacheRepo:   cacheRepo,
		guard:       guard,
		tx:          tx,
		events:      events,
		statsTTL:    statsTTL,
		logger:      logger,
	}
}

func (uc *StationUseCase) List(ctx context.Context, filter domain.ListFilter) ([]domain.Station, error) {
	if filter.Type != "" {
		wt, ok := domain.ParseWaterType(filter.Type)
		if !ok {
			return nil, errors.Validation("type must be one of [SEA RIVER]")
		}
		filter.Type = string(wt)
	}
	return uc.stationRepo.List(ctx, filter)
}

// ListByType возвращает станции одного типа акватории
func (uc *StationUseCase) ListByType(ctx context.Context, stationType string) ([]domain.Station, error) {
	return uc.List(ctx, domain.ListFilter{Type: stationType})
}

func (uc *StationUseCase) GetByID(ctx context.Context, id string) (*domain.Station, error) {
	return uc.stationRepo.GetByID(ctx, id)
}

func (uc *StationUseCase) Create(ctx context.Context, req dto.CreateStationRequest) (*domain.Station, error) {
	req.Normalize()
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	station := &domain.Station{
		ID:         req.ID,
		Name:       req.Name,
		Type:       domain.WaterSea,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		DistanceKm: req.DistanceKm,
	}
	if req.Type != "" {
		station.Type = domain.WaterType(req.Type)
	}

	var created *domain.Station
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := uc.stationRepo.Exists(ctx, station.ID)
		if err != nil {
			return err
		}
		if exists {
			return errors.AlreadyExists(domain.EntityStation, "ID", station.ID)
		}
		if err := uc.stationRepo.Create(ctx, station); err != nil {
			return err
		}
		created, err = uc.stationRepo.GetByID(ctx, station.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, domain.ActionCreated, station.ID)
	return created, nil
}

func (uc *StationUseCase) Update(ctx context.Context, id string, req dto.UpdateStationRequest) (*domain.Station, error) {
	req.Normalize()
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	patch := domain.StationPatch{
		Name:       req.Name,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		DistanceKm: req.DistanceKm,
	}
	if req.Type != nil {
		wt := domain.WaterType(*req.Type)
		patch.Type = &wt
	}

	updated, err := uc.stationRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if !patch.IsEmpty() {
		uc.afterMutation(ctx, domain.ActionUpdated, id)
	}
	return updated, nil
}

// Delete удаляет станцию, если на неё никто не ссылается
func (uc *StationUseCase) Delete(ctx context.Context, id string) error {
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.ensureDeletable(ctx, id); err != nil {
			return err
		}
		return uc.stationRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.afterMutation(ctx, domain.ActionDeleted, id)
	return nil
}

// DeleteMany проверяет каждую станцию по очереди; первая ошибка отменяет всё удаление
func (uc *StationUseCase) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return errors.ErrNoIDsProvided
	}

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, id := range ids {
			if err := uc.ensureDeletable(ctx, id); err != nil {
				return err
			}
		}
		return uc.stationRepo.DeleteMany(ctx, ids)
	})
	if err != nil {
		return err
	}

	uc.afterMutation(ctx, domain.ActionDeleted, ids...)
	return nil
}

func (uc *StationUseCase) ensureDeletable(ctx context.Context, id string) error {
	exists, err := uc.stationRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound(domain.EntityStation, id)
	}

	ok, err := uc.guard.CanDeleteStation(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Conflict("Station %s cannot be deleted while barges, tugboats, customers or orders reference it", id)
	}
	return nil
}

// GetStatistics возвращает статистику, используя кеш когда возможно
func (uc *StationUseCase) GetStatistics(ctx context.Context) (*domain.StationStatistics, error) {
	cached, err := uc.cacheRepo.GetStationStats(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Station statistics fetched from cache")
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get station stats from cache", zap.Error(err))
	}

	return uc.RefreshStatistics(ctx)
}

// RefreshStatistics пересчитывает статистику в БД и обновляет кеш
func (uc *StationUseCase) RefreshStatistics(ctx context.Context) (*domain.StationStatistics, error) {
	stats, err := uc.stationRepo.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetStationStats(ctx, stats, uc.statsTTL); err != nil {
		// Не возвращаем ошибку, т.к. данные уже получены
		uc.logger.Warn("Failed to cache station stats", zap.Error(err))
	}
	return stats, nil
}

// afterMutation сбрасывает кеш статистики и публикует событие
func (uc *StationUseCase) afterMutation(ctx context.Context, action domain.FleetAction, ids ...string) {
	if err := uc.cacheRepo.InvalidateStationStats(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate station stats", zap.Error(err))
	}

	uc.logger.Info("Station changed",
		zap.String("action", string(action)),
		zap.Strings("ids", ids))
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityStation, action, ids...))
}
