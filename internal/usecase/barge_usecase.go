package usecase

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"github.com/fleet-logistics-service/internal/pkg/validator"
	"github.com/fleet-logistics-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// BargeUseCase обрабатывает бизнес-логику барж
type BargeUseCase struct {
	bargeRepo   repository.BargeRepository
	stationRepo repository.StationRepository
	tx          repository.Transactor
	events      *EventPublisher
	logger      *zap.Logger

	*AssociationManager[*domain.Barge]
}

// NewBargeUseCase создает новый экземпляр BargeUseCase
func NewBargeUseCase(
	bargeRepo repository.BargeRepository,
	stationRepo repository.StationRepository,
	tx repository.Transactor,
	events *EventPublisher,
	logger *zap.Logger,
) *BargeUseCase {
	return &BargeUseCase{
		bargeRepo:   bargeRepo,
		stationRepo: stationRepo,
		tx:          tx,
		events:      events,
		logger:      logger,
		AssociationManager: NewAssociationManager[*domain.Barge](
			domain.EntityBarge, bargeRepo, stationRepo, tx, events, logger),
	}
}

func (uc *BargeUseCase) List(ctx context.Context, filter domain.ListFilter) ([]domain.Barge, error) {
	filter.Type = normalizeWaterFilter(filter.Type)
	return uc.bargeRepo.List(ctx, filter)
}

func (uc *BargeUseCase) GetByID(ctx context.Context, id string) (*domain.Barge, error) {
	return uc.bargeRepo.GetByID(ctx, id)
}

func (uc *BargeUseCase) Create(ctx context.Context, req dto.CreateBargeRequest) (*domain.Barge, error) {
	req.Normalize()
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	barge := &domain.Barge{
		ID:            req.ID,
		Name:          req.Name,
		Weight:        req.Weight,
		Capacity:      req.Capacity,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		WaterStatus:   waterTypeOr(req.WaterStatus, domain.WaterSea),
		StationID:     domain.StringPtr(derefString(req.StationID)),
		DistanceKm:    req.DistanceKm,
		SetupTime:     req.SetupTime,
		ReadyDatetime: req.ReadyDatetime,
	}

	var created *domain.Barge
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := ensureAbsent(ctx, uc.bargeRepo.Exists, domain.EntityBarge, barge.ID); err != nil {
			return err
		}
		if err := ensureStation(ctx, uc.stationRepo, barge.StationID); err != nil {
			return err
		}
		if err := uc.bargeRepo.Create(ctx, barge); err != nil {
			return err
		}
		var err error
		created, err = uc.bargeRepo.GetByID(ctx, barge.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Barge created", zap.String("id", barge.ID))
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityBarge, domain.ActionCreated, barge.ID))
	return created, nil
}

func (uc *BargeUseCase) Update(ctx context.Context, id string, req dto.UpdateBargeRequest) (*domain.Barge, error) {
	req.Normalize()
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	patch := domain.BargePatch{
		Name:          req.Name,
		Weight:        req.Weight,
		Capacity:      req.Capacity,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		WaterStatus:   waterTypePtr(req.WaterStatus),
		DistanceKm:    req.DistanceKm,
		SetupTime:     req.SetupTime,
		ReadyDatetime: req.ReadyDatetime,
	}

	var updated *domain.Barge
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if req.StationID != nil {
			exists, err := uc.bargeRepo.Exists(ctx, id)
			if err != nil {
				return err
			}
			if !exists {
				return errors.NotFound(domain.EntityBarge, id)
			}
			if err := reassignStation(ctx, uc.stationRepo, uc.bargeRepo.SetStation, id, req.StationID); err != nil {
				return err
			}
		}

		var err error
		updated, err = uc.bargeRepo.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !patch.IsEmpty() || req.StationID != nil {
		uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityBarge, domain.ActionUpdated, id))
	}
	return updated, nil
}

func (uc *BargeUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.bargeRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityBarge, domain.ActionDeleted, id))
	return nil
}

func (uc *BargeUseCase) DeleteMany(ctx context.Context, ids []string) error {
	if err := uc.bargeRepo.DeleteMany(ctx, ids); err != nil {
		return err
	}
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityBarge, domain.ActionDeleted, ids...))
	return nil
}
