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

// CarrierUseCase обрабатывает бизнес-логику судов-перевозчиков
type CarrierUseCase struct {
	carrierRepo repository.CarrierRepository
	tx          repository.Transactor
	events      *EventPublisher
	logger      *zap.Logger
}

func NewCarrierUseCase(
	carrierRepo repository.CarrierRepository,
	tx repository.Transactor,
	events *EventPublisher,
	logger *zap.Logger,
) *CarrierUseCase {
	return &CarrierUseCase{
		carrierRepo: carrierRepo,
		tx:          tx,
		events:      events,
		logger:      logger,
	}
}

func (uc *CarrierUseCase) List(ctx context.Context, filter domain.ListFilter) ([]domain.Carrier, error) {
	return uc.carrierRepo.List(ctx, filter)
}

func (uc *CarrierUseCase) GetByID(ctx context.Context, id string) (*domain.Carrier, error) {
	return uc.carrierRepo.GetByID(ctx, id)
}

func (uc *CarrierUseCase) Create(ctx context.Context, req dto.CreateCarrierRequest) (*domain.Carrier, error) {
	req.Normalize()
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	carrier := &domain.Carrier{
		ID:            req.ID,
		Name:          req.Name,
		MaxCapacity:   req.MaxCapacity,
		Holder:        req.Holder,
		NumberOfBulks: req.NumberOfBulks,
		MaxCrane:      req.MaxCrane,
	}
	if req.Latitude != nil {
		carrier.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		carrier.Longitude = *req.Longitude
	}

	var created *domain.Carrier
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := ensureAbsent(ctx, uc.carrierRepo.Exists, domain.EntityCarrier, carrier.ID); err != nil {
			return err
		}
		if err := uc.ensureNameFree(ctx, carrier.Name, ""); err != nil {
			return err
		}
		if err := uc.carrierRepo.Create(ctx, carrier); err != nil {
			return err
		}
		var err error
		created, err = uc.carrierRepo.GetByID(ctx, carrier.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Carrier created", zap.String("id", carrier.ID))
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityCarrier, domain.ActionCreated, carrier.ID))
	return created, nil
}

func (uc *CarrierUseCase) Update(ctx context.Context, id string, req dto.UpdateCarrierRequest) (*domain.Carrier, error) {
	req.Normalize()
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	patch := domain.CarrierPatch{
		Name:          req.Name,
		MaxCapacity:   req.MaxCapacity,
		Holder:        req.Holder,
		NumberOfBulks: req.NumberOfBulks,
		MaxCrane:      req.MaxCrane,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}

	var updated *domain.Carrier
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := uc.carrierRepo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NotFound(domain.EntityCarrier, id)
		}
		if patch.Name != nil {
			if err := uc.ensureNameFree(ctx, *patch.Name, id); err != nil {
				return err
			}
		}
		updated, err = uc.carrierRepo.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !patch.IsEmpty() {
		uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityCarrier, domain.ActionUpdated, id))
	}
	return updated, nil
}

func (uc *CarrierUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.carrierRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityCarrier, domain.ActionDeleted, id))
	return nil
}

func (uc *CarrierUseCase) DeleteMany(ctx context.Context, ids []string) error {
	if err := uc.carrierRepo.DeleteMany(ctx, ids); err != nil {
		return err
	}
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityCarrier, domain.ActionDeleted, ids...))
	return nil
}

func (uc *CarrierUseCase) ensureNameFree(ctx context.Context, name, excludeID string) error {
	taken, err := uc.carrierRepo.NameTaken(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return errors.AlreadyExists(domain.EntityCarrier, "name", name)
	}
	return nil
}
