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

// CustomerUseCase обрабатывает бизнес-логику клиентов.
// linkRepo nil означает, что связи многие-ко-многим выключены
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	linkRepo     repository.CustomerStationRepository
	stationRepo  repository.StationRepository
	tx           repository.Transactor
	events       *EventPublisher
	logger       *zap.Logger

	*AssociationManager[*domain.Customer]
}

// NewCustomerUseCase создает новый экземпляр CustomerUseCase
func NewCustomerUseCase(
	customerRepo repository.CustomerRepository,
	linkRepo repository.CustomerStationRepository,
	stationRepo repository.StationRepository,
	tx repository.Transactor,
	events *EventPublisher,
	logger *zap.Logger,
) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		linkRepo:     linkRepo,
		stationRepo:  stationRepo,
		tx:           tx,
		events:       events,
		logger:       logger,
		AssociationManager: NewAssociationManager[*domain.Customer](
			domain.EntityCustomer, customerRepo, stationRepo, tx, events, logger),
	}
}

// LinksEnabled сообщает, доступны ли связи клиент-станция
func (uc *CustomerUseCase) LinksEnabled() bool {
	return uc.linkRepo != nil
}

func (uc *CustomerUseCase) List(ctx context.Context, filter domain.ListFilter) ([]domain.Customer, error) {
	return uc.customerRepo.List(ctx, filter)
}

func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if uc.LinksEnabled() {
		stations, err := uc.linkRepo.ListStations(ctx, id)
		if err != nil {
			return nil, err
		}
		customer.Stations = stations
	}
	return customer, nil
}

func (uc *CustomerUseCase) Create(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	req.Normalize()
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		ID:        req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Address:   req.Address,
		StationID: domain.StringPtr(derefString(req.StationID)),
	}

	var created *domain.Customer
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := ensureAbsent(ctx, uc.customerRepo.Exists, domain.EntityCustomer, customer.ID); err != nil {
			return err
		}
		if err := uc.ensureEmailFree(ctx, customer.Email, ""); err != nil {
			return err
		}
		if err := ensureStation(ctx, uc.stationRepo, customer.StationID); err != nil {
			return err
		}
		if err := uc.customerRepo.Create(ctx, customer); err != nil {
			return err
		}
		var err error
		created, err = uc.customerRepo.GetByID(ctx, customer.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Customer created", zap.String("id", customer.ID))
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityCustomer, domain.ActionCreated, customer.ID))
	return created, nil
}

func (uc *CustomerUseCase) Update(ctx context.Context, id string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	req.Normalize()
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	patch := domain.CustomerPatch{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	}

	var updated *domain.Customer
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if patch.Email != nil {
			exists, err := uc.customerRepo.Exists(ctx, id)
			if err != nil {
				return err
			}
			if !exists {
				return errors.NotFound(domain.EntityCustomer, id)
			}
			if err := uc.ensureEmailFree(ctx, *patch.Email, id); err != nil {
				return err
			}
		}
		var err error
		updated, err = uc.customerRepo.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !patch.IsEmpty() {
		uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityCustomer, domain.ActionUpdated, id))
	}
	return updated, nil
}

func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityCustomer, domain.ActionDeleted, id))
	return nil
}

func (uc *CustomerUseCase) DeleteMany(ctx context.Context, ids []string) error {
	if err := uc.customerRepo.DeleteMany(ctx, ids); err != nil {
		return err
	}
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityCustomer, domain.ActionDeleted, ids...))
	return nil
}

// LinkStation добавляет станцию в список станций клиента
func (uc *CustomerUseCase) LinkStation(ctx context.Context, customerID, stationID string) ([]domain.Station, error) {
	if !uc.LinksEnabled() {
		return nil, errors.ErrNotFound.WithMessage("customer station links are disabled")
	}

	var stations []domain.Station
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.ensureLinkEnds(ctx, customerID, stationID); err != nil {
			return err
		}
		if err := uc.linkRepo.Link(ctx, customerID, stationID); err != nil {
			return err
		}
		var err error
		stations, err = uc.linkRepo.ListStations(ctx, customerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	event := domain.NewFleetEvent(domain.EntityCustomerStation, domain.ActionAssigned, customerID)
	event.StationID = &stationID
	uc.events.Publish(ctx, event)
	return stations, nil
}

// UnlinkStation удаляет станцию из списка станций клиента
func (uc *CustomerUseCase) UnlinkStation(ctx context.Context, customerID, stationID string) ([]domain.Station, error) {
	if !uc.LinksEnabled() {
		return nil, errors.ErrNotFound.WithMessage("customer station links are disabled")
	}

	var stations []domain.Station
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.ensureLinkEnds(ctx, customerID, stationID); err != nil {
			return err
		}
		if err := uc.linkRepo.Unlink(ctx, customerID, stationID); err != nil {
			return err
		}
		var err error
		stations, err = uc.linkRepo.ListStations(ctx, customerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	event := domain.NewFleetEvent(domain.EntityCustomerStation, domain.ActionUnassigned, customerID)
	event.StationID = &stationID
	uc.events.Publish(ctx, event)
	return stations, nil
}

// ListStations возвращает связанные станции клиента
func (uc *CustomerUseCase) ListStations(ctx context.Context, customerID string) ([]domain.Station, error) {
	if !uc.LinksEnabled() {
		return nil, errors.ErrNotFound.WithMessage("customer station links are disabled")
	}
	exists, err := uc.customerRepo.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound(domain.EntityCustomer, customerID)
	}
	return uc.linkRepo.ListStations(ctx, customerID)
}

func (uc *CustomerUseCase) ensureLinkEnds(ctx context.Context, customerID, stationID string) error {
	exists, err := uc.customerRepo.Exists(ctx, customerID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound(domain.EntityCustomer, customerID)
	}
	return ensureStation(ctx, uc.stationRepo, &stationID)
}

func (uc *CustomerUseCase) ensureEmailFree(ctx context.Context, email, excludeID string) error {
	taken, err := uc.customerRepo.EmailTaken(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return errors.AlreadyExists(domain.EntityCustomer, "email", email)
	}
	return nil
}
