package usecase

import (
	"context"
	"io"
	"time"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/csvimport"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"github.com/fleet-logistics-service/internal/pkg/validator"
	"github.com/fleet-logistics-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// TugboatUseCase обрабатывает бизнес-логику буксиров
type TugboatUseCase struct {
	tugboatRepo repository.TugboatRepository
	stationRepo repository.StationRepository
	tx          repository.Transactor
	events      *EventPublisher
	importMode  ImportMode
	logger      *zap.Logger
	now         func() time.Time

	*AssociationManager[*domain.Tugboat]
}

// NewTugboatUseCase создает новый экземпляр TugboatUseCase
func NewTugboatUseCase(
	tugboatRepo repository.TugboatRepository,
	stationRepo repository.StationRepository,
	tx repository.Transactor,
	events *EventPublisher,
	importMode ImportMode,
	logger *zap.Logger,
) *TugboatUseCase {
	return &TugboatUseCase{
		tugboatRepo: tugboatRepo,
		stationRepo: stationRepo,
		tx:          tx,
		events:      events,
		importMode:  importMode,
		logger:      logger,
		now:         time.Now,
		AssociationManager: NewAssociationManager[*domain.Tugboat](
			domain.EntityTugboat, tugboatRepo, stationRepo, tx, events, logger),
	}
}

func (uc *TugboatUseCase) List(ctx context.Context, filter domain.ListFilter) ([]domain.Tugboat, error) {
	filter.Type = normalizeWaterFilter(filter.Type)
	return uc.tugboatRepo.List(ctx, filter)
}

func (uc *TugboatUseCase) GetByID(ctx context.Context, id string) (*domain.Tugboat, error) {
	return uc.tugboatRepo.GetByID(ctx, id)
}

func (uc *TugboatUseCase) Create(ctx context.Context, req dto.CreateTugboatRequest) (*domain.Tugboat, error) {
	req.Normalize()
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if err := checkSpeedRange(req.MinSpeed, req.MaxSpeed); err != nil {
		return nil, err
	}

	tugboat := &domain.Tugboat{
		ID:            req.ID,
		Name:          req.Name,
		MaxCapacity:   req.MaxCapacity,
		MaxBarge:      req.MaxBarge,
		MaxFuelCon:    req.MaxFuelCon,
		Type:          waterTypeOr(req.Type, domain.WaterSea),
		MinSpeed:      req.MinSpeed,
		MaxSpeed:      req.MaxSpeed,
		EngineRpm:     req.EngineRpm,
		HorsePower:    req.HorsePower,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		WaterStatus:   waterTypeOr(req.WaterStatus, domain.WaterSea),
		DistanceKm:    req.DistanceKm,
		ReadyDatetime: uc.now().UTC(),
		StationID:     domain.StringPtr(derefString(req.StationID)),
	}
	if req.ReadyDatetime != nil {
		tugboat.ReadyDatetime = *req.ReadyDatetime
	}

	var created *domain.Tugboat
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := ensureAbsent(ctx, uc.tugboatRepo.Exists, domain.EntityTugboat, tugboat.ID); err != nil {
			return err
		}
		if err := ensureStation(ctx, uc.stationRepo, tugboat.StationID); err != nil {
			return err
		}
		if err := uc.tugboatRepo.Create(ctx, tugboat); err != nil {
			return err
		}
		var err error
		created, err = uc.tugboatRepo.GetByID(ctx, tugboat.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Tugboat created", zap.String("id", tugboat.ID))
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityTugboat, domain.ActionCreated, tugboat.ID))
	return created, nil
}

// Update применяет частичное обновление. Диапазон скоростей проверяется
// на итоговой записи, поэтому можно менять только одну границу
func (uc *TugboatUseCase) Update(ctx context.Context, id string, req dto.UpdateTugboatRequest) (*domain.Tugboat, error) {
	req.Normalize()
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	patch := domain.TugboatPatch{
		Name:          req.Name,
		MaxCapacity:   req.MaxCapacity,
		MaxBarge:      req.MaxBarge,
		MaxFuelCon:    req.MaxFuelCon,
		Type:          waterTypePtr(req.Type),
		MinSpeed:      req.MinSpeed,
		MaxSpeed:      req.MaxSpeed,
		EngineRpm:     req.EngineRpm,
		HorsePower:    req.HorsePower,
		WaterStatus:   waterTypePtr(req.WaterStatus),
		ReadyDatetime: req.ReadyDatetime,
	}

	var updated *domain.Tugboat
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := uc.tugboatRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		minSpeed, maxSpeed := current.MinSpeed, current.MaxSpeed
		if patch.MinSpeed != nil {
			minSpeed = *patch.MinSpeed
		}
		if patch.MaxSpeed != nil {
			maxSpeed = *patch.MaxSpeed
		}
		if err := checkSpeedRange(minSpeed, maxSpeed); err != nil {
			return err
		}
		if err := reassignStation(ctx, uc.stationRepo, uc.tugboatRepo.SetStation, id, req.StationID); err != nil {
			return err
		}

		updated, err = uc.tugboatRepo.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !patch.IsEmpty() || req.StationID != nil {
		uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityTugboat, domain.ActionUpdated, id))
	}
	return updated, nil
}

func (uc *TugboatUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.tugboatRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityTugboat, domain.ActionDeleted, id))
	return nil
}

func (uc *TugboatUseCase) DeleteMany(ctx context.Context, ids []string) error {
	if err := uc.tugboatRepo.DeleteMany(ctx, ids); err != nil {
		return err
	}
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityTugboat, domain.ActionDeleted, ids...))
	return nil
}

// Import загружает буксиры из CSV. Все строки вставляются в одной транзакции
func (uc *TugboatUseCase) Import(ctx context.Context, src io.Reader) (*dto.ImportResponse[domain.Tugboat], error) {
	var tugboats []domain.Tugboat

	issues, err := uc.importMode.readUpload(src, func(row *csvimport.Row) error {
		t, err := uc.tugboatFromRow(row)
		if err != nil {
			return err
		}
		tugboats = append(tugboats, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		for i := range tugboats {
			if err := ensureStation(ctx, uc.stationRepo, tugboats[i].StationID); err != nil {
				return err
			}
		}
		return uc.tugboatRepo.CreateMany(ctx, tugboats)
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(tugboats))
	for i := range tugboats {
		ids[i] = tugboats[i].ID
	}

	uc.logger.Info("Tugboats imported",
		zap.Int("count", len(tugboats)),
		zap.Int("issues", len(issues)))
	if len(tugboats) > 0 {
		uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityTugboat, domain.ActionImported, ids...))
	}

	if tugboats == nil {
		tugboats = []domain.Tugboat{}
	}
	return &dto.ImportResponse[domain.Tugboat]{
		Imported: len(tugboats),
		Items:    tugboats,
		Issues:   issues,
	}, nil
}

func (uc *TugboatUseCase) tugboatFromRow(row *csvimport.Row) (domain.Tugboat, error) {
	if !row.Has("Id") {
		return domain.Tugboat{}, rowError(row, "Id is required")
	}

	t := domain.Tugboat{
		ID:          row.String("Id"),
		Name:        row.String("Name"),
		MaxCapacity: row.Int("MaxCapacity"),
		MaxBarge:    row.Int("MaxBarge"),
		MaxFuelCon:  row.Float("MaxFuelCon"),
		Type:        waterTypeOr(row.String("Type"), domain.WaterSea),
		MinSpeed:    row.Float("MinSpeed"),
		MaxSpeed:    row.Float("MaxSpeed"),
		EngineRpm:   row.Float("EngineRpm"),
		HorsePower:  row.Float("HorsePower"),
		WaterStatus: waterTypeOr(row.String("WaterStatus"), domain.WaterSea),
		StationID:   domain.StringPtr(row.String("StationId")),
	}

	if row.Has("ReadyDateTime") {
		t.ReadyDatetime = row.Time("ReadyDateTime")
	}
	if t.ReadyDatetime.IsZero() {
		t.ReadyDatetime = uc.now().UTC()
	}

	if t.MinSpeed >= t.MaxSpeed {
		return domain.Tugboat{}, rowError(row, "MinSpeed must be less than MaxSpeed for tugboat %s", t.ID)
	}
	return t, nil
}

func checkSpeedRange(minSpeed, maxSpeed float64) error {
	if minSpeed >= maxSpeed {
		return errors.Validation("minSpeed must be less than maxSpeed").
			WithDetails(map[string]interface{}{"minSpeed": minSpeed, "maxSpeed": maxSpeed})
	}
	return nil
}
