package usecase

import (
	"context"
	"strings"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
)

// ensureStation проверяет, что станция существует (nil - ссылки нет)
func ensureStation(ctx context.Context, stationRepo repository.StationRepository, stationID *string) error {
	if stationID == nil {
		return nil
	}
	exists, err := stationRepo.Exists(ctx, *stationID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound(domain.EntityStation, *stationID)
	}
	return nil
}

// reassignStation применяет stationId из PUT: nil - не трогать, пустая строка снимает привязку
func reassignStation(
	ctx context.Context,
	stationRepo repository.StationRepository,
	setStation func(context.Context, string, *string) error,
	id string,
	ref *string,
) error {
	if ref == nil {
		return nil
	}
	stationID := domain.StringPtr(*ref)
	if err := ensureStation(ctx, stationRepo, stationID); err != nil {
		return err
	}
	return setStation(ctx, id, stationID)
}

// ensureAbsent возвращает Conflict, если сущность с таким ID уже есть
func ensureAbsent(ctx context.Context, exists func(context.Context, string) (bool, error), entity, id string) error {
	found, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if found {
		return errors.AlreadyExists(entity, "ID", id)
	}
	return nil
}

// ensureAllExist проверяет ID по порядку и возвращает NotFound для первого отсутствующего
func ensureAllExist(ctx context.Context, exists func(context.Context, string) (bool, error), entity string, ids []string) error {
	if len(ids) == 0 {
		return errors.ErrNoIDsProvided
	}
	for _, id := range ids {
		found, err := exists(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return errors.NotFound(entity, id)
		}
	}
	return nil
}

func waterTypeOr(s string, fallback domain.WaterType) domain.WaterType {
	if wt, ok := domain.ParseWaterType(s); ok {
		return wt
	}
	return fallback
}

func waterTypePtr(s *string) *domain.WaterType {
	if s == nil {
		return nil
	}
	wt := domain.WaterType(*s)
	return &wt
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// normalizeWaterFilter приводит фильтр типа акватории к верхнему регистру
func normalizeWaterFilter(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
