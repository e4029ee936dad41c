package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"github.com/fleet-logistics-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// ScheduleUseCase - чтение расписаний буксиров
type ScheduleUseCase struct {
	scheduleRepo  repository.ScheduleRepository
	cacheRepo     repository.CacheRepository
	typePointsTTL time.Duration
	logger        *zap.Logger
}

func NewScheduleUseCase(
	scheduleRepo repository.ScheduleRepository,
	cacheRepo repository.CacheRepository,
	typePointsTTL time.Duration,
	logger *zap.Logger,
) *ScheduleUseCase {
	return &ScheduleUseCase{
		scheduleRepo:  scheduleRepo,
		cacheRepo:     cacheRepo,
		typePointsTTL: typePointsTTL,
		logger:        logger,
	}
}

func (uc *ScheduleUseCase) List(ctx context.Context) ([]domain.Schedule, error) {
	return uc.scheduleRepo.List(ctx, domain.ScheduleFilter{})
}

func (uc *ScheduleUseCase) ByTugboat(ctx context.Context, tugboatID string) ([]domain.Schedule, error) {
	return uc.scheduleRepo.List(ctx, domain.ScheduleFilter{TugboatID: strings.TrimSpace(tugboatID)})
}

func (uc *ScheduleUseCase) ByOrder(ctx context.Context, orderID string) ([]domain.Schedule, error) {
	return uc.scheduleRepo.List(ctx, domain.ScheduleFilter{OrderID: strings.TrimSpace(orderID)})
}

// ByTugboatAndOrder применяет точные фильтры; пустые параметры запроса игнорируются
func (uc *ScheduleUseCase) ByTugboatAndOrder(ctx context.Context, tugboatID, orderID string, q dto.ScheduleQuery) ([]domain.Schedule, error) {
	filter := domain.ScheduleFilter{
		TugboatID: strings.TrimSpace(tugboatID),
		OrderID:   strings.TrimSpace(orderID),
		TypePoint: strings.TrimSpace(q.TypePoint),
	}

	var err error
	if filter.EnterDatetime, err = parseScheduleTime("enter_datetime", q.EnterDatetime); err != nil {
		return nil, err
	}
	if filter.ExitDatetime, err = parseScheduleTime("exit_datetime", q.ExitDatetime); err != nil {
		return nil, err
	}

	return uc.scheduleRepo.List(ctx, filter)
}

// Timeline возвращает только основные отрезки рейсов (type_point = main_point)
func (uc *ScheduleUseCase) Timeline(ctx context.Context, q dto.TimelineQuery) ([]domain.Schedule, error) {
	return uc.scheduleRepo.Timeline(ctx, strings.TrimSpace(q.TugboatID), strings.TrimSpace(q.OrderID))
}

// TypePoints возвращает различные type_point, используя кеш когда возможно
func (uc *ScheduleUseCase) TypePoints(ctx context.Context) ([]domain.ViewScheduleTypePoint, error) {
	cached, err := uc.cacheRepo.GetTypePoints(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Schedule type points fetched from cache")
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get type points from cache", zap.Error(err))
	}

	points, err := uc.scheduleRepo.TypePoints(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetTypePoints(ctx, points, uc.typePointsTTL); err != nil {
		uc.logger.Warn("Failed to cache type points", zap.Error(err))
	}
	return points, nil
}

func parseScheduleTime(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errors.Validation("%s must be an RFC3339 timestamp", field).
			WithDetails(map[string]interface{}{field: raw})
	}
	return &t, nil
}
