package repository

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
)

// ScheduleRepository - чтение расписаний, результаты отсортированы по enter_datetime
type ScheduleRepository interface {
	// List применяет только заданные поля фильтра (точное совпадение)
	List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.Schedule, error)

	// Timeline возвращает отрезки type_point = main_point, пустые ID не фильтруют
	Timeline(ctx context.Context, tugboatID, orderID string) ([]domain.Schedule, error)

	// TypePoints читает представление view_schedule_type_point
	TypePoints(ctx context.Context) ([]domain.ViewScheduleTypePoint, error)
}
