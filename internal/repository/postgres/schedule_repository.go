package postgres

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"go.uber.org/zap"
)

type scheduleRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewScheduleRepository(db *DB) repository.ScheduleRepository {
	return &scheduleRepository{
		db:     db,
		logger: db.logger,
	}
}

const scheduleSelect = `
	SELECT fake_id, id, type, name, enter_datetime, exit_datetime, distance, time, speed,
		type_point, order_trip, total_load, barge_ids, order_distance, order_time, barge_speed,
		order_arrival_time, tugboat_id, order_id, water_type
	FROM schedules`

func (r *scheduleRepository) List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.Schedule, error) {
	var b queryBuilder
	if filter.TugboatID != "" {
		b.where("tugboat_id = ?", filter.TugboatID)
	}
	if filter.OrderID != "" {
		b.where("order_id = ?", filter.OrderID)
	}
	if filter.TypePoint != "" {
		b.where("type_point = ?", filter.TypePoint)
	}
	if filter.EnterDatetime != nil {
		b.where("enter_datetime = ?", *filter.EnterDatetime)
	}
	if filter.ExitDatetime != nil {
		b.where("exit_datetime = ?", *filter.ExitDatetime)
	}
	return r.selectSchedules(ctx, &b)
}

func (r *scheduleRepository) Timeline(ctx context.Context, tugboatID, orderID string) ([]domain.Schedule, error) {
	var b queryBuilder
	b.where("type_point = ?", domain.TypePointMain)
	if tugboatID != "" {
		b.where("tugboat_id = ?", tugboatID)
	}
	if orderID != "" {
		b.where("order_id = ?", orderID)
	}
	return r.selectSchedules(ctx, &b)
}

func (r *scheduleRepository) TypePoints(ctx context.Context) ([]domain.ViewScheduleTypePoint, error) {
	points := make([]domain.ViewScheduleTypePoint, 0)
	query := `SELECT type_point FROM view_schedule_type_point ORDER BY type_point ASC`
	if err := r.db.conn(ctx).SelectContext(ctx, &points, query); err != nil {
		r.logger.Error("Failed to list schedule type points", zap.Error(err))
		return nil, dbError(err)
	}
	return points, nil
}

func (r *scheduleRepository) selectSchedules(ctx context.Context, b *queryBuilder) ([]domain.Schedule, error) {
	schedules := make([]domain.Schedule, 0)
	query := scheduleSelect + b.whereClause() + " ORDER BY enter_datetime ASC NULLS LAST, fake_id ASC"
	if err := r.db.conn(ctx).SelectContext(ctx, &schedules, query, b.args...); err != nil {
		r.logger.Error("Failed to select schedules", zap.Error(err))
		return nil, dbError(err)
	}

	for i := range schedules {
		if schedules[i].BargeIDs != nil {
			schedules[i].BargeIDList = domain.ParseBargeIDs(*schedules[i].BargeIDs)
		} else {
			schedules[i].BargeIDList = []string{}
		}
	}
	return schedules, nil
}
