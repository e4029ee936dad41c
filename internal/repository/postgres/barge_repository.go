package postgres

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type bargeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewBargeRepository(db *DB) repository.BargeRepository {
	return &bargeRepository{
		db:     db,
		logger: db.logger,
	}
}

type bargeRow struct {
	domain.Barge
	stationJoin
}

const bargeSelect = `
	SELECT b.id, b.name, b.weight, b.capacity, b.latitude, b.longitude, b.water_status,
		b.station_id, b.distance_km, b.setup_time, b.ready_datetime,` + stationColumns + `
	FROM barges b
	LEFT JOIN stations s ON s.id = b.station_id`

func (r *bargeRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Barge, error) {
	var b queryBuilder
	if filter.StationID != "" {
		b.where("b.station_id = ?", filter.StationID)
	}
	if filter.Type != "" {
		b.where("b.water_status = ?", filter.Type)
	}
	if filter.Search != "" {
		b.where("b.name ILIKE ?", searchPattern(filter.Search))
	}
	if filter.MaxDistance != nil {
		b.where("b.distance_km <= ?", *filter.MaxDistance)
	}

	var rows []bargeRow
	query := bargeSelect + b.whereClause() + " ORDER BY b.name ASC, s.name ASC"
	if err := r.db.conn(ctx).SelectContext(ctx, &rows, query, b.args...); err != nil {
		r.logger.Error("Failed to list barges", zap.Error(err))
		return nil, dbError(err)
	}

	barges := make([]domain.Barge, 0, len(rows))
	for _, row := range rows {
		row.Barge.Station = row.toStation()
		barges = append(barges, row.Barge)
	}
	return barges, nil
}

func (r *bargeRepository) GetByID(ctx context.Context, id string) (*domain.Barge, error) {
	var row bargeRow
	err := r.db.conn(ctx).GetContext(ctx, &row, bargeSelect+" WHERE b.id = $1", id)
	if isNoRows(err) {
		return nil, errors.NotFound(domain.EntityBarge, id)
	}
	if err != nil {
		r.logger.Error("Failed to get barge", zap.String("id", id), zap.Error(err))
		return nil, dbError(err)
	}
	row.Barge.Station = row.toStation()
	return &row.Barge, nil
}

func (r *bargeRepository) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := existsByID(ctx, r.db.conn(ctx), "barges", id)
	if err != nil {
		r.logger.Error("Failed to check barge", zap.String("id", id), zap.Error(err))
		return false, dbError(err)
	}
	return exists, nil
}

func (r *bargeRepository) Create(ctx context.Context, barge *domain.Barge) error {
	query := `
		INSERT INTO barges (id, name, weight, capacity, latitude, longitude, water_status,
			station_id, distance_km, setup_time, ready_datetime)
		VALUES (:id, :name, :weight, :capacity, :latitude, :longitude, :water_status,
			:station_id, :distance_km, :setup_time, :ready_datetime)
	`
	if _, err := r.db.conn(ctx).NamedExecContext(ctx, query, barge); err != nil {
		if isUniqueViolation(err) {
			return errors.AlreadyExists(domain.EntityBarge, "ID", barge.ID)
		}
		r.logger.Error("Failed to create barge", zap.String("id", barge.ID), zap.Error(err))
		return dbError(err)
	}
	return nil
}

func (r *bargeRepository) Update(ctx context.Context, id string, patch domain.BargePatch) (*domain.Barge, error) {
	var b queryBuilder
	setIf(&b, "name", patch.Name)
	setIf(&b, "weight", patch.Weight)
	setIf(&b, "capacity", patch.Capacity)
	setIf(&b, "latitude", patch.Latitude)
	setIf(&b, "longitude", patch.Longitude)
	setIf(&b, "water_status", patch.WaterStatus)
	setIf(&b, "distance_km", patch.DistanceKm)
	setIf(&b, "setup_time", patch.SetupTime)
	setIf(&b, "ready_datetime", patch.ReadyDatetime)

	if len(b.sets) > 0 {
		query := "UPDATE barges SET " + b.setClause() + " WHERE id = " + b.arg(id)
		res, err := r.db.conn(ctx).ExecContext(ctx, query, b.args...)
		if err != nil {
			r.logger.Error("Failed to update barge", zap.String("id", id), zap.Error(err))
			return nil, dbError(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, errors.NotFound(domain.EntityBarge, id)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *bargeRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db.conn(ctx), "barges", domain.EntityBarge, id)
}

func (r *bargeRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteMany(ctx, r.db.conn(ctx), "barges", domain.EntityBarge, ids)
}

func (r *bargeRepository) SetStation(ctx context.Context, id string, stationID *string) error {
	return setStation(ctx, r.db.conn(ctx), "barges", domain.EntityBarge, id, stationID)
}
