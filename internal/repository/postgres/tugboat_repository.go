package postgres

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type tugboatRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewTugboatRepository(db *DB) repository.TugboatRepository {
	return &tugboatRepository{
		db:     db,
		logger: db.logger,
	}
}

type tugboatRow struct {
	domain.Tugboat
	stationJoin
}

const tugboatSelect = `
	SELECT t.id, t.name, t.max_capacity, t.max_barge, t.max_fuel_con, t.type, t.min_speed,
		t.max_speed, t.engine_rpm, t.horse_power, t.latitude, t.longitude, t.water_status,
		t.distance_km, t.ready_datetime, t.station_id,` + stationColumns + `
	FROM tugboats t
	LEFT JOIN stations s ON s.id = t.station_id`

const tugboatInsert = `
	INSERT INTO tugboats (id, name, max_capacity, max_barge, max_fuel_con, type, min_speed,
		max_speed, engine_rpm, horse_power, latitude, longitude, water_status, distance_km,
		ready_datetime, station_id)
	VALUES (:id, :name, :max_capacity, :max_barge, :max_fuel_con, :type, :min_speed,
		:max_speed, :engine_rpm, :horse_power, :latitude, :longitude, :water_status, :distance_km,
		:ready_datetime, :station_id)
`

func (r *tugboatRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Tugboat, error) {
	var b queryBuilder
	if filter.StationID != "" {
		b.where("t.station_id = ?", filter.StationID)
	}
	if filter.Type != "" {
		b.where("t.type = ?", filter.Type)
	}
	if filter.Search != "" {
		b.where("t.name ILIKE ?", searchPattern(filter.Search))
	}
	if filter.MaxDistance != nil {
		b.where("t.distance_km <= ?", *filter.MaxDistance)
	}

	var rows []tugboatRow
	query := tugboatSelect + b.whereClause() + " ORDER BY t.name ASC, s.name ASC"
	if err := r.db.conn(ctx).SelectContext(ctx, &rows, query, b.args...); err != nil {
		r.logger.Error("Failed to list tugboats", zap.Error(err))
		return nil, dbError(err)
	}

	tugboats := make([]domain.Tugboat, 0, len(rows))
	for _, row := range rows {
		row.Tugboat.Station = row.toStation()
		tugboats = append(tugboats, row.Tugboat)
	}
	return tugboats, nil
}

func (r *tugboatRepository) GetByID(ctx context.Context, id string) (*domain.Tugboat, error) {
	var row tugboatRow
	err := r.db.conn(ctx).GetContext(ctx, &row, tugboatSelect+" WHERE t.id = $1", id)
	if isNoRows(err) {
		return nil, errors.NotFound(domain.EntityTugboat, id)
	}
	if err != nil {
		r.logger.Error("Failed to get tugboat", zap.String("id", id), zap.Error(err))
		return nil, dbError(err)
	}
	row.Tugboat.Station = row.toStation()
	return &row.Tugboat, nil
}

func (r *tugboatRepository) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := existsByID(ctx, r.db.conn(ctx), "tugboats", id)
	if err != nil {
		r.logger.Error("Failed to check tugboat", zap.String("id", id), zap.Error(err))
		return false, dbError(err)
	}
	return exists, nil
}

func (r *tugboatRepository) Create(ctx context.Context, tugboat *domain.Tugboat) error {
	if _, err := r.db.conn(ctx).NamedExecContext(ctx, tugboatInsert, tugboat); err != nil {
		if isUniqueViolation(err) {
			return errors.AlreadyExists(domain.EntityTugboat, "ID", tugboat.ID)
		}
		r.logger.Error("Failed to create tugboat", zap.String("id", tugboat.ID), zap.Error(err))
		return dbError(err)
	}
	return nil
}

// CreateMany вставляет строки по одной, чтобы указать ID дубликата
func (r *tugboatRepository) CreateMany(ctx context.Context, tugboats []domain.Tugboat) error {
	for i := range tugboats {
		if err := r.Create(ctx, &tugboats[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *tugboatRepository) Update(ctx context.Context, id string, patch domain.TugboatPatch) (*domain.Tugboat, error) {
	var b queryBuilder
	setIf(&b, "name", patch.Name)
	setIf(&b, "max_capacity", patch.MaxCapacity)
	setIf(&b, "max_barge", patch.MaxBarge)
	setIf(&b, "max_fuel_con", patch.MaxFuelCon)
	setIf(&b, "type", patch.Type)
	setIf(&b, "min_speed", patch.MinSpeed)
	setIf(&b, "max_speed", patch.MaxSpeed)
	setIf(&b, "engine_rpm", patch.EngineRpm)
	setIf(&b, "horse_power", patch.HorsePower)
	setIf(&b, "water_status", patch.WaterStatus)
	setIf(&b, "ready_datetime", patch.ReadyDatetime)

	if len(b.sets) > 0 {
		query := "UPDATE tugboats SET " + b.setClause() + " WHERE id = " + b.arg(id)
		res, err := r.db.conn(ctx).ExecContext(ctx, query, b.args...)
		if err != nil {
			r.logger.Error("Failed to update tugboat", zap.String("id", id), zap.Error(err))
			return nil, dbError(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, errors.NotFound(domain.EntityTugboat, id)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *tugboatRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db.conn(ctx), "tugboats", domain.EntityTugboat, id)
}

func (r *tugboatRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteMany(ctx, r.db.conn(ctx), "tugboats", domain.EntityTugboat, ids)
}

func (r *tugboatRepository) SetStation(ctx context.Context, id string, stationID *string) error {
	return setStation(ctx, r.db.conn(ctx), "tugboats", domain.EntityTugboat, id, stationID)
}
