package postgres

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type stationRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewStationRepository(db *DB) repository.StationRepository {
	return &stationRepository{
		db:     db,
		logger: db.logger,
	}
}

const stationSelect = `SELECT id, name, type, latitude, longitude, distance_km FROM stations`

func (r *stationRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Station, error) {
	var b queryBuilder
	if filter.Type != "" {
		b.where("type = ?", filter.Type)
	}
	if filter.Search != "" {
		b.where("name ILIKE ?", searchPattern(filter.Search))
	}
	orderBy := " ORDER BY name ASC"
	if filter.MaxDistance != nil {
		b.where("distance_km <= ?", *filter.MaxDistance)
		orderBy = " ORDER BY distance_km ASC, name ASC"
	}

	stations := make([]domain.Station, 0)
	if err := r.db.conn(ctx).SelectContext(ctx, &stations, stationSelect+b.whereClause()+orderBy, b.args...); err != nil {
		r.logger.Error("Failed to list stations", zap.Error(err))
		return nil, dbError(err)
	}
	return stations, nil
}

func (r *stationRepository) GetByID(ctx context.Context, id string) (*domain.Station, error) {
	var s domain.Station
	err := r.db.conn(ctx).GetContext(ctx, &s, stationSelect+" WHERE id = $1", id)
	if isNoRows(err) {
		return nil, errors.NotFound(domain.EntityStation, id)
	}
	if err != nil {
		r.logger.Error("Failed to get station", zap.String("id", id), zap.Error(err))
		return nil, dbError(err)
	}
	return &s, nil
}

func (r *stationRepository) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := existsByID(ctx, r.db.conn(ctx), "stations", id)
	if err != nil {
		r.logger.Error("Failed to check station", zap.String("id", id), zap.Error(err))
		return false, dbError(err)
	}
	return exists, nil
}

func (r *stationRepository) Create(ctx context.Context, station *domain.Station) error {
	query := `
		INSERT INTO stations (id, name, type, latitude, longitude, distance_km)
		VALUES (:id, :name, :type, :latitude, :longitude, :distance_km)
	`
	if _, err := r.db.conn(ctx).NamedExecContext(ctx, query, station); err != nil {
		if isUniqueViolation(err) {
			return errors.AlreadyExists(domain.EntityStation, "ID", station.ID)
		}
		r.logger.Error("Failed to create station", zap.String("id", station.ID), zap.Error(err))
		return dbError(err)
	}
	return nil
}

func (r *stationRepository) Update(ctx context.Context, id string, patch domain.StationPatch) (*domain.Station, error) {
	var b queryBuilder
	setIf(&b, "name", patch.Name)
	setIf(&b, "type", patch.Type)
	setIf(&b, "latitude", patch.Latitude)
	setIf(&b, "longitude", patch.Longitude)
	setIf(&b, "distance_km", patch.DistanceKm)

	if len(b.sets) > 0 {
		query := "UPDATE stations SET " + b.setClause() + " WHERE id = " + b.arg(id)
		res, err := r.db.conn(ctx).ExecContext(ctx, query, b.args...)
		if err != nil {
			r.logger.Error("Failed to update station", zap.String("id", id), zap.Error(err))
			return nil, dbError(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, errors.NotFound(domain.EntityStation, id)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *stationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db.conn(ctx), "stations", domain.EntityStation, id)
}

func (r *stationRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteMany(ctx, r.db.conn(ctx), "stations", domain.EntityStation, ids)
}

func (r *stationRepository) Usage(ctx context.Context, id string) (*domain.StationUsage, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM barges WHERE station_id = $1)            AS barges,
			(SELECT COUNT(*) FROM tugboats WHERE station_id = $1)          AS tugboats,
			(SELECT COUNT(*) FROM customers WHERE station_id = $1)         AS customers,
			(SELECT COUNT(*) FROM customer_stations WHERE station_id = $1) AS customer_links,
			(SELECT COUNT(*) FROM orders WHERE start_station_id = $1)      AS start_orders,
			(SELECT COUNT(*) FROM orders WHERE dest_station_id = $1)       AS dest_orders
	`
	var usage domain.StationUsage
	if err := r.db.conn(ctx).GetContext(ctx, &usage, query, id); err != nil {
		r.logger.Error("Failed to count station usage", zap.String("id", id), zap.Error(err))
		return nil, dbError(err)
	}
	return &usage, nil
}

func (r *stationRepository) Statistics(ctx context.Context) (*domain.StationStatistics, error) {
	query := `
		SELECT
			COUNT(*)                                    AS total,
			COUNT(*) FILTER (WHERE type = 'SEA')        AS sea_stations,
			COUNT(*) FILTER (WHERE type = 'RIVER')      AS river_stations,
			COALESCE(AVG(distance_km), 0)               AS average_distance,
			COALESCE(MAX(distance_km), 0)               AS max_distance,
			COALESCE(MIN(distance_km), 0)               AS min_distance
		FROM stations
	`
	var stats domain.StationStatistics
	if err := r.db.conn(ctx).GetContext(ctx, &stats, query); err != nil {
		r.logger.Error("Failed to get station statistics", zap.Error(err))
		return nil, dbError(err)
	}
	return &stats, nil
}
