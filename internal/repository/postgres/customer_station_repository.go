package postgres

import (
	"context"
	"fmt"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type customerStationRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewCustomerStationRepository(db *DB) repository.CustomerStationRepository {
	return &customerStationRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *customerStationRepository) Link(ctx context.Context, customerID, stationID string) error {
	query := `INSERT INTO customer_stations (customer_id, station_id) VALUES ($1, $2)`
	if _, err := r.db.conn(ctx).ExecContext(ctx, query, customerID, stationID); err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict("Customer %s is already linked to station %s", customerID, stationID)
		}
		r.logger.Error("Failed to link customer to station",
			zap.String("customer_id", customerID),
			zap.String("station_id", stationID),
			zap.Error(err))
		return dbError(err)
	}
	return nil
}

func (r *customerStationRepository) Unlink(ctx context.Context, customerID, stationID string) error {
	query := `DELETE FROM customer_stations WHERE customer_id = $1 AND station_id = $2`
	res, err := r.db.conn(ctx).ExecContext(ctx, query, customerID, stationID)
	if err != nil {
		r.logger.Error("Failed to unlink customer from station", zap.Error(err))
		return dbError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound(domain.EntityCustomerStation, fmt.Sprintf("%s/%s", customerID, stationID))
	}
	return nil
}

func (r *customerStationRepository) Exists(ctx context.Context, customerID, stationID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM customer_stations WHERE customer_id = $1 AND station_id = $2)`
	if err := r.db.conn(ctx).GetContext(ctx, &exists, query, customerID, stationID); err != nil {
		r.logger.Error("Failed to check customer station link", zap.Error(err))
		return false, dbError(err)
	}
	return exists, nil
}

func (r *customerStationRepository) ListStations(ctx context.Context, customerID string) ([]domain.Station, error) {
	query := `
		SELECT s.id, s.name, s.type, s.latitude, s.longitude, s.distance_km
		FROM customer_stations cs
		JOIN stations s ON s.id = cs.station_id
		WHERE cs.customer_id = $1
		ORDER BY s.name ASC
	`
	stations := make([]domain.Station, 0)
	if err := r.db.conn(ctx).SelectContext(ctx, &stations, query, customerID); err != nil {
		r.logger.Error("Failed to list customer stations", zap.String("customer_id", customerID), zap.Error(err))
		return nil, dbError(err)
	}
	return stations, nil
}
