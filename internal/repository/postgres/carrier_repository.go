package postgres

import (
	"context"
	"strings"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type carrierRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewCarrierRepository(db *DB) repository.CarrierRepository {
	return &carrierRepository{
		db:     db,
		logger: db.logger,
	}
}

const carrierSelect = `
	SELECT id, name, max_capacity, holder, number_of_bulks, max_crane, latitude, longitude
	FROM carriers`

func (r *carrierRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Carrier, error) {
	var b queryBuilder
	if filter.Search != "" {
		b.where("name ILIKE ?", searchPattern(filter.Search))
	}

	carriers := make([]domain.Carrier, 0)
	if err := r.db.conn(ctx).SelectContext(ctx, &carriers, carrierSelect+b.whereClause()+" ORDER BY name ASC", b.args...); err != nil {
		r.logger.Error("Failed to list carriers", zap.Error(err))
		return nil, dbError(err)
	}
	return carriers, nil
}

func (r *carrierRepository) GetByID(ctx context.Context, id string) (*domain.Carrier, error) {
	var c domain.Carrier
	err := r.db.conn(ctx).GetContext(ctx, &c, carrierSelect+" WHERE id = $1", id)
	if isNoRows(err) {
		return nil, errors.NotFound(domain.EntityCarrier, id)
	}
	if err != nil {
		r.logger.Error("Failed to get carrier", zap.String("id", id), zap.Error(err))
		return nil, dbError(err)
	}
	return &c, nil
}

func (r *carrierRepository) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := existsByID(ctx, r.db.conn(ctx), "carriers", id)
	if err != nil {
		r.logger.Error("Failed to check carrier", zap.String("id", id), zap.Error(err))
		return false, dbError(err)
	}
	return exists, nil
}

func (r *carrierRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	var taken bool
	query := `SELECT EXISTS(SELECT 1 FROM carriers WHERE name = $1 AND id <> $2)`
	if err := r.db.conn(ctx).GetContext(ctx, &taken, query, strings.TrimSpace(name), excludeID); err != nil {
		r.logger.Error("Failed to check carrier name", zap.Error(err))
		return false, dbError(err)
	}
	return taken, nil
}

func (r *carrierRepository) Create(ctx context.Context, carrier *domain.Carrier) error {
	query := `
		INSERT INTO carriers (id, name, max_capacity, holder, number_of_bulks, max_crane, latitude, longitude)
		VALUES (:id, :name, :max_capacity, :holder, :number_of_bulks, :max_crane, :latitude, :longitude)
	`
	if _, err := r.db.conn(ctx).NamedExecContext(ctx, query, carrier); err != nil {
		if isUniqueViolation(err) {
			if strings.HasSuffix(violatedConstraint(err), "_pkey") {
				return errors.AlreadyExists(domain.EntityCarrier, "ID", carrier.ID)
			}
			return errors.AlreadyExists(domain.EntityCarrier, "name", carrier.Name)
		}
		r.logger.Error("Failed to create carrier", zap.String("id", carrier.ID), zap.Error(err))
		return dbError(err)
	}
	return nil
}

func (r *carrierRepository) Update(ctx context.Context, id string, patch domain.CarrierPatch) (*domain.Carrier, error) {
	var b queryBuilder
	setIf(&b, "name", patch.Name)
	setIf(&b, "max_capacity", patch.MaxCapacity)
	setIf(&b, "holder", patch.Holder)
	setIf(&b, "number_of_bulks", patch.NumberOfBulks)
	setIf(&b, "max_crane", patch.MaxCrane)
	setIf(&b, "latitude", patch.Latitude)
	setIf(&b, "longitude", patch.Longitude)

	if len(b.sets) > 0 {
		query := "UPDATE carriers SET " + b.setClause() + " WHERE id = " + b.arg(id)
		res, err := r.db.conn(ctx).ExecContext(ctx, query, b.args...)
		if err != nil {
			if isUniqueViolation(err) && patch.Name != nil {
				return nil, errors.AlreadyExists(domain.EntityCarrier, "name", *patch.Name)
			}
			r.logger.Error("Failed to update carrier", zap.String("id", id), zap.Error(err))
			return nil, dbError(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, errors.NotFound(domain.EntityCarrier, id)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *carrierRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db.conn(ctx), "carriers", domain.EntityCarrier, id)
}

func (r *carrierRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteMany(ctx, r.db.conn(ctx), "carriers", domain.EntityCarrier, ids)
}
