package postgres

import (
	"context"
	"strings"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type customerRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewCustomerRepository(db *DB) repository.CustomerRepository {
	return &customerRepository{
		db:     db,
		logger: db.logger,
	}
}

type customerRow struct {
	domain.Customer
	stationJoin
}

const customerSelect = `
	SELECT c.id, c.name, c.email, c.address, c.station_id,` + stationColumns + `
	FROM customers c
	LEFT JOIN stations s ON s.id = c.station_id`

func (r *customerRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Customer, error) {
	var b queryBuilder
	if filter.StationID != "" {
		b.where("c.station_id = ?", filter.StationID)
	}
	if filter.Search != "" {
		b.where("c.name ILIKE ?", searchPattern(filter.Search))
	}
	if filter.MaxDistance != nil {
		b.where("s.distance_km <= ?", *filter.MaxDistance)
	}

	var rows []customerRow
	query := customerSelect + b.whereClause() + " ORDER BY c.name ASC, s.name ASC"
	if err := r.db.conn(ctx).SelectContext(ctx, &rows, query, b.args...); err != nil {
		r.logger.Error("Failed to list customers", zap.Error(err))
		return nil, dbError(err)
	}

	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		row.Customer.Station = row.toStation()
		customers = append(customers, row.Customer)
	}
	return customers, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var row customerRow
	err := r.db.conn(ctx).GetContext(ctx, &row, customerSelect+" WHERE c.id = $1", id)
	if isNoRows(err) {
		return nil, errors.NotFound(domain.EntityCustomer, id)
	}
	if err != nil {
		r.logger.Error("Failed to get customer", zap.String("id", id), zap.Error(err))
		return nil, dbError(err)
	}
	row.Customer.Station = row.toStation()
	return &row.Customer, nil
}

func (r *customerRepository) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := existsByID(ctx, r.db.conn(ctx), "customers", id)
	if err != nil {
		r.logger.Error("Failed to check customer", zap.String("id", id), zap.Error(err))
		return false, dbError(err)
	}
	return exists, nil
}

func (r *customerRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	var taken bool
	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE LOWER(email) = LOWER($1) AND id <> $2)`
	if err := r.db.conn(ctx).GetContext(ctx, &taken, query, strings.TrimSpace(email), excludeID); err != nil {
		r.logger.Error("Failed to check customer email", zap.Error(err))
		return false, dbError(err)
	}
	return taken, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, address, station_id)
		VALUES (:id, :name, :email, :address, :station_id)
	`
	if _, err := r.db.conn(ctx).NamedExecContext(ctx, query, customer); err != nil {
		if isUniqueViolation(err) {
			if strings.HasSuffix(violatedConstraint(err), "_pkey") {
				return errors.AlreadyExists(domain.EntityCustomer, "ID", customer.ID)
			}
			return errors.AlreadyExists(domain.EntityCustomer, "email", customer.Email)
		}
		r.logger.Error("Failed to create customer", zap.String("id", customer.ID), zap.Error(err))
		return dbError(err)
	}
	return nil
}

func (r *customerRepository) Update(ctx context.Context, id string, patch domain.CustomerPatch) (*domain.Customer, error) {
	var b queryBuilder
	setIf(&b, "name", patch.Name)
	setIf(&b, "email", patch.Email)
	setIf(&b, "address", patch.Address)

	if len(b.sets) > 0 {
		query := "UPDATE customers SET " + b.setClause() + " WHERE id = " + b.arg(id)
		res, err := r.db.conn(ctx).ExecContext(ctx, query, b.args...)
		if err != nil {
			if isUniqueViolation(err) && patch.Email != nil {
				return nil, errors.AlreadyExists(domain.EntityCustomer, "email", *patch.Email)
			}
			r.logger.Error("Failed to update customer", zap.String("id", id), zap.Error(err))
			return nil, dbError(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, errors.NotFound(domain.EntityCustomer, id)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db.conn(ctx), "customers", domain.EntityCustomer, id)
}

func (r *customerRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteMany(ctx, r.db.conn(ctx), "customers", domain.EntityCustomer, ids)
}

func (r *customerRepository) SetStation(ctx context.Context, id string, stationID *string) error {
	return setStation(ctx, r.db.conn(ctx), "customers", domain.EntityCustomer, id, stationID)
}
