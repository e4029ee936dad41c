package postgres

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type costRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewCostRepository(db *DB) repository.CostRepository {
	return &costRepository{
		db:     db,
		logger: db.logger,
	}
}

const costSelect = `
	SELECT tugboat_id, order_id, time, distance, consumption_rate, cost, total_load
	FROM costs`

func (r *costRepository) FindAll(ctx context.Context) ([]domain.Cost, error) {
	return r.selectCosts(ctx, costSelect+" ORDER BY tugboat_id ASC, order_id ASC")
}

func (r *costRepository) FindByKey(ctx context.Context, key domain.CostKey) (*domain.Cost, error) {
	var c domain.Cost
	err := r.db.conn(ctx).GetContext(ctx, &c, costSelect+" WHERE tugboat_id = $1 AND order_id = $2",
		key.TugboatID, key.OrderID)
	if isNoRows(err) {
		return nil, errors.NotFound(domain.EntityCost, key.String())
	}
	if err != nil {
		r.logger.Error("Failed to get cost",
			zap.String("tugboat_id", key.TugboatID),
			zap.String("order_id", key.OrderID),
			zap.Error(err))
		return nil, dbError(err)
	}
	return &c, nil
}

func (r *costRepository) FindByTugboat(ctx context.Context, tugboatID string) ([]domain.Cost, error) {
	return r.selectCosts(ctx, costSelect+" WHERE tugboat_id = $1 ORDER BY order_id ASC", tugboatID)
}

func (r *costRepository) FindByOrder(ctx context.Context, orderID string) ([]domain.Cost, error) {
	return r.selectCosts(ctx, costSelect+" WHERE order_id = $1 ORDER BY tugboat_id ASC", orderID)
}

func (r *costRepository) selectCosts(ctx context.Context, query string, args ...interface{}) ([]domain.Cost, error) {
	costs := make([]domain.Cost, 0)
	if err := r.db.conn(ctx).SelectContext(ctx, &costs, query, args...); err != nil {
		r.logger.Error("Failed to select costs", zap.Error(err))
		return nil, dbError(err)
	}
	return costs, nil
}
