package postgres

import (
	"context"
	"fmt"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type orderRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewOrderRepository(db *DB) repository.OrderRepository {
	return &orderRepository{
		db:     db,
		logger: db.logger,
	}
}

const orderSelect = `
	SELECT id, type, from_point, dest_point, start_station_id, dest_station_id, product_name,
		demand, start_datetime, due_datetime, loading_rate,
		cr1, cr2, cr3, cr4, cr5, cr6, cr7,
		time_ready_cr1, time_ready_cr2, time_ready_cr3, time_ready_cr4,
		time_ready_cr5, time_ready_cr6, time_ready_cr7
	FROM orders`

const orderInsert = `
	INSERT INTO orders (id, type, from_point, dest_point, start_station_id, dest_station_id,
		product_name, demand, start_datetime, due_datetime, loading_rate,
		cr1, cr2, cr3, cr4, cr5, cr6, cr7,
		time_ready_cr1, time_ready_cr2, time_ready_cr3, time_ready_cr4,
		time_ready_cr5, time_ready_cr6, time_ready_cr7)
	VALUES (:id, :type, :from_point, :dest_point, :start_station_id, :dest_station_id,
		:product_name, :demand, :start_datetime, :due_datetime, :loading_rate,
		:cr1, :cr2, :cr3, :cr4, :cr5, :cr6, :cr7,
		:time_ready_cr1, :time_ready_cr2, :time_ready_cr3, :time_ready_cr4,
		:time_ready_cr5, :time_ready_cr6, :time_ready_cr7)
`

func (r *orderRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Order, error) {
	var b queryBuilder
	if filter.StationID != "" {
		b.where("(start_station_id = ? OR dest_station_id = ?)", filter.StationID)
	}
	if filter.Type != "" {
		b.where("type = ?", filter.Type)
	}
	if filter.Search != "" {
		b.where("product_name ILIKE ?", searchPattern(filter.Search))
	}

	orders := make([]domain.Order, 0)
	query := orderSelect + b.whereClause() + " ORDER BY start_datetime ASC, id ASC"
	if err := r.db.conn(ctx).SelectContext(ctx, &orders, query, b.args...); err != nil {
		r.logger.Error("Failed to list orders", zap.Error(err))
		return nil, dbError(err)
	}
	return orders, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.conn(ctx).GetContext(ctx, &o, orderSelect+" WHERE id = $1", id)
	if isNoRows(err) {
		return nil, errors.NotFound(domain.EntityOrder, id)
	}
	if err != nil {
		r.logger.Error("Failed to get order", zap.String("id", id), zap.Error(err))
		return nil, dbError(err)
	}
	return &o, nil
}

func (r *orderRepository) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := existsByID(ctx, r.db.conn(ctx), "orders", id)
	if err != nil {
		r.logger.Error("Failed to check order", zap.String("id", id), zap.Error(err))
		return false, dbError(err)
	}
	return exists, nil
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	if _, err := r.db.conn(ctx).NamedExecContext(ctx, orderInsert, order); err != nil {
		if isUniqueViolation(err) {
			return errors.AlreadyExists(domain.EntityOrder, "ID", order.ID)
		}
		r.logger.Error("Failed to create order", zap.String("id", order.ID), zap.Error(err))
		return dbError(err)
	}
	return nil
}

func (r *orderRepository) CreateMany(ctx context.Context, orders []domain.Order) error {
	for i := range orders {
		if err := r.Create(ctx, &orders[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepository) Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	var b queryBuilder
	setIf(&b, "type", patch.Type)
	setIf(&b, "from_point", patch.FromPoint)
	setIf(&b, "dest_point", patch.DestPoint)
	setIf(&b, "start_station_id", patch.StartStationID)
	setIf(&b, "dest_station_id", patch.DestStationID)
	setIf(&b, "product_name", patch.ProductName)
	setIf(&b, "demand", patch.Demand)
	setIf(&b, "start_datetime", patch.StartDateTime)
	setIf(&b, "due_datetime", patch.DueDateTime)
	setIf(&b, "loading_rate", patch.LoadingRate)
	for i := 0; i < domain.CraneCount; i++ {
		setIf(&b, fmt.Sprintf("cr%d", i+1), patch.Cranes[i])
		setIf(&b, fmt.Sprintf("time_ready_cr%d", i+1), patch.TimeReady[i])
	}

	if len(b.sets) > 0 {
		query := "UPDATE orders SET " + b.setClause() + " WHERE id = " + b.arg(id)
		res, err := r.db.conn(ctx).ExecContext(ctx, query, b.args...)
		if err != nil {
			r.logger.Error("Failed to update order", zap.String("id", id), zap.Error(err))
			return nil, dbError(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, errors.NotFound(domain.EntityOrder, id)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db.conn(ctx), "orders", domain.EntityOrder, id)
}

func (r *orderRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteMany(ctx, r.db.conn(ctx), "orders", domain.EntityOrder, ids)
}
