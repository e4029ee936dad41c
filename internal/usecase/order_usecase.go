package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/csvimport"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"github.com/fleet-logistics-service/internal/pkg/validator"
	"github.com/fleet-logistics-service/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderUseCase обрабатывает бизнес-логику заказов
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	stationRepo repository.StationRepository
	tx          repository.Transactor
	events      *EventPublisher
	importMode  ImportMode
	logger      *zap.Logger
	now         func() time.Time
}

// NewOrderUseCase создает новый экземпляр OrderUseCase
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	stationRepo repository.StationRepository,
	tx repository.Transactor,
	events *EventPublisher,
	importMode ImportMode,
	logger *zap.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		stationRepo: stationRepo,
		tx:          tx,
		events:      events,
		importMode:  importMode,
		logger:      logger,
		now:         time.Now,
	}
}

// List фильтрует по станции отправления или назначения, типу и названию груза
func (uc *OrderUseCase) List(ctx context.Context, filter domain.ListFilter) ([]domain.Order, error) {
	if filter.Type != "" {
		t, ok := domain.ParseOrderType(filter.Type)
		if !ok {
			return nil, errors.Validation("type must be one of [import export]")
		}
		filter.Type = string(t)
	}
	return uc.orderRepo.List(ctx, filter)
}

func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

func (uc *OrderUseCase) Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	req.Normalize()
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if err := checkOrderWindow(req.StartDateTime, req.DueDateTime); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:             req.ID,
		Type:           domain.OrderType(req.Type),
		FromPoint:      req.FromPoint,
		DestPoint:      req.DestPoint,
		StartStationID: domain.StringPtr(derefString(req.StartStationID)),
		DestStationID:  domain.StringPtr(derefString(req.DestStationID)),
		ProductName:    req.ProductName,
		Demand:         req.Demand,
		StartDateTime:  req.StartDateTime,
		DueDateTime:    req.DueDateTime,
		LoadingRate:    req.LoadingRate,
		CR1:            req.CR1,
		CR2:            req.CR2,
		CR3:            req.CR3,
		CR4:            req.CR4,
		CR5:            req.CR5,
		CR6:            req.CR6,
		CR7:            req.CR7,
		TimeReadyCR1:   req.TimeReadyCR1,
		TimeReadyCR2:   req.TimeReadyCR2,
		TimeReadyCR3:   req.TimeReadyCR3,
		TimeReadyCR4:   req.TimeReadyCR4,
		TimeReadyCR5:   req.TimeReadyCR5,
		TimeReadyCR6:   req.TimeReadyCR6,
		TimeReadyCR7:   req.TimeReadyCR7,
	}
	if order.ID == "" {
		order.ID = uc.newOrderID()
	}

	var created *domain.Order
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := ensureAbsent(ctx, uc.orderRepo.Exists, domain.EntityOrder, order.ID); err != nil {
			return err
		}
		if err := uc.ensureStations(ctx, order.StartStationID, order.DestStationID); err != nil {
			return err
		}
		if err := uc.orderRepo.Create(ctx, order); err != nil {
			return err
		}
		var err error
		created, err = uc.orderRepo.GetByID(ctx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Order created", zap.String("id", order.ID))
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityOrder, domain.ActionCreated, order.ID))
	return created, nil
}

// Update применяет частичное обновление; окно start < due проверяется на итоговой записи
func (uc *OrderUseCase) Update(ctx context.Context, id string, req dto.UpdateOrderRequest) (*domain.Order, error) {
	req.Normalize()
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	patch := domain.OrderPatch{
		FromPoint:      req.FromPoint,
		DestPoint:      req.DestPoint,
		StartStationID: domain.StringPtr(derefString(req.StartStationID)),
		DestStationID:  domain.StringPtr(derefString(req.DestStationID)),
		ProductName:    req.ProductName,
		Demand:         req.Demand,
		StartDateTime:  req.StartDateTime,
		DueDateTime:    req.DueDateTime,
		LoadingRate:    req.LoadingRate,
		Cranes:         [domain.CraneCount]*float64{req.CR1, req.CR2, req.CR3, req.CR4, req.CR5, req.CR6, req.CR7},
		TimeReady: [domain.CraneCount]*float64{
			req.TimeReadyCR1, req.TimeReadyCR2, req.TimeReadyCR3, req.TimeReadyCR4,
			req.TimeReadyCR5, req.TimeReadyCR6, req.TimeReadyCR7,
		},
	}
	if req.Type != nil {
		t := domain.OrderType(*req.Type)
		patch.Type = &t
	}

	var updated *domain.Order
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := uc.orderRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		start, due := current.StartDateTime, current.DueDateTime
		if patch.StartDateTime != nil {
			start = *patch.StartDateTime
		}
		if patch.DueDateTime != nil {
			due = *patch.DueDateTime
		}
		if patch.StartDateTime != nil || patch.DueDateTime != nil {
			if err := checkOrderWindow(start, due); err != nil {
				return err
			}
		}

		if err := uc.ensureStations(ctx, patch.StartStationID, patch.DestStationID); err != nil {
			return err
		}

		updated, err = uc.orderRepo.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !patch.IsEmpty() {
		uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityOrder, domain.ActionUpdated, id))
	}
	return updated, nil
}

func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityOrder, domain.ActionDeleted, id))
	return nil
}

func (uc *OrderUseCase) DeleteMany(ctx context.Context, ids []string) error {
	if err := uc.orderRepo.DeleteMany(ctx, ids); err != nil {
		return err
	}
	uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityOrder, domain.ActionDeleted, ids...))
	return nil
}

// Import загружает заказы из CSV. Строки без Id получают сгенерированный идентификатор.
// Неизвестный тип заказа отклоняет загрузку в любом режиме
func (uc *OrderUseCase) Import(ctx context.Context, src io.Reader) (*dto.ImportResponse[domain.Order], error) {
	var orders []domain.Order

	issues, err := uc.importMode.readUpload(src, func(row *csvimport.Row) error {
		o, err := uc.orderFromRow(row)
		if err != nil {
			return err
		}
		orders = append(orders, o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		return uc.orderRepo.CreateMany(ctx, orders)
	}); err != nil {
		return nil, err
	}

	ids := make([]string, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}

	uc.logger.Info("Orders imported",
		zap.Int("count", len(orders)),
		zap.Int("issues", len(issues)))
	if len(orders) > 0 {
		uc.events.Publish(ctx, domain.NewFleetEvent(domain.EntityOrder, domain.ActionImported, ids...))
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	return &dto.ImportResponse[domain.Order]{
		Imported: len(orders),
		Items:    orders,
		Issues:   issues,
	}, nil
}

func (uc *OrderUseCase) orderFromRow(row *csvimport.Row) (domain.Order, error) {
	orderType, ok := domain.ParseOrderType(row.String("Type"))
	if !ok {
		return domain.Order{}, rowError(row, "unknown order type %q", row.String("Type"))
	}

	o := domain.Order{
		ID:            row.String("Id"),
		Type:          orderType,
		FromPoint:     row.String("FromPoint"),
		DestPoint:     row.String("DestPoint"),
		ProductName:   row.String("ProductName"),
		Demand:        row.Float("Demand"),
		StartDateTime: row.Time("StartDateTime"),
		DueDateTime:   row.Time("DueDateTime"),
		LoadingRate:   row.Float("LoadingRate"),
	}
	if o.ID == "" {
		o.ID = uc.newOrderID()
	}

	cranes, ready := o.Cranes()
	for i := 0; i < domain.CraneCount; i++ {
		*cranes[i] = row.Float(fmt.Sprintf("CR%d", i+1))
		*ready[i] = row.Float(fmt.Sprintf("TimeReadyCR%d", i+1))
	}
	return o, nil
}

func (uc *OrderUseCase) ensureStations(ctx context.Context, ids ...*string) error {
	for _, id := range ids {
		if err := ensureStation(ctx, uc.stationRepo, domain.StringPtr(derefString(id))); err != nil {
			return err
		}
	}
	return nil
}

// newOrderID - order_<unix ms>_<8 символов uuid>
func (uc *OrderUseCase) newOrderID() string {
	return fmt.Sprintf("order_%d_%s", uc.now().UnixMilli(), uuid.NewString()[:8])
}

func checkOrderWindow(start, due time.Time) error {
	if !start.Before(due) {
		return errors.Validation("startDateTime must be before dueDateTime").
			WithDetails(map[string]interface{}{"startDateTime": start, "dueDateTime": due})
	}
	return nil
}
