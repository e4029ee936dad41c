// Package mocks содержит testify-моки интерфейсов репозиториев для тестов use case и хендлеров
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/fleet-logistics-service/internal/domain"
)

// Transactor выполняет fn без транзакции и считает вызовы
type Transactor struct {
	Calls int
}

func (f *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.Calls++
	return fn(ctx)
}

// MockStationRepository is a mock implementation of StationRepository
type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Station, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetByID(ctx context.Context, id string) (*domain.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Station), args.Error(1)
}

func (m *MockStationRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStationRepository) Create(ctx context.Context, station *domain.Station) error {
	args := m.Called(ctx, station)
	return args.Error(0)
}

func (m *MockStationRepository) Update(ctx context.Context, id string, patch domain.StationPatch) (*domain.Station, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Station), args.Error(1)
}

func (m *MockStationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStationRepository) DeleteMany(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockStationRepository) Usage(ctx context.Context, id string) (*domain.StationUsage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StationUsage), args.Error(1)
}

func (m *MockStationRepository) Statistics(ctx context.Context) (*domain.StationStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StationStatistics), args.Error(1)
}

// MockBargeRepository is a mock implementation of BargeRepository
type MockBargeRepository struct {
	mock.Mock
}

func (m *MockBargeRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Barge, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Barge), args.Error(1)
}

func (m *MockBargeRepository) GetByID(ctx context.Context, id string) (*domain.Barge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Barge), args.Error(1)
}

func (m *MockBargeRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBargeRepository) Create(ctx context.Context, barge *domain.Barge) error {
	args := m.Called(ctx, barge)
	return args.Error(0)
}

func (m *MockBargeRepository) Update(ctx context.Context, id string, patch domain.BargePatch) (*domain.Barge, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Barge), args.Error(1)
}

func (m *MockBargeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBargeRepository) DeleteMany(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockBargeRepository) SetStation(ctx context.Context, id string, stationID *string) error {
	args := m.Called(ctx, id, stationID)
	return args.Error(0)
}

// MockTugboatRepository is a mock implementation of TugboatRepository
type MockTugboatRepository struct {
	mock.Mock
}

func (m *MockTugboatRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Tugboat, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tugboat), args.Error(1)
}

func (m *MockTugboatRepository) GetByID(ctx context.Context, id string) (*domain.Tugboat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tugboat), args.Error(1)
}

func (m *MockTugboatRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTugboatRepository) Create(ctx context.Context, tugboat *domain.Tugboat) error {
	args := m.Called(ctx, tugboat)
	return args.Error(0)
}

func (m *MockTugboatRepository) CreateMany(ctx context.Context, tugboats []domain.Tugboat) error {
	args := m.Called(ctx, tugboats)
	return args.Error(0)
}

func (m *MockTugboatRepository) Update(ctx context.Context, id string, patch domain.TugboatPatch) (*domain.Tugboat, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tugboat), args.Error(1)
}

func (m *MockTugboatRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTugboatRepository) DeleteMany(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockTugboatRepository) SetStation(ctx context.Context, id string, stationID *string) error {
	args := m.Called(ctx, id, stationID)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, id string, patch domain.CustomerPatch) (*domain.Customer, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteMany(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockCustomerRepository) SetStation(ctx context.Context, id string, stationID *string) error {
	args := m.Called(ctx, id, stationID)
	return args.Error(0)
}

// MockCustomerStationRepository is a mock implementation of CustomerStationRepository
type MockCustomerStationRepository struct {
	mock.Mock
}

func (m *MockCustomerStationRepository) Link(ctx context.Context, customerID, stationID string) error {
	args := m.Called(ctx, customerID, stationID)
	return args.Error(0)
}

func (m *MockCustomerStationRepository) Unlink(ctx context.Context, customerID, stationID string) error {
	args := m.Called(ctx, customerID, stationID)
	return args.Error(0)
}

func (m *MockCustomerStationRepository) Exists(ctx context.Context, customerID, stationID string) (bool, error) {
	args := m.Called(ctx, customerID, stationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerStationRepository) ListStations(ctx context.Context, customerID string) ([]domain.Station, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}

// MockCarrierRepository is a mock implementation of CarrierRepository
type MockCarrierRepository struct {
	mock.Mock
}

func (m *MockCarrierRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Carrier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) GetByID(ctx context.Context, id string) (*domain.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarrierRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarrierRepository) Create(ctx context.Context, carrier *domain.Carrier) error {
	args := m.Called(ctx, carrier)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, id string, patch domain.CarrierPatch) (*domain.Carrier, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarrierRepository) DeleteMany(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateMany(ctx context.Context, orders []domain.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteMany(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockCostRepository is a mock implementation of CostRepository
type MockCostRepository struct {
	mock.Mock
}

func (m *MockCostRepository) FindAll(ctx context.Context) ([]domain.Cost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cost), args.Error(1)
}

func (m *MockCostRepository) FindByKey(ctx context.Context, key domain.CostKey) (*domain.Cost, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cost), args.Error(1)
}

func (m *MockCostRepository) FindByTugboat(ctx context.Context, tugboatID string) ([]domain.Cost, error) {
	args := m.Called(ctx, tugboatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cost), args.Error(1)
}

func (m *MockCostRepository) FindByOrder(ctx context.Context, orderID string) ([]domain.Cost, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cost), args.Error(1)
}

// MockScheduleRepository is a mock implementation of ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.Schedule, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) Timeline(ctx context.Context, tugboatID, orderID string) ([]domain.Schedule, error) {
	args := m.Called(ctx, tugboatID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) TypePoints(ctx context.Context) ([]domain.ViewScheduleTypePoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ViewScheduleTypePoint), args.Error(1)
}

// MockCacheRepository is a mock implementation of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetStationStats(ctx context.Context) (*domain.StationStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StationStatistics), args.Error(1)
}

func (m *MockCacheRepository) SetStationStats(ctx context.Context, stats *domain.StationStatistics, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateStationStats(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheRepository) GetTypePoints(ctx context.Context) ([]domain.ViewScheduleTypePoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ViewScheduleTypePoint), args.Error(1)
}

func (m *MockCacheRepository) SetTypePoints(ctx context.Context, points []domain.ViewScheduleTypePoint, ttl time.Duration) error {
	args := m.Called(ctx, points, ttl)
	return args.Error(0)
}

// MockStreamRepository is a mock implementation of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64, block time.Duration) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count, block)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ConsumePending(ctx context.Context, stream, group, consumer string, count int64) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}
