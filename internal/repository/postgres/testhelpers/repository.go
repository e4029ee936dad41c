package testhelpers

import (
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Repositories - все репозитории поверх одной тестовой БД
type Repositories struct {
	Transactor       repository.Transactor
	Stations         repository.StationRepository
	Barges           repository.BargeRepository
	Tugboats         repository.TugboatRepository
	Customers        repository.CustomerRepository
	CustomerStations repository.CustomerStationRepository
	Carriers         repository.CarrierRepository
	Orders           repository.OrderRepository
	Costs            repository.CostRepository
	Schedules        repository.ScheduleRepository
}

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewRepositoriesForTest создаёт все репозитории с тестовой БД и логгером
func NewRepositoriesForTest(db *sqlx.DB, logger *zap.Logger) *Repositories {
	pgDB := NewDBForTest(db, logger)
	return &Repositories{
		Transactor:       postgres.NewTransactor(pgDB),
		Stations:         postgres.NewStationRepository(pgDB),
		Barges:           postgres.NewBargeRepository(pgDB),
		Tugboats:         postgres.NewTugboatRepository(pgDB),
		Customers:        postgres.NewCustomerRepository(pgDB),
		CustomerStations: postgres.NewCustomerStationRepository(pgDB),
		Carriers:         postgres.NewCarrierRepository(pgDB),
		Orders:           postgres.NewOrderRepository(pgDB),
		Costs:            postgres.NewCostRepository(pgDB),
		Schedules:        postgres.NewScheduleRepository(pgDB),
	}
}
