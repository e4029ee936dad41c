package repository

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
)

// CostRepository - чтение рассчитанных стоимостей
type CostRepository interface {
	FindAll(ctx context.Context) ([]domain.Cost, error)

	// FindByKey ищет строку по составному ключу, NotFound если её нет
	FindByKey(ctx context.Context, key domain.CostKey) (*domain.Cost, error)

	FindByTugboat(ctx context.Context, tugboatID string) ([]domain.Cost, error)
	FindByOrder(ctx context.Context, orderID string) ([]domain.Cost, error)
}
