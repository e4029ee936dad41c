package usecase

import (
	"context"
	"strings"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// CostUseCase - чтение рассчитанных стоимостей
type CostUseCase struct {
	costRepo repository.CostRepository
	logger   *zap.Logger
}

func NewCostUseCase(costRepo repository.CostRepository, logger *zap.Logger) *CostUseCase {
	return &CostUseCase{
		costRepo: costRepo,
		logger:   logger,
	}
}

func (uc *CostUseCase) List(ctx context.Context) ([]domain.Cost, error) {
	return uc.costRepo.FindAll(ctx)
}

// GetByLegacyID ищет стоимость по строковому ключу "tugboatId-orderId".
// Ключ делится по первому дефису
func (uc *CostUseCase) GetByLegacyID(ctx context.Context, id string) (*domain.Cost, error) {
	key, ok := domain.ParseCostKey(strings.TrimSpace(id))
	if !ok {
		return nil, errors.Validation("cost id must have the form tugboatId-orderId").
			WithDetails(map[string]interface{}{"id": id})
	}
	return uc.costRepo.FindByKey(ctx, key)
}

// GetByKey ищет стоимость по структурированному ключу
func (uc *CostUseCase) GetByKey(ctx context.Context, tugboatID, orderID string) (*domain.Cost, error) {
	key := domain.CostKey{
		TugboatID: strings.TrimSpace(tugboatID),
		OrderID:   strings.TrimSpace(orderID),
	}
	if key.TugboatID == "" || key.OrderID == "" {
		return nil, errors.Validation("tugboatId and orderId are required")
	}
	return uc.costRepo.FindByKey(ctx, key)
}

func (uc *CostUseCase) ByTugboat(ctx context.Context, tugboatID string) ([]domain.Cost, error) {
	return uc.costRepo.FindByTugboat(ctx, tugboatID)
}

func (uc *CostUseCase) ByOrder(ctx context.Context, orderID string) ([]domain.Cost, error) {
	return uc.costRepo.FindByOrder(ctx, orderID)
}
