package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository/mocks"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"github.com/fleet-logistics-service/internal/usecase"
)

func TestCostUseCase_GetByLegacyID(t *testing.T) {
	ctx := context.Background()

	t.Run("splits on first hyphen", func(t *testing.T) {
		costRepo := &mocks.MockCostRepository{}
		uc := usecase.NewCostUseCase(costRepo, zap.NewNop())

		key := domain.CostKey{TugboatID: "TUG1", OrderID: "order-77"}
		costRepo.On("FindByKey", mock.Anything, key).Return(&domain.Cost{TugboatID: "TUG1", OrderID: "order-77", Cost: 9.5}, nil)

		got, err := uc.GetByLegacyID(ctx, "TUG1-order-77")

		require.NoError(t, err)
		assert.Equal(t, 9.5, got.Cost)
		costRepo.AssertExpectations(t)
	})

	t.Run("malformed key", func(t *testing.T) {
		costRepo := &mocks.MockCostRepository{}
		uc := usecase.NewCostUseCase(costRepo, zap.NewNop())

		for _, id := range []string{"TUG1", "-O1", "TUG1-"} {
			_, err := uc.GetByLegacyID(ctx, id)
			assert.True(t, errors.HasCode(err, errors.CodeValidation), id)
		}
		costRepo.AssertNotCalled(t, "FindByKey", mock.Anything, mock.Anything)
	})

	t.Run("absent row", func(t *testing.T) {
		costRepo := &mocks.MockCostRepository{}
		uc := usecase.NewCostUseCase(costRepo, zap.NewNop())

		costRepo.On("FindByKey", mock.Anything, domain.CostKey{TugboatID: "TUG9", OrderID: "O9"}).
			Return(nil, errors.NotFound(domain.EntityCost, "TUG9-O9"))

		_, err := uc.GetByLegacyID(ctx, "TUG9-O9")

		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	})
}

func TestCostUseCase_GetByKey_HyphenatedTugboat(t *testing.T) {
	costRepo := &mocks.MockCostRepository{}
	uc := usecase.NewCostUseCase(costRepo, zap.NewNop())

	key := domain.CostKey{TugboatID: "TUG-1", OrderID: "O1"}
	costRepo.On("FindByKey", mock.Anything, key).Return(&domain.Cost{TugboatID: "TUG-1", OrderID: "O1"}, nil)

	got, err := uc.GetByKey(context.Background(), "TUG-1", "O1")

	require.NoError(t, err)
	assert.Equal(t, "TUG-1", got.TugboatID)
}
