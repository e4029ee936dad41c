package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository/mocks"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"github.com/fleet-logistics-service/internal/usecase"
	"github.com/fleet-logistics-service/internal/usecase/dto"
)

func TestScheduleUseCase_ByTugboatAndOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("exact filters", func(t *testing.T) {
		scheduleRepo := &mocks.MockScheduleRepository{}
		uc := usecase.NewScheduleUseCase(scheduleRepo, &mocks.MockCacheRepository{}, time.Minute, zap.NewNop())

		enter := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
		scheduleRepo.On("List", mock.Anything, mock.MatchedBy(func(f domain.ScheduleFilter) bool {
			return f.TugboatID == "TUG1" && f.OrderID == "O1" && f.TypePoint == "main_point" &&
				f.EnterDatetime != nil && f.EnterDatetime.Equal(enter) && f.ExitDatetime == nil
		})).Return([]domain.Schedule{{ID: "E1"}}, nil)

		got, err := uc.ByTugboatAndOrder(ctx, "TUG1", "O1", dto.ScheduleQuery{
			TypePoint:     "main_point",
			EnterDatetime: "2024-03-01T08:00:00Z",
		})

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		scheduleRepo := &mocks.MockScheduleRepository{}
		uc := usecase.NewScheduleUseCase(scheduleRepo, &mocks.MockCacheRepository{}, time.Minute, zap.NewNop())

		_, err := uc.ByTugboatAndOrder(ctx, "TUG1", "O1", dto.ScheduleQuery{ExitDatetime: "yesterday"})

		assert.True(t, errors.HasCode(err, errors.CodeValidation))
		scheduleRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestScheduleUseCase_Timeline(t *testing.T) {
	scheduleRepo := &mocks.MockScheduleRepository{}
	uc := usecase.NewScheduleUseCase(scheduleRepo, &mocks.MockCacheRepository{}, time.Minute, zap.NewNop())

	scheduleRepo.On("Timeline", mock.Anything, "TUG1", "").Return([]domain.Schedule{}, nil)

	got, err := uc.Timeline(context.Background(), dto.TimelineQuery{TugboatID: " TUG1 "})

	require.NoError(t, err)
	assert.Empty(t, got)
	scheduleRepo.AssertExpectations(t)
}

func TestScheduleUseCase_TypePoints(t *testing.T) {
	ctx := context.Background()
	points := []domain.ViewScheduleTypePoint{{TypePoint: "main_point"}, {TypePoint: "barge_collect"}}

	t.Run("cache miss loads view and caches", func(t *testing.T) {
		scheduleRepo := &mocks.MockScheduleRepository{}
		cacheRepo := &mocks.MockCacheRepository{}
		uc := usecase.NewScheduleUseCase(scheduleRepo, cacheRepo, time.Minute, zap.NewNop())

		cacheRepo.On("GetTypePoints", mock.Anything).Return(nil, nil)
		scheduleRepo.On("TypePoints", mock.Anything).Return(points, nil)
		cacheRepo.On("SetTypePoints", mock.Anything, points, time.Minute).Return(nil)

		got, err := uc.TypePoints(ctx)

		require.NoError(t, err)
		assert.Equal(t, points, got)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("cache hit", func(t *testing.T) {
		scheduleRepo := &mocks.MockScheduleRepository{}
		cacheRepo := &mocks.MockCacheRepository{}
		uc := usecase.NewScheduleUseCase(scheduleRepo, cacheRepo, time.Minute, zap.NewNop())

		cacheRepo.On("GetTypePoints", mock.Anything).Return(points, nil)

		got, err := uc.TypePoints(ctx)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		scheduleRepo.AssertNotCalled(t, "TypePoints", mock.Anything)
	})
}
