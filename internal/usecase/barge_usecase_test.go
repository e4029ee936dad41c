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
	"github.com/fleet-logistics-service/internal/usecase/dto"
)

func TestBargeUseCase_Create(t *testing.T) {
	ctx := context.Background()
	req := dto.CreateBargeRequest{ID: "B1", Name: "Barge One", Weight: 300, Capacity: 1200}

	t.Run("second create conflicts", func(t *testing.T) {
		bargeRepo := &mocks.MockBargeRepository{}
		uc := usecase.NewBargeUseCase(bargeRepo, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, zap.NewNop())

		bargeRepo.On("Exists", mock.Anything, "B1").Return(false, nil).Once()
		bargeRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Barge")).Return(nil).Once()
		bargeRepo.On("GetByID", mock.Anything, "B1").Return(&domain.Barge{ID: "B1", WaterStatus: domain.WaterSea}, nil).Once()

		got, err := uc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, domain.WaterSea, got.WaterStatus)

		bargeRepo.On("Exists", mock.Anything, "B1").Return(true, nil).Once()

		_, err = uc.Create(ctx, req)
		assert.True(t, errors.HasCode(err, errors.CodeConflict))
		bargeRepo.AssertExpectations(t)
	})

	t.Run("zero weight", func(t *testing.T) {
		uc := usecase.NewBargeUseCase(&mocks.MockBargeRepository{}, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, zap.NewNop())

		bad := req
		bad.Weight = 0

		_, err := uc.Create(ctx, bad)
		assert.True(t, errors.HasCode(err, errors.CodeValidation))
	})
}

func TestBargeUseCase_DeleteMany_MissingID(t *testing.T) {
	bargeRepo := &mocks.MockBargeRepository{}
	uc := usecase.NewBargeUseCase(bargeRepo, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, zap.NewNop())

	bargeRepo.On("DeleteMany", mock.Anything, []string{"A", "B"}).Return(errors.NotFound(domain.EntityBarge, "B"))

	err := uc.DeleteMany(context.Background(), []string{"A", "B"})

	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Barge with ID B not found", appErr.Message)
}

func TestBargeUseCase_Update_StationID(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns supplied station", func(t *testing.T) {
		bargeRepo := &mocks.MockBargeRepository{}
		stationRepo := &mocks.MockStationRepository{}
		uc := usecase.NewBargeUseCase(bargeRepo, stationRepo, &mocks.Transactor{}, nil, zap.NewNop())

		stationID := "STA2"
		bargeRepo.On("Exists", mock.Anything, "B1").Return(true, nil)
		stationRepo.On("Exists", mock.Anything, "STA2").Return(true, nil)
		bargeRepo.On("SetStation", mock.Anything, "B1", &stationID).Return(nil).Once()
		bargeRepo.On("Update", mock.Anything, "B1", domain.BargePatch{}).
			Return(&domain.Barge{ID: "B1", StationID: &stationID}, nil)

		got, err := uc.Update(ctx, "B1", dto.UpdateBargeRequest{StationID: &stationID})

		require.NoError(t, err)
		assert.Equal(t, "STA2", *got.StationID)
		bargeRepo.AssertExpectations(t)
	})

	t.Run("empty station clears assignment", func(t *testing.T) {
		bargeRepo := &mocks.MockBargeRepository{}
		stationRepo := &mocks.MockStationRepository{}
		uc := usecase.NewBargeUseCase(bargeRepo, stationRepo, &mocks.Transactor{}, nil, zap.NewNop())

		empty := "  "
		bargeRepo.On("Exists", mock.Anything, "B1").Return(true, nil)
		bargeRepo.On("SetStation", mock.Anything, "B1", (*string)(nil)).Return(nil).Once()
		bargeRepo.On("Update", mock.Anything, "B1", domain.BargePatch{}).Return(&domain.Barge{ID: "B1"}, nil)

		got, err := uc.Update(ctx, "B1", dto.UpdateBargeRequest{StationID: &empty})

		require.NoError(t, err)
		assert.Nil(t, got.StationID)
		bargeRepo.AssertExpectations(t)
		stationRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("unknown station", func(t *testing.T) {
		bargeRepo := &mocks.MockBargeRepository{}
		stationRepo := &mocks.MockStationRepository{}
		uc := usecase.NewBargeUseCase(bargeRepo, stationRepo, &mocks.Transactor{}, nil, zap.NewNop())

		stationID := "NOPE"
		bargeRepo.On("Exists", mock.Anything, "B1").Return(true, nil)
		stationRepo.On("Exists", mock.Anything, "NOPE").Return(false, nil)

		_, err := uc.Update(ctx, "B1", dto.UpdateBargeRequest{StationID: &stationID})

		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
		bargeRepo.AssertNotCalled(t, "SetStation", mock.Anything, mock.Anything, mock.Anything)
		bargeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("absent barge", func(t *testing.T) {
		bargeRepo := &mocks.MockBargeRepository{}
		uc := usecase.NewBargeUseCase(bargeRepo, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, zap.NewNop())

		stationID := "STA2"
		bargeRepo.On("Exists", mock.Anything, "NOPE").Return(false, nil)

		_, err := uc.Update(ctx, "NOPE", dto.UpdateBargeRequest{StationID: &stationID})

		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	})
}
