package usecase_test

import (
	"context"
	"strings"
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

func validTugboatRequest() dto.CreateTugboatRequest {
	return dto.CreateTugboatRequest{
		ID:          "TUG1",
		Name:        "Valiant",
		MaxCapacity: 5000,
		MaxBarge:    4,
		MaxFuelCon:  120,
		Type:        "sea",
		MinSpeed:    4,
		MaxSpeed:    12,
		EngineRpm:   1800,
		HorsePower:  2400,
	}
}

func TestTugboatUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("min speed must be below max speed", func(t *testing.T) {
		tugboatRepo := &mocks.MockTugboatRepository{}
		uc := usecase.NewTugboatUseCase(tugboatRepo, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, usecase.ImportMode{}, zap.NewNop())

		req := validTugboatRequest()
		req.MinSpeed = 12
		req.MaxSpeed = 12

		_, err := uc.Create(ctx, req)

		assert.True(t, errors.HasCode(err, errors.CodeValidation))
		tugboatRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non-positive horse power", func(t *testing.T) {
		uc := usecase.NewTugboatUseCase(&mocks.MockTugboatRepository{}, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, usecase.ImportMode{}, zap.NewNop())

		req := validTugboatRequest()
		req.HorsePower = 0

		_, err := uc.Create(ctx, req)

		appErr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.CodeValidation, appErr.Code)
		assert.Contains(t, appErr.Details, "horsePower")
	})

	t.Run("unknown station", func(t *testing.T) {
		tugboatRepo := &mocks.MockTugboatRepository{}
		stationRepo := &mocks.MockStationRepository{}
		uc := usecase.NewTugboatUseCase(tugboatRepo, stationRepo, &mocks.Transactor{}, nil, usecase.ImportMode{}, zap.NewNop())

		tugboatRepo.On("Exists", mock.Anything, "TUG1").Return(false, nil)
		stationRepo.On("Exists", mock.Anything, "S404").Return(false, nil)

		req := validTugboatRequest()
		req.StationID = strPtr("S404")

		_, err := uc.Create(ctx, req)

		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	})

	t.Run("success defaults ready time", func(t *testing.T) {
		tugboatRepo := &mocks.MockTugboatRepository{}
		uc := usecase.NewTugboatUseCase(tugboatRepo, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, usecase.ImportMode{}, zap.NewNop())

		tugboatRepo.On("Exists", mock.Anything, "TUG1").Return(false, nil)
		tugboatRepo.On("Create", mock.Anything, mock.MatchedBy(func(tb *domain.Tugboat) bool {
			return tb.Type == domain.WaterSea && !tb.ReadyDatetime.IsZero() && tb.StationID == nil
		})).Return(nil)
		tugboatRepo.On("GetByID", mock.Anything, "TUG1").Return(&domain.Tugboat{ID: "TUG1"}, nil)

		got, err := uc.Create(ctx, validTugboatRequest())

		require.NoError(t, err)
		assert.Equal(t, "TUG1", got.ID)
		tugboatRepo.AssertExpectations(t)
	})
}

func TestTugboatUseCase_Update_SpeedCheckedOnMergedRecord(t *testing.T) {
	ctx := context.Background()
	current := &domain.Tugboat{ID: "TUG1", MinSpeed: 4, MaxSpeed: 12}

	t.Run("raising min above stored max fails", func(t *testing.T) {
		tugboatRepo := &mocks.MockTugboatRepository{}
		uc := usecase.NewTugboatUseCase(tugboatRepo, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, usecase.ImportMode{}, zap.NewNop())

		tugboatRepo.On("GetByID", mock.Anything, "TUG1").Return(current, nil)
		minSpeed := 15.0

		_, err := uc.Update(ctx, "TUG1", dto.UpdateTugboatRequest{MinSpeed: &minSpeed})

		assert.True(t, errors.HasCode(err, errors.CodeValidation))
		tugboatRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("raising both bounds succeeds", func(t *testing.T) {
		tugboatRepo := &mocks.MockTugboatRepository{}
		uc := usecase.NewTugboatUseCase(tugboatRepo, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, usecase.ImportMode{}, zap.NewNop())

		minSpeed, maxSpeed := 15.0, 20.0
		updated := &domain.Tugboat{ID: "TUG1", MinSpeed: minSpeed, MaxSpeed: maxSpeed}
		tugboatRepo.On("GetByID", mock.Anything, "TUG1").Return(current, nil)
		tugboatRepo.On("Update", mock.Anything, "TUG1", domain.TugboatPatch{MinSpeed: &minSpeed, MaxSpeed: &maxSpeed}).
			Return(updated, nil)

		got, err := uc.Update(ctx, "TUG1", dto.UpdateTugboatRequest{MinSpeed: &minSpeed, MaxSpeed: &maxSpeed})

		require.NoError(t, err)
		assert.Equal(t, 20.0, got.MaxSpeed)
	})

	t.Run("absent tugboat", func(t *testing.T) {
		tugboatRepo := &mocks.MockTugboatRepository{}
		uc := usecase.NewTugboatUseCase(tugboatRepo, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, usecase.ImportMode{}, zap.NewNop())

		tugboatRepo.On("GetByID", mock.Anything, "NOPE").Return(nil, errors.NotFound(domain.EntityTugboat, "NOPE"))

		_, err := uc.Update(ctx, "NOPE", dto.UpdateTugboatRequest{})

		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	})
}

func TestTugboatUseCase_Update_StationID(t *testing.T) {
	ctx := context.Background()
	current := &domain.Tugboat{ID: "TUG1", MinSpeed: 4, MaxSpeed: 12}

	t.Run("assigns supplied station", func(t *testing.T) {
		tugboatRepo := &mocks.MockTugboatRepository{}
		stationRepo := &mocks.MockStationRepository{}
		uc := usecase.NewTugboatUseCase(tugboatRepo, stationRepo, &mocks.Transactor{}, nil, usecase.ImportMode{}, zap.NewNop())

		stationID := "STA2"
		tugboatRepo.On("GetByID", mock.Anything, "TUG1").Return(current, nil)
		stationRepo.On("Exists", mock.Anything, "STA2").Return(true, nil)
		tugboatRepo.On("SetStation", mock.Anything, "TUG1", &stationID).Return(nil).Once()
		tugboatRepo.On("Update", mock.Anything, "TUG1", domain.TugboatPatch{}).
			Return(&domain.Tugboat{ID: "TUG1", StationID: &stationID}, nil)

		got, err := uc.Update(ctx, "TUG1", dto.UpdateTugboatRequest{StationID: &stationID})

		require.NoError(t, err)
		assert.Equal(t, "STA2", *got.StationID)
		tugboatRepo.AssertExpectations(t)
	})

	t.Run("empty station clears assignment", func(t *testing.T) {
		tugboatRepo := &mocks.MockTugboatRepository{}
		stationRepo := &mocks.MockStationRepository{}
		uc := usecase.NewTugboatUseCase(tugboatRepo, stationRepo, &mocks.Transactor{}, nil, usecase.ImportMode{}, zap.NewNop())

		empty := ""
		tugboatRepo.On("GetByID", mock.Anything, "TUG1").Return(current, nil)
		tugboatRepo.On("SetStation", mock.Anything, "TUG1", (*string)(nil)).Return(nil).Once()
		tugboatRepo.On("Update", mock.Anything, "TUG1", domain.TugboatPatch{}).Return(&domain.Tugboat{ID: "TUG1"}, nil)

		got, err := uc.Update(ctx, "TUG1", dto.UpdateTugboatRequest{StationID: &empty})

		require.NoError(t, err)
		assert.Nil(t, got.StationID)
		tugboatRepo.AssertExpectations(t)
		stationRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("unknown station", func(t *testing.T) {
		tugboatRepo := &mocks.MockTugboatRepository{}
		stationRepo := &mocks.MockStationRepository{}
		uc := usecase.NewTugboatUseCase(tugboatRepo, stationRepo, &mocks.Transactor{}, nil, usecase.ImportMode{}, zap.NewNop())

		stationID := "NOPE"
		tugboatRepo.On("GetByID", mock.Anything, "TUG1").Return(current, nil)
		stationRepo.On("Exists", mock.Anything, "NOPE").Return(false, nil)

		_, err := uc.Update(ctx, "TUG1", dto.UpdateTugboatRequest{StationID: &stationID})

		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
		tugboatRepo.AssertNotCalled(t, "SetStation", mock.Anything, mock.Anything, mock.Anything)
		tugboatRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

const tugboatCSV = `Id,Name,MaxCapacity,MaxBarge,MaxFuelCon,Type,MinSpeed,MaxSpeed,EngineRpm,HorsePower,WaterStatus,ReadyDateTime,StationId
TUG1,Valiant,5000,4,120,sea,4,12,1800,2400,SEA,2024-03-01T08:00:00Z,S1
TUG2,Resolute,4000.7,3,100,river,3,9,1600,2000,river,,
`

func TestTugboatUseCase_Import(t *testing.T) {
	tugboatRepo := &mocks.MockTugboatRepository{}
	stationRepo := &mocks.MockStationRepository{}
	uc := usecase.NewTugboatUseCase(tugboatRepo, stationRepo, &mocks.Transactor{}, nil, usecase.ImportMode{}, zap.NewNop())

	stationRepo.On("Exists", mock.Anything, "S1").Return(true, nil)
	tugboatRepo.On("CreateMany", mock.Anything, mock.MatchedBy(func(ts []domain.Tugboat) bool {
		return len(ts) == 2 &&
			ts[0].ID == "TUG1" && *ts[0].StationID == "S1" &&
			ts[1].MaxCapacity == 4000 && ts[1].Type == domain.WaterRiver &&
			ts[1].StationID == nil && !ts[1].ReadyDatetime.IsZero()
	})).Return(nil)

	resp, err := uc.Import(context.Background(), strings.NewReader(tugboatCSV))

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Imported)
	assert.Empty(t, resp.Issues)
	tugboatRepo.AssertExpectations(t)
}

func TestTugboatUseCase_Import_MissingIDRejected(t *testing.T) {
	tugboatRepo := &mocks.MockTugboatRepository{}
	uc := usecase.NewTugboatUseCase(tugboatRepo, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, usecase.ImportMode{}, zap.NewNop())

	csv := "Id,Name,MinSpeed,MaxSpeed\n,Nameless,1,2\n"

	_, err := uc.Import(context.Background(), strings.NewReader(csv))

	assert.True(t, errors.HasCode(err, errors.CodeValidation))
	tugboatRepo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
}
