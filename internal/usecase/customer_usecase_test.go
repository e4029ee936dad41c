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

func TestCustomerUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed email", func(t *testing.T) {
		customerRepo := &mocks.MockCustomerRepository{}
		uc := usecase.NewCustomerUseCase(customerRepo, nil, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, zap.NewNop())

		_, err := uc.Create(ctx, dto.CreateCustomerRequest{
			ID: "C1", Name: "Acme", Email: "not-an-email", Address: "1 Dock Rd",
		})

		assert.True(t, errors.HasCode(err, errors.CodeValidation))
		customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email ignoring case", func(t *testing.T) {
		customerRepo := &mocks.MockCustomerRepository{}
		uc := usecase.NewCustomerUseCase(customerRepo, nil, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, zap.NewNop())

		customerRepo.On("Exists", mock.Anything, "C2").Return(false, nil)
		customerRepo.On("EmailTaken", mock.Anything, "OPS@acme.com", "").Return(true, nil)

		_, err := uc.Create(ctx, dto.CreateCustomerRequest{
			ID: "C2", Name: "Acme 2", Email: "OPS@acme.com", Address: "2 Dock Rd",
		})

		assert.True(t, errors.HasCode(err, errors.CodeConflict))
	})

	t.Run("success", func(t *testing.T) {
		customerRepo := &mocks.MockCustomerRepository{}
		stationRepo := &mocks.MockStationRepository{}
		uc := usecase.NewCustomerUseCase(customerRepo, nil, stationRepo, &mocks.Transactor{}, nil, zap.NewNop())

		customerRepo.On("Exists", mock.Anything, "C1").Return(false, nil)
		customerRepo.On("EmailTaken", mock.Anything, "ops@acme.com", "").Return(false, nil)
		stationRepo.On("Exists", mock.Anything, "S1").Return(true, nil)
		customerRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)
		customerRepo.On("GetByID", mock.Anything, "C1").
			Return(&domain.Customer{ID: "C1", Email: "ops@acme.com", StationID: strPtr("S1")}, nil)

		got, err := uc.Create(ctx, dto.CreateCustomerRequest{
			ID: "C1", Name: "Acme", Email: " ops@acme.com ", Address: "1 Dock Rd", StationID: strPtr("S1"),
		})

		require.NoError(t, err)
		assert.Equal(t, "S1", *got.StationID)
		customerRepo.AssertExpectations(t)
	})
}

func TestCustomerUseCase_Update_EmailExcludesSelf(t *testing.T) {
	customerRepo := &mocks.MockCustomerRepository{}
	uc := usecase.NewCustomerUseCase(customerRepo, nil, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, zap.NewNop())

	email := "ops@acme.com"
	customerRepo.On("Exists", mock.Anything, "C1").Return(true, nil)
	customerRepo.On("EmailTaken", mock.Anything, email, "C1").Return(false, nil)
	customerRepo.On("Update", mock.Anything, "C1", domain.CustomerPatch{Email: &email}).
		Return(&domain.Customer{ID: "C1", Email: email}, nil)

	got, err := uc.Update(context.Background(), "C1", dto.UpdateCustomerRequest{Email: &email})

	require.NoError(t, err)
	assert.Equal(t, email, got.Email)
	customerRepo.AssertExpectations(t)
}

func TestCustomerUseCase_LinkedStations(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		uc := usecase.NewCustomerUseCase(&mocks.MockCustomerRepository{}, nil, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, zap.NewNop())

		assert.False(t, uc.LinksEnabled())
		_, err := uc.LinkStation(ctx, "C1", "S1")
		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	})

	t.Run("link and expand on get", func(t *testing.T) {
		customerRepo := &mocks.MockCustomerRepository{}
		linkRepo := &mocks.MockCustomerStationRepository{}
		stationRepo := &mocks.MockStationRepository{}
		uc := usecase.NewCustomerUseCase(customerRepo, linkRepo, stationRepo, &mocks.Transactor{}, nil, zap.NewNop())

		stations := []domain.Station{{ID: "S1"}, {ID: "S2"}}
		customerRepo.On("Exists", mock.Anything, "C1").Return(true, nil)
		stationRepo.On("Exists", mock.Anything, "S2").Return(true, nil)
		linkRepo.On("Link", mock.Anything, "C1", "S2").Return(nil)
		linkRepo.On("ListStations", mock.Anything, "C1").Return(stations, nil)
		customerRepo.On("GetByID", mock.Anything, "C1").Return(&domain.Customer{ID: "C1", StationID: strPtr("S1")}, nil)

		linked, err := uc.LinkStation(ctx, "C1", "S2")
		require.NoError(t, err)
		assert.Len(t, linked, 2)

		got, err := uc.GetByID(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, stations, got.Stations)
		assert.Equal(t, "S1", *got.StationID)
	})

	t.Run("unlink missing link", func(t *testing.T) {
		customerRepo := &mocks.MockCustomerRepository{}
		linkRepo := &mocks.MockCustomerStationRepository{}
		stationRepo := &mocks.MockStationRepository{}
		uc := usecase.NewCustomerUseCase(customerRepo, linkRepo, stationRepo, &mocks.Transactor{}, nil, zap.NewNop())

		customerRepo.On("Exists", mock.Anything, "C1").Return(true, nil)
		stationRepo.On("Exists", mock.Anything, "S3").Return(true, nil)
		linkRepo.On("Unlink", mock.Anything, "C1", "S3").
			Return(errors.NotFound(domain.EntityCustomerStation, "C1/S3"))

		_, err := uc.UnlinkStation(ctx, "C1", "S3")

		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	})
}

func TestCarrierUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name", func(t *testing.T) {
		carrierRepo := &mocks.MockCarrierRepository{}
		uc := usecase.NewCarrierUseCase(carrierRepo, &mocks.Transactor{}, nil, zap.NewNop())

		carrierRepo.On("Exists", mock.Anything, "CR1").Return(false, nil)
		carrierRepo.On("NameTaken", mock.Anything, "Ocean Star", "").Return(true, nil)

		_, err := uc.Create(ctx, dto.CreateCarrierRequest{ID: "CR1", Name: "Ocean Star"})

		assert.True(t, errors.HasCode(err, errors.CodeConflict))
	})

	t.Run("rename checks other carriers only", func(t *testing.T) {
		carrierRepo := &mocks.MockCarrierRepository{}
		uc := usecase.NewCarrierUseCase(carrierRepo, &mocks.Transactor{}, nil, zap.NewNop())

		name := "Ocean Star"
		carrierRepo.On("Exists", mock.Anything, "CR1").Return(true, nil)
		carrierRepo.On("NameTaken", mock.Anything, name, "CR1").Return(false, nil)
		carrierRepo.On("Update", mock.Anything, "CR1", domain.CarrierPatch{Name: &name}).
			Return(&domain.Carrier{ID: "CR1", Name: name}, nil)

		got, err := uc.Update(ctx, "CR1", dto.UpdateCarrierRequest{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
	})

	t.Run("missing carrier wins over taken name", func(t *testing.T) {
		carrierRepo := &mocks.MockCarrierRepository{}
		uc := usecase.NewCarrierUseCase(carrierRepo, &mocks.Transactor{}, nil, zap.NewNop())

		name := "Ocean Star"
		carrierRepo.On("Exists", mock.Anything, "NOPE").Return(false, nil)
		carrierRepo.On("NameTaken", mock.Anything, name, "NOPE").Return(true, nil)

		_, err := uc.Update(ctx, "NOPE", dto.UpdateCarrierRequest{Name: &name})

		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
		carrierRepo.AssertNotCalled(t, "NameTaken", mock.Anything, mock.Anything, mock.Anything)
		carrierRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delete many reports missing id", func(t *testing.T) {
		carrierRepo := &mocks.MockCarrierRepository{}
		uc := usecase.NewCarrierUseCase(carrierRepo, &mocks.Transactor{}, nil, zap.NewNop())

		carrierRepo.On("DeleteMany", mock.Anything, []string{"A", "B"}).
			Return(errors.NotFound(domain.EntityCarrier, "B"))

		err := uc.DeleteMany(ctx, []string{"A", "B"})

		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	})
}
