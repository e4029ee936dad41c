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

func strPtr(s string) *string { return &s }

func TestAssociationManager_AssignUnassignTugboat(t *testing.T) {
	ctx := context.Background()
	tugboatRepo := &mocks.MockTugboatRepository{}
	stationRepo := &mocks.MockStationRepository{}
	streamRepo := &mocks.MockStreamRepository{}
	tx := &mocks.Transactor{}
	events := usecase.NewEventPublisher(streamRepo, domain.StreamFleetEvents, zap.NewNop())

	manager := usecase.NewAssociationManager[*domain.Tugboat](
		domain.EntityTugboat, tugboatRepo, stationRepo, tx, events, zap.NewNop())

	station := &domain.Station{ID: "S1", Name: "North Pier"}
	stationRepo.On("GetByID", mock.Anything, "S1").Return(station, nil)

	// TUG1 уже приписан к S1
	assigned := &domain.Tugboat{ID: "TUG1", StationID: strPtr("S1"), Station: station}
	tugboatRepo.On("GetByID", mock.Anything, "TUG1").Return(assigned, nil).Once()

	_, err := manager.Assign(ctx, "TUG1", "S1")
	assert.True(t, errors.HasCode(err, errors.CodeConflict))
	tugboatRepo.AssertNotCalled(t, "SetStation", mock.Anything, mock.Anything, mock.Anything)

	released := &domain.Tugboat{ID: "TUG1"}
	tugboatRepo.On("GetByID", mock.Anything, "TUG1").Return(assigned, nil).Once()
	tugboatRepo.On("SetStation", mock.Anything, "TUG1", (*string)(nil)).Return(nil).Once()
	tugboatRepo.On("GetByID", mock.Anything, "TUG1").Return(released, nil).Once()
	streamRepo.On("PublishToStream", mock.Anything, domain.StreamFleetEvents, mock.MatchedBy(func(e *domain.FleetEvent) bool {
		return e.Action == domain.ActionUnassigned && e.StationID != nil && *e.StationID == "S1"
	})).Return(nil).Once()

	got, err := manager.Unassign(ctx, "TUG1")
	require.NoError(t, err)
	assert.Nil(t, got.StationID)
	assert.Nil(t, got.Station)

	// Повторное снятие: привязки уже нет
	tugboatRepo.On("GetByID", mock.Anything, "TUG1").Return(released, nil).Once()
	_, err = manager.Unassign(ctx, "TUG1")
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))

	tugboatRepo.AssertExpectations(t)
	streamRepo.AssertExpectations(t)
}

func TestAssociationManager_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("moves barge to another station", func(t *testing.T) {
		bargeRepo := &mocks.MockBargeRepository{}
		stationRepo := &mocks.MockStationRepository{}
		manager := usecase.NewAssociationManager[*domain.Barge](
			domain.EntityBarge, bargeRepo, stationRepo, &mocks.Transactor{}, nil, zap.NewNop())

		s2 := &domain.Station{ID: "S2"}
		bargeRepo.On("GetByID", mock.Anything, "B1").Return(&domain.Barge{ID: "B1", StationID: strPtr("S1")}, nil).Once()
		stationRepo.On("GetByID", mock.Anything, "S2").Return(s2, nil)
		bargeRepo.On("SetStation", mock.Anything, "B1", strPtr("S2")).Return(nil)
		bargeRepo.On("GetByID", mock.Anything, "B1").Return(&domain.Barge{ID: "B1", StationID: strPtr("S2"), Station: s2}, nil).Once()

		got, err := manager.Assign(ctx, "B1", "S2")

		require.NoError(t, err)
		assert.Equal(t, "S2", *got.StationID)
		assert.Equal(t, s2, got.Station)
		bargeRepo.AssertExpectations(t)
	})

	t.Run("unknown station", func(t *testing.T) {
		customerRepo := &mocks.MockCustomerRepository{}
		stationRepo := &mocks.MockStationRepository{}
		manager := usecase.NewAssociationManager[*domain.Customer](
			domain.EntityCustomer, customerRepo, stationRepo, &mocks.Transactor{}, nil, zap.NewNop())

		customerRepo.On("GetByID", mock.Anything, "C1").Return(&domain.Customer{ID: "C1"}, nil)
		stationRepo.On("GetByID", mock.Anything, "NOPE").Return(nil, errors.NotFound(domain.EntityStation, "NOPE"))

		_, err := manager.Assign(ctx, "C1", "NOPE")

		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
		customerRepo.AssertNotCalled(t, "SetStation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown asset", func(t *testing.T) {
		bargeRepo := &mocks.MockBargeRepository{}
		manager := usecase.NewAssociationManager[*domain.Barge](
			domain.EntityBarge, bargeRepo, &mocks.MockStationRepository{}, &mocks.Transactor{}, nil, zap.NewNop())

		bargeRepo.On("GetByID", mock.Anything, "B9").Return(nil, errors.NotFound(domain.EntityBarge, "B9"))

		_, err := manager.Assign(ctx, "B9", "S1")

		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	})
}

func TestStationGuard_CanDeleteStation(t *testing.T) {
	tests := []struct {
		name  string
		usage domain.StationUsage
		want  bool
	}{
		{"unused", domain.StationUsage{}, true},
		{"barge", domain.StationUsage{Barges: 1}, false},
		{"tugboat", domain.StationUsage{Tugboats: 2}, false},
		{"customer", domain.StationUsage{Customers: 1}, false},
		{"customer link", domain.StationUsage{CustomerLinks: 1}, false},
		{"order destination", domain.StationUsage{DestinationOrders: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stationRepo := &mocks.MockStationRepository{}
			stationRepo.On("Usage", mock.Anything, "S1").Return(&tt.usage, nil)

			ok, err := usecase.NewStationGuard(stationRepo).CanDeleteStation(context.Background(), "S1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
