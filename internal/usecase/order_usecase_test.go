package usecase_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository/mocks"
	"github.com/fleet-logistics-service/internal/pkg/csvimport"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"github.com/fleet-logistics-service/internal/usecase"
	"github.com/fleet-logistics-service/internal/usecase/dto"
)

var synthesizedOrderID = regexp.MustCompile(`^order_\d+_[0-9a-f]{8}$`)

func newOrderUseCase(orderRepo *mocks.MockOrderRepository, stationRepo *mocks.MockStationRepository, strict bool) *usecase.OrderUseCase {
	return usecase.NewOrderUseCase(orderRepo, stationRepo, &mocks.Transactor{}, nil, usecase.ImportMode{Strict: strict}, zap.NewNop())
}

func TestOrderUseCase_Create(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("synthesizes id", func(t *testing.T) {
		orderRepo := &mocks.MockOrderRepository{}
		uc := newOrderUseCase(orderRepo, &mocks.MockStationRepository{}, false)

		var createdID string
		orderRepo.On("Exists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
		orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).
			Run(func(args mock.Arguments) {
				createdID = args.Get(1).(*domain.Order).ID
			}).Return(nil)
		orderRepo.On("GetByID", mock.Anything, mock.AnythingOfType("string")).
			Return(&domain.Order{Type: domain.OrderImport}, nil)

		_, err := uc.Create(ctx, dto.CreateOrderRequest{
			Type:          "IMPORT",
			StartDateTime: start,
			DueDateTime:   start.Add(48 * time.Hour),
		})

		require.NoError(t, err)
		assert.Regexp(t, synthesizedOrderID, createdID)
	})

	t.Run("due before start", func(t *testing.T) {
		orderRepo := &mocks.MockOrderRepository{}
		uc := newOrderUseCase(orderRepo, &mocks.MockStationRepository{}, false)

		_, err := uc.Create(ctx, dto.CreateOrderRequest{
			ID:            "O1",
			Type:          "export",
			StartDateTime: start,
			DueDateTime:   start.Add(-time.Hour),
		})

		assert.True(t, errors.HasCode(err, errors.CodeValidation))
		orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown destination station", func(t *testing.T) {
		orderRepo := &mocks.MockOrderRepository{}
		stationRepo := &mocks.MockStationRepository{}
		uc := newOrderUseCase(orderRepo, stationRepo, false)

		orderRepo.On("Exists", mock.Anything, "O1").Return(false, nil)
		stationRepo.On("Exists", mock.Anything, "S404").Return(false, nil)

		_, err := uc.Create(ctx, dto.CreateOrderRequest{
			ID:            "O1",
			Type:          "export",
			DestStationID: strPtr("S404"),
			StartDateTime: start,
			DueDateTime:   start.Add(time.Hour),
		})

		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	})
}

func TestOrderUseCase_Update_CraneFields(t *testing.T) {
	orderRepo := &mocks.MockOrderRepository{}
	uc := newOrderUseCase(orderRepo, &mocks.MockStationRepository{}, false)

	cr3 := 2.5
	current := &domain.Order{ID: "O1", StartDateTime: time.Now(), DueDateTime: time.Now().Add(time.Hour)}
	orderRepo.On("GetByID", mock.Anything, "O1").Return(current, nil)
	orderRepo.On("Update", mock.Anything, "O1", mock.MatchedBy(func(p domain.OrderPatch) bool {
		return p.Cranes[2] != nil && *p.Cranes[2] == 2.5 && p.Cranes[0] == nil
	})).Return(&domain.Order{ID: "O1", CR3: cr3}, nil)

	got, err := uc.Update(context.Background(), "O1", dto.UpdateOrderRequest{CR3: &cr3})

	require.NoError(t, err)
	assert.Equal(t, 2.5, got.CR3)
	orderRepo.AssertExpectations(t)
}

func TestOrderUseCase_Update_EmptyStationNotWritten(t *testing.T) {
	orderRepo := &mocks.MockOrderRepository{}
	stationRepo := &mocks.MockStationRepository{}
	uc := newOrderUseCase(orderRepo, stationRepo, false)

	start, dest := "", " STA2 "
	current := &domain.Order{ID: "O1", StartDateTime: time.Now(), DueDateTime: time.Now().Add(time.Hour)}
	orderRepo.On("GetByID", mock.Anything, "O1").Return(current, nil)
	stationRepo.On("Exists", mock.Anything, "STA2").Return(true, nil)
	orderRepo.On("Update", mock.Anything, "O1", mock.MatchedBy(func(p domain.OrderPatch) bool {
		return p.StartStationID == nil && p.DestStationID != nil && *p.DestStationID == "STA2"
	})).Return(&domain.Order{ID: "O1"}, nil)

	_, err := uc.Update(context.Background(), "O1", dto.UpdateOrderRequest{StartStationID: &start, DestStationID: &dest})

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	stationRepo.AssertNumberOfCalls(t, "Exists", 1)
}

const orderCSV = `Id,Type,FromPoint,DestPoint,ProductName,Demand,StartDateTime,DueDateTime,LoadingRate,CR1,CR2,CR3,CR4,CR5,CR6,CR7,TimeReadyCR1,TimeReadyCR2,TimeReadyCR3,TimeReadyCR4,TimeReadyCR5,TimeReadyCR6,TimeReadyCR7
O1,Import,Bangkok,Sriracha,Sugar,1200,2024-03-01T08:00:00Z,2024-03-05T08:00:00Z,50,1,2,3,4,5,6,7,0.5,0.5,0.5,0.5,0.5,0.5,0.5

,export,Sriracha,Bangkok,Rice,abc,2024-03-02T08:00:00Z,2024-03-06T08:00:00Z,40,1,1,1,1,1,1,1,0,0,0,0,0,0,0
`

func TestOrderUseCase_Import_Lenient(t *testing.T) {
	orderRepo := &mocks.MockOrderRepository{}
	uc := newOrderUseCase(orderRepo, &mocks.MockStationRepository{}, false)

	orderRepo.On("CreateMany", mock.Anything, mock.MatchedBy(func(orders []domain.Order) bool {
		return len(orders) == 2 &&
			orders[0].ID == "O1" && orders[0].Type == domain.OrderImport && orders[0].CR7 == 7 &&
			synthesizedOrderID.MatchString(orders[1].ID) && orders[1].Demand == 0
	})).Return(nil)

	resp, err := uc.Import(context.Background(), strings.NewReader(orderCSV))

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Imported)
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, csvimport.Issue{Line: 4, Column: "Demand", Value: "abc", Reason: "not a number"}, resp.Issues[0])
	orderRepo.AssertExpectations(t)
}

func TestOrderUseCase_Import_Strict(t *testing.T) {
	orderRepo := &mocks.MockOrderRepository{}
	uc := newOrderUseCase(orderRepo, &mocks.MockStationRepository{}, true)

	_, err := uc.Import(context.Background(), strings.NewReader(orderCSV))

	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Details, "issues")
	orderRepo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
}

func TestOrderUseCase_Import_Rejections(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		code string
	}{
		{"empty file", "", errors.CodeInvalidRequest},
		{"unknown type", "Id,Type\nO1,transfer\n", errors.CodeValidation},
		{"ragged row", "Id,Type\nO1,import,extra\n", errors.CodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := &mocks.MockOrderRepository{}
			uc := newOrderUseCase(orderRepo, &mocks.MockStationRepository{}, false)

			_, err := uc.Import(context.Background(), strings.NewReader(tt.csv))

			assert.True(t, errors.HasCode(err, tt.code), "got %v", err)
			orderRepo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderUseCase_Import_StoreFailureRejectsAll(t *testing.T) {
	orderRepo := &mocks.MockOrderRepository{}
	uc := newOrderUseCase(orderRepo, &mocks.MockStationRepository{}, false)

	orderRepo.On("CreateMany", mock.Anything, mock.Anything).Return(errors.AlreadyExists(domain.EntityOrder, "ID", "O1"))

	resp, err := uc.Import(context.Background(), strings.NewReader(orderCSV))

	assert.Nil(t, resp)
	assert.True(t, errors.HasCode(err, errors.CodeConflict))
}
