package stats_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository/mocks"
	"github.com/fleet-logistics-service/internal/worker/stats"
)

type mockRefresher struct {
	mock.Mock
}

func (m *mockRefresher) RefreshStatistics(ctx context.Context) (*domain.StationStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StationStatistics), args.Error(1)
}

func eventMessage(t *testing.T, id string, event *domain.FleetEvent) domain.StreamMessage {
	t.Helper()
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(raw)}
}

func newWorker(streamRepo *mocks.MockStreamRepository, refresher *mockRefresher) *stats.StationStatsWorker {
	return stats.NewStationStatsWorker(streamRepo, refresher, "stats-group", "test-1", 10*time.Millisecond, zap.NewNop())
}

func TestStationStatsWorker_Name(t *testing.T) {
	w := newWorker(&mocks.MockStreamRepository{}, &mockRefresher{})
	assert.Equal(t, "station-stats", w.Name())
}

func TestStationStatsWorker_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("station events refresh once per batch", func(t *testing.T) {
		streamRepo := &mocks.MockStreamRepository{}
		refresher := &mockRefresher{}
		messages := []domain.StreamMessage{
			eventMessage(t, "1-0", domain.NewFleetEvent(domain.EntityStation, domain.ActionCreated, "S1")),
			eventMessage(t, "2-0", domain.NewFleetEvent(domain.EntityStation, domain.ActionDeleted, "S2")),
			eventMessage(t, "3-0", domain.NewFleetEvent(domain.EntityBarge, domain.ActionUpdated, "B1")),
		}
		streamRepo.On("ConsumeBatch", ctx, domain.StreamFleetEvents, "stats-group", "test-1", int64(50), 10*time.Millisecond).
			Return(messages, nil)
		refresher.On("RefreshStatistics", ctx).Return(&domain.StationStatistics{Total: 3}, nil).Once()
		streamRepo.On("AckMessages", ctx, domain.StreamFleetEvents, "stats-group", []string{"1-0", "2-0", "3-0"}).Return(nil)

		n, err := newWorker(streamRepo, refresher).ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, n)
		refresher.AssertNumberOfCalls(t, "RefreshStatistics", 1)
		streamRepo.AssertExpectations(t)
	})

	t.Run("non-station events are acked without refresh", func(t *testing.T) {
		streamRepo := &mocks.MockStreamRepository{}
		refresher := &mockRefresher{}
		messages := []domain.StreamMessage{
			eventMessage(t, "1-0", domain.NewFleetEvent(domain.EntityOrder, domain.ActionImported, "O1", "O2")),
		}
		streamRepo.On("ConsumeBatch", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(messages, nil)
		streamRepo.On("AckMessages", ctx, domain.StreamFleetEvents, "stats-group", []string{"1-0"}).Return(nil)

		n, err := newWorker(streamRepo, refresher).ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		refresher.AssertNotCalled(t, "RefreshStatistics", mock.Anything)
	})

	t.Run("malformed messages are acked", func(t *testing.T) {
		streamRepo := &mocks.MockStreamRepository{}
		refresher := &mockRefresher{}
		messages := []domain.StreamMessage{{ID: "1-0", Data: "{broken"}, {ID: "2-0"}}
		streamRepo.On("ConsumeBatch", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(messages, nil)
		streamRepo.On("AckMessages", ctx, domain.StreamFleetEvents, "stats-group", []string{"1-0", "2-0"}).Return(nil)

		n, err := newWorker(streamRepo, refresher).ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		streamRepo.AssertExpectations(t)
	})

	t.Run("empty stream", func(t *testing.T) {
		streamRepo := &mocks.MockStreamRepository{}
		streamRepo.On("ConsumeBatch", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.StreamMessage{}, nil)

		n, err := newWorker(streamRepo, &mockRefresher{}).ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Zero(t, n)
		streamRepo.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("refresh failure leaves batch unacked", func(t *testing.T) {
		streamRepo := &mocks.MockStreamRepository{}
		refresher := &mockRefresher{}
		messages := []domain.StreamMessage{
			eventMessage(t, "1-0", domain.NewFleetEvent(domain.EntityStation, domain.ActionUpdated, "S1")),
		}
		streamRepo.On("ConsumeBatch", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(messages, nil)
		refresher.On("RefreshStatistics", ctx).Return(nil, errors.New("db down"))

		_, err := newWorker(streamRepo, refresher).ProcessBatch(ctx)

		assert.Error(t, err)
		streamRepo.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("consume failure", func(t *testing.T) {
		streamRepo := &mocks.MockStreamRepository{}
		streamRepo.On("ConsumeBatch", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("redis down"))

		_, err := newWorker(streamRepo, &mockRefresher{}).ProcessBatch(ctx)

		assert.ErrorContains(t, err, "redis down")
	})
}

func TestStationStatsWorker_DrainPending(t *testing.T) {
	ctx := context.Background()

	t.Run("reprocesses until pending is empty", func(t *testing.T) {
		streamRepo := &mocks.MockStreamRepository{}
		refresher := &mockRefresher{}
		pending := []domain.StreamMessage{
			eventMessage(t, "1-0", domain.NewFleetEvent(domain.EntityStation, domain.ActionUpdated, "S1")),
		}
		streamRepo.On("ConsumePending", ctx, domain.StreamFleetEvents, "stats-group", "test-1", int64(50)).
			Return(pending, nil).Once()
		streamRepo.On("ConsumePending", ctx, domain.StreamFleetEvents, "stats-group", "test-1", int64(50)).
			Return([]domain.StreamMessage{}, nil).Once()
		refresher.On("RefreshStatistics", ctx).Return(&domain.StationStatistics{Total: 1}, nil).Once()
		streamRepo.On("AckMessages", ctx, domain.StreamFleetEvents, "stats-group", []string{"1-0"}).Return(nil).Once()

		require.NoError(t, newWorker(streamRepo, refresher).DrainPending(ctx))

		streamRepo.AssertExpectations(t)
		refresher.AssertExpectations(t)
	})

	t.Run("refresh failure stops the drain", func(t *testing.T) {
		streamRepo := &mocks.MockStreamRepository{}
		refresher := &mockRefresher{}
		pending := []domain.StreamMessage{
			eventMessage(t, "1-0", domain.NewFleetEvent(domain.EntityStation, domain.ActionDeleted, "S1")),
		}
		streamRepo.On("ConsumePending", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(pending, nil)
		refresher.On("RefreshStatistics", ctx).Return(nil, errors.New("db down"))

		err := newWorker(streamRepo, refresher).DrainPending(ctx)

		assert.ErrorContains(t, err, "db down")
		streamRepo.AssertNumberOfCalls(t, "ConsumePending", 1)
		streamRepo.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ack failure stops the drain", func(t *testing.T) {
		streamRepo := &mocks.MockStreamRepository{}
		pending := []domain.StreamMessage{{ID: "1-0", Data: "{broken"}}
		streamRepo.On("ConsumePending", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(pending, nil)
		streamRepo.On("AckMessages", ctx, mock.Anything, mock.Anything, []string{"1-0"}).Return(errors.New("redis down"))

		err := newWorker(streamRepo, &mockRefresher{}).DrainPending(ctx)

		assert.ErrorContains(t, err, "unacked")
		streamRepo.AssertNumberOfCalls(t, "ConsumePending", 1)
	})
}

func TestStationStatsWorker_FailedBatchIsReclaimed(t *testing.T) {
	streamRepo := &mocks.MockStreamRepository{}
	refresher := &mockRefresher{}
	batch := []domain.StreamMessage{
		eventMessage(t, "7-0", domain.NewFleetEvent(domain.EntityStation, domain.ActionUpdated, "S1")),
	}

	streamRepo.On("CreateConsumerGroup", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	// старт: pending пуст
	streamRepo.On("ConsumePending", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil).Once()
	streamRepo.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(batch, nil).Once()
	refresher.On("RefreshStatistics", mock.Anything).Return(nil, errors.New("db down")).Once()
	// после сбоя то же сообщение приходит из pending
	streamRepo.On("ConsumePending", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(batch, nil).Once()
	refresher.On("RefreshStatistics", mock.Anything).Return(&domain.StationStatistics{Total: 1}, nil).Once()
	reclaimed := make(chan struct{})
	streamRepo.On("AckMessages", mock.Anything, mock.Anything, mock.Anything, []string{"7-0"}).Return(nil).Once().
		Run(func(mock.Arguments) { close(reclaimed) })
	streamRepo.On("ConsumePending", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)
	streamRepo.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil).
		Run(func(mock.Arguments) { time.Sleep(time.Millisecond) })

	w := newWorker(streamRepo, refresher)
	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	select {
	case <-reclaimed:
	case <-time.After(3 * time.Second):
		t.Fatal("failed batch was not reprocessed from pending")
	}
	require.NoError(t, w.Stop())
	require.NoError(t, <-done)

	refresher.AssertNumberOfCalls(t, "RefreshStatistics", 2)
}

func TestStationStatsWorker_StartStop(t *testing.T) {
	streamRepo := &mocks.MockStreamRepository{}
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamFleetEvents, "stats-group").Return(nil)
	streamRepo.On("ConsumePending", mock.Anything, domain.StreamFleetEvents, "stats-group", "test-1", int64(50)).
		Return([]domain.StreamMessage{}, nil)
	streamRepo.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil).
		Run(func(mock.Arguments) { time.Sleep(time.Millisecond) })

	w := newWorker(streamRepo, &mockRefresher{})
	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestStationStatsWorker_StartFailsWithoutGroup(t *testing.T) {
	streamRepo := &mocks.MockStreamRepository{}
	streamRepo.On("CreateConsumerGroup", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("NOAUTH"))

	err := newWorker(streamRepo, &mockRefresher{}).Start(context.Background())

	assert.ErrorContains(t, err, "consumer group")
}
